package payments

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandlePaidInvoice(t *testing.T) {
	svc := NewService()

	assert.NoError(t, svc.HandlePaidInvoice(&PaidInvoice{
		PaymentHash: "abc",
		Tag:         InvoiceTag,
	}))

	// Foreign tags are ignored without error.
	assert.NoError(t, svc.HandlePaidInvoice(&PaidInvoice{
		PaymentHash: "def",
		Tag:         "lnurlp",
	}))
}
