// Package payments handles paid-invoice notifications routed to this
// extension by the platform.
package payments

import "log"

// InvoiceTag marks payments that belong to this extension.
const InvoiceTag = "shipping"

// PaidInvoice is the slice of a platform payment event the extension reads.
type PaidInvoice struct {
	PaymentHash string  `json:"payment_hash"`
	Tag         string  `json:"tag"`
	Amount      int64   `json:"amount"`
	Memo        string  `json:"memo"`
	UserID      string  `json:"user_id"`
	FiatAmount  float64 `json:"fiat_amount"`
}

// Service reacts to paid invoices tagged for the extension.
type Service struct{}

func NewService() *Service { return &Service{} }

// HandlePaidInvoice is the downstream hook for a paid shipping invoice.
// Payment receive logic generation is currently disabled: the event is
// acknowledged and logged, nothing is persisted.
func (s *Service) HandlePaidInvoice(invoice *PaidInvoice) error {
	if invoice.Tag != InvoiceTag {
		return nil
	}
	log.Printf("Invoice paid for shipping: %s", invoice.PaymentHash)
	return nil
}
