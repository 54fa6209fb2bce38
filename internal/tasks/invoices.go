// Package tasks runs the extension's background listeners.
package tasks

import (
	"context"
	"encoding/json"
	"log"

	"shiprate/internal/repositories/cache"
	"shiprate/internal/services/payments"
)

// InvoiceChannel is the pub/sub channel the platform publishes paid-invoice
// events on.
const InvoiceChannel = "payments:paid"

// InvoiceListener subscribes to paid-invoice events and dispatches the ones
// tagged for this extension to the payments hook.
type InvoiceListener struct {
	cache    *cache.CacheService
	payments *payments.Service
}

func NewInvoiceListener(cache *cache.CacheService, payments *payments.Service) *InvoiceListener {
	return &InvoiceListener{cache: cache, payments: payments}
}

// Run blocks until ctx is canceled, handling events as they arrive.
// Malformed or foreign events are skipped, never fatal.
func (l *InvoiceListener) Run(ctx context.Context) {
	sub := l.cache.Subscribe(ctx, InvoiceChannel)
	defer sub.Close()

	log.Printf("invoice listener subscribed to %s", InvoiceChannel)
	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var invoice payments.PaidInvoice
			if err := json.Unmarshal([]byte(msg.Payload), &invoice); err != nil {
				log.Printf("skipping malformed invoice event: %v", err)
				continue
			}
			if invoice.Tag != payments.InvoiceTag {
				continue
			}
			if err := l.payments.HandlePaidInvoice(&invoice); err != nil {
				log.Printf("error processing payment for shipping: %v", err)
			}
		}
	}
}
