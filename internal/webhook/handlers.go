package webhook

import (
	"context"
	"log"
	"time"

	"github.com/crescer-cursos/checkout-api/internal/mercadopago"
)

// DefaultHandlers are the fulfillment placeholders wired at startup. Real
// fulfillment (order state, e-mails, course access) plugs in here.
func DefaultHandlers() Handlers {
	return Handlers{
		Approved:  handleApproved,
		Pending:   handlePending,
		Rejected:  handleRejected,
		Unhandled: handleUnhandled,
	}
}

func handleApproved(_ context.Context, p *mercadopago.Payment) {
	log.Printf("[webhook] payment approved id=%d", p.ID)

	// Placeholder. On approval this is where the real system would:
	// - update the order status in the database
	// - send the confirmation e-mail
	// - release access to the purchased courses
	// - generate certificates

	log.Printf("[webhook] payment settled id=%d amount=%.2f payer=%s order=%s at=%s",
		p.ID, p.TransactionAmount, p.Payer.Email, p.ExternalReference,
		time.Now().Format(time.RFC3339))
}

func handlePending(_ context.Context, p *mercadopago.Payment) {
	log.Printf("[webhook] payment pending id=%d detail=%s", p.ID, p.StatusDetail)

	// Placeholder: mark the order pending and notify the customer.
}

func handleRejected(_ context.Context, p *mercadopago.Payment) {
	log.Printf("[webhook] payment rejected id=%d detail=%s", p.ID, p.StatusDetail)

	// Placeholder: mark the order rejected and offer another payment method.
}

func handleUnhandled(_ context.Context, p *mercadopago.Payment) {
	log.Printf("[webhook] unhandled payment status id=%d status=%q", p.ID, p.Status)
}
