package webhook

import (
	"context"
	"log"

	"github.com/crescer-cursos/checkout-api/internal/mercadopago"
)

// Notification is the body Mercado Pago posts to the webhook endpoint.
type Notification struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// PaymentFetcher reads the authoritative payment record from the provider.
type PaymentFetcher interface {
	GetPayment(ctx context.Context, id string) (*mercadopago.Payment, error)
}

// Handler reacts to a payment in one specific status.
type Handler func(ctx context.Context, p *mercadopago.Payment)

// Handlers holds one branch per status variant. Dispatch is an exhaustive
// switch over ParseStatus, so a new provider status cannot be silently
// mis-routed: it lands in Unhandled until given its own branch.
type Handlers struct {
	Approved  Handler
	Pending   Handler
	Rejected  Handler
	Unhandled Handler
}

// Dispatcher processes webhook deliveries one at a time, statelessly. There
// is no deduplication and no retry here: the provider redelivers on its own
// schedule and a redelivered event re-runs the full dispatch.
type Dispatcher struct {
	Payments PaymentFetcher
	Handlers Handlers
}

func NewDispatcher(payments PaymentFetcher) *Dispatcher {
	return &Dispatcher{Payments: payments, Handlers: DefaultHandlers()}
}

// Process fetches the payment named by the notification and routes it to the
// matching status branch. Every failure is terminal for this delivery: it is
// logged and the event is dropped.
func (d *Dispatcher) Process(ctx context.Context, n Notification) {
	if n.Data.ID == "" {
		log.Printf("[webhook] notification without payment id, ignoring")
		return
	}
	log.Printf("[webhook] processing payment id=%s", n.Data.ID)

	p, err := d.Payments.GetPayment(ctx, n.Data.ID)
	if err != nil {
		log.Printf("[webhook] fetch payment id=%s failed: %v", n.Data.ID, err)
		return
	}

	log.Printf("[webhook] payment id=%d status=%s detail=%s amount=%.2f ref=%s payer=%s",
		p.ID, p.Status, p.StatusDetail, p.TransactionAmount, p.ExternalReference, p.Payer.Email)

	switch ParseStatus(p.Status) {
	case StatusApproved:
		d.Handlers.Approved(ctx, p)
	case StatusPending:
		d.Handlers.Pending(ctx, p)
	case StatusRejected:
		d.Handlers.Rejected(ctx, p)
	case StatusUnhandled:
		d.Handlers.Unhandled(ctx, p)
	}
}
