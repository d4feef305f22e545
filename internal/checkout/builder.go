package checkout

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/crescer-cursos/checkout-api/internal/config"
	"github.com/crescer-cursos/checkout-api/internal/mercadopago"
)

// Provider length limits for preference item fields.
const (
	maxTitleLen       = 256
	maxDescriptionLen = 600
)

// Mercado Pago expects absolute timestamps with millisecond precision.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// PreferenceCreator is the one provider call the builder needs.
type PreferenceCreator interface {
	CreatePreference(ctx context.Context, pref *mercadopago.PreferenceRequest) (*mercadopago.Preference, error)
}

// Builder turns raw order items into a Mercado Pago checkout preference.
// It holds no state between calls; nothing is persisted locally.
type Builder struct {
	cfg config.Config
	mp  PreferenceCreator
	now func() time.Time
}

func NewBuilder(cfg config.Config, mp PreferenceCreator) *Builder {
	return &Builder{cfg: cfg, mp: mp, now: time.Now}
}

// Create validates configuration and items, assembles the preference request
// and delegates creation to the provider. Totals are computed here once and
// recorded in the preference metadata; they are never recomputed from the
// payment record later.
func (b *Builder) Create(ctx context.Context, items []ItemInput, opts Options) (*Session, error) {
	if err := b.validateConfig(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, &ValidationError{Msg: "itens do pedido são obrigatórios"}
	}

	processed := make([]mercadopago.PreferenceItem, 0, len(items))
	total := decimal.Zero
	for i, it := range items {
		if it.Title == "" || it.UnitPrice == nil {
			return nil, &ValidationError{Msg: fmt.Sprintf("item %d: título e preço são obrigatórios", i+1)}
		}
		qty := 1
		if it.Quantity != nil && *it.Quantity > 0 {
			qty = *it.Quantity
		}
		id := it.ID
		if id == "" {
			id = fmt.Sprintf("item_%d", i+1)
		}
		price := decimal.NewFromFloat(*it.UnitPrice)
		total = total.Add(price.Mul(decimal.NewFromInt(int64(qty))))
		processed = append(processed, mercadopago.PreferenceItem{
			ID:          id,
			Title:       truncate(it.Title, maxTitleLen),
			Description: truncate(it.Description, maxDescriptionLen),
			Quantity:    qty,
			UnitPrice:   price.InexactFloat64(),
			CurrencyID:  b.cfg.CurrencyID,
		})
	}

	now := b.now()
	expiresAt := now.Add(time.Duration(b.cfg.ExpirationDays) * 24 * time.Hour)
	externalRef := opts.OrderID
	if externalRef == "" {
		externalRef = fmt.Sprintf("order_%d", now.UnixMilli())
	}

	req := &mercadopago.PreferenceRequest{
		Items: processed,
		BackURLs: mercadopago.BackURLs{
			Success: b.cfg.SuccessURL,
			Failure: b.cfg.FailureURL,
			Pending: b.cfg.PendingURL,
		},
		AutoReturn: b.cfg.AutoReturn,
		PaymentMethods: mercadopago.PaymentMethods{
			ExcludedPaymentMethods: []map[string]string{},
			ExcludedPaymentTypes:   []map[string]string{},
			Installments:           b.cfg.MaxInstallments,
			DefaultInstallments:    b.cfg.DefaultInstallments,
		},
		Expires:             true,
		ExpirationDateFrom:  now.Format(timeLayout),
		ExpirationDateTo:    expiresAt.Format(timeLayout),
		StatementDescriptor: b.cfg.StatementDescriptor,
		ExternalReference:   externalRef,
		NotificationURL:     b.cfg.WebhookURL,
		Metadata: map[string]interface{}{
			"order_id":       opts.OrderID,
			"customer_email": opts.CustomerEmail,
			"total_amount":   total.InexactFloat64(),
			"created_at":     now.Format(timeLayout),
		},
	}

	pref, err := b.mp.CreatePreference(ctx, req)
	if err != nil {
		return nil, &SessionError{Err: err}
	}

	log.Printf("[checkout] preference created id=%s total=%s items=%d", pref.ID, total, len(processed))

	return &Session{
		ID:               pref.ID,
		InitPoint:        pref.InitPoint,
		SandboxInitPoint: pref.SandboxInitPoint,
		TotalAmount:      total.InexactFloat64(),
		ItemsCount:       len(processed),
		ExpiresAt:        req.ExpirationDateTo,
	}, nil
}

func (b *Builder) validateConfig() error {
	if missing := b.cfg.MissingRequired(); len(missing) > 0 {
		return &ConfigError{Missing: missing}
	}
	if b.cfg.AccessToken == config.PlaceholderToken {
		return &ConfigError{Reason: "configure um Access Token válido do Mercado Pago"}
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
