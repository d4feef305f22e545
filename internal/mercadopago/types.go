package mercadopago

// Wire types for the two Mercado Pago resources this service touches:
// checkout preferences (created) and payments (read back on webhooks).
// Field sets are limited to what the API consumes/returns for this flow.

type PreferenceItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	CurrencyID  string  `json:"currency_id"`
}

type BackURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

type PaymentMethods struct {
	ExcludedPaymentMethods []map[string]string `json:"excluded_payment_methods"`
	ExcludedPaymentTypes   []map[string]string `json:"excluded_payment_types"`
	Installments           int                 `json:"installments"`
	DefaultInstallments    int                 `json:"default_installments"`
}

type PreferenceRequest struct {
	Items               []PreferenceItem       `json:"items"`
	BackURLs            BackURLs               `json:"back_urls"`
	AutoReturn          string                 `json:"auto_return"`
	PaymentMethods      PaymentMethods         `json:"payment_methods"`
	Expires             bool                   `json:"expires"`
	ExpirationDateFrom  string                 `json:"expiration_date_from"`
	ExpirationDateTo    string                 `json:"expiration_date_to"`
	StatementDescriptor string                 `json:"statement_descriptor"`
	ExternalReference   string                 `json:"external_reference"`
	NotificationURL     string                 `json:"notification_url,omitempty"`
	Metadata            map[string]interface{} `json:"metadata,omitempty"`
}

// Preference is the created checkout session; init points are the hosted
// checkout links handed back to the frontend.
type Preference struct {
	ID               string `json:"id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point"`
}

type Payer struct {
	Email string `json:"email"`
}

// Payment is the authoritative payment record; the provider owns it, this
// service only reads it while dispatching webhooks.
type Payment struct {
	ID                int64   `json:"id"`
	Status            string  `json:"status"`
	StatusDetail      string  `json:"status_detail"`
	TransactionAmount float64 `json:"transaction_amount"`
	ExternalReference string  `json:"external_reference"`
	Payer             Payer   `json:"payer"`
}
