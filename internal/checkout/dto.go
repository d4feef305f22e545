package checkout

// ItemInput is one purchasable item as sent by the frontend.
// swagger:model ItemInput
type ItemInput struct {
	ID          string   `json:"id,omitempty" example:"curso-go-avancado"`
	Title       string   `json:"title" binding:"required,max=256" example:"Curso de Go Avançado"`
	Description string   `json:"description,omitempty" binding:"omitempty,max=600"`
	Quantity    *int     `json:"quantity,omitempty" binding:"omitempty,min=1" example:"1"`
	UnitPrice   *float64 `json:"unit_price" binding:"required,min=0" example:"199.90"`
}

// CreatePreferenceRequest payload of POST /api/payment/create-preference.
// swagger:model CreatePreferenceRequest
type CreatePreferenceRequest struct {
	Items         []ItemInput `json:"items" binding:"required,min=1,dive"`
	CustomerEmail string      `json:"customer_email,omitempty" binding:"omitempty,email" example:"aluno@example.com"`
	OrderID       string      `json:"order_id,omitempty" example:"order_1693526400000"`
}

// Options carries the caller-supplied extras for a checkout session.
type Options struct {
	OrderID       string
	CustomerEmail string
}

// Session is the public view of a created preference.
// swagger:model Session
type Session struct {
	ID               string  `json:"id"`
	InitPoint        string  `json:"init_point"`
	SandboxInitPoint string  `json:"sandbox_init_point"`
	TotalAmount      float64 `json:"total_amount"`
	ItemsCount       int     `json:"items_count"`
	ExpiresAt        string  `json:"expires_at"`
}
