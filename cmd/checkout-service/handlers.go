package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/crescer-cursos/checkout-api/internal/checkout"
	"github.com/crescer-cursos/checkout-api/internal/config"
	"github.com/crescer-cursos/checkout-api/internal/httpx"
)

// preferenceCreator is what the create endpoint needs from the checkout
// builder; tests inject a stub here.
type preferenceCreator interface {
	Create(ctx context.Context, items []checkout.ItemInput, opts checkout.Options) (*checkout.Session, error)
}

// createPreferenceHandler godoc
// @Summary      Cria uma preferência de pagamento
// @Description  Valida os itens do pedido e cria uma sessão de checkout no Mercado Pago.
// @Accept       json
// @Produce      json
// @Param        request  body  checkout.CreatePreferenceRequest  true  "Itens do pedido"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/payment/create-preference [post]
func createPreferenceHandler(cfg config.Config, svc preferenceCreator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkout.CreatePreferenceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Dados inválidos",
				"details": validationDetails(err),
			})
			return
		}

		log.Printf("[payment] rid=%s create-preference requested items=%d",
			httpx.GetRequestID(c), len(req.Items))

		orderID := req.OrderID
		if orderID == "" {
			orderID = fmt.Sprintf("order_%d", time.Now().UnixMilli())
		}

		sess, err := svc.Create(c.Request.Context(), req.Items, checkout.Options{
			OrderID:       orderID,
			CustomerEmail: req.CustomerEmail,
		})
		if err != nil {
			log.Printf("[payment] rid=%s create-preference failed: %v", httpx.GetRequestID(c), err)
			msg := "Falha ao processar pagamento"
			if !cfg.IsProduction() {
				msg = err.Error()
			}
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Erro interno do servidor",
				"message":   msg,
				"timestamp": time.Now().Format(time.RFC3339),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"preference": sess,
			"message":    "Preferência de pagamento criada com sucesso",
		})
	}
}

// paymentConfigHandler godoc
// @Summary  Configuração pública de pagamento
// @Produce  json
// @Success  200  {object}  map[string]interface{}
// @Router   /api/payment/config [get]
func paymentConfigHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"public_key":             cfg.PublicKey,
			"currency":               cfg.CurrencyID,
			"max_installments":       cfg.MaxInstallments,
			"min_installment_amount": cfg.MinInstallmentAmount,
			"environment":            cfg.Env,
		})
	}
}

// paymentStatusHandler godoc
// @Summary  Situação das credenciais do provedor
// @Produce  json
// @Success  200  {object}  map[string]interface{}
// @Router   /api/payment/status [get]
func paymentStatusHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"configured":  cfg.CredentialsConfigured(),
			"environment": cfg.Env,
			"timestamp":   time.Now().Format(time.RFC3339),
		})
	}
}

// livenessHandler godoc
// @Summary  Liveness probe
// @Produce  json
// @Success  200  {object}  map[string]interface{}
// @Router   /api/status [get]
func livenessHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

// validationDetails flattens binding errors into the field-level list the
// frontend renders next to the form.
func validationDetails(err error) []gin.H {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []gin.H{{"message": err.Error()}}
	}
	details := make([]gin.H, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, gin.H{
			"field":   fe.Namespace(),
			"message": validationMessage(fe),
		})
	}
	return details
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Items":
		return "Pelo menos um item é obrigatório"
	case "Title":
		return "Título do item é obrigatório (máximo 256 caracteres)"
	case "UnitPrice":
		return "Preço deve ser um número válido maior ou igual a 0"
	case "Quantity":
		return "Quantidade deve ser um número inteiro maior que 0"
	case "CustomerEmail":
		return "E-mail deve ter formato válido"
	default:
		return fmt.Sprintf("Campo %s inválido", fe.Field())
	}
}
