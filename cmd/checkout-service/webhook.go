package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/crescer-cursos/checkout-api/internal/httpx"
	"github.com/crescer-cursos/checkout-api/internal/webhook"
)

// mercadopagoWebhookHandler godoc
// @Summary      Recebe notificações do Mercado Pago
// @Description  Confirma o recebimento imediatamente; o processamento acontece fora do ciclo da requisição.
// @Accept       json
// @Produce      plain
// @Success      200  {string}  string  "OK"
// @Failure      500  {string}  string  "Error"
// @Router       /webhook/mercadopago [post]
func mercadopagoWebhookHandler(dispatcher *webhook.Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := httpx.GetRequestID(c)

		var n webhook.Notification
		if err := c.ShouldBindJSON(&n); err != nil {
			log.Printf("[webhook] rid=%s unreadable delivery: %v", rid, err)
			c.String(http.StatusInternalServerError, "Error")
			return
		}

		log.Printf("[webhook] rid=%s delivery type=%s id=%s ua=%q content-type=%q len=%d at=%s",
			rid, n.Type, n.Data.ID, c.Request.UserAgent(), c.ContentType(),
			c.Request.ContentLength, time.Now().Format(time.RFC3339))

		// Ack first: Mercado Pago retries on timeout or non-2xx, and the
		// dispatch outcome must never change this response.
		c.String(http.StatusOK, "OK")

		if n.Type != "payment" {
			log.Printf("[webhook] rid=%s ignoring delivery type=%q", rid, n.Type)
			return
		}

		// Detached from the request: no cancellation, no completion signal,
		// outcome observable only through logs. There is no signature check
		// and no dedup of redeliveries; a redelivered event re-runs the
		// full dispatch.
		go func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("[webhook] rid=%s dispatch panic: %v", rid, r)
				}
			}()
			dispatcher.Process(context.Background(), n)
		}()
	}
}
