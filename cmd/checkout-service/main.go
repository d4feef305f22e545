package main

import (
	"log"

	_ "github.com/crescer-cursos/checkout-api/docs"
	"github.com/crescer-cursos/checkout-api/internal/checkout"
	"github.com/crescer-cursos/checkout-api/internal/config"
	"github.com/crescer-cursos/checkout-api/internal/mercadopago"
	"github.com/crescer-cursos/checkout-api/internal/webhook"
)

// @title           Crescer Cursos Checkout API
// @version         1.0
// @description     Backend de checkout sobre o Mercado Pago: criação de preferências e recepção de webhooks de pagamento.
// @BasePath        /
func main() {
	cfg := config.Load()

	mp := mercadopago.NewClient(cfg.AccessToken)
	builder := checkout.NewBuilder(cfg, mp)
	dispatcher := webhook.NewDispatcher(mp)

	r := newRouter(cfg, builder, dispatcher)

	addr := ":" + cfg.Port
	log.Printf("checkout-service listening on %s", addr)
	log.Printf("frontend origin allowed: %s", cfg.FrontendURL)
	log.Fatal(r.Run(addr))
}
