package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/crescer-cursos/checkout-api/internal/config"
	"github.com/crescer-cursos/checkout-api/internal/httpx"
	"github.com/crescer-cursos/checkout-api/internal/webhook"
)

func newRouter(cfg config.Config, svc preferenceCreator, dispatcher *webhook.Dispatcher) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{cfg.FrontendURL},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
	}))
	r.Use(static.Serve("/", static.LocalFile("./public", false)))

	api := r.Group("/api")
	{
		pay := api.Group("/payment")
		pay.POST("/create-preference", createPreferenceHandler(cfg, svc))
		pay.GET("/config", paymentConfigHandler(cfg))
		pay.GET("/status", paymentStatusHandler(cfg))

		api.GET("/status", livenessHandler())
	}

	r.POST("/webhook/mercadopago", mercadopagoWebhookHandler(dispatcher))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
