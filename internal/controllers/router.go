package controllers

import (
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/workpent/shortlink/internal/controllers/middlewares"
)

// RouterParams зависимости роутера.
type RouterParams struct {
	LinkService     LinkStore
	RedirectService RedirectStore
	BaseURL         *url.URL
	Logger          *logrus.Logger
}

func SetupRouter(params RouterParams) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware(params.Logger))
	r.Use(middlewares.GzipMiddleware())

	linksController := NewLinksController(params.LinkService, params.BaseURL)
	redirectController := NewRedirectController(params.RedirectService)
	healthController := NewHealthController()

	r.GET("/health", healthController.Health)

	r.POST("/links", linksController.Create)
	r.GET("/links", linksController.List)
	r.POST("/links/:code/deactivate", linksController.Deactivate)
	r.GET("/stats/:code", linksController.Stats)

	r.GET("/:code", redirectController.Redirect)
	return r
}
