package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// appName имя приложения в ответе /health.
const appName = "shortlink-api"

// HealthController контроллер для проверки работоспособности сервиса.
type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// Health обрабатывает GET /health запрос.
// Возвращает HTTP 200 OK с именем приложения и текущим временем.
func (c *HealthController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"app":    appName,
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
