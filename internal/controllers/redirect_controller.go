package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/workpent/shortlink/internal/services"
	"github.com/workpent/shortlink/internal/shortcode"
)

// RedirectController обрабатывает переходы по коротким кодам.
type RedirectController struct {
	redirectService RedirectStore
}

func NewRedirectController(redirectService RedirectStore) *RedirectController {
	return &RedirectController{redirectService: redirectService}
}

// Redirect обрабатывает GET /:code.
//
// Успешный переход атомарно инкрементирует счетчик и отвечает 307: сама привязка
// кода стабильна, но деактивация может изменить поведение позже. Отсутствующий и
// деактивированный коды неразличимы - оба дают 404.
func (c *RedirectController) Redirect(ctx *gin.Context) {
	code := ctx.Param("code")

	// Заведомо невозможный код отсекаем без похода в хранилище.
	if validateErr := shortcode.ValidateCustom(code); validateErr != nil {
		ctx.String(http.StatusNotFound, ErrRecordNotFound.Error())
		return
	}

	reqCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	link, err := c.redirectService.Resolve(reqCtx, code)
	if err != nil {
		if errors.Is(err, services.ErrRecordNotFound) {
			ctx.String(http.StatusNotFound, ErrRecordNotFound.Error())
			return
		}
		_ = ctx.Error(err)
		ctx.String(http.StatusInternalServerError, ErrInternal.Error())
		return
	}

	ctx.Redirect(http.StatusTemporaryRedirect, link.TargetURL)
}
