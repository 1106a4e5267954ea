package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/workpent/shortlink/internal/models"
	"github.com/workpent/shortlink/internal/services"
)

// createLinkRequest тело запроса на создание ссылки.
type createLinkRequest struct {
	URL        string  `json:"url" binding:"required"`
	CustomCode string  `json:"custom_code"`
	Note       *string `json:"note"`
}

// linkResponse представление записи ссылки в ответах API.
// short_url - вычисляемое поле (базовый адрес + код), в хранилище не попадает.
type linkResponse struct {
	Code          string     `json:"short_code"`
	ShortURL      string     `json:"short_url"`
	TargetURL     string     `json:"target_url"`
	CreatedAt     time.Time  `json:"created_at"`
	ClickCount    uint64     `json:"click_count"`
	LastClickedAt *time.Time `json:"last_clicked_at"`
	Active        bool       `json:"active"`
	Note          *string    `json:"note,omitempty"`
}

// listLinksResponse ответ постраничного списка. Total - общее количество записей
// без учета offset/limit.
type listLinksResponse struct {
	Total int64          `json:"total"`
	Items []linkResponse `json:"items"`
}

// LinksController обрабатывает запросы управления ссылками.
type LinksController struct {
	linkService LinkStore
	baseURL     *url.URL
}

func NewLinksController(linkService LinkStore, baseURL *url.URL) *LinksController {
	return &LinksController{
		linkService: linkService,
		baseURL:     baseURL,
	}
}

// Create обрабатывает POST /links.
//
// Возвращает:
//   - 201 и созданную запись
//   - 422 если URL или пользовательский код не прошли проверку формата
//   - 400 если пользовательский код уже занят
//   - 500 если генератор исчерпал попытки подбора кода
func (c *LinksController) Create(ctx *gin.Context) {
	var req createLinkRequest
	if bindErr := ctx.ShouldBindJSON(&req); bindErr != nil {
		ctx.String(http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	parsedURL, parseErr := validateURL(req.URL)
	if parseErr != nil {
		ctx.String(http.StatusUnprocessableEntity, parseErr.Error())
		return
	}
	if req.Note != nil && len(*req.Note) > models.NoteMaxLength {
		ctx.String(http.StatusUnprocessableEntity,
			"note must be at most %d characters", models.NoteMaxLength)
		return
	}

	reqCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	link, createErr := c.linkService.Create(reqCtx, services.CreateParams{
		TargetURL:  parsedURL.String(),
		CustomCode: req.CustomCode,
		Note:       req.Note,
	})
	if createErr != nil {
		switch {
		case errors.Is(createErr, services.ErrInvalidCode):
			ctx.String(http.StatusUnprocessableEntity, "invalid custom code")
		case errors.Is(createErr, services.ErrCodeTaken):
			ctx.String(http.StatusBadRequest, "custom code already in use")
		default:
			_ = ctx.Error(createErr)
			ctx.String(http.StatusInternalServerError, ErrInternal.Error())
		}
		return
	}

	ctx.JSON(http.StatusCreated, c.newLinkResponse(ctx.Request, link))
}

// Stats обрабатывает GET /stats/:code.
// Запись возвращается независимо от флага active: деактивированные ссылки
// остаются видимыми для аудита.
func (c *LinksController) Stats(ctx *gin.Context) {
	code := ctx.Param("code")

	reqCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	link, err := c.linkService.GetStats(reqCtx, code)
	if err != nil {
		if errors.Is(err, services.ErrRecordNotFound) {
			ctx.String(http.StatusNotFound, ErrRecordNotFound.Error())
			return
		}
		_ = ctx.Error(err)
		ctx.String(http.StatusInternalServerError, ErrInternal.Error())
		return
	}

	ctx.JSON(http.StatusOK, c.newLinkResponse(ctx.Request, link))
}

// List обрабатывает GET /links?skip=&limit=.
// По умолчанию skip=0, limit=50; отрицательные значения приводятся к значениям
// по умолчанию.
func (c *LinksController) List(ctx *gin.Context) {
	skip := queryIntDefault(ctx, "skip", 0)
	limit := queryIntDefault(ctx, "limit", DefaultListLimit)

	reqCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	links, total, err := c.linkService.List(reqCtx, skip, limit)
	if err != nil {
		_ = ctx.Error(err)
		ctx.String(http.StatusInternalServerError, ErrInternal.Error())
		return
	}

	items := make([]linkResponse, 0, len(links))
	for i := range links {
		items = append(items, c.newLinkResponse(ctx.Request, &links[i]))
	}
	ctx.JSON(http.StatusOK, listLinksResponse{Total: total, Items: items})
}

// Deactivate обрабатывает POST /links/:code/deactivate.
// Деактивация необратима и идемпотентна: повторный вызов возвращает ту же запись.
func (c *LinksController) Deactivate(ctx *gin.Context) {
	code := ctx.Param("code")

	reqCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	link, err := c.linkService.Deactivate(reqCtx, code)
	if err != nil {
		if errors.Is(err, services.ErrRecordNotFound) {
			ctx.String(http.StatusNotFound, ErrRecordNotFound.Error())
			return
		}
		_ = ctx.Error(err)
		ctx.String(http.StatusInternalServerError, ErrInternal.Error())
		return
	}

	ctx.JSON(http.StatusOK, c.newLinkResponse(ctx.Request, link))
}

func (c *LinksController) newLinkResponse(r *http.Request, link *models.Link) linkResponse {
	return linkResponse{
		Code:          link.Code,
		ShortURL:      c.getShortURL(r, link.Code),
		TargetURL:     link.TargetURL,
		CreatedAt:     link.CreatedAt,
		ClickCount:    link.ClickCount,
		LastClickedAt: link.LastClickedAt,
		Active:        link.Active,
		Note:          link.Note,
	}
}

// getShortURL вспомогательный метод который создает короткую ссылку.
// Если базовый адрес не задан, берется Scheme://Host текущего запроса.
func (c *LinksController) getShortURL(r *http.Request, code string) string {
	var scheme = "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if c.baseURL == nil {
		return fmt.Sprintf("%s://%s/%s", scheme, r.Host, code)
	}
	return fmt.Sprintf("%s/%s", c.baseURL, code)
}

// queryIntDefault читает неотрицательный целый query-параметр.
func queryIntDefault(ctx *gin.Context, key string, defaultValue int) int {
	raw := ctx.Query(key)
	if raw == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 0 {
		return defaultValue
	}
	return val
}
