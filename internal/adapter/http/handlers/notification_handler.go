package handlers

import (
	"context"
	"net/http"

	request "learnhub_checkout/internal/adapter/http/dto/request"
	response "learnhub_checkout/internal/adapter/http/dto/response"
	"learnhub_checkout/internal/adapter/notification"
	"learnhub_checkout/internal/domain/entities"
	"learnhub_checkout/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ICheckoutWebhookResolver turns a hosted-checkout webhook into a canonical event.
type ICheckoutWebhookResolver interface {
	Resolve(ctx context.Context, hook notification.CheckoutWebhook) (entities.NotificationEvent, bool, error)
}

// NotificationHandler receives gateway callbacks. Duplicates are answered with 200 so
// gateways stop retrying.
type NotificationHandler struct {
	usecase  usecase.IFulfillmentUseCase
	resolver ICheckoutWebhookResolver
}

func NewNotificationHandler(uc usecase.IFulfillmentUseCase, resolver ICheckoutWebhookResolver) *NotificationHandler {
	return &NotificationHandler{usecase: uc, resolver: resolver}
}

// RedirectNotification godoc
// @Summary      Redirect gateway notify URL
// @Tags         notifications
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Success      200  {object}  response.NotificationResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      401  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /notifications/redirect [post]
func (h *NotificationHandler) RedirectNotification(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		renderError(c, errInvalidPayload)
		return
	}

	event, err := notification.ParseRedirectForm(c.Request.PostForm)
	if err != nil {
		renderError(c, mapCheckoutError(err))
		return
	}
	h.handle(c, event)
}

// CheckoutNotification godoc
// @Summary      Hosted-checkout webhook
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        x-signature   header    string  true   "ts=...,v1=..."
// @Param        x-request-id  header    string  false  "Request id"
// @Success      200           {object}  response.NotificationResponse
// @Failure      400           {object}  pkg.HTTPError
// @Failure      401           {object}  pkg.HTTPError
// @Failure      502           {object}  pkg.HTTPError
// @Router       /notifications/checkout [post]
func (h *NotificationHandler) CheckoutNotification(c *gin.Context) {
	var payload request.CheckoutWebhookRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			renderError(c, errInvalidPayload)
			return
		}
	}

	event, ignored, err := h.resolver.Resolve(c.Request.Context(), notification.CheckoutWebhook{
		Type:            payload.ResolveType(c.Query("type")),
		DataID:          payload.ResolveDataID(c.Query("data.id")),
		SignatureHeader: c.GetHeader("x-signature"),
		RequestID:       c.GetHeader("x-request-id"),
	})
	if err != nil {
		renderError(c, mapCheckoutError(err))
		return
	}
	if ignored {
		c.JSON(http.StatusOK, response.NotificationResponse{Ignored: true})
		return
	}
	h.handle(c, event)
}

func (h *NotificationHandler) handle(c *gin.Context, event entities.NotificationEvent) {
	result, err := h.usecase.HandleNotification(c.Request.Context(), event)
	if err != nil {
		renderError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromNotificationResult(result))
}
