package handlers

import (
	"net/http"

	request "learnhub_checkout/internal/adapter/http/dto/request"
	response "learnhub_checkout/internal/adapter/http/dto/response"
	"learnhub_checkout/internal/domain/entities"
	"learnhub_checkout/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves operator actions. Routes are mounted behind AdminAuth.
type AdminHandler struct {
	fulfillment usecase.IFulfillmentUseCase
	sideEffects usecase.ISideEffectUseCase
}

func NewAdminHandler(fulfillment usecase.IFulfillmentUseCase, sideEffects usecase.ISideEffectUseCase) *AdminHandler {
	return &AdminHandler{fulfillment: fulfillment, sideEffects: sideEffects}
}

// ConfirmBankTransfer godoc
// @Summary      Confirm a bank transfer
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        intent_id  path      string                           true  "Intent ID"
// @Param        request    body      request.BankConfirmationRequest  true  "Confirmation"
// @Success      200        {object}  response.NotificationResponse
// @Failure      400        {object}  pkg.HTTPError
// @Failure      404        {object}  pkg.HTTPError
// @Router       /admin/intents/{intent_id}/bank-confirmation [post]
func (h *AdminHandler) ConfirmBankTransfer(c *gin.Context) {
	var payload request.BankConfirmationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		renderError(c, errInvalidPayload)
		return
	}

	result, err := h.fulfillment.ConfirmBankTransfer(c.Request.Context(), c.Param("intent_id"), payload.AdminID, payload.Reference)
	if err != nil {
		renderError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromNotificationResult(result))
}

// RejectBankTransfer godoc
// @Summary      Reject a bank transfer
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        intent_id  path      string                        true  "Intent ID"
// @Param        request    body      request.BankRejectionRequest  true  "Rejection"
// @Success      200        {object}  response.NotificationResponse
// @Router       /admin/intents/{intent_id}/bank-rejection [post]
func (h *AdminHandler) RejectBankTransfer(c *gin.Context) {
	var payload request.BankRejectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		renderError(c, errInvalidPayload)
		return
	}

	result, err := h.fulfillment.RejectBankTransfer(c.Request.Context(), c.Param("intent_id"), payload.AdminID)
	if err != nil {
		renderError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromNotificationResult(result))
}

// ExpireIntent godoc
// @Summary      Expire a pending intent
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        intent_id  path      string  true  "Intent ID"
// @Success      200        {object}  response.NotificationResponse
// @Router       /admin/intents/{intent_id}/expire [post]
func (h *AdminHandler) ExpireIntent(c *gin.Context) {
	result, err := h.fulfillment.ExpireIntent(c.Request.Context(), c.Param("intent_id"))
	if err != nil {
		renderError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromNotificationResult(result))
}

// ListIntents godoc
// @Summary      List intents by status
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        status  query     string  true  "pending|confirmed|failed|expired"
// @Success      200     {array}   response.IntentResponse
// @Router       /admin/intents [get]
func (h *AdminHandler) ListIntents(c *gin.Context) {
	intents, err := h.fulfillment.ListIntentsByStatus(c.Request.Context(), entities.PaymentStatus(c.Query("status")))
	if err != nil {
		renderError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentIntents(intents))
}

// ListSideEffectFailures godoc
// @Summary      List failed fulfillment steps
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Success      200  {array}  response.SideEffectFailureResponse
// @Router       /admin/side-effect-failures [get]
func (h *AdminHandler) ListSideEffectFailures(c *gin.Context) {
	failures, err := h.sideEffects.ListFailures(c.Request.Context())
	if err != nil {
		renderError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSideEffectFailures(failures))
}

// RetrySideEffect godoc
// @Summary      Retry a failed fulfillment step
// @Tags         admin
// @Security     Bearer
// @Param        intent_id  path  string  true  "Intent ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /admin/side-effect-failures/{intent_id}/retry [post]
func (h *AdminHandler) RetrySideEffect(c *gin.Context) {
	if err := h.sideEffects.Retry(c.Request.Context(), c.Param("intent_id")); err != nil {
		renderError(c, mapCheckoutError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
