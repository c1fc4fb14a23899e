package handlers

import (
	"net/http"

	request "learnhub_checkout/internal/adapter/http/dto/request"
	response "learnhub_checkout/internal/adapter/http/dto/response"
	"learnhub_checkout/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler serves the buyer-facing checkout endpoints.
type CheckoutHandler struct {
	usecase usecase.IFulfillmentUseCase
}

func NewCheckoutHandler(uc usecase.IFulfillmentUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// CreateIntent godoc
// @Summary      Open a payment intent
// @Description  Creates a pending intent for a course and returns the gateway launch parameters.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateIntentRequest  true  "Intent"
// @Success      201      {object}  response.IntentLaunchResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /checkout/intents [post]
func (h *CheckoutHandler) CreateIntent(c *gin.Context) {
	var payload request.CreateIntentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		renderError(c, errInvalidPayload)
		return
	}

	launch, err := h.usecase.CreateIntent(c.Request.Context(), usecase.CreateIntentCommand{
		BuyerID:  payload.BuyerID,
		CourseID: payload.CourseID,
		Gateway:  payload.ResolveGateway(),
	})
	if err != nil {
		renderError(c, mapCheckoutError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromIntentLaunch(launch))
}

// GetIntent godoc
// @Summary      Get a payment intent
// @Tags         checkout
// @Produce      json
// @Param        intent_id  path      string  true  "Intent ID"
// @Success      200        {object}  response.IntentResponse
// @Failure      404        {object}  pkg.HTTPError
// @Router       /checkout/intents/{intent_id} [get]
func (h *CheckoutHandler) GetIntent(c *gin.Context) {
	intent, err := h.usecase.GetIntent(c.Request.Context(), c.Param("intent_id"))
	if err != nil {
		renderError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentIntent(intent))
}

// ListBuyerGrants godoc
// @Summary      List the courses a buyer has access to
// @Tags         checkout
// @Produce      json
// @Param        buyer_id  path      string  true  "Buyer ID"
// @Success      200       {array}   response.GrantResponse
// @Router       /buyers/{buyer_id}/grants [get]
func (h *CheckoutHandler) ListBuyerGrants(c *gin.Context) {
	grants, err := h.usecase.ListGrantsByBuyer(c.Request.Context(), c.Param("buyer_id"))
	if err != nil {
		renderError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromGrants(grants))
}
