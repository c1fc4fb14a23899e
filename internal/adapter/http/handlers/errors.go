package handlers

import (
	"errors"
	"net/http"

	"learnhub_checkout/internal/adapter/notification"
	"learnhub_checkout/internal/domain/signature"
	"learnhub_checkout/internal/usecase"
	"learnhub_checkout/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid admin token", http.StatusUnauthorized)
)

func renderError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapCheckoutError translates usecase and adapter errors into API errors.
// Amount mismatch is a validation error too, so it is matched first.
func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrAmountMismatch):
		return pkg.NewDomainErrorSimple("AMOUNT_MISMATCH", "Reported amount does not match the payment intent", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrUnsupportedCurrency):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_CURRENCY", "No exchange rate for the settlement currency", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrValidation),
		errors.Is(err, notification.ErrMalformedNotification),
		errors.Is(err, usecase.ErrInvalidCourseVal),
		errors.Is(err, usecase.ErrInvalidCourseName),
		errors.Is(err, usecase.ErrInvalidCurrency):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSignatureInvalid),
		errors.Is(err, signature.ErrMalformedSignature),
		errors.Is(err, notification.ErrInvalidWebhookSignature):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Notification signature is invalid", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUnknownIntent):
		return pkg.NewDomainErrorSimple("INTENT_NOT_FOUND", "Payment intent not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCourseNotFound):
		return pkg.NewDomainErrorSimple("COURSE_NOT_FOUND", "Course not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSideEffectFailureNotFound):
		return pkg.NewDomainErrorSimple("SIDE_EFFECT_FAILURE_NOT_FOUND", "No open side effect failure for this intent", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAlreadyOwned):
		return pkg.NewDomainErrorSimple("ALREADY_OWNED", "Buyer already owns this course", http.StatusConflict)
	case errors.Is(err, usecase.ErrCourseNotPurchasable):
		return pkg.NewDomainErrorSimple("COURSE_NOT_PURCHASABLE", "Course is not available for purchase", http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrency):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "Payment intent is being updated, retry later", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrCheckoutUnavailable), errors.Is(err, notification.ErrPaymentLookupFailed):
		return pkg.NewDomainErrorSimple("GATEWAY_UNAVAILABLE", "Payment gateway unavailable", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
