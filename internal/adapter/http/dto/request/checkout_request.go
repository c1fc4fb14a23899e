package request

import (
	"strings"

	"learnhub_checkout/internal/domain/entities"
)

// CreateIntentRequest opens a payment intent for a course.
type CreateIntentRequest struct {
	BuyerID  string `json:"buyer_id" binding:"required"`
	CourseID string `json:"course_id" binding:"required"`
	Gateway  string `json:"gateway" binding:"required"`
}

func (r CreateIntentRequest) ResolveGateway() entities.Gateway {
	return entities.Gateway(strings.ToLower(strings.TrimSpace(r.Gateway)))
}

// BankConfirmationRequest is sent by an operator after matching a bank statement line.
type BankConfirmationRequest struct {
	AdminID   string `json:"admin_id" binding:"required"`
	Reference string `json:"reference"`
}

type BankRejectionRequest struct {
	AdminID string `json:"admin_id" binding:"required"`
}
