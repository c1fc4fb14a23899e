package response

import (
	"time"

	"learnhub_checkout/internal/domain/entities"
)

type CourseResponse struct {
	CourseID  string    `json:"course_id"`
	Title     string    `json:"title"`
	Price     int64     `json:"price"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromCourse(c entities.Course) CourseResponse {
	return CourseResponse{
		CourseID:  c.ID,
		Title:     c.Title,
		Price:     c.Price,
		Currency:  c.Currency,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type GrantResponse struct {
	BuyerID   string    `json:"buyer_id"`
	CourseID  string    `json:"course_id"`
	IntentID  string    `json:"intent_id"`
	GrantedAt time.Time `json:"granted_at"`
}

func FromGrants(list []entities.AccessGrant) []GrantResponse {
	out := make([]GrantResponse, 0, len(list))
	for _, g := range list {
		out = append(out, GrantResponse{BuyerID: g.BuyerID, CourseID: g.CourseID, IntentID: g.IntentID, GrantedAt: g.GrantedAt})
	}
	return out
}

type SideEffectFailureResponse struct {
	IntentID  string    `json:"intent_id"`
	BuyerID   string    `json:"buyer_id"`
	CourseID  string    `json:"course_id"`
	Stage     string    `json:"stage"`
	Error     string    `json:"error"`
	Attempts  int       `json:"attempts"`
	FailedAt  time.Time `json:"failed_at"`
	InvoiceID string    `json:"invoice_id,omitempty"`
}

func FromSideEffectFailures(list []entities.SideEffectFailure) []SideEffectFailureResponse {
	out := make([]SideEffectFailureResponse, 0, len(list))
	for _, f := range list {
		out = append(out, SideEffectFailureResponse{
			IntentID:  f.IntentID,
			BuyerID:   f.BuyerID,
			CourseID:  f.CourseID,
			Stage:     string(f.Stage),
			Error:     f.Error,
			Attempts:  f.Attempts,
			FailedAt:  f.FailedAt,
			InvoiceID: f.InvoiceID,
		})
	}
	return out
}
