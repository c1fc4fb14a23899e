package entities

import "time"

// SideEffectStage names the post-fulfillment step that failed.
type SideEffectStage string

const (
	SideEffectStageInvoice SideEffectStage = "invoice"
	SideEffectStageEmail   SideEffectStage = "email"
	SideEffectStageEvent   SideEffectStage = "event"
)

// SideEffectFailure records a best-effort fulfillment step awaiting manual retry.
// There is at most one open record per intent; a newer failure replaces it.
type SideEffectFailure struct {
	IntentID  string          `json:"intent_id"`
	BuyerID   string          `json:"buyer_id"`
	CourseID  string          `json:"course_id"`
	Stage     SideEffectStage `json:"stage"`
	Error     string          `json:"error"`
	Attempts  int             `json:"attempts"`
	FailedAt  time.Time       `json:"failed_at"`
	InvoiceID string          `json:"invoice_id,omitempty"`
}
