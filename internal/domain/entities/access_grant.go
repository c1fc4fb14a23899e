package entities

import "time"

// AccessGrant is the durable entitlement of a buyer to a course.
//
// At most one grant exists per (BuyerID, CourseID); the store enforces it.
type AccessGrant struct {
	BuyerID   string    `json:"buyer_id"`
	CourseID  string    `json:"course_id"`
	IntentID  string    `json:"intent_id"`
	GrantedAt time.Time `json:"granted_at"`
}

// GrantKey is the uniqueness key of a grant.
func GrantKey(buyerID, courseID string) string {
	return buyerID + "#" + courseID
}
