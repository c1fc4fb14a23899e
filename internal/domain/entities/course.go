package entities

import "time"

// CourseStatus controls whether a course can be bought.
type CourseStatus string

const (
	CourseStatusDraft     CourseStatus = "draft"
	CourseStatusPublished CourseStatus = "published"
	CourseStatusArchived  CourseStatus = "archived"
)

// Course is the catalog entry a PaymentIntent is opened for.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - Price is in minor units of Currency.
type Course struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Price     int64        `json:"price"`
	Currency  string       `json:"currency"`
	Status    CourseStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func (c Course) Purchasable() bool {
	return c.Status == CourseStatusPublished && c.Price > 0
}
