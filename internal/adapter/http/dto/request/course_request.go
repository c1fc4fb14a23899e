package request

// CreateCourseRequest registers a draft course. Price is in minor units of Currency.
type CreateCourseRequest struct {
	Title    string `json:"title" binding:"required"`
	Price    int64  `json:"price" binding:"required"`
	Currency string `json:"currency" binding:"required"`
}

type UpdateCoursePriceRequest struct {
	Price    int64  `json:"price" binding:"required"`
	Currency string `json:"currency" binding:"required"`
}
