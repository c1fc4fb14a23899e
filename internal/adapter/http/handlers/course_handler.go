package handlers

import (
	"context"
	"net/http"

	request "learnhub_checkout/internal/adapter/http/dto/request"
	response "learnhub_checkout/internal/adapter/http/dto/response"
	"learnhub_checkout/internal/domain/entities"
	"learnhub_checkout/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CourseHandler handles the course catalog.
type CourseHandler struct {
	usecase usecase.ICourseUseCase
}

func NewCourseHandler(uc usecase.ICourseUseCase) *CourseHandler {
	return &CourseHandler{usecase: uc}
}

// CreateCourse godoc
// @Summary      Create a draft course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        request  body      request.CreateCourseRequest  true  "Course"
// @Success      201      {object}  response.CourseResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /courses [post]
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var payload request.CreateCourseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		renderError(c, errInvalidPayload)
		return
	}

	course, err := h.usecase.CreateCourse(c.Request.Context(), payload.Title, payload.Price, payload.Currency)
	if err != nil {
		renderError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromCourse(course))
}

// GetCourse godoc
// @Summary      Get a course
// @Tags         courses
// @Produce      json
// @Param        course_id  path      string  true  "Course ID"
// @Success      200        {object}  response.CourseResponse
// @Failure      404        {object}  pkg.HTTPError
// @Router       /courses/{course_id} [get]
func (h *CourseHandler) GetCourse(c *gin.Context) {
	course, err := h.usecase.GetByID(c.Request.Context(), c.Param("course_id"))
	if err != nil {
		renderError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCourse(course))
}

// PublishCourse godoc
// @Summary      Publish a course
// @Tags         courses
// @Produce      json
// @Security     Bearer
// @Param        course_id  path      string  true  "Course ID"
// @Success      200        {object}  response.CourseResponse
// @Router       /courses/{course_id}/publish [patch]
func (h *CourseHandler) PublishCourse(c *gin.Context) {
	h.patchCourseStatus(c, h.usecase.Publish)
}

// UnpublishCourse godoc
// @Summary      Archive a course
// @Tags         courses
// @Produce      json
// @Security     Bearer
// @Param        course_id  path      string  true  "Course ID"
// @Success      200        {object}  response.CourseResponse
// @Router       /courses/{course_id}/unpublish [patch]
func (h *CourseHandler) UnpublishCourse(c *gin.Context) {
	h.patchCourseStatus(c, h.usecase.Unpublish)
}

// UpdateCoursePrice godoc
// @Summary      Change the listed price
// @Description  Open intents keep the amount they were created with.
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        course_id  path      string                            true  "Course ID"
// @Param        request    body      request.UpdateCoursePriceRequest  true  "Price"
// @Success      200        {object}  response.CourseResponse
// @Router       /courses/{course_id}/price [patch]
func (h *CourseHandler) UpdateCoursePrice(c *gin.Context) {
	var payload request.UpdateCoursePriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		renderError(c, errInvalidPayload)
		return
	}

	course, err := h.usecase.UpdatePrice(c.Request.Context(), c.Param("course_id"), payload.Price, payload.Currency)
	if err != nil {
		renderError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCourse(course))
}

func (h *CourseHandler) patchCourseStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Course, error),
) {
	course, err := updater(c.Request.Context(), c.Param("course_id"))
	if err != nil {
		renderError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCourse(course))
}
