package handlers

import (
	"math"
	"time"

	"danawa-backend/internal/database"
	"danawa-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultPage          = 1
	defaultPerPage       = 9
	reviewSuccessMessage = "리뷰가 성공적으로 등록되었습니다."
)

type ReviewHandler struct {
	store database.ReviewStore
	now   func() time.Time
}

func NewReviewHandler(store database.ReviewStore, now func() time.Time) *ReviewHandler {
	if now == nil {
		now = time.Now
	}
	return &ReviewHandler{store: store, now: now}
}

// GetReviews godoc
// @Summary      List reviews
// @Description  Newest first. Pages past the end, or page < 1, come back empty.
// @Tags         reviews
// @Produce      json
// @Param        page      query  int  false  "Page number (default 1)"
// @Param        per_page  query  int  false  "Items per page (default 9)"
// @Success      200  {object}  models.ReviewPage
// @Failure      400  {object}  map[string]string
// @Router       /api/reviews [get]
func (h *ReviewHandler) GetReviews(c *fiber.Ctx) error {
	page, err := queryInt(c, "page", defaultPage)
	if err != nil {
		return badRequest(c, "Invalid page")
	}
	perPage, err := queryInt(c, "per_page", defaultPerPage)
	if err != nil {
		return badRequest(c, "Invalid per_page")
	}

	offset, limit := pageWindow(page, perPage)
	reviews, total := h.store.List(offset, limit)

	return c.JSON(models.ReviewPage{
		Reviews: reviews,
		Total:   total,
		Page:    page,
		PerPage: perPage,
		Pages:   pageCount(total, perPage),
	})
}

// CreateReview godoc
// @Summary      Submit a review
// @Description  Assigns id and today's date and stores the review first
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        body  body      models.ReviewSubmission  true  "Review"
// @Success      200   {object}  models.ReviewCreateResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/reviews [post]
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	var req models.ReviewSubmission
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	review, err := h.store.Prepend(req, h.now())
	if err != nil {
		return internalError(c, err)
	}

	return c.JSON(models.ReviewCreateResponse{
		Success: true,
		Message: reviewSuccessMessage,
		Review:  review,
	})
}

// pageWindow converts a 1-based page into an offset and limit. Pages below
// 1 and non-positive sizes select nothing; huge values saturate instead of
// overflowing.
func pageWindow(page, perPage int) (offset, limit int) {
	if page < 1 || perPage < 1 {
		return 0, 0
	}
	if page-1 > math.MaxInt/perPage {
		return math.MaxInt, perPage
	}
	return (page - 1) * perPage, perPage
}

func pageCount(total, perPage int) int {
	if perPage < 1 {
		return 0
	}
	pages := total / perPage
	if total%perPage != 0 {
		pages++
	}
	return pages
}
