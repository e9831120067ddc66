package handlers

import (
	"errors"

	"danawa-backend/internal/database"

	"github.com/gofiber/fiber/v2"
)

type PortfolioHandler struct {
	catalog *database.PortfolioCatalog
}

func NewPortfolioHandler(catalog *database.PortfolioCatalog) *PortfolioHandler {
	return &PortfolioHandler{catalog: catalog}
}

// GetPortfolioItems godoc
// @Summary      List portfolio items
// @Description  All items, or only those whose category matches exactly ("all" disables the filter)
// @Tags         portfolio
// @Produce      json
// @Param        category  query  string  false  "Category"
// @Success      200  {array}  models.PortfolioItem
// @Router       /api/portfolio [get]
func (h *PortfolioHandler) GetPortfolioItems(c *fiber.Ctx) error {
	return c.JSON(h.catalog.List(c.Query("category")))
}

// GetPortfolioItemByID godoc
// @Summary      Get portfolio item by ID
// @Tags         portfolio
// @Produce      json
// @Param        id   path      int  true  "Portfolio item ID"
// @Success      200  {object}  models.PortfolioItem
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/portfolio/{id} [get]
func (h *PortfolioHandler) GetPortfolioItemByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, "Invalid portfolio item ID format")
	}

	item, err := h.catalog.GetByID(id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return notFound(c, "Portfolio item not found")
		}
		return internalError(c, err)
	}

	return c.JSON(item)
}
