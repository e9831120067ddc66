package handlers

import (
	"errors"

	"danawa-backend/internal/database"

	"github.com/gofiber/fiber/v2"
)

type ServiceHandler struct {
	catalog *database.ServiceCatalog
}

func NewServiceHandler(catalog *database.ServiceCatalog) *ServiceHandler {
	return &ServiceHandler{catalog: catalog}
}

// GetServices godoc
// @Summary      List services
// @Tags         services
// @Produce      json
// @Success      200  {array}  models.Service
// @Router       /api/services [get]
func (h *ServiceHandler) GetServices(c *fiber.Ctx) error {
	return c.JSON(h.catalog.List())
}

// GetServiceByID godoc
// @Summary      Get service by ID
// @Tags         services
// @Produce      json
// @Param        id   path      int  true  "Service ID"
// @Success      200  {object}  models.Service
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/services/{id} [get]
func (h *ServiceHandler) GetServiceByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, "Invalid service ID format")
	}

	svc, err := h.catalog.GetByID(id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return notFound(c, "Service not found")
		}
		return internalError(c, err)
	}

	return c.JSON(svc)
}
