package item

import (
	"errors"

	"pss-assistant/core/entity"
	"pss-assistant/core/logger"
	"pss-assistant/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for items.
type Handler struct {
	service *Service
	server  server.Config
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, srv server.Config) *Handler {
	return &Handler{service: service, server: srv}
}

// RegisterRoutes registers the item routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/items")
	group.Get("/:name", h.HandleGetItemDetails)
}

// HandleGetItemDetails returns the details of every item matching a name.
// @Summary Get Item Details
// @Description Search item designs by name and render their details.
// @Tags items
// @Produce json
// @Param name path string true "Item name (e.g. 'Gas Canister')"
// @Param format query string false "Response format (text, embed)"
// @Success 200 {object} entity.Result "Rendered details"
// @Failure 400 {object} map[string]string "Invalid name"
// @Failure 404 {object} entity.Result "No item found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /items/{name} [get]
func (h *Handler) HandleGetItemDetails(c *fiber.Ctx) error {
	name := c.Params("name")
	l := logger.WithRayID(h.service.logger, c)

	result, err := h.service.GetItemDetailsByName(c.Context(), name, h.server.UseEmbeds(c.Query("format")))
	if err != nil {
		if errors.Is(err, entity.ErrInvalidName) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Item lookup failed", zap.String("name", name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !result.Found {
		return c.Status(fiber.StatusNotFound).JSON(result)
	}
	return c.JSON(result)
}
