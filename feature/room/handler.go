package room

import (
	"errors"

	"pss-assistant/core/entity"
	"pss-assistant/core/logger"
	"pss-assistant/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for rooms.
type Handler struct {
	service *Service
	server  server.Config
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, srv server.Config) *Handler {
	return &Handler{service: service, server: srv}
}

// RegisterRoutes registers the room routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/rooms")
	group.Get("/:name", h.HandleGetRoomDetails)
}

// HandleGetRoomDetails returns the details of every room matching a name.
// @Summary Get Room Details
// @Description Search room designs by name or short name and render their details. More than three matches are listed in short form.
// @Tags rooms
// @Produce json
// @Param name path string true "Room name or short name (e.g. 'ion', 'AA')"
// @Param format query string false "Response format (text, embed)"
// @Success 200 {object} entity.Result "Rendered details"
// @Failure 400 {object} map[string]string "Invalid name"
// @Failure 404 {object} entity.Result "No room found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /rooms/{name} [get]
func (h *Handler) HandleGetRoomDetails(c *fiber.Ctx) error {
	name := c.Params("name")
	l := logger.WithRayID(h.service.logger, c)

	result, err := h.service.GetRoomDetailsByName(c.Context(), name, h.server.UseEmbeds(c.Query("format")))
	if err != nil {
		if errors.Is(err, entity.ErrInvalidName) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Room lookup failed", zap.String("name", name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !result.Found {
		return c.Status(fiber.StatusNotFound).JSON(result)
	}
	return c.JSON(result)
}
