package crew

import (
	"errors"
	"strconv"

	"pss-assistant/core/entity"
	"pss-assistant/core/logger"
	"pss-assistant/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for crew.
type Handler struct {
	service *Service
	server  server.Config
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, srv server.Config) *Handler {
	return &Handler{service: service, server: srv}
}

// RegisterRoutes registers the crew routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/crew")
	group.Get("/level", h.HandleGetLevelCosts)
	group.Get("/:name", h.HandleGetCrewDetails)
}

// HandleGetCrewDetails returns the details of every character matching a name.
// @Summary Get Crew Details
// @Description Search character designs by name and render their details, including their collection.
// @Tags crew
// @Produce json
// @Param name path string true "Crew name"
// @Param format query string false "Response format (text, embed)"
// @Success 200 {object} entity.Result "Rendered details"
// @Failure 400 {object} map[string]string "Invalid name"
// @Failure 404 {object} entity.Result "No crew found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /crew/{name} [get]
func (h *Handler) HandleGetCrewDetails(c *fiber.Ctx) error {
	name := c.Params("name")
	l := logger.WithRayID(h.service.logger, c)

	result, err := h.service.GetCharacterDetailsByName(c.Context(), name, h.server.UseEmbeds(c.Query("format")))
	if err != nil {
		if errors.Is(err, entity.ErrInvalidName) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Crew lookup failed", zap.String("name", name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !result.Found {
		return c.Status(fiber.StatusNotFound).JSON(result)
	}
	return c.JSON(result)
}

// HandleGetLevelCosts returns the gas and experience needed between two levels.
// @Summary Get Crew Level Costs
// @Description Sum the gas and experience needed to train a crew from one level to another.
// @Tags crew
// @Produce json
// @Param from query int false "Start level (default 1)"
// @Param to query int true "Target level"
// @Param legendary query boolean false "Use legendary cost tables"
// @Success 200 {object} LevelCost "Level costs"
// @Failure 400 {object} map[string]string "Invalid levels"
// @Router /crew/level [get]
func (h *Handler) HandleGetLevelCosts(c *fiber.Ctx) error {
	from := c.QueryInt("from", 1)
	to, err := strconv.Atoi(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "query parameter 'to' must be a number"})
	}
	legendary := c.QueryBool("legendary", false)

	cost, err := LevelCosts(from, to, legendary)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"cost":  cost,
		"lines": cost.Lines(),
	})
}
