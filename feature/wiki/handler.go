package wiki

import (
	"errors"

	"pss-assistant/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	// HeaderUserID carries the chat user id of the caller.
	HeaderUserID = "X-User-ID"
	// HeaderGuildID carries the chat guild id the request comes from.
	HeaderGuildID = "X-Guild-ID"
)

// Handler handles HTTP requests for wiki exports.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the wiki routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/wiki")
	group.Get("/exports", h.HandleListExports)
	group.Post("/:entity", h.HandleExport)
}

// HandleExport exports one dataset as a Lua data file.
// @Summary Export Wiki Data
// @Description Write the whole dataset of an entity as a Lua table file. Restricted to owners, allow-listed guilds and allow-listed users.
// @Tags wiki
// @Produce json
// @Param entity path string true "Entity (rooms, items, crew, collections, room_purchases)"
// @Param X-User-ID header string false "Caller user id"
// @Param X-Guild-ID header string false "Caller guild id"
// @Success 200 {object} Export "Export record"
// @Failure 403 {object} map[string]string "Not allowed"
// @Failure 404 {object} map[string]string "Unknown entity"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /wiki/{entity} [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	entityName := c.Params("entity")
	l := logger.WithRayID(h.service.logger, c)

	caller := Caller{UserID: c.Get(HeaderUserID), GuildID: c.Get(HeaderGuildID)}
	if err := AssertAllowed(h.service.cfg, caller); err != nil {
		l.Warn("Wiki export rejected", zap.String("user", caller.UserID), zap.String("guild", caller.GuildID))
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": NotAllowedMessage})
	}

	export, err := h.service.Export(c.Context(), entityName)
	if err != nil {
		if errors.Is(err, ErrUnknownEntity) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error":    err.Error(),
				"entities": h.service.Entities(),
			})
		}
		l.Error("Wiki export failed", zap.String("entity", entityName), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(export)
}

// HandleListExports lists recorded exports.
// @Summary List Wiki Exports
// @Description List the latest recorded wiki exports, newest first.
// @Tags wiki
// @Produce json
// @Param entity query string false "Only this entity"
// @Param limit query int false "Maximum number of records (default 20)"
// @Success 200 {array} Export "Export records"
// @Failure 503 {object} map[string]string "No database configured"
// @Router /wiki/exports [get]
func (h *Handler) HandleListExports(c *fiber.Ctx) error {
	if h.service.store == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "export history requires a database"})
	}
	exports, err := h.service.History(c.Context(), c.Query("entity"), c.QueryInt("limit", 20))
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Listing wiki exports failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(exports)
}
