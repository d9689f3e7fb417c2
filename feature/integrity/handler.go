package integrity

import (
	"errors"

	"pss-assistant/core/logger"
	"pss-assistant/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/snapshots", h.HandleSnapshotCheck)
	group.Get("/chains", h.HandleChainCheck)
	group.Get("/drift", h.HandleDriftCheck)
	group.Get("/schema", h.HandleSchemaCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs the snapshot and chain checks, and the schema check when a database is connected. Drift is checked separately since it fetches every dataset live.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.Context()
	report := make(map[string]interface{})

	if missing, err := h.service.CheckSnapshots(ctx); err != nil {
		report["snapshots"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["snapshots"] = map[string]interface{}{"status": "ok", "missing": missing}
	}

	if chains, err := h.service.CheckRoomChains(ctx); err != nil {
		report["chains"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["chains"] = chains
	}

	if h.service.HasDatabase() {
		if schema, err := h.service.CheckSchema(); err != nil {
			report["schema"] = map[string]interface{}{"status": "error", "error": err.Error()}
		} else {
			report["schema"] = schema
		}
	}

	return c.JSON(report)
}

// HandleSnapshotCheck checks and optionally fixes dataset snapshots.
// @Summary Check Snapshots
// @Description Verify that a snapshot object exists in the bucket for every design dataset. Optionally stores the missing ones from the live game API.
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Store missing snapshots"
// @Success 200 {object} map[string]interface{} "Snapshot Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Failure 503 {object} map[string]string "No live source"
// @Router /integrity/snapshots [get]
func (h *Handler) HandleSnapshotCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	missing, err := h.service.CheckSnapshots(c.Context())
	if err != nil {
		l.Error("Snapshot check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(missing) > 0 {
		l.Warn("Missing snapshots detected", zap.Strings("missing", missing))

		if fix {
			l.Info("Attempting to store missing snapshots")
			if err := h.service.FixSnapshots(c.Context(), missing); err != nil {
				return fixError(c, err, missing)
			}
			return c.JSON(fiber.Map{
				"status": "fixed",
				"fixed":  missing,
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}

// HandleDriftCheck compares snapshots with the live game API.
// @Summary Check Snapshot Drift
// @Description Compare every bucket snapshot with the live dataset: ids only live, ids only in the snapshot, and differing fields. Optionally refreshes drifted snapshots.
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Refresh drifted snapshots"
// @Success 200 {object} map[string]interface{} "Drift Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Failure 503 {object} map[string]string "No live source"
// @Router /integrity/drift [get]
func (h *Handler) HandleDriftCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	results, err := h.service.CheckDrift(c.Context())
	if err != nil {
		if errors.Is(err, ErrNoLiveSource) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Drift check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	drifted := driftedKeys(results)
	if len(drifted) > 0 && fix {
		l.Info("Refreshing drifted snapshots", zap.Strings("keys", drifted))
		if err := h.service.FixSnapshots(c.Context(), drifted); err != nil {
			return fixError(c, err, drifted)
		}
		return c.JSON(fiber.Map{
			"status":  "fixed",
			"fixed":   drifted,
			"results": results,
		})
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"drifted": drifted,
		"results": results,
	})
}

func driftedKeys(results []checks.DriftResult) []string {
	keys := []string{}
	for _, r := range results {
		if !r.InSync() {
			keys = append(keys, r.Key)
		}
	}
	return keys
}

func fixError(c *fiber.Ctx, err error, keys []string) error {
	status := fiber.StatusInternalServerError
	if errors.Is(err, ErrNoLiveSource) {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(fiber.Map{
		"error":   "Failed to store snapshots",
		"details": err.Error(),
		"missing": keys,
	})
}

// HandleChainCheck checks room upgrade chains.
// @Summary Check Room Upgrade Chains
// @Description Report room designs whose upgrade parent is missing or whose chain loops.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.ChainReport "Chain Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/chains [get]
func (h *Handler) HandleChainCheck(c *fiber.Ctx) error {
	report, err := h.service.CheckRoomChains(c.Context())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Chain check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleSchemaCheck checks the export history tables.
// @Summary Check Database Schema
// @Description Compare the tables this service owns with their models. Optionally migrates them.
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Migrate mismatched tables"
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Failure 503 {object} map[string]string "No database"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckSchema()
	if err != nil {
		if errors.Is(err, ErrNoDatabase) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if !report.Matched && c.Query("fix") == "true" {
		l.Info("Migrating mismatched tables")
		if err := h.service.FixSchema(); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if report, err = h.service.CheckSchema(); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}
	return c.JSON(report)
}
