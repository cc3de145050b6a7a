package integrity

import (
	"aoe4-sync/core/logger"

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
	group.Get("/schema", h.HandleSchemaCheck)
	group.Get("/archive", h.HandleArchiveCheck)
}

// HandleIntegrityCheck runs every check without fixing anything.
// @Summary Run All Integrity Checks
// @Description Runs the schema and archive checks without fixing anything.
// @Tags integrity
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.Context()
	report := make(map[string]any)

	if schemaReport, err := h.service.CheckSchema(ctx); err != nil {
		report["schema"] = fiber.Map{"status": "error", "error": err.Error()}
	} else {
		report["schema"] = schemaReport
	}

	if archiveReport, err := h.service.CheckArchive(ctx, false); err != nil {
		report["archive"] = fiber.Map{"status": "error", "error": err.Error()}
	} else {
		report["archive"] = archiveReport
	}

	return c.JSON(report)
}

// HandleSchemaCheck checks and, with ?fix=true, migrates the sync tables.
// @Summary Check Schema
// @Description Compares the destination tables against the models. Optionally migrates the live tables.
// @Tags integrity
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param fix query boolean false "Migrate the live tables"
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	check := h.service.CheckSchema
	if c.QueryBool("fix") {
		l.Info("Attempting to fix schema")
		check = h.service.FixSchema
	}

	report, err := check(c.Context())
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !report.Matched {
		l.Warn("Schema mismatch detected", zap.Strings("tables", report.MismatchedTables()))
	}
	return c.JSON(report)
}

// HandleArchiveCheck checks and, with ?fix=true, creates the snapshot bucket.
// @Summary Check Snapshot Archive
// @Description Checks that the snapshot bucket exists. Optionally creates it.
// @Tags integrity
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param fix query boolean false "Create the bucket when missing"
// @Success 200 {object} checks.ArchiveReport "Archive Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/archive [get]
func (h *Handler) HandleArchiveCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckArchive(c.Context(), c.QueryBool("fix"))
	if err != nil {
		l.Error("Archive check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}
