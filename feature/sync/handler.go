package sync

import (
	"errors"

	"aoe4-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler exposes sync triggers and archived snapshots over HTTP.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the sync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sync")
	group.Post("/", h.HandleStart)
	group.Get("/last", h.HandleLast)
	group.Get("/snapshots", h.HandleRuns)
	group.Get("/snapshots/:run", h.HandleDatasets)
	group.Get("/snapshots/:run/:dataset", h.HandleSnapshot)
}

// HandleStart launches a run in the background. ?mode=full|quick, default full.
// @Summary Start Sync Run
// @Description Starts a sync run in the background and returns its run id. Only one run may be active at a time.
// @Tags sync
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param mode query string false "Run mode (default full)" Enums(full, quick)
// @Success 202 {object} map[string]string "Run accepted"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 409 {object} map[string]string "Run already in progress"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync [post]
func (h *Handler) HandleStart(c *fiber.Ctx) error {
	mode := c.Query("mode", ModeFull)
	runID, err := h.service.Start(mode)
	switch {
	case errors.Is(err, ErrUnknownMode):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrRunInProgress):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	logger.WithRayID(h.logger, c).Info("Sync run started", zap.String("run_id", runID), zap.String("mode", mode))
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"run_id": runID, "mode": mode})
}

// HandleLast returns the most recent report.
// @Summary Get Last Sync Report
// @Description Returns the report of the most recently completed run.
// @Tags sync
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} sync.Report "Sync Report"
// @Failure 404 {object} map[string]string "No run completed yet"
// @Router /sync/last [get]
func (h *Handler) HandleLast(c *fiber.Ctx) error {
	report := h.service.LastReport()
	if report == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no sync has completed yet"})
	}
	return c.JSON(report)
}

// HandleRuns lists archived run ids.
// @Summary List Snapshot Runs
// @Description Lists the run ids that have archived snapshots, oldest first.
// @Tags sync
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{} "Run ids"
// @Failure 404 {object} map[string]string "Archive disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync/snapshots [get]
func (h *Handler) HandleRuns(c *fiber.Ctx) error {
	archive := h.service.Archive()
	if archive == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "snapshot archive is disabled"})
	}
	runs, err := archive.Runs(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"runs": runs})
}

// HandleDatasets lists the datasets of one run.
// @Summary List Snapshot Datasets
// @Description Lists the datasets archived for one run.
// @Tags sync
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param run path string true "Run id"
// @Success 200 {object} map[string]interface{} "Datasets"
// @Failure 404 {object} map[string]string "Archive disabled or run not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync/snapshots/{run} [get]
func (h *Handler) HandleDatasets(c *fiber.Ctx) error {
	archive := h.service.Archive()
	if archive == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "snapshot archive is disabled"})
	}
	datasets, err := archive.Datasets(c.Context(), c.Params("run"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"run_id": c.Params("run"), "datasets": datasets})
}

// HandleSnapshot returns one archived dataset as stored.
// @Summary Get Snapshot
// @Description Returns one archived upstream payload exactly as stored.
// @Tags sync
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param run path string true "Run id"
// @Param dataset path string true "Dataset (e.g. 'stats:rm_solo:all')"
// @Success 200 {object} map[string]interface{} "Archived payload"
// @Failure 404 {object} map[string]string "Archive disabled or snapshot not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync/snapshots/{run}/{dataset} [get]
func (h *Handler) HandleSnapshot(c *fiber.Ctx) error {
	archive := h.service.Archive()
	if archive == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "snapshot archive is disabled"})
	}
	data, err := archive.Get(c.Context(), c.Params("run"), c.Params("dataset"))
	if err != nil {
		return h.fail(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(data)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	if errors.Is(err, ErrSnapshotNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(h.logger, c).Error("Snapshot request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
