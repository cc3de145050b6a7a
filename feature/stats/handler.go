package stats

import (
	"errors"

	"aoe4-sync/core/logger"
	"aoe4-sync/feature/aoe4world"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves read-only views over the reference and statistics tables.
type Handler struct {
	store  *Store
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(store *Store, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// RegisterRoutes registers the stats routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	civs := app.Group("/civilizations")
	civs.Get("/", h.HandleCivilizations)
	civs.Get("/:id", h.HandleCivilization)
	civs.Get("/:id/units", h.HandleUnits)
	civs.Get("/:id/buildings", h.HandleBuildings)
	civs.Get("/:id/technologies", h.HandleTechnologies)

	app.Get("/units/:id/comparison", h.HandleUnitComparison)
	app.Get("/meta-stats", h.HandleMetaStats)
	app.Get("/leaderboards/:leaderboard", h.HandleLeaderboard)
}

// HandleCivilizations lists civilizations.
// @Summary List Civilizations
// @Description Lists every civilization in the reference tables ordered by name.
// @Tags stats
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} stats.Civilization "Civilizations"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /civilizations [get]
func (h *Handler) HandleCivilizations(c *fiber.Ctx) error {
	civs, err := h.store.Civilizations(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(civs)
}

// HandleCivilization returns one civilization.
// @Summary Get Civilization
// @Description Returns one civilization by slug.
// @Tags stats
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Civilization slug (e.g. 'english')"
// @Success 200 {object} stats.Civilization "Civilization"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /civilizations/{id} [get]
func (h *Handler) HandleCivilization(c *fiber.Ctx) error {
	civ, err := h.store.Civilization(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(civ)
}

// HandleUnits lists a civilization's units; ?unique=true restricts to unique ones.
// @Summary List Civilization Units
// @Description Lists the units available to a civilization joined with their base unit.
// @Tags stats
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Civilization slug"
// @Param unique query boolean false "Only units unique to the civilization"
// @Success 200 {array} stats.UnitDetail "Units"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /civilizations/{id}/units [get]
func (h *Handler) HandleUnits(c *fiber.Ctx) error {
	id := c.Params("id")
	var (
		units []UnitDetail
		err   error
	)
	if c.QueryBool("unique") {
		units, err = h.store.UniqueUnitsForCiv(c.Context(), id)
	} else {
		units, err = h.store.UnitsForCiv(c.Context(), id)
	}
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(units)
}

// HandleBuildings lists a civilization's buildings.
// @Summary List Civilization Buildings
// @Description Lists the buildings available to a civilization joined with their base building.
// @Tags stats
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Civilization slug"
// @Param unique query boolean false "Only buildings unique to the civilization"
// @Success 200 {array} stats.BuildingDetail "Buildings"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /civilizations/{id}/buildings [get]
func (h *Handler) HandleBuildings(c *fiber.Ctx) error {
	id := c.Params("id")
	var (
		buildings []BuildingDetail
		err       error
	)
	if c.QueryBool("unique") {
		buildings, err = h.store.UniqueBuildingsForCiv(c.Context(), id)
	} else {
		buildings, err = h.store.BuildingsForCiv(c.Context(), id)
	}
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(buildings)
}

// HandleTechnologies lists a civilization's technologies.
// @Summary List Civilization Technologies
// @Description Lists the technologies available to a civilization joined with their base technology.
// @Tags stats
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Civilization slug"
// @Param unique query boolean false "Only technologies unique to the civilization"
// @Success 200 {array} stats.TechnologyDetail "Technologies"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /civilizations/{id}/technologies [get]
func (h *Handler) HandleTechnologies(c *fiber.Ctx) error {
	id := c.Params("id")
	var (
		techs []TechnologyDetail
		err   error
	)
	if c.QueryBool("unique") {
		techs, err = h.store.UniqueTechnologiesForCiv(c.Context(), id)
	} else {
		techs, err = h.store.TechnologiesForCiv(c.Context(), id)
	}
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(techs)
}

// HandleUnitComparison compares one unit across civilizations.
// @Summary Compare Unit Across Civilizations
// @Description Returns every civilization's variant of one base unit.
// @Tags stats
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Base unit id (e.g. 'spearman')"
// @Success 200 {array} stats.UnitVariant "Unit variants"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /units/{id}/comparison [get]
func (h *Handler) HandleUnitComparison(c *fiber.Ctx) error {
	variants, err := h.store.UnitComparison(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(variants)
}

// HandleMetaStats returns meta stats for ?leaderboard= and ?rank_level=, optionally limited.
// @Summary Get Civilization Meta Stats
// @Description Returns synced win and pick rates for one leaderboard and rank bracket, best win rate first.
// @Tags stats
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param leaderboard query string false "Leaderboard (default rm_solo)" Enums(rm_solo, rm_team, rm_1v1, rm_2v2, rm_3v3, rm_4v4)
// @Param rank_level query string false "Rank bracket (default all)" Enums(all, bronze, silver, gold, platinum, diamond, conqueror)
// @Param limit query integer false "Return only the top N civilizations"
// @Success 200 {array} stats.MetaStatView "Meta stats"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /meta-stats [get]
func (h *Handler) HandleMetaStats(c *fiber.Ctx) error {
	lb := c.Query("leaderboard", aoe4world.LeaderboardRMSolo)
	rank := c.Query("rank_level", aoe4world.RankAll)
	if !aoe4world.IsLeaderboard(lb) || !aoe4world.IsRankLevel(rank) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown leaderboard or rank_level"})
	}

	var (
		rows []MetaStatView
		err  error
	)
	if limit := c.QueryInt("limit", 0); limit > 0 {
		rows, err = h.store.TopCivsByWinRate(c.Context(), lb, rank, limit)
	} else {
		rows, err = h.store.CivMetaStats(c.Context(), lb, rank)
	}
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(rows)
}

// HandleLeaderboard returns stored players of a leaderboard ordered by rank.
// @Summary Get Leaderboard Players
// @Description Returns the synced players of a leaderboard ordered by rank.
// @Tags stats
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param leaderboard path string true "Leaderboard" Enums(rm_solo, rm_team, rm_1v1, rm_2v2, rm_3v3, rm_4v4)
// @Param limit query integer false "Maximum players (default 50)"
// @Success 200 {array} stats.LeaderboardPlayer "Players"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /leaderboards/{leaderboard} [get]
func (h *Handler) HandleLeaderboard(c *fiber.Ctx) error {
	lb := c.Params("leaderboard")
	if !aoe4world.IsLeaderboard(lb) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown leaderboard"})
	}
	players, err := h.store.LeaderboardPlayers(c.Context(), lb, c.QueryInt("limit", 50))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(players)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(h.logger, c).Error("Stats query failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
