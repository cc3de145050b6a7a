package stats_test

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"aoe4-sync/feature/stats"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) (*fiber.App, *stats.Store) {
	t.Helper()
	store, _, _ := newStore(t)
	seedReference(t, store.DB())

	feature := stats.NewFeature(store, zap.NewNop())
	require.True(t, feature.IsEnabled())
	assert.Equal(t, "stats", feature.Name())

	app := fiber.New()
	require.NoError(t, feature.Load(app))
	return app, store
}

func getJSON(t *testing.T, app *fiber.App, path string, out any) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil && resp.StatusCode == fiber.StatusOK {
		require.NoError(t, json.Unmarshal(body, out))
	}
	return resp.StatusCode
}

func TestHandler_Civilizations(t *testing.T) {
	app, _ := newTestApp(t)

	var civs []stats.Civilization
	assert.Equal(t, fiber.StatusOK, getJSON(t, app, "/civilizations", &civs))
	assert.Len(t, civs, len(knownCivs))

	var civ stats.Civilization
	assert.Equal(t, fiber.StatusOK, getJSON(t, app, "/civilizations/english", &civ))
	assert.Equal(t, "English", civ.Name)

	assert.Equal(t, fiber.StatusNotFound, getJSON(t, app, "/civilizations/atlantis", nil))
}

func TestHandler_CivilizationDetails(t *testing.T) {
	app, _ := newTestApp(t)

	var units []stats.UnitDetail
	assert.Equal(t, fiber.StatusOK, getJSON(t, app, "/civilizations/english/units?unique=true", &units))
	require.Len(t, units, 1)
	assert.Equal(t, "longbowman", units[0].UnitID)

	var buildings []stats.BuildingDetail
	assert.Equal(t, fiber.StatusOK, getJSON(t, app, "/civilizations/english/buildings", &buildings))
	assert.Len(t, buildings, 2)

	var techs []stats.TechnologyDetail
	assert.Equal(t, fiber.StatusOK, getJSON(t, app, "/civilizations/english/technologies?unique=1", &techs))
	assert.Len(t, techs, 1)

	var variants []stats.UnitVariant
	assert.Equal(t, fiber.StatusOK, getJSON(t, app, "/units/spearman/comparison", &variants))
	assert.Len(t, variants, 2)
}

func TestHandler_MetaStats(t *testing.T) {
	app, store := newTestApp(t)
	_, err := store.UpsertCivMetaStats(context.Background(), metaRows("english", "french", "rus"))
	require.NoError(t, err)

	var rows []stats.MetaStatView
	assert.Equal(t, fiber.StatusOK, getJSON(t, app, "/meta-stats", &rows))
	assert.Len(t, rows, 3)

	assert.Equal(t, fiber.StatusOK, getJSON(t, app, "/meta-stats?leaderboard=rm_solo&rank_level=all&limit=1", &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "rus", rows[0].CivID)

	assert.Equal(t, fiber.StatusBadRequest, getJSON(t, app, "/meta-stats?leaderboard=qm_ffa", nil))
}

func TestHandler_Leaderboard(t *testing.T) {
	app, store := newTestApp(t)
	_, err := store.UpsertLeaderboardPlayers(context.Background(), []stats.LeaderboardPlayer{
		{PlayerID: 1, PlayerName: "a", Rank: 1, Leaderboard: "rm_1v1"},
	})
	require.NoError(t, err)

	var players []stats.LeaderboardPlayer
	assert.Equal(t, fiber.StatusOK, getJSON(t, app, "/leaderboards/rm_1v1", &players))
	assert.Len(t, players, 1)

	assert.Equal(t, fiber.StatusBadRequest, getJSON(t, app, "/leaderboards/unknown", nil))
}

func TestFeature_Disabled(t *testing.T) {
	f := stats.NewFeature(nil, zap.NewNop())
	assert.False(t, f.IsEnabled())
}
