package marketController_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nexus/database"
	"nexus/models"
	marketRoutes "nexus/routers/marketRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupMarketApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	marketRoutes.SetupMarketRoutes(app)
	return app
}

func TestGetMarketsOrderedByRank(t *testing.T) {
	app := setupMarketApp(t)

	quotes := []models.MarketQuote{
		{CoinID: "ethereum", Symbol: "eth", Name: "Ethereum", Price: 140000, Rank: 2, FetchedAt: time.Now()},
		{CoinID: "tether", Symbol: "usdt", Name: "Tether", Price: 41, Rank: 3, FetchedAt: time.Now()},
		{CoinID: "bitcoin", Symbol: "btc", Name: "Bitcoin", Price: 2710000, Rank: 1, FetchedAt: time.Now()},
	}
	for i := range quotes {
		require.NoError(t, database.Database.Db.Create(&quotes[i]).Error)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/market", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var env struct {
		Status bool                 `json:"status"`
		Data   []models.MarketQuote `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	require.Len(t, env.Data, 3)
	assert.Equal(t, "bitcoin", env.Data[0].CoinID)
	assert.Equal(t, "ethereum", env.Data[1].CoinID)
	assert.Equal(t, "tether", env.Data[2].CoinID)
}

func TestGetMarketsEmptyCache(t *testing.T) {
	app := setupMarketApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/market", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
