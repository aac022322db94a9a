package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"nexus/config"
	"nexus/database"
	"nexus/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const feedPayload = `[
	{"id":"bitcoin","symbol":"btc","name":"Bitcoin","image":"https://img/btc.png","current_price":2710000.5,"price_change_percentage_24h":1.72,"market_cap":53000000000,"market_cap_rank":1},
	{"id":"ethereum","symbol":"eth","name":"Ethereum","image":"https://img/eth.png","current_price":140000.25,"price_change_percentage_24h":-0.84,"market_cap":17000000000,"market_cap_rank":2}
]`

const feedPayloadUpdated = `[
	{"id":"bitcoin","symbol":"btc","name":"Bitcoin","image":"https://img/btc.png","current_price":2800000.0,"price_change_percentage_24h":3.10,"market_cap":54000000000,"market_cap_rank":1}
]`

func setupMarketTest(t *testing.T, payload string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "market_cap_desc", r.URL.Query().Get("order"))
		assert.Equal(t, "try", r.URL.Query().Get("vs_currency"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))
	t.Cleanup(server.Close)

	config.AppConfig = &config.Config{
		MarketApiUrl:   server.URL,
		MarketCurrency: "try",
		MarketPerPage:  10,
		MarketCronSpec: "@every 5m",
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	return server
}

func TestRefreshMarketQuotes(t *testing.T) {
	setupMarketTest(t, feedPayload)

	require.NoError(t, RefreshMarketQuotes())

	var quotes []models.MarketQuote
	require.NoError(t, database.Database.Db.Order("rank ASC").Find(&quotes).Error)
	require.Len(t, quotes, 2)

	assert.Equal(t, "bitcoin", quotes[0].CoinID)
	assert.Equal(t, "btc", quotes[0].Symbol)
	assert.Equal(t, 2710000.5, quotes[0].Price)
	assert.Equal(t, 1.72, quotes[0].Change24h)
	assert.Equal(t, 1, quotes[0].Rank)
	assert.Equal(t, "ethereum", quotes[1].CoinID)
	assert.False(t, quotes[0].FetchedAt.IsZero())
}

func TestRefreshMarketQuotesUpsertsInPlace(t *testing.T) {
	server := setupMarketTest(t, feedPayload)
	require.NoError(t, RefreshMarketQuotes())

	server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(feedPayloadUpdated))
	})

	require.NoError(t, RefreshMarketQuotes())

	var btc models.MarketQuote
	require.NoError(t, database.Database.Db.Where("coin_id = ?", "bitcoin").First(&btc).Error)
	assert.Equal(t, 2800000.0, btc.Price)
	assert.Equal(t, 3.10, btc.Change24h)

	// No duplicate rows: refresh rewrites, it never appends
	var count int64
	database.Database.Db.Model(&models.MarketQuote{}).Where("coin_id = ?", "bitcoin").Count(&count)
	assert.Equal(t, int64(1), count)

	// Coins missing from a partial response keep their last snapshot
	var eth models.MarketQuote
	require.NoError(t, database.Database.Db.Where("coin_id = ?", "ethereum").First(&eth).Error)
	assert.Equal(t, 140000.25, eth.Price)
}

func TestRefreshMarketQuotesFeedOutage(t *testing.T) {
	server := setupMarketTest(t, feedPayload)
	require.NoError(t, RefreshMarketQuotes())

	server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	// The refresh fails but the cache stays intact
	require.Error(t, RefreshMarketQuotes())

	var count int64
	database.Database.Db.Model(&models.MarketQuote{}).Count(&count)
	assert.Equal(t, int64(2), count)
}
