package utils

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"nexus/config"
	"nexus/database"
	"nexus/models"

	"github.com/go-resty/resty/v2"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm/clause"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[MARKET-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// marketCoin mirrors the fields we keep from a CoinGecko-style
// /coins/markets response entry.
type marketCoin struct {
	ID            string  `json:"id"`
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Image         string  `json:"image"`
	CurrentPrice  float64 `json:"current_price"`
	Change24h     float64 `json:"price_change_percentage_24h"`
	MarketCap     float64 `json:"market_cap"`
	MarketCapRank int     `json:"market_cap_rank"`
}

// RefreshMarketQuotes fetches the top coins from the configured feed
// and upserts them into the market_quotes cache.
func RefreshMarketQuotes() error {
	cfg := config.AppConfig

	client := resty.New().SetTimeout(10 * time.Second)
	resp, err := client.R().
		SetQueryParams(map[string]string{
			"vs_currency": cfg.MarketCurrency,
			"order":       "market_cap_desc",
			"per_page":    fmt.Sprintf("%d", cfg.MarketPerPage),
			"page":        "1",
			"sparkline":   "false",
		}).
		Get(cfg.MarketApiUrl)
	if err != nil {
		return err
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("market feed returned %d: %s", resp.StatusCode(), resp.String())
	}

	var coins []marketCoin
	if err := json.Unmarshal(resp.Body(), &coins); err != nil {
		return fmt.Errorf("failed to parse market feed: %w", err)
	}

	db := database.Database.Db
	now := time.Now()

	for _, coin := range coins {
		quote := models.MarketQuote{
			CoinID:    coin.ID,
			Symbol:    coin.Symbol,
			Name:      coin.Name,
			Image:     coin.Image,
			Price:     coin.CurrentPrice,
			Change24h: coin.Change24h,
			MarketCap: coin.MarketCap,
			Rank:      coin.MarketCapRank,
			FetchedAt: now,
		}

		err := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "coin_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"symbol", "name", "image", "price", "change24h", "market_cap", "rank", "fetched_at", "updated_at",
			}),
		}).Create(&quote).Error
		if err != nil {
			logScheduler("Error upserting quote for " + coin.ID + ": " + err.Error())
		}
	}

	logScheduler(fmt.Sprintf("Refreshed %d market quotes", len(coins)))
	return nil
}

// StartMarketScheduler runs an immediate refresh and then keeps the
// ticker cache fresh on the configured cron spec.
func StartMarketScheduler() *cron.Cron {
	go func() {
		if err := RefreshMarketQuotes(); err != nil {
			logScheduler("Initial refresh failed: " + err.Error())
		}
	}()

	c := cron.New()
	_, err := c.AddFunc(config.AppConfig.MarketCronSpec, func() {
		if err := RefreshMarketQuotes(); err != nil {
			logScheduler("Refresh failed: " + err.Error())
		}
	})
	if err != nil {
		log.Printf("Invalid market cron spec %q: %v", config.AppConfig.MarketCronSpec, err)
		return c
	}

	c.Start()
	logScheduler("Market scheduler started with spec " + config.AppConfig.MarketCronSpec)
	return c
}
