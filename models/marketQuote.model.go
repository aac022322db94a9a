package models

import (
	"time"

	"gorm.io/gorm"
)

// MarketQuote is one cached row of the live ticker. The scheduler
// overwrites quotes in place on every refresh, so a feed outage keeps
// the last good snapshot visible.
type MarketQuote struct {
	gorm.Model
	CoinID    string    `gorm:"uniqueIndex;not null" json:"coinId"`
	Symbol    string    `gorm:"not null" json:"symbol"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Price     float64   `json:"currentPrice"`
	Change24h float64   `json:"priceChangePercentage24h"`
	MarketCap float64   `json:"marketCap"`
	Rank      int       `gorm:"index" json:"rank"`
	FetchedAt time.Time `json:"fetchedAt"`
}

func (MarketQuote) TableName() string {
	return "market_quotes"
}
