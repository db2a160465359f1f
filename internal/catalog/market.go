package catalog

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// MarketTool is a market-data entry shown on the landing carousel.
type MarketTool struct {
	Name      string
	Category  string
	MarketCap int64   // USD
	Change    float64 // percent, may be negative
	Users     string
}

var market = []MarketTool{
	{Name: "ChatGPT", Category: "Conversational AI", MarketCap: 29_000_000_000, Change: 12.5, Users: "100M+"},
	{Name: "Midjourney", Category: "Image Generation", MarketCap: 5_200_000_000, Change: 8.3, Users: "25M+"},
	{Name: "Claude", Category: "Conversational AI", MarketCap: 4_100_000_000, Change: 15.7, Users: "18M+"},
	{Name: "Stable Diffusion", Category: "Image Generation", MarketCap: 3_800_000_000, Change: -2.1, Users: "35M+"},
	{Name: "GitHub Copilot", Category: "Code Assistant", MarketCap: 3_200_000_000, Change: 6.8, Users: "20M+"},
}

// Market returns the carousel market data, largest market cap first.
func Market() []MarketTool {
	return append([]MarketTool(nil), market...)
}

// FindMarket looks up a market entry by name.
func FindMarket(name string) (MarketTool, bool) {
	for _, m := range market {
		if m.Name == name {
			return m, true
		}
	}
	return MarketTool{}, false
}

// FormatChange renders a percent change with an explicit sign for gains.
func FormatChange(change float64) string {
	if change > 0 {
		return fmt.Sprintf("+%.1f%%", change)
	}
	return fmt.Sprintf("%.1f%%", change)
}

// FormatMarketCap renders a market cap such as "$29.0B".
func FormatMarketCap(usd int64) string {
	value, prefix := humanize.ComputeSI(float64(usd))
	if prefix == "G" {
		prefix = "B"
	}
	return fmt.Sprintf("$%.1f%s", value, prefix)
}
