package engine

import (
	"context"
	"fmt"
	"time"

	"bc-mercantile/internal/bitjita"
	"bc-mercantile/internal/logger"
)

// MarketAPI is the slice of the Bitjita client the scanner consumes.
type MarketAPI interface {
	Claim(ctx context.Context, claimID string) (*bitjita.Claim, error)
	MarketItems(ctx context.Context, claimID string) ([]bitjita.MarketItem, error)
	OrderBook(ctx context.Context, typeLabel string, itemID int64) (*bitjita.OrderBook, error)
}

// Scanner runs the whole arbitrage pipeline sequentially: market summary,
// per-item order books, normalization, matching, distance resolution and
// report assembly. The client's throttle paces every fetch.
type Scanner struct {
	API      MarketAPI
	Cooldown time.Duration
	Throttle time.Duration       // informational only; the client enforces it
	Sleep    func(time.Duration) // overridable in tests; nil means time.Sleep
}

// NewScanner creates a Scanner over the given API client.
func NewScanner(api MarketAPI, cooldown time.Duration) *Scanner {
	return &Scanner{API: api, Cooldown: cooldown, Sleep: time.Sleep}
}

// Run executes one full scan for the given home claim and returns the
// ranked report. Only startup fetches (home claim, market summary) fail the
// run; per-item and per-claim failures are logged, cooled down and skipped.
func (s *Scanner) Run(ctx context.Context, homeClaimID string) (*Report, error) {
	home, err := s.API.Claim(ctx, homeClaimID)
	if err != nil {
		return nil, fmt.Errorf("fetch home claim %s: %w", homeClaimID, err)
	}
	logger.Info("Scan", fmt.Sprintf("Claim of interest identified as: %s of the %s region.", home.Name, home.RegionName))

	items, err := s.API.MarketItems(ctx, homeClaimID)
	if err != nil {
		return nil, fmt.Errorf("fetch market summary: %w", err)
	}
	logger.Info("Scan", fmt.Sprintf("%d items identified on the given market.", len(items)))
	logger.Info("Scan", "Beginning deeper analysis of each individual item on the market.")
	if s.Throttle > 0 {
		logger.Info("Scan", fmt.Sprintf("Pausing %v between each item query out of courtesy to Bitjita.", s.Throttle))
		logger.Info("Scan", fmt.Sprintf("Earliest possible completion in %.2f min. (Likely longer due to processing time)",
			float64(len(items))*s.Throttle.Minutes()))
	}

	matches := s.collectMatches(ctx, homeClaimID, items)
	logger.Info("Scan", "Unit profitability calculated and filtered.")

	logger.Info("Distance", "Beginning calculation of straight-line distances.")
	resolver := NewDistanceResolver(s.API, home, s.Cooldown)
	resolver.sleep = s.sleepFunc()
	resolver.Resolve(ctx, homeClaimID, matches)
	logger.Info("Distance", "Applying calculated distances.")

	logger.Info("Capacity", "Applying trade capacity limits.")
	return BuildReport(homeClaimID, matches, resolver), nil
}

// collectMatches walks every market item, fetches its order book and
// accumulates profitable home-claim trade matches.
func (s *Scanner) collectMatches(ctx context.Context, homeClaimID string, items []bitjita.MarketItem) []TradeMatch {
	var matches []TradeMatch
	for i, item := range items {
		if i%10 == 0 {
			logger.Info("Scan", fmt.Sprintf("%.2f %% Complete: %d/%d Items", 100*float64(i)/float64(len(items)), i, len(items)))
		}

		label, ok := item.TypeLabel()
		if !ok {
			// Unknown type codes are expected absence of data, not errors.
			continue
		}

		book, err := s.API.OrderBook(ctx, item.PathSegment(), int64(item.ID))
		if err != nil {
			logger.Error("Scan", fmt.Sprintf("Unable to complete query for %s id %d, pausing queries: %v", item.PathSegment(), int64(item.ID), err))
			s.sleepFunc()(s.Cooldown)
			logger.Info("Scan", "Continuing, skipping failed query.")
			continue
		}
		if len(book.SellOrders) == 0 || len(book.BuyOrders) == 0 {
			continue
		}

		sells := NormalizeOrders(item, label, book.SellOrders)
		buys := NormalizeOrders(item, label, book.BuyOrders)
		matches = append(matches, MatchOrders(homeClaimID, sells, buys)...)
	}
	return matches
}

func (s *Scanner) sleepFunc() func(time.Duration) {
	if s.Sleep != nil {
		return s.Sleep
	}
	return time.Sleep
}
