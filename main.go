package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"time"

	"bc-mercantile/internal/bitjita"
	"bc-mercantile/internal/config"
	"bc-mercantile/internal/engine"
	"bc-mercantile/internal/logger"
	"bc-mercantile/internal/ratelimit"
	"bc-mercantile/internal/sheets"
)

var version = "dev"

func main() {
	logger.Banner(version)
	if err := run(); err != nil {
		logger.Error("Main", err.Error())
		os.Exit(1)
	}
	logger.Info("Main", "=== BC Mercantile Shutting Down ===")
}

func run() error {
	start := time.Now().UTC()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	closeLog, err := logger.Init(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closeLog()

	logger.Info("Main", "Started at "+start.Format("2006-01-02 15:04 MST"))

	claimID, err := cfg.ClaimID()
	if err != nil {
		return err
	}

	ctx := context.Background()
	client := bitjita.NewClient(ratelimit.Every(cfg.Throttle()))
	scanner := engine.NewScanner(client, cfg.Cooldown())
	scanner.Throttle = cfg.Throttle()

	logger.Info("Main", "Querying Bitjita for info on specified claim.")
	rep, err := scanner.Run(ctx, claimID)
	if err != nil {
		return err
	}

	end := time.Now().UTC()
	elapsed := int(math.Round(end.Sub(start).Minutes()))
	logger.Info("Main", fmt.Sprintf("Analysis completed at %s, taking %d min.", end.Format("2006-01-02 15:04 MST"), elapsed))

	logger.Section("Run Summary")
	logger.Stats("Profitable trades", len(rep.Rows))
	logger.Stats("Distinct items", rep.DistinctItems)
	logger.Stats("Distinct claims", rep.DistinctClaims)

	if rep.Empty() {
		logger.Warn("Main", "Empty dataset. Something seems to have gone wrong.")
		return nil
	}

	logger.Info("Sheets", "Beginning upload to google sheets.")
	publisher, err := sheets.NewPublisher(ctx, cfg.SpreadsheetID, cfg.CredentialsFile)
	if err != nil {
		return err
	}
	summary := sheets.Summary{
		StartedAt:      start,
		ElapsedMinutes: elapsed,
		DistinctItems:  rep.DistinctItems,
		DistinctClaims: rep.DistinctClaims,
	}
	if err := publisher.Publish(ctx, summary, rep); err != nil {
		return err
	}
	logger.Success("Sheets", "Upload to google sheets completed.")
	return nil
}
