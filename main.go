package main

import (
	"context"
	"fmt"

	"wholesale-scraper/config"
	"wholesale-scraper/fetch"
	"wholesale-scraper/scraper/wholesale"
	"wholesale-scraper/services"
	"wholesale-scraper/storage"
	"wholesale-scraper/utils"
)

func main() {
	cfg := config.Load()
	logger := utils.NewLogger(cfg.Debug)

	logger.Info("=== Wholesale Supplier Scraper starting ===")
	logger.Info("Config — fetch mode: %s | render wait: %dms | db: %s | stream: %s",
		cfg.FetchMode, cfg.RenderWaitMs, cfg.SQLitePath, cfg.JSONLPath)

	// Sink failures are not fatal: the run proceeds with whatever sinks
	// opened, and records bound for a failed sink are simply lost.
	var sinks []storage.RecordWriter

	store, err := storage.NewSQLiteWriter(cfg.SQLitePath)
	if err != nil {
		logger.Error("Failed to open SQLite store — rows will be lost: %v", err)
	} else {
		defer func() {
			if err := store.Close(); err != nil {
				logger.Error("SQLite close failed: %v", err)
			}
		}()
		sinks = append(sinks, store)
	}

	stream, err := storage.NewJSONLWriter(cfg.JSONLPath)
	if err != nil {
		logger.Error("Failed to create JSONL stream — records will not be emitted: %v", err)
	} else {
		defer func() {
			if err := stream.Close(); err != nil {
				logger.Error("JSONL close failed: %v", err)
			}
		}()
		sinks = append(sinks, stream)
	}

	var fetcher fetch.Fetcher
	switch cfg.FetchMode {
	case "static":
		fetcher = fetch.NewStatic(cfg, logger)
	default:
		renderer := fetch.NewRenderer(cfg, logger)
		defer renderer.Close()
		fetcher = renderer
	}

	pipeline := wholesale.New(cfg, logger, fetcher, sinks...)
	total := pipeline.Run(context.Background())

	if total == 0 {
		logger.Warn("No listings were extracted from any seed page")
	}

	if store == nil {
		return
	}

	stored, err := store.FetchAll()
	if err != nil {
		logger.Error("Failed to fetch stored records for the summary: %v", err)
		return
	}

	reportSvc := services.NewReportService(logger)
	report := reportSvc.Generate(stored)
	reportSvc.Print(report)

	fmt.Printf("  Done. Records → SQLite (%s, suppliers table) | Stream → %s\n\n",
		cfg.SQLitePath, cfg.JSONLPath)
}
