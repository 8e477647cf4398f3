package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"electionreport/internal/config"
	"electionreport/internal/dataprocessing"
	"electionreport/internal/infrastructure"
	"electionreport/internal/report"
	"electionreport/pkg/contracts"
)

// inputFile is read from the working directory
const inputFile = "election_results.csv"

func main() {
	os.Exit(execute())
}

func execute() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.EnsureTraceID(context.Background())
	logger.InfoContext(ctx, "Starting election report",
		slog.String("version", contracts.GetVersionInfo().String()),
		slog.String("input", inputFile))
	logger.DebugContext(ctx, "Configuration loaded", slog.String("config", cfg.String()))

	providers, err := infrastructure.InitializeTracing(cfg.Tracing, logger)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to initialize tracing", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := providers.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Tracer shutdown failed", slog.String("error", err.Error()))
		}
	}()

	if err := run(ctx, logger, inputFile, os.Stdout); err != nil {
		logger.ErrorContext(ctx, "Election report failed", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger.InfoContext(ctx, "Election report complete")
	return 0
}

// run loads path, runs the queries in report order and prints the report to out
func run(ctx context.Context, logger *slog.Logger, path string, out io.Writer) error {
	table, err := dataprocessing.NewLoader(logger).LoadFile(ctx, path)
	if err != nil {
		return err
	}

	analyzer := dataprocessing.NewAnalyzer(logger)

	var r report.Report
	r.Totals = analyzer.CalculateTotalVotes(ctx, table)
	r.Winners = analyzer.GetWinningParty(ctx, table)
	if r.OverallWinner, err = analyzer.DetermineOverallWinner(ctx, table); err != nil {
		return err
	}
	r.VoteShares = analyzer.CalculateVoteShare(ctx, table)
	r.CloseContests = analyzer.CloseContest(ctx, table)

	return report.NewPrinter(out).Print(r)
}
