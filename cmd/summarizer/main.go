package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/Bassdanger/document-summarizer/config"
	"github.com/Bassdanger/document-summarizer/internal/extract"
	"github.com/Bassdanger/document-summarizer/internal/extract/docx"
	"github.com/Bassdanger/document-summarizer/internal/extract/pdfcheck"
	"github.com/Bassdanger/document-summarizer/internal/extract/textract"
	"github.com/Bassdanger/document-summarizer/internal/pii"
	"github.com/Bassdanger/document-summarizer/internal/pii/comprehend"
	"github.com/Bassdanger/document-summarizer/internal/summarize"
	"github.com/Bassdanger/document-summarizer/internal/summarize/bedrock"
	"github.com/Bassdanger/document-summarizer/pkg/logger"
	"github.com/Bassdanger/document-summarizer/pkg/storage"
)

// Exit codes. Blocked is distinct so callers can tell policy refusals from
// ordinary failures.
const (
	exitFailure = 1
	exitBlocked = 2
)

func main() {
	cli := &CLI{}
	kong.Parse(cli,
		kong.Name("summarizer"),
		kong.Description("Summarize a document with PII removed before it reaches the model."),
		kong.UsageOnError(),
	)

	if err := run(cli); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, summarize.ErrBlocked) {
			os.Exit(exitBlocked)
		}
		os.Exit(exitFailure)
	}
}

func run(cli *CLI) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// stderr keeps stdout clean for the summary itself.
	log, err := logger.NewLogger(
		logger.WithLevel(cli.LogLevel),
		logger.WithEncoding("json"),
		logger.WithOutputPaths(logOutputs(cli.LogFile)),
	)
	if err != nil {
		return err
	}
	defer log.Sync()

	appCfg, err := config.LoadAppConfig(cli.Config)
	if err != nil {
		return err
	}

	opts, mode, err := resolveOptions(cli, appCfg)
	if err != nil {
		return err
	}

	detector, err := comprehend.NewDetector(ctx, cli.Region, log)
	if err != nil {
		return err
	}
	piiSvc := pii.NewService(detector, log,
		pii.WithLanguage(appCfg.PIILanguage),
		pii.WithChunkChars(appCfg.ChunkChars),
		pii.WithMask(appCfg.PIIMask),
	)

	gen, err := bedrock.NewClient(ctx, cli.Region, log)
	if err != nil {
		return err
	}

	var summary string
	if cli.Source == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}

		svc := summarize.NewService(nil, piiSvc, gen, log)
		summary, err = svc.SummarizeText(ctx, string(data), mode, opts)
		if err != nil {
			return err
		}
	} else {
		store, err := storage.NewObjectStore(ctx, storage.StorageType(appCfg.Storage), cli.Region, log)
		if err != nil {
			return err
		}
		tx, err := textract.NewClient(ctx, cli.Region, log)
		if err != nil {
			return err
		}

		extractSvc := extract.NewService(store, tx, tx, docx.NewParser(), pdfcheck.NewCounter(),
			extract.PollConfig{
				Interval: appCfg.PollInterval(),
				Timeout:  appCfg.PollTimeout(),
			}, log)

		svc := summarize.NewService(extractSvc, piiSvc, gen, log)
		summary, err = svc.SummarizeDocument(ctx, cli.Source, mode, opts)
		if err != nil {
			return err
		}
	}

	return writeSummary(cli.Output, summary)
}

// resolveOptions merges CLI flags over config-file defaults. A flag left at
// its unset sentinel (empty model or mode, max-tokens 0, temperature below
// zero) takes the config value, the same way --model already did.
func resolveOptions(cli *CLI, cfg *config.AppConfig) (summarize.Options, summarize.PIIMode, error) {
	opts := summarize.Options{
		Model:       cli.Model,
		MaxTokens:   cli.MaxTokens,
		Temperature: cli.Temperature,
	}
	if opts.Model == "" {
		opts.Model = cfg.Model
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = cfg.MaxTokens
	}
	if opts.Temperature < 0 {
		opts.Temperature = cfg.Temperature
	}

	modeStr := cli.PII
	if modeStr == "" {
		modeStr = cfg.PIIMode
	}
	mode, err := summarize.ParsePIIMode(modeStr)
	if err != nil {
		return summarize.Options{}, "", err
	}
	return opts, mode, nil
}

// logOutputs keeps the CLI quiet on the filesystem: logs go to stderr only
// unless a log file is asked for.
func logOutputs(logFile string) []string {
	if logFile == "" {
		return []string{"stderr"}
	}
	return []string{"stderr", logFile}
}

func writeSummary(output, summary string) error {
	if output == "" {
		fmt.Println(summary)
		return nil
	}

	if err := os.WriteFile(output, []byte(summary), 0644); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Summary written to %s\n", output)
	return nil
}
