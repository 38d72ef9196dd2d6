// lgbtool is a CLI utility for inspecting layer-group scene files.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/MalekBael/FFXIV-LGB-Parser/internal/batch"
	"github.com/MalekBael/FFXIV-LGB-Parser/internal/config"
	"github.com/MalekBael/FFXIV-LGB-Parser/internal/export"
	"github.com/MalekBael/FFXIV-LGB-Parser/internal/logger"
	"github.com/MalekBael/FFXIV-LGB-Parser/pkg/lgb"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "export", "json":
		cmdExport(args)
	case "batch":
		cmdBatch(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`lgbtool - layer-group scene file utility

Usage:
  lgbtool <command> [options]

Commands:
  info <file.lgb>            Show layer and object summary
  export <file.lgb> [out]    Render the decoded tree as JSON
  batch <dir>                Decode every matching file under a directory

Options:
  -config <path>             Config file (default ./lgbtool.yaml)
  -debug                     Enable debug logging
  -rotation <fmt>            Rotation format: quaternion or euler
  -workers <n>               Concurrent decodes for batch mode
  -out <dir>                 Output directory for batch export
  -pretty                    Indent JSON output

Examples:
  lgbtool info bg_town.lgb
  lgbtool export -pretty bg_town.lgb bg_town.json
  lgbtool batch -workers 8 -out ./json ./planmap`)
}

// bootstrap parses flags, loads config and initializes logging. It
// returns the positional arguments left after flag parsing.
func bootstrap(args []string) (*config.Config, []string) {
	rest := config.ParseFlags(args)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	return cfg, rest
}

func decodeFile(cfg *config.Config, path string) *lgb.LGB {
	opts, err := cfg.DecodeOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	group, err := lgb.ParseLGBWithOptions(context.Background(), data, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: decoding %s: %v\n", path, err)
		os.Exit(1)
	}

	for _, warning := range group.Warnings {
		logger.Warn("decode warning",
			zap.String("file", path),
			zap.Int("layer", warning.Layer),
			zap.Int("object", warning.Object),
			zap.String("message", warning.Message))
	}

	return group
}

func cmdInfo(args []string) {
	cfg, rest := bootstrap(args)
	defer logger.Sync()

	if len(rest) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: lgbtool info <file.lgb>")
		os.Exit(1)
	}

	group := decodeFile(cfg, rest[0])

	fmt.Printf("File:     %s\n", rest[0])
	if err := export.WriteSummary(os.Stdout, group); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func cmdExport(args []string) {
	cfg, rest := bootstrap(args)
	defer logger.Sync()

	if len(rest) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: lgbtool export <file.lgb> [output.json]")
		os.Exit(1)
	}

	group := decodeFile(cfg, rest[0])

	out := os.Stdout
	if len(rest) > 1 {
		f, err := os.Create(rest[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	if err := export.WriteJSON(out, group, cfg.Export.Pretty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func cmdBatch(args []string) {
	cfg, rest := bootstrap(args)
	defer logger.Sync()

	if len(rest) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: lgbtool batch <dir>")
		os.Exit(1)
	}

	opts, err := cfg.DecodeOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := &batch.Runner{
		Workers: cfg.Batch.Workers,
		Pattern: cfg.Batch.Pattern,
		Options: opts,
	}

	results, err := runner.Run(ctx, rest[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, res := range results {
		if res.Err != nil {
			logger.Error("decode failed",
				zap.String("file", res.Path),
				zap.Error(res.Err))
			continue
		}
		logger.Info("decoded",
			zap.String("file", res.Path),
			zap.Int("layers", len(res.Group.Layers)),
			zap.Int("objects", res.Group.ObjectCount()),
			zap.Int("warnings", res.Warnings))

		if cfg.Export.OutputDir != "" {
			if err := writeResult(cfg, res); err != nil {
				logger.Error("export failed",
					zap.String("file", res.Path),
					zap.Error(err))
			}
		}
	}

	decoded, failed, warnings := batch.Summarize(results)
	fmt.Printf("Decoded:  %d\n", decoded)
	fmt.Printf("Failed:   %d\n", failed)
	fmt.Printf("Warnings: %d\n", warnings)

	if failed > 0 {
		os.Exit(1)
	}
}

// writeResult renders one decoded group into the output directory, named
// after the source file with a .json extension.
func writeResult(cfg *config.Config, res batch.Result) error {
	if err := os.MkdirAll(cfg.Export.OutputDir, 0755); err != nil {
		return err
	}

	base := filepath.Base(res.Path)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + ".json"

	f, err := os.Create(filepath.Join(cfg.Export.OutputDir, name))
	if err != nil {
		return err
	}
	defer f.Close()

	return export.WriteJSON(f, res.Group, cfg.Export.Pretty)
}
