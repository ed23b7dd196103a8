package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rgeddes/dupfind/pkg/dupfind/checksum"
	"github.com/rgeddes/dupfind/pkg/dupfind/index"
	"github.com/rgeddes/dupfind/pkg/dupfind/progress"
	"github.com/rgeddes/dupfind/pkg/dupfind/quarantine"
	"github.com/rgeddes/dupfind/pkg/dupfind/report"
	"github.com/rgeddes/dupfind/pkg/dupfind/types"
	"github.com/rgeddes/dupfind/pkg/dupfind/walker"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runScan is the main command handler: scan, report, relocate.
func runScan(_ *cobra.Command, args []string) error {
	target, err := validateTarget(args[0])
	if err != nil {
		return err
	}

	algorithm := viper.GetString("algorithm")
	if _, err := checksum.New(algorithm); err != nil {
		return err
	}

	outFormat := viper.GetString("output")
	formatter, err := report.Get(outFormat)
	if err != nil {
		return fmt.Errorf("unknown output format %q: available formats are %v", outFormat, report.Available())
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		printInfo("\nInterrupted, stopping scan...")
		cancel()
	}()

	builder := index.NewBuilder(index.Options{
		Root:      target,
		Algorithm: algorithm,
		ChunkSize: viper.GetInt("chunk_size"),
		Walk: walker.Options{
			Extensions: viper.GetStringSlice("extensions"),
			MaxDepth:   viper.GetInt("max_depth"),
			MaxSize:    maxSizeBytes(viper.GetFloat64("max_size_mb")),
			Exclude:    viper.GetStringSlice("exclude"),
		},
	})

	reporter := progress.New(builder, viper.GetDuration("interval"), func(n int64) {
		printInfo("Files processed so far: %d", n)
	})
	if err := reporter.Start(); err != nil {
		return err
	}

	ix, buildErr := builder.Build(ctx)
	reporter.Stop()
	if buildErr != nil {
		// An interrupted scan produced a partial index; relocating from
		// it would quarantine files whose duplicates were never seen.
		if errors.Is(buildErr, context.Canceled) {
			printInfo("Scan interrupted; no files were moved.")
			return nil
		}
		return buildErr
	}

	var moves []quarantine.Move
	if !viper.GetBool("no_relocate") {
		moves, err = quarantine.Relocate(ix, target, quarantine.Options{
			DirName: viper.GetString("quarantine_dir"),
			DryRun:  viper.GetBool("dry_run"),
		})
		if err != nil {
			return err
		}
	}

	result := buildResult(ix, target, algorithm, moves)

	var buf bytes.Buffer
	if err := formatter.Format(&buf, result); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	fmt.Print(buf.String())

	return nil
}

// validateTarget resolves the positional folder argument and rejects
// anything that is not an existing directory.
func validateTarget(arg string) (string, error) {
	absPath, err := filepath.Abs(arg)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}
	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("path does not exist: %s", absPath)
		}
		return "", fmt.Errorf("cannot access path: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("path is not a directory: %s", absPath)
	}
	return absPath, nil
}

// maxSizeBytes converts the --max-size-mb flag to bytes. Zero or negative
// means unlimited.
func maxSizeBytes(mb float64) int64 {
	if mb <= 0 {
		return 0
	}
	return int64(mb * float64(types.MiB))
}

// buildResult assembles the display result from the index and move outcomes.
func buildResult(ix *index.Index, root, algorithm string, moves []quarantine.Move) *report.Result {
	groups := ix.Groups()

	var wasted int64
	groupInfos := make([]report.GroupInfo, len(groups))
	for i, g := range groups {
		wasted += g.WastedBytes()
		groupInfos[i] = report.GroupInfo{
			Digest:        string(g.Digest),
			Paths:         g.Paths,
			FileSize:      g.FileSize,
			FileSizeHuman: types.FormatSize(g.FileSize),
		}
	}

	moveInfos := make([]report.MoveInfo, len(moves))
	for i, m := range moves {
		moveInfos[i] = report.MoveInfo{Source: m.Source, Dest: m.Dest}
		if m.Err != nil {
			moveInfos[i].Error = m.Err.Error()
		}
	}

	warnings := make([]string, len(ix.Errors))
	for i, e := range ix.Errors {
		warnings[i] = fmt.Sprintf("%s: %s", e.Path, e.Error)
	}

	return &report.Result{
		Root:      root,
		SessionID: ix.SessionID,
		Algorithm: algorithm,
		Groups:    groupInfos,
		Stats: report.ScanStats{
			FilesProcessed:  ix.Stats.FilesProcessed,
			FilesHashed:     ix.Stats.FilesHashed,
			DuplicateGroups: len(groups),
			Singletons:      ix.Singletons(),
			WastedBytes:     wasted,
			Elapsed:         ix.Stats.Elapsed.Round(time.Millisecond),
		},
		Moves:    moveInfos,
		Warnings: warnings,
	}
}
