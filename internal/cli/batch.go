package cli

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"

	"github.com/rcliao/gef-cpt/internal/cpt"
	"github.com/rcliao/gef-cpt/internal/model"
	"github.com/rcliao/gef-cpt/internal/source"
)

func init() {
	cmd := &cobra.Command{
		Use:   "batch FILE...",
		Short: "Parse several CPT files concurrently",
		Long:  "Parse several CPT files concurrently and print one summary or error per file. Exits non-zero if any file failed.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runBatch,
	}

	RootCmd.AddCommand(cmd)
}

type batchEntry struct {
	File    string         `json:"file" yaml:"file"`
	Summary *model.Summary `json:"summary,omitempty" yaml:"summary,omitempty"`
	Error   string         `json:"error,omitempty" yaml:"error,omitempty"`
}

type batchReport struct {
	RunID   string       `json:"run_id" yaml:"run_id"`
	Files   int          `json:"files" yaml:"files"`
	Failed  int          `json:"failed" yaml:"failed"`
	Results []batchEntry `json:"results" yaml:"results"`
}

func newRunID() string {
	entropy := rand.New(rand.NewSource(time.Now().UnixNano()))
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

func runBatch(cmd *cobra.Command, args []string) error {
	report := batchReport{RunID: newRunID(), Files: len(args)}
	logger := slog.With("run_id", report.RunID)

	// Read failures are reported per file like parse failures.
	readErrs := make(map[string]error)
	var inputs []cpt.Input
	for _, path := range args {
		data, err := source.ReadFile(path, settings.MaxFileSize)
		if err != nil {
			readErrs[path] = fmt.Errorf("read file: %w", err)
			logger.Warn("batch file unreadable", "file", path, "err", err)
			continue
		}
		inputs = append(inputs, cpt.Input{Name: path, Data: data})
	}

	results := cpt.ParseBatch(cmd.Context(), inputs, settings.Workers)
	byName := make(map[string]cpt.Result, len(results))
	for _, r := range results {
		byName[r.Name] = r
	}

	for _, path := range args {
		entry := batchEntry{File: path}
		err := readErrs[path]
		if err == nil {
			r := byName[path]
			if err = r.Err; err == nil {
				s := cpt.Summarize(r.Profile)
				entry.Summary = &s
			}
		}
		if err != nil {
			entry.Error = err.Error()
			report.Failed++
		}
		report.Results = append(report.Results, entry)
	}

	out := cmd.OutOrStdout()
	if settings.OutputFormat == "text" {
		fmt.Fprintf(out, "run %s: %d files, %d failed\n", report.RunID, report.Files, report.Failed)
		for _, e := range report.Results {
			if e.Summary != nil {
				writeSummaryText(out, *e.Summary)
			} else {
				fmt.Fprintf(out, "%s: error: %s\n", e.File, e.Error)
			}
		}
	} else if err := writeValue(out, settings.OutputFormat, report); err != nil {
		return err
	}

	if report.Failed > 0 {
		return fmt.Errorf("%d of %d files failed", report.Failed, report.Files)
	}
	return nil
}
