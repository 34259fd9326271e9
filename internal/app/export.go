package app

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// ExportParams configures the snapshot export.
type ExportParams struct {
	// Format is "csv" or "json".
	Format string
	// Path is the output file; empty derives a timestamped name under Dir.
	Path string
	Dir  string
}

// ExportResult reports where the snapshot landed.
type ExportResult struct {
	Path  string
	Count int
}

type exportRow struct {
	PID        int32   `json:"pid"`
	Name       string  `json:"name"`
	User       string  `json:"username"`
	CPUPercent float64 `json:"cpu_percent"`
	MemPercent float32 `json:"memory_percent"`
	Cmdline    string  `json:"cmdline"`
}

// Export writes the full process snapshot to a CSV or JSON file.
func (a *App) Export(ctx context.Context, params ExportParams) (ExportResult, error) {
	if params.Format != "csv" && params.Format != "json" {
		return ExportResult{}, fmt.Errorf("unknown export format %q", params.Format)
	}

	snapshot, err := a.procs.Snapshot(ctx)
	if err != nil {
		return ExportResult{}, err
	}
	rows := make([]exportRow, 0, len(snapshot))
	for _, p := range snapshot {
		rows = append(rows, exportRow{
			PID:        p.PID,
			Name:       p.Name,
			User:       p.User,
			CPUPercent: p.CPUPercent,
			MemPercent: p.MemPercent,
			Cmdline:    p.Cmdline,
		})
	}

	path := params.Path
	if path == "" {
		name := fmt.Sprintf("pdm_snapshot_%s.%s", time.Now().Format("20060102_150405"), params.Format)
		path = filepath.Join(params.Dir, name)
	}

	f, err := os.Create(path)
	if err != nil {
		return ExportResult{}, fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	switch params.Format {
	case "csv":
		w := csv.NewWriter(f)
		if err := w.Write([]string{"pid", "name", "username", "cpu_percent", "memory_percent", "cmdline"}); err != nil {
			return ExportResult{}, err
		}
		for _, r := range rows {
			record := []string{
				strconv.Itoa(int(r.PID)),
				r.Name,
				r.User,
				strconv.FormatFloat(r.CPUPercent, 'f', 1, 64),
				strconv.FormatFloat(float64(r.MemPercent), 'f', 1, 32),
				r.Cmdline,
			}
			if err := w.Write(record); err != nil {
				return ExportResult{}, err
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return ExportResult{}, err
		}
	case "json":
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rows); err != nil {
			return ExportResult{}, err
		}
	}

	a.log.Info().Str("action", "export").Str("path", path).Int("processes", len(rows)).Msg("snapshot exported")
	return ExportResult{Path: path, Count: len(rows)}, nil
}
