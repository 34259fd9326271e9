package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/evilshxt/pidaemonmanager/internal/procs"
)

// MonitorParams configures a sampling loop over one pid.
type MonitorParams struct {
	PID      int32
	Interval time.Duration
	// Count bounds the number of samples; zero means sample until the
	// process exits or the context is cancelled.
	Count int
}

// Sample is one observation of a watched process.
type Sample struct {
	At         time.Time
	PID        int32
	Name       string
	CPUPercent float64
	MemPercent float32
	Threads    int32
}

// Monitor samples pid every interval and hands each sample to emit. It
// returns nil when the process exits or the sample count is reached, and the
// context error when cancelled mid-loop.
func (a *App) Monitor(ctx context.Context, params MonitorParams, emit func(Sample)) error {
	if params.PID <= 0 {
		return fmt.Errorf("pid must be positive, got %d", params.PID)
	}
	if params.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", params.Interval)
	}

	ticker := time.NewTicker(params.Interval)
	defer ticker.Stop()

	taken := 0
	for {
		d, err := a.procs.Detail(ctx, params.PID)
		if err != nil {
			if errors.Is(err, procs.ErrProcessGone) {
				a.log.Info().Int32("pid", params.PID).Int("samples", taken).Msg("watched process exited")
				return nil
			}
			return err
		}
		emit(Sample{
			At:         time.Now(),
			PID:        d.PID,
			Name:       d.Name,
			CPUPercent: d.CPUPercent,
			MemPercent: d.MemPercent,
			Threads:    d.Threads,
		})
		taken++
		if params.Count > 0 && taken >= params.Count {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
