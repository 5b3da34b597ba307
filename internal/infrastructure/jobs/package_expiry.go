// Package jobs holds the River background jobs.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"github.com/rs/zerolog"
)

// DefaultSweepInterval is how often expired company packages are unpublished.
const DefaultSweepInterval = time.Hour

// PackageSweeper unpublishes every expired company package and returns how many changed.
type PackageSweeper interface {
	SweepExpired(ctx context.Context) (int64, error)
}

// PackageExpirySweepArgs is a periodic maintenance job.
type PackageExpirySweepArgs struct{}

func (PackageExpirySweepArgs) Kind() string { return "package_expiry_sweep" }

// InsertOpts keeps at most one sweep queued per interval.
func (PackageExpirySweepArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 3,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: DefaultSweepInterval,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// PackageExpirySweepWorker runs the sweep.
type PackageExpirySweepWorker struct {
	river.WorkerDefaults[PackageExpirySweepArgs]
	sweeper PackageSweeper
	log     zerolog.Logger
}

func NewPackageExpirySweepWorker(sweeper PackageSweeper, log zerolog.Logger) *PackageExpirySweepWorker {
	return &PackageExpirySweepWorker{sweeper: sweeper, log: log}
}

func (w *PackageExpirySweepWorker) Work(ctx context.Context, _ *river.Job[PackageExpirySweepArgs]) error {
	if w == nil || w.sweeper == nil {
		return fmt.Errorf("package expiry sweep worker is not initialized")
	}
	n, err := w.sweeper.SweepExpired(ctx)
	if err != nil {
		return fmt.Errorf("sweep expired packages: %w", err)
	}
	w.log.Info().Int64("unpublished", n).Msg("package expiry sweep completed")
	return nil
}

// Register adds the sweep worker to workers.
func Register(workers *river.Workers, sweeper PackageSweeper, log zerolog.Logger) {
	river.AddWorker(workers, NewPackageExpirySweepWorker(sweeper, log))
}

// PeriodicJobs returns the periodic jobs to pass in river.Config.
func PeriodicJobs(interval time.Duration) []*river.PeriodicJob {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return []*river.PeriodicJob{
		river.NewPeriodicJob(
			river.PeriodicInterval(interval),
			func() (river.JobArgs, *river.InsertOpts) {
				return PackageExpirySweepArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	}
}
