package snapshots

import (
	"time"

	"github.com/rs/zerolog"
)

// CleanupJob deletes snapshots older than the retention horizon. Registered
// with the scheduler to run daily.
type CleanupJob struct {
	repo      *Repository
	retention time.Duration
	log       zerolog.Logger
}

// NewCleanupJob creates a new retention cleanup job.
func NewCleanupJob(repo *Repository, retention time.Duration, log zerolog.Logger) *CleanupJob {
	return &CleanupJob{
		repo:      repo,
		retention: retention,
		log:       log.With().Str("job", "snapshot_cleanup").Logger(),
	}
}

// Name implements scheduler.Job.
func (j *CleanupJob) Name() string { return "snapshot_cleanup" }

// Run implements scheduler.Job.
func (j *CleanupJob) Run() error {
	cutoff := time.Now().Add(-j.retention)

	deleted, err := j.repo.DeleteOlderThan(cutoff)
	if err != nil {
		return err
	}

	if deleted > 0 {
		j.log.Info().Int64("deleted", deleted).Time("cutoff", cutoff).Msg("Pruned old snapshots")
	}
	return nil
}
