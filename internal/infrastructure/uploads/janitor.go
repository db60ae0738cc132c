package uploads

import (
	"context"
	"fmt"

	"github.com/mileusna/crontab"
)

// Janitor periodically prunes the upload directory.
type Janitor struct {
	ctab  *crontab.Crontab
	store *Store
}

func NewJanitor(store *Store) *Janitor {
	return &Janitor{
		ctab:  crontab.New(),
		store: store,
	}
}

// Run prunes once on start, schedules a sweep every minute and blocks
// until the context is cancelled.
func (j *Janitor) Run(ctx context.Context) error {
	j.store.Prune()

	if err := j.ctab.AddJob("* * * * *", j.store.Prune); err != nil {
		return fmt.Errorf("schedule upload prune job: %w", err)
	}

	<-ctx.Done()
	j.ctab.Shutdown()
	return nil
}
