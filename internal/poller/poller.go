package poller

import (
	"context"
	"fmt"
	"time"
)

// Run sweeps the intake table until a sweep finds zero rows in Processing,
// then returns. Per-row failures are logged and skipped so one bad row
// cannot starve the rest; the row keeps its Processing status and is picked
// up again on the next sweep.
func (p *implPoller) Run(ctx context.Context) error {
	for sweep := 1; ; sweep++ {
		rows, err := p.repo.ProcessingRows(ctx)
		if err != nil {
			return fmt.Errorf("scan intake sheet: %w", err)
		}

		if len(rows) == 0 {
			p.logger.Info(ctx, "Sweep %d found no rows in processing, stopping", sweep)
			return nil
		}

		p.logger.Info(ctx, "Sweep %d: %d row(s) to process", sweep, len(rows))
		for _, row := range rows {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := p.processor.ProcessRow(ctx, row); err != nil {
				p.logger.Error(ctx, "Row %d failed: %v", row.Index, err)
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.interval):
		}
	}
}
