package scoring

import (
	"context"
	"sort"

	"github.com/jonathan/ats-engine/internal/types"
	"golang.org/x/sync/errgroup"
)

// RankAll scores every application against one job concurrently and returns
// the list sorted by score descending. Equal scores keep their input order;
// finer tie-breaking (e.g. by application date) is left to the caller.
func (s *Scorer) RankAll(ctx context.Context, job types.Job, applications []types.Application) []types.RankedApplication {
	ranked := make([]types.RankedApplication, len(applications))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, app := range applications {
		i, app := i, app
		g.Go(func() error {
			ranked[i] = types.RankedApplication{
				Application: app,
				Result:      s.Rank(gctx, app.Applicant, job, app.CoverLetter),
			}
			return nil
		})
	}
	_ = g.Wait() // Rank never returns an error

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Result.Score > ranked[j].Result.Score
	})
	return ranked
}
