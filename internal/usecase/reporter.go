package usecase

import (
	"context"
	"log"
	"time"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"

	"github.com/naka-gawa/github-weekly/internal/domain"
	"github.com/naka-gawa/github-weekly/internal/gateway"
	"github.com/naka-gawa/github-weekly/internal/repolist"
)

// Options control a single report run.
type Options struct {
	// Window is the length of the trailing activity window.
	Window time.Duration
	// Median enables the median time-to-merge calculation, which adds one
	// pass over each repository's merged pull requests.
	Median bool
}

// Reporter is the use case for building weekly activity reports.
// It orchestrates the fetching and classification of pull requests.
type Reporter struct {
	fetcher gateway.Fetcher
	logger  *log.Logger
}

// NewReporter creates a new Reporter instance.
func NewReporter(fetcher gateway.Fetcher, logger *log.Logger) *Reporter {
	return &Reporter{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Report fetches all repositories concurrently, waits for every fetch to
// finish, then classifies sequentially. Results keep the input order no
// matter which fetch completes first, and each repository carries its own
// fetch error, so one failing repository never aborts the rest.
func (r *Reporter) Report(ctx context.Context, repos []repolist.Repo, now time.Time, opts Options) []domain.RepoActivity {
	r.logger.Printf("Usecase: Starting report run for %d repositories...", len(repos))

	prLists := make([][]domain.PullRequest, len(repos))
	errs := make([]error, len(repos))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, repo := range repos {
		i, repo := i, repo
		eg.Go(func() error {
			prLists[i], errs[i] = r.fetcher.ListPullRequests(egCtx, repo.Owner, repo.Name)
			return nil
		})
	}
	// Errors are recorded per repository above; Wait only joins the group.
	_ = eg.Wait()
	r.logger.Println("Usecase: All fetches finished.")

	results := make([]domain.RepoActivity, len(repos))
	for i, repo := range repos {
		results[i] = domain.RepoActivity{Repo: repo.FullName()}
		if errs[i] != nil {
			results[i].Err = errs[i]
			continue
		}
		results[i].Report = Classify(prLists[i], now, opts.Window)
		if opts.Median {
			results[i].MedianMergeTime = medianMergeTime(prLists[i], now, opts.Window)
		}
	}

	r.logger.Println("Usecase: Report run complete.")
	return results
}

// medianMergeTime returns the median creation-to-merge duration over the
// pull requests merged inside the window, or zero when nothing merged.
func medianMergeTime(prs []domain.PullRequest, now time.Time, window time.Duration) time.Duration {
	windowStart := now.Add(-window)
	var seconds []float64
	for _, pr := range prs {
		if pr.MergedAt == nil || !pr.MergedAt.After(windowStart) {
			continue
		}
		seconds = append(seconds, pr.MergedAt.Sub(pr.CreatedAt).Seconds())
	}
	if len(seconds) == 0 {
		return 0
	}
	median, err := stats.Median(seconds)
	if err != nil {
		return 0
	}
	return time.Duration(median * float64(time.Second))
}
