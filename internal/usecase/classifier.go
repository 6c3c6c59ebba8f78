// Package usecase contains the business logic of the application.
package usecase

import (
	"time"

	"github.com/naka-gawa/github-weekly/internal/domain"
)

// Classify partitions pull requests into the three activity buckets of the
// trailing window ending at now. A pull request lands in at most one bucket:
// a merge inside the window always wins, then a close, then any creation or
// update. Records entirely outside the window are dropped. The input slice
// is not modified and entries keep its order.
//
// Timestamps exactly on the window boundary do not qualify (strict After).
func Classify(prs []domain.PullRequest, now time.Time, window time.Duration) *domain.Report {
	windowStart := now.Add(-window)
	report := &domain.Report{}

	for _, pr := range prs {
		// A record without creation/update times reads as freshly touched.
		// Intentional fallback: dropping such a record would hide it from
		// the report entirely.
		createdAt := pr.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}
		updatedAt := pr.UpdatedAt
		if updatedAt.IsZero() {
			updatedAt = now
		}

		recentlyTouched := createdAt.After(windowStart) || updatedAt.After(windowStart)
		recentlyMerged := pr.MergedAt != nil && pr.MergedAt.After(windowStart)
		recentlyClosed := pr.ClosedAt != nil && pr.ClosedAt.After(windowStart)

		switch {
		case recentlyMerged:
			report.Merged = append(report.Merged, entry(pr, *pr.MergedAt))
		case recentlyClosed:
			// Not merged, so this is a close without a merge.
			report.Closed = append(report.Closed, entry(pr, *pr.ClosedAt))
		case recentlyTouched && !recentlyClosed && !recentlyMerged:
			// The re-exclusion of merged/closed records is redundant after
			// the earlier cases but kept so this branch stands on its own.
			report.OpenedOrUpdated = append(report.OpenedOrUpdated, entry(pr, latest(createdAt, updatedAt)))
		}
	}

	return report
}

func entry(pr domain.PullRequest, date time.Time) domain.Entry {
	return domain.Entry{
		Number: pr.Number,
		Title:  pr.Title,
		URL:    pr.URL,
		Date:   date,
	}
}

func latest(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}
