// Package domain contains the core data structures and domain logic for the application.
package domain

import "time"

// PullRequest is the slice of a GitHub pull request this tool cares about.
// MergedAt and ClosedAt are nil when the pull request has not been merged
// or closed.
type PullRequest struct {
	Number    int
	Title     string
	URL       string
	CreatedAt time.Time
	UpdatedAt time.Time
	MergedAt  *time.Time
	ClosedAt  *time.Time
}

// Entry is a single pull request prepared for display. Date carries the
// timestamp that placed the pull request in its bucket: the merge time, the
// close time, or the latest of creation/update.
type Entry struct {
	Number int
	Title  string
	URL    string
	Date   time.Time
}

// Report holds the three activity buckets for one repository. A pull
// request appears in at most one bucket; a merged pull request is never
// reported as closed. Entries keep the order of the input list.
type Report struct {
	Merged          []Entry
	OpenedOrUpdated []Entry
	Closed          []Entry
}

// Empty reports whether all three buckets are empty.
func (r *Report) Empty() bool {
	return len(r.Merged) == 0 && len(r.OpenedOrUpdated) == 0 && len(r.Closed) == 0
}

// RepoActivity is the outcome of processing one repository: either a
// classified report or the error that prevented fetching it.
type RepoActivity struct {
	Repo string
	// Report is nil when Err is set.
	Report *Report
	// MedianMergeTime is the median duration from creation to merge over
	// the merged bucket. Zero when not requested or when nothing merged.
	MedianMergeTime time.Duration
	Err             error
}
