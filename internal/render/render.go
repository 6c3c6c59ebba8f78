// Package render prints weekly activity reports as styled terminal text.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/naka-gawa/github-weekly/internal/domain"
)

var (
	bold = color.New(color.Bold)
	dim  = color.New(color.Faint)
	red  = color.New(color.FgRed)
)

// Renderer writes repository sections to a single output stream.
type Renderer struct {
	w io.Writer
}

// New creates a Renderer writing to w.
func New(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Render prints one section per repository, in input order, separated by a
// blank line (none after the last). now is the reference instant for the
// relative-time phrases.
func (r *Renderer) Render(results []domain.RepoActivity, now time.Time) {
	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(r.w)
		}
		r.renderRepo(res, now)
	}
}

func (r *Renderer) renderRepo(res domain.RepoActivity, now time.Time) {
	fmt.Fprintln(r.w, bold.Sprint(res.Repo))
	if res.Err != nil {
		fmt.Fprintf(r.w, "  %s\n", red.Sprintf("error: %v", res.Err))
		return
	}
	if res.Report.Empty() {
		fmt.Fprintln(r.w, "  no recent changes")
		return
	}
	r.renderBucket("🎉", "merged", res.Report.Merged, now)
	r.renderBucket("💪", "opened or updated", res.Report.OpenedOrUpdated, now)
	r.renderBucket("🚧", "closed", res.Report.Closed, now)
	if res.MedianMergeTime > 0 {
		fmt.Fprintf(r.w, "  %s\n", dim.Sprintf("median time to merge: %s", plainDuration(res.MedianMergeTime, now)))
	}
}

func (r *Renderer) renderBucket(icon, label string, entries []domain.Entry, now time.Time) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintf(r.w, "  %s %s %s\n", icon, bold.Sprint(len(entries)), label)
	for _, e := range entries {
		fmt.Fprintf(r.w, "    %s #%d %s %s\n",
			hyperlink(e.URL, e.Title),
			e.Number,
			label,
			dim.Sprint(humanize.RelTime(e.Date, now, "ago", "from now")),
		)
	}
}

// hyperlink wraps text in an OSC 8 terminal hyperlink. Skipped whenever
// color output is off, so piped output stays free of escape sequences.
func hyperlink(url, text string) string {
	if color.NoColor || url == "" {
		return text
	}
	return fmt.Sprintf("\x1b]8;;%s\x1b\\%s\x1b]8;;\x1b\\", url, text)
}

// plainDuration renders a duration in the same coarse units as the
// relative-time phrases ("26 hours", "2 days").
func plainDuration(d time.Duration, now time.Time) string {
	return strings.TrimSpace(humanize.RelTime(now.Add(-d), now, "", ""))
}
