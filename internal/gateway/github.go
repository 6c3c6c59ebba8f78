// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST client.
package gateway

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"github.com/naka-gawa/github-weekly/internal/domain"
)

// Fetcher defines the behavior of a gateway for fetching pull requests from GitHub.
type Fetcher interface {
	ListPullRequests(ctx context.Context, owner, repo string) ([]domain.PullRequest, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	client *github.Client
	logger *log.Logger
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
// An empty token yields an unauthenticated client, which GitHub serves with
// a much lower rate limit but which works fine for public repositories.
func NewGitHubGateway(token string, logger *log.Logger) (Fetcher, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	var transport http.RoundTripper = rateLimitWaiter
	if token != "" {
		transport = &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
		}
	}
	return &GitHubGateway{
		client: github.NewClient(&http.Client{Transport: transport}),
		logger: logger,
	}, nil
}

// ListPullRequests fetches pull requests in every state for owner/repo,
// most recently updated first. Only the first page is requested; a weekly
// window rarely reaches past the 100 most recently updated pull requests.
func (g *GitHubGateway) ListPullRequests(ctx context.Context, owner, repo string) ([]domain.PullRequest, error) {
	g.logger.Printf("Fetching pull requests for %s/%s...", owner, repo)
	opts := &github.PullRequestListOptions{
		State:       "all",
		Sort:        "updated",
		Direction:   "desc",
		ListOptions: github.ListOptions{PerPage: 100},
	}
	prs, _, err := g.client.PullRequests.List(ctx, owner, repo, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list pull requests for %s/%s: %w", owner, repo, err)
	}

	result := make([]domain.PullRequest, 0, len(prs))
	for _, pr := range prs {
		p := domain.PullRequest{
			Number:    pr.GetNumber(),
			Title:     pr.GetTitle(),
			URL:       pr.GetHTMLURL(),
			CreatedAt: pr.GetCreatedAt().Time,
			UpdatedAt: pr.GetUpdatedAt().Time,
		}
		if pr.MergedAt != nil {
			t := pr.MergedAt.Time
			p.MergedAt = &t
		}
		if pr.ClosedAt != nil {
			t := pr.ClosedAt.Time
			p.ClosedAt = &t
		}
		result = append(result, p)
	}
	g.logger.Printf("Fetched %d pull requests for %s/%s.", len(result), owner, repo)
	return result, nil
}
