// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/naka-gawa/github-weekly/internal/gateway"
	"github.com/naka-gawa/github-weekly/internal/render"
	"github.com/naka-gawa/github-weekly/internal/repolist"
	"github.com/naka-gawa/github-weekly/internal/usecase"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "github-weekly",
	Short: "A CLI tool to summarize weekly pull request activity.",
	Long: `github-weekly is a CLI tool that fetches pull requests for one or more
GitHub repositories and prints what was merged, opened or updated, and
closed during the trailing week.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		// Set up the logger from the verbose flag. Default: discard all logs.
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger := log.New(io.Discard, "", log.LstdFlags)
		if verbose {
			logger.SetOutput(os.Stderr) // If verbose, log to standard error.
		}

		// Resolve the repository list: exactly one of --file/--repos.
		file, _ := cmd.Flags().GetString("file")
		repoList, _ := cmd.Flags().GetString("repos")
		if (file == "") == (repoList == "") {
			fmt.Fprintln(os.Stderr, "Error: provide exactly one of --file or --repos.")
			os.Exit(1)
		}
		var repos []repolist.Repo
		var err error
		if file != "" {
			repos, err = repolist.Load(file)
		} else {
			repos, err = repolist.ParseList(repoList)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		// The token flag wins over the environment; both are optional for
		// public repositories.
		token, _ := cmd.Flags().GetString("token")
		if token == "" {
			token = os.Getenv("GITHUB_TOKEN")
		}

		days, _ := cmd.Flags().GetInt("days")
		median, _ := cmd.Flags().GetBool("median")

		// Inject dependencies and run the main business logic.
		githubGateway, err := gateway.NewGitHubGateway(token, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create GitHub gateway: %v\n", err)
			os.Exit(1)
		}
		reporter := usecase.NewReporter(githubGateway, logger)

		now := time.Now()
		results := reporter.Report(ctx, repos, now, usecase.Options{
			Window: time.Duration(days) * 24 * time.Hour,
			Median: median,
		})

		render.New(os.Stdout).Render(results, now)

		// A failed repository still renders its error line above; reflect
		// the failure in the exit code once everything has printed.
		for _, res := range results {
			if res.Err != nil {
				os.Exit(1)
			}
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringP("token", "t", "", "GitHub API token (defaults to the GITHUB_TOKEN environment variable)")
	rootCmd.Flags().StringP("file", "f", "", "Path to a JSON file holding an array of owner/name strings")
	rootCmd.Flags().StringP("repos", "r", "", "Comma-separated owner/name repository list")
	rootCmd.Flags().Int("days", 7, "Length of the trailing activity window in days")
	rootCmd.Flags().Bool("median", false, "Also print the median time to merge per repository")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
}
