// Package repolist resolves the list of target repositories from the
// command line or from a JSON file.
package repolist

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Repo identifies a single GitHub repository.
type Repo struct {
	Owner string
	Name  string
}

// FullName returns the canonical "owner/name" form.
func (r Repo) FullName() string {
	return r.Owner + "/" + r.Name
}

// Parse splits a full repository name of the form "owner/name".
func Parse(fullName string) (Repo, error) {
	fullName = strings.TrimSpace(fullName)
	parts := strings.Split(fullName, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Repo{}, fmt.Errorf("invalid repository name %q: expected owner/name", fullName)
	}
	return Repo{Owner: parts[0], Name: parts[1]}, nil
}

// ParseList parses a comma-separated list of full repository names.
func ParseList(list string) ([]Repo, error) {
	var repos []Repo
	for _, fullName := range strings.Split(list, ",") {
		repo, err := Parse(fullName)
		if err != nil {
			return nil, err
		}
		repos = append(repos, repo)
	}
	return repos, nil
}

// Load reads a JSON file whose top-level value is an array of
// "owner/name" strings.
func Load(path string) ([]Repo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read repository file: %w", err)
	}
	var fullNames []string
	if err := json.Unmarshal(data, &fullNames); err != nil {
		return nil, fmt.Errorf("failed to parse repository file %s: %w", path, err)
	}
	var repos []Repo
	for _, fullName := range fullNames {
		repo, err := Parse(fullName)
		if err != nil {
			return nil, err
		}
		repos = append(repos, repo)
	}
	return repos, nil
}
