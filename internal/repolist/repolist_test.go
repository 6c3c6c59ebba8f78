package repolist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expected    Repo
		expectError bool
	}{
		{name: "valid full name", input: "golang/go", expected: Repo{Owner: "golang", Name: "go"}},
		{name: "surrounding whitespace is trimmed", input: "  golang/go ", expected: Repo{Owner: "golang", Name: "go"}},
		{name: "missing owner", input: "/go", expectError: true},
		{name: "missing name", input: "golang/", expectError: true},
		{name: "no separator", input: "golang", expectError: true},
		{name: "too many separators", input: "a/b/c", expectError: true},
		{name: "empty", input: "", expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, err := Parse(tc.input)
			if tc.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, repo)
			}
		})
	}
}

func TestRepo_FullName(t *testing.T) {
	assert.Equal(t, "golang/go", Repo{Owner: "golang", Name: "go"}.FullName())
}

func TestParseList(t *testing.T) {
	repos, err := ParseList("golang/go,spf13/cobra")

	assert.NoError(t, err)
	assert.Equal(t, []Repo{{Owner: "golang", Name: "go"}, {Owner: "spf13", Name: "cobra"}}, repos)
}

func TestParseList_InvalidEntry(t *testing.T) {
	repos, err := ParseList("golang/go,not-a-repo")

	assert.Error(t, err)
	assert.Nil(t, repos)
}

func TestLoad(t *testing.T) {
	testCases := []struct {
		name        string
		content     string
		expected    []Repo
		expectError bool
	}{
		{
			name:     "valid file",
			content:  `["golang/go", "spf13/cobra"]`,
			expected: []Repo{{Owner: "golang", Name: "go"}, {Owner: "spf13", Name: "cobra"}},
		},
		{
			name:     "empty array",
			content:  `[]`,
			expected: nil,
		},
		{
			name:        "not a JSON array",
			content:     `{"repos": ["golang/go"]}`,
			expectError: true,
		},
		{
			name:        "invalid repository name inside the array",
			content:     `["golang"]`,
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "repos.json")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o644))

			repos, err := Load(path)
			if tc.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, repos)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read repository file")
}
