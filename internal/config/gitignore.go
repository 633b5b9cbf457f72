package config

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ProjectIgnoreEntries are the files `config init --project` keeps out of
// version control. Both may hold an OMDb API key.
//
//nolint:gochecknoglobals // Read-only list shared with the CLI.
var ProjectIgnoreEntries = []string{".env", ProjectFileName}

// gitignoreHeader precedes entries appended by moviefinder.
const gitignoreHeader = "# moviefinder (may contain an OMDb API key)"

// EnsureGitignore makes sure the .gitignore in dir lists every entry,
// appending the missing ones and creating the file if needed. Existing
// lines are never rewritten. It returns the entries it added.
func EnsureGitignore(dir string, entries ...string) ([]string, error) {
	gitignorePath := filepath.Join(dir, ".gitignore")

	existing, err := os.ReadFile(gitignorePath)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading .gitignore at %s: %w", gitignorePath, err)
	}

	present := make(map[string]bool)
	scanner := bufio.NewScanner(bytes.NewReader(existing))
	for scanner.Scan() {
		present[strings.TrimSpace(scanner.Text())] = true
	}

	var missing []string
	for _, e := range entries {
		if !present[e] && !present["/"+e] {
			missing = append(missing, e)
			present[e] = true
		}
	}
	if len(missing) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	buf.Write(existing)
	if len(existing) > 0 && !bytes.HasSuffix(existing, []byte("\n")) {
		buf.WriteByte('\n')
	}
	buf.WriteString(gitignoreHeader + "\n")
	for _, e := range missing {
		buf.WriteString(e + "\n")
	}

	if mkdirErr := os.MkdirAll(dir, 0o750); mkdirErr != nil {
		return nil, fmt.Errorf("creating directory %s: %w", dir, mkdirErr)
	}
	//nolint:gosec // .gitignore must be world-readable (0644).
	if writeErr := os.WriteFile(gitignorePath, buf.Bytes(), 0o644); writeErr != nil {
		return nil, fmt.Errorf("writing .gitignore at %s: %w", gitignorePath, writeErr)
	}
	return missing, nil
}
