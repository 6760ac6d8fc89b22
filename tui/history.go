package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// historyLimit caps how many prompt entries are kept on disk.
const historyLimit = 200

// historyPath returns the file the prompt history is persisted to.
func historyPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "keywarden", "history"), nil
}

// loadHistory reads the persisted prompt history, oldest entry first.
// A missing file is not an error.
func loadHistory() ([]string, error) {
	path, err := historyPath()
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []string
	for _, line := range strings.Split(strings.ReplaceAll(string(raw), "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		entries = append(entries, line)
	}
	return entries, nil
}

// SaveHistory writes the prompt history, keeping the newest entries
// when over the limit.
func SaveHistory(entries []string) error {
	if len(entries) == 0 {
		return nil
	}
	path, err := historyPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating history dir: %w", err)
	}

	if len(entries) > historyLimit {
		entries = entries[len(entries)-historyLimit:]
	}
	var b strings.Builder
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		b.WriteString(entry)
		b.WriteString("\n")
	}
	if err := os.WriteFile(path, []byte(b.String()), 0600); err != nil {
		return fmt.Errorf("writing history: %w", err)
	}
	return nil
}
