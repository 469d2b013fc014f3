package scan

import (
	"fmt"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
)

// peersFromFile reads a comma-delimited descriptor list from the given path.
// Entries are trimmed; empty entries are dropped. Malformed descriptors are
// kept here and discarded later by the evaluator, so one bad entry never
// fails the whole source.
func peersFromFile(path string) ([]string, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("scan: expanding peers file path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scan: reading peers file: %w", err)
	}

	var peers []string
	for _, entry := range strings.Split(strings.TrimSpace(string(data)), ",") {
		if entry = strings.TrimSpace(entry); entry != "" {
			peers = append(peers, entry)
		}
	}
	return peers, nil
}
