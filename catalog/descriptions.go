package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadDescriptions parses a promise (or condition) description file: one
// "token, description" pair per line, with blank lines and lines whose
// first non-blank character is '#' ignored. A missing description is
// tolerated and stored as the empty string.
//
// encoding/csv is deliberately not used here: comment lines may carry
// leading whitespace, which csv.Reader's Comment handling rejects.
func ReadDescriptions(r io.Reader) (map[string]string, error) {
	out := make(map[string]string)
	scanner := bufio.NewScanner(r)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		token, desc, _ := strings.Cut(line, ",")
		token = strings.TrimSpace(token)
		if token == "" {
			return nil, fmt.Errorf("line %d: empty token", lineNum)
		}
		out[token] = strings.TrimSpace(desc)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read descriptions: %w", err)
	}
	return out, nil
}

// ReadDescriptionsFile is ReadDescriptions over a file path.
func ReadDescriptionsFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open descriptions: %w", err)
	}
	defer f.Close()
	return ReadDescriptions(f)
}
