package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// loadWords reads one word per line from path, trimming spaces and skipping blank lines.
// The file order is kept.
func loadWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	words, err := readWords(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("no words in %s", path)
	}
	return words, nil
}

func readWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if w := strings.TrimSpace(scanner.Text()); w != "" {
			words = append(words, w)
		}
	}
	return words, scanner.Err()
}
