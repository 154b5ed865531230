package batch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadWords reads words separated by whitespace. Everything after a '#' on
// a line is a comment.
func ReadWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		words = append(words, strings.Fields(line)...)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// ReadBatchFile reads words from a file, one or more per line
func ReadBatchFile(filename string) ([]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	defer f.Close()

	words, err := ReadWords(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	return words, nil
}
