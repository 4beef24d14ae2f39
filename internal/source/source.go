// Package source loads practice text from files, readers and the clipboard.
package source

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
)

// maxLine bounds a single line of input; pasted prose often has no line breaks.
const maxLine = 4 << 20

// FromFile reads practice text from the provided file path.
func FromFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only text.
			_ = cerr
		}
	}()
	return FromReader(file)
}

// FromReader reads all lines from r, dropping blank lines.
func FromReader(r io.Reader) (string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return "", fmt.Errorf("text is empty")
	}
	return strings.Join(lines, "\n"), nil
}

// FromClipboard returns the current clipboard text.
func FromClipboard() (string, error) {
	if clipboard.Unsupported {
		return "", fmt.Errorf("clipboard is not supported on this system")
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("failed to read clipboard: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("clipboard is empty")
	}
	return text, nil
}
