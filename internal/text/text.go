// Package text prepares source text for typing practice.
package text

import "strings"

var typable = strings.NewReplacer(
	"´", "`",
	"’", "'",
	"”", `"`,
	"“", `"`,
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
)

// Normalize maps characters that are hard to type to their keyboard twins
// and turns line breaks into word separators.
func Normalize(s string) string {
	return typable.Replace(s)
}

// Chunk splits text into whitespace-delimited words and regroups them into
// chunks of size words joined by single spaces. The last chunk may be shorter.
func Chunk(s string, size int) []string {
	if size < 1 {
		size = 1
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	chunks := make([]string, 0, (len(words)+size-1)/size)
	for i := 0; i < len(words); i += size {
		end := i + size
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[i:end], " "))
	}
	return chunks
}

// WordCount returns the number of whitespace-delimited words in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// IsPunctuation reports whether r may be skipped when punctuation is optional.
func IsPunctuation(r rune) bool {
	switch r {
	case '.', ',', '!', '?', ':', ';', '-', '(', ')', '[', ']',
		'\'', '"', '’', '”', '“', '`', '´':
		return true
	default:
		return false
	}
}
