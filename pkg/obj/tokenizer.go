package obj

import (
	"bufio"
	"io"
	"strings"
)

const whitespace = " \t\r\n"

// LineReader yields trimmed, non-empty lines from an OBJ source.
// Lines have no length limit. A LineReader cannot be rewound.
type LineReader struct {
	r    *bufio.Reader
	line int
	done bool
}

// NewLineReader wraps r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// Next returns the next non-blank line with surrounding whitespace removed,
// along with its 1-based line number in the source.
// It returns io.EOF once the source is exhausted.
func (lr *LineReader) Next() (string, int, error) {
	for !lr.done {
		raw, err := lr.r.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				return "", lr.line, err
			}
			lr.done = true
			if raw == "" {
				break
			}
		}
		lr.line++

		line := strings.Trim(raw, whitespace)
		if line == "" {
			continue
		}
		return line, lr.line, nil
	}
	return "", lr.line, io.EOF
}

// Line returns the number of the last line read.
func (lr *LineReader) Line() int {
	return lr.line
}

// Fields splits a line into whitespace-delimited tokens.
func Fields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return strings.ContainsRune(whitespace, r)
	})
}

// IndexToken is one slash-separated part of a face vertex field.
type IndexToken struct {
	Text    string
	Present bool
}

// SplitFaceVertex splits a face field such as "3/1/7" into its vertex,
// texture and normal parts. Empty or missing parts are reported as absent,
// so "3//7" has no texture part.
func SplitFaceVertex(field string) [3]IndexToken {
	var out [3]IndexToken
	parts := strings.SplitN(field, "/", 3)
	for i, p := range parts {
		p = strings.Trim(p, whitespace)
		if p == "" {
			continue
		}
		out[i] = IndexToken{Text: p, Present: true}
	}
	return out
}
