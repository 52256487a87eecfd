// Package natsort implements natural string ordering where embedded
// numeric runs compare by value, so "item2" sorts before "item10".
package natsort

import (
	"strings"
)

// Chunk is one comparable token of a key: either a numeric run or a
// lowercased text run.
type Chunk struct {
	Text  string
	Num   uint64
	IsNum bool
}

// Key splits s into chunks on maximal digit runs. Digit runs become
// numeric chunks, everything else becomes case-folded text chunks.
func Key(s string) []Chunk {
	var chunks []Chunk
	i := 0
	for i < len(s) {
		j := i
		if isDigit(s[i]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			chunks = append(chunks, Chunk{Num: parseUint(s[i:j]), IsNum: true})
		} else {
			for j < len(s) && !isDigit(s[j]) {
				j++
			}
			chunks = append(chunks, Chunk{Text: strings.ToLower(s[i:j])})
		}
		i = j
	}
	return chunks
}

// Compare orders a and b naturally: chunks compare positionally, numeric
// against numeric by value, text against text case-insensitively, and a
// shorter sequence precedes a longer one sharing its prefix.
// A numeric chunk sorts before a text chunk at the same position.
func Compare(a, b string) int {
	ka, kb := Key(a), Key(b)
	for i := 0; i < len(ka) && i < len(kb); i++ {
		ca, cb := ka[i], kb[i]
		switch {
		case ca.IsNum && cb.IsNum:
			if ca.Num != cb.Num {
				if ca.Num < cb.Num {
					return -1
				}
				return 1
			}
		case !ca.IsNum && !cb.IsNum:
			if ca.Text != cb.Text {
				if ca.Text < cb.Text {
					return -1
				}
				return 1
			}
		case ca.IsNum:
			return -1
		default:
			return 1
		}
	}
	switch {
	case len(ka) < len(kb):
		return -1
	case len(ka) > len(kb):
		return 1
	}
	return 0
}

// Less reports whether a orders before b.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// parseUint parses a digit run without the error path of strconv;
// the input is guaranteed to be all ASCII digits. Very long runs
// saturate instead of wrapping.
func parseUint(s string) uint64 {
	const cutoff = (^uint64(0))/10 - 1
	var n uint64
	for i := 0; i < len(s); i++ {
		if n > cutoff {
			return ^uint64(0)
		}
		n = n*10 + uint64(s[i]-'0')
	}
	return n
}
