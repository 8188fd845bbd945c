package authreq

import (
	"bufio"
	"strconv"
	"strings"
	"unicode/utf8"
)

// splitWords splits a mapping file line into words. Words are separated by
// blanks, may be quoted, and a # outside quotes ends the line.
func splitWords(s string) []string {
	sc := bufio.NewScanner(strings.NewReader(s))
	sc.Split(scanWords)
	var res []string
	for sc.Scan() {
		tok := sc.Text()
		if tok == "#" {
			break
		}
		word, err := strconv.Unquote(`"` + tok + `"`)
		if err != nil {
			word = tok
		}
		res = append(res, word)
	}
	return res
}

func scanWords(data []byte, atEOF bool) (advance int, token []byte, err error) {
	// Skip leading blanks.
	start := 0
	for width := 0; start < len(data); start += width {
		var r rune
		r, width = utf8.DecodeRune(data[start:])
		if !isSpace(r) {
			break
		}
	}

	r, width := utf8.DecodeRune(data[start:])
	if start < len(data) && r == '#' {
		return start + width, data[start : start+width], nil
	}

	inQuote := false
	if r == '"' {
		start += width
		inQuote = true
	}

	inEscape := false
	for width, i := 0, start; i < len(data); i += width {
		var r rune
		r, width = utf8.DecodeRune(data[i:])
		if !inEscape && r == '\\' {
			inEscape = true
			continue
		}
		if !inQuote && isSpace(r) {
			return i + width, data[start:i], nil
		}
		if !inEscape && inQuote && r == '"' {
			return i + width, data[start:i], nil
		}
		inEscape = false
	}

	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}

	return start, nil, nil
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\r':
		return true
	default:
		return false
	}
}
