package summarizer

import (
	"encoding/json"
	"regexp"
	"strings"
	"unicode"
)

// extractBalancedJSON finds the first balanced {...} block via brace
// counting. Returns "" when no complete block exists.
func extractBalancedJSON(text string) string {
	start := strings.IndexByte(text, '{')
	if start == -1 {
		return ""
	}
	depth := 0
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}

// stripFences removes markdown code fences, stray backticks and a leading
// "json" tag the model sometimes emits around the object.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	text = strings.Trim(text, "`")
	text = strings.TrimSpace(text)
	if len(text) >= 4 && strings.EqualFold(text[:4], "json") {
		text = strings.TrimSpace(text[4:])
	}
	return text
}

var trailingCommaRe = regexp.MustCompile(`,(\s*[\]\}])`)

// stripTrailingCommas removes commas directly before a closing bracket or
// brace, a common model mistake.
func stripTrailingCommas(s string) string {
	return trailingCommaRe.ReplaceAllString(s, "$1")
}

// escapeInnerQuotes walks the text tracking string state and escapes double
// quotes that appear inside a string value without terminating it. A quote
// followed (after whitespace) by a JSON structural character is treated as
// the real string terminator.
func escapeInnerQuotes(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		ch := s[i]

		if !inString {
			if ch == '"' {
				inString = true
			}
			b.WriteByte(ch)
			continue
		}

		if escaped {
			escaped = false
			b.WriteByte(ch)
			continue
		}
		if ch == '\\' {
			escaped = true
			b.WriteByte(ch)
			continue
		}
		if ch != '"' {
			b.WriteByte(ch)
			continue
		}

		// Decide whether this quote ends the string or sits inside it.
		if terminatesString(s[i+1:]) {
			inString = false
			b.WriteByte(ch)
		} else {
			b.WriteString(`\"`)
		}
	}

	return b.String()
}

func terminatesString(rest string) bool {
	for _, r := range rest {
		if unicode.IsSpace(r) {
			continue
		}
		switch r {
		case ',', '}', ']', ':':
			return true
		}
		return false
	}
	return true // end of input also terminates
}

// decodeLenient tries a chain of decoder strategies in order, first match
// wins: strict parse, trailing-comma removal, inner-quote escaping, then
// both repairs combined.
func decodeLenient(blob string, v interface{}) error {
	repairs := []func(string) string{
		func(s string) string { return s },
		stripTrailingCommas,
		escapeInnerQuotes,
		func(s string) string { return stripTrailingCommas(escapeInnerQuotes(s)) },
	}

	var lastErr error
	for _, repair := range repairs {
		if err := json.Unmarshal([]byte(repair(blob)), v); err == nil {
			return nil
		} else {
			lastErr = err
		}
	}
	return lastErr
}
