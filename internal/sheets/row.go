package sheets

import (
	"fmt"
	"regexp"
	"strings"
)

var httpLinkRe = regexp.MustCompile(`(?i)https?://[^\s,]+`)

// ParseAudioLinks extracts audio URLs from the raw cell value. The cell may
// hold a bare URL, several comma-separated URLs, or a legacy parenthesized
// list "(url1, url2)". Malformed input degrades to an empty or single-element
// list; it never fails.
func ParseAudioLinks(cell string) []string {
	v := strings.TrimSpace(cell)
	if v == "" {
		return nil
	}
	if strings.HasPrefix(v, "(") && strings.HasSuffix(v, ")") {
		v = strings.TrimSpace(v[1 : len(v)-1])
	}

	links := httpLinkRe.FindAllString(v, -1)
	if len(links) == 0 && strings.Contains(v, ",") {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				links = append(links, part)
			}
		}
	}
	return links
}

// HyperlinkFormula builds a spreadsheet HYPERLINK formula combining a URL
// and display text. Embedded double quotes are doubled per the sheet's
// escaping rule. An empty URL degrades to the plain text.
func HyperlinkFormula(url, text string) string {
	if url == "" {
		return text
	}
	safeURL := strings.ReplaceAll(url, `"`, `""`)
	safeText := strings.ReplaceAll(text, `"`, `""`)
	return fmt.Sprintf(`=HYPERLINK("%s","%s")`, safeURL, safeText)
}

// projectRow parses a raw sheet row into an IntakeRow keyed by header name.
// Short rows degrade to empty fields.
func projectRow(headers []string, raw []string, index int) IntakeRow {
	byName := make(map[string]string, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(h)
		if h == "" || i >= len(raw) {
			continue
		}
		// First occurrence wins for duplicated headers.
		if _, ok := byName[h]; !ok {
			byName[h] = raw[i]
		}
	}

	return IntakeRow{
		Index:       index,
		Timestamp:   byName["Timestamp"],
		MeetingDate: byName["Meeting Date"],
		ClientName:  byName["Client Name"],
		MeetingType: byName["Meeting Type"],
		SubmittedBy: byName["Submitted By"],
		Email:       byName["Email ID"],
		AudioCell:   byName["Meeting Audio Link(s)"],
		WebsiteLink: byName["Website Link"],
		Status:      byName["Status"],
	}
}

// IsProcessing reports whether the row is waiting to be picked up.
// Comparison is case-insensitive and whitespace-trimmed.
func (r IntakeRow) IsProcessing() bool {
	return strings.EqualFold(strings.TrimSpace(r.Status), StatusProcessing)
}
