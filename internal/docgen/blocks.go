package docgen

import (
	"fmt"
	"strings"
	"time"

	"github.com/ndhoang2103/meeting-intake/internal/summarizer"
)

// blockKind distinguishes the paragraph styles a document is built from.
type blockKind int

const (
	kindTitle blockKind = iota
	kindDateLine
	kindHeading1
	kindHeading2
	kindBullet
	kindParagraph
)

// run is a span of text with an optional bold emphasis.
type run struct {
	text string
	bold bool
}

// block is one paragraph of the document plan. Rendering first builds the
// plan, then writes it out; tests assert on the plan.
type block struct {
	kind blockKind
	runs []run
}

func textBlock(kind blockKind, text string) block {
	return block{kind: kind, runs: []run{{text: text}}}
}

func (b block) plainText() string {
	var sb strings.Builder
	for _, r := range b.runs {
		sb.WriteString(r.text)
	}
	return sb.String()
}

// actionPlanSections fixes the order and human-readable headings of the six
// action plan categories. Unknown keys in the summary are ignored.
var actionPlanSections = []struct {
	key   string
	title string
}{
	{summarizer.CategoryDecisions, "Key Decisions Made"},
	{summarizer.CategoryServices, "Key Services to Promote"},
	{summarizer.CategoryGeography, "Target Geography"},
	{summarizer.CategoryBudget, "Budget and Timeline"},
	{summarizer.CategoryLeads, "Lead Management Strategy"},
	{summarizer.CategoryNextSteps, "Next Steps and Ownership"},
}

// formatMeetingDate renders structured dates as dd-mm-YYYY and passes
// pre-formatted strings through unchanged.
func formatMeetingDate(date interface{}) string {
	switch v := date.(type) {
	case time.Time:
		return v.Format("02-01-2006")
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// meetingBlocks builds the document plan for one meeting summary in the
// given mode.
func meetingBlocks(summary *summarizer.MeetingSummary, clientName, meetingDate string, mode Mode) []block {
	var blocks []block

	switch mode {
	case ModeFull:
		blocks = append(blocks, textBlock(kindTitle, clientName+" Meeting Notes"))
		blocks = append(blocks, textBlock(kindDateLine, "Date: "+meetingDate))
	case ModeMom:
		blocks = append(blocks, textBlock(kindTitle, clientName+" - MoM"))
	case ModeAction:
		blocks = append(blocks, textBlock(kindTitle, clientName+" - Action Points"))
	}

	if mode == ModeFull || mode == ModeMom {
		blocks = append(blocks, textBlock(kindHeading1, "1. Minutes of the Meeting (MoM)"))
		blocks = append(blocks, bulletBlocks(summary.Mom)...)
	}

	if mode == ModeFull {
		blocks = append(blocks, textBlock(kindHeading1, "2. To-Do List"))
		blocks = append(blocks, bulletBlocks(summary.TodoList)...)
	}

	if mode == ModeFull || mode == ModeAction {
		blocks = append(blocks, textBlock(kindHeading1, "3. Action Points / Action Plan"))
		for _, section := range actionPlanSections {
			items := nonEmpty(summary.ActionPlan[section.key])
			if len(items) == 0 {
				continue
			}
			blocks = append(blocks, textBlock(kindHeading2, section.title))
			for _, item := range items {
				blocks = append(blocks, textBlock(kindBullet, item))
			}
		}
	}

	return blocks
}

// websiteBlocks builds the document plan for a website summary. Bullet
// lines get their **bold** spans split into alternating plain/bold runs;
// other lines render as plain paragraphs.
func websiteBlocks(summary *summarizer.WebsiteSummary, clientName, meetingDate string) []block {
	blocks := []block{
		textBlock(kindTitle, clientName+" Website Summary"),
		textBlock(kindDateLine, "Date: "+meetingDate),
	}

	for _, section := range summary.Sections {
		heading := strings.TrimSpace(section.Heading)
		if heading != "" {
			blocks = append(blocks, textBlock(kindHeading1, heading))
		}

		for _, line := range strings.Split(section.Content, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if strings.HasPrefix(line, "- ") {
				blocks = append(blocks, block{
					kind: kindBullet,
					runs: boldRuns(strings.TrimSpace(line[2:])),
				})
			} else {
				blocks = append(blocks, textBlock(kindParagraph, line))
			}
		}
	}

	return blocks
}

// boldRuns splits text on **...** markers into alternating plain and bold
// runs.
func boldRuns(text string) []run {
	var runs []run
	for i, part := range strings.Split(text, "**") {
		if part == "" {
			continue
		}
		runs = append(runs, run{text: part, bold: i%2 == 1})
	}
	if runs == nil {
		runs = []run{{text: ""}}
	}
	return runs
}

func bulletBlocks(items []string) []block {
	var blocks []block
	for _, item := range nonEmpty(items) {
		blocks = append(blocks, textBlock(kindBullet, item))
	}
	return blocks
}

// nonEmpty trims every entry and drops the blank ones.
func nonEmpty(items []string) []string {
	var out []string
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
