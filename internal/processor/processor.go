package processor

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/ndhoang2103/meeting-intake/internal/docgen"
	"github.com/ndhoang2103/meeting-intake/internal/sheets"
	"github.com/ndhoang2103/meeting-intake/internal/summarizer"
)

// ProcessRow runs the full pipeline for one intake row. Audio links are
// downloaded and transcribed individually, the merged transcript is
// summarized exactly once, and three documents (meeting notes, MoM, action
// plan) are rendered and uploaded. The website branch runs independently of
// the audio branch. All outcome cells plus Status are written back in one
// batch at the end; any earlier failure leaves the row in Processing so the
// next poll retries it.
func (p *implProcessor) ProcessRow(ctx context.Context, row sheets.IntakeRow) error {
	updates := map[string]string{
		sheets.ColMeetingSummary: "",
		sheets.ColMomSummary:     "",
		sheets.ColActionPoints:   "",
		sheets.ColWebsiteSummary: "NA",
	}

	links := sheets.ParseAudioLinks(row.AudioCell)
	if len(links) > 0 {
		if err := p.processMeeting(ctx, row, links, updates); err != nil {
			return err
		}
	} else {
		p.logger.Info(ctx, "Row %d has no audio links", row.Index)
	}

	if site := strings.TrimSpace(row.WebsiteLink); site != "" && isHTTPURL(site) {
		formula, err := p.processWebsite(ctx, row, site)
		if err != nil {
			return err
		}
		updates[sheets.ColWebsiteSummary] = formula
	}

	updates[sheets.ColStatus] = sheets.StatusDone
	if err := p.repo.UpdateRowByHeader(ctx, row.Index, updates); err != nil {
		return fmt.Errorf("write back row %d: %w", row.Index, err)
	}

	p.logger.Info(ctx, "Row %d completed for client %s", row.Index, row.ClientName)
	return nil
}

// processMeeting handles the audio branch and fills the three meeting cells
// in updates.
func (p *implProcessor) processMeeting(ctx context.Context, row sheets.IntakeRow, links []string, updates map[string]string) error {
	var parts []string
	for i, link := range links {
		dest := filepath.Join(os.TempDir(), fmt.Sprintf("intake_row%d_audio_%d.m4a", row.Index, i+1))
		p.logger.Info(ctx, "Row %d: downloading recording %d/%d", row.Index, i+1, len(links))

		if err := p.store.Download(ctx, link, dest); err != nil {
			return fmt.Errorf("download recording %d/%d for row %d: %w", i+1, len(links), row.Index, err)
		}

		text, err := p.transcriber.TranscribeFile(ctx, dest)
		if err != nil {
			return fmt.Errorf("transcribe recording %d/%d for row %d: %w", i+1, len(links), row.Index, err)
		}
		if text = strings.TrimSpace(text); text != "" {
			parts = append(parts, text)
		}
	}

	transcript := strings.Join(parts, "\n\n")
	summary, err := p.summarizer.SummarizeMeeting(ctx, transcript)
	if err != nil {
		return fmt.Errorf("summarize meeting for row %d: %w", row.Index, err)
	}

	notesFolder := p.folders.Regular
	if strings.Contains(strings.ToLower(row.MeetingType), "kickstart") {
		notesFolder = p.folders.Kickstart
	}

	notesURL, err := p.renderAndUpload(ctx, summary, row, docgen.ModeFull, notesFolder, sheets.ColMeetingSummary, updates)
	if err != nil {
		return err
	}
	if _, err := p.renderAndUpload(ctx, summary, row, docgen.ModeMom, p.folders.Mom, sheets.ColMomSummary, updates); err != nil {
		return err
	}
	if _, err := p.renderAndUpload(ctx, summary, row, docgen.ModeAction, p.folders.Action, sheets.ColActionPoints, updates); err != nil {
		return err
	}

	p.appendTodos(ctx, row, summary, notesURL)
	return nil
}

// renderAndUpload renders one document mode, uploads it, and records its
// hyperlink formula under col in updates. Returns the uploaded link.
func (p *implProcessor) renderAndUpload(ctx context.Context, summary *summarizer.MeetingSummary, row sheets.IntakeRow, mode docgen.Mode, folderID, col string, updates map[string]string) (string, error) {
	doc, err := p.renderer.RenderMeeting(summary, row.ClientName, row.MeetingDate, mode)
	if err != nil {
		return "", fmt.Errorf("render %s document for row %d: %w", mode, row.Index, err)
	}

	link, err := p.store.Upload(ctx, doc.Path, folderID)
	if err != nil {
		return "", fmt.Errorf("upload %s document for row %d: %w", mode, row.Index, err)
	}

	updates[col] = sheets.HyperlinkFormula(link, doc.Filename)
	return link, nil
}

// appendTodos propagates extracted tasks to the output tracking sheet.
// Failures are logged and swallowed: the tracking sheet is best effort and
// must not fail the row or trigger a retry that would duplicate documents.
func (p *implProcessor) appendTodos(ctx context.Context, row sheets.IntakeRow, summary *summarizer.MeetingSummary, sourceLink string) {
	var items []sheets.TodoItem
	for _, task := range summary.TodoList {
		if task = strings.TrimSpace(task); task == "" {
			continue
		}
		items = append(items, sheets.TodoItem{
			TaskID:        uuid.NewString(),
			CreatedAt:     p.now(),
			Description:   task,
			EmployeeName:  row.SubmittedBy,
			EmployeeEmail: row.Email,
			ClientName:    row.ClientName,
			SourceLink:    sourceLink,
		})
	}
	if len(items) == 0 {
		return
	}

	if err := p.repo.AppendTodos(ctx, items); err != nil {
		p.logger.Warn(ctx, "Row %d: failed to append %d to-do item(s): %v", row.Index, len(items), err)
		return
	}
	p.logger.Info(ctx, "Row %d: appended %d to-do item(s)", row.Index, len(items))
}

// processWebsite handles the website branch and returns the hyperlink
// formula for the Website Summary cell. Summarization failures degrade to a
// placeholder document inside the summarizer; only fetch, render, and upload
// errors propagate.
func (p *implProcessor) processWebsite(ctx context.Context, row sheets.IntakeRow, site string) (string, error) {
	pageText, err := p.fetcher.ExtractText(ctx, site)
	if err != nil {
		return "", fmt.Errorf("fetch website for row %d: %w", row.Index, err)
	}

	summary := p.summarizer.SummarizeWebsite(ctx, pageText)

	doc, err := p.renderer.RenderWebsite(summary, row.ClientName, row.MeetingDate)
	if err != nil {
		return "", fmt.Errorf("render website document for row %d: %w", row.Index, err)
	}

	link, err := p.store.Upload(ctx, doc.Path, p.folders.Website)
	if err != nil {
		return "", fmt.Errorf("upload website document for row %d: %w", row.Index, err)
	}

	return sheets.HyperlinkFormula(link, doc.Filename), nil
}

func isHTTPURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
