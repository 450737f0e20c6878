package sheets

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	sheetsvc "google.golang.org/api/sheets/v4"
	"google.golang.org/api/option"

	"github.com/ndhoang2103/meeting-intake/internal/logger"
)

// Client implements Repository against the Google Sheets v4 API.
type Client struct {
	service       *sheetsvc.Service
	spreadsheetID string
	intakeTab     string
	outputID      string
	outputTab     string
	logger        logger.Logger
}

// NewClient builds a Repository over the given authenticated HTTP client.
// outputID may be empty; AppendTodos is then a no-op.
func NewClient(ctx context.Context, httpClient *http.Client, spreadsheetID, intakeTab, outputID, outputTab string, log logger.Logger) (*Client, error) {
	service, err := sheetsvc.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Client{
		service:       service,
		spreadsheetID: spreadsheetID,
		intakeTab:     intakeTab,
		outputID:      outputID,
		outputTab:     outputTab,
		logger:        log,
	}, nil
}

// ProcessingRows reads the whole intake tab and returns the rows whose
// Status column equals "Processing".
func (c *Client) ProcessingRows(ctx context.Context) ([]IntakeRow, error) {
	resp, err := c.service.Spreadsheets.Values.Get(c.spreadsheetID, c.intakeTab).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read intake sheet: %w", err)
	}
	if len(resp.Values) < 2 {
		return nil, nil
	}

	headers := toStrings(resp.Values[0])

	var rows []IntakeRow
	for i, raw := range resp.Values[1:] {
		row := projectRow(headers, toStrings(raw), i+2)
		if row.IsProcessing() {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// UpdateRowByHeader resolves each header name to its current column and
// writes all cells in one batch request. Headers missing from the sheet are
// skipped, matching the source table's tolerance for renamed columns.
func (c *Client) UpdateRowByHeader(ctx context.Context, rowIndex int, updates map[string]string) error {
	headerResp, err := c.service.Spreadsheets.Values.Get(c.spreadsheetID, c.intakeTab+"!1:1").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("read intake header row: %w", err)
	}
	if len(headerResp.Values) == 0 {
		return fmt.Errorf("intake sheet has no header row")
	}
	headers := toStrings(headerResp.Values[0])

	colByName := make(map[string]int, len(headers))
	for i, h := range headers {
		if _, ok := colByName[h]; !ok {
			colByName[h] = i
		}
	}

	// Deterministic order keeps the batch request stable.
	names := make([]string, 0, len(updates))
	for name := range updates {
		names = append(names, name)
	}
	sort.Strings(names)

	var data []*sheetsvc.ValueRange
	for _, name := range names {
		col, ok := colByName[name]
		if !ok {
			c.logger.Warn(ctx, "Column %q not found in intake sheet; skipping", name)
			continue
		}
		data = append(data, &sheetsvc.ValueRange{
			Range:  fmt.Sprintf("%s!%s%d", c.intakeTab, colLetter(col), rowIndex),
			Values: [][]interface{}{{updates[name]}},
		})
	}
	if len(data) == 0 {
		return nil
	}

	_, err = c.service.Spreadsheets.Values.BatchUpdate(c.spreadsheetID, &sheetsvc.BatchUpdateValuesRequest{
		ValueInputOption: "USER_ENTERED",
		Data:             data,
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("batch update row %d: %w", rowIndex, err)
	}
	return nil
}

// AppendTodos writes one output-sheet row per item. When the output sheet
// has no header row yet, the fixed 17-column header is created first.
func (c *Client) AppendTodos(ctx context.Context, items []TodoItem) error {
	if c.outputID == "" {
		c.logger.Warn(ctx, "Output sheet not configured; skipping %d to-do item(s)", len(items))
		return nil
	}
	if len(items) == 0 {
		return nil
	}

	headerResp, err := c.service.Spreadsheets.Values.Get(c.outputID, c.outputTab+"!1:1").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("read output header row: %w", err)
	}
	if len(headerResp.Values) == 0 || len(headerResp.Values[0]) == 0 {
		header := make([]interface{}, len(outputHeaders))
		for i, h := range outputHeaders {
			header[i] = h
		}
		_, err = c.service.Spreadsheets.Values.Update(c.outputID, c.outputTab+"!1:1", &sheetsvc.ValueRange{
			Values: [][]interface{}{header},
		}).ValueInputOption("RAW").Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("write output header row: %w", err)
		}
	}

	values := make([][]interface{}, 0, len(items))
	for _, item := range items {
		values = append(values, todoRow(item))
	}

	_, err = c.service.Spreadsheets.Values.Append(c.outputID, c.outputTab, &sheetsvc.ValueRange{
		Values: values,
	}).ValueInputOption("USER_ENTERED").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append %d to-do row(s): %w", len(items), err)
	}

	c.logger.Info(ctx, "Pushed %d to-do item(s) to output sheet", len(items))
	return nil
}

// todoRow lays an item out over the 17 output columns. The second Timestamp
// and the Status column stay blank.
func todoRow(item TodoItem) []interface{} {
	row := make([]interface{}, len(outputHeaders))
	for i := range row {
		row[i] = ""
	}
	row[0] = item.CreatedAt.Format("02-01-2006 15:04:05")
	row[1] = item.TaskID
	row[2] = item.Description
	row[3] = item.EmployeeName
	row[4] = item.EmployeeEmail
	row[8] = item.ClientName
	row[13] = item.SourceLink
	return row
}

// colLetter converts a zero-based column index to its A1 letter form.
func colLetter(col int) string {
	letters := ""
	for col >= 0 {
		letters = string(rune('A'+col%26)) + letters
		col = col/26 - 1
	}
	return letters
}

func toStrings(cells []interface{}) []string {
	out := make([]string, len(cells))
	for i, cell := range cells {
		out[i] = fmt.Sprint(cell)
	}
	return out
}
