package sheets

import "context"

// Repository is the narrow view of the intake and output tables the
// processor depends on. The spreadsheet is the sole durable store; the
// processor keeps no state of its own.
type Repository interface {
	// ProcessingRows returns the rows whose Status is "Processing"
	// (case-insensitive, trimmed), in table order.
	ProcessingRows(ctx context.Context) ([]IntakeRow, error)

	// UpdateRowByHeader writes the given cells of one row in a single
	// batch, keyed by column header name.
	UpdateRowByHeader(ctx context.Context, rowIndex int, updates map[string]string) error

	// AppendTodos appends one row per item to the output tracking sheet,
	// bootstrapping the header row when the sheet is blank.
	AppendTodos(ctx context.Context, items []TodoItem) error
}
