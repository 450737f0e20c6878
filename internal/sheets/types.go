package sheets

import "time"

// Row status values used in the intake table's Status column.
const (
	StatusPending    = "Pending"
	StatusProcessing = "Processing"
	StatusDone       = "Done"
	StatusError      = "Error"
)

// Intake table column headers written back by the processor.
const (
	ColMeetingSummary = "Meeting Summary"
	ColWebsiteSummary = "Website Summary"
	ColMomSummary     = "MoM Summary"
	ColActionPoints   = "Action Points Summary"
	ColStatus         = "Status"
)

// IntakeRow is one meeting submission, projected from the raw sheet row by
// header name so column reordering in the table cannot break reads.
type IntakeRow struct {
	Index       int // 1-based sheet row number
	Timestamp   string
	MeetingDate string
	ClientName  string
	MeetingType string
	SubmittedBy string
	Email       string
	AudioCell   string
	WebsiteLink string
	Status      string
}

// TodoItem is one task extracted from a meeting summary, appended to the
// output tracking sheet. Created once, never mutated.
type TodoItem struct {
	TaskID        string
	CreatedAt     time.Time
	Description   string
	EmployeeName  string
	EmployeeEmail string
	ClientName    string
	SourceLink    string
}

// outputHeaders is the fixed 17-column schema of the output tracking sheet.
// Only the first Timestamp column is populated; Status is never written.
var outputHeaders = []string{
	"Timestamp",
	"Task ID",
	"Task Description",
	"Employee Name",
	"Employee Email ID",
	"Target Date",
	"Priority",
	"Approval Needed",
	"Client Name",
	"Department",
	"Assigned Name",
	"Assigned Email ID",
	"Comments",
	"Source Link",
	"Checkbox",
	"Timestamp",
	"Status",
}
