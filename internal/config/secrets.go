package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Secrets holds the environment-driven settings: credentials, spreadsheet
// and Drive folder identifiers, API keys. Everything that identifies an
// external resource lives here; tunables live in the YAML Config.
type Secrets struct {
	CredentialsFile string `envconfig:"GOOGLE_SA_FILE" required:"true"`
	SpreadsheetID   string `envconfig:"GOOGLE_SHEET_ID" required:"true"`
	IntakeTab       string `envconfig:"INTAKE_SHEET_TAB" default:"Main"`

	OpenAIKey  string   `envconfig:"OPENAI_KEY" required:"true"`
	GeminiKeys []string `envconfig:"GEMINI_API_KEYS" required:"true"`

	RegularFolderID   string `envconfig:"REGULAR_FOLDER_ID" required:"true"`
	KickstartFolderID string `envconfig:"KICKSTART_FOLDER_ID" required:"true"`
	WebsiteFolderID   string `envconfig:"WEBSITE_DRIVE_FOLDER_ID" required:"true"`
	MomFolderID       string `envconfig:"MOM_FOLDER_ID" required:"true"`
	ActionFolderID    string `envconfig:"ACTION_POINT_FOLDER_ID" required:"true"`

	// Output tracking sheet is optional: when unset, to-do propagation is
	// skipped instead of failing startup.
	OutputSheetID  string `envconfig:"OUTPUT_SHEET_ID"`
	OutputSheetTab string `envconfig:"OUTPUT_SHEET_TAB" default:"Sheet1"`
}

// LoadSecrets loads the optional .env file, then resolves the Secrets
// struct from the environment. A missing spreadsheet identifier or
// credential file is a fatal startup error.
func LoadSecrets(envFile string) (*Secrets, error) {
	if envFile != "" {
		// Ignore a missing file: plain environment variables still work.
		_ = godotenv.Load(envFile)
	} else {
		_ = godotenv.Load()
	}

	var s Secrets
	if err := envconfig.Process("", &s); err != nil {
		return nil, fmt.Errorf("resolve environment config: %w", err)
	}

	return &s, nil
}
