// Command intake drains the meeting intake spreadsheet: every row marked
// Processing gets its recordings transcribed and summarized, its documents
// uploaded to Drive, and its summary cells filled in. The process exits once
// a sweep finds nothing left to do.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2/google"
	drivesvc "google.golang.org/api/drive/v3"
	sheetsvc "google.golang.org/api/sheets/v4"

	"github.com/ndhoang2103/meeting-intake/internal/audio"
	"github.com/ndhoang2103/meeting-intake/internal/config"
	"github.com/ndhoang2103/meeting-intake/internal/docgen"
	"github.com/ndhoang2103/meeting-intake/internal/drive"
	"github.com/ndhoang2103/meeting-intake/internal/logger"
	"github.com/ndhoang2103/meeting-intake/internal/poller"
	"github.com/ndhoang2103/meeting-intake/internal/processor"
	"github.com/ndhoang2103/meeting-intake/internal/sheets"
	"github.com/ndhoang2103/meeting-intake/internal/summarizer"
	"github.com/ndhoang2103/meeting-intake/internal/transcriber"
	"github.com/ndhoang2103/meeting-intake/internal/website"
	"github.com/ndhoang2103/meeting-intake/pkg/executor"
)

var (
	configPath string
	envFile    string
)

var rootCmd = &cobra.Command{
	Use:   "intake",
	Short: "Process pending meeting submissions from the intake sheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return run(ctx)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the YAML config file")
	rootCmd.Flags().StringVar(&envFile, "env-file", "", "path to an optional .env file with secrets")
}

func run(ctx context.Context) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	secrets, err := config.LoadSecrets(envFile)
	if err != nil {
		return err
	}

	log := logger.New(cfg.Logging.Level)

	credBytes, err := os.ReadFile(secrets.CredentialsFile)
	if err != nil {
		return fmt.Errorf("read service account credentials: %w", err)
	}
	jwtConf, err := google.JWTConfigFromJSON(credBytes, drivesvc.DriveScope, sheetsvc.SpreadsheetsScope)
	if err != nil {
		return fmt.Errorf("parse service account credentials: %w", err)
	}
	httpClient := jwtConf.Client(ctx)

	repo, err := sheets.NewClient(ctx, httpClient,
		secrets.SpreadsheetID, secrets.IntakeTab,
		secrets.OutputSheetID, secrets.OutputSheetTab, log)
	if err != nil {
		return err
	}

	retry := drive.RetryPolicy{
		MaxAttempts: cfg.Retry.MaxAttempts,
		Initial:     time.Duration(cfg.Retry.InitialSeconds) * time.Second,
	}
	store, err := drive.NewClient(ctx, httpClient, retry, log)
	if err != nil {
		return err
	}

	chunker := audio.New(cfg.Audio.MaxUploadBytes, cfg.Audio.ChunkSeconds, executor.New(), log)
	tr := transcriber.New(secrets.OpenAIKey, cfg.Models.Transcription, chunker, log)
	sum := summarizer.New(secrets.GeminiKeys, cfg.Models.Summarization, log)

	proc := processor.New(repo, store, tr, sum, docgen.New(log), website.New(),
		processor.Folders{
			Regular:   secrets.RegularFolderID,
			Kickstart: secrets.KickstartFolderID,
			Mom:       secrets.MomFolderID,
			Action:    secrets.ActionFolderID,
			Website:   secrets.WebsiteFolderID,
		}, log)

	interval := time.Duration(cfg.Poll.IntervalSeconds) * time.Second
	return poller.New(repo, proc, interval, log).Run(ctx)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
