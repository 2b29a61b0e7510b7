package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/fang"
	_ "github.com/joho/godotenv/autoload"
	"github.com/leighmacdonald/folio/internal/config"
	"github.com/leighmacdonald/folio/internal/contact"
	"github.com/leighmacdonald/folio/internal/content"
	"github.com/leighmacdonald/folio/internal/nav"
	"github.com/leighmacdonald/folio/internal/store"
	"github.com/leighmacdonald/folio/internal/ui"
	"github.com/leighmacdonald/folio/internal/ui/component"
	"github.com/spf13/cobra"
)

var (
	BuildVersion   = "master"
	BuildCommit    = "00000000"
	BuildDate      = time.Now().Format("2006-01-02T15:04:05Z")
	BuildGoVersion = runtime.Version()
	cfgFile        string
	historyLimit   int
	startSection   string
	sendForm       contact.Form
	rootCmd        = &cobra.Command{
		Use:   "folio",
		Short: "Terminal portfolio",
		Long:  `folio - A single page portfolio for the terminal, with a working contact form`,
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Long:              "Print detailed version information about folio",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               version,
	}

	historyCmd = &cobra.Command{
		Use:               "history",
		Short:             "List sent messages",
		Long:              "List the most recent contact form submissions made from this machine",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              history,
	}

	sendCmd = &cobra.Command{
		Use:               "send",
		Short:             "Send a message without starting the ui",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              send,
	}
)

var errApp = errors.New("application error")

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file path")
	rootCmd.Flags().StringVar(&startSection, "section", "", "Section to open at (home, about, skills, projects, experience, contact)")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of messages to list")
	sendCmd.Flags().StringVar(&sendForm.Name, "name", "", "Your name")
	sendCmd.Flags().StringVar(&sendForm.Email, "email", "", "Your email address")
	sendCmd.Flags().StringVar(&sendForm.Message, "message", "", "Message body")
	for _, flag := range []string{"name", "email", "message"} {
		_ = sendCmd.MarkFlagRequired(flag)
	}
	rootCmd.AddCommand(versionCmd, historyCmd, sendCmd, migrateCmd)

	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func version(_ *cobra.Command, _ []string) {
	fmt.Printf("folio - Terminal portfolio\n\n")    //nolint:forbidigo
	fmt.Printf("  Version: %s\n", BuildVersion)     //nolint:forbidigo
	fmt.Printf("  Commit:  %s\n", BuildCommit)      //nolint:forbidigo
	fmt.Printf("  Built:   %s\n", BuildDate)        //nolint:forbidigo
	fmt.Printf("  Runtime: %s\n\n", BuildGoVersion) //nolint:forbidigo
}

// setup prepares the config dir, config and file logger shared by every command.
func setup(changes chan<- config.Config) (*config.Loader, config.Config, io.Closer, error) {
	// Make sure our config & data home exists.
	if err := os.MkdirAll(path.Join(xdg.ConfigHome, config.ConfigDirName), 0o750); err != nil {
		return nil, config.Config{}, nil, errors.Join(err, errApp)
	}

	loader := config.NewLoader(cfgFile, changes)
	userConfig, errConfig := loader.Read()
	if errConfig != nil {
		return nil, config.Config{}, nil, errors.Join(errApp, errConfig)
	}

	level := slog.LevelInfo
	if userConfig.Debug {
		level = slog.LevelDebug
	}

	// Setup file based logger. This is very useful for us as our console is taken over by the ui.
	logFile, errLogger := config.LoggerInit(config.DefaultLogName, level)
	if errLogger != nil {
		return nil, config.Config{}, nil, errors.Join(errLogger, errApp)
	}

	return loader, userConfig, logFile, nil
}

func closeLog(closer io.Closer) {
	if err := closer.Close(); err != nil {
		slog.Error("Failed to close log file", slog.String("error", err.Error()))
	}
}

func openDatabase(ctx context.Context) (*sql.DB, error) {
	database, errDB := store.Open(ctx, config.Path(config.DefaultDBName), true)
	if errDB != nil {
		return nil, errors.Join(errDB, errApp)
	}

	return database, nil
}

func closeDatabase(database *sql.DB) {
	if err := database.Close(); err != nil {
		slog.Error("Error closing database", slog.String("error", err.Error()))
	}
}

// newSubmitter builds the contact submitter. queries may be nil when history is disabled.
func newSubmitter(userConfig config.Config, queries *store.Queries) (*contact.Submitter, *contact.Client, error) {
	httpClient := &http.Client{Timeout: userConfig.HTTPTimeout()}
	client, errClient := contact.NewClient(httpClient, userConfig.ContactBaseURL)
	if errClient != nil {
		return nil, nil, errors.Join(errClient, errApp)
	}

	if queries == nil {
		return contact.NewSubmitter(client, nil), client, nil
	}

	return contact.NewSubmitter(client, queries), client, nil
}

// run is the main entry point of folio.
func run(cmd *cobra.Command, _ []string) error {
	// If PROFILE is set, it will be used as the output file path for the profiler.
	if len(os.Getenv("PROFILE")) > 0 {
		f, err := os.Create(os.Getenv("PROFILE"))
		if err != nil {
			return errors.Join(err, errApp)
		}

		if errStart := pprof.StartCPUProfile(f); errStart != nil {
			return errors.Join(errStart, errApp)
		}
		defer pprof.StopCPUProfile()
	}

	var section nav.Section
	if startSection != "" {
		parsed, errSection := nav.ParseSection(startSection)
		if errSection != nil {
			return errors.Join(errSection, errApp)
		}
		section = parsed
	}

	configUpdates := make(chan config.Config)
	loader, userConfig, logFile, errSetup := setup(configUpdates)
	if errSetup != nil {
		return errSetup
	}
	defer closeLog(logFile)

	slog.Info("Starting folio", slog.String("version", BuildVersion),
		slog.String("commit", BuildCommit), slog.String("date", BuildDate),
		slog.String("go", runtime.Version()))

	doc, errContent := content.Load(userConfig.ContentPath)
	if errContent != nil {
		return errors.Join(errContent, errApp)
	}

	var queries *store.Queries
	if userConfig.History {
		database, errDB := openDatabase(cmd.Context())
		if errDB != nil {
			return errDB
		}
		defer closeDatabase(database)

		queries = store.New(database)
	}

	submitter, client, errSubmitter := newSubmitter(userConfig, queries)
	if errSubmitter != nil {
		return errSubmitter
	}

	opts := ui.Options{
		Config:   userConfig,
		Document: doc,
		Renderer: content.NewRenderer(userConfig.MarkdownStyle),
		Sender:   submitter,
		Section:  section,
		Build: component.BuildInfo{
			Version:    BuildVersion,
			Date:       BuildDate,
			Commit:     BuildCommit,
			ConfigPath: loader.Path(),
			Endpoint:   client.Endpoint(),
		},
	}
	if queries != nil {
		opts.History = queries
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	app := NewApp(userConfig, loader, configUpdates)
	done := make(chan any)

	tui := app.createUI(ctx, opts)

	go func() {
		if err := tui.Run(); err != nil {
			slog.Error("Failed to run UI", slog.String("error", err.Error()))
		}

		close(done)
	}()

	app.Start(ctx, done)

	return nil
}

// send submits a single message through the same path the ui uses.
func send(cmd *cobra.Command, _ []string) error {
	if errForm := sendForm.Validate(); errForm != nil {
		return errors.Join(errForm, errApp)
	}

	_, userConfig, logFile, errSetup := setup(nil)
	if errSetup != nil {
		return errSetup
	}
	defer closeLog(logFile)

	var queries *store.Queries
	if userConfig.History {
		database, errDB := openDatabase(cmd.Context())
		if errDB != nil {
			return errDB
		}
		defer closeDatabase(database)

		queries = store.New(database)
	}

	submitter, client, errSubmitter := newSubmitter(userConfig, queries)
	if errSubmitter != nil {
		return errSubmitter
	}

	if err := submitter.Submit(cmd.Context(), sendForm); err != nil {
		return errors.Join(err, errApp)
	}

	cmd.Printf("Message sent to %s\n", client.Endpoint())

	return nil
}
