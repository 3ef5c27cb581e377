package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/builderops/warrantydesk/internal/cli"
	"github.com/builderops/warrantydesk/internal/cli/formatter"
	"github.com/builderops/warrantydesk/internal/db"
	"github.com/builderops/warrantydesk/internal/docgen"
	"github.com/builderops/warrantydesk/internal/notify"
	"github.com/builderops/warrantydesk/internal/repository"
	"github.com/builderops/warrantydesk/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.warrantydesk/warrantydesk.db
	dbPath := os.Getenv("WARRANTYDESK_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".warrantydesk", "warrantydesk.db")
	}

	// Inbox that receives homeowner-comment alerts, and the sender name
	// substituted into templates.
	inbox := os.Getenv("WARRANTYDESK_INBOX")
	if inbox == "" {
		inbox = "warranty@localhost"
	}
	senderName := os.Getenv("WARRANTYDESK_SENDER")
	if senderName == "" {
		senderName = "Warranty Team"
	}

	// Plain output when stdout is piped or redirected.
	formatter.SetColorEnabled(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	claimRepo := repository.NewSQLiteClaimRepo(database)
	contractorRepo := repository.NewSQLiteContractorRepo(database)
	templateRepo := repository.NewSQLiteTemplateRepo(database)

	// One mutator is shared so all services serialize writes per claim.
	mutator := service.NewClaimMutator(claimRepo)

	// Outbound messages go to the structured log until a mail transport is
	// configured.
	dispatcher := notify.NewLogDispatcher(os.Stderr)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("WARRANTYDESK_LOG") != "" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Claims:     service.NewClaimService(mutator, observer),
		Lifecycle:  service.NewLifecycleService(mutator, observer),
		Scheduling: service.NewSchedulingService(mutator, observer),
		Orders: service.NewServiceOrderService(
			mutator, contractorRepo, templateRepo,
			docgen.NewTextGenerator(), dispatcher, senderName, observer),
		Comments:  service.NewCommentService(mutator, dispatcher, service.CommentConfig{InternalInbox: inbox}, observer),
		Templates: service.NewTemplateService(templateRepo, observer),
		Directory: contractorRepo,
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
