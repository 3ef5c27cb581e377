package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/builderops/warrantydesk/internal/cli/formatter"
	"github.com/builderops/warrantydesk/internal/domain"
	"github.com/spf13/cobra"
)

func newClaimCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim",
		Short: "Manage warranty claims",
	}

	cmd.AddCommand(
		newClaimNewCmd(app),
		newClaimListCmd(app),
		newClaimShowCmd(app),
		newClaimStatusCmd(app),
		newClaimClassifyCmd(app),
		newClaimNoteCmd(app),
		newClaimNotesCmd(app),
		newClaimAttachCmd(app),
	)

	return cmd
}

func newClaimNewCmd(app *App) *cobra.Command {
	var in domain.NewClaimInput

	cmd := &cobra.Command{
		Use:   "new",
		Short: "File a new warranty claim",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Claims.Create(context.Background(), in)
			if err != nil {
				return err
			}
			fmt.Printf("Created claim %s (%s)\n", formatter.Bold(c.Number), formatter.StatusPill(c.Status))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Title, "title", "", "short summary of the issue (required)")
	cmd.Flags().StringVar(&in.Description, "description", "", "detailed description")
	cmd.Flags().StringVar(&in.Category, "category", "", "issue category")
	cmd.Flags().StringVar(&in.Address, "address", "", "property address")
	cmd.Flags().StringVar(&in.HomeownerName, "homeowner", "", "homeowner name (required)")
	cmd.Flags().StringVar(&in.HomeownerEmail, "email", "", "homeowner email (required)")
	cmd.Flags().StringVar(&in.BuilderName, "builder", "", "builder name")
	cmd.Flags().StringVar(&in.JobName, "job", "", "builder job name")

	return cmd
}

func newClaimListCmd(app *App) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List claims",
		RunE: func(cmd *cobra.Command, args []string) error {
			claims, err := app.Claims.List(context.Background(), domain.ClaimStatus(strings.ToUpper(status)))
			if err != nil {
				return err
			}
			if len(claims) == 0 {
				fmt.Println("No claims found.")
				return nil
			}
			fmt.Print(formatter.ClaimTable(claims))
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status (SUBMITTED, REVIEWING, SCHEDULING, SCHEDULED, COMPLETED)")

	return cmd
}

func newClaimShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show CLAIM",
		Short: "Show claim details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.resolveClaim(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(formatter.ClaimDetail(c))
			return nil
		},
	}
}

func newClaimStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status CLAIM STATUS",
		Short: "Set a claim's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := app.resolveClaim(ctx, args[0])
			if err != nil {
				return err
			}
			c, err = app.Lifecycle.SetStatus(ctx, c.ID, domain.ClaimStatus(strings.ToUpper(args[1])))
			if err != nil {
				return err
			}
			fmt.Printf("%s is now %s\n", formatter.Bold(c.Number), formatter.StatusPill(c.Status))
			return nil
		},
	}
}

func newClaimClassifyCmd(app *App) *cobra.Command {
	var explanation string

	cmd := &cobra.Command{
		Use:   "classify CLAIM CLASSIFICATION",
		Short: "Record the coverage decision",
		Long: `Record the coverage decision for a claim. Closing classifications
(Non-Warranty, Service Complete, Courtesy Repair (Non-Warranty), Duplicate)
complete the claim. Non-Warranty and Courtesy Repair require --explanation.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := app.resolveClaim(ctx, args[0])
			if err != nil {
				return err
			}
			c, err = app.Lifecycle.SetClassification(ctx, c.ID, domain.Classification(args[1]), explanation)
			if err != nil {
				return err
			}
			fmt.Printf("%s classified as %s (%s)\n",
				formatter.Bold(c.Number),
				formatter.ClassificationLabel(c.Classification),
				formatter.StatusPill(c.Status))
			return nil
		},
	}

	cmd.Flags().StringVar(&explanation, "explanation", "", "written justification for a denied claim")

	return cmd
}

func newClaimNoteCmd(app *App) *cobra.Command {
	var author string

	cmd := &cobra.Command{
		Use:   "note CLAIM TEXT",
		Short: "Append an internal note",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := app.resolveClaim(ctx, args[0])
			if err != nil {
				return err
			}
			if _, err := app.Claims.AddNote(ctx, c.ID, args[1], author); err != nil {
				return err
			}
			fmt.Printf("Noted on %s\n", formatter.Bold(c.Number))
			return nil
		},
	}

	cmd.Flags().StringVar(&author, "author", "admin", "note author")

	return cmd
}

func newClaimNotesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "notes CLAIM",
		Short: "Show the internal notes log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.resolveClaim(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Print(formatter.NotesView(domain.ParseNotes(c.InternalNotes)))
			return nil
		},
	}
}

func newClaimAttachCmd(app *App) *cobra.Command {
	var media, location string

	cmd := &cobra.Command{
		Use:   "attach CLAIM NAME",
		Short: "Register an attachment on a claim",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := app.resolveClaim(ctx, args[0])
			if err != nil {
				return err
			}
			_, err = app.Claims.AddAttachment(ctx, c.ID, domain.Attachment{
				Name:      args[1],
				MediaKind: media,
				Location:  location,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Attached %s to %s\n", args[1], formatter.Bold(c.Number))
			return nil
		},
	}

	cmd.Flags().StringVar(&media, "media", "image/jpeg", "media kind of the attachment")
	cmd.Flags().StringVar(&location, "location", "", "storage location reference")

	return cmd
}
