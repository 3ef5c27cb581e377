package cli

import (
	"context"
	"fmt"

	"github.com/builderops/warrantydesk/internal/cli/formatter"
	"github.com/builderops/warrantydesk/internal/domain"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newContractorCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contractor",
		Short: "Manage the contractor directory",
	}

	cmd.AddCommand(
		newContractorAddCmd(app),
		newContractorListCmd(app),
	)

	return cmd
}

func newContractorAddCmd(app *App) *cobra.Command {
	var ct domain.Contractor

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add or update a contractor",
		RunE: func(cmd *cobra.Command, args []string) error {
			if ct.CompanyName == "" || ct.Email == "" {
				return fmt.Errorf("--company and --email are required")
			}
			if ct.ID == "" {
				ct.ID = uuid.New().String()
			}
			if err := app.Directory.Put(context.Background(), &ct); err != nil {
				return err
			}
			fmt.Printf("Saved %s (%s)\n", formatter.Bold(ct.CompanyName), ct.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&ct.ID, "id", "", "contractor id (generated when omitted)")
	cmd.Flags().StringVar(&ct.CompanyName, "company", "", "company name (required)")
	cmd.Flags().StringVar(&ct.ContactName, "contact", "", "contact person")
	cmd.Flags().StringVar(&ct.Email, "email", "", "dispatch email (required)")
	cmd.Flags().StringVar(&ct.Specialty, "specialty", "", "trade specialty")

	return cmd
}

func newContractorListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List contractors",
		RunE: func(cmd *cobra.Command, args []string) error {
			contractors, err := app.Directory.List(context.Background())
			if err != nil {
				return err
			}
			if len(contractors) == 0 {
				fmt.Println("No contractors found.")
				return nil
			}

			headers := []string{"ID", "Company", "Contact", "Email", "Specialty"}
			rows := make([][]string, 0, len(contractors))
			for _, ct := range contractors {
				rows = append(rows, []string{
					formatter.Dim(ct.ID),
					formatter.Bold(ct.CompanyName),
					ct.ContactName,
					ct.Email,
					ct.Specialty,
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}
}
