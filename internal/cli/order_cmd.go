package cli

import (
	"context"
	"fmt"

	"github.com/builderops/warrantydesk/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newOrderCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Assign contractors and send service orders",
	}

	cmd.AddCommand(
		newOrderAssignCmd(app),
		newOrderPreviewCmd(app),
		newOrderSendCmd(app),
	)

	return cmd
}

func newOrderAssignCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "assign CLAIM CONTRACTOR_ID",
		Short: "Assign a contractor to a claim",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := app.resolveClaim(ctx, args[0])
			if err != nil {
				return err
			}
			c, err = app.Orders.AssignContractor(ctx, c.ID, args[1])
			if err != nil {
				return err
			}
			fmt.Printf("Assigned %s to %s\n", formatter.Bold(c.ContractorName), formatter.Bold(c.Number))
			return nil
		},
	}
}

// templateIDFlag returns a *string for the service layer: nil means "use the
// configured default template".
func templateIDFlag(templateID string) *string {
	if templateID == "" {
		return nil
	}
	return &templateID
}

func newOrderPreviewCmd(app *App) *cobra.Command {
	var templateID string

	cmd := &cobra.Command{
		Use:   "preview CLAIM",
		Short: "Preview the service order draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := app.resolveClaim(ctx, args[0])
			if err != nil {
				return err
			}
			draft, err := app.Orders.PrepareServiceOrder(ctx, c.ID, templateIDFlag(templateID))
			if err != nil {
				return err
			}
			fmt.Println(formatter.Header("Subject"))
			fmt.Println(draft.Subject)
			fmt.Println()
			fmt.Println(formatter.Header("Body"))
			fmt.Println(draft.Body)
			fmt.Println()
			fmt.Println(formatter.Header("Document"))
			fmt.Println(string(draft.Document))
			if len(draft.Attachments) > 0 {
				fmt.Println(formatter.Header("Attached photos"))
				for _, a := range draft.Attachments {
					fmt.Printf("  %s\n", a.Name)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&templateID, "template", "", "template id (default: configured default template)")

	return cmd
}

func newOrderSendCmd(app *App) *cobra.Command {
	var templateID, subject, body string

	cmd := &cobra.Command{
		Use:   "send CLAIM",
		Short: "Send the service order to the assigned contractor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := app.resolveClaim(ctx, args[0])
			if err != nil {
				return err
			}

			// Flags override the prepared draft; otherwise the draft is sent
			// as prepared.
			draft, err := app.Orders.PrepareServiceOrder(ctx, c.ID, templateIDFlag(templateID))
			if err != nil {
				return err
			}
			if subject == "" {
				subject = draft.Subject
			}
			if body == "" {
				body = draft.Body
			}

			c, err = app.Orders.SendServiceOrder(ctx, c.ID, subject, body)
			if err != nil {
				return err
			}
			fmt.Printf("Sent service order for %s to %s\n", formatter.Bold(c.Number), c.ContractorEmail)
			return nil
		},
	}

	cmd.Flags().StringVar(&templateID, "template", "", "template id (default: configured default template)")
	cmd.Flags().StringVar(&subject, "subject", "", "override the draft subject")
	cmd.Flags().StringVar(&body, "body", "", "override the draft body")

	return cmd
}
