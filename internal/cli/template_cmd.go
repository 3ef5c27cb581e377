package cli

import (
	"context"
	"fmt"

	"github.com/builderops/warrantydesk/internal/cli/formatter"
	"github.com/builderops/warrantydesk/internal/domain"
	"github.com/spf13/cobra"
)

func newTemplateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage service-order templates",
	}

	cmd.AddCommand(
		newTemplateListCmd(app),
		newTemplateShowCmd(app),
		newTemplateSaveCmd(app),
		newTemplateDeleteCmd(app),
		newTemplateDefaultCmd(app),
	)

	return cmd
}

func newTemplateListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			templates, err := app.Templates.List(ctx)
			if err != nil {
				return err
			}
			if len(templates) == 0 {
				fmt.Println("No templates found.")
				return nil
			}

			def, err := app.Templates.GetDefault(ctx)
			if err != nil {
				return err
			}

			headers := []string{"ID", "Name", "Subject", ""}
			rows := make([][]string, 0, len(templates))
			for _, t := range templates {
				mark := ""
				if def != nil && def.ID == t.ID {
					mark = formatter.StyleGreen.Render("default")
				}
				rows = append(rows, []string{
					formatter.Dim(t.ID),
					formatter.Bold(t.Name),
					t.Subject,
					mark,
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func newTemplateShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show template details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := app.Templates.Get(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Println(formatter.Header("Template"))
			fmt.Printf("  Name:    %s\n", formatter.Bold(t.Name))
			fmt.Printf("  Subject: %s\n", t.Subject)
			fmt.Println()
			fmt.Println(formatter.Header("Body"))
			fmt.Println(t.Body)
			fmt.Println()
			fmt.Println(formatter.Dim("Placeholders: {{senderName}} {{claimTitle}} {{address}}"))

			return nil
		},
	}
}

func newTemplateSaveCmd(app *App) *cobra.Command {
	var t domain.Template

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Create or update a template",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Templates.Save(context.Background(), &t); err != nil {
				return err
			}
			fmt.Printf("Saved template %s (%s)\n", formatter.Bold(t.Name), t.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&t.ID, "id", "", "template id (omit to create)")
	cmd.Flags().StringVar(&t.Name, "name", "", "template name (required)")
	cmd.Flags().StringVar(&t.Subject, "subject", "", "subject line")
	cmd.Flags().StringVar(&t.Body, "body", "", "body text")

	return cmd
}

func newTemplateDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Templates.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}
}

func newTemplateDefaultCmd(app *App) *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "default [ID]",
		Short: "Set or clear the default template",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if clear {
				if err := app.Templates.SetDefault(ctx, nil); err != nil {
					return err
				}
				fmt.Println("Default cleared.")
				return nil
			}
			if len(args) == 0 {
				def, err := app.Templates.GetDefault(ctx)
				if err != nil {
					return err
				}
				if def == nil {
					fmt.Println("No default template configured.")
					return nil
				}
				fmt.Printf("Default: %s (%s)\n", formatter.Bold(def.Name), def.ID)
				return nil
			}
			if err := app.Templates.SetDefault(ctx, &args[0]); err != nil {
				return err
			}
			fmt.Println("Default set.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "clear the default template")

	return cmd
}
