package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/builderops/warrantydesk/internal/cli/formatter"
	"github.com/builderops/warrantydesk/internal/domain"
	"github.com/spf13/cobra"
)

func newCommentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comment",
		Short: "Post to a claim's comment thread",
	}

	cmd.AddCommand(newCommentAddCmd(app))

	return cmd
}

func newCommentAddCmd(app *App) *cobra.Command {
	var author, role string

	cmd := &cobra.Command{
		Use:   "add CLAIM TEXT",
		Short: "Add a comment and notify the other party",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := app.resolveClaim(ctx, args[0])
			if err != nil {
				return err
			}

			var r domain.CommenterRole
			switch strings.ToLower(role) {
			case "homeowner":
				r = domain.RoleHomeowner
			case "admin":
				r = domain.RoleAdmin
			case "contractor":
				r = domain.RoleContractor
			default:
				return fmt.Errorf("unknown role %q (want homeowner, admin, or contractor)", role)
			}

			if _, err := app.Comments.AddComment(ctx, c.ID, author, r, args[1]); err != nil {
				return err
			}
			// Notifications run on a detached path; hold the process open
			// until they settle.
			app.Comments.WaitForDispatch()

			fmt.Printf("Comment added to %s\n", formatter.Bold(c.Number))
			return nil
		},
	}

	cmd.Flags().StringVar(&author, "author", "admin", "comment author")
	cmd.Flags().StringVar(&role, "role", "admin", "commenter role: homeowner, admin, or contractor")

	return cmd
}
