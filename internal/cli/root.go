package cli

import (
	"github.com/builderops/warrantydesk/internal/repository"
	"github.com/builderops/warrantydesk/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Claims     service.ClaimService
	Lifecycle  service.LifecycleService
	Scheduling service.SchedulingService
	Orders     service.ServiceOrderService
	Comments   service.CommentService
	Templates  service.TemplateService
	Directory  repository.ContractorDirectory
}

// NewRootCmd creates the top-level "warrantydesk" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "warrantydesk",
		Short: "Home warranty claim tracker",
	}

	root.AddCommand(
		newClaimCmd(app),
		newScheduleCmd(app),
		newOrderCmd(app),
		newCommentCmd(app),
		newContractorCmd(app),
		newTemplateCmd(app),
	)

	return root
}
