package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/builderops/warrantydesk/internal/cli/formatter"
	"github.com/builderops/warrantydesk/internal/domain"
	"github.com/spf13/cobra"
)

const scheduleDateLayout = "2006-01-02"

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Negotiate service appointments",
	}

	cmd.AddCommand(
		newScheduleProposeCmd(app),
		newScheduleRespondCmd(app),
		newScheduleConfirmCmd(app),
		newScheduleRescheduleCmd(app),
	)

	return cmd
}

func parseSlot(s string) (domain.TimeSlot, error) {
	switch strings.ToUpper(s) {
	case "AM":
		return domain.SlotAM, nil
	case "PM":
		return domain.SlotPM, nil
	case "ALL_DAY", "ALLDAY", "ALL":
		return domain.SlotAllDay, nil
	default:
		return "", fmt.Errorf("unknown time slot %q (want AM, PM, or ALL_DAY)", s)
	}
}

func newScheduleProposeCmd(app *App) *cobra.Command {
	var slot string

	cmd := &cobra.Command{
		Use:   "propose CLAIM DATE",
		Short: "Propose an appointment date (YYYY-MM-DD)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := app.resolveClaim(ctx, args[0])
			if err != nil {
				return err
			}
			date, err := time.Parse(scheduleDateLayout, args[1])
			if err != nil {
				return fmt.Errorf("parsing date: %w", err)
			}
			ts, err := parseSlot(slot)
			if err != nil {
				return err
			}
			c, err = app.Scheduling.ProposeDate(ctx, c.ID, date, ts)
			if err != nil {
				return err
			}
			d := c.ProposedDates[len(c.ProposedDates)-1]
			fmt.Printf("Proposed %s on %s (%s)\n", formatter.Appointment(d), formatter.Bold(c.Number), formatter.StatusPill(c.Status))
			return nil
		},
	}

	cmd.Flags().StringVar(&slot, "slot", "AM", "time slot: AM, PM, or ALL_DAY")

	return cmd
}

func newScheduleRespondCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "respond CLAIM INDEX accept|reject",
		Short: "Record the response to a proposed date",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := app.resolveClaim(ctx, args[0])
			if err != nil {
				return err
			}
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("parsing index: %w", err)
			}
			var decision domain.DateStatus
			switch strings.ToLower(args[2]) {
			case "accept":
				decision = domain.DateAccepted
			case "reject":
				decision = domain.DateRejected
			default:
				return fmt.Errorf("decision must be accept or reject, got %q", args[2])
			}
			c, err = app.Scheduling.RespondToDate(ctx, c.ID, index, decision)
			if err != nil {
				return err
			}
			fmt.Printf("%s is now %s\n", formatter.Bold(c.Number), formatter.StatusPill(c.Status))
			return nil
		},
	}
}

func newScheduleConfirmCmd(app *App) *cobra.Command {
	var slot string

	cmd := &cobra.Command{
		Use:   "confirm CLAIM DATE",
		Short: "Record a date agreed outside the app",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := app.resolveClaim(ctx, args[0])
			if err != nil {
				return err
			}
			date, err := time.Parse(scheduleDateLayout, args[1])
			if err != nil {
				return fmt.Errorf("parsing date: %w", err)
			}
			ts, err := parseSlot(slot)
			if err != nil {
				return err
			}
			c, err = app.Scheduling.ConfirmSchedule(ctx, c.ID, date, ts)
			if err != nil {
				return err
			}
			fmt.Printf("Confirmed %s on %s\n", formatter.Appointment(*c.AcceptedDate()), formatter.Bold(c.Number))
			return nil
		},
	}

	cmd.Flags().StringVar(&slot, "slot", "AM", "time slot: AM, PM, or ALL_DAY")

	return cmd
}

func newScheduleRescheduleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reschedule CLAIM",
		Short: "Abandon the agreed date and reopen negotiation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := app.resolveClaim(ctx, args[0])
			if err != nil {
				return err
			}
			c, err = app.Scheduling.Reschedule(ctx, c.ID)
			if err != nil {
				return err
			}
			fmt.Printf("%s is back to %s\n", formatter.Bold(c.Number), formatter.StatusPill(c.Status))
			return nil
		},
	}
}
