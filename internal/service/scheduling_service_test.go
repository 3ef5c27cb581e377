package service

import (
	"context"
	"testing"
	"time"

	"github.com/builderops/warrantydesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var slotDate = time.Date(2025, 4, 14, 0, 0, 0, 0, time.UTC)

func TestSchedulingService_ProposeThenAccept(t *testing.T) {
	env := setupEnv(t)
	svc := NewSchedulingService(env.mutator)
	ctx := context.Background()

	c := env.createClaim(t, "Furnace short-cycling")

	updated, err := svc.ProposeDate(ctx, c.ID, slotDate, domain.SlotAM)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusScheduling, updated.Status)
	require.Len(t, updated.ProposedDates, 1)
	assert.Equal(t, domain.DateProposed, updated.ProposedDates[0].Status)

	updated, err = svc.RespondToDate(ctx, c.ID, 0, domain.DateAccepted)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusScheduled, updated.Status)

	fetched, err := env.claims.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusScheduled, fetched.Status)
	assert.Equal(t, domain.DateAccepted, fetched.ProposedDates[0].Status)
}

func TestSchedulingService_RejectAllowsMoreProposals(t *testing.T) {
	env := setupEnv(t)
	svc := NewSchedulingService(env.mutator)
	ctx := context.Background()

	c := env.createClaim(t, "Furnace short-cycling")

	_, err := svc.ProposeDate(ctx, c.ID, slotDate, domain.SlotAM)
	require.NoError(t, err)
	updated, err := svc.RespondToDate(ctx, c.ID, 0, domain.DateRejected)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusScheduling, updated.Status)

	updated, err = svc.ProposeDate(ctx, c.ID, slotDate.AddDate(0, 0, 2), domain.SlotPM)
	require.NoError(t, err)
	assert.Len(t, updated.ProposedDates, 2)
}

func TestSchedulingService_ConfirmOverridesNegotiation(t *testing.T) {
	env := setupEnv(t)
	svc := NewSchedulingService(env.mutator)
	ctx := context.Background()

	c := env.createClaim(t, "Gutter pulling away")

	_, err := svc.ProposeDate(ctx, c.ID, slotDate, domain.SlotAM)
	require.NoError(t, err)
	_, err = svc.ProposeDate(ctx, c.ID, slotDate.AddDate(0, 0, 1), domain.SlotPM)
	require.NoError(t, err)

	agreed := slotDate.AddDate(0, 0, 7)
	updated, err := svc.ConfirmSchedule(ctx, c.ID, agreed, domain.SlotAllDay)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusScheduled, updated.Status)
	require.Len(t, updated.ProposedDates, 1)
	assert.Equal(t, agreed, updated.ProposedDates[0].Date)
	assert.Equal(t, domain.DateAccepted, updated.ProposedDates[0].Status)
}

func TestSchedulingService_RescheduleClearsDates(t *testing.T) {
	env := setupEnv(t)
	svc := NewSchedulingService(env.mutator)
	ctx := context.Background()

	c := env.createClaim(t, "Gutter pulling away")
	_, err := svc.ConfirmSchedule(ctx, c.ID, slotDate, domain.SlotAM)
	require.NoError(t, err)

	updated, err := svc.Reschedule(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusScheduling, updated.Status)
	assert.Empty(t, updated.ProposedDates)

	// Idempotent.
	updated, err = svc.Reschedule(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusScheduling, updated.Status)
	assert.Empty(t, updated.ProposedDates)
}

func TestSchedulingService_RespondOutOfRange(t *testing.T) {
	env := setupEnv(t)
	svc := NewSchedulingService(env.mutator)
	ctx := context.Background()

	c := env.createClaim(t, "Gutter pulling away")
	_, err := svc.RespondToDate(ctx, c.ID, 0, domain.DateAccepted)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}
