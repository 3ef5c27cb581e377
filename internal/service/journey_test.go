package service

import (
	"context"
	"testing"
	"time"

	"github.com/builderops/warrantydesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Full lifecycle through the service layer: intake, review, assignment,
// scheduling negotiation, service order dispatch, homeowner comment, close.
func TestClaimJourney_EndToEnd(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	claims := NewClaimService(env.mutator)
	lifecycle := NewLifecycleService(env.mutator)
	scheduling := NewSchedulingService(env.mutator)
	orders := env.serviceOrders()
	comments := env.comments(CommentConfig{InternalInbox: "warranty@builder.example"})

	// Intake.
	c, err := claims.Create(ctx, domain.NewClaimInput{
		Title:          "Water stain on dining room ceiling",
		Description:    "Stain grew after last week's rain.",
		Category:       "Roofing",
		Address:        "9 Larkfield Dr",
		HomeownerName:  "Morgan Reyes",
		HomeownerEmail: "morgan@example.com",
		BuilderName:    "Cedarline Homes",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSubmitted, c.Status)

	// Review and classify as a covered 11-month item.
	_, err = lifecycle.SetStatus(ctx, c.ID, domain.StatusReviewing)
	require.NoError(t, err)
	c, err = lifecycle.SetClassification(ctx, c.ID, domain.ClassElevenMonth, "")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusReviewing, c.Status)
	require.NotNil(t, c.DateEvaluated)

	// Assign a roofer.
	ct := env.addContractor(t, "Zenith Roofing")
	c, err = orders.AssignContractor(ctx, c.ID, ct.ID)
	require.NoError(t, err)
	assert.Equal(t, "Zenith Roofing", c.ContractorName)

	// Negotiate: first date rejected, second accepted.
	first := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	_, err = scheduling.ProposeDate(ctx, c.ID, first, domain.SlotAM)
	require.NoError(t, err)
	_, err = scheduling.RespondToDate(ctx, c.ID, 0, domain.DateRejected)
	require.NoError(t, err)
	_, err = scheduling.ProposeDate(ctx, c.ID, first.AddDate(0, 0, 2), domain.SlotPM)
	require.NoError(t, err)
	c, err = scheduling.RespondToDate(ctx, c.ID, 1, domain.DateAccepted)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusScheduled, c.Status)
	require.NotNil(t, c.AcceptedDate())

	// Dispatch the service order.
	draft, err := orders.PrepareServiceOrder(ctx, c.ID, nil)
	require.NoError(t, err)
	c, err = orders.SendServiceOrder(ctx, c.ID, draft.Subject, draft.Body)
	require.NoError(t, err)
	require.Len(t, c.Messages, 1)
	assert.Equal(t, domain.AudienceSubcontractor, c.Messages[0].Audience)

	// Homeowner follows up; the team is alerted.
	_, err = comments.AddComment(ctx, c.ID, "Morgan Reyes", domain.RoleHomeowner, "The stain has stopped spreading.")
	require.NoError(t, err)
	comments.WaitForDispatch()

	// Work done: close out.
	c, err = lifecycle.SetClassification(ctx, c.ID, domain.ClassServiceComplete, "")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, c.Status)

	// Completed claims reject further transitions but still take comments.
	_, err = scheduling.Reschedule(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrClaimCompleted)
	_, err = comments.AddComment(ctx, c.ID, "Morgan Reyes", domain.RoleHomeowner, "Thank you!")
	require.NoError(t, err)
	comments.WaitForDispatch()

	// Everything above survived the store.
	final, err := claims.GetByNumber(ctx, c.Number)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, final.Status)
	assert.Equal(t, domain.ClassServiceComplete, final.Classification)
	assert.Len(t, final.Comments, 2)
	assert.Len(t, final.ProposedDates, 2)
	require.NotNil(t, final.AcceptedDate())

	sent := env.recorder.Sent()
	require.Len(t, sent, 3)
	assert.Equal(t, ct.Email, sent[0].To, "service order goes to the contractor")
}
