package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/builderops/warrantydesk/internal/domain"
	"github.com/builderops/warrantydesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteClaimRepo(db)
	ctx := context.Background()

	c := testutil.NewTestClaim("Leaking master bath faucet")
	c.ProposedDates = []domain.ProposedDate{
		{Date: time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC), Slot: domain.SlotAM, Status: domain.DateProposed},
	}
	c.Comments = []domain.Comment{
		{ID: "cm-1", Author: "Pat Winters", Role: domain.RoleHomeowner, Body: "Still dripping.", CreatedAt: c.CreatedAt},
	}
	c.Attachments = []domain.Attachment{
		{ID: "at-1", Name: "faucet.jpg", MediaKind: "image/jpeg", Location: "files/at-1"},
	}
	require.NoError(t, repo.Create(ctx, c))

	fetched, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.Number, fetched.Number)
	assert.Equal(t, "Leaking master bath faucet", fetched.Title)
	assert.Equal(t, domain.StatusSubmitted, fetched.Status)
	assert.Equal(t, int64(1), fetched.Version)

	require.Len(t, fetched.ProposedDates, 1)
	assert.Equal(t, domain.SlotAM, fetched.ProposedDates[0].Slot)
	require.Len(t, fetched.Comments, 1)
	assert.Equal(t, "Still dripping.", fetched.Comments[0].Body)
	require.Len(t, fetched.Attachments, 1)
	assert.Equal(t, "image/jpeg", fetched.Attachments[0].MediaKind)
}

func TestClaimRepo_CreateGeneratesNumber(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteClaimRepo(db)
	ctx := context.Background()

	first := testutil.NewTestClaim("First")
	first.Number = ""
	require.NoError(t, repo.Create(ctx, first))
	assert.Equal(t, "CLM-1001", first.Number)

	second := testutil.NewTestClaim("Second")
	second.Number = ""
	require.NoError(t, repo.Create(ctx, second))
	assert.Equal(t, "CLM-1002", second.Number)
}

func TestClaimRepo_GetByNumber_CaseInsensitive(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteClaimRepo(db)
	ctx := context.Background()

	c := testutil.NewTestClaim("Garage door sensor")
	require.NoError(t, repo.Create(ctx, c))

	fetched, err := repo.GetByNumber(ctx, strings.ToLower(c.Number))
	require.NoError(t, err)
	assert.Equal(t, c.ID, fetched.ID)
}

func TestClaimRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteClaimRepo(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClaimRepo_List_FiltersByStatus(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteClaimRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestClaim("A")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestClaim("B", testutil.WithStatus(domain.StatusScheduling))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestClaim("C", testutil.WithStatus(domain.StatusScheduling))))

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	scheduling, err := repo.List(ctx, domain.StatusScheduling)
	require.NoError(t, err)
	assert.Len(t, scheduling, 2)
}

func TestClaimRepo_Replace_RoundTripsChildren(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteClaimRepo(db)
	ctx := context.Background()

	c := testutil.NewTestClaim("Settling cracks in drywall")
	require.NoError(t, repo.Create(ctx, c))

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, c.ProposeDate(time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC), domain.SlotPM, now))
	c.AppendNote("left voicemail", "Sam", now)
	require.NoError(t, repo.Replace(ctx, c))
	assert.Equal(t, int64(2), c.Version, "version should advance on replace")

	fetched, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusScheduling, fetched.Status)
	require.Len(t, fetched.ProposedDates, 1)
	assert.Contains(t, fetched.InternalNotes, "left voicemail")
	assert.Equal(t, int64(2), fetched.Version)
}

func TestClaimRepo_Replace_VersionConflict(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteClaimRepo(db)
	ctx := context.Background()

	c := testutil.NewTestClaim("Warped deck boards")
	require.NoError(t, repo.Create(ctx, c))

	// Two readers load the same version.
	first, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	second, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)

	now := time.Now().UTC()
	require.NoError(t, first.SetStatus(domain.StatusReviewing, now))
	require.NoError(t, repo.Replace(ctx, first))

	require.NoError(t, second.SetStatus(domain.StatusScheduling, now))
	err = repo.Replace(ctx, second)
	assert.ErrorIs(t, err, ErrConflict)

	fetched, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusReviewing, fetched.Status, "stale writer must not clobber")
}

func TestClaimRepo_Replace_MissingClaim(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteClaimRepo(db)
	ctx := context.Background()

	ghost := testutil.NewTestClaim("Never created")
	err := repo.Replace(ctx, ghost)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClaimRepo_Replace_RewritesMessages(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteClaimRepo(db)
	ctx := context.Background()

	c := testutil.NewTestClaim("Uneven flooring")
	require.NoError(t, repo.Create(ctx, c))

	sentAt := time.Now().UTC().Truncate(time.Second)
	c.AppendMessage(domain.Message{
		ID:        "msg-1",
		Audience:  domain.AudienceHomeowner,
		Recipient: "pat@example.com",
		Subject:   "Update on your warranty claim",
		Body:      "We scheduled an inspection.",
		SentAt:    sentAt,
	})
	require.NoError(t, repo.Replace(ctx, c))

	fetched, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Messages, 1)
	assert.Equal(t, domain.AudienceHomeowner, fetched.Messages[0].Audience)
	assert.Equal(t, sentAt, fetched.Messages[0].SentAt)
}
