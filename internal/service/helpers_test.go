package service

import (
	"context"
	"testing"

	"github.com/builderops/warrantydesk/internal/docgen"
	"github.com/builderops/warrantydesk/internal/domain"
	"github.com/builderops/warrantydesk/internal/notify"
	"github.com/builderops/warrantydesk/internal/repository"
	"github.com/builderops/warrantydesk/internal/testutil"
	"github.com/stretchr/testify/require"
)

// testEnv wires every service against one in-memory database and a recording
// dispatcher, mirroring production wiring in cmd.
type testEnv struct {
	claims    repository.ClaimRepo
	directory repository.ContractorDirectory
	templates repository.TemplateRepo
	mutator   *ClaimMutator
	recorder  *notify.Recorder
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewTestDB(t)
	claims := repository.NewSQLiteClaimRepo(db)
	return &testEnv{
		claims:    claims,
		directory: repository.NewSQLiteContractorRepo(db),
		templates: repository.NewSQLiteTemplateRepo(db),
		mutator:   NewClaimMutator(claims),
		recorder:  &notify.Recorder{},
	}
}

func (e *testEnv) createClaim(t *testing.T, title string, opts ...testutil.ClaimOption) *domain.Claim {
	t.Helper()
	c := testutil.NewTestClaim(title, opts...)
	require.NoError(t, e.claims.Create(context.Background(), c))
	return c
}

func (e *testEnv) addContractor(t *testing.T, company string) *domain.Contractor {
	t.Helper()
	ct := testutil.NewTestContractor(company)
	require.NoError(t, e.directory.Put(context.Background(), ct))
	return ct
}

func (e *testEnv) serviceOrders() ServiceOrderService {
	return NewServiceOrderService(e.mutator, e.directory, e.templates,
		docgen.NewTextGenerator(), e.recorder, "Warranty Team")
}

func (e *testEnv) comments(cfg CommentConfig) CommentService {
	return NewCommentService(e.mutator, e.recorder, cfg)
}
