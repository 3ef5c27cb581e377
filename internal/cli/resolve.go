package cli

import (
	"context"
	"errors"

	"github.com/builderops/warrantydesk/internal/domain"
	"github.com/builderops/warrantydesk/internal/repository"
)

// resolveClaim accepts either a claim number (CLM-1042) or a raw id. Numbers
// are tried first since that is what users see everywhere.
func (app *App) resolveClaim(ctx context.Context, ref string) (*domain.Claim, error) {
	c, err := app.Claims.GetByNumber(ctx, ref)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	return app.Claims.GetByID(ctx, ref)
}
