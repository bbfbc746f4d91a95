package accountlogout

import (
	"context"
	"testing"

	apperrors "acadgrant/internal/common/errors"
	"acadgrant/internal/common/logger"
	"acadgrant/internal/models"
	"acadgrant/internal/records"
	"acadgrant/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_Execute(t *testing.T) {
	ctx := context.Background()
	r := records.New(store.NewMemoryStore(), logger.NewTestLogger(t))
	h := NewHandler(LoadConfig(), r.Accounts, logger.NewTestLogger(t))

	_, err := r.Accounts.RegisterContributor(ctx, "org@acme.org", "secret", "Acme Fund")
	require.NoError(t, err)
	_, err = r.Accounts.LoginContributor(ctx, "org@acme.org", "secret")
	require.NoError(t, err)
	_, err = r.Accounts.RegisterStudent(ctx, models.StudentRegistration{Email: "a@b.com", Password: "pw"})
	require.NoError(t, err)
	_, err = r.Accounts.LoginStudent(ctx, "a@b.com", "pw")
	require.NoError(t, err)

	out, err := h.Execute(ctx, &Input{Role: "contributor"})
	require.NoError(t, err)
	assert.True(t, out.LoggedOut)

	_, err = r.Accounts.RequireSession(ctx, models.RoleContributor)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeNotLoggedIn))

	// the other role's session is untouched
	_, err = r.Accounts.RequireSession(ctx, models.RoleStudent)
	assert.NoError(t, err)

	_, err = h.Execute(ctx, &Input{Role: "contributor"})
	assert.NoError(t, err)
}

func TestHandler_Decode(t *testing.T) {
	h := NewHandler(LoadConfig(), records.New(store.NewMemoryStore(), logger.NewNoOpLogger()).Accounts, logger.NewTestLogger(t))

	var input Input
	assert.True(t, apperrors.HasCode(h.proc.Decode(`{}`, &input), apperrors.ErrCodeValidationFailed))
	assert.True(t, apperrors.HasCode(h.proc.Decode(`{"role":"admin"}`, &input), apperrors.ErrCodeValidationFailed))
	require.NoError(t, h.proc.Decode(`{"role":"student"}`, &input))
}
