package savescholarshipeligibility

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

func setupHandler(t *testing.T, loggedIn bool) (*Handler, *records.Records) {
	t.Helper()
	ctx := context.Background()
	r := records.New(store.NewMemoryStore(), logger.NewTestLogger(t))
	_, err := r.Accounts.RegisterContributor(ctx, "org@acme.org", "secret", "Acme Fund")
	require.NoError(t, err)
	if loggedIn {
		_, err = r.Accounts.LoginContributor(ctx, "org@acme.org", "secret")
		require.NoError(t, err)
	}
	return NewHandler(LoadConfig(), r.Accounts, r.Catalog, logger.NewTestLogger(t)), r
}

func TestHandler_Execute(t *testing.T) {
	ctx := context.Background()
	h, r := setupHandler(t, true)

	e := models.Eligibility{GrantAmount: "50000", Nationality: "Indian", CGPA: "3.0"}
	out, err := h.Execute(ctx, &Input{Eligibility: e})
	require.NoError(t, err)
	assert.True(t, out.EligibilitySaved)

	draft, err := r.Catalog.Draft(ctx)
	require.NoError(t, err)
	assert.Equal(t, e, draft)

	// the draft alone is not a scholarship
	list, err := r.Catalog.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestHandler_Execute_NotLoggedIn(t *testing.T) {
	ctx := context.Background()
	h, r := setupHandler(t, false)

	_, err := h.Execute(ctx, &Input{Eligibility: models.Eligibility{GrantAmount: "1"}})
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeNotLoggedIn))

	draft, err := r.Catalog.Draft(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Eligibility{}, draft)
}

func TestHandler_Decode(t *testing.T) {
	h, _ := setupHandler(t, false)

	tests := []struct {
		name      string
		variables string
		wantErr   bool
	}{
		{name: "whole amount", variables: `{"grantAmount":"50000","nationality":"Indian","cgpa":"3.0"}`},
		{name: "fractional amount", variables: `{"grantAmount":"0.25"}`},
		{name: "negative amount", variables: `{"grantAmount":"-1"}`, wantErr: true},
		{name: "words", variables: `{"grantAmount":"fifty"}`, wantErr: true},
		{name: "missing amount", variables: `{"nationality":"Indian"}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var input Input
			err := h.proc.Decode(tt.variables, &input)
			if tt.wantErr {
				assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeValidationFailed), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, input.GrantAmount)
		})
	}
}
