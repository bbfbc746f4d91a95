package accountlogin

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

func setupHandler(t *testing.T) (*Handler, *records.Records) {
	t.Helper()
	ctx := context.Background()
	r := records.New(store.NewMemoryStore(), logger.NewTestLogger(t))

	_, err := r.Accounts.RegisterContributor(ctx, "org@acme.org", "secret", "Acme Fund")
	require.NoError(t, err)
	_, err = r.Accounts.RegisterStudent(ctx, models.StudentRegistration{
		Email:     "a@b.com",
		Password:  "pw",
		FirstName: "Asha",
		LastName:  "Rao",
	})
	require.NoError(t, err)

	return NewHandler(LoadConfig(), r.Accounts, logger.NewTestLogger(t)), r
}

func TestHandler_Execute(t *testing.T) {
	tests := []struct {
		name     string
		input    Input
		wantCode apperrors.ErrorCode
		validate func(t *testing.T, out *Output)
	}{
		{
			name:  "contributor",
			input: Input{Role: "contributor", Email: "org@acme.org", Password: "secret"},
			validate: func(t *testing.T, out *Output) {
				assert.Equal(t, "Acme Fund", out.OrganizationName)
				assert.Empty(t, out.StudentID)
			},
		},
		{
			name:  "student",
			input: Input{Role: "student", Email: "a@b.com", Password: "pw"},
			validate: func(t *testing.T, out *Output) {
				assert.Equal(t, "Asha Rao", out.Name)
				assert.NotEmpty(t, out.StudentID)
				assert.Empty(t, out.OrganizationName)
			},
		},
		{
			name:     "wrong password",
			input:    Input{Role: "student", Email: "a@b.com", Password: "nope"},
			wantCode: apperrors.ErrCodeInvalidCredentials,
		},
		{
			name:     "wrong email",
			input:    Input{Role: "contributor", Email: "a@b.com", Password: "secret"},
			wantCode: apperrors.ErrCodeInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			h, r := setupHandler(t)

			out, err := h.Execute(ctx, &tt.input)
			if tt.wantCode != "" {
				assert.True(t, apperrors.HasCode(err, tt.wantCode), "got %v", err)
				_, err = r.Accounts.RequireSession(ctx, models.Role(tt.input.Role))
				assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeNotLoggedIn))
				return
			}

			require.NoError(t, err)
			assert.True(t, out.LoggedIn)
			assert.Equal(t, tt.input.Email, out.Email)
			tt.validate(t, out)

			_, err = r.Accounts.RequireSession(ctx, models.Role(tt.input.Role))
			assert.NoError(t, err)
		})
	}
}

func TestHandler_Execute_NoAccount(t *testing.T) {
	r := records.New(store.NewMemoryStore(), logger.NewTestLogger(t))
	h := NewHandler(LoadConfig(), r.Accounts, logger.NewTestLogger(t))

	_, err := h.Execute(context.Background(), &Input{Role: "student", Email: "a@b.com", Password: "pw"})
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeNoAccount))
}

func TestHandler_Decode(t *testing.T) {
	h, _ := setupHandler(t)

	var input Input
	err := h.proc.Decode(`{"role":"admin","email":"a@b.com","password":"pw"}`, &input)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeValidationFailed))

	err = h.proc.Decode(`{"role":"student","email":"a@b.com"}`, &input)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeValidationFailed))

	require.NoError(t, h.proc.Decode(`{"role":"student","email":"a@b.com","password":"pw"}`, &input))
	assert.Equal(t, "student", input.Role)
}
