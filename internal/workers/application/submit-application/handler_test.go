package submitapplication

import (
	"context"
	"testing"
	"time"

	apperrors "acadgrant/internal/common/errors"
	"acadgrant/internal/common/logger"
	"acadgrant/internal/models"
	"acadgrant/internal/records"
	"acadgrant/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stepClock(start int64) func() time.Time {
	next := start
	return func() time.Time {
		t := time.UnixMilli(next)
		next++
		return t
	}
}

// fixture has the Acme Fund scholarship 1700000000000 and a logged-in
// student a@b.com.
func fixture(t *testing.T) (*Handler, *records.Records, store.KeyValueStore) {
	t.Helper()
	ctx := context.Background()
	kv := store.NewMemoryStore()
	r := records.New(kv, logger.NewTestLogger(t), records.WithClock(stepClock(1700000000000)))

	_, err := r.Catalog.CreateScholarship(ctx,
		models.Eligibility{GrantAmount: "50000"},
		models.Repayment{MaxRepayment: "5"},
		"Acme Fund", "")
	require.NoError(t, err)

	_, err = r.Accounts.RegisterStudent(ctx, models.StudentRegistration{
		Email:           "a@b.com",
		Password:        "pw",
		FirstName:       "Asha",
		LastName:        "Rao",
		Institution:     "IIT Bombay",
		InstituteWallet: "0x1111111111111111111111111111111111111111",
	})
	require.NoError(t, err)
	_, err = r.Accounts.LoginStudent(ctx, "a@b.com", "pw")
	require.NoError(t, err)

	h := NewHandler(LoadConfig(), r.Accounts, r.Catalog, r.Ledger, logger.NewTestLogger(t))
	return h, r, kv
}

func TestHandler_Execute(t *testing.T) {
	ctx := context.Background()
	h, r, _ := fixture(t)

	out, err := h.Execute(ctx, &Input{ScholarshipID: "1700000000000"})
	require.NoError(t, err)
	assert.Equal(t, "Acme Fund", out.OrganizationName)
	assert.Equal(t, string(models.StatusPending), out.Status)
	assert.Equal(t, "1700000000001", out.ApplicantID)

	applicants, err := r.Ledger.Applicants(ctx, "1700000000000")
	require.NoError(t, err)
	require.Len(t, applicants, 1)
	assert.Equal(t, "Asha Rao", applicants[0].Name)
	assert.Equal(t, "IIT Bombay", applicants[0].Institution)

	summaries, err := r.Ledger.StudentApplications(ctx, "a@b.com")
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Acme Fund", summaries[0].OrganizationName)
}

func TestHandler_Execute_Duplicate(t *testing.T) {
	ctx := context.Background()
	h, r, _ := fixture(t)

	_, err := h.Execute(ctx, &Input{ScholarshipID: "1700000000000"})
	require.NoError(t, err)

	_, err = h.Execute(ctx, &Input{ScholarshipID: "1700000000000"})
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeDuplicateApplication), "got %v", err)

	applicants, err := r.Ledger.Applicants(ctx, "1700000000000")
	require.NoError(t, err)
	assert.Len(t, applicants, 1)
}

func TestHandler_Execute_Errors(t *testing.T) {
	tests := []struct {
		name     string
		prepare  func(t *testing.T, r *records.Records)
		id       string
		wantCode apperrors.ErrorCode
	}{
		{
			name:     "unknown scholarship",
			id:       "404",
			wantCode: apperrors.ErrCodeRecordNotFound,
		},
		{
			name: "logged out",
			prepare: func(t *testing.T, r *records.Records) {
				require.NoError(t, r.Accounts.Logout(context.Background(), models.RoleStudent))
			},
			id:       "1700000000000",
			wantCode: apperrors.ErrCodeNotLoggedIn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, r, _ := fixture(t)
			if tt.prepare != nil {
				tt.prepare(t, r)
			}
			_, err := h.Execute(context.Background(), &Input{ScholarshipID: tt.id})
			assert.True(t, apperrors.HasCode(err, tt.wantCode), "got %v", err)
		})
	}
}

func TestHandler_Execute_FallsBackToIdentity(t *testing.T) {
	ctx := context.Background()
	h, r, kv := fixture(t)
	require.NoError(t, kv.Remove(ctx, records.StudentProfileKey("a@b.com")))

	out, err := h.Execute(ctx, &Input{ScholarshipID: "1700000000000"})
	require.NoError(t, err)

	entry, err := r.Ledger.Applicant(ctx, "1700000000000", models.RecordID(out.ApplicantID))
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", entry.Name)
	assert.Empty(t, entry.InstituteWallet)
}

func TestHandler_Decode(t *testing.T) {
	h, _, _ := fixture(t)

	var input Input
	require.NoError(t, h.proc.Decode(`{"scholarshipId":"1700000000000"}`, &input))
	assert.Equal(t, "1700000000000", input.ScholarshipID)

	err := h.proc.Decode(`{"scholarshipId":""}`, &input)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeValidationFailed))
}
