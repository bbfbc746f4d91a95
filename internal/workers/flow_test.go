package workers_test

import (
	"context"
	"testing"
	"time"

	"acadgrant/internal/common/auth"
	apperrors "acadgrant/internal/common/errors"
	"acadgrant/internal/common/logger"
	"acadgrant/internal/common/wallet"
	"acadgrant/internal/models"
	"acadgrant/internal/records"
	"acadgrant/internal/store"

	alog "acadgrant/internal/workers/accounts/account-login"
	alo "acadgrant/internal/workers/accounts/account-logout"
	rc "acadgrant/internal/workers/accounts/register-contributor"
	rs "acadgrant/internal/workers/accounts/register-student"
	da "acadgrant/internal/workers/application/decide-application"
	la "acadgrant/internal/workers/application/list-applicants"
	lsa "acadgrant/internal/workers/application/list-student-applications"
	sa "acadgrant/internal/workers/application/submit-application"
	cs "acadgrant/internal/workers/scholarship/create-scholarship"
	ls "acadgrant/internal/workers/scholarship/list-scholarships"
	sse "acadgrant/internal/workers/scholarship/save-scholarship-eligibility"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGrantFlow drives one scholarship from creation to a paid grant
// through the workers, over the Redis backend.
func TestGrantFlow(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	kv := store.NewRedisStore(client, "acadgrant:")
	t.Cleanup(func() { kv.Close() })

	log := logger.NewTestLogger(t)
	recs := records.New(kv, log, records.WithAuthProvider(auth.NewBcryptProvider(4)))
	payer := wallet.NewFakeProvider()
	payer.Hash = "0x9f2c"
	decisions := records.NewDecisionService(recs, payer, records.DecisionOptions{ConfirmTimeout: time.Second})

	var (
		register    = rc.NewHandler(rc.LoadConfig(), recs.Accounts, log)
		login       = alog.NewHandler(alog.LoadConfig(), recs.Accounts, log)
		logout      = alo.NewHandler(alo.LoadConfig(), recs.Accounts, log)
		signup      = rs.NewHandler(rs.LoadConfig(), recs.Accounts, log)
		eligibility = sse.NewHandler(sse.LoadConfig(), recs.Accounts, recs.Catalog, log)
		create      = cs.NewHandler(cs.LoadConfig(), recs.Accounts, recs.Catalog, log)
		browse      = ls.NewHandler(ls.LoadConfig(), recs.Accounts, recs.Catalog, log)
		apply       = sa.NewHandler(sa.LoadConfig(), recs.Accounts, recs.Catalog, recs.Ledger, log)
		applicants  = la.NewHandler(la.LoadConfig(), recs.Accounts, recs.Catalog, recs.Ledger, log)
		decide      = da.NewHandler(da.LoadConfig(), decisions, recs.Accounts, recs.Catalog, log)
		mine        = lsa.NewHandler(lsa.LoadConfig(), recs.Accounts, recs.Ledger, log)
	)

	// contributor publishes a scholarship
	_, err := register.Execute(ctx, &rc.Input{Email: "org@acme.org", Password: "secret", OrganizationName: "Acme Fund"})
	require.NoError(t, err)
	_, err = login.Execute(ctx, &alog.Input{Role: "contributor", Email: "org@acme.org", Password: "secret"})
	require.NoError(t, err)
	_, err = eligibility.Execute(ctx, &sse.Input{Eligibility: models.Eligibility{GrantAmount: "2.5", Nationality: "Indian", CGPA: "3.0"}})
	require.NoError(t, err)
	created, err := create.Execute(ctx, &cs.Input{Repayment: models.Repayment{MaxRepayment: "5", InterestRate: "4.5", MoratoriumPeriod: "6"}})
	require.NoError(t, err)

	// student signs up and applies
	student, err := signup.Execute(ctx, &rs.Input{StudentRegistration: models.StudentRegistration{
		Email:           "a@b.com",
		Password:        "pw",
		FirstName:       "Asha",
		LastName:        "Rao",
		Institution:     "IIT Bombay",
		InstituteWallet: "0x1111111111111111111111111111111111111111",
	}})
	require.NoError(t, err)
	_, err = login.Execute(ctx, &alog.Input{Role: "student", Email: "a@b.com", Password: "pw"})
	require.NoError(t, err)

	listed, err := browse.Execute(ctx, &ls.Input{Scope: ls.ScopeAll})
	require.NoError(t, err)
	require.Equal(t, 1, listed.Count)
	assert.Equal(t, created.ScholarshipID, listed.Scholarships[0].ID)

	submitted, err := apply.Execute(ctx, &sa.Input{ScholarshipID: created.ScholarshipID})
	require.NoError(t, err)
	assert.Equal(t, student.StudentID, submitted.ApplicantID)

	_, err = apply.Execute(ctx, &sa.Input{ScholarshipID: created.ScholarshipID})
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeDuplicateApplication))

	// contributor reviews and approves
	pending, err := applicants.Execute(ctx, &la.Input{ScholarshipID: created.ScholarshipID})
	require.NoError(t, err)
	require.Equal(t, 1, pending.Pending)

	decided, err := decide.Execute(ctx, &da.Input{
		ScholarshipID: created.ScholarshipID,
		ApplicantID:   models.RecordID(submitted.ApplicantID),
		Decision:      da.DecisionApprove,
	})
	require.NoError(t, err)
	assert.Equal(t, "0x9f2c", decided.TransactionHash)
	assert.Equal(t, "2.5", decided.Amount)

	want, err := wallet.ParseEther("2.5")
	require.NoError(t, err)
	require.Len(t, payer.Payments(), 1)
	assert.Equal(t, 0, want.Cmp(payer.Payments()[0].Amount))

	// student sees the paid grant
	apps, err := mine.Execute(ctx, &lsa.Input{})
	require.NoError(t, err)
	require.Equal(t, 1, apps.Count)
	assert.Equal(t, models.StatusAccepted, apps.Applications[0].Status)
	assert.Equal(t, "0x9f2c", apps.Applications[0].TransactionHash)

	// everything lives under the prefix
	for _, key := range mr.Keys() {
		assert.Contains(t, key, "acadgrant:")
	}

	_, err = logout.Execute(ctx, &alo.Input{Role: "student"})
	require.NoError(t, err)
	_, err = mine.Execute(ctx, &lsa.Input{})
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeNotLoggedIn))
}
