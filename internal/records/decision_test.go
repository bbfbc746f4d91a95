package records

import (
	"context"
	"math/big"
	"testing"
	"time"

	apperrors "acadgrant/internal/common/errors"
	"acadgrant/internal/common/wallet"
	"acadgrant/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decisionFixture has a logged-in Acme Fund contributor, the 1700000000000
// scholarship and one pending applicant.
func decisionFixture(t *testing.T) (*Records, models.ApplicantEntry, *wallet.FakeProvider) {
	t.Helper()
	ctx := context.Background()
	r, _ := newTestRecords(t)

	_, err := r.Accounts.RegisterContributor(ctx, "org@acme.org", "secret", "Acme Fund")
	require.NoError(t, err)
	_, err = r.Accounts.LoginContributor(ctx, "org@acme.org", "secret")
	require.NoError(t, err)

	e, rp := acmeTerms()
	s, err := r.Catalog.CreateScholarship(ctx, e, rp, "Acme Fund", "")
	require.NoError(t, err)

	profile, err := r.Accounts.RegisterStudent(ctx, studentReg())
	require.NoError(t, err)
	entry, err := r.Ledger.SubmitApplication(ctx, s, profile)
	require.NoError(t, err)
	require.Equal(t, "1700000000000", s.ID)

	return r, entry, wallet.NewFakeProvider()
}

func TestDecisionService_ApprovePays(t *testing.T) {
	ctx := context.Background()
	r, entry, fake := decisionFixture(t)
	fake.Hash = "0xabc"
	d := NewDecisionService(r, fake, DecisionOptions{})

	result, err := d.Approve(ctx, "1700000000000", entry.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "0xabc", result.TransactionHash)
	assert.Equal(t, "50000", result.Amount)

	applicant, _ := r.Ledger.Applicant(ctx, "1700000000000", entry.ID)
	assert.Equal(t, models.StatusAccepted, applicant.Status)
	assert.Equal(t, "0xabc", applicant.TransactionHash)

	summaries, _ := r.Ledger.StudentApplications(ctx, "a@b.com")
	assert.Equal(t, models.StatusAccepted, summaries[0].Status)
	assert.Equal(t, "0xabc", summaries[0].TransactionHash)

	payments := fake.Payments()
	require.Len(t, payments, 1)
	assert.Equal(t, entry.InstituteWallet, payments[0].To)
	want, _ := wallet.ParseEther("50000")
	assert.Equal(t, 0, want.Cmp(payments[0].Amount))
}

func TestDecisionService_ApproveOverrideAmount(t *testing.T) {
	r, entry, fake := decisionFixture(t)
	d := NewDecisionService(r, fake, DecisionOptions{})

	result, err := d.Approve(context.Background(), "1700000000000", entry.ID, "0.25")
	require.NoError(t, err)
	assert.Equal(t, "0.25", result.Amount)

	want, _ := wallet.ParseEther("0.25")
	assert.Equal(t, 0, want.Cmp(fake.Payments()[0].Amount))
}

func TestDecisionService_PaymentFailureKeepsPending(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(f *wallet.FakeProvider)
		wantCode apperrors.ErrorCode
	}{
		{
			name:     "no wallet",
			setup:    func(f *wallet.FakeProvider) { f.RequestErr = wallet.ErrWalletUnavailable },
			wantCode: apperrors.ErrCodeWalletUnavailable,
		},
		{
			name:     "user rejected",
			setup:    func(f *wallet.FakeProvider) { f.SendErr = wallet.ErrUserRejected },
			wantCode: apperrors.ErrCodeUserRejected,
		},
		{
			name:     "reverted",
			setup:    func(f *wallet.FakeProvider) { f.WaitErr = wallet.ErrTransactionFailed },
			wantCode: apperrors.ErrCodeTransactionFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			r, entry, fake := decisionFixture(t)
			tt.setup(fake)
			d := NewDecisionService(r, fake, DecisionOptions{})

			_, err := d.Approve(ctx, "1700000000000", entry.ID, "")
			assert.True(t, apperrors.HasCode(err, tt.wantCode), "got %v", err)

			applicant, _ := r.Ledger.Applicant(ctx, "1700000000000", entry.ID)
			assert.Equal(t, models.StatusPending, applicant.Status)
			assert.Empty(t, applicant.TransactionHash)

			summaries, _ := r.Ledger.StudentApplications(ctx, "a@b.com")
			assert.Equal(t, models.StatusPending, summaries[0].Status)
			assert.Empty(t, summaries[0].TransactionHash)
		})
	}
}

func TestDecisionService_ConfirmTimeout(t *testing.T) {
	ctx := context.Background()
	r, entry, fake := decisionFixture(t)
	fake.Block = true
	d := NewDecisionService(r, fake, DecisionOptions{ConfirmTimeout: 20 * time.Millisecond})

	_, err := d.Approve(ctx, "1700000000000", entry.ID, "")
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeTransactionFailed))

	applicant, _ := r.Ledger.Applicant(ctx, "1700000000000", entry.ID)
	assert.Equal(t, models.StatusPending, applicant.Status)
}

func TestDecisionService_InvalidAmount(t *testing.T) {
	r, entry, fake := decisionFixture(t)
	d := NewDecisionService(r, fake, DecisionOptions{})

	_, err := d.Approve(context.Background(), "1700000000000", entry.ID, "fifty")
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidAmount))
	assert.Empty(t, fake.Payments())
}

func TestDecisionService_RequiresContributorSession(t *testing.T) {
	ctx := context.Background()
	r, entry, fake := decisionFixture(t)
	require.NoError(t, r.Accounts.Logout(ctx, models.RoleContributor))
	d := NewDecisionService(r, fake, DecisionOptions{})

	_, err := d.Approve(ctx, "1700000000000", entry.ID, "")
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeNotLoggedIn))
	_, err = d.Deny(ctx, "1700000000000", entry.ID)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeNotLoggedIn))
	assert.Empty(t, fake.Payments())
}

func TestDecisionService_Deny(t *testing.T) {
	ctx := context.Background()
	r, entry, fake := decisionFixture(t)
	d := NewDecisionService(r, fake, DecisionOptions{})

	result, err := d.Deny(ctx, "1700000000000", entry.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, result.Entry.Status)
	assert.Empty(t, result.TransactionHash)

	summaries, _ := r.Ledger.StudentApplications(ctx, "a@b.com")
	assert.Equal(t, models.StatusRejected, summaries[0].Status)

	// a decided applicant is never paid
	_, err = d.Approve(ctx, "1700000000000", entry.ID, "")
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidStatusTransition))
	assert.Empty(t, fake.Payments())
}

// gatedWallet holds SendPayment until release is closed.
type gatedWallet struct {
	*wallet.FakeProvider
	entered chan struct{}
	release chan struct{}
}

func (g *gatedWallet) SendPayment(ctx context.Context, signer wallet.Signer, to string, amountWei *big.Int) (wallet.PendingPayment, error) {
	g.entered <- struct{}{}
	<-g.release
	return g.FakeProvider.SendPayment(ctx, signer, to, amountWei)
}

func TestDecisionService_ConcurrentDecisionsPayOnce(t *testing.T) {
	ctx := context.Background()
	r, entry, fake := decisionFixture(t)
	fake.Hash = "0xabc"
	gate := &gatedWallet{FakeProvider: fake, entered: make(chan struct{}, 1), release: make(chan struct{})}
	d := NewDecisionService(r, gate, DecisionOptions{})

	type outcome struct {
		result *DecisionResult
		err    error
	}
	first := make(chan outcome, 1)
	go func() {
		result, err := d.Approve(ctx, "1700000000000", entry.ID, "")
		first <- outcome{result, err}
	}()

	select {
	case <-gate.entered:
	case <-time.After(5 * time.Second):
		t.Fatal("first approve never reached the wallet")
	}

	_, err := d.Approve(ctx, "1700000000000", entry.ID, "")
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeDecisionInProgress), "got %v", err)
	_, err = d.Deny(ctx, "1700000000000", entry.ID)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeDecisionInProgress), "got %v", err)

	close(gate.release)
	got := <-first
	require.NoError(t, got.err)
	assert.Equal(t, "0xabc", got.result.TransactionHash)
	assert.Len(t, fake.Payments(), 1)

	// the reservation is gone once the first decision is recorded
	_, err = d.Approve(ctx, "1700000000000", entry.ID, "")
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidStatusTransition), "got %v", err)
	assert.Len(t, fake.Payments(), 1)
}

func TestDecisionService_FailedPaymentReleasesApplicant(t *testing.T) {
	ctx := context.Background()
	r, entry, fake := decisionFixture(t)
	fake.SendErr = wallet.ErrUserRejected
	d := NewDecisionService(r, fake, DecisionOptions{})

	_, err := d.Approve(ctx, "1700000000000", entry.ID, "")
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeUserRejected))

	fake.SendErr = nil
	result, err := d.Approve(ctx, "1700000000000", entry.ID, "")
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, result.Entry.Status)
	assert.Len(t, fake.Payments(), 1)
}
