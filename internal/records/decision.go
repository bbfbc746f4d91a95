// internal/records/decision.go
package records

import (
	"context"
	stderrors "errors"
	"math/big"
	"sync"
	"time"

	"acadgrant/internal/common/errors"
	"acadgrant/internal/common/metrics"
	"acadgrant/internal/common/observability"
	"acadgrant/internal/common/wallet"
	"acadgrant/internal/models"
)

// DecisionService approves applicants by paying their institute wallet
// and recording the transaction hash, or denies them outright.
type DecisionService struct {
	records        *Records
	wallet         wallet.Provider
	confirmTimeout time.Duration
	obs            *observability.Observability

	// inflight holds one entry per applicant with a decision underway,
	// from the Pending check until the decision is recorded or abandoned.
	mu       sync.Mutex
	inflight map[string]struct{}
}

type DecisionOptions struct {
	// ConfirmTimeout bounds the wait for one confirmation. Zero waits
	// until the caller's context ends.
	ConfirmTimeout time.Duration
	Observability  *observability.Observability
}

func NewDecisionService(r *Records, w wallet.Provider, opts DecisionOptions) *DecisionService {
	return &DecisionService{
		records:        r,
		wallet:         w,
		confirmTimeout: opts.ConfirmTimeout,
		obs:            opts.Observability,
		inflight:       make(map[string]struct{}),
	}
}

// reserve claims the applicant for one decision. The returned release
// must be called once that decision is finished.
func (d *DecisionService) reserve(scholarshipID string, applicantID models.RecordID) (func(), error) {
	key := scholarshipID + "/" + applicantID.String()

	d.mu.Lock()
	defer d.mu.Unlock()
	if _, busy := d.inflight[key]; busy {
		return nil, errors.NewDecisionInProgressError(scholarshipID, applicantID.String())
	}
	d.inflight[key] = struct{}{}
	return func() {
		d.mu.Lock()
		delete(d.inflight, key)
		d.mu.Unlock()
	}, nil
}

type DecisionResult struct {
	Entry           models.ApplicantEntry
	Amount          string
	TransactionHash string
}

// Approve pays the applicant and only then marks them Accepted. Any
// failure before confirmation leaves the entry Pending with no hash.
func (d *DecisionService) Approve(ctx context.Context, scholarshipID string, applicantID models.RecordID, amountOverride string) (*DecisionResult, error) {
	result, err := d.approve(ctx, scholarshipID, applicantID, amountOverride)
	d.recordDecision("approve", err)
	return result, err
}

func (d *DecisionService) approve(ctx context.Context, scholarshipID string, applicantID models.RecordID, amountOverride string) (*DecisionResult, error) {
	log := d.records.Ledger.logger.WithFields(map[string]interface{}{
		"scholarshipId": scholarshipID,
		"applicantId":   applicantID.String(),
	})

	if _, err := d.records.Accounts.RequireSession(ctx, models.RoleContributor); err != nil {
		return nil, err
	}

	release, err := d.reserve(scholarshipID, applicantID)
	if err != nil {
		log.Warn("approve rejected, decision already underway", nil)
		return nil, err
	}
	defer release()

	entry, err := d.records.Ledger.Applicant(ctx, scholarshipID, applicantID)
	if err != nil {
		return nil, err
	}
	if entry.Status != models.StatusPending {
		return nil, errors.NewInvalidStatusTransitionError(string(entry.Status), string(models.StatusAccepted))
	}

	amount := amountOverride
	if amount == "" {
		s, err := d.records.Catalog.FindByID(ctx, scholarshipID)
		if err != nil {
			return nil, err
		}
		amount = s.Eligibility.GrantAmount
	}
	wei, err := wallet.ParseEther(amount)
	if err != nil {
		return nil, errors.NewInvalidAmountError(amount).WithMetadata("reason", err.Error())
	}

	hash, err := d.pay(ctx, entry.InstituteWallet, wei)
	if err != nil {
		log.Warn("payment failed, application left pending", map[string]interface{}{
			"amount": amount,
			"error":  err,
		})
		return nil, err
	}

	decided, err := d.records.Ledger.Decide(ctx, scholarshipID, applicantID, models.StatusAccepted, hash)
	if err != nil {
		log.Error("payment confirmed but decision not recorded", map[string]interface{}{
			"txHash": hash,
			"error":  err,
		})
		return nil, err
	}

	return &DecisionResult{Entry: decided, Amount: amount, TransactionHash: hash}, nil
}

func (d *DecisionService) pay(ctx context.Context, to string, wei *big.Int) (string, error) {
	start := time.Now()
	hash, err := d.send(ctx, to, wei)

	result := "confirmed"
	if err != nil {
		result = string(errors.CodeOf(err))
	}
	metrics.PaymentDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())
	d.obs.RecordPayment(ctx, result)
	return hash, err
}

func (d *DecisionService) send(ctx context.Context, to string, wei *big.Int) (string, error) {
	signer, err := d.wallet.RequestAccountAndSigner(ctx)
	if err != nil {
		return "", walletError(err)
	}

	pending, err := d.wallet.SendPayment(ctx, signer, to, wei)
	if err != nil {
		return "", walletError(err)
	}

	waitCtx := ctx
	if d.confirmTimeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, d.confirmTimeout)
		defer cancel()
	}

	receipt, err := pending.Wait(waitCtx)
	if err != nil {
		return "", walletError(err).WithMetadata("txHash", pending.Hash())
	}
	return receipt.TransactionHash, nil
}

func walletError(err error) *errors.StandardError {
	switch {
	case stderrors.Is(err, wallet.ErrUserRejected):
		return errors.NewUserRejectedError(err)
	case stderrors.Is(err, wallet.ErrWalletUnavailable):
		return errors.NewWalletUnavailableError(err)
	default:
		return errors.NewTransactionFailedError(err)
	}
}

// Deny marks a Pending applicant Rejected without a hash.
func (d *DecisionService) Deny(ctx context.Context, scholarshipID string, applicantID models.RecordID) (*DecisionResult, error) {
	result, err := d.deny(ctx, scholarshipID, applicantID)
	d.recordDecision("deny", err)
	return result, err
}

func (d *DecisionService) deny(ctx context.Context, scholarshipID string, applicantID models.RecordID) (*DecisionResult, error) {
	if _, err := d.records.Accounts.RequireSession(ctx, models.RoleContributor); err != nil {
		return nil, err
	}
	release, err := d.reserve(scholarshipID, applicantID)
	if err != nil {
		return nil, err
	}
	defer release()

	entry, err := d.records.Ledger.Decide(ctx, scholarshipID, applicantID, models.StatusRejected, "")
	if err != nil {
		return nil, err
	}
	return &DecisionResult{Entry: entry}, nil
}

func (d *DecisionService) recordDecision(decision string, err error) {
	result := "ok"
	if err != nil {
		result = string(errors.CodeOf(err))
	}
	metrics.LedgerDecisions.WithLabelValues(decision, result).Inc()
}
