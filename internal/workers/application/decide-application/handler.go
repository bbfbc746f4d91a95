// internal/workers/application/decide-application/handler.go
package decideapplication

import (
	"context"

	"acadgrant/internal/common/camunda"
	"acadgrant/internal/common/errors"
	"acadgrant/internal/common/logger"
	"acadgrant/internal/models"
	"acadgrant/internal/records"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "decide-application"

type Handler struct {
	config   *Config
	decider  records.Decider
	accounts records.AccountRecords
	catalog  records.ScholarshipCatalog
	proc     *camunda.JobProcessor
	logger   logger.Logger
}

func NewHandler(config *Config, decider records.Decider, accounts records.AccountRecords, catalog records.ScholarshipCatalog, log logger.Logger) *Handler {
	schema := InputSchema()
	proc := camunda.NewJobProcessor(TaskType, config.Timeout, &schema, log)
	return &Handler{
		config:   config,
		decider:  decider,
		accounts: accounts,
		catalog:  catalog,
		proc:     proc,
		logger:   proc.Logger,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	var input Input
	h.proc.Process(client, job, &input, func(ctx context.Context) (interface{}, error) {
		return h.Execute(ctx, &input)
	})
}

// Execute approves (pays, then records Accepted with the hash) or denies
// one applicant. A failed payment leaves the applicant Pending, so the job
// can be retried or the decision taken again.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if input.ApplicantID == "" {
		return nil, errors.NewValidationFailedError("applicantId is required")
	}

	if h.config.EnforceOwnership {
		if err := h.checkOwnership(ctx, input.ScholarshipID); err != nil {
			return nil, err
		}
	}

	var (
		result *records.DecisionResult
		err    error
	)
	switch input.Decision {
	case DecisionApprove:
		result, err = h.decider.Approve(ctx, input.ScholarshipID, input.ApplicantID, input.Amount)
	case DecisionDeny:
		result, err = h.decider.Deny(ctx, input.ScholarshipID, input.ApplicantID)
	default:
		return nil, errors.NewValidationFailedError("unknown decision " + input.Decision)
	}
	if err != nil {
		return nil, err
	}

	h.logger.Info("application decided", map[string]interface{}{
		"scholarshipId": input.ScholarshipID,
		"applicantId":   input.ApplicantID.String(),
		"status":        string(result.Entry.Status),
		"txHash":        result.TransactionHash,
	})

	return &Output{
		ScholarshipID:   input.ScholarshipID,
		ApplicantID:     result.Entry.ID.String(),
		Email:           result.Entry.Email,
		Status:          string(result.Entry.Status),
		Amount:          result.Amount,
		TransactionHash: result.TransactionHash,
	}, nil
}

func (h *Handler) checkOwnership(ctx context.Context, scholarshipID string) error {
	identity, err := h.accounts.RequireSession(ctx, models.RoleContributor)
	if err != nil {
		return err
	}
	s, err := h.catalog.FindByID(ctx, scholarshipID)
	if err != nil {
		return err
	}
	if s.OrganizationName != identity.OrganizationName {
		return errors.NewRecordNotFoundError("scholarship", scholarshipID)
	}
	return nil
}
