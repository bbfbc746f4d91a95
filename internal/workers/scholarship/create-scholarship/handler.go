// internal/workers/scholarship/create-scholarship/handler.go
package createscholarship

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

const TaskType = "create-scholarship"

// DraftReader exposes the saved eligibility step.
type DraftReader interface {
	Draft(ctx context.Context) (models.Eligibility, error)
}

type Handler struct {
	config   *Config
	accounts records.AccountRecords
	catalog  records.ScholarshipCatalog
	drafts   DraftReader
	proc     *camunda.JobProcessor
	logger   logger.Logger
}

func NewHandler(config *Config, accounts records.AccountRecords, catalog *records.Catalog, log logger.Logger) *Handler {
	schema := InputSchema()
	proc := camunda.NewJobProcessor(TaskType, config.Timeout, &schema, log)
	return &Handler{
		config:   config,
		accounts: accounts,
		catalog:  catalog,
		drafts:   catalog,
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

// Execute publishes the saved eligibility plus these repayment terms
// under the registered contributor's organization.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if _, err := h.accounts.RequireSession(ctx, models.RoleContributor); err != nil {
		return nil, err
	}

	if h.config.RequireDraft {
		draft, err := h.drafts.Draft(ctx)
		if err != nil {
			return nil, err
		}
		if draft == (models.Eligibility{}) {
			return nil, errors.NewValidationFailedError("no eligibility draft saved")
		}
	}

	s, err := h.catalog.CreateFromDraft(ctx, input.Repayment)
	if err != nil {
		return nil, err
	}

	return &Output{
		ScholarshipID:    s.ID,
		OrganizationName: s.OrganizationName,
		Scholarship:      s,
	}, nil
}
