// internal/workers/scholarship/save-scholarship-eligibility/handler.go
package savescholarshipeligibility

import (
	"context"

	"acadgrant/internal/common/camunda"
	"acadgrant/internal/common/logger"
	"acadgrant/internal/models"
	"acadgrant/internal/records"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "save-scholarship-eligibility"

type Handler struct {
	config   *Config
	accounts records.AccountRecords
	catalog  records.ScholarshipCatalog
	proc     *camunda.JobProcessor
	logger   logger.Logger
}

func NewHandler(config *Config, accounts records.AccountRecords, catalog records.ScholarshipCatalog, log logger.Logger) *Handler {
	schema := InputSchema()
	proc := camunda.NewJobProcessor(TaskType, config.Timeout, &schema, log)
	return &Handler{
		config:   config,
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

// Execute stores the eligibility draft that create-scholarship picks up.
// A second save replaces the first.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	identity, err := h.accounts.RequireSession(ctx, models.RoleContributor)
	if err != nil {
		return nil, err
	}

	if err := h.catalog.SaveEligibilityDraft(ctx, input.Eligibility); err != nil {
		return nil, err
	}

	h.logger.Debug("eligibility draft saved", map[string]interface{}{
		"organizationName": identity.OrganizationName,
		"grantAmount":      input.GrantAmount,
	})
	return &Output{EligibilitySaved: true, Eligibility: input.Eligibility}, nil
}
