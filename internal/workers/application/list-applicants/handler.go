// internal/workers/application/list-applicants/handler.go
package listapplicants

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

const TaskType = "list-applicants"

type Handler struct {
	config   *Config
	accounts records.AccountRecords
	catalog  records.ScholarshipCatalog
	ledger   records.ApplicationLedger
	proc     *camunda.JobProcessor
	logger   logger.Logger
}

func NewHandler(config *Config, accounts records.AccountRecords, catalog records.ScholarshipCatalog, ledger records.ApplicationLedger, log logger.Logger) *Handler {
	schema := InputSchema()
	proc := camunda.NewJobProcessor(TaskType, config.Timeout, &schema, log)
	return &Handler{
		config:   config,
		accounts: accounts,
		catalog:  catalog,
		ledger:   ledger,
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

// Execute lists a scholarship's applicants for the organization that
// offers it. Another organization's scholarship reads as not found.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	identity, err := h.accounts.RequireSession(ctx, models.RoleContributor)
	if err != nil {
		return nil, err
	}

	s, err := h.catalog.FindByID(ctx, input.ScholarshipID)
	if err != nil {
		return nil, err
	}
	if s.OrganizationName != identity.OrganizationName {
		h.logger.Warn("applicant list requested for another organization", map[string]interface{}{
			"scholarshipId":    s.ID,
			"organizationName": identity.OrganizationName,
		})
		return nil, errors.NewRecordNotFoundError("scholarship", input.ScholarshipID)
	}

	all, err := h.ledger.Applicants(ctx, s.ID)
	if err != nil {
		return nil, err
	}

	out := &Output{Scholarship: s, Applicants: []models.ApplicantEntry{}}
	for _, a := range all {
		if a.Status == models.StatusPending {
			out.Pending++
		}
		if input.Status != "" && string(a.Status) != input.Status {
			continue
		}
		out.Applicants = append(out.Applicants, a)
	}
	out.Count = len(out.Applicants)
	return out, nil
}
