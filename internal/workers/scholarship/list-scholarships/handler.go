// internal/workers/scholarship/list-scholarships/handler.go
package listscholarships

import (
	"context"

	"acadgrant/internal/common/camunda"
	"acadgrant/internal/common/logger"
	"acadgrant/internal/models"
	"acadgrant/internal/records"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "list-scholarships"

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

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	scope := input.Scope
	if scope == "" {
		scope = ScopeOrganization
	}

	var (
		list []models.Scholarship
		err  error
	)
	switch scope {
	case ScopeAll:
		if _, err = h.accounts.RequireSession(ctx, models.RoleStudent); err != nil {
			return nil, err
		}
		list, err = h.catalog.List(ctx)
	default:
		var identity models.Identity
		if identity, err = h.accounts.RequireSession(ctx, models.RoleContributor); err != nil {
			return nil, err
		}
		list, err = h.catalog.ListForOrganization(ctx, identity.OrganizationName)
	}
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.Scholarship{}
	}

	return &Output{Scope: scope, Scholarships: list, Count: len(list)}, nil
}
