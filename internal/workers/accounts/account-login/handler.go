// internal/workers/accounts/account-login/handler.go
package accountlogin

import (
	"context"
	"strings"

	"acadgrant/internal/common/camunda"
	"acadgrant/internal/common/logger"
	"acadgrant/internal/models"
	"acadgrant/internal/records"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "account-login"

type Handler struct {
	config   *Config
	accounts records.AccountRecords
	proc     *camunda.JobProcessor
	logger   logger.Logger
}

func NewHandler(config *Config, accounts records.AccountRecords, log logger.Logger) *Handler {
	schema := InputSchema()
	proc := camunda.NewJobProcessor(TaskType, config.Timeout, &schema, log)
	return &Handler{
		config:   config,
		accounts: accounts,
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

// Execute checks the credentials and sets the role's session flag. Wrong
// credentials and a missing account surface as BPMN errors so the process
// can route back to the login form.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	role := models.Role(input.Role)
	identity, err := h.accounts.Login(ctx, role, input.Email, input.Password)
	if err != nil {
		h.logger.Warn("login rejected", map[string]interface{}{
			"role":  input.Role,
			"email": input.Email,
			"error": err.Error(),
		})
		return nil, err
	}

	h.logger.Info("logged in", map[string]interface{}{
		"role":  input.Role,
		"email": identity.Email,
	})

	out := &Output{
		LoggedIn: true,
		Role:     string(role),
		Email:    identity.Email,
	}
	switch role {
	case models.RoleContributor:
		out.OrganizationName = identity.OrganizationName
	case models.RoleStudent:
		out.StudentID = identity.ID.String()
		out.Name = strings.TrimSpace(identity.FirstName + " " + identity.LastName)
	}
	return out, nil
}
