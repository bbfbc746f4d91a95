// internal/workers/accounts/register-student/handler.go
package registerstudent

import (
	"context"

	"acadgrant/internal/common/camunda"
	"acadgrant/internal/common/errors"
	"acadgrant/internal/common/logger"
	"acadgrant/internal/records"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "register-student"

type Handler struct {
	config   *Config
	accounts records.AccountRecords
	proc     *camunda.JobProcessor
	logger   logger.Logger
}

func NewHandler(config *Config, accounts records.AccountRecords, log logger.Logger) *Handler {
	schema := InputSchema(config.RequireWallet)
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

// Execute stores the student's credentials and builds their profile from
// the same form. The student is not logged in afterwards.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if h.config.RequireWallet && input.InstituteWallet == "" {
		return nil, errors.NewValidationFailedError("instituteWallet is required")
	}

	profile, err := h.accounts.RegisterStudent(ctx, input.StudentRegistration)
	if err != nil {
		return nil, err
	}

	if profile.AcademicInfo.InstituteWallet == "" {
		h.logger.Warn("student registered without a wallet", map[string]interface{}{
			"email": profile.Email,
		})
	}

	return &Output{
		Registered: true,
		StudentID:  profile.ID.String(),
		Name:       profile.Name,
		Email:      profile.Email,
	}, nil
}
