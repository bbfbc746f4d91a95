// internal/workers/accounts/update-student-profile/handler.go
package updatestudentprofile

import (
	"context"
	"strings"

	"acadgrant/internal/common/camunda"
	"acadgrant/internal/common/errors"
	"acadgrant/internal/common/logger"
	"acadgrant/internal/models"
	"acadgrant/internal/records"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "update-student-profile"

type Handler struct {
	config   *Config
	accounts records.AccountRecords
	ledger   records.ApplicationLedger
	proc     *camunda.JobProcessor
	logger   logger.Logger
}

func NewHandler(config *Config, accounts records.AccountRecords, ledger records.ApplicationLedger, log logger.Logger) *Handler {
	schema := InputSchema()
	proc := camunda.NewJobProcessor(TaskType, config.Timeout, &schema, log)
	return &Handler{
		config:   config,
		accounts: accounts,
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

// Execute edits the logged-in student's profile. Applications already
// submitted keep the snapshot taken at submission.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	identity, err := h.accounts.RequireSession(ctx, models.RoleStudent)
	if err != nil {
		return nil, err
	}

	profile, err := h.ledger.Profile(ctx, identity.Email)
	if errors.HasCode(err, errors.ErrCodeRecordNotFound) {
		profile = models.StudentProfile{
			ID:    identity.ID,
			Email: identity.Email,
			Name:  strings.TrimSpace(identity.FirstName + " " + identity.LastName),
			BasicInfo: models.BasicInfo{
				FirstName: identity.FirstName,
				LastName:  identity.LastName,
			},
		}
	} else if err != nil {
		return nil, err
	}

	merge(&profile, input)

	if err := h.ledger.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}

	h.logger.Info("student profile updated", map[string]interface{}{
		"email": profile.Email,
	})
	return &Output{Updated: true, Profile: profile}, nil
}

func merge(profile *models.StudentProfile, input *Input) {
	if input.BasicInfo != nil {
		profile.BasicInfo = *input.BasicInfo
		profile.Name = input.BasicInfo.FirstName + " " + input.BasicInfo.LastName
	}
	if input.AcademicInfo != nil {
		profile.AcademicInfo = *input.AcademicInfo
	}
	if input.Achievements != nil {
		profile.Achievements = input.Achievements
	}
	if input.ExtraCurricular != nil {
		profile.ExtraCurricular = input.ExtraCurricular
	}
}
