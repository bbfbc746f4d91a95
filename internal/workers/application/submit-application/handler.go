// internal/workers/application/submit-application/handler.go
package submitapplication

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

const TaskType = "submit-application"

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

// Execute applies the logged-in student to a scholarship once. The
// applicant entry is a snapshot of the profile as it is now.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	identity, err := h.accounts.RequireSession(ctx, models.RoleStudent)
	if err != nil {
		return nil, err
	}

	s, err := h.catalog.FindByID(ctx, input.ScholarshipID)
	if err != nil {
		return nil, err
	}

	applied, err := h.ledger.HasApplied(ctx, identity.Email, s.ID)
	if err != nil {
		return nil, err
	}
	if applied {
		return nil, errors.NewDuplicateApplicationError(s.ID).
			WithMetadata("email", identity.Email)
	}

	profile, err := h.profileFor(ctx, identity)
	if err != nil {
		return nil, err
	}

	entry, err := h.ledger.SubmitApplication(ctx, s, profile)
	if err != nil {
		return nil, err
	}

	return &Output{
		ScholarshipID:    s.ID,
		ApplicantID:      entry.ID.String(),
		OrganizationName: s.OrganizationName,
		Email:            entry.Email,
		Status:           string(entry.Status),
	}, nil
}

// profileFor returns the stored profile, or one built from the identity
// when the student never got a profile written.
func (h *Handler) profileFor(ctx context.Context, identity models.Identity) (models.StudentProfile, error) {
	profile, err := h.ledger.Profile(ctx, identity.Email)
	if err == nil {
		return profile, nil
	}
	if !errors.HasCode(err, errors.ErrCodeRecordNotFound) {
		return models.StudentProfile{}, err
	}

	h.logger.Warn("applying without a stored profile", map[string]interface{}{
		"email": identity.Email,
	})
	return models.StudentProfile{
		ID:    identity.ID,
		Name:  strings.TrimSpace(identity.FirstName + " " + identity.LastName),
		Email: identity.Email,
		BasicInfo: models.BasicInfo{
			FirstName: identity.FirstName,
			LastName:  identity.LastName,
		},
	}, nil
}
