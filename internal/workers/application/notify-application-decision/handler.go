// internal/workers/application/notify-application-decision/handler.go
package notifyapplicationdecision

import (
	"context"
	"fmt"
	"strings"
	"time"

	"acadgrant/internal/common/camunda"
	"acadgrant/internal/common/errors"
	"acadgrant/internal/common/logger"
	"acadgrant/internal/models"
	"acadgrant/internal/records"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const TaskType = "notify-application-decision"

type EmailSender interface {
	SendText(ctx context.Context, to, subject, body string) (string, error)
}

type TopicPublisher interface {
	PublishEvent(ctx context.Context, eventType, subject string, payload interface{}) (string, error)
}

type Handler struct {
	config  *Config
	catalog records.ScholarshipCatalog
	ledger  records.ApplicationLedger
	email   EmailSender
	topic   TopicPublisher
	proc    *camunda.JobProcessor
	logger  logger.Logger
	now     func() time.Time
}

// NewHandler takes nil senders for disabled channels.
func NewHandler(config *Config, catalog records.ScholarshipCatalog, ledger records.ApplicationLedger, email EmailSender, topic TopicPublisher, log logger.Logger) *Handler {
	schema := InputSchema()
	proc := camunda.NewJobProcessor(TaskType, config.Timeout, &schema, log)
	return &Handler{
		config:  config,
		catalog: catalog,
		ledger:  ledger,
		email:   email,
		topic:   topic,
		proc:    proc,
		logger:  proc.Logger,
		now:     time.Now,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	var input Input
	h.proc.Process(client, job, &input, func(ctx context.Context) (interface{}, error) {
		return h.Execute(ctx, &input)
	})
}

// Execute emails the student about a decision, or publishes a new
// application to the contributors' topic. A disabled channel completes
// the job with status "disabled"; a send failure is retried.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	s, err := h.catalog.FindByID(ctx, input.ScholarshipID)
	if err != nil {
		return nil, err
	}
	entry, err := h.ledger.Applicant(ctx, input.ScholarshipID, input.ApplicantID)
	if err != nil {
		return nil, err
	}

	switch input.Event {
	case EventDecided:
		return h.notifyDecision(ctx, s, entry)
	case EventSubmitted:
		return h.announceSubmission(ctx, s, entry)
	default:
		return nil, errors.NewValidationFailedError("unknown event " + input.Event)
	}
}

func (h *Handler) notifyDecision(ctx context.Context, s models.Scholarship, entry models.ApplicantEntry) (*Output, error) {
	if !entry.Status.Terminal() {
		return nil, errors.NewInvalidStatusTransitionError(string(entry.Status), "notified")
	}
	if !h.config.EmailEnabled || h.email == nil || entry.Email == "" {
		h.logger.Info("decision email skipped", map[string]interface{}{
			"scholarshipId": s.ID,
			"applicantId":   entry.ID.String(),
			"hasEmail":      entry.Email != "",
		})
		return h.output(ChannelEmail, StatusDisabled, ""), nil
	}

	subject := fmt.Sprintf("Your %s scholarship application was %s", s.OrganizationName, strings.ToLower(string(entry.Status)))
	messageID, err := h.email.SendText(ctx, entry.Email, subject, h.decisionBody(s, entry))
	if err != nil {
		return nil, errors.NewNotificationSendFailedError(ChannelEmail, err)
	}

	h.logger.Info("decision email sent", map[string]interface{}{
		"scholarshipId": s.ID,
		"email":         entry.Email,
		"messageId":     messageID,
	})
	return h.output(ChannelEmail, StatusSent, messageID), nil
}

func (h *Handler) decisionBody(s models.Scholarship, entry models.ApplicantEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", entry.Name)
	fmt.Fprintf(&b, "%s has %s your application for scholarship %s.\n",
		s.OrganizationName, strings.ToLower(string(entry.Status)), s.ID)
	if entry.Status == models.StatusAccepted {
		fmt.Fprintf(&b, "The grant of %s was paid to %s.\n", s.Eligibility.GrantAmount, entry.InstituteWallet)
		if entry.TransactionHash != "" {
			fmt.Fprintf(&b, "Transaction: %s\n", entry.TransactionHash)
		}
	}
	if h.config.PortalURL != "" {
		fmt.Fprintf(&b, "\nTrack your applications at %s\n", h.config.PortalURL)
	}
	return b.String()
}

func (h *Handler) announceSubmission(ctx context.Context, s models.Scholarship, entry models.ApplicantEntry) (*Output, error) {
	if !h.config.SNSEnabled || h.topic == nil {
		return h.output(ChannelSNS, StatusDisabled, ""), nil
	}

	event := SubmittedEvent{
		ScholarshipID:    s.ID,
		OrganizationName: s.OrganizationName,
		ApplicantID:      entry.ID.String(),
		ApplicantName:    entry.Name,
		Institution:      entry.Institution,
	}
	subject := "New application for " + s.OrganizationName
	messageID, err := h.topic.PublishEvent(ctx, EventSubmitted, subject, event)
	if err != nil {
		return nil, errors.NewNotificationSendFailedError(ChannelSNS, err)
	}
	return h.output(ChannelSNS, StatusSent, messageID), nil
}

func (h *Handler) output(channel, status, messageID string) *Output {
	return &Output{
		NotificationID: uuid.New().String(),
		Channel:        channel,
		Status:         status,
		MessageID:      messageID,
		SentAt:         h.now().UTC().Format(time.RFC3339),
	}
}
