// internal/workers/application/notify-application-decision/models.go
package notifyapplicationdecision

import "acadgrant/internal/models"

// Events the worker announces.
const (
	EventDecided   = "application_decided"
	EventSubmitted = "application_submitted"
)

// Statuses
const (
	StatusSent     = "sent"
	StatusDisabled = "disabled"
)

// Channels
const (
	ChannelEmail = "email"
	ChannelSNS   = "sns"
)

type Input struct {
	Event         string          `json:"event"`
	ScholarshipID string          `json:"scholarshipId"`
	ApplicantID   models.RecordID `json:"applicantId"`
}

type Output struct {
	NotificationID string `json:"notificationId"`
	Channel        string `json:"channel"`
	Status         string `json:"status"` // "sent" or "disabled"
	MessageID      string `json:"messageId,omitempty"`
	SentAt         string `json:"sentAt"` // RFC 3339
}

// SubmittedEvent is the SNS payload for a new application.
type SubmittedEvent struct {
	ScholarshipID    string `json:"scholarshipId"`
	OrganizationName string `json:"organizationName"`
	ApplicantID      string `json:"applicantId"`
	ApplicantName    string `json:"applicantName"`
	Institution      string `json:"institution,omitempty"`
}
