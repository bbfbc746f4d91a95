// internal/records/ledger.go
package records

import (
	"context"

	"acadgrant/internal/common/errors"
	"acadgrant/internal/models"
)

// Ledger keeps the two views of every application: applicant entries under
// allApplications[scholarshipId] for contributors and summaries under
// applications_<email> for the student. They are written separately and
// can drift if one write fails.
type Ledger struct {
	*base
}

type applicationMap map[string][]models.ApplicantEntry

// SubmitApplication appends the student's summary first and then a
// snapshot of the profile to the scholarship's applicant list. It does not
// deduplicate; callers check HasApplied.
func (l *Ledger) SubmitApplication(ctx context.Context, s models.Scholarship, profile models.StudentProfile) (models.ApplicantEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	summaryKey := StudentApplicationsKey(profile.Email)
	summaries, _, err := load[[]models.ApplicationSummary](ctx, l.base, summaryKey)
	if err != nil {
		return models.ApplicantEntry{}, err
	}
	summaries = append(summaries, models.ApplicationSummary{
		ScholarshipID:    s.ID,
		OrganizationName: s.OrganizationName,
		Status:           models.StatusPending,
	})
	if err := l.save(ctx, summaryKey, summaries); err != nil {
		return models.ApplicantEntry{}, err
	}

	all, _, err := load[applicationMap](ctx, l.base, KeyAllApplications)
	if err != nil {
		return models.ApplicantEntry{}, err
	}
	if all == nil {
		all = applicationMap{}
	}
	entry := models.NewApplicantEntry(profile)
	all[s.ID] = append(all[s.ID], entry)
	if err := l.save(ctx, KeyAllApplications, all); err != nil {
		l.logger.Error("summary written without applicant entry", map[string]interface{}{
			"scholarshipId": s.ID,
			"email":         profile.Email,
			"error":         err,
		})
		return models.ApplicantEntry{}, err
	}

	l.logger.Info("application submitted", map[string]interface{}{
		"scholarshipId": s.ID,
		"applicantId":   entry.ID.String(),
		"email":         profile.Email,
	})
	return entry, nil
}

func (l *Ledger) HasApplied(ctx context.Context, email, scholarshipID string) (bool, error) {
	summaries, err := l.StudentApplications(ctx, email)
	if err != nil {
		return false, err
	}
	for _, s := range summaries {
		if s.ScholarshipID == scholarshipID {
			return true, nil
		}
	}
	return false, nil
}

// Decide moves one Pending applicant to Accepted or Rejected, then mirrors
// the status onto every summary for that scholarship in the applicant's
// own list. Decided entries are never rewritten.
func (l *Ledger) Decide(ctx context.Context, scholarshipID string, applicantID models.RecordID, decision models.ApplicationStatus, txHash string) (models.ApplicantEntry, error) {
	if !decision.Terminal() {
		return models.ApplicantEntry{}, errors.NewInvalidStatusTransitionError(string(models.StatusPending), string(decision))
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	all, _, err := load[applicationMap](ctx, l.base, KeyAllApplications)
	if err != nil {
		return models.ApplicantEntry{}, err
	}
	entries := all[scholarshipID]
	idx := indexOfApplicant(entries, applicantID)
	if idx < 0 {
		return models.ApplicantEntry{}, errors.NewRecordNotFoundError("applicant", scholarshipID+"/"+applicantID.String())
	}
	if entries[idx].Status != models.StatusPending {
		return models.ApplicantEntry{}, errors.NewInvalidStatusTransitionError(string(entries[idx].Status), string(decision))
	}

	entries[idx].Status = decision
	entries[idx].TransactionHash = txHash
	if err := l.save(ctx, KeyAllApplications, all); err != nil {
		return models.ApplicantEntry{}, err
	}
	entry := entries[idx]

	if entry.Email == "" {
		l.logger.Warn("applicant has no email, student summary not updated", map[string]interface{}{
			"scholarshipId": scholarshipID,
			"applicantId":   applicantID.String(),
		})
		return entry, nil
	}

	summaryKey := StudentApplicationsKey(entry.Email)
	summaries, _, err := load[[]models.ApplicationSummary](ctx, l.base, summaryKey)
	if err != nil {
		return entry, err
	}
	matched := 0
	for i := range summaries {
		if summaries[i].ScholarshipID == scholarshipID {
			summaries[i].Status = decision
			summaries[i].TransactionHash = txHash
			matched++
		}
	}
	if matched == 0 {
		l.logger.Warn("no student summary matches decided application", map[string]interface{}{
			"scholarshipId": scholarshipID,
			"email":         entry.Email,
		})
		return entry, nil
	}
	if err := l.save(ctx, summaryKey, summaries); err != nil {
		return entry, err
	}

	l.logger.Info("application decided", map[string]interface{}{
		"scholarshipId": scholarshipID,
		"applicantId":   applicantID.String(),
		"status":        string(decision),
		"txHash":        txHash,
	})
	return entry, nil
}

func indexOfApplicant(entries []models.ApplicantEntry, id models.RecordID) int {
	for i, e := range entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (l *Ledger) Applicants(ctx context.Context, scholarshipID string) ([]models.ApplicantEntry, error) {
	all, _, err := load[applicationMap](ctx, l.base, KeyAllApplications)
	if err != nil {
		return nil, err
	}
	entries := all[scholarshipID]
	if entries == nil {
		entries = []models.ApplicantEntry{}
	}
	return entries, nil
}

func (l *Ledger) Applicant(ctx context.Context, scholarshipID string, applicantID models.RecordID) (models.ApplicantEntry, error) {
	entries, err := l.Applicants(ctx, scholarshipID)
	if err != nil {
		return models.ApplicantEntry{}, err
	}
	if idx := indexOfApplicant(entries, applicantID); idx >= 0 {
		return entries[idx], nil
	}
	return models.ApplicantEntry{}, errors.NewRecordNotFoundError("applicant", scholarshipID+"/"+applicantID.String())
}

func (l *Ledger) StudentApplications(ctx context.Context, email string) ([]models.ApplicationSummary, error) {
	summaries, _, err := load[[]models.ApplicationSummary](ctx, l.base, StudentApplicationsKey(email))
	if err != nil {
		return nil, err
	}
	if summaries == nil {
		summaries = []models.ApplicationSummary{}
	}
	return summaries, nil
}

func (l *Ledger) Profile(ctx context.Context, email string) (models.StudentProfile, error) {
	p, found, err := load[models.StudentProfile](ctx, l.base, StudentProfileKey(email))
	if err != nil {
		return models.StudentProfile{}, err
	}
	if !found {
		return models.StudentProfile{}, errors.NewRecordNotFoundError("studentProfile", email)
	}
	return p, nil
}

// SaveProfile overwrites the student's profile. Submitted applicant
// entries keep the snapshot taken at submission.
func (l *Ledger) SaveProfile(ctx context.Context, p models.StudentProfile) error {
	if p.Email == "" {
		return errors.NewValidationFailedError("profile email is required")
	}
	return l.save(ctx, StudentProfileKey(p.Email), p)
}
