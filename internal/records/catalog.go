// internal/records/catalog.go
package records

import (
	"context"
	"strconv"

	"acadgrant/internal/common/errors"
	"acadgrant/internal/models"
)

// Catalog is the allScholarships list. Ownership is the organizationName
// string and nothing else.
type Catalog struct {
	*base
	accounts *Accounts
}

// SaveEligibilityDraft stores step one of the two-step creation flow.
func (c *Catalog) SaveEligibilityDraft(ctx context.Context, e models.Eligibility) error {
	return c.save(ctx, KeyScholarshipEligibility, e)
}

// Draft returns the saved eligibility step, or an empty one.
func (c *Catalog) Draft(ctx context.Context) (models.Eligibility, error) {
	e, _, err := load[models.Eligibility](ctx, c.base, KeyScholarshipEligibility)
	return e, err
}

func (c *Catalog) CreateScholarship(ctx context.Context, e models.Eligibility, r models.Repayment, organizationName, website string) (models.Scholarship, error) {
	if organizationName == "" {
		organizationName = models.DefaultOrganizationName
	}
	if website == "" {
		website = models.DefaultWebsite
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	list, _, err := load[[]models.Scholarship](ctx, c.base, KeyAllScholarships)
	if err != nil {
		return models.Scholarship{}, err
	}

	s := models.Scholarship{
		ID:               strconv.FormatInt(c.nowMillis(), 10),
		OrganizationName: organizationName,
		Website:          website,
		Eligibility:      e,
		Repayment:        r,
	}
	list = append(list, s)
	if err := c.save(ctx, KeyAllScholarships, list); err != nil {
		return models.Scholarship{}, err
	}

	c.logger.Info("scholarship created", map[string]interface{}{
		"scholarshipId":    s.ID,
		"organizationName": s.OrganizationName,
		"grantAmount":      e.GrantAmount,
	})
	return s, nil
}

// CreateFromDraft is step two: the saved eligibility plus repayment terms,
// owned by whichever contributor is registered.
func (c *Catalog) CreateFromDraft(ctx context.Context, r models.Repayment) (models.Scholarship, error) {
	draft, err := c.Draft(ctx)
	if err != nil {
		return models.Scholarship{}, err
	}

	contributor, found, err := load[models.Identity](ctx, c.base, KeyContributorUser)
	if err != nil {
		return models.Scholarship{}, err
	}
	if !found {
		c.logger.Warn("creating scholarship without a contributor identity", nil)
	}

	return c.CreateScholarship(ctx, draft, r, contributor.OrganizationName, "")
}

func (c *Catalog) List(ctx context.Context) ([]models.Scholarship, error) {
	list, _, err := load[[]models.Scholarship](ctx, c.base, KeyAllScholarships)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.Scholarship{}
	}
	return list, nil
}

func (c *Catalog) ListForOrganization(ctx context.Context, organizationName string) ([]models.Scholarship, error) {
	list, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	out := []models.Scholarship{}
	for _, s := range list {
		if s.OrganizationName == organizationName {
			out = append(out, s)
		}
	}
	return out, nil
}

func (c *Catalog) FindByID(ctx context.Context, id string) (models.Scholarship, error) {
	list, err := c.List(ctx)
	if err != nil {
		return models.Scholarship{}, err
	}
	for _, s := range list {
		if s.ID == id {
			return s, nil
		}
	}
	return models.Scholarship{}, errors.NewRecordNotFoundError("scholarship", id)
}
