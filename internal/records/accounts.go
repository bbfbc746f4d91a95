// internal/records/accounts.go
package records

import (
	"context"

	"acadgrant/internal/common/errors"
	"acadgrant/internal/models"
)

// Accounts owns the two identity records and their session flags.
// Exactly one identity per role exists; registering again overwrites it.
type Accounts struct {
	*base
}

func identityKey(role models.Role) string {
	if role == models.RoleContributor {
		return KeyContributorUser
	}
	return KeyStudentUser
}

func sessionKey(role models.Role) string {
	if role == models.RoleContributor {
		return KeyContributorLoggedIn
	}
	return KeyStudentLoggedIn
}

func checkRole(role models.Role) error {
	if !role.Valid() {
		return errors.NewValidationFailedError("unknown role " + string(role))
	}
	return nil
}

func (a *Accounts) RegisterContributor(ctx context.Context, email, password, organizationName string) (models.Identity, error) {
	hashed, err := a.auth.Hash(password)
	if err != nil {
		return models.Identity{}, errors.NewValidationFailedError(err.Error())
	}

	identity := models.Identity{
		Email:            email,
		Password:         hashed,
		OrganizationName: organizationName,
	}
	if err := a.save(ctx, KeyContributorUser, identity); err != nil {
		return models.Identity{}, err
	}

	a.logger.Info("contributor registered", map[string]interface{}{
		"email":            email,
		"organizationName": organizationName,
	})
	return identity, nil
}

// RegisterStudent writes the credentials and then the profile. A failure
// on the second write leaves the first in place.
func (a *Accounts) RegisterStudent(ctx context.Context, reg models.StudentRegistration) (models.StudentProfile, error) {
	hashed, err := a.auth.Hash(reg.Password)
	if err != nil {
		return models.StudentProfile{}, errors.NewValidationFailedError(err.Error())
	}

	id := models.NewRecordID(a.nowMillis())
	identity := models.Identity{
		ID:        id,
		Email:     reg.Email,
		Password:  hashed,
		FirstName: reg.FirstName,
		LastName:  reg.LastName,
	}
	if err := a.save(ctx, KeyStudentUser, identity); err != nil {
		return models.StudentProfile{}, err
	}

	profile := reg.Profile(id)
	if err := a.save(ctx, StudentProfileKey(reg.Email), profile); err != nil {
		a.logger.Error("student identity written without profile", map[string]interface{}{
			"email": reg.Email,
			"error": err,
		})
		return models.StudentProfile{}, err
	}

	a.logger.Info("student registered", map[string]interface{}{
		"email": reg.Email,
		"id":    id.String(),
	})
	return profile, nil
}

// Login checks the credentials against the role's identity record and
// sets its session flag.
func (a *Accounts) Login(ctx context.Context, role models.Role, email, password string) (models.Identity, error) {
	if err := checkRole(role); err != nil {
		return models.Identity{}, err
	}

	identity, found, err := load[models.Identity](ctx, a.base, identityKey(role))
	if err != nil {
		return models.Identity{}, err
	}
	if !found {
		return models.Identity{}, errors.NewNoAccountError(string(role))
	}
	if identity.Email != email || !a.auth.Verify(identity.Password, password) {
		return models.Identity{}, errors.NewInvalidCredentialsError()
	}

	if err := a.kv.Set(ctx, sessionKey(role), sessionFlagValue); err != nil {
		return models.Identity{}, errors.NewStorageFailedError("set", sessionKey(role), err)
	}
	return identity, nil
}

func (a *Accounts) LoginContributor(ctx context.Context, email, password string) (models.Identity, error) {
	return a.Login(ctx, models.RoleContributor, email, password)
}

func (a *Accounts) LoginStudent(ctx context.Context, email, password string) (models.Identity, error) {
	return a.Login(ctx, models.RoleStudent, email, password)
}

func (a *Accounts) Logout(ctx context.Context, role models.Role) error {
	if err := checkRole(role); err != nil {
		return err
	}
	if err := a.kv.Remove(ctx, sessionKey(role)); err != nil {
		return errors.NewStorageFailedError("remove", sessionKey(role), err)
	}
	return nil
}

// RequireSession returns the role's identity when its flag is set. A set
// flag without an identity record counts as logged out.
func (a *Accounts) RequireSession(ctx context.Context, role models.Role) (models.Identity, error) {
	if err := checkRole(role); err != nil {
		return models.Identity{}, err
	}

	flag, found, err := a.kv.Get(ctx, sessionKey(role))
	if err != nil {
		return models.Identity{}, errors.NewStorageFailedError("get", sessionKey(role), err)
	}
	if !found || flag != sessionFlagValue {
		return models.Identity{}, errors.NewNotLoggedInError(string(role))
	}

	identity, found, err := load[models.Identity](ctx, a.base, identityKey(role))
	if err != nil {
		return models.Identity{}, err
	}
	if !found {
		a.logger.Warn("session flag set without identity record", map[string]interface{}{
			"role": string(role),
		})
		return models.Identity{}, errors.NewNotLoggedInError(string(role))
	}
	return identity, nil
}

func (a *Accounts) current(ctx context.Context, role models.Role) (models.Identity, error) {
	identity, found, err := load[models.Identity](ctx, a.base, identityKey(role))
	if err != nil {
		return models.Identity{}, err
	}
	if !found {
		return models.Identity{}, errors.NewRecordNotFoundError("identity", identityKey(role))
	}
	return identity, nil
}

func (a *Accounts) CurrentContributor(ctx context.Context) (models.Identity, error) {
	return a.current(ctx, models.RoleContributor)
}

func (a *Accounts) CurrentStudent(ctx context.Context) (models.Identity, error) {
	return a.current(ctx, models.RoleStudent)
}
