package models

import (
	"interview-prep/apperror"
	"interview-prep/authorization"
	"interview-prep/lookups"
	"testing"

	"github.com/stretchr/testify/assert"
)

// role checks and action parsing run before any store access,
// so these paths are testable without a connection

func TestDecide_AdminOnly(t *testing.T) {
	model := ExperienceModel{}

	member := &authorization.Credentials{RoleCode: lookups.UserRoleMember}
	err := model.Decide("any", ActionApprove, member)
	assert.Equal(t, apperror.ErrDenied, err)

	guest := &authorization.Credentials{RoleCode: lookups.UserRoleGuest}
	err = model.Decide("any", ActionReject, guest)
	assert.Equal(t, apperror.ErrDenied, err)

	err = model.Decide("any", ActionApprove, nil)
	assert.Equal(t, apperror.ErrDenied, err)
}

func TestDecide_UnknownAction(t *testing.T) {
	model := ExperienceModel{}
	admin := &authorization.Credentials{RoleCode: lookups.UserRoleAdmin}

	err := model.Decide("any", "publish", admin)
	assert.Equal(t, ErrInvalidAction, err)

	// checked before the id, so no store call can happen on bad input
	err = model.Decide("", "", admin)
	assert.Equal(t, ErrInvalidAction, err)
}

func TestDecide_MalformedID(t *testing.T) {
	model := ExperienceModel{}
	admin := &authorization.Credentials{RoleCode: lookups.UserRoleAdmin}

	err := model.Decide("not-a-hex-id", ActionApprove, admin)
	assert.Equal(t, apperror.ErrNoData, err)
}

func TestOADecide_SameGate(t *testing.T) {
	model := OAQuestionModel{}

	member := &authorization.Credentials{RoleCode: lookups.UserRoleMember}
	err := model.Decide("any", ActionApprove, member)
	assert.Equal(t, apperror.ErrDenied, err)

	admin := &authorization.Credentials{RoleCode: lookups.UserRoleAdmin}
	err = model.Decide("any", "publish", admin)
	assert.Equal(t, ErrInvalidAction, err)

	err = model.Decide("not-a-hex-id", ActionReject, admin)
	assert.Equal(t, apperror.ErrNoData, err)
}
