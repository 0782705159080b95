package controllers

import (
	"errors"
	"interview-prep/apperror"
	"interview-prep/models"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleError_Mapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int32
	}{
		{"no data", apperror.ErrNoData, http.StatusNotFound, RecordNotFound},
		{"denied", apperror.ErrDenied, http.StatusForbidden, ActionDenied},
		{"invalid action", models.ErrInvalidAction, http.StatusBadRequest, InvalidAction},
		{"company missing", models.ErrCompanyMissing, http.StatusUnprocessableEntity, CompanyMissing},
		{"oa header missing", models.ErrOAHeaderMissing, http.StatusUnprocessableEntity, OAHeaderMissing},
		{"question missing", models.ErrQuestionMissing, http.StatusUnprocessableEntity, QuestionMissing},
		{"user name taken", models.ErrUserNameNotAvailable, http.StatusUnprocessableEntity, UserNameTaken},
		{"email taken", models.ErrEMailAddressTaken, http.StatusUnprocessableEntity, EMailAddressTaken},
		{"storage failure", errors.New("connection reset"), http.StatusInternalServerError, SystemError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, apiError := HandleError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, apiError.Code)
			assert.NotEmpty(t, apiError.Message)
		})
	}
}

func TestHandleError_Nil(t *testing.T) {
	status, apiError := HandleError(nil)
	assert.Equal(t, 0, status)
	assert.Equal(t, int32(0), apiError.Code)
	assert.Empty(t, apiError.Message)
}

func TestHandleError_NeverLeaksInternals(t *testing.T) {
	// wrapped store errors must reach the client as a generic message only
	_, apiError := HandleError(errors.New("mongo: topology closed at models.Create"))
	assert.Equal(t, "Server Problem", apiError.Message)
}
