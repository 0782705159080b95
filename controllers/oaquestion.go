package controllers

import (
	"interview-prep/apperror"
	"interview-prep/authentication"
	"interview-prep/environment"
	"interview-prep/helpers"
	"interview-prep/models"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SubmitOAQuestions files a set of online-assessment questions for review
// (the client sends all questions of one assessment in a single request)
func SubmitOAQuestions(c *gin.Context) {

	var (
		err      error
		data     models.OAQuestionSet
		apiError ErrorResponse
	)

	// anonymous submissions are fine
	userID, _ := authentication.Authenticate(c.Request)

	if err = c.ShouldBindJSON(&data); err != nil {
		apiError.Code = InvalidJSON
		apiError.Message = apiError.String(apiError.Code)
		c.JSON(http.StatusUnprocessableEntity, apiError)
		return
	}

	set, err := environment.Env.OAQuestionModel.Validate(data, userID)
	if err != nil {
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	_, err = environment.Env.OAQuestionModel.Create(set)
	if err != nil {
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	c.JSON(http.StatusCreated, Accepted{"accepted"})
}

// ListOAQuestionsPublic lists approved question sets
// format => http://localhost:3000/oa/public?company=acme
func ListOAQuestionsPublic(c *gin.Context) {

	sets, err := environment.Env.OAQuestionModel.ListApproved(c.Query("company"))
	if err != nil {
		// nothing found (not an error to the client)
		if err == apperror.ErrNoData {
			c.Status(http.StatusNoContent)
			return
		}
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	c.JSON(http.StatusOK, sets)
}

// ListOAQuestionsAdmin returns all question sets including pending ones
func ListOAQuestionsAdmin(c *gin.Context) {

	userID, err := authentication.Authenticate(c.Request)
	if err != nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	credentials := environment.Env.Credentials.GetCredentials(helpers.ObjectID(userID))
	if !credentials.IsAdmin() {
		status, apiError := HandleError(apperror.ErrDenied)
		c.JSON(status, apiError)
		return
	}

	sets, err := environment.Env.OAQuestionModel.ListAll()
	if err != nil {
		if err == apperror.ErrNoData {
			c.Status(http.StatusNoContent)
			return
		}
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	c.JSON(http.StatusOK, sets)
}

// ModerateOAQuestions approves or rejects a pending question set
func ModerateOAQuestions(c *gin.Context) {

	userID, err := authentication.Authenticate(c.Request)
	if err != nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	var (
		id     = c.Param("id")
		action = c.Param("action")
	)

	credentials := environment.Env.Credentials.GetCredentials(helpers.ObjectID(userID))

	err = environment.Env.OAQuestionModel.Decide(id, action, credentials)
	if err != nil {
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	msg := "question set rejected and deleted"
	if action == models.ActionApprove {
		msg = "question set approved"
	}

	c.JSON(http.StatusOK, Decided{msg})
}
