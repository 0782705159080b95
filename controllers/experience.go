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

// SubmitExperience files a new interview report for review.
// Open to visitors; a logged-in, non-anonymous submitter gets attributed.
func SubmitExperience(c *gin.Context) {

	var (
		err      error
		data     models.Experience
		apiError ErrorResponse
	)

	// error maybe ignored here - anonymous submissions are fine
	userID, _ := authentication.Authenticate(c.Request)

	// use "shouldBind" not all fields are required in this context
	if err = c.ShouldBindJSON(&data); err != nil {
		apiError.Code = InvalidJSON
		apiError.Message = apiError.String(apiError.Code)
		c.JSON(http.StatusUnprocessableEntity, apiError)
		return
	}

	// validate request & enforce the anonymization rule (before anything is stored)
	experience, err := environment.Env.ExperienceModel.Validate(data, userID)
	if err != nil {
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	_, err = environment.Env.ExperienceModel.Create(experience)
	if err != nil {
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	// the report awaits moderation now; the id stays internal
	c.JSON(http.StatusCreated, Accepted{"accepted"})
}

// ListExperiencesPublic lists approved reports, filtered, sorted and paginated
// format => http://localhost:3000/experiences/public?company=acme&role=intern&difficulty=medium&sort=upvotes&page=2&limit=12
func ListExperiencesPublic(c *gin.Context) {

	search := new(models.ExperienceSearch)
	search.Company = c.Query("company")
	search.RoleApplied = c.Query("role")
	search.Difficulty = c.Query("difficulty")
	search.Sort = c.Query("sort")
	search.Page = c.Query("page")
	search.Limit = c.Query("limit")

	list, err := environment.Env.ExperienceModel.SearchApproved(search)
	if err != nil {
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	// log the search terms (fire & forget)
	environment.Env.Tracker.SaveSearch(search)

	c.JSON(http.StatusOK, list)
}

// GetExperiencePublic returns one report
func GetExperiencePublic(c *gin.Context) {

	var id = c.Param("id")

	// visitors may read without a token
	userID, _ := authentication.Authenticate(c.Request)

	data, err := environment.Env.ExperienceModel.GetByID(id)
	if err != nil {
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	// count the page view unless it's just a refresh
	if environment.Env.Requests.Continue(c.ClientIP(), id) {
		environment.Env.Tracker.SaveVisit("experience", id, userID)
	}

	c.JSON(http.StatusOK, data)
}

// ListExperiencesAdmin returns the complete collection including pending
// reports (the moderation queue)
func ListExperiencesAdmin(c *gin.Context) {

	userID, err := authentication.Authenticate(c.Request)
	if err != nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	// admin only
	credentials := environment.Env.Credentials.GetCredentials(helpers.ObjectID(userID))
	if !credentials.IsAdmin() {
		status, apiError := HandleError(apperror.ErrDenied)
		c.JSON(status, apiError)
		return
	}

	experiences, err := environment.Env.ExperienceModel.ListAll()
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

	c.JSON(http.StatusOK, experiences)
}

// ModerateExperience approves or rejects a pending report
// format => POST http://localhost:3000/admin/experiences/:id/:action
func ModerateExperience(c *gin.Context) {

	userID, err := authentication.Authenticate(c.Request)
	if err != nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	var (
		id     = c.Param("id")
		action = c.Param("action")
	)

	// the model re-checks the role itself
	credentials := environment.Env.Credentials.GetCredentials(helpers.ObjectID(userID))

	err = environment.Env.ExperienceModel.Decide(id, action, credentials)
	if err != nil {
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	msg := "experience rejected and deleted"
	if action == models.ActionApprove {
		msg = "experience approved"
	}

	c.JSON(http.StatusOK, Decided{msg})
}
