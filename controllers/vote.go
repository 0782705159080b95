package controllers

import (
	"interview-prep/authentication"
	"interview-prep/environment"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ToggleUpvote adds or revokes the caller's upvote on a report.
// No anonymous voting - the voter is always read from the token.
// format => POST http://localhost:3000/experiences/:id/vote
func ToggleUpvote(c *gin.Context) {

	// for enhanced security, read user from token
	userID, err := authentication.Authenticate(c.Request)
	if err != nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	var id = c.Param("id")

	state, err := environment.Env.ExperienceModel.ToggleUpvote(id, userID)
	if err != nil {
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	c.JSON(http.StatusOK, state)
}
