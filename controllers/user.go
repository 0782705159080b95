package controllers

import (
	"interview-prep/authentication"
	"interview-prep/environment"
	"interview-prep/helpers"
	"interview-prep/models"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// GetUser returns the profile of the authenticated user
func GetUser(c *gin.Context) {

	userID, err := authentication.Authenticate(c.Request)
	if err != nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	data, err := environment.Env.UserModel.GetUserByID(userID)
	if err != nil {
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	// never send the hash to anyone
	data.Password = ""

	c.JSON(http.StatusOK, data)
}

// VerifyPassword checks the current password, eg. before changing sensitive data
func VerifyPassword(c *gin.Context) {

	var apiError ErrorResponse

	userID, err := authentication.Authenticate(c.Request)
	if err != nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	data := struct {
		Password string `json:"password" binding:"required"`
	}{}

	if err := c.ShouldBindJSON(&data); err != nil {
		apiError.Code = InvalidJSON
		apiError.Message = apiError.String(apiError.Code)
		c.JSON(http.StatusUnprocessableEntity, apiError)
		return
	}

	dbUser, err := environment.Env.UserModel.GetUserByID(userID)
	if err != nil {
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	granted := environment.Env.UserModel.CheckPassword(data.Password, *dbUser)

	res := struct {
		Granted bool `json:"granted"`
	}{granted}

	c.JSON(http.StatusOK, res)
}

// ChangePassword sets a new password for the authenticated user
func ChangePassword(c *gin.Context) {

	var apiError ErrorResponse

	userID, err := authentication.Authenticate(c.Request)
	if err != nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	data := struct {
		Password string `json:"password" binding:"required"`
	}{}

	if err := c.ShouldBindJSON(&data); err != nil {
		apiError.Code = InvalidJSON
		apiError.Message = apiError.String(apiError.Code)
		c.JSON(http.StatusUnprocessableEntity, apiError)
		return
	}

	data.Password = strings.TrimSpace(data.Password)
	if len(data.Password) < 8 {
		status, apiError := HandleError(models.ErrInvalidPassword)
		c.JSON(status, apiError)
		return
	}

	err = environment.Env.UserModel.SetPassword(helpers.ObjectID(userID), data.Password)
	if err != nil {
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	c.Status(http.StatusNoContent)
}
