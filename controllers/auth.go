package controllers

import (
	"interview-prep/authentication"
	"interview-prep/environment"
	"interview-prep/helpers"
	"interview-prep/models"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// UserExists maybe used to validate new accounts while typing into the form
func UserExists(c *gin.Context) {

	var apiError ErrorResponse

	// anonymous struct used to receive input (POST BODY)
	data := struct {
		LoginName string `json:"loginName" binding:"required"`
	}{}

	// use 'shouldBind' so we can send customized messages
	if err := c.ShouldBindJSON(&data); err != nil {
		apiError.Code = InvalidJSON
		apiError.Message = apiError.String(apiError.Code)
		c.JSON(http.StatusUnprocessableEntity, apiError)
		return
	}

	exists := environment.Env.UserModel.UserExists(data.LoginName)

	// wrap response into an object
	res := struct {
		Exists bool `json:"exists"`
	}{exists}

	c.JSON(http.StatusOK, res)
}

// EMailExists maybe used to validate new accounts while typing into the form
func EMailExists(c *gin.Context) {

	var apiError ErrorResponse

	data := struct {
		EMailAddress string `json:"eMailAddress" binding:"required"`
	}{}

	if err := c.ShouldBindJSON(&data); err != nil {
		apiError.Code = InvalidJSON
		apiError.Message = apiError.String(apiError.Code)
		c.JSON(http.StatusUnprocessableEntity, apiError)
		return
	}

	exists := environment.Env.UserModel.EMailAddressExists(data.EMailAddress)

	res := struct {
		Exists bool `json:"exists"`
	}{exists}

	c.JSON(http.StatusOK, res)
}

// Register a new User
func Register(c *gin.Context) {

	var (
		err      error
		data     models.User
		apiError ErrorResponse
	)

	if err = c.ShouldBindJSON(&data); err != nil {
		apiError.Code = InvalidJSON
		apiError.Message = apiError.String(apiError.Code)
		c.JSON(http.StatusUnprocessableEntity, apiError)
		return
	}

	// only the fields needed for this request are checked, the rest is
	// up to the client's form
	data.LoginName = strings.TrimSpace(data.LoginName)
	data.Password = strings.TrimSpace(data.Password)
	data.EMailAddress = strings.TrimSpace(data.EMailAddress)

	if len(data.LoginName) < 3 || len(data.Password) < 8 || len(data.EMailAddress) == 0 {
		apiError.Code = InvalidRequest
		apiError.Message = apiError.String(apiError.Code)
		c.JSON(http.StatusUnprocessableEntity, apiError)
		return
	}

	// this also validates the user name and the eMail-address
	ID, err := environment.Env.UserModel.CreateUser(data)
	if err != nil {
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	c.JSON(http.StatusOK, Created{ID})
}

// Login a user
func Login(c *gin.Context) {

	var (
		err       error
		givenUser models.User
		dbUser    *models.User
		apiError  ErrorResponse
	)

	// use std struct
	if err = c.ShouldBindJSON(&givenUser); err != nil {
		apiError.Code = InvalidJSON
		apiError.Message = apiError.String(apiError.Code)
		c.JSON(http.StatusUnprocessableEntity, apiError)
		return
	}

	// check for required fields
	givenUser.LoginName = strings.TrimSpace(givenUser.LoginName)
	givenUser.Password = strings.TrimSpace(givenUser.Password)
	if len(givenUser.LoginName) == 0 || len(givenUser.Password) == 0 {
		apiError.Code = InvalidRequest
		apiError.Message = apiError.String(apiError.Code)
		c.JSON(http.StatusUnauthorized, apiError)
		return
	}

	dbUser, err = environment.Env.UserModel.GetUserByName(givenUser.LoginName)
	if err != nil {
		// user does not exist
		if err == models.ErrInvalidUser {
			apiError.Code = InvalidLogin
			apiError.Message = apiError.String(apiError.Code)
			c.JSON(http.StatusUnauthorized, apiError)
			return
		}
		// "real" error
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	// plain password from the login vs. hash from the DB
	granted := environment.Env.UserModel.CheckPassword(givenUser.Password, *dbUser)
	if !granted {
		apiError.Code = InvalidLogin
		apiError.Message = apiError.String(apiError.Code)
		c.JSON(http.StatusUnauthorized, apiError)
		return
	}

	// create, register & save pair of AT/RT
	err = authentication.CreateTokens(c, dbUser.ID.Hex())
	if err != nil {
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	environment.Env.UserModel.SetLastSeen(dbUser.ID)

	// do not send the password back
	dbUser.Password = ""

	c.JSON(http.StatusOK, &dbUser)
}

// Logout removes the access token from the registry
func Logout(c *gin.Context) {

	// the client must be able to clear its state in any case,
	// so this endpoint never reports an error

	au, _ := authentication.ExtractTokenMetadata(authentication.AT, c.Request)
	if au != nil {
		// in case of error the token might be expired
		_, _ = authentication.DeleteAuth(au.TokenUUID)
	}

	// "hard log-out": also drop the RT and the cookie (logs out all devices)
	au, _ = authentication.ExtractTokenMetadata(authentication.RT, c.Request)
	if au != nil {
		_, _ = authentication.DeleteAuth(au.TokenUUID)
	}

	_ = helpers.DelCookie(c, os.Getenv("JWTCK_NAME"))

	c.Status(http.StatusOK)
}

// Refresh issues a new token pair as long as a valid RT exists
func Refresh(c *gin.Context) {

	var apiError ErrorResponse

	au, err := authentication.ExtractTokenMetadata(authentication.RT, c.Request)
	if err != nil {
		_, apiError = HandleError(err)
		c.JSON(http.StatusUnauthorized, apiError)
		return
	}

	// is the RT still valid? (the middleware does that for ATs)
	err = authentication.TokenValid(authentication.RT, c.Request)
	if err != nil {
		_, apiError = HandleError(err)
		c.JSON(http.StatusUnauthorized, apiError)
		return
	}

	// userID for the new token pair
	userID, err := authentication.FetchAuth(au)
	if err != nil {
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	dbUser, err := environment.Env.UserModel.GetUserByID(userID)
	if err != nil {
		if err == models.ErrInvalidUser {
			status, apiError := HandleError(err)
			c.JSON(status, apiError)
			return
		}
		// make client say "please try again later"
		c.Status(http.StatusInternalServerError)
		return
	}

	// if too many RTs (clients) are in circulation for this user,
	// all of them are removed, otherwise just the current one
	deleted, err := authentication.DeleteAuths(authentication.RT, userID, au.TokenUUID)
	if err != nil || deleted == 0 {
		apiError.Code = InvalidRequest
		apiError.Message = apiError.String(apiError.Code)
		c.JSON(http.StatusUnprocessableEntity, apiError)
		return
	}

	// create, register & save pair of AT/RT
	err = authentication.CreateTokens(c, userID)
	if err != nil {
		_, apiError = HandleError(err)
		c.JSON(http.StatusUnauthorized, apiError)
		return
	}

	environment.Env.UserModel.SetLastSeen(dbUser.ID)

	// do not send the password back
	dbUser.Password = ""

	c.JSON(http.StatusOK, &dbUser)
}
