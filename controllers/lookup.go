package controllers

import (
	"interview-prep/database"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListLookups returns all code/text pairs so clients can localize their forms
func ListLookups(c *gin.Context) {

	lookups, err := database.GetLookups()
	if err != nil {
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	c.JSON(http.StatusOK, lookups)
}
