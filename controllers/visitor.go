package controllers

import (
	"interview-prep/environment"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// startDT reads the period start from the query string; default is one week back
func startDT(c *gin.Context) time.Time {

	dt, err := time.Parse(time.RFC3339, c.Query("startDT"))
	if err != nil {
		return time.Now().AddDate(0, 0, -7)
	}

	return dt
}

// GetExperienceVisits returns the visit count of an experience since startDT
func GetExperienceVisits(c *gin.Context) {

	visits, err := environment.Env.Tracker.GetVisits("experience", c.Param("id"), startDT(c))
	if err != nil {
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	res := struct {
		Visits int64 `json:"visits"`
	}{visits}

	c.JSON(http.StatusOK, res)
}

// ListExperienceVisitors returns the most recent (named) visitors of an experience
func ListExperienceVisitors(c *gin.Context) {

	visitors, err := environment.Env.Tracker.ListVisitors(c.Param("id"), startDT(c))
	if err != nil {
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	c.JSON(http.StatusOK, visitors)
}
