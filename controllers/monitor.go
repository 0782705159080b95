package controllers

import (
	"interview-prep/environment"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// CountRequests returns the number of clients currently held in the registry
func CountRequests(c *gin.Context) {

	res := struct {
		Count int `json:"count"`
	}{environment.Env.Requests.Count()}

	c.JSON(http.StatusOK, res)
}

// DumpRequests prints the first n entries of the registry (diagnosis only)
func DumpRequests(c *gin.Context) {

	n, err := strconv.Atoi(c.Param("count"))
	if err != nil {
		n = 10
	}

	c.JSON(http.StatusOK, environment.Env.Requests.Dump(n))
}

// FlushRequests removes stale clients from the registry
// (also done periodically, this is for tests)
func FlushRequests(c *gin.Context) {
	environment.Env.Requests.Flush()
	c.Status(http.StatusNoContent)
}
