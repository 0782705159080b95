package main

import (
	"fmt"
	"interview-prep/authentication"
	"interview-prep/controllers"
	"interview-prep/middleware"
	"os"
)

func handleRequests() {
	router.Use(middleware.CORSMiddleware())

	router.GET("/lookups", controllers.ListLookups)

	// auth-related
	router.POST("/login", controllers.Login)
	router.POST("/logout", authentication.TokenAuthMiddleware(), controllers.Logout)
	router.POST("/refresh", controllers.Refresh) // no middleware, the at may already be expired
	router.POST("/register", controllers.Register)

	router.POST("/user/exists", controllers.UserExists)
	router.POST("/email/exists", controllers.EMailExists)

	// user-mgmt
	router.GET("/user", authentication.TokenAuthMiddleware(), controllers.GetUser)
	router.POST("/user/changePass", authentication.TokenAuthMiddleware(), controllers.ChangePassword)
	router.POST("/user/verifyPass", authentication.TokenAuthMiddleware(), controllers.VerifyPassword)

	// interview experiences
	// GET has no BODY (Go/Gin & Postman do support that, Angular does not) - hence the query params
	router.POST("/experiences", controllers.SubmitExperience) // login optional (anonymous submissions)
	router.GET("/experiences/public", controllers.ListExperiencesPublic)
	router.GET("/experiences/public/:id", controllers.GetExperiencePublic)
	// statistics
	router.GET("/experiences/public/:id/visits", controllers.GetExperienceVisits) // visits since last 7 days "hot"
	router.GET("/experiences/public/:id/visitors", authentication.TokenAuthMiddleware(), controllers.ListExperienceVisitors)

	// voting
	router.POST("/experiences/:id/vote", authentication.TokenAuthMiddleware(), controllers.ToggleUpvote)

	// online-assessment questions
	router.POST("/oa/bulk", controllers.SubmitOAQuestions) // login optional here, too
	router.GET("/oa/public", controllers.ListOAQuestionsPublic)

	// moderation (admins only, enforced in the models)
	router.GET("/admin/experiences", authentication.TokenAuthMiddleware(), controllers.ListExperiencesAdmin)
	router.POST("/admin/experiences/:id/:action", authentication.TokenAuthMiddleware(), controllers.ModerateExperience)
	router.GET("/admin/oa", authentication.TokenAuthMiddleware(), controllers.ListOAQuestionsAdmin)
	router.POST("/admin/oa/:id/:action", authentication.TokenAuthMiddleware(), controllers.ModerateOAQuestions)

	// system tools
	router.GET("/monitor/requests/count", authentication.TokenAuthMiddleware(), controllers.CountRequests)
	router.GET("/monitor/requests/dump/:count", authentication.TokenAuthMiddleware(), controllers.DumpRequests)
	router.POST("/monitor/requests/flush", authentication.TokenAuthMiddleware(), controllers.FlushRequests)

	switch os.Getenv("APP_ENV") {
	case "DEV":
		router.Run(":" + os.Getenv("API_PORT"))
	case "PRD":
		router.RunTLS(":"+os.Getenv("API_PORT"), os.Getenv("APP_CERTFILE"), os.Getenv("APP_KEYFILE"))
	default:
		panic(fmt.Errorf("APP_ENV must not set"))
	}
}
