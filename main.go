package main

import (
	"fmt"
	"interview-prep/authentication"
	"interview-prep/database"
	"interview-prep/environment"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	router = gin.Default()
)

// runs BEFORE main, but the order of the package inits is undefined!
func init() {
	// Load Config
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
}

func main() {
	// Connect to main database here (mongoDB)
	err := database.OpenConnection()
	if err != nil {
		log.Fatal(err)
	}
	defer database.CloseConnection()

	// connect to JWT Store (redis)
	err = authentication.OpenConnection()
	if err != nil {
		log.Fatal(err)
	}
	defer authentication.CloseConnection()

	// connect to Analysis-DB (influxDB)
	err = database.OpenInfluxConnection()
	if err != nil {
		log.Fatal(err)
	}
	defer database.CloseInfluxConnection()

	// Initialize the Models
	environment.InitializeModels()

	fmt.Println("Interview-Prep API running...")
	handleRequests()
}
