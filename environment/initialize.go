package environment

import (
	"interview-prep/analytics"
	"interview-prep/authorization"
	"interview-prep/client"
	"interview-prep/database"
	"interview-prep/models"
	"os"

	influxdb2 "github.com/influxdata/influxdb-client-go"
	"go.mongodb.org/mongo-driver/mongo"
)

// Environment is used for dependency-injection (package de-coupling)
type Environment struct {
	Tracker         *analytics.Tracker
	Requests        *client.Registry
	Credentials     *authorization.Credentials
	UserModel       models.UserModel
	ExperienceModel models.ExperienceModel
	OAQuestionModel models.OAQuestionModel
}

// newEnv operates as the constructor to initialize the collection references (private)
func newEnv(mongoClient *mongo.Client, influxClient *influxdb2.Client) *Environment {
	env := &Environment{}

	db := mongoClient.Database(os.Getenv("DB_NAME"))

	// request registry (page refresh detection)
	env.Requests = new(client.Registry)
	env.Requests.Initialize()

	// usage analytics; always create the object so no further checking
	// is needed in the controllers
	env.Tracker = new(analytics.Tracker)
	env.Tracker.SetConnections(influxClient)
	env.Tracker.VisitorAPI = database.InfluxAPI{
		WriteAPI: (*influxClient).WriteAPIBlocking(os.Getenv("ANALYTICS_ORG"), os.Getenv("ANALYTICS_VISITORS_BUCKET")),
		QueryAPI: (*influxClient).QueryAPI(os.Getenv("ANALYTICS_ORG")),
	}
	env.Tracker.SearchAPI = database.InfluxAPI{
		WriteAPI: (*influxClient).WriteAPIBlocking(os.Getenv("ANALYTICS_ORG"), os.Getenv("ANALYTICS_SEARCHES_BUCKET")),
		QueryAPI: (*influxClient).QueryAPI(os.Getenv("ANALYTICS_ORG")),
	}

	env.UserModel.Client = mongoClient
	env.UserModel.Collection = db.Collection("users")

	// inject user model function to the tracker after its initialization
	env.Tracker.GetUserName = env.UserModel.GetUserName

	env.Credentials = new(authorization.Credentials)
	env.Credentials.SetConnections(map[string]*mongo.Collection{
		"users": db.Collection("users"),
	})

	env.ExperienceModel.Client = mongoClient
	env.ExperienceModel.Collection = db.Collection("experiences")

	env.OAQuestionModel.Client = mongoClient
	env.OAQuestionModel.Collection = db.Collection("oaquestions")

	return env
}

// Env is the singleton registry
var Env *Environment

// InitializeModels injects the database connections to the models
// (do not confuse with package init)
func InitializeModels() {
	Env = newEnv(database.GetConnection(), database.GetInfluxConnection())
}
