package database

import (
	"context"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LookupType represents the Code's Domain (eg. difficulty, timeline)
type LookupType struct {
	ID     primitive.ObjectID `json:"-" bson:"_id"`
	Name   string             `json:"lookupType" bson:"codeType"`
	Values []LookupValue      `json:"values" bson:"values"`
}

// LookupValue represents an Item of the Code's Domain
type LookupValue struct {
	LookupValue string `json:"lookupValue" bson:"codeValue"`
	Disabled    bool   `json:"disabled" bson:"disabled"`
	Default     bool   `json:"default" bson:"default"`
	Text        string `json:"text" bson:"codeText"`
}

// internal loader of the code-map, used only by "OpenConnection"
// (handlers retrieve the data via the singleton)
func getLookupMap() ([]LookupType, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// get a collection to interact with (would be created as needed)
	collection := client.Database(os.Getenv("DB_NAME")).Collection("system")

	filter := bson.D{{Key: "codeType", Value: bson.D{{Key: "$exists", Value: "true"}}}}

	cursor, err := collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var lookupTypes []LookupType
	if err = cursor.All(ctx, &lookupTypes); err != nil {
		return nil, err
	}

	return lookupTypes, nil
}
