package models

import (
	"context"
	"interview-prep/apperror"
	"interview-prep/authorization"
	"interview-prep/helpers"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OAQuestion is a single online-assessment question
type OAQuestion struct {
	Question    string   `json:"question" bson:"question"`
	Options     []string `json:"options" bson:"options"`
	Answer      string   `json:"answer" bson:"answer"`
	Explanation string   `json:"explanation" bson:"explanation"`
}

// OAQuestionSet groups the questions of one assessment
// same anonymization and moderation rules as Experience
type OAQuestionSet struct {
	ID          primitive.ObjectID  `json:"id" bson:"_id"`
	Company     string              `json:"company" bson:"company" binding:"required"`
	Role        string              `json:"role" bson:"role"`
	Year        string              `json:"year" bson:"year"`
	Anonymous   bool                `json:"anonymous" bson:"anonymous"`
	SubmittedBy *primitive.ObjectID `json:"submittedBy,omitempty" bson:"submittedBy,omitempty"`
	Questions   []OAQuestion        `json:"questions" bson:"questions"`
	Approved    bool                `json:"approved" bson:"approved"`
	CreatedTS   time.Time           `json:"createdTS" bson:"createdTS"`
}

// OAQuestionModel provides the logic to the interface and access to the database
type OAQuestionModel struct {
	Client     *mongo.Client
	Collection *mongo.Collection
}

// Validate checks given values and enforces the anonymization rule
// (no database access here)
func (m OAQuestionModel) Validate(set OAQuestionSet, userID string) (*OAQuestionSet, error) {

	cleaned := set

	cleaned.Company = strings.TrimSpace(cleaned.Company)
	cleaned.Role = strings.TrimSpace(cleaned.Role)
	cleaned.Year = strings.TrimSpace(cleaned.Year)
	if cleaned.Company == "" || cleaned.Role == "" || cleaned.Year == "" {
		return nil, ErrOAHeaderMissing
	}

	if len(cleaned.Questions) == 0 {
		return nil, ErrQuestionMissing
	}
	for _, q := range cleaned.Questions {
		if strings.TrimSpace(q.Question) == "" {
			return nil, ErrQuestionMissing
		}
	}

	cleaned.SubmittedBy = nil
	if !cleaned.Anonymous && userID != "" {
		oid, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			return nil, ErrInvalidUser
		}
		cleaned.SubmittedBy = &oid
	}

	return &cleaned, nil
}

// Create stores a new question set; it always starts out pending
func (m OAQuestionModel) Create(set *OAQuestionSet) (string, error) {

	set.ID = primitive.NewObjectID()
	set.CreatedTS = time.Now()
	set.Approved = false

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := m.Collection.InsertOne(ctx, set)
	if err != nil {
		return "", helpers.WrapError(err, helpers.FuncName())
	}

	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// ListApproved returns public question sets, optionally filtered by company
// (exact match, case-insensitive), newest first
func (m OAQuestionModel) ListApproved(company string) ([]OAQuestionSet, error) {

	filter := bson.D{{Key: "approved", Value: true}}
	if company != "" {
		filter = append(filter, bson.E{Key: "company", Value: primitive.Regex{
			Pattern: "^" + regexp.QuoteMeta(company) + "$", Options: "i"}})
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdTS", Value: -1}})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := m.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, helpers.WrapError(err, helpers.FuncName())
	}

	var sets []OAQuestionSet

	err = cursor.All(ctx, &sets)
	if err != nil {
		return nil, helpers.WrapError(err, helpers.FuncName())
	}

	if sets == nil {
		return nil, apperror.ErrNoData
	}

	return sets, nil
}

// ListAll returns every question set including pending ones (moderation queue)
func (m OAQuestionModel) ListAll() ([]OAQuestionSet, error) {

	opts := options.Find().SetSort(bson.D{{Key: "createdTS", Value: -1}})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := m.Collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, helpers.WrapError(err, helpers.FuncName())
	}

	var sets []OAQuestionSet

	err = cursor.All(ctx, &sets)
	if err != nil {
		return nil, helpers.WrapError(err, helpers.FuncName())
	}

	if sets == nil {
		return nil, apperror.ErrNoData
	}

	return sets, nil
}

// Decide approves or rejects a pending question set; same contract as the
// experience gate (admin-only, idempotent approve, destructive reject)
func (m OAQuestionModel) Decide(setID string, action string, credentials *authorization.Credentials) error {

	if !credentials.IsAdmin() {
		return apperror.ErrDenied
	}

	if action != ActionApprove && action != ActionReject {
		return ErrInvalidAction
	}

	id, err := primitive.ObjectIDFromHex(setID)
	if err != nil {
		return apperror.ErrNoData
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if action == ActionApprove {
		res, err := m.Collection.UpdateOne(ctx, bson.M{"_id": id},
			bson.D{{Key: "$set", Value: bson.D{{Key: "approved", Value: true}}}})
		if err != nil {
			return helpers.WrapError(err, helpers.FuncName())
		}
		if res.MatchedCount == 0 {
			return apperror.ErrNoData
		}
		return nil
	}

	res, err := m.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return helpers.WrapError(err, helpers.FuncName())
	}
	if res.DeletedCount == 0 {
		return apperror.ErrNoData
	}

	return nil
}
