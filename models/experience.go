package models

import (
	"context"
	"interview-prep/apperror"
	"interview-prep/helpers"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AnonymousName replaces the submitter name of anonymous reports
const AnonymousName = "Anonymous"

// listing boundaries
const (
	defaultPageSize int64 = 12
	maxPageSize     int64 = 50
)

// Round describes a single interview round, kept in interview chronology
type Round struct {
	Name           string `json:"name" bson:"name"`
	Duration       string `json:"duration" bson:"duration"`
	Mode           string `json:"mode" bson:"mode"`
	CodingProblems int32  `json:"codingProblems" bson:"codingProblems"`
	Description    string `json:"description" bson:"description"`
}

// Experience is the "interface" used for client communication
type Experience struct {
	ID                primitive.ObjectID   `json:"id" bson:"_id"`
	SubmitterName     string               `json:"submitterName" bson:"submitterName"`
	SubmitterEMail    string               `json:"submitterEMail,omitempty" bson:"submitterEMail,omitempty"`
	SubmitterLinkedIn string               `json:"submitterLinkedIn,omitempty" bson:"submitterLinkedIn,omitempty"`
	SubmittedBy       *primitive.ObjectID  `json:"submittedBy,omitempty" bson:"submittedBy,omitempty"`
	Company           string               `json:"company" bson:"company" binding:"required"`
	RoleApplied       string               `json:"roleApplied" bson:"roleApplied"`
	Difficulty        string               `json:"difficulty" bson:"difficulty"`
	Mode              string               `json:"mode" bson:"mode"`
	ApplicationMode   string               `json:"applicationMode" bson:"applicationMode"`
	Timeline          string               `json:"timeline" bson:"timeline"`
	Salary            string               `json:"salary,omitempty" bson:"salary,omitempty"`
	Rounds            []Round              `json:"rounds" bson:"rounds"`
	PreparationTips   []string             `json:"preparationTips" bson:"preparationTips"`
	GeneralAdvice     []string             `json:"generalAdvice" bson:"generalAdvice"`
	Content           string               `json:"content" bson:"content"`
	Anonymous         bool                 `json:"anonymous" bson:"anonymous"`
	UpvoteCount       int32                `json:"upvoteCount" bson:"upvoteCount"`
	UpvotedBy         []primitive.ObjectID `json:"-" bson:"upvotedBy"`
	Approved          bool                 `json:"approved" bson:"approved"`
	CreatedTS         time.Time            `json:"createdTS" bson:"createdTS"`
}

// ExperienceSearch is passed as the public listing params
// (raw query values; normalization happens in the model)
type ExperienceSearch struct {
	Company     string
	RoleApplied string
	Difficulty  string
	Sort        string
	Page        string
	Limit       string
}

// ExperienceList is the paginated result of a public listing
type ExperienceList struct {
	Data       []Experience `json:"data"`
	Page       int64        `json:"page"`
	Limit      int64        `json:"limit"`
	TotalPages int64        `json:"totalPages"`
	TotalDocs  int64        `json:"totalDocs"`
}

// ExperienceModel provides the logic to the interface and access to the database
type ExperienceModel struct {
	Client     *mongo.Client
	Collection *mongo.Collection
}

// Validate checks given values and enforces the anonymization rule.
// userID is empty for unauthenticated submitters. This runs before anything
// is persisted and never touches the store.
func (m ExperienceModel) Validate(experience Experience, userID string) (*Experience, error) {

	cleaned := experience

	cleaned.Company = strings.TrimSpace(cleaned.Company)
	if cleaned.Company == "" {
		return nil, ErrCompanyMissing
	}

	if cleaned.Anonymous {
		// never keep the original identity, not even for logged-in submitters
		cleaned.SubmitterName = AnonymousName
		cleaned.SubmitterEMail = ""    // omitempty -> absent in the document
		cleaned.SubmitterLinkedIn = ""
		cleaned.SubmittedBy = nil
	} else {
		cleaned.SubmittedBy = nil
		if userID != "" {
			oid, err := primitive.ObjectIDFromHex(userID)
			if err != nil {
				return nil, ErrInvalidUser
			}
			cleaned.SubmittedBy = &oid
		}
	}

	return &cleaned, nil
}

// Create stores a new report; it always starts out pending
func (m ExperienceModel) Create(experience *Experience) (string, error) {

	// set "system-fields" - counters and arrays are present from the start,
	// so readers never need to patch missing fields
	experience.ID = primitive.NewObjectID()
	experience.CreatedTS = time.Now()
	experience.Approved = false
	experience.UpvoteCount = 0
	experience.UpvotedBy = []primitive.ObjectID{}
	if experience.Rounds == nil {
		experience.Rounds = []Round{}
	}
	if experience.PreparationTips == nil {
		experience.PreparationTips = []string{}
	}
	if experience.GeneralAdvice == nil {
		experience.GeneralAdvice = []string{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := m.Collection.InsertOne(ctx, experience)
	if err != nil {
		return "", helpers.WrapError(err, helpers.FuncName())
	}

	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// GetByID returns one report, pending or public
func (m ExperienceModel) GetByID(experienceID string) (*Experience, error) {

	id, err := primitive.ObjectIDFromHex(experienceID)
	if err != nil {
		return nil, apperror.ErrNoData
	}

	data := Experience{}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = m.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&data)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.ErrNoData
		}
		return nil, helpers.WrapError(err, helpers.FuncName())
	}

	return &data, nil
}

// ListAll returns every report including pending ones (the moderation queue)
func (m ExperienceModel) ListAll() ([]Experience, error) {

	opts := options.Find().SetSort(bson.D{{Key: "createdTS", Value: -1}})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := m.Collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, helpers.WrapError(err, helpers.FuncName())
	}

	var experiences []Experience

	err = cursor.All(ctx, &experiences)
	if err != nil {
		return nil, helpers.WrapError(err, helpers.FuncName())
	}

	// check for empty result set (no error raised by find)
	if experiences == nil {
		return nil, apperror.ErrNoData
	}

	return experiences, nil
}

// SearchApproved lists public reports only - filtered, sorted and paginated
func (m ExperienceModel) SearchApproved(search *ExperienceSearch) (*ExperienceList, error) {

	filter := searchFilter(search)
	limit := pageSize(search.Limit)
	page := pageNumber(search.Page)

	opts := options.Find().
		SetSort(searchSort(search.Sort)).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := m.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, helpers.WrapError(err, helpers.FuncName())
	}

	var experiences []Experience

	err = cursor.All(ctx, &experiences)
	if err != nil {
		return nil, helpers.WrapError(err, helpers.FuncName())
	}

	// the count runs over the same predicate, independent of the page window
	totalDocs, err := m.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, helpers.WrapError(err, helpers.FuncName())
	}

	// a page beyond the last one is not an error, just empty
	if experiences == nil {
		experiences = []Experience{}
	}

	return &ExperienceList{
		Data:       experiences,
		Page:       page,
		Limit:      limit,
		TotalPages: int64(math.Ceil(float64(totalDocs) / float64(limit))),
		TotalDocs:  totalDocs,
	}, nil
}

// searchFilter builds the listing predicate; approved is always enforced,
// so no filter combination can surface a pending report
func searchFilter(search *ExperienceSearch) bson.D {

	filter := bson.D{{Key: "approved", Value: true}}

	if search.Company != "" {
		// exact match, case-insensitive
		filter = append(filter, bson.E{Key: "company", Value: primitive.Regex{
			Pattern: "^" + regexp.QuoteMeta(search.Company) + "$", Options: "i"}})
	}
	if search.RoleApplied != "" {
		// LIKE %role% (case-insensitive)
		filter = append(filter, bson.E{Key: "roleApplied", Value: primitive.Regex{
			Pattern: regexp.QuoteMeta(search.RoleApplied), Options: "i"}})
	}
	if search.Difficulty != "" {
		filter = append(filter, bson.E{Key: "difficulty", Value: primitive.Regex{
			Pattern: regexp.QuoteMeta(search.Difficulty), Options: "i"}})
	}

	return filter
}

// searchSort maps the sort key; anything unknown falls back to newest-first
func searchSort(sort string) bson.D {
	if sort == "upvotes" {
		return bson.D{{Key: "upvoteCount", Value: -1}}
	}
	return bson.D{{Key: "createdTS", Value: -1}}
}

// pageSize clamps the requested limit to [1, maxPageSize]
func pageSize(limit string) int64 {
	size, err := strconv.ParseInt(limit, 10, 64)
	if err != nil {
		size = defaultPageSize
	}
	if size < 1 {
		size = 1
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return size
}

// pageNumber clamps the requested page to a minimum of 1
func pageNumber(page string) int64 {
	p, err := strconv.ParseInt(page, 10, 64)
	if err != nil || p < 1 {
		return 1
	}
	return p
}
