package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestValidate_AnonymousStripsIdentity(t *testing.T) {
	model := ExperienceModel{}

	given := Experience{
		Company:           "Acme",
		SubmitterName:     "Bob",
		SubmitterEMail:    "b@x.com",
		SubmitterLinkedIn: "linkedin.com/in/bob",
		Anonymous:         true,
	}

	// even a logged-in submitter stays unlinked when anonymous
	cleaned, err := model.Validate(given, primitive.NewObjectID().Hex())
	require.NoError(t, err)

	assert.Equal(t, AnonymousName, cleaned.SubmitterName)
	assert.Empty(t, cleaned.SubmitterEMail)
	assert.Empty(t, cleaned.SubmitterLinkedIn)
	assert.Nil(t, cleaned.SubmittedBy)
}

func TestValidate_NamedSubmitterGetsAttributed(t *testing.T) {
	model := ExperienceModel{}
	userID := primitive.NewObjectID()

	given := Experience{
		Company:       "Acme",
		SubmitterName: "Bob",
		Anonymous:     false,
	}

	cleaned, err := model.Validate(given, userID.Hex())
	require.NoError(t, err)

	assert.Equal(t, "Bob", cleaned.SubmitterName)
	require.NotNil(t, cleaned.SubmittedBy)
	assert.Equal(t, userID, *cleaned.SubmittedBy)
}

func TestValidate_VisitorSubmissionStaysUnlinked(t *testing.T) {
	model := ExperienceModel{}

	given := Experience{
		Company:       "Acme",
		SubmitterName: "Bob",
	}

	// no token, no account reference
	cleaned, err := model.Validate(given, "")
	require.NoError(t, err)
	assert.Nil(t, cleaned.SubmittedBy)
}

func TestValidate_CompanyRequired(t *testing.T) {
	model := ExperienceModel{}

	_, err := model.Validate(Experience{Company: "   "}, "")
	assert.Equal(t, ErrCompanyMissing, err)
}

func TestValidate_DoesNotMutateInput(t *testing.T) {
	model := ExperienceModel{}

	given := Experience{
		Company:        "Acme",
		SubmitterName:  "Bob",
		SubmitterEMail: "b@x.com",
		Anonymous:      true,
	}

	_, err := model.Validate(given, "")
	require.NoError(t, err)

	// the caller's struct is untouched
	assert.Equal(t, "Bob", given.SubmitterName)
	assert.Equal(t, "b@x.com", given.SubmitterEMail)
}

func TestSearchFilter_AlwaysApprovedOnly(t *testing.T) {
	filter := searchFilter(&ExperienceSearch{})

	require.Len(t, filter, 1)
	assert.Equal(t, bson.E{Key: "approved", Value: true}, filter[0])
}

func TestSearchFilter_CompanyExactCaseInsensitive(t *testing.T) {
	filter := searchFilter(&ExperienceSearch{Company: "Acme"})

	require.Len(t, filter, 2)
	rgx, ok := filter[1].Value.(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, "^Acme$", rgx.Pattern)
	assert.Equal(t, "i", rgx.Options)
}

func TestSearchFilter_RoleSubstring(t *testing.T) {
	filter := searchFilter(&ExperienceSearch{RoleApplied: "intern"})

	require.Len(t, filter, 2)
	rgx, ok := filter[1].Value.(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, "intern", rgx.Pattern)
	assert.Equal(t, "i", rgx.Options)
}

func TestSearchFilter_QuotesRegexMetaChars(t *testing.T) {
	// user input must never act as a regex of its own
	filter := searchFilter(&ExperienceSearch{Company: "C++ Corp. (EU)"})

	rgx := filter[1].Value.(primitive.Regex)
	assert.Equal(t, `^C\+\+ Corp\. \(EU\)$`, rgx.Pattern)
}

func TestSearchSort(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "upvoteCount", Value: -1}}, searchSort("upvotes"))
	assert.Equal(t, bson.D{{Key: "createdTS", Value: -1}}, searchSort("latest"))
	// unknown keys fall back to newest-first
	assert.Equal(t, bson.D{{Key: "createdTS", Value: -1}}, searchSort("whatever"))
	assert.Equal(t, bson.D{{Key: "createdTS", Value: -1}}, searchSort(""))
}

func TestPageSize(t *testing.T) {
	assert.Equal(t, int64(12), pageSize(""))        // default
	assert.Equal(t, int64(12), pageSize("lots"))    // unparseable
	assert.Equal(t, int64(25), pageSize("25"))      // within range
	assert.Equal(t, int64(50), pageSize("100"))     // clamped to max
	assert.Equal(t, int64(1), pageSize("0"))        // clamped to min
	assert.Equal(t, int64(1), pageSize("-3"))       // clamped to min
}

func TestPageNumber(t *testing.T) {
	assert.Equal(t, int64(1), pageNumber(""))
	assert.Equal(t, int64(1), pageNumber("first"))
	assert.Equal(t, int64(1), pageNumber("0"))
	assert.Equal(t, int64(1), pageNumber("-1"))
	assert.Equal(t, int64(7), pageNumber("7"))
}
