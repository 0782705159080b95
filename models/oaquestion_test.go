package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestOAValidate_HeaderRequired(t *testing.T) {
	model := OAQuestionModel{}

	given := OAQuestionSet{
		Company:   "Acme",
		Role:      "SWE Intern",
		Questions: []OAQuestion{{Question: "Reverse a list"}},
	}

	// year missing
	_, err := model.Validate(given, "")
	assert.Equal(t, ErrOAHeaderMissing, err)
}

func TestOAValidate_EveryEntryNeedsAQuestion(t *testing.T) {
	model := OAQuestionModel{}

	given := OAQuestionSet{
		Company: "Acme",
		Role:    "SWE Intern",
		Year:    "2025",
		Questions: []OAQuestion{
			{Question: "Reverse a list"},
			{Question: "   "},
		},
	}

	_, err := model.Validate(given, "")
	assert.Equal(t, ErrQuestionMissing, err)

	given.Questions = nil
	_, err = model.Validate(given, "")
	assert.Equal(t, ErrQuestionMissing, err)
}

func TestOAValidate_Anonymization(t *testing.T) {
	model := OAQuestionModel{}
	userID := primitive.NewObjectID()

	given := OAQuestionSet{
		Company:   "Acme",
		Role:      "SWE Intern",
		Year:      "2025",
		Anonymous: true,
		Questions: []OAQuestion{{Question: "Reverse a list"}},
	}

	cleaned, err := model.Validate(given, userID.Hex())
	require.NoError(t, err)
	assert.Nil(t, cleaned.SubmittedBy)

	given.Anonymous = false
	cleaned, err = model.Validate(given, userID.Hex())
	require.NoError(t, err)
	require.NotNil(t, cleaned.SubmittedBy)
	assert.Equal(t, userID, *cleaned.SubmittedBy)
}

func TestOAValidate_TrimsHeaderFields(t *testing.T) {
	model := OAQuestionModel{}

	given := OAQuestionSet{
		Company:   "  Acme  ",
		Role:      " SWE Intern ",
		Year:      " 2025 ",
		Questions: []OAQuestion{{Question: "Reverse a list"}},
	}

	cleaned, err := model.Validate(given, "")
	require.NoError(t, err)
	assert.Equal(t, "Acme", cleaned.Company)
	assert.Equal(t, "SWE Intern", cleaned.Role)
	assert.Equal(t, "2025", cleaned.Year)
}
