package models

import (
	"interview-prep/apperror"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToggleUpvote_MalformedIDs(t *testing.T) {
	model := ExperienceModel{}
	userID := primitive.NewObjectID().Hex()

	// a garbled report id reads like a missing record
	_, err := model.ToggleUpvote("not-a-hex-id", userID)
	assert.Equal(t, apperror.ErrNoData, err)

	// a garbled voter id is a bad token payload, not a missing record
	_, err = model.ToggleUpvote(primitive.NewObjectID().Hex(), "nope")
	assert.Equal(t, ErrInvalidUser, err)
}

func TestVoteFilter_AddRequiresAbsence(t *testing.T) {
	id := primitive.NewObjectID()
	voter := primitive.NewObjectID()

	filter := voteFilter(id, voter, true)

	require.Len(t, filter, 2)
	assert.Equal(t, bson.E{Key: "_id", Value: id}, filter[0])
	// a voter already in the list must not match, so a repeated add
	// can never count twice
	assert.Equal(t, bson.E{Key: "upvotedBy",
		Value: bson.D{{Key: "$ne", Value: voter}}}, filter[1])
}

func TestVoteFilter_RevokeRequiresPresence(t *testing.T) {
	id := primitive.NewObjectID()
	voter := primitive.NewObjectID()

	filter := voteFilter(id, voter, false)

	require.Len(t, filter, 2)
	assert.Equal(t, bson.E{Key: "_id", Value: id}, filter[0])
	assert.Equal(t, bson.E{Key: "upvotedBy", Value: voter}, filter[1])
}

func TestVoteUpdate_SetAndCounterTravelTogether(t *testing.T) {
	voter := primitive.NewObjectID()

	// adding: membership and counter change in the same update document
	update := voteUpdate(voter, true)
	require.Len(t, update, 2)
	assert.Equal(t, bson.E{Key: "$addToSet",
		Value: bson.D{{Key: "upvotedBy", Value: voter}}}, update[0])
	assert.Equal(t, bson.E{Key: "$inc",
		Value: bson.D{{Key: "upvoteCount", Value: 1}}}, update[1])

	// revoking: same pairing, opposite direction
	update = voteUpdate(voter, false)
	require.Len(t, update, 2)
	assert.Equal(t, bson.E{Key: "$pull",
		Value: bson.D{{Key: "upvotedBy", Value: voter}}}, update[0])
	assert.Equal(t, bson.E{Key: "$inc",
		Value: bson.D{{Key: "upvoteCount", Value: -1}}}, update[1])
}

func TestVoteDirections_MirrorEachOther(t *testing.T) {
	id := primitive.NewObjectID()
	voter := primitive.NewObjectID()

	// exactly one direction can match any given membership state, so two
	// calls in a row always restore the starting state: the add filter
	// excludes what the revoke filter requires
	add := voteFilter(id, voter, true)
	revoke := voteFilter(id, voter, false)

	addCond := add[1].Value.(bson.D)
	assert.Equal(t, bson.E{Key: "$ne", Value: voter}, addCond[0])
	assert.Equal(t, voter, revoke[1].Value)

	// and the counter deltas cancel out
	addInc := voteUpdate(voter, true)[1].Value.(bson.D)
	revokeInc := voteUpdate(voter, false)[1].Value.(bson.D)
	assert.Equal(t, 1, addInc[0].Value)
	assert.Equal(t, -1, revokeInc[0].Value)
}
