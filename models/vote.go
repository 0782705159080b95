package models

import (
	"context"
	"interview-prep/apperror"
	"interview-prep/helpers"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpvoteState is returned after a toggle and reflects the new document state
type UpvoteState struct {
	UpvoteCount int32 `json:"upvoteCount" bson:"upvoteCount"`
	Upvoted     bool  `json:"upvoted" bson:"-"`
}

// ToggleUpvote adds or removes a user's upvote depending on current membership.
// One vote per user and report, toggled; a second call flips back.
//
// Voter list and counter travel in a single conditional update, keyed on both
// the report and the current membership of the voter. Concurrent toggles of
// different users therefore never overwrite each other and a reader never sees
// count and list disagree - a plain read-modify-save would lose updates here.
func (m ExperienceModel) ToggleUpvote(experienceID string, userID string) (*UpvoteState, error) {

	id, err := primitive.ObjectIDFromHex(experienceID)
	if err != nil {
		return nil, apperror.ErrNoData
	}

	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidUser
	}

	state := UpvoteState{}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.D{
			{Key: "_id", Value: 0},
			{Key: "upvoteCount", Value: 1},
		})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// first direction: user is not in the voter list yet -> add the vote
	err = m.Collection.FindOneAndUpdate(ctx,
		voteFilter(id, userOID, true), voteUpdate(userOID, true), opts).Decode(&state)
	if err == nil {
		state.Upvoted = true
		return &state, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, helpers.WrapError(err, helpers.FuncName())
	}

	// second direction: user has voted before -> revoke
	err = m.Collection.FindOneAndUpdate(ctx,
		voteFilter(id, userOID, false), voteUpdate(userOID, false), opts).Decode(&state)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			// neither direction matched - the report is gone
			return nil, apperror.ErrNoData
		}
		return nil, helpers.WrapError(err, helpers.FuncName())
	}
	state.Upvoted = false

	// repair a counter that went negative on a corrupted document
	// (not an error to the caller)
	if state.UpvoteCount < 0 {
		state.UpvoteCount = 0

		repair := bson.D{
			{Key: "_id", Value: id},
			{Key: "upvoteCount", Value: bson.D{{Key: "$lt", Value: 0}}},
		}
		_, _ = m.Collection.UpdateOne(ctx, repair,
			bson.D{{Key: "$set", Value: bson.D{{Key: "upvoteCount", Value: 0}}}})
	}

	return &state, nil
}

// voteFilter matches the report only while the voter's current membership
// allows the direction: adding requires absence, revoking requires presence.
// The condition makes each direction a no-op for the wrong state instead of
// a double count.
func voteFilter(id primitive.ObjectID, voter primitive.ObjectID, add bool) bson.D {
	if add {
		return bson.D{
			{Key: "_id", Value: id},
			{Key: "upvotedBy", Value: bson.D{{Key: "$ne", Value: voter}}},
		}
	}
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "upvotedBy", Value: voter},
	}
}

// voteUpdate mutates voter list and counter in one update document,
// so a reader can never see the two disagree
func voteUpdate(voter primitive.ObjectID, add bool) bson.D {
	if add {
		return bson.D{
			{Key: "$addToSet", Value: bson.D{{Key: "upvotedBy", Value: voter}}},
			{Key: "$inc", Value: bson.D{{Key: "upvoteCount", Value: 1}}},
		}
	}
	return bson.D{
		{Key: "$pull", Value: bson.D{{Key: "upvotedBy", Value: voter}}},
		{Key: "$inc", Value: bson.D{{Key: "upvoteCount", Value: -1}}},
	}
}
