package models

import (
	"context"
	"interview-prep/apperror"
	"interview-prep/authorization"
	"interview-prep/helpers"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// moderation actions accepted by Decide
const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

// Decide approves or rejects a pending report.
//
// The admin check runs here and not only at the route, so re-arranging
// routes can never silently open the gate. Approve is idempotent; reject
// removes the document for good - a second reject reports ErrNoData, which
// callers treat as "already gone". Each action is a single store call, so
// no intermediate state is observable.
func (m ExperienceModel) Decide(experienceID string, action string, credentials *authorization.Credentials) error {

	if !credentials.IsAdmin() {
		return apperror.ErrDenied
	}

	if action != ActionApprove && action != ActionReject {
		return ErrInvalidAction
	}

	id, err := primitive.ObjectIDFromHex(experienceID)
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
		// ModifiedCount is 0 when the report was approved before - that's fine
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
