// File: database/repository/subscription/subscription_mongo.go
package subscriptionRepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sproutly/database"
	"sproutly/models"
)

// SubscriptionRepository reads the subscription ledger owned by the billing
// side of the business. Read-only for this service.
type SubscriptionRepository interface {
	// GetActiveForStudent returns the student's usable subscription at the
	// given instant, or nil when none exists.
	GetActiveForStudent(ctx context.Context, studentID string, now time.Time) (*models.Subscription, error)
}

type mongoSubscriptionRepo struct {
	coll *mongo.Collection
}

// NewMongoSubscriptionRepo constructs a new MongoDB SubscriptionRepository.
func NewMongoSubscriptionRepo() SubscriptionRepository {
	return &mongoSubscriptionRepo{
		coll: database.DB().Collection("subscriptions"),
	}
}

func (r *mongoSubscriptionRepo) GetActiveForStudent(ctx context.Context, studentID string, now time.Time) (*models.Subscription, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"studentId": studentID,
		"status":    models.SubscriptionActive,
		"expiresAt": bson.M{"$gt": now},
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "expiresAt", Value: -1}})

	var sub models.Subscription
	err := r.coll.FindOne(ctx, filter, opts).Decode(&sub)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}
