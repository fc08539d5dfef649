package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campushelp/internal/utils"
	"campushelp/pkg/types"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const marketingHelpCollectionName = "marketinghelps"

// MongoMarketingHelpRepository implements MarketingHelpRepository for MongoDB.
type MongoMarketingHelpRepository struct {
	collection *mongo.Collection
}

func NewMarketingHelpRepository(db *mongo.Database) *MongoMarketingHelpRepository {
	return &MongoMarketingHelpRepository{
		collection: db.Collection(marketingHelpCollectionName),
	}
}

func (r *MongoMarketingHelpRepository) Create(ctx context.Context, help *types.MarketingHelp) error {

	now := time.Now()
	help.ID = primitive.NewObjectID()
	help.PaymentStatus = types.PaymentStatusPending
	help.CreatedAt = now
	help.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, help)
	return utils.WrapError(err, "failed to insert marketing help request")
}

func (r *MongoMarketingHelpRepository) List(ctx context.Context) ([]types.MarketingHelp, error) {

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to find marketing help requests: %w", err)
	}
	defer cursor.Close(ctx)

	helps := make([]types.MarketingHelp, 0)
	if err := cursor.All(ctx, &helps); err != nil {
		return nil, fmt.Errorf("failed to decode marketing help requests: %w", err)
	}

	return helps, nil
}

// UpdatePaymentStatus only matches documents still in Pending, so the
// transition check and the write happen in one atomic operation. A follow-up
// read disambiguates "missing" from "already final".
func (r *MongoMarketingHelpRepository) UpdatePaymentStatus(ctx context.Context, id string, status types.PaymentStatus) (*types.MarketingHelp, error) {

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, types.ErrMarketingHelpNotFound
	}

	filter := bson.M{"_id": objectID, "paymentStatus": types.PaymentStatusPending}
	update := bson.M{
		"$set": bson.M{"paymentStatus": status, "updatedAt": time.Now()},
	}
	findOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var help types.MarketingHelp
	err = r.collection.FindOneAndUpdate(ctx, filter, update, findOptions).Decode(&help)
	if err == nil {
		return &help, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to update payment status for %s: %w", id, err)
	}

	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, types.ErrMarketingHelpNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find marketing help request %s: %w", id, err)
	}

	return nil, types.ErrPaymentStatusFinal
}
