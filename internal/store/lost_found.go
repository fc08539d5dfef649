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

const lostFoundCollectionName = "lostfounds"

// MongoLostFoundRepository implements LostFoundRepository for MongoDB.
type MongoLostFoundRepository struct {
	collection *mongo.Collection
}

func NewLostFoundRepository(db *mongo.Database) *MongoLostFoundRepository {
	return &MongoLostFoundRepository{
		collection: db.Collection(lostFoundCollectionName),
	}
}

func (r *MongoLostFoundRepository) Create(ctx context.Context, item *types.LostFound) error {

	now := time.Now()
	item.ID = primitive.NewObjectID()
	item.CreatedAt = now
	item.UpdatedAt = now

	if item.Images == nil {
		item.Images = []string{}
	}
	if item.Replies == nil {
		item.Replies = []types.Reply{}
	}

	_, err := r.collection.InsertOne(ctx, item)
	return utils.WrapError(err, "failed to insert lost and found item")
}

func (r *MongoLostFoundRepository) List(ctx context.Context) ([]types.LostFound, error) {

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to find lost and found items: %w", err)
	}
	defer cursor.Close(ctx)

	items := make([]types.LostFound, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode lost and found items: %w", err)
	}

	return items, nil
}

func (r *MongoLostFoundRepository) AddReply(ctx context.Context, id string, reply types.Reply) (*types.LostFound, error) {

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, types.ErrLostFoundNotFound
	}

	update := bson.M{
		"$push": bson.M{"replies": reply},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	findOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var item types.LostFound
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, update, findOptions).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, types.ErrLostFoundNotFound
		}
		return nil, fmt.Errorf("failed to add reply to lost and found item %s: %w", id, err)
	}

	return &item, nil
}
