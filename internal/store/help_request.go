package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"campushelp/internal/utils"
	"campushelp/pkg/types"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const helpRequestCollectionName = "helprequests"

// MongoHelpRequestRepository implements HelpRequestRepository for MongoDB.
type MongoHelpRequestRepository struct {
	collection *mongo.Collection
}

func NewHelpRequestRepository(db *mongo.Database) *MongoHelpRequestRepository {
	return &MongoHelpRequestRepository{
		collection: db.Collection(helpRequestCollectionName),
	}
}

func (r *MongoHelpRequestRepository) Create(ctx context.Context, req *types.HelpRequest) error {

	now := time.Now()
	req.ID = primitive.NewObjectID()
	req.CreatedAt = now
	req.UpdatedAt = now

	if req.Tags == nil {
		req.Tags = []string{}
	}
	if req.Attachments == nil {
		req.Attachments = []types.Attachment{}
	}
	if req.Replies == nil {
		req.Replies = []types.Reply{}
	}

	_, err := r.collection.InsertOne(ctx, req)
	return utils.WrapError(err, "failed to insert help request")
}

func (r *MongoHelpRequestRepository) Get(ctx context.Context, id string) (*types.HelpRequest, error) {

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, types.ErrHelpRequestNotFound
	}

	var req types.HelpRequest
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&req)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, types.ErrHelpRequestNotFound
		}
		return nil, fmt.Errorf("failed to find help request %s: %w", id, err)
	}

	return &req, nil
}

func (r *MongoHelpRequestRepository) List(ctx context.Context, filter types.HelpRequestFilter) ([]types.HelpRequest, error) {

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, buildHelpRequestFilter(filter), findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to find help requests: %w", err)
	}
	defer cursor.Close(ctx)

	requests := make([]types.HelpRequest, 0)
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode help requests: %w", err)
	}

	return requests, nil
}

// Upvote relies on the store's atomic $inc so that concurrent upvotes on the
// same request never lose updates.
func (r *MongoHelpRequestRepository) Upvote(ctx context.Context, id string) (int, error) {

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, types.ErrHelpRequestNotFound
	}

	update := bson.M{
		"$inc": bson.M{"upvotes": 1},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	findOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var req types.HelpRequest
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, update, findOptions).Decode(&req)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, types.ErrHelpRequestNotFound
		}
		return 0, fmt.Errorf("failed to upvote help request %s: %w", id, err)
	}

	return req.Upvotes, nil
}

// AddReply appends via $push, keeping concurrent replies from clobbering each
// other and never touching earlier entries.
func (r *MongoHelpRequestRepository) AddReply(ctx context.Context, id string, reply types.Reply) error {

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return types.ErrHelpRequestNotFound
	}

	update := bson.M{
		"$push": bson.M{"replies": reply},
		"$set":  bson.M{"updatedAt": time.Now()},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return fmt.Errorf("failed to add reply to help request %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return types.ErrHelpRequestNotFound
	}

	return nil
}

func buildHelpRequestFilter(filter types.HelpRequestFilter) bson.M {
	query := bson.M{}

	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Search != "" {
		// Substring match, not a caller-supplied pattern.
		query["description"] = bson.M{
			"$regex":   regexp.QuoteMeta(filter.Search),
			"$options": "i",
		}
	}

	return query
}
