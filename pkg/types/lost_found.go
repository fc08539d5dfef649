package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LostFound struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Description string             `bson:"description" json:"description"`
	Images      []string           `bson:"images" json:"images"`
	Replies     []Reply            `bson:"replies" json:"replies"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
