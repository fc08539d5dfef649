package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category string

const (
	CategoryCoding         Category = "coding"
	CategoryCollegeRelated Category = "college related"
	CategoryMiscellaneous  Category = "miscellaneous"
	CategoryNetworking     Category = "networking"
	CategoryHardware       Category = "hardware"
	CategoryOther          Category = "other"
)

var Categories = []Category{
	CategoryCoding,
	CategoryCollegeRelated,
	CategoryMiscellaneous,
	CategoryNetworking,
	CategoryHardware,
	CategoryOther,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Attachment references an uploaded file by its public URL. The document
// store never holds the file bytes themselves.
type Attachment struct {
	Name string `bson:"name" json:"name"`
	URL  string `bson:"url" json:"url"`
	Type string `bson:"type" json:"type"`
}

// Reply is an embedded, append-only thread entry. No edit or delete is
// exposed anywhere.
type Reply struct {
	User      string    `bson:"user" json:"user"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type HelpRequest struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Description string             `bson:"description" json:"description"`
	Category    Category           `bson:"category" json:"category"`
	Tags        []string           `bson:"tags" json:"tags"`
	Attachments []Attachment       `bson:"attachments" json:"attachments"`
	Upvotes     int                `bson:"upvotes" json:"upvotes"`
	Replies     []Reply            `bson:"replies" json:"replies"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// HelpRequestFilter narrows a listing. Category matches exactly, Search is a
// case-insensitive substring match against the description.
type HelpRequestFilter struct {
	Category string `form:"category"`
	Search   string `form:"search"`
}
