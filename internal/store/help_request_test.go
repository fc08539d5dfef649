package store

import (
	"testing"

	"campushelp/pkg/types"

	"github.com/stretchr/testify/assert"

	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildHelpRequestFilter(t *testing.T) {
	assert.Equal(t, bson.M{}, buildHelpRequestFilter(types.HelpRequestFilter{}))

	assert.Equal(t, bson.M{"category": "networking"},
		buildHelpRequestFilter(types.HelpRequestFilter{Category: "networking"}))

	assert.Equal(t, bson.M{
		"description": bson.M{"$regex": "wifi", "$options": "i"},
	}, buildHelpRequestFilter(types.HelpRequestFilter{Search: "wifi"}))

	// Regex metacharacters in the search term are matched literally.
	assert.Equal(t, bson.M{
		"category":    "coding",
		"description": bson.M{"$regex": `c\+\+`, "$options": "i"},
	}, buildHelpRequestFilter(types.HelpRequestFilter{Category: "coding", Search: "c++"}))
}
