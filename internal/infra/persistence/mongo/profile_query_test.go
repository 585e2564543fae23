package mongo

import (
	"testing"

	"roster/internal/domain/entity"
	"roster/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildProfileQuery(t *testing.T) {
	id := primitive.NewObjectID()

	tests := []struct {
		name   string
		filter repository.ProfileFilter
		check  func(t *testing.T, query bson.M)
	}{
		{
			name:   "empty filter matches everything",
			filter: repository.ProfileFilter{},
			check: func(t *testing.T, query bson.M) {
				assert.Empty(t, query)
			},
		},
		{
			name:   "nil id set is no restriction",
			filter: repository.ProfileFilter{Role: entity.RoleStaff},
			check: func(t *testing.T, query bson.M) {
				assert.Equal(t, "staff", query["role"])
				assert.NotContains(t, query, "_id")
			},
		},
		{
			name:   "empty id set matches nothing",
			filter: repository.ProfileFilter{IDs: []primitive.ObjectID{}},
			check: func(t *testing.T, query bson.M) {
				in, ok := query["_id"].(bson.M)
				require.True(t, ok)
				assert.Equal(t, []primitive.ObjectID{}, in["$in"])
			},
		},
		{
			name:   "super list restriction",
			filter: repository.ProfileFilter{SuperListIDs: []primitive.ObjectID{id}},
			check: func(t *testing.T, query bson.M) {
				assert.Equal(t, bson.M{"$in": []primitive.ObjectID{id}}, query["listSuperProfile"])
			},
		},
		{
			name:   "search is escaped and case-insensitive",
			filter: repository.ProfileFilter{Search: "a.b+(c)"},
			check: func(t *testing.T, query bson.M) {
				or, ok := query["$or"].(bson.A)
				require.True(t, ok)
				require.Len(t, or, len(searchableProfileFields))
				for i, clause := range or {
					regex := clause.(bson.M)[searchableProfileFields[i]].(primitive.Regex)
					assert.Equal(t, `a\.b\+\(c\)`, regex.Pattern)
					assert.Equal(t, "i", regex.Options)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, buildProfileQuery(tt.filter))
		})
	}
}
