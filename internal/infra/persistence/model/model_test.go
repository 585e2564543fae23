package model

import (
	"testing"
	"time"

	"roster/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestProfileModel_MapsOptionalEdgeLists(t *testing.T) {
	sub := primitive.NewObjectID()
	profile := &entity.Profile{
		ID:             primitive.NewObjectID(),
		Name:           "Admin Person",
		PhoneNumber:    "0900000000",
		Role:           entity.RoleAdmin,
		AccountID:      primitive.NewObjectID(),
		ListSubProfile: &sub,
	}

	m := FromProfileDomain(profile)
	assert.Equal(t, "admin", m.Role)
	assert.Nil(t, m.ListSuperProfile)

	back := ToProfileDomain(m)
	assert.Equal(t, profile.ListSubProfile, back.ListSubProfile)
	assert.Nil(t, back.ListSuperProfile)
	assert.Equal(t, entity.RoleAdmin, back.Role)
}

func TestAccountModel_StoresTimesInUTC(t *testing.T) {
	local := time.Date(2024, 3, 1, 9, 0, 0, 0, time.FixedZone("ICT", 7*3600))
	account := &entity.Account{
		ID:           primitive.NewObjectID(),
		PhoneNumber:  "0900000000",
		PasswordHash: "hash",
		Role:         entity.RoleStaff,
		LastModified: entity.ActionRecord{EditedTime: local},
	}

	m := FromAccountDomain(account)
	assert.Equal(t, time.UTC, m.LastModified.EditedTime.Location())
	assert.True(t, local.Equal(m.LastModified.EditedTime))
	assert.Equal(t, "hash", m.Password)
}

func TestEdgeListModel_NeverNilIDs(t *testing.T) {
	m := FromEdgeListDomain(&entity.EdgeList{ID: primitive.NewObjectID()})
	assert.NotNil(t, m.IDs)
	assert.Empty(t, m.IDs)

	l := ToEdgeListDomain(&EdgeListModel{ID: m.ID})
	assert.NotNil(t, l.IDs)
	assert.Nil(t, ToEdgeListDomain(nil))
}
