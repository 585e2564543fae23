package model

import (
	"roster/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProfileCollection is the collection holding profile documents.
const ProfileCollection = "profiles"

// ProfileModel mirrors a document of the 'profiles' collection.
// Absent edge lists are omitted from the document rather than stored as null.
type ProfileModel struct {
	ID               primitive.ObjectID  `bson:"_id"`
	Name             string              `bson:"name"`
	PhoneNumber      string              `bson:"phoneNumber"`
	Role             string              `bson:"role"`
	Email            string              `bson:"email,omitempty"`
	Address          string              `bson:"address,omitempty"`
	AccountID        primitive.ObjectID  `bson:"accountId"`
	ListSubProfile   *primitive.ObjectID `bson:"listSubProfile,omitempty"`
	ListSuperProfile *primitive.ObjectID `bson:"listSuperProfile,omitempty"`
	LastModified     ActionRecordModel   `bson:"lastModified"`
}

// ToProfileDomain maps a stored document to an entity.
func ToProfileDomain(m *ProfileModel) *entity.Profile {
	if m == nil {
		return nil
	}

	return &entity.Profile{
		ID:               m.ID,
		Name:             m.Name,
		PhoneNumber:      m.PhoneNumber,
		Role:             entity.Role(m.Role),
		Email:            m.Email,
		Address:          m.Address,
		AccountID:        m.AccountID,
		ListSubProfile:   m.ListSubProfile,
		ListSuperProfile: m.ListSuperProfile,
		LastModified:     toActionRecordDomain(m.LastModified),
	}
}

// FromProfileDomain maps an entity to its stored document.
func FromProfileDomain(p *entity.Profile) *ProfileModel {
	return &ProfileModel{
		ID:               p.ID,
		Name:             p.Name,
		PhoneNumber:      p.PhoneNumber,
		Role:             p.Role.String(),
		Email:            p.Email,
		Address:          p.Address,
		AccountID:        p.AccountID,
		ListSubProfile:   p.ListSubProfile,
		ListSuperProfile: p.ListSuperProfile,
		LastModified:     fromActionRecordDomain(p.LastModified),
	}
}
