package model

import (
	"roster/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AccountCollection is the collection holding account documents.
const AccountCollection = "accounts"

// AccountModel mirrors a document of the 'accounts' collection.
type AccountModel struct {
	ID           primitive.ObjectID `bson:"_id"`
	PhoneNumber  string             `bson:"phoneNumber"`
	Password     string             `bson:"password"`
	Role         string             `bson:"role"`
	ProfileID    primitive.ObjectID `bson:"profileId"`
	FirstCreated ActionRecordModel  `bson:"firstCreated"`
	LastModified ActionRecordModel  `bson:"lastModified"`
}

// ToAccountDomain maps a stored document to an entity.
func ToAccountDomain(m *AccountModel) *entity.Account {
	if m == nil {
		return nil
	}

	return &entity.Account{
		ID:           m.ID,
		PhoneNumber:  m.PhoneNumber,
		PasswordHash: m.Password,
		Role:         entity.Role(m.Role),
		ProfileID:    m.ProfileID,
		FirstCreated: toActionRecordDomain(m.FirstCreated),
		LastModified: toActionRecordDomain(m.LastModified),
	}
}

// FromAccountDomain maps an entity to its stored document.
func FromAccountDomain(a *entity.Account) *AccountModel {
	return &AccountModel{
		ID:           a.ID,
		PhoneNumber:  a.PhoneNumber,
		Password:     a.PasswordHash,
		Role:         a.Role.String(),
		ProfileID:    a.ProfileID,
		FirstCreated: fromActionRecordDomain(a.FirstCreated),
		LastModified: fromActionRecordDomain(a.LastModified),
	}
}
