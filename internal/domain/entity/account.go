package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account holds the credentials of an actor. Every account is paired with exactly one Profile.
type Account struct {
	ID           primitive.ObjectID // Store-native identifier.
	PhoneNumber  string             // Login identifier, unique across accounts.
	PasswordHash string             // bcrypt hash of the password.
	Role         Role               // Mirrors the paired profile's role.
	ProfileID    primitive.ObjectID // Forward reference to the paired Profile.
	FirstCreated ActionRecord       // Who created the account.
	LastModified ActionRecord       // Who last changed the account.
}

// Stamp records an edit on the account.
func (a *Account) Stamp(record ActionRecord) {
	a.LastModified = record
}
