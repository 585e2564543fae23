package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SessionClaims is the public identity bound to an issued token. It never carries the password
// or the action records of the account.
type SessionClaims struct {
	AccountID   primitive.ObjectID `json:"accountId"`
	ProfileID   primitive.ObjectID `json:"profileId"`
	PhoneNumber string             `json:"phoneNumber"`
	Role        Role               `json:"role"`
}

// ClaimsFromAccount extracts the session claims of an account.
func ClaimsFromAccount(account *Account) SessionClaims {
	return SessionClaims{
		AccountID:   account.ID,
		ProfileID:   account.ProfileID,
		PhoneNumber: account.PhoneNumber,
		Role:        account.Role,
	}
}
