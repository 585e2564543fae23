package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile holds the personal data of an actor and its place in the hierarchy.
type Profile struct {
	ID               primitive.ObjectID  // Store-native identifier.
	Name             string              // Display name, longer than five characters.
	PhoneNumber      string              // Mirrors the paired account's phone number.
	Role             Role                // Mirrors the paired account's role.
	Email            string              // Optional, validated when non-empty.
	Address          string              // Optional free-form address.
	AccountID        primitive.ObjectID  // Back reference to the paired Account.
	ListSubProfile   *primitive.ObjectID // Edge list of supervised profiles. Nil for customers.
	ListSuperProfile *primitive.ObjectID // Edge list of supervising profiles. Nil for admins.
	LastModified     ActionRecord        // Who last changed the profile.
}

// Stamp records an edit on the profile.
func (p *Profile) Stamp(record ActionRecord) {
	p.LastModified = record
}

// ProfileChanges carries optional field updates. Nil fields are left untouched.
type ProfileChanges struct {
	Name    *string
	Email   *string
	Address *string
}

// Apply copies every provided field that differs from the current value and
// reports whether anything changed.
func (p *Profile) Apply(changes ProfileChanges) bool {
	modified := false
	if changes.Name != nil && *changes.Name != p.Name {
		p.Name = *changes.Name
		modified = true
	}
	if changes.Email != nil && *changes.Email != p.Email {
		p.Email = *changes.Email
		modified = true
	}
	if changes.Address != nil && *changes.Address != p.Address {
		p.Address = *changes.Address
		modified = true
	}

	return modified
}
