package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActionRecord remembers who last touched a document and when.
type ActionRecord struct {
	EditedBy   primitive.ObjectID // Profile ID of the editor.
	EditedTime time.Time          // Time of the edit, UTC.
}

// NewActionRecord stamps an edit by the given profile at the given time.
func NewActionRecord(editedBy primitive.ObjectID, at time.Time) ActionRecord {
	return ActionRecord{EditedBy: editedBy, EditedTime: at.UTC()}
}

// ShortProfile is the display form of an action record's editor.
type ShortProfile struct {
	Name string    `json:"name"`
	Role Role      `json:"role"`
	Date time.Time `json:"date"`
}
