// Package model holds the MongoDB document shapes of the persisted entities.
package model

import (
	"time"

	"roster/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActionRecordModel mirrors the embedded {editedBy, editedTime} document.
type ActionRecordModel struct {
	EditedBy   primitive.ObjectID `bson:"editedBy"`
	EditedTime time.Time          `bson:"editedTime"`
}

func toActionRecordDomain(m ActionRecordModel) entity.ActionRecord {
	return entity.ActionRecord{EditedBy: m.EditedBy, EditedTime: m.EditedTime.UTC()}
}

func fromActionRecordDomain(r entity.ActionRecord) ActionRecordModel {
	return ActionRecordModel{EditedBy: r.EditedBy, EditedTime: r.EditedTime.UTC()}
}
