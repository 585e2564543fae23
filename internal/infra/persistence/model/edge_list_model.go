package model

import (
	"roster/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EdgeListCollection is the collection holding edge list documents.
const EdgeListCollection = "arrayids"

// EdgeListModel mirrors a document of the 'arrayids' collection.
type EdgeListModel struct {
	ID  primitive.ObjectID   `bson:"_id"`
	IDs []primitive.ObjectID `bson:"ids"`
}

// ToEdgeListDomain maps a stored document to an entity.
func ToEdgeListDomain(m *EdgeListModel) *entity.EdgeList {
	if m == nil {
		return nil
	}
	ids := m.IDs
	if ids == nil {
		ids = []primitive.ObjectID{}
	}

	return &entity.EdgeList{ID: m.ID, IDs: ids}
}

// FromEdgeListDomain maps an entity to its stored document. The ids field is never null.
func FromEdgeListDomain(l *entity.EdgeList) *EdgeListModel {
	ids := l.IDs
	if ids == nil {
		ids = []primitive.ObjectID{}
	}

	return &EdgeListModel{ID: l.ID, IDs: ids}
}
