package entity

import (
	"slices"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EdgeList is one side of a supervision relationship: an ordered set of profile IDs
// stored as its own document and reachable only through the profile that references it.
type EdgeList struct {
	ID  primitive.ObjectID
	IDs []primitive.ObjectID
}

// NewEdgeList creates an edge list holding the given IDs.
func NewEdgeList(ids ...primitive.ObjectID) *EdgeList {
	list := &EdgeList{ID: primitive.NewObjectID(), IDs: make([]primitive.ObjectID, 0, len(ids))}
	for _, id := range ids {
		list.Add(id)
	}

	return list
}

// Contains reports whether id is in the list.
func (l *EdgeList) Contains(id primitive.ObjectID) bool {
	return slices.Contains(l.IDs, id)
}

// Add appends id unless it is already present and reports whether the list changed.
func (l *EdgeList) Add(id primitive.ObjectID) bool {
	if l.Contains(id) {
		return false
	}
	l.IDs = append(l.IDs, id)

	return true
}

// Remove drops every occurrence of id and reports whether the list changed.
func (l *EdgeList) Remove(id primitive.ObjectID) bool {
	before := len(l.IDs)
	l.IDs = slices.DeleteFunc(l.IDs, func(existing primitive.ObjectID) bool {
		return existing == id
	})

	return len(l.IDs) != before
}

// Len returns the number of IDs in the list.
func (l *EdgeList) Len() int {
	return len(l.IDs)
}
