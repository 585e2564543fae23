package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// base carries the database handle and, inside a transaction, the session every call joins.
type base struct {
	db      *mongo.Database
	session mongo.Session
}

func newBase(db *mongo.Database, session mongo.Session) base {
	return base{db: db, session: session}
}

func (b base) scope(ctx context.Context) context.Context {
	if b.session == nil {
		return ctx
	}

	return mongo.NewSessionContext(ctx, b.session)
}

func (b base) collection(name string) *mongo.Collection {
	return b.db.Collection(name)
}
