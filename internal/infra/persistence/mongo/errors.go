package mongo

import (
	"roster/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
)

func isNotFound(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

func isDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
