package memory

import "roster/internal/domain/repository"

// NewAccountRepository returns an account repository over store outside any transaction.
func NewAccountRepository(store *Store) repository.AccountRepository {
	return store.AccountRepo()
}

// NewProfileRepository returns a profile repository over store outside any transaction.
func NewProfileRepository(store *Store) repository.ProfileRepository {
	return store.ProfileRepo()
}

// NewEdgeListRepository returns an edge list repository over store outside any transaction.
func NewEdgeListRepository(store *Store) repository.EdgeListRepository {
	return store.EdgeListRepo()
}
