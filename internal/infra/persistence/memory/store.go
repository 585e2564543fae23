// Package memory implements the persistence layer in process memory. It backs tests and local runs
// without a MongoDB deployment.
package memory

import (
	"bytes"
	"context"
	"maps"
	"slices"
	"strings"
	"sync"

	"roster/internal/domain/entity"
	"roster/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store holds every collection. Transactions are serialized and rolled back from a snapshot;
// reads outside a transaction may observe its uncommitted writes.
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex

	accounts map[primitive.ObjectID]entity.Account
	profiles map[primitive.ObjectID]entity.Profile
	lists    map[primitive.ObjectID]entity.EdgeList
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		accounts: map[primitive.ObjectID]entity.Account{},
		profiles: map[primitive.ObjectID]entity.Profile{},
		lists:    map[primitive.ObjectID]entity.EdgeList{},
	}
}

type snapshot struct {
	accounts map[primitive.ObjectID]entity.Account
	profiles map[primitive.ObjectID]entity.Profile
	lists    map[primitive.ObjectID]entity.EdgeList
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lists := make(map[primitive.ObjectID]entity.EdgeList, len(s.lists))
	for id, list := range s.lists {
		lists[id] = cloneEdgeList(list)
	}

	return snapshot{
		accounts: maps.Clone(s.accounts),
		profiles: maps.Clone(s.profiles),
		lists:    lists,
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts = snap.accounts
	s.profiles = snap.profiles
	s.lists = snap.lists
}

// transactionManager implements the domain's TransactionManager interface on a Store.
type transactionManager struct {
	store *Store
}

// NewTransactionManager is the constructor for transactionManager.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute runs fn with exclusive write access and restores the previous state when fn fails or panics.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.store.txMu.Lock()
	defer tm.store.txMu.Unlock()

	snap := tm.store.snapshot()
	defer func() {
		if r := recover(); r != nil {
			tm.store.restore(snap)
			panic(r)
		}
	}()

	if err = fn(tm.store); err != nil {
		tm.store.restore(snap)

		return err
	}

	return nil
}

// AccountRepo returns an account repository over the store.
func (s *Store) AccountRepo() repository.AccountRepository { return &accountRepository{store: s} }

// ProfileRepo returns a profile repository over the store.
func (s *Store) ProfileRepo() repository.ProfileRepository { return &profileRepository{store: s} }

// EdgeListRepo returns an edge list repository over the store.
func (s *Store) EdgeListRepo() repository.EdgeListRepository { return &edgeListRepository{store: s} }

type accountRepository struct {
	store *Store
}

func (r *accountRepository) FindByID(_ context.Context, id primitive.ObjectID) (*entity.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	account, ok := r.store.accounts[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return &account, nil
}

func (r *accountRepository) FindByPhoneNumber(_ context.Context, phoneNumber string) (*entity.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, account := range r.store.accounts {
		if account.PhoneNumber == phoneNumber {
			return &account, nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (r *accountRepository) Create(_ context.Context, account *entity.Account) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if account.ID.IsZero() {
		account.ID = primitive.NewObjectID()
	}
	if r.phoneTaken(account.PhoneNumber, account.ID) {
		return repository.ErrDuplicatePhoneNumber
	}
	r.store.accounts[account.ID] = *account

	return nil
}

func (r *accountRepository) Update(_ context.Context, account *entity.Account) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.accounts[account.ID]; !ok {
		return repository.ErrAccountNotFound
	}
	if r.phoneTaken(account.PhoneNumber, account.ID) {
		return repository.ErrDuplicatePhoneNumber
	}
	r.store.accounts[account.ID] = *account

	return nil
}

func (r *accountRepository) phoneTaken(phoneNumber string, except primitive.ObjectID) bool {
	for id, existing := range r.store.accounts {
		if id != except && existing.PhoneNumber == phoneNumber {
			return true
		}
	}

	return false
}

type profileRepository struct {
	store *Store
}

func (r *profileRepository) FindByID(_ context.Context, id primitive.ObjectID) (*entity.Profile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	profile, ok := r.store.profiles[id]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}

	return cloneProfile(profile), nil
}

func (r *profileRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*entity.Profile, error) {
	if len(ids) == 0 {
		return []*entity.Profile{}, nil
	}

	return r.Search(ctx, repository.ProfileFilter{IDs: ids})
}

func (r *profileRepository) FindByPhoneNumberAndRole(_ context.Context, phoneNumber string, role entity.Role) (*entity.Profile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, profile := range r.store.profiles {
		if profile.PhoneNumber == phoneNumber && profile.Role == role {
			return cloneProfile(profile), nil
		}
	}

	return nil, repository.ErrProfileNotFound
}

func (r *profileRepository) Create(_ context.Context, profile *entity.Profile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if profile.ID.IsZero() {
		profile.ID = primitive.NewObjectID()
	}
	if r.phoneTaken(profile.PhoneNumber, profile.ID) {
		return repository.ErrDuplicatePhoneNumber
	}
	r.store.profiles[profile.ID] = *cloneProfile(*profile)

	return nil
}

func (r *profileRepository) Update(_ context.Context, profile *entity.Profile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.profiles[profile.ID]; !ok {
		return repository.ErrProfileNotFound
	}
	if r.phoneTaken(profile.PhoneNumber, profile.ID) {
		return repository.ErrDuplicatePhoneNumber
	}
	r.store.profiles[profile.ID] = *cloneProfile(*profile)

	return nil
}

func (r *profileRepository) Search(_ context.Context, filter repository.ProfileFilter) ([]*entity.Profile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := make([]*entity.Profile, 0)
	for _, profile := range r.store.profiles {
		if matchesProfile(profile, filter) {
			matched = append(matched, cloneProfile(profile))
		}
	}
	slices.SortFunc(matched, func(a, b *entity.Profile) int {
		return bytes.Compare(a.ID[:], b.ID[:])
	})

	if filter.Skip > 0 {
		if filter.Skip >= int64(len(matched)) {
			return []*entity.Profile{}, nil
		}
		matched = matched[filter.Skip:]
	}
	if filter.Limit > 0 && filter.Limit < int64(len(matched)) {
		matched = matched[:filter.Limit]
	}

	return matched, nil
}

func (r *profileRepository) phoneTaken(phoneNumber string, except primitive.ObjectID) bool {
	for id, existing := range r.store.profiles {
		if id != except && existing.PhoneNumber == phoneNumber {
			return true
		}
	}

	return false
}

func matchesProfile(profile entity.Profile, filter repository.ProfileFilter) bool {
	if filter.IDs != nil && !slices.Contains(filter.IDs, profile.ID) {
		return false
	}
	if filter.SuperListIDs != nil {
		if profile.ListSuperProfile == nil || !slices.Contains(filter.SuperListIDs, *profile.ListSuperProfile) {
			return false
		}
	}
	if filter.Role != "" && profile.Role != filter.Role {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		fields := []string{profile.PhoneNumber, profile.Name, profile.Email, profile.Address}

		return slices.ContainsFunc(fields, func(field string) bool {
			return strings.Contains(strings.ToLower(field), needle)
		})
	}

	return true
}

type edgeListRepository struct {
	store *Store
}

func (r *edgeListRepository) FindByID(_ context.Context, id primitive.ObjectID) (*entity.EdgeList, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	list, ok := r.store.lists[id]
	if !ok {
		return nil, repository.ErrEdgeListNotFound
	}
	list = cloneEdgeList(list)

	return &list, nil
}

func (r *edgeListRepository) Create(_ context.Context, list *entity.EdgeList) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if list.ID.IsZero() {
		list.ID = primitive.NewObjectID()
	}
	r.store.lists[list.ID] = cloneEdgeList(*list)

	return nil
}

func (r *edgeListRepository) AddID(_ context.Context, listID, id primitive.ObjectID) (bool, error) {
	return r.modify(listID, func(list *entity.EdgeList) bool { return list.Add(id) })
}

func (r *edgeListRepository) RemoveID(_ context.Context, listID, id primitive.ObjectID) (bool, error) {
	return r.modify(listID, func(list *entity.EdgeList) bool { return list.Remove(id) })
}

func (r *edgeListRepository) modify(listID primitive.ObjectID, change func(*entity.EdgeList) bool) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	list, ok := r.store.lists[listID]
	if !ok {
		return false, repository.ErrEdgeListNotFound
	}
	changed := change(&list)
	r.store.lists[listID] = list

	return changed, nil
}

func (r *edgeListRepository) FindEmptyIDs(_ context.Context) ([]primitive.ObjectID, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	ids := make([]primitive.ObjectID, 0)
	for id, list := range r.store.lists {
		if list.Len() == 0 {
			ids = append(ids, id)
		}
	}
	slices.SortFunc(ids, func(a, b primitive.ObjectID) int {
		return bytes.Compare(a[:], b[:])
	})

	return ids, nil
}

func cloneProfile(p entity.Profile) *entity.Profile {
	if p.ListSubProfile != nil {
		id := *p.ListSubProfile
		p.ListSubProfile = &id
	}
	if p.ListSuperProfile != nil {
		id := *p.ListSuperProfile
		p.ListSuperProfile = &id
	}

	return &p
}

func cloneEdgeList(l entity.EdgeList) entity.EdgeList {
	l.IDs = slices.Clone(l.IDs)
	if l.IDs == nil {
		l.IDs = []primitive.ObjectID{}
	}

	return l
}
