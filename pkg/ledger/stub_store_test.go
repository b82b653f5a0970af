package ledger

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"
)

type contactKey struct {
	ownerID   IdentityID
	contactID IdentityID
}

// stubStore is an in-memory Store. WithTx serializes transactions and rolls
// back every map on error.
type stubStore struct {
	txMu sync.Mutex
	mu   sync.Mutex

	identities   map[IdentityID]Identity
	accounts     map[IdentityID]Account
	transactions map[TransactionID]Transaction
	requests     map[RequestID]Request
	contacts     map[contactKey]Contact

	getAccountError        error
	adjustBalanceError     error
	insertTransactionError error
	insertRequestError     error
	upsertContactError     error
	listTransactionsError  error

	accountReads []IdentityID
}

type stubSnapshot struct {
	identities   map[IdentityID]Identity
	accounts     map[IdentityID]Account
	transactions map[TransactionID]Transaction
	requests     map[RequestID]Request
	contacts     map[contactKey]Contact
}

func newStubStore(test *testing.T) *stubStore {
	test.Helper()
	return &stubStore{
		identities:   make(map[IdentityID]Identity),
		accounts:     make(map[IdentityID]Account),
		transactions: make(map[TransactionID]Transaction),
		requests:     make(map[RequestID]Request),
		contacts:     make(map[contactKey]Contact),
	}
}

func copyMap[K comparable, V any](source map[K]V) map[K]V {
	copied := make(map[K]V, len(source))
	for key, value := range source {
		copied[key] = value
	}
	return copied
}

func (store *stubStore) WithTx(ctx context.Context, fn func(ctx context.Context, txStore Store) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	store.txMu.Lock()
	defer store.txMu.Unlock()

	store.mu.Lock()
	snapshot := stubSnapshot{
		identities:   copyMap(store.identities),
		accounts:     copyMap(store.accounts),
		transactions: copyMap(store.transactions),
		requests:     copyMap(store.requests),
		contacts:     copyMap(store.contacts),
	}
	store.mu.Unlock()

	if err := fn(ctx, store); err != nil {
		store.mu.Lock()
		store.identities = snapshot.identities
		store.accounts = snapshot.accounts
		store.transactions = snapshot.transactions
		store.requests = snapshot.requests
		store.contacts = snapshot.contacts
		store.mu.Unlock()
		return err
	}
	return nil
}

func (store *stubStore) CreateIdentity(_ context.Context, identity Identity) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	if _, exists := store.identities[identity.ID]; exists {
		return ErrDuplicateID
	}
	for _, existing := range store.identities {
		if existing.Active && existing.Gamertag.Equal(identity.Gamertag) {
			return ErrDuplicateHandle
		}
	}
	store.identities[identity.ID] = identity
	return nil
}

func (store *stubStore) GetIdentity(_ context.Context, identityID IdentityID) (Identity, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	identity, exists := store.identities[identityID]
	if !exists {
		return Identity{}, ErrUnknownIdentity
	}
	return identity, nil
}

func (store *stubStore) FindActiveIdentityByGamertag(_ context.Context, gamertag Gamertag) (Identity, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	for _, identity := range store.identities {
		if identity.Active && identity.Gamertag.Equal(gamertag) {
			return identity, nil
		}
	}
	return Identity{}, ErrUnknownGamertag
}

func (store *stubStore) FindIdentityByUserID(_ context.Context, userID UserID) (Identity, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	var (
		found    Identity
		hasFound bool
	)
	for _, identity := range store.identities {
		if identity.UserID != userID {
			continue
		}
		if identity.Active {
			return identity, nil
		}
		found, hasFound = identity, true
	}
	if !hasFound {
		return Identity{}, ErrUnknownIdentity
	}
	return found, nil
}

func (store *stubStore) UpdateIdentity(_ context.Context, identity Identity) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	if _, exists := store.identities[identity.ID]; !exists {
		return ErrUnknownIdentity
	}
	store.identities[identity.ID] = identity
	return nil
}

func (store *stubStore) CreateAccount(_ context.Context, account Account) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	if _, exists := store.accounts[account.IdentityID]; exists {
		return ErrDuplicateID
	}
	store.accounts[account.IdentityID] = account
	return nil
}

func (store *stubStore) GetAccount(_ context.Context, identityID IdentityID) (Account, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.accountReads = append(store.accountReads, identityID)
	if store.getAccountError != nil {
		return Account{}, store.getAccountError
	}
	account, exists := store.accounts[identityID]
	if !exists {
		return Account{}, ErrUnknownAccount
	}
	return account, nil
}

func (store *stubStore) AdjustBalance(_ context.Context, identityID IdentityID, delta int64, at time.Time) (Points, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.adjustBalanceError != nil {
		return 0, store.adjustBalanceError
	}
	account, exists := store.accounts[identityID]
	if !exists {
		return 0, ErrUnknownAccount
	}
	next := account.Balance.Int64() + delta
	if next < 0 {
		return 0, ErrInsufficientBalance
	}
	account.Balance = Points(next)
	account.UpdatedAt = at
	store.accounts[identityID] = account
	return account.Balance, nil
}

func (store *stubStore) InsertTransaction(_ context.Context, transaction Transaction) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.insertTransactionError != nil {
		return store.insertTransactionError
	}
	if _, exists := store.transactions[transaction.ID]; exists {
		return ErrDuplicateID
	}
	store.transactions[transaction.ID] = transaction
	return nil
}

func (store *stubStore) GetTransaction(_ context.Context, transactionID TransactionID) (Transaction, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	transaction, exists := store.transactions[transactionID]
	if !exists {
		return Transaction{}, ErrUnknownTransaction
	}
	return transaction, nil
}

func (store *stubStore) UpdateTransactionStatus(_ context.Context, transactionID TransactionID, from, to TransactionStatus) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	transaction, exists := store.transactions[transactionID]
	if !exists {
		return ErrUnknownTransaction
	}
	if transaction.Status != from {
		return ErrAlreadyReversed
	}
	transaction.Status = to
	store.transactions[transactionID] = transaction
	return nil
}

func newerFirst(left, right Transaction) bool {
	if !left.CreatedAt.Equal(right.CreatedAt) {
		return left.CreatedAt.After(right.CreatedAt)
	}
	return left.ID.String() > right.ID.String()
}

func (store *stubStore) ListTransactions(_ context.Context, identityID IdentityID, after HistoryCursor, limit int) ([]Transaction, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.listTransactionsError != nil {
		return nil, store.listTransactionsError
	}
	matched := make([]Transaction, 0)
	for _, transaction := range store.transactions {
		if !transaction.Involves(identityID) {
			continue
		}
		if !after.IsZero() && !newerFirst(Transaction{ID: after.TransactionID, CreatedAt: after.CreatedAt}, transaction) {
			continue
		}
		matched = append(matched, transaction)
	}
	sort.Slice(matched, func(left, right int) bool {
		return newerFirst(matched[left], matched[right])
	})
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (store *stubStore) InsertRequest(_ context.Context, request Request) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.insertRequestError != nil {
		return store.insertRequestError
	}
	if _, exists := store.requests[request.ID]; exists {
		return ErrDuplicateID
	}
	store.requests[request.ID] = request
	return nil
}

func (store *stubStore) GetRequest(_ context.Context, requestID RequestID) (Request, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	request, exists := store.requests[requestID]
	if !exists {
		return Request{}, ErrUnknownRequest
	}
	return request, nil
}

func (store *stubStore) ResolveRequest(_ context.Context, requestID RequestID, to RequestStatus, transactionID *TransactionID, resolvedAt time.Time) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	request, exists := store.requests[requestID]
	if !exists {
		return ErrUnknownRequest
	}
	if request.Status != RequestStatusPending {
		return fmt.Errorf("%w: %s", ErrRequestNotPending, request.Status)
	}
	request.Status = to
	request.TransactionID = transactionID
	request.ResolvedAt = &resolvedAt
	store.requests[requestID] = request
	return nil
}

func sortRequestsNewestFirst(requests []Request) {
	sort.Slice(requests, func(left, right int) bool {
		if !requests[left].CreatedAt.Equal(requests[right].CreatedAt) {
			return requests[left].CreatedAt.After(requests[right].CreatedAt)
		}
		return requests[left].ID.String() > requests[right].ID.String()
	})
}

func (store *stubStore) ListRequests(_ context.Context, identityID IdentityID, filter RequestFilter) ([]Request, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	matched := make([]Request, 0)
	for _, request := range store.requests {
		switch filter.Role {
		case RequestRoleIncoming:
			if request.TargetID != identityID {
				continue
			}
		case RequestRoleOutgoing:
			if request.RequesterID != identityID {
				continue
			}
		default:
			if request.TargetID != identityID && request.RequesterID != identityID {
				continue
			}
		}
		if filter.Status != "" && request.Status != filter.Status {
			continue
		}
		matched = append(matched, request)
	}
	sortRequestsNewestFirst(matched)
	return matched, nil
}

func (store *stubStore) ListPendingRequestsCreatedBefore(_ context.Context, cutoff time.Time, limit int) ([]Request, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	matched := make([]Request, 0)
	for _, request := range store.requests {
		if request.Status == RequestStatusPending && request.CreatedAt.Before(cutoff) {
			matched = append(matched, request)
		}
	}
	sort.Slice(matched, func(left, right int) bool {
		return matched[left].CreatedAt.Before(matched[right].CreatedAt)
	})
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (store *stubStore) ListPendingRequestsInvolving(_ context.Context, identityID IdentityID) ([]Request, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	matched := make([]Request, 0)
	for _, request := range store.requests {
		if request.Status != RequestStatusPending {
			continue
		}
		if request.RequesterID == identityID || request.TargetID == identityID {
			matched = append(matched, request)
		}
	}
	return matched, nil
}

func (store *stubStore) UpsertContact(_ context.Context, contact Contact, overwriteFavorite bool) (Contact, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.upsertContactError != nil {
		return Contact{}, store.upsertContactError
	}
	key := contactKey{ownerID: contact.OwnerID, contactID: contact.ContactID}
	existing, exists := store.contacts[key]
	if !exists {
		if !overwriteFavorite {
			contact.IsFavorite = false
		}
		store.contacts[key] = contact
		return contact, nil
	}
	existing.ContactGamertag = contact.ContactGamertag
	existing.ContactDisplayName = contact.ContactDisplayName
	existing.UpdatedAt = contact.UpdatedAt
	if overwriteFavorite {
		existing.IsFavorite = contact.IsFavorite
	}
	store.contacts[key] = existing
	return existing, nil
}

func (store *stubStore) ListContacts(_ context.Context, ownerID IdentityID) ([]Contact, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	matched := make([]Contact, 0)
	for key, contact := range store.contacts {
		if key.ownerID == ownerID {
			matched = append(matched, contact)
		}
	}
	sort.Slice(matched, func(left, right int) bool {
		if matched[left].IsFavorite != matched[right].IsFavorite {
			return matched[left].IsFavorite
		}
		return strings.ToLower(matched[left].ContactGamertag) < strings.ToLower(matched[right].ContactGamertag)
	})
	return matched, nil
}

func (store *stubStore) balanceOf(test *testing.T, identityID IdentityID) Points {
	test.Helper()
	store.mu.Lock()
	defer store.mu.Unlock()
	account, exists := store.accounts[identityID]
	if !exists {
		test.Fatalf("no account for %s", identityID.String())
	}
	return account.Balance
}

// stepClock advances by one second on every reading.
type stepClock struct {
	mu      sync.Mutex
	current time.Time
}

func newStepClock() *stepClock {
	return &stepClock{current: time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)}
}

func (clock *stepClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	clock.current = clock.current.Add(time.Second)
	return clock.current
}

func (clock *stepClock) Advance(duration time.Duration) {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	clock.current = clock.current.Add(duration)
}

type sequenceIDs struct {
	mu   sync.Mutex
	next int
}

func (ids *sequenceIDs) New() string {
	ids.mu.Lock()
	defer ids.mu.Unlock()
	ids.next++
	return fmt.Sprintf("id-%04d", ids.next)
}

// readAccountOrder returns the GetAccount calls since the last reset.
func (store *stubStore) readAccountOrder(reset bool) []IdentityID {
	store.mu.Lock()
	defer store.mu.Unlock()
	reads := append([]IdentityID(nil), store.accountReads...)
	if reset {
		store.accountReads = nil
	}
	return reads
}
