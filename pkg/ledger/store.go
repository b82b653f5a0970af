package ledger

import (
	"context"
	"time"
)

// Store is the persistence contract used by Service.
//
// Implementations must run WithTx callbacks atomically: either every write
// made through the transactional Store lands, or none does. AdjustBalance must
// apply the delta only when the resulting balance stays non-negative and
// report ErrInsufficientBalance otherwise. UpdateTransactionStatus and
// ResolveRequest are compare-and-set transitions: a transaction no longer in
// the from status yields ErrAlreadyReversed, a request no longer pending
// yields ErrRequestNotPending.
type Store interface {
	WithTx(ctx context.Context, fn func(ctx context.Context, txStore Store) error) error

	CreateIdentity(ctx context.Context, identity Identity) error
	GetIdentity(ctx context.Context, identityID IdentityID) (Identity, error)
	FindActiveIdentityByGamertag(ctx context.Context, gamertag Gamertag) (Identity, error)
	FindIdentityByUserID(ctx context.Context, userID UserID) (Identity, error)
	UpdateIdentity(ctx context.Context, identity Identity) error

	CreateAccount(ctx context.Context, account Account) error
	GetAccount(ctx context.Context, identityID IdentityID) (Account, error)
	AdjustBalance(ctx context.Context, identityID IdentityID, delta int64, at time.Time) (Points, error)

	InsertTransaction(ctx context.Context, transaction Transaction) error
	GetTransaction(ctx context.Context, transactionID TransactionID) (Transaction, error)
	UpdateTransactionStatus(ctx context.Context, transactionID TransactionID, from, to TransactionStatus) error
	ListTransactions(ctx context.Context, identityID IdentityID, after HistoryCursor, limit int) ([]Transaction, error)

	InsertRequest(ctx context.Context, request Request) error
	GetRequest(ctx context.Context, requestID RequestID) (Request, error)
	ResolveRequest(ctx context.Context, requestID RequestID, to RequestStatus, transactionID *TransactionID, resolvedAt time.Time) error
	ListRequests(ctx context.Context, identityID IdentityID, filter RequestFilter) ([]Request, error)
	ListPendingRequestsCreatedBefore(ctx context.Context, cutoff time.Time, limit int) ([]Request, error)
	ListPendingRequestsInvolving(ctx context.Context, identityID IdentityID) ([]Request, error)

	UpsertContact(ctx context.Context, contact Contact, overwriteFavorite bool) (Contact, error)
	ListContacts(ctx context.Context, ownerID IdentityID) ([]Contact, error)
}
