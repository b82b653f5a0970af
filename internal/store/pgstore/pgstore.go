package pgstore

import (
	"context"
	_ "embed"
	"errors"
	"time"

	"github.com/MarkoPoloResearchLab/kolofap/pkg/ledger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

const (
	constraintIdentityPrimary    = "identities_pkey"
	constraintActiveGamertag     = "idx_identities_active_gamertag"
	constraintActiveUserID       = "idx_identities_active_user"
	constraintReversalOf         = "idx_transactions_reversal_of"
	constraintBalanceNonNegative = "chk_accounts_balance_non_negative"
	pgUniqueViolationCode        = "23505"
	pgCheckViolationCode         = "23514"
	errorOperationStore          = "store"
	errorSubjectSchema           = "schema"
	errorSubjectIdentity         = "identity"
	errorSubjectAccount          = "account"
	errorSubjectTransaction      = "transaction"
	errorSubjectRequest          = "request"
	errorSubjectContact          = "contact"
	errorCodeBegin               = "begin"
	errorCodeCommit              = "commit"
	errorCodeCreate              = "create"
	errorCodeDuplicate           = "duplicate"
	errorCodeGet                 = "get"
	errorCodeInsert              = "insert"
	errorCodeInvalid             = "invalid"
	errorCodeList                = "list"
	errorCodeLookup              = "lookup"
	errorCodeMigrate             = "migrate"
	errorCodeUpdate              = "update"
	errorCodeUpdateStatus        = "update_status"
	errorCodeAdjust              = "adjust"
	errorCodeUpsert              = "upsert"

	identityColumns = `id, user_id, gamertag, display_name, avatar_url, active, created_at, updated_at`

	transactionColumns = `
		id, kind, sender_id, receiver_id, amount, status, message,
		coalesce(metadata::text, '{}'), request_id, reversal_of, created_at
	`

	requestColumns = `id, requester_id, target_id, amount, message, status, transaction_id, created_at, resolved_at`

	contactColumns = `owner_id, contact_id, contact_gamertag, contact_display_name, is_favorite, created_at, updated_at`

	sqlInsertIdentity = `
		insert into identities(id, user_id, gamertag, gamertag_key, display_name, avatar_url, active, created_at, updated_at)
		values ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	sqlSelectIdentity = `select ` + identityColumns + ` from identities where id = $1`

	sqlSelectActiveIdentityByGamertag = `select ` + identityColumns + ` from identities where gamertag_key = $1 and active`

	sqlSelectIdentityByUserID = `
		select ` + identityColumns + ` from identities
		where user_id = $1
		order by active desc, created_at desc
		limit 1
	`

	sqlUpdateIdentity = `
		update identities
		set gamertag = $2, gamertag_key = $3, display_name = $4, avatar_url = $5, active = $6, updated_at = $7
		where id = $1
	`

	sqlInsertAccount = `insert into accounts(identity_id, balance, updated_at) values ($1, $2, $3)`

	sqlSelectAccountForUpdate = `select identity_id, balance, updated_at from accounts where identity_id = $1 for update`

	sqlAdjustBalance = `
		update accounts
		set balance = balance + $2, updated_at = $3
		where identity_id = $1 and balance + $2 >= 0
		returning balance
	`

	sqlAccountExists = `select exists(select 1 from accounts where identity_id = $1)`

	sqlInsertTransaction = `
		insert into transactions(id, kind, sender_id, receiver_id, amount, status, message, metadata, request_id, reversal_of, created_at)
		values ($1, $2, $3, $4, $5, $6, $7, coalesce(nullif($8, ''), '{}')::jsonb, $9, $10, $11)
	`

	sqlSelectTransaction = `select ` + transactionColumns + ` from transactions where id = $1`

	sqlUpdateTransactionStatus = `update transactions set status = $3 where id = $1 and status = $2`

	sqlListTransactions = `
		select ` + transactionColumns + ` from transactions
		where (sender_id = $1 or receiver_id = $1)
		and ($2::timestamptz is null or created_at < $2 or (created_at = $2 and id < $3))
		order by created_at desc, id desc
		limit $4
	`

	sqlInsertRequest = `
		insert into requests(id, requester_id, target_id, amount, message, status, transaction_id, created_at, resolved_at)
		values ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	sqlSelectRequest = `select ` + requestColumns + ` from requests where id = $1`

	sqlResolveRequest = `
		update requests
		set status = $2, transaction_id = $3, resolved_at = $4
		where id = $1 and status = 'pending'
	`

	sqlListRequests = `
		select ` + requestColumns + ` from requests
		where (
			($2 = 'incoming' and target_id = $1)
			or ($2 = 'outgoing' and requester_id = $1)
			or ($2 = '' and (requester_id = $1 or target_id = $1))
		)
		and ($3 = '' or status = $3)
		order by created_at desc, id desc
	`

	sqlListPendingRequestsCreatedBefore = `
		select ` + requestColumns + ` from requests
		where status = 'pending' and created_at < $1
		order by created_at asc, id asc
		limit $2
	`

	sqlListPendingRequestsInvolving = `
		select ` + requestColumns + ` from requests
		where status = 'pending' and (requester_id = $1 or target_id = $1)
		order by created_at asc, id asc
	`

	sqlUpsertContact = `
		insert into contacts(owner_id, contact_id, contact_gamertag, contact_display_name, is_favorite, created_at, updated_at)
		values ($1, $2, $3, $4, $5, $6, $7)
		on conflict (owner_id, contact_id) do update set
			contact_gamertag = excluded.contact_gamertag,
			contact_display_name = excluded.contact_display_name,
			updated_at = excluded.updated_at,
			is_favorite = case when $8 then excluded.is_favorite else contacts.is_favorite end
		returning ` + contactColumns

	sqlListContacts = `
		select ` + contactColumns + ` from contacts
		where owner_id = $1
		order by is_favorite desc, lower(contact_gamertag) asc
	`
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store implements ledger.Store using pgx. A Store returned by New runs each
// statement in autocommit mode; the Store handed to a WithTx callback runs
// every statement inside the surrounding transaction.
type Store struct {
	pool *pgxpool.Pool
	db   querier
}

// New returns a Store backed by a pgx pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool, db: pool}
}

// Migrate applies the embedded schema. Every statement is idempotent.
func (store *Store) Migrate(ctx context.Context) error {
	if _, err := store.db.Exec(ctx, schemaSQL); err != nil {
		return wrapStoreError(errorSubjectSchema, errorCodeMigrate, err)
	}
	return nil
}

func (store *Store) WithTx(ctx context.Context, fn func(ctx context.Context, txStore ledger.Store) error) error {
	if store.pool == nil {
		return fn(ctx, store)
	}
	tx, err := store.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return wrapStoreError(errorSubjectTransaction, errorCodeBegin, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(ctx, &Store{db: tx}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return wrapStoreError(errorSubjectTransaction, errorCodeCommit, err)
	}
	return nil
}

func (store *Store) CreateIdentity(ctx context.Context, identity ledger.Identity) error {
	_, err := store.db.Exec(ctx, sqlInsertIdentity,
		identity.ID.String(),
		identity.UserID.String(),
		identity.Gamertag.String(),
		identity.Gamertag.Key(),
		identity.DisplayName,
		identity.AvatarURL,
		identity.Active,
		identity.CreatedAt.UTC(),
		identity.UpdatedAt.UTC(),
	)
	if err != nil {
		switch constraintViolated(err, pgUniqueViolationCode) {
		case constraintActiveGamertag:
			return wrapStoreError(errorSubjectIdentity, errorCodeDuplicate, ledger.ErrDuplicateHandle)
		case constraintActiveUserID:
			return wrapStoreError(errorSubjectIdentity, errorCodeDuplicate, ledger.ErrIdentityExists)
		case constraintIdentityPrimary:
			return wrapStoreError(errorSubjectIdentity, errorCodeDuplicate, ledger.ErrDuplicateID)
		}
		return wrapStoreError(errorSubjectIdentity, errorCodeCreate, err)
	}
	return nil
}

func (store *Store) GetIdentity(ctx context.Context, identityID ledger.IdentityID) (ledger.Identity, error) {
	identity, err := scanIdentity(store.db.QueryRow(ctx, sqlSelectIdentity, identityID.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ledger.Identity{}, wrapStoreError(errorSubjectIdentity, errorCodeGet, ledger.ErrUnknownIdentity)
		}
		return ledger.Identity{}, wrapStoreError(errorSubjectIdentity, errorCodeGet, err)
	}
	return identity, nil
}

func (store *Store) FindActiveIdentityByGamertag(ctx context.Context, gamertag ledger.Gamertag) (ledger.Identity, error) {
	identity, err := scanIdentity(store.db.QueryRow(ctx, sqlSelectActiveIdentityByGamertag, gamertag.Key()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ledger.Identity{}, wrapStoreError(errorSubjectIdentity, errorCodeLookup, ledger.ErrUnknownGamertag)
		}
		return ledger.Identity{}, wrapStoreError(errorSubjectIdentity, errorCodeLookup, err)
	}
	return identity, nil
}

func (store *Store) FindIdentityByUserID(ctx context.Context, userID ledger.UserID) (ledger.Identity, error) {
	identity, err := scanIdentity(store.db.QueryRow(ctx, sqlSelectIdentityByUserID, userID.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ledger.Identity{}, wrapStoreError(errorSubjectIdentity, errorCodeLookup, ledger.ErrUnknownIdentity)
		}
		return ledger.Identity{}, wrapStoreError(errorSubjectIdentity, errorCodeLookup, err)
	}
	return identity, nil
}

func (store *Store) UpdateIdentity(ctx context.Context, identity ledger.Identity) error {
	tag, err := store.db.Exec(ctx, sqlUpdateIdentity,
		identity.ID.String(),
		identity.Gamertag.String(),
		identity.Gamertag.Key(),
		identity.DisplayName,
		identity.AvatarURL,
		identity.Active,
		identity.UpdatedAt.UTC(),
	)
	if err != nil {
		if constraintViolated(err, pgUniqueViolationCode) != "" {
			return wrapStoreError(errorSubjectIdentity, errorCodeDuplicate, ledger.ErrDuplicateHandle)
		}
		return wrapStoreError(errorSubjectIdentity, errorCodeUpdate, err)
	}
	if tag.RowsAffected() == 0 {
		return wrapStoreError(errorSubjectIdentity, errorCodeUpdate, ledger.ErrUnknownIdentity)
	}
	return nil
}

func (store *Store) CreateAccount(ctx context.Context, account ledger.Account) error {
	_, err := store.db.Exec(ctx, sqlInsertAccount, account.IdentityID.String(), account.Balance.Int64(), account.UpdatedAt.UTC())
	if err != nil {
		if constraintViolated(err, pgUniqueViolationCode) != "" {
			return wrapStoreError(errorSubjectAccount, errorCodeDuplicate, ledger.ErrDuplicateID)
		}
		return wrapStoreError(errorSubjectAccount, errorCodeCreate, err)
	}
	return nil
}

// GetAccount reads the account row with FOR UPDATE; inside WithTx the row
// stays locked until commit.
func (store *Store) GetAccount(ctx context.Context, identityID ledger.IdentityID) (ledger.Account, error) {
	var (
		rawID     string
		balance   int64
		updatedAt time.Time
	)
	err := store.db.QueryRow(ctx, sqlSelectAccountForUpdate, identityID.String()).Scan(&rawID, &balance, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ledger.Account{}, wrapStoreError(errorSubjectAccount, errorCodeGet, ledger.ErrUnknownAccount)
		}
		return ledger.Account{}, wrapStoreError(errorSubjectAccount, errorCodeGet, err)
	}
	accountID, err := ledger.NewIdentityID(rawID)
	if err != nil {
		return ledger.Account{}, wrapStoreError(errorSubjectAccount, errorCodeInvalid, err)
	}
	return ledger.Account{IdentityID: accountID, Balance: ledger.Points(balance), UpdatedAt: updatedAt.UTC()}, nil
}

func (store *Store) AdjustBalance(ctx context.Context, identityID ledger.IdentityID, delta int64, at time.Time) (ledger.Points, error) {
	var balance int64
	err := store.db.QueryRow(ctx, sqlAdjustBalance, identityID.String(), delta, at.UTC()).Scan(&balance)
	if err == nil {
		return ledger.Points(balance), nil
	}
	if constraintViolated(err, pgCheckViolationCode) == constraintBalanceNonNegative {
		return 0, wrapStoreError(errorSubjectAccount, errorCodeAdjust, ledger.ErrInsufficientBalance)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, wrapStoreError(errorSubjectAccount, errorCodeAdjust, err)
	}
	var exists bool
	if err := store.db.QueryRow(ctx, sqlAccountExists, identityID.String()).Scan(&exists); err != nil {
		return 0, wrapStoreError(errorSubjectAccount, errorCodeAdjust, err)
	}
	if !exists {
		return 0, wrapStoreError(errorSubjectAccount, errorCodeAdjust, ledger.ErrUnknownAccount)
	}
	return 0, wrapStoreError(errorSubjectAccount, errorCodeAdjust, ledger.ErrInsufficientBalance)
}

func (store *Store) InsertTransaction(ctx context.Context, transaction ledger.Transaction) error {
	_, err := store.db.Exec(ctx, sqlInsertTransaction,
		transaction.ID.String(),
		transaction.Kind.String(),
		transaction.SenderID.String(),
		transaction.ReceiverID.String(),
		transaction.Amount.Int64(),
		transaction.Status.String(),
		transaction.Message.String(),
		transaction.Metadata.String(),
		optionalString(transaction.RequestID),
		optionalString(transaction.ReversalOf),
		transaction.CreatedAt.UTC(),
	)
	if err != nil {
		switch constraintViolated(err, pgUniqueViolationCode) {
		case "":
			return wrapStoreError(errorSubjectTransaction, errorCodeInsert, err)
		case constraintReversalOf:
			return wrapStoreError(errorSubjectTransaction, errorCodeDuplicate, ledger.ErrAlreadyReversed)
		default:
			return wrapStoreError(errorSubjectTransaction, errorCodeDuplicate, ledger.ErrDuplicateID)
		}
	}
	return nil
}

func (store *Store) GetTransaction(ctx context.Context, transactionID ledger.TransactionID) (ledger.Transaction, error) {
	transaction, err := scanTransaction(store.db.QueryRow(ctx, sqlSelectTransaction, transactionID.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ledger.Transaction{}, wrapStoreError(errorSubjectTransaction, errorCodeGet, ledger.ErrUnknownTransaction)
		}
		return ledger.Transaction{}, wrapStoreError(errorSubjectTransaction, errorCodeGet, err)
	}
	return transaction, nil
}

func (store *Store) UpdateTransactionStatus(ctx context.Context, transactionID ledger.TransactionID, from, to ledger.TransactionStatus) error {
	tag, err := store.db.Exec(ctx, sqlUpdateTransactionStatus, transactionID.String(), from.String(), to.String())
	if err != nil {
		return wrapStoreError(errorSubjectTransaction, errorCodeUpdateStatus, err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := store.GetTransaction(ctx, transactionID); err != nil {
			return err
		}
		return wrapStoreError(errorSubjectTransaction, errorCodeUpdateStatus, ledger.ErrAlreadyReversed)
	}
	return nil
}

func (store *Store) ListTransactions(ctx context.Context, identityID ledger.IdentityID, after ledger.HistoryCursor, limit int) ([]ledger.Transaction, error) {
	var createdBefore *time.Time
	if !after.IsZero() {
		createdAt := after.CreatedAt.UTC()
		createdBefore = &createdAt
	}
	rows, err := store.db.Query(ctx, sqlListTransactions, identityID.String(), createdBefore, after.TransactionID.String(), limit)
	if err != nil {
		return nil, wrapStoreError(errorSubjectTransaction, errorCodeList, err)
	}
	defer rows.Close()

	var transactions []ledger.Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, wrapStoreError(errorSubjectTransaction, errorCodeInvalid, err)
		}
		transactions = append(transactions, transaction)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreError(errorSubjectTransaction, errorCodeList, err)
	}
	return transactions, nil
}

func (store *Store) InsertRequest(ctx context.Context, request ledger.Request) error {
	_, err := store.db.Exec(ctx, sqlInsertRequest,
		request.ID.String(),
		request.RequesterID.String(),
		request.TargetID.String(),
		request.Amount.Int64(),
		request.Message.String(),
		request.Status.String(),
		optionalString(request.TransactionID),
		request.CreatedAt.UTC(),
		request.ResolvedAt,
	)
	if err != nil {
		if constraintViolated(err, pgUniqueViolationCode) != "" {
			return wrapStoreError(errorSubjectRequest, errorCodeDuplicate, ledger.ErrDuplicateID)
		}
		return wrapStoreError(errorSubjectRequest, errorCodeInsert, err)
	}
	return nil
}

func (store *Store) GetRequest(ctx context.Context, requestID ledger.RequestID) (ledger.Request, error) {
	request, err := scanRequest(store.db.QueryRow(ctx, sqlSelectRequest, requestID.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ledger.Request{}, wrapStoreError(errorSubjectRequest, errorCodeGet, ledger.ErrUnknownRequest)
		}
		return ledger.Request{}, wrapStoreError(errorSubjectRequest, errorCodeGet, err)
	}
	return request, nil
}

func (store *Store) ResolveRequest(ctx context.Context, requestID ledger.RequestID, to ledger.RequestStatus, transactionID *ledger.TransactionID, resolvedAt time.Time) error {
	tag, err := store.db.Exec(ctx, sqlResolveRequest, requestID.String(), to.String(), optionalString(transactionID), resolvedAt.UTC())
	if err != nil {
		return wrapStoreError(errorSubjectRequest, errorCodeUpdateStatus, err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := store.GetRequest(ctx, requestID); err != nil {
			return err
		}
		return wrapStoreError(errorSubjectRequest, errorCodeUpdateStatus, ledger.ErrRequestNotPending)
	}
	return nil
}

func (store *Store) ListRequests(ctx context.Context, identityID ledger.IdentityID, filter ledger.RequestFilter) ([]ledger.Request, error) {
	return store.queryRequests(ctx, sqlListRequests, identityID.String(), string(filter.Role), filter.Status.String())
}

func (store *Store) ListPendingRequestsCreatedBefore(ctx context.Context, cutoff time.Time, limit int) ([]ledger.Request, error) {
	return store.queryRequests(ctx, sqlListPendingRequestsCreatedBefore, cutoff.UTC(), limit)
}

func (store *Store) ListPendingRequestsInvolving(ctx context.Context, identityID ledger.IdentityID) ([]ledger.Request, error) {
	return store.queryRequests(ctx, sqlListPendingRequestsInvolving, identityID.String())
}

func (store *Store) queryRequests(ctx context.Context, sql string, args ...any) ([]ledger.Request, error) {
	rows, err := store.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapStoreError(errorSubjectRequest, errorCodeList, err)
	}
	defer rows.Close()

	var requests []ledger.Request
	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return nil, wrapStoreError(errorSubjectRequest, errorCodeInvalid, err)
		}
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreError(errorSubjectRequest, errorCodeList, err)
	}
	return requests, nil
}

func (store *Store) UpsertContact(ctx context.Context, contact ledger.Contact, overwriteFavorite bool) (ledger.Contact, error) {
	stored, err := scanContact(store.db.QueryRow(ctx, sqlUpsertContact,
		contact.OwnerID.String(),
		contact.ContactID.String(),
		contact.ContactGamertag,
		contact.ContactDisplayName,
		contact.IsFavorite && overwriteFavorite,
		contact.CreatedAt.UTC(),
		contact.UpdatedAt.UTC(),
		overwriteFavorite,
	))
	if err != nil {
		return ledger.Contact{}, wrapStoreError(errorSubjectContact, errorCodeUpsert, err)
	}
	return stored, nil
}

func (store *Store) ListContacts(ctx context.Context, ownerID ledger.IdentityID) ([]ledger.Contact, error) {
	rows, err := store.db.Query(ctx, sqlListContacts, ownerID.String())
	if err != nil {
		return nil, wrapStoreError(errorSubjectContact, errorCodeList, err)
	}
	defer rows.Close()

	var contacts []ledger.Contact
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, wrapStoreError(errorSubjectContact, errorCodeInvalid, err)
		}
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreError(errorSubjectContact, errorCodeList, err)
	}
	return contacts, nil
}

func wrapStoreError(subject string, code string, err error) error {
	return ledger.WrapError(errorOperationStore, subject, code, err)
}

// constraintViolated returns the constraint named by a Postgres error with
// the given SQLSTATE, or "" when err is something else.
func constraintViolated(err error, code string) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == code {
		if pgErr.ConstraintName == "" {
			return code
		}
		return pgErr.ConstraintName
	}
	return ""
}

type stringer interface {
	String() string
}

func optionalString[T stringer](value *T) *string {
	if value == nil {
		return nil
	}
	raw := (*value).String()
	return &raw
}
