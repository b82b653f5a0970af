package gormstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MarkoPoloResearchLab/kolofap/pkg/ledger"
	gosqlite "github.com/glebarez/go-sqlite"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	defaultMetadataJSON   = "{}"
	pgUniqueViolationCode = "23505"
	sqliteConstraintCode  = 19

	errorOperationStore     = "store"
	errorSubjectIdentity    = "identity"
	errorSubjectAccount     = "account"
	errorSubjectTransaction = "transaction"
	errorSubjectRequest     = "request"
	errorSubjectContact     = "contact"
	errorCodeCreate         = "create"
	errorCodeDuplicate      = "duplicate"
	errorCodeGet            = "get"
	errorCodeInsert         = "insert"
	errorCodeInvalid        = "invalid"
	errorCodeList           = "list"
	errorCodeLookup         = "lookup"
	errorCodeUpdate         = "update"
	errorCodeUpdateStatus   = "update_status"
	errorCodeAdjust         = "adjust"
	errorCodeUpsert         = "upsert"
)

// Store implements ledger.Store using GORM.
type Store struct {
	db *gorm.DB
}

// New returns a Store backed by gorm.DB.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// WithTx executes fn within a transaction.
func (store *Store) WithTx(ctx context.Context, fn func(ctx context.Context, txStore ledger.Store) error) error {
	return store.db.WithContext(ctx).Transaction(func(transaction *gorm.DB) error {
		return fn(ctx, &Store{db: transaction})
	})
}

func (store *Store) CreateIdentity(ctx context.Context, identity ledger.Identity) error {
	model := Identity{
		ID:          identity.ID.String(),
		UserID:      identity.UserID.String(),
		Gamertag:    identity.Gamertag.String(),
		GamertagKey: identity.Gamertag.Key(),
		DisplayName: identity.DisplayName,
		AvatarURL:   identity.AvatarURL,
		Active:      identity.Active,
		CreatedAt:   identity.CreatedAt.UTC(),
		UpdatedAt:   identity.UpdatedAt.UTC(),
	}
	err := store.db.WithContext(ctx).Create(&model).Error
	if isUniqueViolation(err) {
		switch {
		case conflictOn(err, indexActiveGamertag, "identities.gamertag_key"):
			return wrapStoreError(errorSubjectIdentity, errorCodeDuplicate, ledger.ErrDuplicateHandle)
		case conflictOn(err, indexActiveUserID, "identities.user_id"):
			return wrapStoreError(errorSubjectIdentity, errorCodeDuplicate, ledger.ErrIdentityExists)
		}
		return wrapStoreError(errorSubjectIdentity, errorCodeDuplicate, ledger.ErrDuplicateID)
	}
	if err != nil {
		return wrapStoreError(errorSubjectIdentity, errorCodeCreate, err)
	}
	return nil
}

func (store *Store) GetIdentity(ctx context.Context, identityID ledger.IdentityID) (ledger.Identity, error) {
	var model Identity
	err := store.db.WithContext(ctx).Where("id = ?", identityID.String()).Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ledger.Identity{}, wrapStoreError(errorSubjectIdentity, errorCodeGet, ledger.ErrUnknownIdentity)
		}
		return ledger.Identity{}, wrapStoreError(errorSubjectIdentity, errorCodeGet, err)
	}
	return mapIdentity(model)
}

func (store *Store) FindActiveIdentityByGamertag(ctx context.Context, gamertag ledger.Gamertag) (ledger.Identity, error) {
	var model Identity
	err := store.db.WithContext(ctx).
		Where("gamertag_key = ? AND active = ?", gamertag.Key(), true).
		Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ledger.Identity{}, wrapStoreError(errorSubjectIdentity, errorCodeLookup, ledger.ErrUnknownGamertag)
		}
		return ledger.Identity{}, wrapStoreError(errorSubjectIdentity, errorCodeLookup, err)
	}
	return mapIdentity(model)
}

func (store *Store) FindIdentityByUserID(ctx context.Context, userID ledger.UserID) (ledger.Identity, error) {
	var model Identity
	err := store.db.WithContext(ctx).
		Where("user_id = ?", userID.String()).
		Order("active DESC, created_at DESC").
		Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ledger.Identity{}, wrapStoreError(errorSubjectIdentity, errorCodeLookup, ledger.ErrUnknownIdentity)
		}
		return ledger.Identity{}, wrapStoreError(errorSubjectIdentity, errorCodeLookup, err)
	}
	return mapIdentity(model)
}

func (store *Store) UpdateIdentity(ctx context.Context, identity ledger.Identity) error {
	result := store.db.WithContext(ctx).
		Model(&Identity{}).
		Where("id = ?", identity.ID.String()).
		Updates(map[string]interface{}{
			"gamertag":     identity.Gamertag.String(),
			"gamertag_key": identity.Gamertag.Key(),
			"display_name": identity.DisplayName,
			"avatar_url":   identity.AvatarURL,
			"active":       identity.Active,
			"updated_at":   identity.UpdatedAt.UTC(),
		})
	if isUniqueViolation(result.Error) {
		return wrapStoreError(errorSubjectIdentity, errorCodeDuplicate, ledger.ErrDuplicateHandle)
	}
	if result.Error != nil {
		return wrapStoreError(errorSubjectIdentity, errorCodeUpdate, result.Error)
	}
	if result.RowsAffected == 0 {
		return wrapStoreError(errorSubjectIdentity, errorCodeUpdate, ledger.ErrUnknownIdentity)
	}
	return nil
}

func (store *Store) CreateAccount(ctx context.Context, account ledger.Account) error {
	model := Account{
		IdentityID: account.IdentityID.String(),
		Balance:    account.Balance.Int64(),
		UpdatedAt:  account.UpdatedAt.UTC(),
	}
	err := store.db.WithContext(ctx).Create(&model).Error
	if isUniqueViolation(err) {
		return wrapStoreError(errorSubjectAccount, errorCodeDuplicate, ledger.ErrDuplicateID)
	}
	if err != nil {
		return wrapStoreError(errorSubjectAccount, errorCodeCreate, err)
	}
	return nil
}

// GetAccount reads the account row, taking a row lock when running inside a
// transaction on a database that supports one.
func (store *Store) GetAccount(ctx context.Context, identityID ledger.IdentityID) (ledger.Account, error) {
	var model Account
	err := store.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("identity_id = ?", identityID.String()).
		Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ledger.Account{}, wrapStoreError(errorSubjectAccount, errorCodeGet, ledger.ErrUnknownAccount)
		}
		return ledger.Account{}, wrapStoreError(errorSubjectAccount, errorCodeGet, err)
	}
	return mapAccount(model)
}

// AdjustBalance applies delta in a single conditional UPDATE so the balance
// can never be observed below zero.
func (store *Store) AdjustBalance(ctx context.Context, identityID ledger.IdentityID, delta int64, at time.Time) (ledger.Points, error) {
	result := store.db.WithContext(ctx).
		Model(&Account{}).
		Where("identity_id = ? AND balance + ? >= 0", identityID.String(), delta).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance + ?", delta),
			"updated_at": at.UTC(),
		})
	if result.Error != nil {
		return 0, wrapStoreError(errorSubjectAccount, errorCodeAdjust, result.Error)
	}
	account, err := store.GetAccount(ctx, identityID)
	if err != nil {
		return 0, err
	}
	if result.RowsAffected == 0 {
		return 0, wrapStoreError(errorSubjectAccount, errorCodeAdjust, ledger.ErrInsufficientBalance)
	}
	return account.Balance, nil
}

func (store *Store) InsertTransaction(ctx context.Context, transaction ledger.Transaction) error {
	model := Transaction{
		ID:         transaction.ID.String(),
		Kind:       transaction.Kind.String(),
		SenderID:   transaction.SenderID.String(),
		ReceiverID: transaction.ReceiverID.String(),
		Amount:     transaction.Amount.Int64(),
		Status:     transaction.Status.String(),
		Message:    transaction.Message.String(),
		Metadata:   datatypesJSON(transaction.Metadata.String()),
		RequestID:  optionalString(transaction.RequestID),
		ReversalOf: optionalString(transaction.ReversalOf),
		CreatedAt:  transaction.CreatedAt.UTC(),
	}
	err := store.db.WithContext(ctx).Create(&model).Error
	if isUniqueViolation(err) {
		if conflictOn(err, indexReversalOf, "transactions.reversal_of") && !store.transactionExists(ctx, transaction.ID) {
			return wrapStoreError(errorSubjectTransaction, errorCodeDuplicate, ledger.ErrAlreadyReversed)
		}
		return wrapStoreError(errorSubjectTransaction, errorCodeDuplicate, ledger.ErrDuplicateID)
	}
	if err != nil {
		return wrapStoreError(errorSubjectTransaction, errorCodeInsert, err)
	}
	return nil
}

// transactionExists reports whether the id is already taken. SQLite names only
// one violated index, so a clashing id is checked for explicitly.
func (store *Store) transactionExists(ctx context.Context, transactionID ledger.TransactionID) bool {
	var count int64
	err := store.db.WithContext(ctx).Model(&Transaction{}).Where("id = ?", transactionID.String()).Count(&count).Error
	return err == nil && count > 0
}

func (store *Store) GetTransaction(ctx context.Context, transactionID ledger.TransactionID) (ledger.Transaction, error) {
	var model Transaction
	err := store.db.WithContext(ctx).Where("id = ?", transactionID.String()).Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ledger.Transaction{}, wrapStoreError(errorSubjectTransaction, errorCodeGet, ledger.ErrUnknownTransaction)
		}
		return ledger.Transaction{}, wrapStoreError(errorSubjectTransaction, errorCodeGet, err)
	}
	transaction, err := mapTransaction(model)
	if err != nil {
		return ledger.Transaction{}, wrapStoreError(errorSubjectTransaction, errorCodeInvalid, err)
	}
	return transaction, nil
}

func (store *Store) UpdateTransactionStatus(ctx context.Context, transactionID ledger.TransactionID, from, to ledger.TransactionStatus) error {
	result := store.db.WithContext(ctx).
		Model(&Transaction{}).
		Where("id = ? AND status = ?", transactionID.String(), from.String()).
		Update("status", to.String())
	if result.Error != nil {
		return wrapStoreError(errorSubjectTransaction, errorCodeUpdateStatus, result.Error)
	}
	if result.RowsAffected == 0 {
		if _, err := store.GetTransaction(ctx, transactionID); err != nil {
			return err
		}
		return wrapStoreError(errorSubjectTransaction, errorCodeUpdateStatus, ledger.ErrAlreadyReversed)
	}
	return nil
}

func (store *Store) ListTransactions(ctx context.Context, identityID ledger.IdentityID, after ledger.HistoryCursor, limit int) ([]ledger.Transaction, error) {
	query := store.db.WithContext(ctx).
		Where("(sender_id = ? OR receiver_id = ?)", identityID.String(), identityID.String())
	if !after.IsZero() {
		createdAt := after.CreatedAt.UTC()
		query = query.Where("(created_at < ? OR (created_at = ? AND id < ?))", createdAt, createdAt, after.TransactionID.String())
	}
	var rows []Transaction
	err := query.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, wrapStoreError(errorSubjectTransaction, errorCodeList, err)
	}
	transactions := make([]ledger.Transaction, 0, len(rows))
	for _, row := range rows {
		transaction, err := mapTransaction(row)
		if err != nil {
			return nil, wrapStoreError(errorSubjectTransaction, errorCodeInvalid, err)
		}
		transactions = append(transactions, transaction)
	}
	return transactions, nil
}

func (store *Store) InsertRequest(ctx context.Context, request ledger.Request) error {
	model := Request{
		ID:            request.ID.String(),
		RequesterID:   request.RequesterID.String(),
		TargetID:      request.TargetID.String(),
		Amount:        request.Amount.Int64(),
		Message:       request.Message.String(),
		Status:        request.Status.String(),
		TransactionID: optionalString(request.TransactionID),
		CreatedAt:     request.CreatedAt.UTC(),
		ResolvedAt:    request.ResolvedAt,
	}
	err := store.db.WithContext(ctx).Create(&model).Error
	if isUniqueViolation(err) {
		return wrapStoreError(errorSubjectRequest, errorCodeDuplicate, ledger.ErrDuplicateID)
	}
	if err != nil {
		return wrapStoreError(errorSubjectRequest, errorCodeInsert, err)
	}
	return nil
}

func (store *Store) GetRequest(ctx context.Context, requestID ledger.RequestID) (ledger.Request, error) {
	var model Request
	err := store.db.WithContext(ctx).Where("id = ?", requestID.String()).Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ledger.Request{}, wrapStoreError(errorSubjectRequest, errorCodeGet, ledger.ErrUnknownRequest)
		}
		return ledger.Request{}, wrapStoreError(errorSubjectRequest, errorCodeGet, err)
	}
	request, err := mapRequest(model)
	if err != nil {
		return ledger.Request{}, wrapStoreError(errorSubjectRequest, errorCodeInvalid, err)
	}
	return request, nil
}

// ResolveRequest moves a request out of pending with a compare-and-set on status.
func (store *Store) ResolveRequest(ctx context.Context, requestID ledger.RequestID, to ledger.RequestStatus, transactionID *ledger.TransactionID, resolvedAt time.Time) error {
	result := store.db.WithContext(ctx).
		Model(&Request{}).
		Where("id = ? AND status = ?", requestID.String(), ledger.RequestStatusPending.String()).
		Updates(map[string]interface{}{
			"status":         to.String(),
			"transaction_id": optionalString(transactionID),
			"resolved_at":    resolvedAt.UTC(),
		})
	if result.Error != nil {
		return wrapStoreError(errorSubjectRequest, errorCodeUpdateStatus, result.Error)
	}
	if result.RowsAffected == 0 {
		if _, err := store.GetRequest(ctx, requestID); err != nil {
			return err
		}
		return wrapStoreError(errorSubjectRequest, errorCodeUpdateStatus, ledger.ErrRequestNotPending)
	}
	return nil
}

func (store *Store) ListRequests(ctx context.Context, identityID ledger.IdentityID, filter ledger.RequestFilter) ([]ledger.Request, error) {
	query := store.db.WithContext(ctx)
	switch filter.Role {
	case ledger.RequestRoleIncoming:
		query = query.Where("target_id = ?", identityID.String())
	case ledger.RequestRoleOutgoing:
		query = query.Where("requester_id = ?", identityID.String())
	default:
		query = query.Where("(requester_id = ? OR target_id = ?)", identityID.String(), identityID.String())
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	return store.findRequests(query.Order("created_at DESC, id DESC"))
}

func (store *Store) ListPendingRequestsCreatedBefore(ctx context.Context, cutoff time.Time, limit int) ([]ledger.Request, error) {
	query := store.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", ledger.RequestStatusPending.String(), cutoff.UTC()).
		Order("created_at ASC, id ASC").
		Limit(limit)
	return store.findRequests(query)
}

func (store *Store) ListPendingRequestsInvolving(ctx context.Context, identityID ledger.IdentityID) ([]ledger.Request, error) {
	query := store.db.WithContext(ctx).
		Where("status = ? AND (requester_id = ? OR target_id = ?)", ledger.RequestStatusPending.String(), identityID.String(), identityID.String()).
		Order("created_at ASC, id ASC")
	return store.findRequests(query)
}

func (store *Store) findRequests(query *gorm.DB) ([]ledger.Request, error) {
	var rows []Request
	if err := query.Find(&rows).Error; err != nil {
		return nil, wrapStoreError(errorSubjectRequest, errorCodeList, err)
	}
	requests := make([]ledger.Request, 0, len(rows))
	for _, row := range rows {
		request, err := mapRequest(row)
		if err != nil {
			return nil, wrapStoreError(errorSubjectRequest, errorCodeInvalid, err)
		}
		requests = append(requests, request)
	}
	return requests, nil
}

// UpsertContact inserts a contact or refreshes its snapshot. The favorite flag
// of an existing row changes only when overwriteFavorite is set.
func (store *Store) UpsertContact(ctx context.Context, contact ledger.Contact, overwriteFavorite bool) (ledger.Contact, error) {
	model := Contact{
		OwnerID:            contact.OwnerID.String(),
		ContactID:          contact.ContactID.String(),
		ContactGamertag:    contact.ContactGamertag,
		ContactDisplayName: contact.ContactDisplayName,
		IsFavorite:         contact.IsFavorite && overwriteFavorite,
		CreatedAt:          contact.CreatedAt.UTC(),
		UpdatedAt:          contact.UpdatedAt.UTC(),
	}
	updated := []string{"contact_gamertag", "contact_display_name", "updated_at"}
	if overwriteFavorite {
		updated = append(updated, "is_favorite")
	}
	err := store.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}, {Name: "contact_id"}},
			DoUpdates: clause.AssignmentColumns(updated),
		}).
		Create(&model).Error
	if err != nil {
		return ledger.Contact{}, wrapStoreError(errorSubjectContact, errorCodeUpsert, err)
	}
	var stored Contact
	err = store.db.WithContext(ctx).
		Where("owner_id = ? AND contact_id = ?", model.OwnerID, model.ContactID).
		Take(&stored).Error
	if err != nil {
		return ledger.Contact{}, wrapStoreError(errorSubjectContact, errorCodeGet, err)
	}
	return mapContact(stored)
}

func (store *Store) ListContacts(ctx context.Context, ownerID ledger.IdentityID) ([]ledger.Contact, error) {
	var rows []Contact
	err := store.db.WithContext(ctx).
		Where("owner_id = ?", ownerID.String()).
		Order("is_favorite DESC, lower(contact_gamertag) ASC").
		Find(&rows).Error
	if err != nil {
		return nil, wrapStoreError(errorSubjectContact, errorCodeList, err)
	}
	contacts := make([]ledger.Contact, 0, len(rows))
	for _, row := range rows {
		contact, err := mapContact(row)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, contact)
	}
	return contacts, nil
}

func wrapStoreError(subject string, code string, err error) error {
	return ledger.WrapError(errorOperationStore, subject, code, err)
}

func mapIdentity(model Identity) (ledger.Identity, error) {
	identityID, err := ledger.NewIdentityID(model.ID)
	if err != nil {
		return ledger.Identity{}, wrapStoreError(errorSubjectIdentity, errorCodeInvalid, err)
	}
	userID, err := ledger.NewUserID(model.UserID)
	if err != nil {
		return ledger.Identity{}, wrapStoreError(errorSubjectIdentity, errorCodeInvalid, err)
	}
	gamertag, err := ledger.NewGamertag(model.Gamertag)
	if err != nil {
		return ledger.Identity{}, wrapStoreError(errorSubjectIdentity, errorCodeInvalid, err)
	}
	return ledger.Identity{
		ID:          identityID,
		UserID:      userID,
		Gamertag:    gamertag,
		DisplayName: model.DisplayName,
		AvatarURL:   model.AvatarURL,
		Active:      model.Active,
		CreatedAt:   model.CreatedAt.UTC(),
		UpdatedAt:   model.UpdatedAt.UTC(),
	}, nil
}

func mapAccount(model Account) (ledger.Account, error) {
	identityID, err := ledger.NewIdentityID(model.IdentityID)
	if err != nil {
		return ledger.Account{}, wrapStoreError(errorSubjectAccount, errorCodeInvalid, err)
	}
	return ledger.Account{
		IdentityID: identityID,
		Balance:    ledger.Points(model.Balance),
		UpdatedAt:  model.UpdatedAt.UTC(),
	}, nil
}

func mapTransaction(row Transaction) (ledger.Transaction, error) {
	transactionID, err := ledger.NewTransactionID(row.ID)
	if err != nil {
		return ledger.Transaction{}, err
	}
	kind, err := ledger.ParseTransactionKind(row.Kind)
	if err != nil {
		return ledger.Transaction{}, err
	}
	senderID, err := ledger.NewIdentityID(row.SenderID)
	if err != nil {
		return ledger.Transaction{}, err
	}
	receiverID, err := ledger.NewIdentityID(row.ReceiverID)
	if err != nil {
		return ledger.Transaction{}, err
	}
	amount, err := ledger.NewPoints(row.Amount)
	if err != nil {
		return ledger.Transaction{}, err
	}
	status, err := ledger.ParseTransactionStatus(row.Status)
	if err != nil {
		return ledger.Transaction{}, err
	}
	message, err := ledger.NewMessage(row.Message)
	if err != nil {
		return ledger.Transaction{}, err
	}
	metadata, err := ledger.NewMetadataJSON(string(row.Metadata))
	if err != nil {
		return ledger.Transaction{}, err
	}
	transaction := ledger.Transaction{
		ID:         transactionID,
		Kind:       kind,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Amount:     amount,
		Status:     status,
		Message:    message,
		Metadata:   metadata,
		CreatedAt:  row.CreatedAt.UTC(),
	}
	if row.RequestID != nil {
		requestID, err := ledger.NewRequestID(*row.RequestID)
		if err != nil {
			return ledger.Transaction{}, err
		}
		transaction.RequestID = &requestID
	}
	if row.ReversalOf != nil {
		reversalOf, err := ledger.NewTransactionID(*row.ReversalOf)
		if err != nil {
			return ledger.Transaction{}, err
		}
		transaction.ReversalOf = &reversalOf
	}
	return transaction, nil
}

func mapRequest(row Request) (ledger.Request, error) {
	requestID, err := ledger.NewRequestID(row.ID)
	if err != nil {
		return ledger.Request{}, err
	}
	requesterID, err := ledger.NewIdentityID(row.RequesterID)
	if err != nil {
		return ledger.Request{}, err
	}
	targetID, err := ledger.NewIdentityID(row.TargetID)
	if err != nil {
		return ledger.Request{}, err
	}
	amount, err := ledger.NewPoints(row.Amount)
	if err != nil {
		return ledger.Request{}, err
	}
	message, err := ledger.NewMessage(row.Message)
	if err != nil {
		return ledger.Request{}, err
	}
	status, err := ledger.ParseRequestStatus(row.Status)
	if err != nil {
		return ledger.Request{}, err
	}
	request := ledger.Request{
		ID:          requestID,
		RequesterID: requesterID,
		TargetID:    targetID,
		Amount:      amount,
		Message:     message,
		Status:      status,
		CreatedAt:   row.CreatedAt.UTC(),
	}
	if row.TransactionID != nil {
		transactionID, err := ledger.NewTransactionID(*row.TransactionID)
		if err != nil {
			return ledger.Request{}, err
		}
		request.TransactionID = &transactionID
	}
	if row.ResolvedAt != nil {
		resolvedAt := row.ResolvedAt.UTC()
		request.ResolvedAt = &resolvedAt
	}
	return request, nil
}

func mapContact(row Contact) (ledger.Contact, error) {
	ownerID, err := ledger.NewIdentityID(row.OwnerID)
	if err != nil {
		return ledger.Contact{}, wrapStoreError(errorSubjectContact, errorCodeInvalid, err)
	}
	contactID, err := ledger.NewIdentityID(row.ContactID)
	if err != nil {
		return ledger.Contact{}, wrapStoreError(errorSubjectContact, errorCodeInvalid, err)
	}
	return ledger.Contact{
		OwnerID:            ownerID,
		ContactID:          contactID,
		ContactGamertag:    row.ContactGamertag,
		ContactDisplayName: row.ContactDisplayName,
		IsFavorite:         row.IsFavorite,
		CreatedAt:          row.CreatedAt.UTC(),
		UpdatedAt:          row.UpdatedAt.UTC(),
	}, nil
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

func datatypesJSON(raw string) datatypes.JSON {
	if raw == "" {
		return datatypes.JSON([]byte(defaultMetadataJSON))
	}
	return datatypes.JSON([]byte(raw))
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolationCode
	}
	var sqliteErr *gosqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code()&0xFF == sqliteConstraintCode
	}
	return false
}

// conflictOn reports whether a unique violation names the given Postgres
// constraint or, on SQLite, the given table.column.
func conflictOn(err error, constraint string, sqliteColumn string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName == constraint
	}
	return strings.Contains(err.Error(), sqliteColumn)
}
