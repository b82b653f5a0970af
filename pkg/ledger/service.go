package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Service contains the domain logic over a Store.
//
// Balance mutations always run under the account locks of every identity
// they touch, acquired through the Locker in ascending key order, and inside
// a single Store transaction.
type Service struct {
	store  Store
	nowFn  func() time.Time
	newID  func() string
	locker Locker
	logger OperationLogger
}

// NewService wires a Service.
func NewService(store Store, now func() time.Time, options ...ServiceOption) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: store dependency is nil", ErrInvalidServiceConfig)
	}
	if now == nil {
		return nil, fmt.Errorf("%w: clock dependency is nil", ErrInvalidServiceConfig)
	}
	service := &Service{
		store:  store,
		nowFn:  now,
		newID:  uuid.NewString,
		locker: NewKeyedLocker(DefaultLockTimeout),
	}
	for _, option := range options {
		if option != nil {
			option(service)
		}
	}
	return service, nil
}

func (service *Service) now() time.Time {
	return service.nowFn().UTC()
}

func (service *Service) lockAccounts(ctx context.Context, identityIDs ...IdentityID) (Unlock, error) {
	keys := make([]string, 0, len(identityIDs))
	for _, identityID := range identityIDs {
		keys = append(keys, accountLockKey(identityID))
	}
	return service.locker.Lock(ctx, keys...)
}

func (service *Service) newTransactionID() (TransactionID, error) {
	return NewTransactionID(service.newID())
}

func (service *Service) newRequestID() (RequestID, error) {
	return NewRequestID(service.newID())
}

func (service *Service) newIdentityID() (IdentityID, error) {
	return NewIdentityID(service.newID())
}

func (service *Service) logOperation(ctx context.Context, entry OperationLog) {
	if service.logger == nil {
		return
	}
	if entry.Status == "" {
		if entry.Error != nil {
			entry.Status = operationStatusError
		} else {
			entry.Status = operationStatusOK
		}
	}
	service.logger.LogOperation(ctx, entry)
}

func normalizeHistoryLimit(limit int) int {
	if limit <= 0 {
		return defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		return maxHistoryLimit
	}
	return limit
}
