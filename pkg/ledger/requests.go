package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// RequestInput describes an ask for points from the identity holding TargetGamertag.
type RequestInput struct {
	RequesterID    IdentityID
	TargetGamertag Gamertag
	Amount         Points
	Message        Message
}

// CreateRequest records a pending ask. The requester is the intended receiver.
func (service *Service) CreateRequest(ctx context.Context, input RequestInput) (Request, error) {
	var (
		request  Request
		targetID IdentityID
	)
	operationError := func() error {
		target, err := service.resolveRecipient(ctx, input.TargetGamertag)
		if err != nil {
			return err
		}
		targetID = target.ID
		if target.ID == input.RequesterID {
			return ErrSelfTransferNotAllowed
		}
		if input.Amount <= 0 {
			return ErrInvalidAmount
		}
		requestID, err := service.newRequestID()
		if err != nil {
			return err
		}
		now := service.now()
		pending := Request{
			ID:          requestID,
			RequesterID: input.RequesterID,
			TargetID:    target.ID,
			Amount:      input.Amount,
			Message:     input.Message,
			Status:      RequestStatusPending,
			CreatedAt:   now,
		}
		return service.store.WithTx(ctx, func(ctx context.Context, transactionStore Store) error {
			if _, err := transactionStore.GetAccount(ctx, input.RequesterID); err != nil {
				return err
			}
			requester, err := transactionStore.GetIdentity(ctx, input.RequesterID)
			if err != nil {
				return err
			}
			if !requester.Active {
				return ErrIdentityInactive
			}
			if err := transactionStore.InsertRequest(ctx, pending); err != nil {
				return err
			}
			if _, err := transactionStore.UpsertContact(ctx, contactOf(input.RequesterID, target, now), false); err != nil {
				return err
			}
			request = pending
			return nil
		})
	}()
	service.logOperation(ctx, OperationLog{
		Operation:      operationRequestCreate,
		ActorID:        input.RequesterID,
		CounterpartyID: targetID,
		Amount:         input.Amount,
		RequestID:      requestIDRef(request),
		Error:          operationError,
	})
	return request, operationError
}

// AcceptRequest pays a pending request on behalf of its target. The request
// moves to accepted in the same store transaction as the transfer; when the
// transfer fails the request stays pending and the error is returned.
func (service *Service) AcceptRequest(ctx context.Context, requestID RequestID, actingID IdentityID) (Transaction, error) {
	ctx = context.WithoutCancel(ctx)
	var (
		transaction Transaction
		request     Request
	)
	operationError := func() error {
		var err error
		request, err = authorizePending(ctx, service.store, requestID, actingID)
		if err != nil {
			return err
		}
		requester, err := service.store.GetIdentity(ctx, request.RequesterID)
		if err != nil {
			return err
		}
		receiver, err := service.resolveRecipient(ctx, requester.Gamertag)
		if err != nil {
			return err
		}
		transactionID, err := service.newTransactionID()
		if err != nil {
			return err
		}
		plan := transferPlan{
			transactionID: transactionID,
			kind:          TransactionKindRequest,
			senderID:      request.TargetID,
			receiver:      receiver,
			amount:        request.Amount,
			message:       request.Message,
			requestID:     &requestID,
		}
		settle := func(ctx context.Context, transactionStore Store) error {
			return transactionStore.ResolveRequest(ctx, requestID, RequestStatusAccepted, &transactionID, service.now())
		}
		transaction, err = service.executeTransfer(ctx, plan, settle)
		return err
	}()
	service.logOperation(ctx, OperationLog{
		Operation:      operationRequestAccept,
		ActorID:        actingID,
		CounterpartyID: request.RequesterID,
		Amount:         request.Amount,
		TransactionID:  transactionIDRef(transaction),
		RequestID:      &requestID,
		Error:          operationError,
	})
	return transaction, operationError
}

// DeclineRequest closes a pending request on behalf of its target without moving points.
func (service *Service) DeclineRequest(ctx context.Context, requestID RequestID, actingID IdentityID) (Request, error) {
	var request Request
	operationError := service.store.WithTx(ctx, func(ctx context.Context, transactionStore Store) error {
		pending, err := authorizePending(ctx, transactionStore, requestID, actingID)
		if err != nil {
			return err
		}
		request = pending
		now := service.now()
		if err := transactionStore.ResolveRequest(ctx, requestID, RequestStatusDeclined, nil, now); err != nil {
			return err
		}
		request.Status = RequestStatusDeclined
		request.ResolvedAt = &now
		return nil
	})
	service.logOperation(ctx, OperationLog{
		Operation:      operationRequestDecline,
		ActorID:        actingID,
		CounterpartyID: request.RequesterID,
		Amount:         request.Amount,
		RequestID:      &requestID,
		Error:          operationError,
	})
	if operationError != nil {
		return Request{}, operationError
	}
	return request, nil
}

// ExpireRequest moves a pending request to expired. Balances are untouched.
func (service *Service) ExpireRequest(ctx context.Context, requestID RequestID) (Request, error) {
	request, operationError := service.expire(ctx, requestID)
	service.logOperation(ctx, OperationLog{
		Operation:      operationRequestExpire,
		ActorID:        request.TargetID,
		CounterpartyID: request.RequesterID,
		Amount:         request.Amount,
		RequestID:      &requestID,
		Error:          operationError,
	})
	if operationError != nil {
		return Request{}, operationError
	}
	return request, nil
}

func (service *Service) expire(ctx context.Context, requestID RequestID) (Request, error) {
	var request Request
	err := service.store.WithTx(ctx, func(ctx context.Context, transactionStore Store) error {
		current, err := transactionStore.GetRequest(ctx, requestID)
		if err != nil {
			return err
		}
		request = current
		if current.Status != RequestStatusPending {
			return fmt.Errorf("%w: %s", ErrRequestNotPending, current.Status)
		}
		now := service.now()
		if err := transactionStore.ResolveRequest(ctx, requestID, RequestStatusExpired, nil, now); err != nil {
			return err
		}
		request.Status = RequestStatusExpired
		request.ResolvedAt = &now
		return nil
	})
	return request, err
}

// ExpireStale expires every pending request older than ttl and reports how
// many moved. Requests resolved concurrently by accept or decline are skipped.
func (service *Service) ExpireStale(ctx context.Context, ttl time.Duration) (int, error) {
	if ttl <= 0 {
		return 0, fmt.Errorf("%w: request ttl must be positive", ErrInvalidServiceConfig)
	}
	cutoff := service.now().Add(-ttl)
	expired := 0
	for {
		batch, err := service.store.ListPendingRequestsCreatedBefore(ctx, cutoff, expireBatchSize)
		if err != nil {
			return expired, err
		}
		moved := 0
		for _, request := range batch {
			if _, err := service.ExpireRequest(ctx, request.ID); err != nil {
				if errors.Is(err, ErrRequestNotPending) {
					continue
				}
				return expired, err
			}
			moved++
		}
		expired += moved
		if len(batch) < expireBatchSize || moved == 0 {
			return expired, nil
		}
	}
}

// ListRequests returns the requests an identity sent or received, newest first.
func (service *Service) ListRequests(ctx context.Context, identityID IdentityID, filter RequestFilter) ([]Request, error) {
	if _, err := service.store.GetIdentity(ctx, identityID); err != nil {
		return nil, err
	}
	return service.store.ListRequests(ctx, identityID, filter)
}

// Request returns a request visible to identityID, as requester or target.
func (service *Service) Request(ctx context.Context, requestID RequestID, identityID IdentityID) (Request, error) {
	request, err := service.store.GetRequest(ctx, requestID)
	if err != nil {
		return Request{}, err
	}
	if request.RequesterID != identityID && request.TargetID != identityID {
		return Request{}, ErrNotAuthorized
	}
	return request, nil
}

func authorizePending(ctx context.Context, store Store, requestID RequestID, actingID IdentityID) (Request, error) {
	request, err := store.GetRequest(ctx, requestID)
	if err != nil {
		return Request{}, err
	}
	if request.TargetID != actingID {
		return Request{}, ErrNotAuthorized
	}
	if request.Status != RequestStatusPending {
		return Request{}, fmt.Errorf("%w: %s", ErrRequestNotPending, request.Status)
	}
	return request, nil
}

func requestIDRef(request Request) *RequestID {
	if request.ID.value == "" {
		return nil
	}
	requestID := request.ID
	return &requestID
}
