package ledger

import (
	"context"
	"errors"
	"sort"
	"time"
)

// TransferInput describes a send initiated by senderID.
type TransferInput struct {
	SenderID         IdentityID
	ReceiverGamertag Gamertag
	Amount           Points
	Message          Message
	Metadata         MetadataJSON
}

type transferPlan struct {
	transactionID TransactionID
	kind          TransactionKind
	senderID      IdentityID
	receiver      Identity
	amount        Points
	message       Message
	metadata      MetadataJSON
	requestID     *RequestID
}

// Transfer moves points from the sender to the identity holding the gamertag.
// The debit, the credit and the transaction record land together or not at all.
// Once called, the transfer ignores cancellation of ctx; lock waits stay
// bounded by the Locker timeout.
func (service *Service) Transfer(ctx context.Context, input TransferInput) (Transaction, error) {
	ctx = context.WithoutCancel(ctx)
	var (
		transaction Transaction
		receiverID  IdentityID
	)
	operationError := func() error {
		receiver, err := service.resolveRecipient(ctx, input.ReceiverGamertag)
		if err != nil {
			return err
		}
		receiverID = receiver.ID
		if receiver.ID == input.SenderID {
			return ErrSelfTransferNotAllowed
		}
		if input.Amount <= 0 {
			return ErrInvalidAmount
		}
		transactionID, err := service.newTransactionID()
		if err != nil {
			return err
		}
		plan := transferPlan{
			transactionID: transactionID,
			kind:          TransactionKindTransfer,
			senderID:      input.SenderID,
			receiver:      receiver,
			amount:        input.Amount,
			message:       input.Message,
			metadata:      input.Metadata,
		}
		transaction, err = service.executeTransfer(ctx, plan, nil)
		return err
	}()
	service.logOperation(ctx, OperationLog{
		Operation:      operationTransfer,
		ActorID:        input.SenderID,
		CounterpartyID: receiverID,
		Amount:         input.Amount,
		TransactionID:  transactionIDRef(transaction),
		Error:          operationError,
	})
	return transaction, operationError
}

// executeTransfer locks both accounts, runs beforeApply and the transfer in one
// store transaction, and records a failed attempt when the sender is short.
func (service *Service) executeTransfer(ctx context.Context, plan transferPlan, beforeApply func(ctx context.Context, transactionStore Store) error) (Transaction, error) {
	unlock, err := service.lockAccounts(ctx, plan.senderID, plan.receiver.ID)
	if err != nil {
		return Transaction{}, err
	}
	defer unlock()

	var transaction Transaction
	err = service.store.WithTx(ctx, func(ctx context.Context, transactionStore Store) error {
		if beforeApply != nil {
			if err := beforeApply(ctx, transactionStore); err != nil {
				return err
			}
		}
		applied, err := service.applyTransfer(ctx, transactionStore, plan)
		if err != nil {
			return err
		}
		transaction = applied
		return nil
	})
	if errors.Is(err, ErrInsufficientBalance) {
		service.recordFailedAttempt(ctx, plan)
	}
	if err != nil {
		return Transaction{}, err
	}
	return transaction, nil
}

func (service *Service) applyTransfer(ctx context.Context, transactionStore Store, plan transferPlan) (Transaction, error) {
	accounts, err := readAccounts(ctx, transactionStore, plan.senderID, plan.receiver.ID)
	if err != nil {
		return Transaction{}, err
	}
	if err := checkCredit(accounts[plan.receiver.ID].Balance, plan.amount.Int64()); err != nil {
		return Transaction{}, err
	}
	sender, err := transactionStore.GetIdentity(ctx, plan.senderID)
	if err != nil {
		return Transaction{}, err
	}
	if !sender.Active {
		return Transaction{}, ErrIdentityInactive
	}
	now := service.now()
	if _, err := transactionStore.AdjustBalance(ctx, plan.senderID, -plan.amount.Int64(), now); err != nil {
		return Transaction{}, err
	}
	if _, err := transactionStore.AdjustBalance(ctx, plan.receiver.ID, plan.amount.Int64(), now); err != nil {
		return Transaction{}, err
	}
	transaction := plan.transaction(TransactionStatusCompleted, now)
	if err := transactionStore.InsertTransaction(ctx, transaction); err != nil {
		return Transaction{}, err
	}
	if _, err := transactionStore.UpsertContact(ctx, contactOf(plan.senderID, plan.receiver, now), false); err != nil {
		return Transaction{}, err
	}
	return transaction, nil
}

// readAccounts loads accounts in ascending id order, the order of the account
// locks, so stores that lock rows on read take them in that order too.
func readAccounts(ctx context.Context, transactionStore Store, identityIDs ...IdentityID) (map[IdentityID]Account, error) {
	ordered := append([]IdentityID(nil), identityIDs...)
	sort.Slice(ordered, func(left, right int) bool {
		return ordered[left].String() < ordered[right].String()
	})
	accounts := make(map[IdentityID]Account, len(ordered))
	for _, identityID := range ordered {
		if _, seen := accounts[identityID]; seen {
			continue
		}
		account, err := transactionStore.GetAccount(ctx, identityID)
		if err != nil {
			return nil, err
		}
		accounts[identityID] = account
	}
	return accounts, nil
}

// recordFailedAttempt appends a failed transaction outside the rolled-back
// transfer so history reflects the rejection. It never touches balances; a
// record that cannot be written is reported to the operation logger.
func (service *Service) recordFailedAttempt(ctx context.Context, plan transferPlan) {
	failedID, err := service.newTransactionID()
	if err == nil {
		plan.transactionID = failedID
		err = service.store.InsertTransaction(ctx, plan.transaction(TransactionStatusFailed, service.now()))
	}
	if err == nil {
		return
	}
	service.logOperation(ctx, OperationLog{
		Operation:      operationTransferFailed,
		ActorID:        plan.senderID,
		CounterpartyID: plan.receiver.ID,
		Amount:         plan.amount,
		RequestID:      plan.requestID,
		Error:          err,
	})
}

func (plan transferPlan) transaction(status TransactionStatus, at time.Time) Transaction {
	return Transaction{
		ID:         plan.transactionID,
		Kind:       plan.kind,
		SenderID:   plan.senderID,
		ReceiverID: plan.receiver.ID,
		Amount:     plan.amount,
		Status:     status,
		Message:    plan.message,
		Metadata:   plan.metadata,
		RequestID:  plan.requestID,
		CreatedAt:  at,
	}
}

// Reverse undoes a completed transaction with a compensating entry. The
// original moves to reversed in the same store transaction, so a second call
// fails with ErrAlreadyReversed. Like Transfer it ignores cancellation of ctx.
func (service *Service) Reverse(ctx context.Context, transactionID TransactionID) (Transaction, error) {
	ctx = context.WithoutCancel(ctx)
	var (
		compensating Transaction
		original     Transaction
	)
	operationError := func() error {
		var err error
		original, err = service.store.GetTransaction(ctx, transactionID)
		if err != nil {
			return err
		}
		if err := checkReversible(original); err != nil {
			return err
		}
		compensatingID, err := service.newTransactionID()
		if err != nil {
			return err
		}
		unlock, err := service.lockAccounts(ctx, original.SenderID, original.ReceiverID)
		if err != nil {
			return err
		}
		defer unlock()
		return service.store.WithTx(ctx, func(ctx context.Context, transactionStore Store) error {
			current, err := transactionStore.GetTransaction(ctx, transactionID)
			if err != nil {
				return err
			}
			if err := checkReversible(current); err != nil {
				return err
			}
			accounts, err := readAccounts(ctx, transactionStore, current.SenderID, current.ReceiverID)
			if err != nil {
				return err
			}
			if err := checkCredit(accounts[current.SenderID].Balance, current.Amount.Int64()); err != nil {
				return err
			}
			if err := transactionStore.UpdateTransactionStatus(ctx, transactionID, TransactionStatusCompleted, TransactionStatusReversed); err != nil {
				return err
			}
			now := service.now()
			if _, err := transactionStore.AdjustBalance(ctx, current.ReceiverID, -current.Amount.Int64(), now); err != nil {
				return err
			}
			if _, err := transactionStore.AdjustBalance(ctx, current.SenderID, current.Amount.Int64(), now); err != nil {
				return err
			}
			reversalOf := current.ID
			compensating = Transaction{
				ID:         compensatingID,
				Kind:       TransactionKindReversal,
				SenderID:   current.ReceiverID,
				ReceiverID: current.SenderID,
				Amount:     current.Amount,
				Status:     TransactionStatusReversed,
				Message:    current.Message,
				Metadata:   current.Metadata,
				RequestID:  current.RequestID,
				ReversalOf: &reversalOf,
				CreatedAt:  now,
			}
			return transactionStore.InsertTransaction(ctx, compensating)
		})
	}()
	service.logOperation(ctx, OperationLog{
		Operation:      operationReverse,
		ActorID:        original.SenderID,
		CounterpartyID: original.ReceiverID,
		Amount:         original.Amount,
		TransactionID:  &transactionID,
		Error:          operationError,
	})
	if operationError != nil {
		return Transaction{}, operationError
	}
	return compensating, nil
}

func checkReversible(transaction Transaction) error {
	switch transaction.Status {
	case TransactionStatusCompleted:
		return nil
	case TransactionStatusReversed:
		return ErrAlreadyReversed
	}
	return ErrNotReversible
}

func transactionIDRef(transaction Transaction) *TransactionID {
	if transaction.ID.value == "" {
		return nil
	}
	transactionID := transaction.ID
	return &transactionID
}
