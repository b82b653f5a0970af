package ledger

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// OpenAccount creates the zero-balance account of an identity. Opening an
// account that already exists returns it unchanged.
func (service *Service) OpenAccount(ctx context.Context, identityID IdentityID) (Account, error) {
	var account Account
	operationError := service.store.WithTx(ctx, func(ctx context.Context, transactionStore Store) error {
		if _, err := transactionStore.GetIdentity(ctx, identityID); err != nil {
			return err
		}
		existing, err := transactionStore.GetAccount(ctx, identityID)
		if err == nil {
			account = existing
			return nil
		}
		if !errors.Is(err, ErrUnknownAccount) {
			return err
		}
		account = Account{IdentityID: identityID, UpdatedAt: service.now()}
		return transactionStore.CreateAccount(ctx, account)
	})
	service.logOperation(ctx, OperationLog{
		Operation: operationOpenAccount,
		ActorID:   identityID,
		Error:     operationError,
	})
	return account, operationError
}

// Balance returns the current point balance.
func (service *Service) Balance(ctx context.Context, identityID IdentityID) (Points, error) {
	account, err := service.store.GetAccount(ctx, identityID)
	if err != nil {
		return 0, err
	}
	return account.Balance, nil
}

// Credit adds points to an account, e.g. points earned on a storefront order.
func (service *Service) Credit(ctx context.Context, identityID IdentityID, amount Points) (Points, error) {
	balance, operationError := service.adjust(ctx, identityID, amount, amount.Int64())
	service.logOperation(ctx, OperationLog{
		Operation: operationCredit,
		ActorID:   identityID,
		Amount:    amount,
		Error:     operationError,
	})
	return balance, operationError
}

// Debit removes points from an account, failing with ErrInsufficientBalance
// rather than letting the balance go negative.
func (service *Service) Debit(ctx context.Context, identityID IdentityID, amount Points) (Points, error) {
	balance, operationError := service.adjust(ctx, identityID, amount, -amount.Int64())
	service.logOperation(ctx, OperationLog{
		Operation: operationDebit,
		ActorID:   identityID,
		Amount:    amount,
		Error:     operationError,
	})
	return balance, operationError
}

func (service *Service) adjust(ctx context.Context, identityID IdentityID, amount Points, delta int64) (Points, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	unlock, err := service.lockAccounts(ctx, identityID)
	if err != nil {
		return 0, err
	}
	defer unlock()

	var balance Points
	err = service.store.WithTx(ctx, func(ctx context.Context, transactionStore Store) error {
		account, err := transactionStore.GetAccount(ctx, identityID)
		if err != nil {
			return err
		}
		if err := checkCredit(account.Balance, delta); err != nil {
			return err
		}
		updated, err := transactionStore.AdjustBalance(ctx, identityID, delta, service.now())
		if err != nil {
			return err
		}
		balance = updated
		return nil
	})
	return balance, err
}

// checkCredit rejects a positive delta that would push balance past the
// largest representable amount.
func checkCredit(balance Points, delta int64) error {
	if delta > 0 && balance.Int64() > math.MaxInt64-delta {
		return fmt.Errorf("%w: balance would exceed %d", ErrInvalidAmount, int64(math.MaxInt64))
	}
	return nil
}
