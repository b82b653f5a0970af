package ledger

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
)

func TestCreditAndDebit(test *testing.T) {
	test.Parallel()
	testCases := []struct {
		name        string
		operate     func(service *Service, identityID IdentityID) (Points, error)
		wantErr     error
		wantBalance Points
	}{
		{
			name: "credit adds points",
			operate: func(service *Service, identityID IdentityID) (Points, error) {
				return service.Credit(context.Background(), identityID, 40)
			},
			wantBalance: 140,
		},
		{
			name: "debit removes points",
			operate: func(service *Service, identityID IdentityID) (Points, error) {
				return service.Debit(context.Background(), identityID, 100)
			},
			wantBalance: 0,
		},
		{
			name: "debit beyond balance fails",
			operate: func(service *Service, identityID IdentityID) (Points, error) {
				return service.Debit(context.Background(), identityID, 101)
			},
			wantErr:     ErrInsufficientBalance,
			wantBalance: 100,
		},
		{
			name: "zero credit rejected",
			operate: func(service *Service, identityID IdentityID) (Points, error) {
				return service.Credit(context.Background(), identityID, 0)
			},
			wantErr:     ErrInvalidAmount,
			wantBalance: 100,
		},
		{
			name: "negative debit rejected",
			operate: func(service *Service, identityID IdentityID) (Points, error) {
				return service.Debit(context.Background(), identityID, -1)
			},
			wantErr:     ErrInvalidAmount,
			wantBalance: 100,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		test.Run(testCase.name, func(test *testing.T) {
			test.Parallel()
			fixture := newTestLedger(test)
			owner := fixture.mustEnroll(test, "owner", 100)

			balance, err := testCase.operate(fixture.service, owner.ID)
			if !errors.Is(err, testCase.wantErr) {
				test.Fatalf(errorMismatchMessage, testCase.wantErr, err)
			}
			if err == nil && balance != testCase.wantBalance {
				test.Fatalf("expected returned balance %d, got %d", testCase.wantBalance, balance)
			}
			fixture.expectBalance(test, owner, testCase.wantBalance)
		})
	}
}

func TestBalanceOfUnknownAccount(test *testing.T) {
	test.Parallel()
	fixture := newTestLedger(test)
	missing, _ := NewIdentityID("missing")
	if _, err := fixture.service.Balance(context.Background(), missing); !errors.Is(err, ErrUnknownAccount) {
		test.Fatalf(errorMismatchMessage, ErrUnknownAccount, err)
	}
	if _, err := fixture.service.Credit(context.Background(), missing, 5); !errors.Is(err, ErrUnknownAccount) {
		test.Fatalf(errorMismatchMessage, ErrUnknownAccount, err)
	}
	if _, err := fixture.service.OpenAccount(context.Background(), missing); !errors.Is(err, ErrUnknownIdentity) {
		test.Fatalf(errorMismatchMessage, ErrUnknownIdentity, err)
	}
}

func TestConcurrentDebitsNeverGoNegative(test *testing.T) {
	test.Parallel()
	fixture := newTestLedger(test)
	owner := fixture.mustEnroll(test, "owner", 1000)

	const debits = 25
	var waitGroup sync.WaitGroup
	results := make(chan error, debits)
	for index := 0; index < debits; index++ {
		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()
			_, err := fixture.service.Debit(context.Background(), owner.ID, 70)
			results <- err
		}()
	}
	waitGroup.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		if !errors.Is(err, ErrInsufficientBalance) {
			test.Fatalf("unexpected error: %v", err)
		}
	}
	if succeeded != 14 {
		test.Fatalf("expected 14 debits of 70 to fit in 1000, got %d", succeeded)
	}
	fixture.expectBalance(test, owner, 20)
}

func TestCreditRejectsBalanceOverflow(test *testing.T) {
	test.Parallel()
	fixture := newTestLedger(test)
	alice := fixture.mustEnroll(test, "alice", math.MaxInt64-5)

	if _, err := fixture.service.Credit(context.Background(), alice.ID, 5); err != nil {
		test.Fatalf("credit up to the limit failed: %v", err)
	}
	_, err := fixture.service.Credit(context.Background(), alice.ID, 1)
	if !errors.Is(err, ErrInvalidAmount) {
		test.Fatalf(errorMismatchMessage, ErrInvalidAmount, err)
	}
	fixture.expectBalance(test, alice, math.MaxInt64)

	if _, err := fixture.service.Debit(context.Background(), alice.ID, math.MaxInt64); err != nil {
		test.Fatalf("debit of the full balance failed: %v", err)
	}
	fixture.expectBalance(test, alice, 0)
}
