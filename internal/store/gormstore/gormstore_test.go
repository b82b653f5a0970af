package gormstore

import (
	"context"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/MarkoPoloResearchLab/kolofap/pkg/ledger"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const errorMismatchMessage = "expected %v, got %v"

func openTestDB(test *testing.T) *gorm.DB {
	test.Helper()
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", filepath.Join(test.TempDir(), "kolofap.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		test.Fatalf("sqlite open failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		test.Fatalf("sql db handle failed: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	test.Cleanup(func() { _ = sqlDB.Close() })
	if err := AutoMigrate(db); err != nil {
		test.Fatalf("automigrate failed: %v", err)
	}
	return db
}

func newTestService(test *testing.T) (*ledger.Service, *Store) {
	test.Helper()
	store := New(openTestDB(test))
	service, err := ledger.NewService(store, func() time.Time { return time.Now().UTC() })
	if err != nil {
		test.Fatalf("service init failed: %v", err)
	}
	return service, store
}

func mustGamertag(test *testing.T, raw string) ledger.Gamertag {
	test.Helper()
	gamertag, err := ledger.NewGamertag(raw)
	if err != nil {
		test.Fatalf("gamertag %q: %v", raw, err)
	}
	return gamertag
}

func mustEnroll(test *testing.T, service *ledger.Service, gamertag string, balance ledger.Points) ledger.Identity {
	test.Helper()
	userID, err := ledger.NewUserID("user-" + gamertag)
	if err != nil {
		test.Fatalf("user id: %v", err)
	}
	identity, err := service.Enroll(context.Background(), ledger.Registration{UserID: userID, Gamertag: mustGamertag(test, gamertag)})
	if err != nil {
		test.Fatalf("enroll %s: %v", gamertag, err)
	}
	if balance > 0 {
		if _, err := service.Credit(context.Background(), identity.ID, balance); err != nil {
			test.Fatalf("credit %s: %v", gamertag, err)
		}
	}
	return identity
}

func expectBalance(test *testing.T, service *ledger.Service, identity ledger.Identity, want ledger.Points) {
	test.Helper()
	got, err := service.Balance(context.Background(), identity.ID)
	if err != nil {
		test.Fatalf("balance %s: %v", identity.Gamertag, err)
	}
	if got != want {
		test.Fatalf("balance of %s: expected %d, got %d", identity.Gamertag, want, got)
	}
}

func TestTransferAndRequestLifecycleOnSQLite(test *testing.T) {
	test.Parallel()
	service, _ := newTestService(test)
	alice := mustEnroll(test, service, "alice", 10000)
	bob := mustEnroll(test, service, "bob", 0)

	metadata, err := ledger.NewMetadataJSON(`{"order":"A-17"}`)
	if err != nil {
		test.Fatalf("metadata: %v", err)
	}
	transaction, err := service.Transfer(context.Background(), ledger.TransferInput{
		SenderID:         alice.ID,
		ReceiverGamertag: mustGamertag(test, "BOB"),
		Amount:           5000,
		Metadata:         metadata,
	})
	if err != nil {
		test.Fatalf("transfer failed: %v", err)
	}
	expectBalance(test, service, alice, 5000)
	expectBalance(test, service, bob, 5000)

	stored, err := service.Transaction(context.Background(), transaction.ID, alice.ID)
	if err != nil {
		test.Fatalf("lookup failed: %v", err)
	}
	if stored.Metadata.String() != `{"order":"A-17"}` || stored.Status != ledger.TransactionStatusCompleted {
		test.Fatalf("unexpected stored transaction: %+v", stored)
	}

	_, err = service.Transfer(context.Background(), ledger.TransferInput{SenderID: bob.ID, ReceiverGamertag: alice.Gamertag, Amount: 9000})
	if !errors.Is(err, ledger.ErrInsufficientBalance) {
		test.Fatalf(errorMismatchMessage, ledger.ErrInsufficientBalance, err)
	}
	expectBalance(test, service, bob, 5000)

	refund, err := ledger.NewMessage("refund")
	if err != nil {
		test.Fatalf("message: %v", err)
	}
	request, err := service.CreateRequest(context.Background(), ledger.RequestInput{
		RequesterID:    bob.ID,
		TargetGamertag: alice.Gamertag,
		Amount:         2000,
		Message:        refund,
	})
	if err != nil {
		test.Fatalf("create request failed: %v", err)
	}
	settled, err := service.AcceptRequest(context.Background(), request.ID, alice.ID)
	if err != nil {
		test.Fatalf("accept failed: %v", err)
	}
	expectBalance(test, service, alice, 3000)
	expectBalance(test, service, bob, 7000)
	accepted, err := service.Request(context.Background(), request.ID, bob.ID)
	if err != nil {
		test.Fatalf("request lookup failed: %v", err)
	}
	if accepted.Status != ledger.RequestStatusAccepted || accepted.TransactionID == nil || *accepted.TransactionID != settled.ID {
		test.Fatalf("unexpected accepted request: %+v", accepted)
	}
	if _, err := service.AcceptRequest(context.Background(), request.ID, alice.ID); !errors.Is(err, ledger.ErrRequestNotPending) {
		test.Fatalf(errorMismatchMessage, ledger.ErrRequestNotPending, err)
	}

	if _, err := service.Reverse(context.Background(), transaction.ID); err != nil {
		test.Fatalf("reverse failed: %v", err)
	}
	if _, err := service.Reverse(context.Background(), transaction.ID); !errors.Is(err, ledger.ErrAlreadyReversed) {
		test.Fatalf(errorMismatchMessage, ledger.ErrAlreadyReversed, err)
	}
	expectBalance(test, service, alice, 8000)
	expectBalance(test, service, bob, 2000)

	page, err := service.History(context.Background(), bob.ID, "", 2)
	if err != nil {
		test.Fatalf("history failed: %v", err)
	}
	if len(page.Transactions) != 2 || page.NextCursor == "" {
		test.Fatalf("expected a full first page, got %+v", page)
	}
	if page.Transactions[0].Kind != ledger.TransactionKindReversal {
		test.Fatalf("expected newest entry to be the reversal, got %+v", page.Transactions[0])
	}
	rest, err := service.History(context.Background(), bob.ID, page.NextCursor, 10)
	if err != nil {
		test.Fatalf("history page 2 failed: %v", err)
	}
	if len(rest.Transactions) != 2 || rest.NextCursor != "" {
		test.Fatalf("expected two remaining entries, got %+v", rest)
	}
}

func TestConcurrentTransfersOnSQLite(test *testing.T) {
	test.Parallel()
	service, _ := newTestService(test)
	alice := mustEnroll(test, service, "alice", 10000)
	bob := mustEnroll(test, service, "bob", 0)
	carol := mustEnroll(test, service, "carol", 0)

	var waitGroup sync.WaitGroup
	results := make(chan error, 2)
	for _, receiver := range []ledger.Identity{bob, carol} {
		waitGroup.Add(1)
		go func(receiver ledger.Identity) {
			defer waitGroup.Done()
			_, err := service.Transfer(context.Background(), ledger.TransferInput{SenderID: alice.ID, ReceiverGamertag: receiver.Gamertag, Amount: 6000})
			results <- err
		}(receiver)
	}
	waitGroup.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		if !errors.Is(err, ledger.ErrInsufficientBalance) {
			test.Fatalf("unexpected error: %v", err)
		}
	}
	if succeeded != 1 {
		test.Fatalf("expected exactly one transfer to succeed, got %d", succeeded)
	}
	expectBalance(test, service, alice, 4000)
}

func TestAdjustBalanceGuardsNegative(test *testing.T) {
	test.Parallel()
	_, store := newTestService(test)
	identityID, _ := ledger.NewIdentityID("acct-1")
	now := time.Now().UTC()
	if err := store.CreateAccount(context.Background(), ledger.Account{IdentityID: identityID, UpdatedAt: now}); err != nil {
		test.Fatalf("create account failed: %v", err)
	}
	if err := store.CreateAccount(context.Background(), ledger.Account{IdentityID: identityID, UpdatedAt: now}); !errors.Is(err, ledger.ErrDuplicateID) {
		test.Fatalf(errorMismatchMessage, ledger.ErrDuplicateID, err)
	}
	balance, err := store.AdjustBalance(context.Background(), identityID, 50, now)
	if err != nil || balance != 50 {
		test.Fatalf("expected balance 50, got %d (%v)", balance, err)
	}
	if _, err := store.AdjustBalance(context.Background(), identityID, -51, now); !errors.Is(err, ledger.ErrInsufficientBalance) {
		test.Fatalf(errorMismatchMessage, ledger.ErrInsufficientBalance, err)
	}
	missing, _ := ledger.NewIdentityID("missing")
	if _, err := store.AdjustBalance(context.Background(), missing, 1, now); !errors.Is(err, ledger.ErrUnknownAccount) {
		test.Fatalf(errorMismatchMessage, ledger.ErrUnknownAccount, err)
	}
	account, err := store.GetAccount(context.Background(), identityID)
	if err != nil || account.Balance != 50 {
		test.Fatalf("expected balance to stay 50, got %+v (%v)", account, err)
	}
}

func TestIdentityUniquenessAmongActiveRows(test *testing.T) {
	test.Parallel()
	_, store := newTestService(test)
	now := time.Now().UTC()
	build := func(id string, user string, gamertag string) ledger.Identity {
		identityID, _ := ledger.NewIdentityID(id)
		userID, _ := ledger.NewUserID(user)
		return ledger.Identity{ID: identityID, UserID: userID, Gamertag: mustGamertag(test, gamertag), DisplayName: gamertag, Active: true, CreatedAt: now, UpdatedAt: now}
	}
	first := build("id-1", "user-1", "Neo")
	if err := store.CreateIdentity(context.Background(), first); err != nil {
		test.Fatalf("create failed: %v", err)
	}
	if err := store.CreateIdentity(context.Background(), build("id-2", "user-2", "neo")); !errors.Is(err, ledger.ErrDuplicateHandle) {
		test.Fatalf(errorMismatchMessage, ledger.ErrDuplicateHandle, err)
	}
	if err := store.CreateIdentity(context.Background(), build("id-3", "user-1", "trinity")); !errors.Is(err, ledger.ErrIdentityExists) {
		test.Fatalf(errorMismatchMessage, ledger.ErrIdentityExists, err)
	}

	first.Active = false
	if err := store.UpdateIdentity(context.Background(), first); err != nil {
		test.Fatalf("deactivate failed: %v", err)
	}
	if err := store.CreateIdentity(context.Background(), build("id-4", "user-4", "NEO")); err != nil {
		test.Fatalf("expected handle to be free after deactivation: %v", err)
	}
	found, err := store.FindActiveIdentityByGamertag(context.Background(), mustGamertag(test, "neo"))
	if err != nil || found.ID.String() != "id-4" {
		test.Fatalf("expected id-4, got %+v (%v)", found, err)
	}
}

func TestResolveRequestCompareAndSet(test *testing.T) {
	test.Parallel()
	_, store := newTestService(test)
	now := time.Now().UTC()
	requestID, _ := ledger.NewRequestID("req-1")
	requesterID, _ := ledger.NewIdentityID("requester")
	targetID, _ := ledger.NewIdentityID("target")
	request := ledger.Request{ID: requestID, RequesterID: requesterID, TargetID: targetID, Amount: 5, Status: ledger.RequestStatusPending, CreatedAt: now}
	if err := store.InsertRequest(context.Background(), request); err != nil {
		test.Fatalf("insert failed: %v", err)
	}
	if err := store.InsertRequest(context.Background(), request); !errors.Is(err, ledger.ErrDuplicateID) {
		test.Fatalf(errorMismatchMessage, ledger.ErrDuplicateID, err)
	}
	if err := store.ResolveRequest(context.Background(), requestID, ledger.RequestStatusExpired, nil, now); err != nil {
		test.Fatalf("resolve failed: %v", err)
	}
	if err := store.ResolveRequest(context.Background(), requestID, ledger.RequestStatusDeclined, nil, now); !errors.Is(err, ledger.ErrRequestNotPending) {
		test.Fatalf(errorMismatchMessage, ledger.ErrRequestNotPending, err)
	}
	missing, _ := ledger.NewRequestID("missing")
	if err := store.ResolveRequest(context.Background(), missing, ledger.RequestStatusDeclined, nil, now); !errors.Is(err, ledger.ErrUnknownRequest) {
		test.Fatalf(errorMismatchMessage, ledger.ErrUnknownRequest, err)
	}
	stored, err := store.GetRequest(context.Background(), requestID)
	if err != nil || stored.Status != ledger.RequestStatusExpired || stored.ResolvedAt == nil {
		test.Fatalf("expected expired request, got %+v (%v)", stored, err)
	}
}

func TestUpsertContactPreservesFavorite(test *testing.T) {
	test.Parallel()
	_, store := newTestService(test)
	now := time.Now().UTC()
	ownerID, _ := ledger.NewIdentityID("owner")
	contactID, _ := ledger.NewIdentityID("friend")
	contact := ledger.Contact{OwnerID: ownerID, ContactID: contactID, ContactGamertag: "friend", ContactDisplayName: "Friend", IsFavorite: true, CreatedAt: now, UpdatedAt: now}

	saved, err := store.UpsertContact(context.Background(), contact, true)
	if err != nil || !saved.IsFavorite {
		test.Fatalf("expected favorite contact, got %+v (%v)", saved, err)
	}
	contact.IsFavorite = false
	contact.ContactGamertag = "friend2"
	touched, err := store.UpsertContact(context.Background(), contact, false)
	if err != nil {
		test.Fatalf("touch failed: %v", err)
	}
	if !touched.IsFavorite || touched.ContactGamertag != "friend2" {
		test.Fatalf("expected favorite kept and snapshot updated, got %+v", touched)
	}
	contacts, err := store.ListContacts(context.Background(), ownerID)
	if err != nil || len(contacts) != 1 {
		test.Fatalf("expected one contact, got %+v (%v)", contacts, err)
	}
}

func TestInsertTransactionRejectsSecondReversal(test *testing.T) {
	test.Parallel()
	_, store := newTestService(test)
	now := time.Now().UTC()
	senderID, _ := ledger.NewIdentityID("s")
	receiverID, _ := ledger.NewIdentityID("r")
	originalID, _ := ledger.NewTransactionID("tx-original")
	build := func(id string) ledger.Transaction {
		transactionID, _ := ledger.NewTransactionID(id)
		return ledger.Transaction{ID: transactionID, Kind: ledger.TransactionKindReversal, SenderID: receiverID, ReceiverID: senderID, Amount: 3, Status: ledger.TransactionStatusReversed, ReversalOf: &originalID, CreatedAt: now}
	}
	if err := store.InsertTransaction(context.Background(), build("tx-r1")); err != nil {
		test.Fatalf("insert failed: %v", err)
	}
	if err := store.InsertTransaction(context.Background(), build("tx-r2")); !errors.Is(err, ledger.ErrAlreadyReversed) {
		test.Fatalf(errorMismatchMessage, ledger.ErrAlreadyReversed, err)
	}
}

func TestInsertTransactionDuplicateIDKinds(test *testing.T) {
	test.Parallel()
	now := time.Now().UTC()
	senderID, _ := ledger.NewIdentityID("s")
	receiverID, _ := ledger.NewIdentityID("r")
	originalID, _ := ledger.NewTransactionID("tx-original")
	transfer := func(id string) ledger.Transaction {
		transactionID, _ := ledger.NewTransactionID(id)
		return ledger.Transaction{ID: transactionID, Kind: ledger.TransactionKindTransfer, SenderID: senderID, ReceiverID: receiverID, Amount: 3, Status: ledger.TransactionStatusCompleted, CreatedAt: now}
	}
	reversal := func(id string) ledger.Transaction {
		transaction := transfer(id)
		transaction.Kind = ledger.TransactionKindReversal
		transaction.Status = ledger.TransactionStatusReversed
		transaction.ReversalOf = &originalID
		return transaction
	}

	testCases := []struct {
		name    string
		first   ledger.Transaction
		second  ledger.Transaction
		wantErr error
	}{
		{
			name:    "duplicate id without reversal_of",
			first:   transfer("tx-1"),
			second:  transfer("tx-1"),
			wantErr: ledger.ErrDuplicateID,
		},
		{
			name:    "duplicate id with the same reversal_of",
			first:   reversal("tx-1"),
			second:  reversal("tx-1"),
			wantErr: ledger.ErrDuplicateID,
		},
		{
			name:    "new id with a taken reversal_of",
			first:   reversal("tx-1"),
			second:  reversal("tx-2"),
			wantErr: ledger.ErrAlreadyReversed,
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		test.Run(testCase.name, func(test *testing.T) {
			test.Parallel()
			_, store := newTestService(test)
			if err := store.InsertTransaction(context.Background(), testCase.first); err != nil {
				test.Fatalf("insert failed: %v", err)
			}
			err := store.InsertTransaction(context.Background(), testCase.second)
			if !errors.Is(err, testCase.wantErr) {
				test.Fatalf(errorMismatchMessage, testCase.wantErr, err)
			}
			other := ledger.ErrAlreadyReversed
			if testCase.wantErr == ledger.ErrAlreadyReversed {
				other = ledger.ErrDuplicateID
			}
			if errors.Is(err, other) {
				test.Fatalf("expected only %v, got %v", testCase.wantErr, err)
			}
		})
	}
}

func TestTransferIgnoresCallerCancellationOnSQLite(test *testing.T) {
	test.Parallel()
	service, _ := newTestService(test)
	alice := mustEnroll(test, service, "alice", 10000)
	bob := mustEnroll(test, service, "bob", 0)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	transaction, err := service.Transfer(cancelled, ledger.TransferInput{SenderID: alice.ID, ReceiverGamertag: bob.Gamertag, Amount: 5000})
	if err != nil {
		test.Fatalf("transfer failed: %v", err)
	}
	if transaction.Status != ledger.TransactionStatusCompleted {
		test.Fatalf(errorMismatchMessage, ledger.TransactionStatusCompleted, transaction.Status)
	}
	expectBalance(test, service, alice, 5000)
	expectBalance(test, service, bob, 5000)
}

func TestCreditOverflowIsInvalidAmountOnSQLite(test *testing.T) {
	test.Parallel()
	service, _ := newTestService(test)
	alice := mustEnroll(test, service, "alice", math.MaxInt64)

	_, err := service.Credit(context.Background(), alice.ID, 1)
	if !errors.Is(err, ledger.ErrInvalidAmount) || ledger.ErrorCode(err) != "invalid_amount" {
		test.Fatalf(errorMismatchMessage, ledger.ErrInvalidAmount, err)
	}
	expectBalance(test, service, alice, math.MaxInt64)
}
