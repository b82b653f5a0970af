package ledger

import (
	"context"
	"testing"
)

type testLedger struct {
	store   *stubStore
	clock   *stepClock
	service *Service
}

func newTestLedger(test *testing.T, options ...ServiceOption) testLedger {
	test.Helper()
	store := newStubStore(test)
	clock := newStepClock()
	ids := &sequenceIDs{}
	options = append([]ServiceOption{WithIDGenerator(ids.New)}, options...)
	service, err := NewService(store, clock.Now, options...)
	if err != nil {
		test.Fatalf("service init failed: %v", err)
	}
	return testLedger{store: store, clock: clock, service: service}
}

func mustGamertag(test *testing.T, raw string) Gamertag {
	test.Helper()
	gamertag, err := NewGamertag(raw)
	if err != nil {
		test.Fatalf("gamertag %q: %v", raw, err)
	}
	return gamertag
}

func mustUserID(test *testing.T, raw string) UserID {
	test.Helper()
	userID, err := NewUserID(raw)
	if err != nil {
		test.Fatalf("user id %q: %v", raw, err)
	}
	return userID
}

func mustMessage(test *testing.T, raw string) Message {
	test.Helper()
	message, err := NewMessage(raw)
	if err != nil {
		test.Fatalf("message %q: %v", raw, err)
	}
	return message
}

// mustEnroll registers an identity with an account funded to balance.
func (fixture testLedger) mustEnroll(test *testing.T, gamertag string, balance Points) Identity {
	test.Helper()
	identity, err := fixture.service.Enroll(context.Background(), Registration{
		UserID:   mustUserID(test, "user-"+gamertag),
		Gamertag: mustGamertag(test, gamertag),
	})
	if err != nil {
		test.Fatalf("enroll %s: %v", gamertag, err)
	}
	if balance > 0 {
		if _, err := fixture.service.Credit(context.Background(), identity.ID, balance); err != nil {
			test.Fatalf("credit %s: %v", gamertag, err)
		}
	}
	return identity
}

func (fixture testLedger) mustTransfer(test *testing.T, sender Identity, receiver Identity, amount Points) Transaction {
	test.Helper()
	transaction, err := fixture.service.Transfer(context.Background(), TransferInput{
		SenderID:         sender.ID,
		ReceiverGamertag: receiver.Gamertag,
		Amount:           amount,
	})
	if err != nil {
		test.Fatalf("transfer %s -> %s: %v", sender.Gamertag, receiver.Gamertag, err)
	}
	return transaction
}

func (fixture testLedger) expectBalance(test *testing.T, identity Identity, want Points) {
	test.Helper()
	got, err := fixture.service.Balance(context.Background(), identity.ID)
	if err != nil {
		test.Fatalf("balance %s: %v", identity.Gamertag, err)
	}
	if got != want {
		test.Fatalf("balance of %s: expected %d, got %d", identity.Gamertag, want, got)
	}
}
