package grpcserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"path/filepath"
	"testing"
	"time"

	ledgerv1 "github.com/MarkoPoloResearchLab/kolofap/api/kolofap/ledger/v1"
	"github.com/MarkoPoloResearchLab/kolofap/internal/store/gormstore"
	"github.com/MarkoPoloResearchLab/kolofap/pkg/ledger"
	"github.com/glebarez/sqlite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const bufconnSize = 1 << 20

func startLedgerClient(test *testing.T) ledgerv1.LedgerServiceClient {
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
	if err := gormstore.AutoMigrate(db); err != nil {
		test.Fatalf("automigrate failed: %v", err)
	}
	service, err := ledger.NewService(gormstore.New(db), func() time.Time { return time.Now().UTC() })
	if err != nil {
		test.Fatalf("ledger service init failed: %v", err)
	}

	listener := bufconn.Listen(bufconnSize)
	grpcServer := grpc.NewServer()
	ledgerv1.RegisterLedgerServiceServer(grpcServer, NewLedgerServiceServer(service))
	go func() {
		if serveErr := grpcServer.Serve(listener); serveErr != nil {
			test.Logf("gRPC server error: %v", serveErr)
		}
	}()

	dialer := func(ctx context.Context, _ string) (net.Conn, error) {
		return listener.DialContext(ctx)
	}
	conn, err := grpc.NewClient("passthrough:///bufnet", grpc.WithContextDialer(dialer), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		test.Fatalf("gRPC client init failed: %v", err)
	}
	conn.Connect()
	waitCtx, waitCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer waitCancel()
	if err := waitForClientReady(waitCtx, conn); err != nil {
		test.Fatalf("gRPC client failed to connect: %v", err)
	}
	test.Cleanup(func() {
		grpcServer.Stop()
		_ = conn.Close()
		_ = sqlDB.Close()
	})
	return ledgerv1.NewLedgerServiceClient(conn)
}

func waitForClientReady(ctx context.Context, conn *grpc.ClientConn) error {
	for {
		state := conn.GetState()
		if state == connectivity.Ready {
			return nil
		}
		if state == connectivity.Shutdown {
			return errors.New("grpc connection shutdown before ready")
		}
		if !conn.WaitForStateChange(ctx, state) {
			return ctx.Err()
		}
	}
}

func mustRegister(test *testing.T, client ledgerv1.LedgerServiceClient, gamertag string) *ledgerv1.Identity {
	test.Helper()
	identity, err := client.Register(context.Background(), &ledgerv1.RegisterRequest{UserId: "user-" + gamertag, Gamertag: gamertag, OpenAccount: true})
	if err != nil {
		test.Fatalf("register %s: %v", gamertag, err)
	}
	return identity
}

func expectStatus(test *testing.T, err error, wantCode codes.Code, wantLedgerCode string) {
	test.Helper()
	statusInfo, ok := status.FromError(err)
	if !ok {
		test.Fatalf("expected a gRPC status, got %v", err)
	}
	if statusInfo.Code() != wantCode || LedgerCode(err) != wantLedgerCode {
		test.Fatalf("expected %s/%s, got %s/%s", wantCode, wantLedgerCode, statusInfo.Code(), statusInfo.Message())
	}
}

func TestLedgerServiceTransferFlow(test *testing.T) {
	test.Parallel()
	client := startLedgerClient(test)
	ctx := context.Background()
	alice := mustRegister(test, client, "alice")
	bob := mustRegister(test, client, "bob")

	if _, err := client.Credit(ctx, &ledgerv1.AdjustRequest{IdentityId: alice.GetId(), Amount: 10000}); err != nil {
		test.Fatalf("credit failed: %v", err)
	}
	transaction, err := client.Transfer(ctx, &ledgerv1.TransferRequest{SenderId: alice.GetId(), ReceiverGamertag: "Bob", Amount: 5000, MetadataJson: `{"reason":"lunch"}`})
	if err != nil {
		test.Fatalf("transfer failed: %v", err)
	}
	if transaction.GetReceiverId() != bob.GetId() || transaction.GetStatus() != "completed" || transaction.GetMetadataJson() != `{"reason":"lunch"}` {
		test.Fatalf("unexpected transaction: %+v", transaction)
	}

	balance, err := client.GetBalance(ctx, &ledgerv1.IdentityRequest{IdentityId: bob.GetId()})
	if err != nil || balance.GetBalance() != 5000 {
		test.Fatalf("expected bob to hold 5000, got %+v (%v)", balance, err)
	}

	reversal, err := client.Reverse(ctx, &ledgerv1.ReverseRequest{TransactionId: transaction.GetId()})
	if err != nil {
		test.Fatalf("reverse failed: %v", err)
	}
	if reversal.GetReversalOf() != transaction.GetId() {
		test.Fatalf("expected reversal of %s, got %+v", transaction.GetId(), reversal)
	}
	_, err = client.Reverse(ctx, &ledgerv1.ReverseRequest{TransactionId: transaction.GetId()})
	expectStatus(test, err, codes.FailedPrecondition, "already_reversed")

	history, err := client.History(ctx, &ledgerv1.HistoryRequest{IdentityId: alice.GetId(), Limit: 1})
	if err != nil {
		test.Fatalf("history failed: %v", err)
	}
	if len(history.GetTransactions()) != 1 || history.GetNextCursor() == "" {
		test.Fatalf("expected one transaction and a cursor, got %+v", history)
	}
	rest, err := client.History(ctx, &ledgerv1.HistoryRequest{IdentityId: alice.GetId(), Cursor: history.GetNextCursor(), Limit: 10})
	if err != nil || len(rest.GetTransactions()) != 1 || rest.GetNextCursor() != "" {
		test.Fatalf("expected the final page, got %+v (%v)", rest, err)
	}
}

func TestLedgerServiceRequestFlow(test *testing.T) {
	test.Parallel()
	client := startLedgerClient(test)
	ctx := context.Background()
	alice := mustRegister(test, client, "alice")
	bob := mustRegister(test, client, "bob")
	if _, err := client.Credit(ctx, &ledgerv1.AdjustRequest{IdentityId: bob.GetId(), Amount: 100}); err != nil {
		test.Fatalf("credit failed: %v", err)
	}

	created, err := client.CreateRequest(ctx, &ledgerv1.CreateRequestRequest{RequesterId: alice.GetId(), TargetGamertag: "bob", Amount: 40, Message: "pizza"})
	if err != nil {
		test.Fatalf("create request failed: %v", err)
	}
	_, err = client.AcceptRequest(ctx, &ledgerv1.ResolveRequestRequest{RequestId: created.GetId(), ActingId: alice.GetId()})
	expectStatus(test, err, codes.PermissionDenied, "not_authorized")

	settled, err := client.AcceptRequest(ctx, &ledgerv1.ResolveRequestRequest{RequestId: created.GetId(), ActingId: bob.GetId()})
	if err != nil {
		test.Fatalf("accept failed: %v", err)
	}
	if settled.GetKind() != "request" || settled.GetRequestId() != created.GetId() || settled.GetAmount() != 40 {
		test.Fatalf("unexpected settlement: %+v", settled)
	}
	_, err = client.DeclineRequest(ctx, &ledgerv1.ResolveRequestRequest{RequestId: created.GetId(), ActingId: bob.GetId()})
	expectStatus(test, err, codes.FailedPrecondition, "request_not_pending")

	second, err := client.CreateRequest(ctx, &ledgerv1.CreateRequestRequest{RequesterId: alice.GetId(), TargetGamertag: "bob", Amount: 5})
	if err != nil {
		test.Fatalf("second request failed: %v", err)
	}
	expired, err := client.ExpireRequest(ctx, &ledgerv1.ExpireRequestRequest{RequestId: second.GetId()})
	if err != nil || expired.GetStatus() != "expired" || expired.GetResolvedUnixUtc() == 0 {
		test.Fatalf("expected expired request, got %+v (%v)", expired, err)
	}

	contacts, err := client.ListContacts(ctx, &ledgerv1.ListContactsRequest{OwnerId: alice.GetId()})
	if err != nil || len(contacts.GetContacts()) != 1 || contacts.GetContacts()[0].GetContactId() != bob.GetId() {
		test.Fatalf("expected bob in alice's contacts, got %+v (%v)", contacts, err)
	}
	favorite, err := client.AddContact(ctx, &ledgerv1.AddContactRequest{OwnerId: alice.GetId(), Gamertag: "bob", IsFavorite: true})
	if err != nil || !favorite.GetIsFavorite() {
		test.Fatalf("expected favorite contact, got %+v (%v)", favorite, err)
	}
}

func TestLedgerServiceErrors(test *testing.T) {
	test.Parallel()
	client := startLedgerClient(test)
	ctx := context.Background()
	alice := mustRegister(test, client, "alice")
	mustRegister(test, client, "alice2")

	testCases := []struct {
		name       string
		call       func() error
		wantCode   codes.Code
		wantLedger string
	}{
		{
			name: "invalid gamertag",
			call: func() error {
				_, err := client.Resolve(ctx, &ledgerv1.ResolveRequest{Gamertag: "x"})
				return err
			},
			wantCode:   codes.InvalidArgument,
			wantLedger: "invalid_gamertag",
		},
		{
			name: "unknown recipient",
			call: func() error {
				_, err := client.Transfer(ctx, &ledgerv1.TransferRequest{SenderId: alice.GetId(), ReceiverGamertag: "nobody", Amount: 1})
				return err
			},
			wantCode:   codes.NotFound,
			wantLedger: "recipient_not_found",
		},
		{
			name: "unknown recipient before amount",
			call: func() error {
				_, err := client.Transfer(ctx, &ledgerv1.TransferRequest{SenderId: alice.GetId(), ReceiverGamertag: "nobody", Amount: 0})
				return err
			},
			wantCode:   codes.NotFound,
			wantLedger: "recipient_not_found",
		},
		{
			name: "unknown request target before amount",
			call: func() error {
				_, err := client.CreateRequest(ctx, &ledgerv1.CreateRequestRequest{RequesterId: alice.GetId(), TargetGamertag: "nobody", Amount: -5})
				return err
			},
			wantCode:   codes.NotFound,
			wantLedger: "recipient_not_found",
		},
		{
			name: "non-positive transfer amount",
			call: func() error {
				_, err := client.Transfer(ctx, &ledgerv1.TransferRequest{SenderId: alice.GetId(), ReceiverGamertag: "alice2", Amount: 0})
				return err
			},
			wantCode:   codes.InvalidArgument,
			wantLedger: "invalid_amount",
		},
		{
			name: "self transfer",
			call: func() error {
				_, err := client.Transfer(ctx, &ledgerv1.TransferRequest{SenderId: alice.GetId(), ReceiverGamertag: "alice", Amount: 1})
				return err
			},
			wantCode:   codes.InvalidArgument,
			wantLedger: "self_transfer_not_allowed",
		},
		{
			name: "non-positive amount",
			call: func() error {
				_, err := client.Debit(ctx, &ledgerv1.AdjustRequest{IdentityId: alice.GetId(), Amount: 0})
				return err
			},
			wantCode:   codes.InvalidArgument,
			wantLedger: "invalid_amount",
		},
		{
			name: "insufficient balance",
			call: func() error {
				_, err := client.Debit(ctx, &ledgerv1.AdjustRequest{IdentityId: alice.GetId(), Amount: 1})
				return err
			},
			wantCode:   codes.FailedPrecondition,
			wantLedger: "insufficient_balance",
		},
		{
			name: "duplicate handle",
			call: func() error {
				_, err := client.Register(ctx, &ledgerv1.RegisterRequest{UserId: "someone-else", Gamertag: "ALICE"})
				return err
			},
			wantCode:   codes.AlreadyExists,
			wantLedger: "duplicate_handle",
		},
		{
			name: "bad cursor",
			call: func() error {
				_, err := client.History(ctx, &ledgerv1.HistoryRequest{IdentityId: alice.GetId(), Cursor: "!!"})
				return err
			},
			wantCode:   codes.InvalidArgument,
			wantLedger: "invalid_cursor",
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		test.Run(testCase.name, func(test *testing.T) {
			expectStatus(test, testCase.call(), testCase.wantCode, testCase.wantLedger)
		})
	}
}

func TestMapToGRPCErrorKeepsInternalDetail(test *testing.T) {
	test.Parallel()
	err := mapToGRPCError(ledger.WrapError("store", "account", "get", errors.New("disk full")))
	statusInfo, _ := status.FromError(err)
	if statusInfo.Code() != codes.Internal || LedgerCode(err) != ledger.ErrorCodeInternal {
		test.Fatalf("expected internal status, got %v", err)
	}
	lockErr := mapToGRPCError(fmt.Errorf("wrapped: %w", ledger.ErrLockTimeout))
	if status.Code(lockErr) != codes.Unavailable {
		test.Fatalf("expected lock timeout to map to unavailable, got %v", lockErr)
	}
}
