package grpcserver

import (
	"context"

	ledgerv1 "github.com/MarkoPoloResearchLab/kolofap/api/kolofap/ledger/v1"
	"github.com/MarkoPoloResearchLab/kolofap/pkg/ledger"
)

// LedgerServiceServer exposes the ledger to trusted internal callers, which
// address identities by id rather than by session.
type LedgerServiceServer struct {
	ledgerv1.UnimplementedLedgerServiceServer
	ledgerService *ledger.Service
}

var _ ledgerv1.LedgerServiceServer = (*LedgerServiceServer)(nil)

// NewLedgerServiceServer constructs a gRPC server for the ledger service.
func NewLedgerServiceServer(ledgerService *ledger.Service) *LedgerServiceServer {
	return &LedgerServiceServer{ledgerService: ledgerService}
}

func (server *LedgerServiceServer) Register(ctx context.Context, request *ledgerv1.RegisterRequest) (*ledgerv1.Identity, error) {
	userID, err := ledger.NewUserID(request.GetUserId())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	gamertag, err := ledger.NewGamertag(request.GetGamertag())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	registration := ledger.Registration{
		UserID:      userID,
		Gamertag:    gamertag,
		DisplayName: request.GetDisplayName(),
		AvatarURL:   request.GetAvatarUrl(),
	}
	register := server.ledgerService.Register
	if request.GetOpenAccount() {
		register = server.ledgerService.Enroll
	}
	identity, operationError := register(ctx, registration)
	if operationError != nil {
		return nil, mapToGRPCError(operationError)
	}
	return identityMessage(identity), nil
}

func (server *LedgerServiceServer) Resolve(ctx context.Context, request *ledgerv1.ResolveRequest) (*ledgerv1.Identity, error) {
	gamertag, err := ledger.NewGamertag(request.GetGamertag())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	identity, operationError := server.ledgerService.Resolve(ctx, gamertag)
	if operationError != nil {
		return nil, mapToGRPCError(operationError)
	}
	return identityMessage(identity), nil
}

func (server *LedgerServiceServer) Deactivate(ctx context.Context, request *ledgerv1.IdentityRequest) (*ledgerv1.Empty, error) {
	identityID, err := ledger.NewIdentityID(request.GetIdentityId())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	if operationError := server.ledgerService.Deactivate(ctx, identityID); operationError != nil {
		return nil, mapToGRPCError(operationError)
	}
	return &ledgerv1.Empty{}, nil
}

func (server *LedgerServiceServer) OpenAccount(ctx context.Context, request *ledgerv1.IdentityRequest) (*ledgerv1.BalanceResponse, error) {
	identityID, err := ledger.NewIdentityID(request.GetIdentityId())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	account, operationError := server.ledgerService.OpenAccount(ctx, identityID)
	if operationError != nil {
		return nil, mapToGRPCError(operationError)
	}
	return &ledgerv1.BalanceResponse{IdentityId: account.IdentityID.String(), Balance: account.Balance.Int64()}, nil
}

func (server *LedgerServiceServer) GetBalance(ctx context.Context, request *ledgerv1.IdentityRequest) (*ledgerv1.BalanceResponse, error) {
	identityID, err := ledger.NewIdentityID(request.GetIdentityId())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	balance, operationError := server.ledgerService.Balance(ctx, identityID)
	if operationError != nil {
		return nil, mapToGRPCError(operationError)
	}
	return &ledgerv1.BalanceResponse{IdentityId: identityID.String(), Balance: balance.Int64()}, nil
}

func (server *LedgerServiceServer) Credit(ctx context.Context, request *ledgerv1.AdjustRequest) (*ledgerv1.BalanceResponse, error) {
	return server.adjust(ctx, request, server.ledgerService.Credit)
}

func (server *LedgerServiceServer) Debit(ctx context.Context, request *ledgerv1.AdjustRequest) (*ledgerv1.BalanceResponse, error) {
	return server.adjust(ctx, request, server.ledgerService.Debit)
}

func (server *LedgerServiceServer) adjust(ctx context.Context, request *ledgerv1.AdjustRequest, apply func(context.Context, ledger.IdentityID, ledger.Points) (ledger.Points, error)) (*ledgerv1.BalanceResponse, error) {
	identityID, err := ledger.NewIdentityID(request.GetIdentityId())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	amount, err := ledger.NewPoints(request.GetAmount())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	balance, operationError := apply(ctx, identityID, amount)
	if operationError != nil {
		return nil, mapToGRPCError(operationError)
	}
	return &ledgerv1.BalanceResponse{IdentityId: identityID.String(), Balance: balance.Int64()}, nil
}

// Transfer leaves the amount check to the ledger, which reports an unknown
// recipient before an invalid amount.
func (server *LedgerServiceServer) Transfer(ctx context.Context, request *ledgerv1.TransferRequest) (*ledgerv1.Transaction, error) {
	senderID, err := ledger.NewIdentityID(request.GetSenderId())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	receiver, err := ledger.NewGamertag(request.GetReceiverGamertag())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	message, err := ledger.NewMessage(request.GetMessage())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	metadata, err := ledger.NewMetadataJSON(request.GetMetadataJson())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	transaction, operationError := server.ledgerService.Transfer(ctx, ledger.TransferInput{
		SenderID:         senderID,
		ReceiverGamertag: receiver,
		Amount:           ledger.Points(request.GetAmount()),
		Message:          message,
		Metadata:         metadata,
	})
	if operationError != nil {
		return nil, mapToGRPCError(operationError)
	}
	return transactionMessage(transaction), nil
}

func (server *LedgerServiceServer) Reverse(ctx context.Context, request *ledgerv1.ReverseRequest) (*ledgerv1.Transaction, error) {
	transactionID, err := ledger.NewTransactionID(request.GetTransactionId())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	compensating, operationError := server.ledgerService.Reverse(ctx, transactionID)
	if operationError != nil {
		return nil, mapToGRPCError(operationError)
	}
	return transactionMessage(compensating), nil
}

func (server *LedgerServiceServer) CreateRequest(ctx context.Context, request *ledgerv1.CreateRequestRequest) (*ledgerv1.PaymentRequest, error) {
	requesterID, err := ledger.NewIdentityID(request.GetRequesterId())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	target, err := ledger.NewGamertag(request.GetTargetGamertag())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	message, err := ledger.NewMessage(request.GetMessage())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	created, operationError := server.ledgerService.CreateRequest(ctx, ledger.RequestInput{
		RequesterID:    requesterID,
		TargetGamertag: target,
		Amount:         ledger.Points(request.GetAmount()),
		Message:        message,
	})
	if operationError != nil {
		return nil, mapToGRPCError(operationError)
	}
	return paymentRequestMessage(created), nil
}

func (server *LedgerServiceServer) AcceptRequest(ctx context.Context, request *ledgerv1.ResolveRequestRequest) (*ledgerv1.Transaction, error) {
	requestID, actingID, err := parseResolveRequest(request)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	transaction, operationError := server.ledgerService.AcceptRequest(ctx, requestID, actingID)
	if operationError != nil {
		return nil, mapToGRPCError(operationError)
	}
	return transactionMessage(transaction), nil
}

func (server *LedgerServiceServer) DeclineRequest(ctx context.Context, request *ledgerv1.ResolveRequestRequest) (*ledgerv1.PaymentRequest, error) {
	requestID, actingID, err := parseResolveRequest(request)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	declined, operationError := server.ledgerService.DeclineRequest(ctx, requestID, actingID)
	if operationError != nil {
		return nil, mapToGRPCError(operationError)
	}
	return paymentRequestMessage(declined), nil
}

func (server *LedgerServiceServer) ExpireRequest(ctx context.Context, request *ledgerv1.ExpireRequestRequest) (*ledgerv1.PaymentRequest, error) {
	requestID, err := ledger.NewRequestID(request.GetRequestId())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	expired, operationError := server.ledgerService.ExpireRequest(ctx, requestID)
	if operationError != nil {
		return nil, mapToGRPCError(operationError)
	}
	return paymentRequestMessage(expired), nil
}

func (server *LedgerServiceServer) History(ctx context.Context, request *ledgerv1.HistoryRequest) (*ledgerv1.HistoryResponse, error) {
	identityID, err := ledger.NewIdentityID(request.GetIdentityId())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	page, operationError := server.ledgerService.History(ctx, identityID, request.GetCursor(), int(request.GetLimit()))
	if operationError != nil {
		return nil, mapToGRPCError(operationError)
	}
	response := &ledgerv1.HistoryResponse{
		Transactions: make([]*ledgerv1.Transaction, 0, len(page.Transactions)),
		NextCursor:   page.NextCursor,
	}
	for _, transaction := range page.Transactions {
		response.Transactions = append(response.Transactions, transactionMessage(transaction))
	}
	return response, nil
}

func (server *LedgerServiceServer) ListContacts(ctx context.Context, request *ledgerv1.ListContactsRequest) (*ledgerv1.ListContactsResponse, error) {
	ownerID, err := ledger.NewIdentityID(request.GetOwnerId())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	contacts, operationError := server.ledgerService.ListContacts(ctx, ownerID)
	if operationError != nil {
		return nil, mapToGRPCError(operationError)
	}
	response := &ledgerv1.ListContactsResponse{Contacts: make([]*ledgerv1.Contact, 0, len(contacts))}
	for _, contact := range contacts {
		response.Contacts = append(response.Contacts, contactMessage(contact))
	}
	return response, nil
}

func (server *LedgerServiceServer) AddContact(ctx context.Context, request *ledgerv1.AddContactRequest) (*ledgerv1.Contact, error) {
	ownerID, err := ledger.NewIdentityID(request.GetOwnerId())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	gamertag, err := ledger.NewGamertag(request.GetGamertag())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	contact, operationError := server.ledgerService.AddContact(ctx, ownerID, gamertag, request.GetIsFavorite())
	if operationError != nil {
		return nil, mapToGRPCError(operationError)
	}
	return contactMessage(contact), nil
}

func parseResolveRequest(request *ledgerv1.ResolveRequestRequest) (ledger.RequestID, ledger.IdentityID, error) {
	requestID, err := ledger.NewRequestID(request.GetRequestId())
	if err != nil {
		return ledger.RequestID{}, ledger.IdentityID{}, err
	}
	actingID, err := ledger.NewIdentityID(request.GetActingId())
	if err != nil {
		return ledger.RequestID{}, ledger.IdentityID{}, err
	}
	return requestID, actingID, nil
}
