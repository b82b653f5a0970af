package grpcserver

import (
	ledgerv1 "github.com/MarkoPoloResearchLab/kolofap/api/kolofap/ledger/v1"
	"github.com/MarkoPoloResearchLab/kolofap/pkg/ledger"
)

func identityMessage(identity ledger.Identity) *ledgerv1.Identity {
	return &ledgerv1.Identity{
		Id:             identity.ID.String(),
		UserId:         identity.UserID.String(),
		Gamertag:       identity.Gamertag.String(),
		DisplayName:    identity.DisplayName,
		AvatarUrl:      identity.AvatarURL,
		Active:         identity.Active,
		CreatedUnixUtc: identity.CreatedAt.Unix(),
	}
}

func transactionMessage(transaction ledger.Transaction) *ledgerv1.Transaction {
	message := &ledgerv1.Transaction{
		Id:             transaction.ID.String(),
		Kind:           transaction.Kind.String(),
		SenderId:       transaction.SenderID.String(),
		ReceiverId:     transaction.ReceiverID.String(),
		Amount:         transaction.Amount.Int64(),
		Status:         transaction.Status.String(),
		Message:        transaction.Message.String(),
		MetadataJson:   transaction.Metadata.String(),
		CreatedUnixUtc: transaction.CreatedAt.Unix(),
	}
	if transaction.RequestID != nil {
		message.RequestId = transaction.RequestID.String()
	}
	if transaction.ReversalOf != nil {
		message.ReversalOf = transaction.ReversalOf.String()
	}
	return message
}

func paymentRequestMessage(request ledger.Request) *ledgerv1.PaymentRequest {
	message := &ledgerv1.PaymentRequest{
		Id:             request.ID.String(),
		RequesterId:    request.RequesterID.String(),
		TargetId:       request.TargetID.String(),
		Amount:         request.Amount.Int64(),
		Message:        request.Message.String(),
		Status:         request.Status.String(),
		CreatedUnixUtc: request.CreatedAt.Unix(),
	}
	if request.TransactionID != nil {
		message.TransactionId = request.TransactionID.String()
	}
	if request.ResolvedAt != nil {
		message.ResolvedUnixUtc = request.ResolvedAt.Unix()
	}
	return message
}

func contactMessage(contact ledger.Contact) *ledgerv1.Contact {
	return &ledgerv1.Contact{
		ContactId:   contact.ContactID.String(),
		Gamertag:    contact.ContactGamertag,
		DisplayName: contact.ContactDisplayName,
		IsFavorite:  contact.IsFavorite,
	}
}
