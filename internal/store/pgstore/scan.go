package pgstore

import (
	"time"

	"github.com/MarkoPoloResearchLab/kolofap/pkg/ledger"
	"github.com/jackc/pgx/v5"
)

func scanIdentity(row pgx.Row) (ledger.Identity, error) {
	var (
		rawID, rawUserID, rawGamertag string
		identity                      ledger.Identity
	)
	err := row.Scan(&rawID, &rawUserID, &rawGamertag, &identity.DisplayName, &identity.AvatarURL, &identity.Active, &identity.CreatedAt, &identity.UpdatedAt)
	if err != nil {
		return ledger.Identity{}, err
	}
	if identity.ID, err = ledger.NewIdentityID(rawID); err != nil {
		return ledger.Identity{}, err
	}
	if identity.UserID, err = ledger.NewUserID(rawUserID); err != nil {
		return ledger.Identity{}, err
	}
	if identity.Gamertag, err = ledger.NewGamertag(rawGamertag); err != nil {
		return ledger.Identity{}, err
	}
	identity.CreatedAt = identity.CreatedAt.UTC()
	identity.UpdatedAt = identity.UpdatedAt.UTC()
	return identity, nil
}

func scanTransaction(row pgx.Row) (ledger.Transaction, error) {
	var (
		rawID, rawKind, rawSender, rawReceiver, rawStatus, rawMessage, rawMetadata string
		amount                                                                     int64
		requestID, reversalOf                                                      *string
		createdAt                                                                  time.Time
	)
	err := row.Scan(&rawID, &rawKind, &rawSender, &rawReceiver, &amount, &rawStatus, &rawMessage, &rawMetadata, &requestID, &reversalOf, &createdAt)
	if err != nil {
		return ledger.Transaction{}, err
	}
	transaction := ledger.Transaction{CreatedAt: createdAt.UTC()}
	if transaction.ID, err = ledger.NewTransactionID(rawID); err != nil {
		return ledger.Transaction{}, err
	}
	if transaction.Kind, err = ledger.ParseTransactionKind(rawKind); err != nil {
		return ledger.Transaction{}, err
	}
	if transaction.SenderID, err = ledger.NewIdentityID(rawSender); err != nil {
		return ledger.Transaction{}, err
	}
	if transaction.ReceiverID, err = ledger.NewIdentityID(rawReceiver); err != nil {
		return ledger.Transaction{}, err
	}
	if transaction.Amount, err = ledger.NewPoints(amount); err != nil {
		return ledger.Transaction{}, err
	}
	if transaction.Status, err = ledger.ParseTransactionStatus(rawStatus); err != nil {
		return ledger.Transaction{}, err
	}
	if transaction.Message, err = ledger.NewMessage(rawMessage); err != nil {
		return ledger.Transaction{}, err
	}
	if transaction.Metadata, err = ledger.NewMetadataJSON(rawMetadata); err != nil {
		return ledger.Transaction{}, err
	}
	if requestID != nil {
		parsed, err := ledger.NewRequestID(*requestID)
		if err != nil {
			return ledger.Transaction{}, err
		}
		transaction.RequestID = &parsed
	}
	if reversalOf != nil {
		parsed, err := ledger.NewTransactionID(*reversalOf)
		if err != nil {
			return ledger.Transaction{}, err
		}
		transaction.ReversalOf = &parsed
	}
	return transaction, nil
}

func scanRequest(row pgx.Row) (ledger.Request, error) {
	var (
		rawID, rawRequester, rawTarget, rawMessage, rawStatus string
		amount                                                int64
		transactionID                                         *string
		createdAt                                             time.Time
		resolvedAt                                            *time.Time
	)
	err := row.Scan(&rawID, &rawRequester, &rawTarget, &amount, &rawMessage, &rawStatus, &transactionID, &createdAt, &resolvedAt)
	if err != nil {
		return ledger.Request{}, err
	}
	request := ledger.Request{CreatedAt: createdAt.UTC()}
	if request.ID, err = ledger.NewRequestID(rawID); err != nil {
		return ledger.Request{}, err
	}
	if request.RequesterID, err = ledger.NewIdentityID(rawRequester); err != nil {
		return ledger.Request{}, err
	}
	if request.TargetID, err = ledger.NewIdentityID(rawTarget); err != nil {
		return ledger.Request{}, err
	}
	if request.Amount, err = ledger.NewPoints(amount); err != nil {
		return ledger.Request{}, err
	}
	if request.Message, err = ledger.NewMessage(rawMessage); err != nil {
		return ledger.Request{}, err
	}
	if request.Status, err = ledger.ParseRequestStatus(rawStatus); err != nil {
		return ledger.Request{}, err
	}
	if transactionID != nil {
		parsed, err := ledger.NewTransactionID(*transactionID)
		if err != nil {
			return ledger.Request{}, err
		}
		request.TransactionID = &parsed
	}
	if resolvedAt != nil {
		resolved := resolvedAt.UTC()
		request.ResolvedAt = &resolved
	}
	return request, nil
}

func scanContact(row pgx.Row) (ledger.Contact, error) {
	var (
		rawOwner, rawContact string
		contact              ledger.Contact
	)
	err := row.Scan(&rawOwner, &rawContact, &contact.ContactGamertag, &contact.ContactDisplayName, &contact.IsFavorite, &contact.CreatedAt, &contact.UpdatedAt)
	if err != nil {
		return ledger.Contact{}, err
	}
	if contact.OwnerID, err = ledger.NewIdentityID(rawOwner); err != nil {
		return ledger.Contact{}, err
	}
	if contact.ContactID, err = ledger.NewIdentityID(rawContact); err != nil {
		return ledger.Contact{}, err
	}
	contact.CreatedAt = contact.CreatedAt.UTC()
	contact.UpdatedAt = contact.UpdatedAt.UTC()
	return contact, nil
}
