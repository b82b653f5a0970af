package httpapi

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MarkoPoloResearchLab/kolofap/pkg/ledger"
)

const (
	directionSent     = "sent"
	directionReceived = "received"
)

type identityPayload struct {
	ID          string `json:"id,omitempty"`
	Gamertag    string `json:"gamertag"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

type transactionPayload struct {
	ID           string          `json:"id"`
	Kind         string          `json:"kind"`
	Direction    string          `json:"direction"`
	Counterparty identityPayload `json:"counterparty"`
	Amount       int64           `json:"amount"`
	Status       string          `json:"status"`
	Message      string          `json:"message,omitempty"`
	Metadata     json.RawMessage `json:"metadata"`
	RequestID    string          `json:"request_id,omitempty"`
	ReversalOf   string          `json:"reversal_of,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

type requestPayload struct {
	ID            string          `json:"id"`
	Role          string          `json:"role"`
	Counterparty  identityPayload `json:"counterparty"`
	Amount        int64           `json:"amount"`
	Message       string          `json:"message,omitempty"`
	Status        string          `json:"status"`
	TransactionID string          `json:"transaction_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	ResolvedAt    *time.Time      `json:"resolved_at,omitempty"`
}

type contactPayload struct {
	Gamertag    string `json:"gamertag"`
	DisplayName string `json:"display_name"`
	IsFavorite  bool   `json:"is_favorite"`
}

func ownIdentityPayload(identity ledger.Identity) identityPayload {
	payload := publicIdentityPayload(identity)
	payload.ID = identity.ID.String()
	return payload
}

func publicIdentityPayload(identity ledger.Identity) identityPayload {
	return identityPayload{
		Gamertag:    identity.Gamertag.String(),
		DisplayName: identity.DisplayName,
		AvatarURL:   identity.AvatarURL,
	}
}

func contactPayloadOf(contact ledger.Contact) contactPayload {
	return contactPayload{
		Gamertag:    contact.ContactGamertag,
		DisplayName: contact.ContactDisplayName,
		IsFavorite:  contact.IsFavorite,
	}
}

func contactPayloads(contacts []ledger.Contact) []contactPayload {
	payload := make([]contactPayload, 0, len(contacts))
	for _, contact := range contacts {
		payload = append(payload, contactPayloadOf(contact))
	}
	return payload
}

// counterpartyDirectory memoizes identity lookups while one response is built.
type counterpartyDirectory struct {
	ctx           context.Context
	ledgerService *ledger.Service
	known         map[ledger.IdentityID]identityPayload
}

func (handler *httpHandler) newCounterpartyDirectory(ctx context.Context) *counterpartyDirectory {
	return &counterpartyDirectory{
		ctx:           ctx,
		ledgerService: handler.ledgerService,
		known:         make(map[ledger.IdentityID]identityPayload),
	}
}

// describe falls back to a bare payload when the identity cannot be read so
// a listing never fails on one missing row.
func (directory *counterpartyDirectory) describe(identityID ledger.IdentityID) identityPayload {
	if payload, ok := directory.known[identityID]; ok {
		return payload
	}
	payload := identityPayload{}
	if identity, err := directory.ledgerService.Identity(directory.ctx, identityID); err == nil {
		payload = publicIdentityPayload(identity)
	}
	directory.known[identityID] = payload
	return payload
}

func (directory *counterpartyDirectory) transaction(viewerID ledger.IdentityID, transaction ledger.Transaction) transactionPayload {
	direction := directionReceived
	if transaction.SenderID == viewerID {
		direction = directionSent
	}
	payload := transactionPayload{
		ID:           transaction.ID.String(),
		Kind:         transaction.Kind.String(),
		Direction:    direction,
		Counterparty: directory.describe(transaction.Counterparty(viewerID)),
		Amount:       transaction.Amount.Int64(),
		Status:       transaction.Status.String(),
		Message:      transaction.Message.String(),
		Metadata:     json.RawMessage(transaction.Metadata.String()),
		CreatedAt:    transaction.CreatedAt,
	}
	if transaction.RequestID != nil {
		payload.RequestID = transaction.RequestID.String()
	}
	if transaction.ReversalOf != nil {
		payload.ReversalOf = transaction.ReversalOf.String()
	}
	return payload
}

func (directory *counterpartyDirectory) request(viewerID ledger.IdentityID, request ledger.Request) requestPayload {
	role := string(ledger.RequestRoleIncoming)
	counterpartyID := request.RequesterID
	if request.RequesterID == viewerID {
		role = string(ledger.RequestRoleOutgoing)
		counterpartyID = request.TargetID
	}
	payload := requestPayload{
		ID:           request.ID.String(),
		Role:         role,
		Counterparty: directory.describe(counterpartyID),
		Amount:       request.Amount.Int64(),
		Message:      request.Message.String(),
		Status:       request.Status.String(),
		CreatedAt:    request.CreatedAt,
		ResolvedAt:   request.ResolvedAt,
	}
	if request.TransactionID != nil {
		payload.TransactionID = request.TransactionID.String()
	}
	return payload
}
