package ledger

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	gamertagMinLength    = 3
	gamertagMaxLength    = 32
	displayNameMaxLength = 64
	messageMaxLength     = 280
	gamertagPrefix       = "@"
	defaultMetadataJSON  = "{}"
)

// Points is an integer quantity of loyalty points.
type Points int64

// NewPoints validates an amount and ensures it is strictly positive.
func NewPoints(raw int64) (Points, error) {
	if raw <= 0 {
		return 0, fmt.Errorf("%w: must be greater than zero", ErrInvalidAmount)
	}
	return Points(raw), nil
}

// Int64 returns the raw value.
func (points Points) Int64() int64 {
	return int64(points)
}

// IdentityID identifies a ledger identity and its account.
type IdentityID struct {
	value string
}

// NewIdentityID validates and normalizes an identity id.
func NewIdentityID(raw string) (IdentityID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return IdentityID{}, fmt.Errorf("%w: empty value", ErrInvalidIdentityID)
	}
	return IdentityID{value: trimmed}, nil
}

// String returns the normalized identifier.
func (id IdentityID) String() string {
	return id.value
}

// IsZero reports whether the id was never set.
func (id IdentityID) IsZero() bool {
	return id.value == ""
}

// UserID is the authentication subject that owns an identity.
type UserID struct {
	value string
}

// NewUserID validates and normalizes a user id.
func NewUserID(raw string) (UserID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return UserID{}, fmt.Errorf("%w: empty value", ErrInvalidUserID)
	}
	return UserID{value: trimmed}, nil
}

// String returns the normalized identifier.
func (id UserID) String() string {
	return id.value
}

// Gamertag is a unique, case-insensitive handle.
type Gamertag struct {
	value string
}

// NewGamertag validates a handle. A leading "@" is accepted and stripped.
func NewGamertag(raw string) (Gamertag, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(raw), gamertagPrefix)
	length := utf8.RuneCountInString(trimmed)
	if length < gamertagMinLength || length > gamertagMaxLength {
		return Gamertag{}, fmt.Errorf("%w: length must be between %d and %d", ErrInvalidGamertag, gamertagMinLength, gamertagMaxLength)
	}
	for _, character := range trimmed {
		if !isGamertagRune(character) {
			return Gamertag{}, fmt.Errorf("%w: unsupported character %q", ErrInvalidGamertag, character)
		}
	}
	return Gamertag{value: trimmed}, nil
}

func isGamertagRune(character rune) bool {
	switch {
	case character >= 'a' && character <= 'z':
		return true
	case character >= 'A' && character <= 'Z':
		return true
	case character >= '0' && character <= '9':
		return true
	case character == '_' || character == '.' || character == '-':
		return true
	}
	return false
}

// String returns the handle as registered.
func (gamertag Gamertag) String() string {
	return gamertag.value
}

// Key returns the case-folded form used for uniqueness and lookup.
func (gamertag Gamertag) Key() string {
	return strings.ToLower(gamertag.value)
}

// Equal compares two handles case-insensitively.
func (gamertag Gamertag) Equal(other Gamertag) bool {
	return gamertag.Key() == other.Key()
}

// TransactionID identifies a transaction.
type TransactionID struct {
	value string
}

// NewTransactionID validates and normalizes a transaction id.
func NewTransactionID(raw string) (TransactionID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return TransactionID{}, fmt.Errorf("%w: empty value", ErrInvalidTransactionID)
	}
	return TransactionID{value: trimmed}, nil
}

// String returns the normalized identifier.
func (id TransactionID) String() string {
	return id.value
}

// RequestID identifies a points request.
type RequestID struct {
	value string
}

// NewRequestID validates and normalizes a request id.
func NewRequestID(raw string) (RequestID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return RequestID{}, fmt.Errorf("%w: empty value", ErrInvalidRequestID)
	}
	return RequestID{value: trimmed}, nil
}

// String returns the normalized identifier.
func (id RequestID) String() string {
	return id.value
}

// Message is optional free text attached to a transfer or request.
type Message struct {
	value string
}

// NewMessage trims and bounds a message. Empty input yields an empty message.
func NewMessage(raw string) (Message, error) {
	trimmed := strings.TrimSpace(raw)
	if utf8.RuneCountInString(trimmed) > messageMaxLength {
		return Message{}, fmt.Errorf("%w: longer than %d characters", ErrInvalidMessage, messageMaxLength)
	}
	return Message{value: trimmed}, nil
}

// String returns the message text.
func (message Message) String() string {
	return message.value
}

// MetadataJSON stores an arbitrary JSON object attached to a transaction.
type MetadataJSON struct {
	value string
}

// NewMetadataJSON validates metadata string (defaulting to "{}" for empty inputs).
func NewMetadataJSON(raw string) (MetadataJSON, error) {
	normalized := strings.TrimSpace(raw)
	if normalized == "" {
		normalized = defaultMetadataJSON
	}
	if !json.Valid([]byte(normalized)) {
		return MetadataJSON{}, fmt.Errorf("%w: must be valid json", ErrInvalidMetadataJSON)
	}
	return MetadataJSON{value: normalized}, nil
}

// String returns the normalized JSON blob.
func (metadata MetadataJSON) String() string {
	if metadata.value == "" {
		return defaultMetadataJSON
	}
	return metadata.value
}

// Identity is a registered participant addressable by gamertag.
type Identity struct {
	ID          IdentityID
	UserID      UserID
	Gamertag    Gamertag
	DisplayName string
	AvatarURL   string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func normalizeDisplayName(raw string, fallback Gamertag) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return fallback.String(), nil
	}
	if utf8.RuneCountInString(trimmed) > displayNameMaxLength {
		return "", fmt.Errorf("%w: longer than %d characters", ErrInvalidDisplayName, displayNameMaxLength)
	}
	return trimmed, nil
}

// Account holds the point balance of one identity.
type Account struct {
	IdentityID IdentityID
	Balance    Points
	UpdatedAt  time.Time
}

// TransactionStatus defines the transaction lifecycle.
type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusReversed  TransactionStatus = "reversed"
)

// ParseTransactionStatus validates a stored status value.
func ParseTransactionStatus(raw string) (TransactionStatus, error) {
	switch TransactionStatus(raw) {
	case TransactionStatusCompleted, TransactionStatusFailed, TransactionStatusReversed:
		return TransactionStatus(raw), nil
	}
	return "", fmt.Errorf("%w: transaction status %q", ErrInvalidStatus, raw)
}

// String returns the stored representation.
func (status TransactionStatus) String() string {
	return string(status)
}

// TransactionKind tells how a transaction came to exist.
type TransactionKind string

const (
	TransactionKindTransfer TransactionKind = "transfer"
	TransactionKindRequest  TransactionKind = "request"
	TransactionKindReversal TransactionKind = "reversal"
)

// ParseTransactionKind validates a stored kind value.
func ParseTransactionKind(raw string) (TransactionKind, error) {
	switch TransactionKind(raw) {
	case TransactionKindTransfer, TransactionKindRequest, TransactionKindReversal:
		return TransactionKind(raw), nil
	}
	return "", fmt.Errorf("%w: transaction kind %q", ErrInvalidStatus, raw)
}

// String returns the stored representation.
func (kind TransactionKind) String() string {
	return string(kind)
}

// Transaction is an immutable record of a point movement.
type Transaction struct {
	ID         TransactionID
	Kind       TransactionKind
	SenderID   IdentityID
	ReceiverID IdentityID
	Amount     Points
	Status     TransactionStatus
	Message    Message
	Metadata   MetadataJSON
	RequestID  *RequestID
	ReversalOf *TransactionID
	CreatedAt  time.Time
}

// Involves reports whether the identity is the sender or the receiver.
func (transaction Transaction) Involves(identityID IdentityID) bool {
	return transaction.SenderID == identityID || transaction.ReceiverID == identityID
}

// Counterparty returns the other side of the transaction from the given identity.
func (transaction Transaction) Counterparty(identityID IdentityID) IdentityID {
	if transaction.SenderID == identityID {
		return transaction.ReceiverID
	}
	return transaction.SenderID
}

// RequestStatus defines the request lifecycle.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusDeclined RequestStatus = "declined"
	RequestStatusExpired  RequestStatus = "expired"
)

// ParseRequestStatus validates a stored status value.
func ParseRequestStatus(raw string) (RequestStatus, error) {
	switch RequestStatus(raw) {
	case RequestStatusPending, RequestStatusAccepted, RequestStatusDeclined, RequestStatusExpired:
		return RequestStatus(raw), nil
	}
	return "", fmt.Errorf("%w: request status %q", ErrInvalidStatus, raw)
}

// String returns the stored representation.
func (status RequestStatus) String() string {
	return string(status)
}

// Terminal reports whether no further transition is allowed.
func (status RequestStatus) Terminal() bool {
	return status != RequestStatusPending
}

// Request is an ask for points from a target identity.
type Request struct {
	ID            RequestID
	RequesterID   IdentityID
	TargetID      IdentityID
	Amount        Points
	Message       Message
	Status        RequestStatus
	TransactionID *TransactionID
	CreatedAt     time.Time
	ResolvedAt    *time.Time
}

// RequestRole selects which side of a request a listing is for.
type RequestRole string

const (
	RequestRoleIncoming RequestRole = "incoming"
	RequestRoleOutgoing RequestRole = "outgoing"
)

// ParseRequestRole validates a role filter.
func ParseRequestRole(raw string) (RequestRole, error) {
	switch RequestRole(strings.ToLower(strings.TrimSpace(raw))) {
	case RequestRoleIncoming:
		return RequestRoleIncoming, nil
	case RequestRoleOutgoing:
		return RequestRoleOutgoing, nil
	}
	return "", fmt.Errorf("%w: request role %q", ErrInvalidStatus, raw)
}

// RequestFilter narrows a request listing.
type RequestFilter struct {
	Role   RequestRole
	Status RequestStatus
}

// Contact is a cached counterparty of an identity.
type Contact struct {
	OwnerID            IdentityID
	ContactID          IdentityID
	ContactGamertag    string
	ContactDisplayName string
	IsFavorite         bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// HistoryPage is one page of transaction history.
type HistoryPage struct {
	Transactions []Transaction
	NextCursor   string
}
