package ledger

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const cursorDelimiter = "|"

// HistoryCursor marks the last transaction returned by a history page.
// The next page starts strictly after it in (created_at DESC, id DESC) order.
type HistoryCursor struct {
	CreatedAt     time.Time
	TransactionID TransactionID
}

// IsZero reports whether the cursor points at the head of history.
func (cursor HistoryCursor) IsZero() bool {
	return cursor.TransactionID.value == ""
}

// Encode returns the opaque token handed to callers.
func (cursor HistoryCursor) Encode() string {
	if cursor.IsZero() {
		return ""
	}
	raw := strconv.FormatInt(cursor.CreatedAt.UTC().UnixNano(), 10) + cursorDelimiter + cursor.TransactionID.String()
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// ParseHistoryCursor decodes a token produced by Encode. An empty token is the head cursor.
func ParseHistoryCursor(token string) (HistoryCursor, error) {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return HistoryCursor{}, nil
	}
	decoded, err := base64.RawURLEncoding.DecodeString(trimmed)
	if err != nil {
		return HistoryCursor{}, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}
	parts := strings.SplitN(string(decoded), cursorDelimiter, 2)
	if len(parts) != 2 {
		return HistoryCursor{}, fmt.Errorf("%w: malformed token", ErrInvalidCursor)
	}
	nanos, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return HistoryCursor{}, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}
	transactionID, err := NewTransactionID(parts[1])
	if err != nil {
		return HistoryCursor{}, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}
	return HistoryCursor{CreatedAt: time.Unix(0, nanos).UTC(), TransactionID: transactionID}, nil
}

// cursorAfter builds the cursor following the last transaction of a page.
func cursorAfter(transaction Transaction) HistoryCursor {
	return HistoryCursor{CreatedAt: transaction.CreatedAt, TransactionID: transaction.ID}
}
