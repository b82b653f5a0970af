package ledger

import "context"

// History returns one page of the transactions an identity sent or received,
// newest first. cursorToken is empty for the first page; pass the returned
// NextCursor to continue. NextCursor is empty on the last page.
func (service *Service) History(ctx context.Context, identityID IdentityID, cursorToken string, limit int) (HistoryPage, error) {
	cursor, err := ParseHistoryCursor(cursorToken)
	if err != nil {
		return HistoryPage{}, err
	}
	if _, err := service.store.GetIdentity(ctx, identityID); err != nil {
		return HistoryPage{}, err
	}
	pageSize := normalizeHistoryLimit(limit)
	transactions, err := service.store.ListTransactions(ctx, identityID, cursor, pageSize+1)
	if err != nil {
		return HistoryPage{}, err
	}
	page := HistoryPage{Transactions: transactions}
	if len(transactions) > pageSize {
		page.Transactions = transactions[:pageSize]
		page.NextCursor = cursorAfter(page.Transactions[pageSize-1]).Encode()
	}
	return page, nil
}

// Transaction returns a transaction visible to identityID.
func (service *Service) Transaction(ctx context.Context, transactionID TransactionID, identityID IdentityID) (Transaction, error) {
	transaction, err := service.store.GetTransaction(ctx, transactionID)
	if err != nil {
		return Transaction{}, err
	}
	if !transaction.Involves(identityID) {
		return Transaction{}, ErrNotAuthorized
	}
	return transaction, nil
}
