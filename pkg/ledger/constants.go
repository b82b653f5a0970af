package ledger

const (
	operationRegister       = "register"
	operationRename         = "rename"
	operationDeactivate     = "deactivate"
	operationOpenAccount    = "open_account"
	operationCredit         = "credit"
	operationDebit          = "debit"
	operationTransfer       = "transfer"
	operationTransferFailed = "transfer_failed_record"
	operationReverse        = "reverse"
	operationRequestCreate  = "request_create"
	operationRequestAccept  = "request_accept"
	operationRequestDecline = "request_decline"
	operationRequestExpire  = "request_expire"
	operationContactAdd     = "contact_add"
	operationContactRebuild = "contact_rebuild"

	operationStatusOK    = "ok"
	operationStatusError = "error"

	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
	expireBatchSize     = 100
	rebuildScanLimit    = 1000
)
