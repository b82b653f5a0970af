package grpcserver

import (
	"github.com/MarkoPoloResearchLab/kolofap/pkg/ledger"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// statusCodes maps ledger error codes to gRPC status codes. The status
// message carries the ledger code so clients can branch on it.
var statusCodes = map[string]codes.Code{
	"unknown_account":           codes.NotFound,
	"unknown_identity":          codes.NotFound,
	"unknown_transaction":       codes.NotFound,
	"unknown_request":           codes.NotFound,
	"unknown_gamertag":          codes.NotFound,
	"recipient_not_found":       codes.NotFound,
	"invalid_amount":            codes.InvalidArgument,
	"invalid_identity_id":       codes.InvalidArgument,
	"invalid_user_id":           codes.InvalidArgument,
	"invalid_gamertag":          codes.InvalidArgument,
	"invalid_display_name":      codes.InvalidArgument,
	"invalid_message":           codes.InvalidArgument,
	"invalid_metadata_json":     codes.InvalidArgument,
	"invalid_transaction_id":    codes.InvalidArgument,
	"invalid_request_id":        codes.InvalidArgument,
	"invalid_status":            codes.InvalidArgument,
	"invalid_cursor":            codes.InvalidArgument,
	"self_transfer_not_allowed": codes.InvalidArgument,
	"insufficient_balance":      codes.FailedPrecondition,
	"request_not_pending":       codes.FailedPrecondition,
	"already_reversed":          codes.FailedPrecondition,
	"not_reversible":            codes.FailedPrecondition,
	"identity_inactive":         codes.FailedPrecondition,
	"duplicate_handle":          codes.AlreadyExists,
	"duplicate_id":              codes.AlreadyExists,
	"identity_exists":           codes.AlreadyExists,
	"not_authorized":            codes.PermissionDenied,
	"lock_timeout":              codes.Unavailable,
}

func mapToGRPCError(source error) error {
	code := ledger.ErrorCode(source)
	if statusCode, ok := statusCodes[code]; ok {
		return status.Error(statusCode, code)
	}
	return status.Error(codes.Internal, source.Error())
}

// LedgerCode extracts the ledger error code from a status returned by this
// service, or ledger.ErrorCodeInternal.
func LedgerCode(err error) string {
	statusInfo, ok := status.FromError(err)
	if !ok || statusInfo.Code() == codes.Internal {
		return ledger.ErrorCodeInternal
	}
	if _, known := statusCodes[statusInfo.Message()]; known {
		return statusInfo.Message()
	}
	return ledger.ErrorCodeInternal
}
