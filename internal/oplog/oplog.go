// Package oplog writes ledger operation events to zap.
package oplog

import (
	"context"

	"github.com/MarkoPoloResearchLab/kolofap/pkg/ledger"
	"go.uber.org/zap"
)

const operationLogMessage = "ledger operation"

// Logger implements ledger.OperationLogger.
type Logger struct {
	logger *zap.Logger
}

// New returns a Logger writing through logger. A nil logger discards events.
func New(logger *zap.Logger) *Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Logger{logger: logger.Named("ledger")}
}

// LogOperation emits successful operations at Info and failed ones at Warn.
func (operationLogger *Logger) LogOperation(_ context.Context, entry ledger.OperationLog) {
	fields := []zap.Field{
		zap.String("operation", entry.Operation),
		zap.String("status", entry.Status),
	}
	if !entry.ActorID.IsZero() {
		fields = append(fields, zap.String("actor_id", entry.ActorID.String()))
	}
	if !entry.CounterpartyID.IsZero() {
		fields = append(fields, zap.String("counterparty_id", entry.CounterpartyID.String()))
	}
	if entry.Amount > 0 {
		fields = append(fields, zap.Int64("amount", entry.Amount.Int64()))
	}
	if entry.TransactionID != nil {
		fields = append(fields, zap.String("transaction_id", entry.TransactionID.String()))
	}
	if entry.RequestID != nil {
		fields = append(fields, zap.String("request_id", entry.RequestID.String()))
	}
	if entry.Error != nil {
		fields = append(fields,
			zap.String("error_code", ledger.ErrorCode(entry.Error)),
			zap.Error(entry.Error),
		)
		operationLogger.logger.Warn(operationLogMessage, fields...)
		return
	}
	operationLogger.logger.Info(operationLogMessage, fields...)
}
