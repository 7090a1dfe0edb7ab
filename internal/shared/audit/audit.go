package audit

import (
	"context"

	"go-payroll-my/internal/shared/contextutil"

	"go.uber.org/zap"
)

// Log adalah satu catatan jejak audit (pekerja dilewati, run dibuat, dsb).
type Log struct {
	Action     string
	CompanyID  string
	EmployeeID string
	ActorID    string
	Reason     string
}

type Logger interface {
	Record(ctx context.Context, entry Log)
}

// StdoutLogger menulis jejak audit lewat zap; cukup untuk deployment
// yang mengalirkan stdout ke agregator log.
type StdoutLogger struct {
	logger *zap.Logger
}

func NewStdoutLogger(logger *zap.Logger) *StdoutLogger {
	return &StdoutLogger{logger: logger}
}

func (l *StdoutLogger) Record(ctx context.Context, entry Log) {
	log := l.logger
	if log == nil {
		log = contextutil.GetLogger(ctx, zap.L())
	}
	log.Info("audit",
		zap.String("action", entry.Action),
		zap.String("company_id", entry.CompanyID),
		zap.String("employee_id", entry.EmployeeID),
		zap.String("actor_id", entry.ActorID),
		zap.String("reason", entry.Reason),
		zap.String("request_id", contextutil.GetRequestID(ctx)),
	)
}
