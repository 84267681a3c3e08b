package logger

// AuditLogger emits compliance events. Events carry metadata only: no
// document content and no detected entity text may be logged through it.
type AuditLogger struct {
	log Logger
}

// NewAuditLogger wraps a logger with the audit namespace.
func NewAuditLogger(l Logger) *AuditLogger {
	return &AuditLogger{log: l.Named("audit")}
}

// Event records an audit event.
func (a *AuditLogger) Event(event string, fields ...Field) {
	a.log.Info(event, fields...)
}

// ErrorEvent records a failed pipeline step.
func (a *AuditLogger) ErrorEvent(event string, err error, fields ...Field) {
	a.log.Error(event, append(fields, Error(err))...)
}
