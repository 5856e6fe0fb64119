/*
Package logger defines the logging interface that bomsmith library consumers may provide through bomsmith.SetLogger.
*/
package logger

// Logger represents the behavior for logging within the bomsmith library.
type Logger interface {
	Errorf(format string, args ...interface{})
	Error(args ...interface{})
	Warnf(format string, args ...interface{})
	Warn(args ...interface{})
	Infof(format string, args ...interface{})
	Info(args ...interface{})
	Debugf(format string, args ...interface{})
	Debug(args ...interface{})
	Tracef(format string, args ...interface{})
	Trace(args ...interface{})
}
