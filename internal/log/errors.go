package log

import "io"

// CloseAndLogError closes the given closer, only reporting a failure at the warning level.
func CloseAndLogError(closer io.Closer, location string) {
	if closer == nil {
		Debugf("no closer provided when attempting to close: %v", location)
		return
	}
	if err := closer.Close(); err != nil {
		Warnf("failed to close %v: %v", location, err)
	}
}
