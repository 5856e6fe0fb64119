package ui

import (
	"io"

	"github.com/wagoodman/go-partybus"

	"github.com/allisonsierra/bomsmith/bomsmith/event"
	"github.com/allisonsierra/bomsmith/internal/log"
)

type loggerUI struct {
	unsubscribe  func() error
	reportOutput io.Writer
	quiet        bool
}

// NewLoggerUI writes a line per emitted document and validation finding to the given writer, leaving everything
// else to the application logger.
func NewLoggerUI(reportWriter io.Writer, quiet bool) UI {
	return &loggerUI{
		reportOutput: reportWriter,
		quiet:        quiet,
	}
}

func (l *loggerUI) Setup(unsubscribe func() error) error {
	l.unsubscribe = unsubscribe
	return nil
}

func (l loggerUI) Handle(e partybus.Event) error {
	switch e.Type {
	case event.DocumentEmitted:
		if l.quiet {
			return nil
		}
		if err := handleDocumentEmitted(e, l.reportOutput); err != nil {
			log.Warnf("unable to show document emitted event: %+v", err)
		}
		return nil
	case event.ValidationFinding:
		if err := handleValidationFinding(e, l.reportOutput); err != nil {
			log.Warnf("unable to show validation finding event: %+v", err)
		}
		return nil
	case event.CommandFinished:
		// this is the last expected event, stop listening to events
		return l.unsubscribe()
	}
	return nil
}

func (l loggerUI) Teardown(_ bool) error {
	return nil
}
