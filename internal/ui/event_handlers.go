package ui

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/gookit/color"
	"github.com/wagoodman/go-partybus"

	"github.com/allisonsierra/bomsmith/bomsmith/event/parsers"
)

func handleDocumentEmitted(event partybus.Event, reportOutput io.Writer) error {
	doc, err := parsers.ParseDocumentEmitted(event)
	if err != nil {
		return fmt.Errorf("bad DocumentEmitted event: %w", err)
	}

	// the document itself went to stdout, keep the stream clean
	if doc.Target == "stdout" {
		return nil
	}

	_, err = fmt.Fprintf(reportOutput, " %s %s %s (%s %s, %s)\n",
		color.Green.Sprint("✔"), "Wrote", doc.Target, doc.Format, doc.Version, humanize.Bytes(uint64(doc.Size)))
	return err
}

func handleValidationFinding(event partybus.Event, reportOutput io.Writer) error {
	source, finding, err := parsers.ParseValidationFinding(event)
	if err != nil {
		return fmt.Errorf("bad ValidationFinding event: %w", err)
	}

	_, err = fmt.Fprintf(reportOutput, " %s %s: %v\n", color.Red.Sprint("✗"), source, finding)
	return err
}
