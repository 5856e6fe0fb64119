/*
Package event provides event types for all events that the bomsmith library published onto the event bus. By convention, for each event
defined here there should be a corresponding event parser defined in the parsers/ child package.
*/
package event

import "github.com/wagoodman/go-partybus"

const (
	// DocumentEmitted is a partybus event that occurs when a single document has been fully encoded and written.
	DocumentEmitted partybus.EventType = "bomsmith-document-emitted"

	// ValidationFinding is a partybus event that occurs for every problem found while validating a BOM.
	ValidationFinding partybus.EventType = "bomsmith-validation-finding"

	// CommandFinished is a partybus event that occurs when a CLI command has no more work to publish.
	CommandFinished partybus.EventType = "bomsmith-command-finished"
)

// Document describes one emitted document: which schema version and serialization it used and where it went.
type Document struct {
	Version string
	Format  string
	Target  string
	Size    int
}
