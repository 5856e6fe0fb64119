package parsers

import (
	"fmt"

	"github.com/wagoodman/go-partybus"

	"github.com/allisonsierra/bomsmith/bomsmith/event"
)

type ErrBadPayload struct {
	Type  partybus.EventType
	Field string
	Value interface{}
}

func (e *ErrBadPayload) Error() string {
	return fmt.Sprintf("event='%s' has bad event payload field='%v': '%+v'", string(e.Type), e.Field, e.Value)
}

func newPayloadErr(t partybus.EventType, field string, value interface{}) error {
	return &ErrBadPayload{
		Type:  t,
		Field: field,
		Value: value,
	}
}

func checkEventType(actual, expected partybus.EventType) error {
	if actual != expected {
		return newPayloadErr(expected, "Type", actual)
	}
	return nil
}

func ParseDocumentEmitted(e partybus.Event) (*event.Document, error) {
	if err := checkEventType(e.Type, event.DocumentEmitted); err != nil {
		return nil, err
	}

	doc, ok := e.Value.(event.Document)
	if !ok {
		return nil, newPayloadErr(e.Type, "Value", e.Value)
	}

	return &doc, nil
}

func ParseValidationFinding(e partybus.Event) (string, error, error) {
	if err := checkEventType(e.Type, event.ValidationFinding); err != nil {
		return "", nil, err
	}

	source, ok := e.Source.(string)
	if !ok {
		return "", nil, newPayloadErr(e.Type, "Source", e.Source)
	}

	finding, ok := e.Value.(error)
	if !ok {
		return "", nil, newPayloadErr(e.Type, "Value", e.Value)
	}

	return source, finding, nil
}
