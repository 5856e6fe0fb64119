package bus

import (
	"github.com/wagoodman/go-partybus"

	"github.com/allisonsierra/bomsmith/bomsmith/event"
)

func DocumentEmitted(doc event.Document) {
	Publish(partybus.Event{
		Type:   event.DocumentEmitted,
		Source: doc.Target,
		Value:  doc,
	})
}

func ValidationFinding(source string, err error) {
	Publish(partybus.Event{
		Type:   event.ValidationFinding,
		Source: source,
		Value:  err,
	})
}

func Exit() {
	Publish(partybus.Event{
		Type: event.CommandFinished,
	})
}
