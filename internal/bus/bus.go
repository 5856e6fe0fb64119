package bus

import "github.com/wagoodman/go-partybus"

var publisher partybus.Publisher

// SetPublisher installs the publisher used by the library; a nil publisher silences all events.
func SetPublisher(p partybus.Publisher) {
	publisher = p
}

func Publish(event partybus.Event) {
	if publisher != nil {
		publisher.Publish(event)
	}
}
