package ui

import (
	"github.com/wagoodman/go-partybus"
)

// UI reacts to the events published while a command runs.
type UI interface {
	Setup(unsubscribe func() error) error
	partybus.Handler
	Teardown(force bool) error
}
