package cmd

import (
	"errors"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/wagoodman/go-partybus"

	"github.com/allisonsierra/bomsmith/internal/log"
	"github.com/allisonsierra/bomsmith/internal/ui"
)

// eventLoop listens to worker errors (from execution path), worker events (from a partybus subscription), and
// signal interrupts. Is responsible for handling each event relative to a given UI an to coordinate eventing until
// an eventual graceful exit.
func eventLoop(workerErrs <-chan error, signals <-chan os.Signal, subscription *partybus.Subscription, cleanupFn func(), ux ui.UI) error {
	defer cleanupFn()
	events := subscription.Events()
	if err := ux.Setup(subscription.Unsubscribe); err != nil {
		return err
	}

	var retErr error
	var forceTeardown bool

	for {
		if workerErrs == nil && events == nil {
			break
		}
		select {
		case err, isOpen := <-workerErrs:
			if !isOpen {
				workerErrs = nil
				continue
			}
			if err != nil {
				// capture the error from the worker and unsubscribe to complete a graceful shutdown
				retErr = multierror.Append(retErr, err)
				if err := subscription.Unsubscribe(); err != nil {
					retErr = multierror.Append(retErr, err)
				}
			}
		case e, isOpen := <-events:
			if !isOpen {
				events = nil
				continue
			}

			if err := ux.Handle(e); err != nil {
				if errors.Is(err, partybus.ErrUnsubscribe) {
					log.Warnf("unable to unsubscribe from the event bus")
					events = nil
				} else {
					retErr = multierror.Append(retErr, err)
				}
			}
		case <-signals:
			// ignore further results from any event source and exit ASAP
			events = nil
			workerErrs = nil
			forceTeardown = true
		}
	}

	if err := ux.Teardown(forceTeardown); err != nil {
		retErr = multierror.Append(retErr, err)
	}

	return retErr
}
