package cmd

import (
	"fmt"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wagoodman/go-partybus"

	"github.com/allisonsierra/bomsmith/bomsmith/event"
	"github.com/allisonsierra/bomsmith/internal/ui"
)

var _ ui.UI = (*uiMock)(nil)

type uiMock struct {
	t           *testing.T
	finalEvent  partybus.Event
	unsubscribe func() error
	mock.Mock
}

func (u *uiMock) Setup(unsubscribe func() error) error {
	u.unsubscribe = unsubscribe
	return u.Called(unsubscribe).Error(0)
}

func (u *uiMock) Handle(event partybus.Event) error {
	u.t.Logf("UI Handle called: %+v", event.Type)
	if event == u.finalEvent {
		assert.NoError(u.t, u.unsubscribe())
	}
	return u.Called(event).Error(0)
}

func (u *uiMock) Teardown(_ bool) error {
	return u.Called().Error(0)
}

// finishingWorker sends nothing (or the given error), closes its channel and then publishes the final event.
func finishingWorker(testBus *partybus.Bus, finalEvent *partybus.Event, workerErr error) <-chan error {
	ret := make(chan error)
	go func() {
		ret <- nil
		if workerErr != nil {
			ret <- workerErr
		}
		close(ret)
		if finalEvent != nil {
			testBus.Publish(*finalEvent)
		}
	}()
	return ret
}

func Test_eventLoop(t *testing.T) {
	finished := partybus.Event{Type: event.CommandFinished}
	handlerErr := fmt.Errorf("unable to show document")
	workerErr := fmt.Errorf("worker error")
	teardownErr := fmt.Errorf("sorry, the UI doesn't want to be torn down")

	tests := []struct {
		name        string
		finalEvent  *partybus.Event
		workerErr   error
		handleErr   error
		teardownErr error
		wantErr     error
	}{
		{
			name:       "graceful exit",
			finalEvent: &finished,
		},
		{
			name:      "worker error",
			workerErr: workerErr,
			wantErr:   workerErr,
		},
		{
			name:       "unsubscribe errors are not propagated",
			finalEvent: &finished,
			handleErr:  partybus.ErrUnsubscribe,
		},
		{
			name:       "handler errors are propagated",
			finalEvent: &finished,
			handleErr:  handlerErr,
			wantErr:    handlerErr,
		},
		{
			name:        "teardown errors are propagated",
			finalEvent:  &finished,
			teardownErr: teardownErr,
			wantErr:     teardownErr,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			testWithTimeout(t, 5*time.Second, func(t *testing.T) {
				testBus := partybus.NewBus()
				subscription := testBus.Subscribe()
				t.Cleanup(testBus.Close)

				ux := &uiMock{t: t}
				if test.finalEvent != nil {
					ux.finalEvent = *test.finalEvent
					ux.On("Handle", *test.finalEvent).Return(test.handleErr)
				}
				ux.On("Setup", mock.AnythingOfType("func() error")).Return(nil)
				ux.On("Teardown").Return(test.teardownErr)

				var cleanupCalled bool
				err := eventLoop(
					finishingWorker(testBus, test.finalEvent, test.workerErr),
					nil,
					subscription,
					func() { cleanupCalled = true },
					ux,
				)

				if test.wantErr != nil {
					assert.ErrorIs(t, err, test.wantErr)
				} else {
					assert.NoError(t, err)
				}
				assert.True(t, cleanupCalled, "cleanup function not called")
				ux.AssertExpectations(t)
			})
		})
	}

}

func Test_eventLoop_signalsStopExecution(t *testing.T) {
	testWithTimeout(t, 5*time.Second, func(t *testing.T) {
		testBus := partybus.NewBus()
		subscription := testBus.Subscribe()
		t.Cleanup(testBus.Close)

		signals := make(chan os.Signal)
		go func() {
			// the channel is never closed, the loop must not depend on it
			signals <- syscall.SIGINT
		}()

		ux := &uiMock{t: t}
		ux.On("Setup", mock.AnythingOfType("func() error")).Return(nil)
		ux.On("Teardown").Return(nil)

		var cleanupCalled bool
		assert.NoError(t, eventLoop(make(chan error), signals, subscription, func() { cleanupCalled = true }, ux))
		assert.True(t, cleanupCalled, "cleanup function not called")
		ux.AssertExpectations(t)
	})
}

func testWithTimeout(t *testing.T, timeout time.Duration, test func(*testing.T)) {
	done := make(chan bool)
	go func() {
		test(t)
		done <- true
	}()

	select {
	case <-time.After(timeout):
		t.Fatal("test timed out")
	case <-done:
	}
}
