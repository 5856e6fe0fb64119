package ui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wagoodman/go-partybus"

	"github.com/allisonsierra/bomsmith/bomsmith/event"
)

func TestLoggerUI_Handle(t *testing.T) {
	var out bytes.Buffer
	var unsubscribed bool
	ux := NewLoggerUI(&out, false)
	require.NoError(t, ux.Setup(func() error {
		unsubscribed = true
		return nil
	}))

	events := []partybus.Event{
		{Type: event.DocumentEmitted, Value: event.Document{Version: "1.3", Format: "JSON", Target: "bom.json", Size: 2048}},
		{Type: event.DocumentEmitted, Value: event.Document{Version: "1.3", Format: "XML", Target: "stdout", Size: 10}},
		{Type: event.ValidationFinding, Source: "bom.json", Value: errors.New("components[0].name: required")},
		{Type: event.DocumentEmitted, Value: "not a document"},
	}
	for _, e := range events {
		require.NoError(t, ux.Handle(e))
	}
	assert.False(t, unsubscribed)

	require.NoError(t, ux.Handle(partybus.Event{Type: event.CommandFinished}))
	assert.True(t, unsubscribed)

	assert.Contains(t, out.String(), "Wrote bom.json (JSON 1.3, 2.0 kB)\n")
	assert.Contains(t, out.String(), "bom.json: components[0].name: required\n")
	assert.NotContains(t, out.String(), "stdout")
}

func TestLoggerUI_Quiet(t *testing.T) {
	var out bytes.Buffer
	ux := NewLoggerUI(&out, true)
	require.NoError(t, ux.Setup(func() error { return nil }))

	require.NoError(t, ux.Handle(partybus.Event{Type: event.DocumentEmitted, Value: event.Document{Target: "bom.json"}}))
	assert.Empty(t, out.String())
}
