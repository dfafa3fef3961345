package event_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uno-online/server/uno/event"
)

func TestUnoCalled(t *testing.T) {
	listener := event.NewDummyListener()
	event.UnoCalled.AddListener(listener)
	defer event.UnoCalled.RemoveListener(listener)

	payload := event.UnoCalledPayload{
		PlayerID:   1,
		PlayerName: "Someone",
	}
	event.UnoCalled.Emit(payload)

	require.Equal(t, []interface{}{payload}, listener.ReceivedPayloads())
}
