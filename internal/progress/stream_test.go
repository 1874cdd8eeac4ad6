package progress

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biomarkerlab/labreports/constants"
)

func TestStreamDeliversOrderedEventsThenCloses(t *testing.T) {
	b := NewBroker(nil)
	id := uuid.New()
	b.Open(id)

	ch, ok := b.Subscribe(id)
	require.True(t, ok)

	b.Stage(id, constants.StageFetchingSource)
	b.Stage(id, constants.StageExtracting)
	b.Complete(id, map[string]int{"biomarkers": 3})

	var got []Event
	for ev := range ch {
		got = append(got, ev)
	}
	require.Len(t, got, 3)
	assert.Equal(t, EventStage, got[0].Type)
	assert.Equal(t, string(constants.StageFetchingSource), got[0].Stage)
	assert.Equal(t, string(constants.StageExtracting), got[1].Stage)
	assert.Equal(t, EventComplete, got[2].Type)
}

func TestStreamErrorIsTerminal(t *testing.T) {
	b := NewBroker(nil)
	id := uuid.New()
	b.Open(id)

	ch, ok := b.Subscribe(id)
	require.True(t, ok)

	b.Error(id, "extraction failed")
	// events after the terminal one are silently ignored
	b.Stage(id, constants.StageVerifying)

	var got []Event
	for ev := range ch {
		got = append(got, ev)
	}
	require.Len(t, got, 1)
	assert.Equal(t, EventError, got[0].Type)
	assert.Equal(t, "extraction failed", got[0].Error)
}

func TestSubscribeUnknownJob(t *testing.T) {
	b := NewBroker(nil)

	_, ok := b.Subscribe(uuid.New())
	assert.False(t, ok)
}

func TestSubscribeAfterTerminal(t *testing.T) {
	b := NewBroker(nil)
	id := uuid.New()
	b.Open(id)
	b.Complete(id, nil)

	_, ok := b.Subscribe(id)
	assert.False(t, ok)
}

func TestOpenIsIdempotent(t *testing.T) {
	b := NewBroker(nil)
	id := uuid.New()
	b.Open(id)

	ch, ok := b.Subscribe(id)
	require.True(t, ok)

	// a second Open must not reset the stream or its subscribers
	b.Open(id)
	b.Complete(id, nil)

	ev, open := <-ch
	require.True(t, open)
	assert.Equal(t, EventComplete, ev.Type)
}

func TestTerminalEventReachesSlowSubscriber(t *testing.T) {
	b := NewBroker(nil)
	id := uuid.New()
	b.Open(id)

	ch, ok := b.Subscribe(id)
	require.True(t, ok)

	// overflow the subscriber buffer without consuming
	for i := 0; i < subscriberBuffer+16; i++ {
		b.Stage(id, constants.StageExtracting)
	}
	b.Complete(id, nil)

	var last Event
	for ev := range ch {
		last = ev
	}
	assert.Equal(t, EventComplete, last.Type)
}

func TestMultipleSubscribersAllReceive(t *testing.T) {
	b := NewBroker(nil)
	id := uuid.New()
	b.Open(id)

	ch1, ok := b.Subscribe(id)
	require.True(t, ok)
	ch2, ok := b.Subscribe(id)
	require.True(t, ok)

	b.Stage(id, constants.StagePostProcessing)
	b.Complete(id, nil)

	for _, ch := range []<-chan Event{ch1, ch2} {
		var got []Event
		for ev := range ch {
			got = append(got, ev)
		}
		require.Len(t, got, 2)
		assert.Equal(t, EventComplete, got[1].Type)
	}
}
