package bus

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testObserver struct {
	publishCount   int
	deliveredCount int
	lastErr        error
}

func (o *testObserver) OnPublish(_ string, _ Event) {
	o.publishCount++
}

func (o *testObserver) OnDelivered(_ string, handlers int, err error) {
	o.deliveredCount += handlers
	o.lastErr = err
}

func TestPublishSubscribe(t *testing.T) {
	b := New()
	var got []Event
	sub, err := b.Subscribe(TypeWaveSpawned, func(e Event) error {
		got = append(got, e)
		return nil
	})
	require.NoError(t, err)
	assert.NotEmpty(t, sub.ID())
	assert.Equal(t, TypeWaveSpawned, sub.EventType())

	require.NoError(t, b.Publish(NewEvent(TypeWaveSpawned, "world", 12, WaveSpawned{Wave: 1, Enemies: 5})))
	require.NoError(t, b.Publish(NewEvent(TypeEnemyKilled, "world", 13, nil)))

	require.Len(t, got, 1)
	assert.Equal(t, 12, got[0].Tick())
	assert.Equal(t, "world", got[0].Source())
	assert.Equal(t, WaveSpawned{Wave: 1, Enemies: 5}, got[0].Data())
}

func TestDeliveryOrder(t *testing.T) {
	b := New()
	var order []string
	for _, name := range []string{"a", "b", "c"} {
		_, err := b.Subscribe("x", func(Event) error {
			order = append(order, name)
			return nil
		})
		require.NoError(t, err)
	}
	_, err := b.Subscribe(Wildcard, func(Event) error {
		order = append(order, "*")
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, b.Publish(NewEvent("x", "", 0, nil)))
	assert.Equal(t, []string{"a", "b", "c", "*"}, order)
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	calls := 0
	sub, err := b.Subscribe("x", func(Event) error {
		calls++
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, b.Publish(NewEvent("x", "", 0, nil)))
	require.NoError(t, b.Unsubscribe(sub))
	require.NoError(t, sub.Cancel())
	assert.False(t, sub.IsActive())
	require.NoError(t, b.Publish(NewEvent("x", "", 0, nil)))
	require.NoError(t, b.Unsubscribe(nil))

	assert.Equal(t, 1, calls)
}

func TestHandlerErrorsAreJoined(t *testing.T) {
	b := New()
	e1, e2 := errors.New("one"), errors.New("two")
	_, _ = b.Subscribe("x", func(Event) error { return e1 })
	_, _ = b.Subscribe("x", func(Event) error { return e2 })

	err := b.Publish(NewEvent("x", "", 0, nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, e1)
	assert.ErrorIs(t, err, e2)

	err = b.PublishBatch(NewEvent("x", "", 0, nil), NewEvent("y", "", 0, nil))
	assert.ErrorIs(t, err, e1)
}

func TestNilHandler(t *testing.T) {
	_, err := New().Subscribe("x", nil)
	assert.ErrorIs(t, err, ErrNilHandler)
}

func TestObserverMetrics(t *testing.T) {
	b := New()
	obs := &testObserver{}
	b.AddObserver(obs)

	_, _ = b.Subscribe("x", func(Event) error { return nil })
	_, _ = b.Subscribe("x", func(Event) error { return errors.New("fail") })

	err := b.Publish(NewEvent("x", "", 0, nil))
	require.Error(t, err)
	require.NoError(t, b.PublishWithFilters(NewEvent("x", "", 0, nil), func(Event) bool { return false }))

	assert.Equal(t, 1, obs.publishCount)
	assert.Equal(t, 2, obs.deliveredCount)
	assert.Error(t, obs.lastErr)

	m := b.GetMetrics()
	assert.Equal(t, uint64(1), m.Published)
	assert.Equal(t, uint64(2), m.DeliveredHandlers)
	assert.Equal(t, uint64(1), m.Errors)
	assert.Equal(t, uint64(1), m.DroppedByFilters)
	assert.Equal(t, uint64(2), m.SubscribersActive)

	b.RemoveObserver(obs)
	_ = b.Publish(NewEvent("x", "", 0, nil))
	assert.Equal(t, 1, obs.publishCount)
}
