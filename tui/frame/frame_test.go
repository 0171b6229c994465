package frame

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualSchedulerFlush(t *testing.T) {
	s := NewManualScheduler()
	var order []int

	s.RequestFrame(func(time.Time) { order = append(order, 1) })
	h := s.RequestFrame(func(time.Time) { order = append(order, 2) })
	s.RequestFrame(func(time.Time) {
		order = append(order, 3)
		// Requested mid-flush: waits for the next one
		s.RequestFrame(func(time.Time) { order = append(order, 4) })
	})
	s.CancelFrame(h)

	assert.Equal(t, 2, s.Pending())
	assert.Equal(t, 2, s.Flush())
	assert.Equal(t, []int{1, 3}, order)

	assert.Equal(t, 1, s.Pending())
	assert.Equal(t, 1, s.Flush())
	assert.Equal(t, []int{1, 3, 4}, order)
	assert.Equal(t, 4, s.Requests())
	assert.Equal(t, 0, s.Flush())
}

func TestManualSchedulerCancelDuringFlush(t *testing.T) {
	s := NewManualScheduler()
	ran := false

	var second Handle
	s.RequestFrame(func(time.Time) { s.CancelFrame(second) })
	second = s.RequestFrame(func(time.Time) { ran = true })

	assert.Equal(t, 1, s.Flush())
	assert.False(t, ran)
}

func TestTickSchedulerDispatch(t *testing.T) {
	s := NewTickScheduler(0)
	assert.Equal(t, DefaultInterval, s.Interval())
	assert.Nil(t, s.Cmd())

	fired := 0
	h1 := s.RequestFrame(func(time.Time) { fired++ })
	h2 := s.RequestFrame(func(time.Time) { fired += 10 })
	require.NotNil(t, s.Cmd())
	assert.Nil(t, s.Cmd(), "Cmd drains the queue")
	assert.Equal(t, 2, s.Pending())

	s.CancelFrame(h2)
	assert.True(t, s.Dispatch(Msg{Handle: h1, At: time.Now()}))
	assert.False(t, s.Dispatch(Msg{Handle: h1}), "fires once")
	assert.False(t, s.Dispatch(Msg{Handle: h2}), "cancelled")
	assert.Equal(t, 1, fired)
	assert.Equal(t, 0, s.Pending())
}

func TestTickSchedulerCmdProducesMsg(t *testing.T) {
	s := NewTickScheduler(time.Millisecond)
	h := s.RequestFrame(func(time.Time) {})

	msg := s.Cmd()()
	frameMsg, ok := msg.(Msg)
	require.True(t, ok)
	assert.Equal(t, h, frameMsg.Handle)
}
