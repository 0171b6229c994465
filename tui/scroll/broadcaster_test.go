package scroll

import (
	"testing"

	"github.com/grovetools/sticky/errors"
	"github.com/grovetools/sticky/tui/frame"
	"github.com/grovetools/sticky/tui/layout"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	samples  []Sample
	onSample func(Sample)
}

func (r *recorder) HandleSample(s Sample) {
	r.samples = append(r.samples, s)
	if r.onSample != nil {
		r.onSample(s)
	}
}

// funcListener is deliberately not comparable.
type funcListener struct {
	fn func(Sample)
}

func (f funcListener) HandleSample(s Sample) { f.fn(s) }

func quietLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logrus.NewEntry(logger)
}

type fixture struct {
	sched    *frame.ManualScheduler
	viewport *Dispatcher
	local    *Dispatcher
	root     *layout.Box
	b        *Broadcaster
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		sched:    frame.NewManualScheduler(),
		viewport: NewDispatcher(ScopeViewport),
		local:    NewDispatcher(ScopeRoot),
		root:     layout.NewBox("root"),
	}
	f.root.Attach(nil)
	f.root.SetBounds(-10, 0, 80, 100)
	f.b = New(f.sched, WithLogger(quietLogger()), WithName("test"))
	f.b.Mount(f.root, f.viewport, f.local)
	return f
}

func TestThrottleOneFramePerInterval(t *testing.T) {
	f := newFixture(t)
	rec := &recorder{}
	f.b.Subscribe(rec)

	for i := 0; i < 50; i++ {
		f.viewport.Dispatch(Scroll)
	}

	assert.True(t, f.b.Pending())
	assert.Equal(t, 1, f.sched.Requests())
	assert.Equal(t, 1, f.sched.Flush())
	assert.False(t, f.b.Pending())

	require.Len(t, rec.samples, 1)
	assert.Equal(t, Sample{
		DistanceFromTop:    -10,
		DistanceFromBottom: 90,
		Measured:           true,
		Source:             ScopeViewport,
		Frame:              1,
	}, rec.samples[0])

	// The next event after the frame schedules a new one
	f.viewport.Dispatch(Resize)
	assert.Equal(t, 2, f.sched.Requests())
}

func TestEveryEventKindTriggers(t *testing.T) {
	for _, kind := range ViewportEvents {
		t.Run(kind.String(), func(t *testing.T) {
			f := newFixture(t)
			f.viewport.Dispatch(kind)
			assert.True(t, f.b.Pending())
		})
	}

	for _, kind := range LocalEvents {
		t.Run("local "+kind.String(), func(t *testing.T) {
			f := newFixture(t)
			f.local.Dispatch(kind)
			assert.True(t, f.b.Pending())
		})
	}

	f := newFixture(t)
	f.local.Dispatch(Resize)
	assert.False(t, f.b.Pending(), "resize is not bound on the root")
}

func TestSampleSource(t *testing.T) {
	f := newFixture(t)
	rec := &recorder{}
	f.b.Subscribe(rec)

	f.viewport.Dispatch(Scroll)
	f.local.Dispatch(Scroll)
	f.sched.Flush()

	f.viewport.Dispatch(Scroll)
	f.sched.Flush()

	require.Len(t, rec.samples, 2)
	assert.Equal(t, ScopeRoot, rec.samples[0].Source)
	assert.Equal(t, ScopeViewport, rec.samples[1].Source)
	assert.Equal(t, uint64(2), rec.samples[1].Frame)
}

func TestUnsubscribeDuringBroadcast(t *testing.T) {
	f := newFixture(t)
	second := &recorder{}
	first := &recorder{onSample: func(Sample) { f.b.Unsubscribe(second) }}
	f.b.Subscribe(first)
	f.b.Subscribe(second)

	f.viewport.Dispatch(Scroll)
	f.sched.Flush()
	assert.Len(t, second.samples, 1, "already snapshotted")

	f.viewport.Dispatch(Scroll)
	f.sched.Flush()
	assert.Len(t, first.samples, 2)
	assert.Len(t, second.samples, 1, "excluded from the next broadcast")
}

func TestSubscribeDuringBroadcast(t *testing.T) {
	f := newFixture(t)
	late := &recorder{}
	subscribed := false
	first := &recorder{onSample: func(Sample) {
		if !subscribed {
			subscribed = true
			f.b.Subscribe(late)
		}
	}}
	f.b.Subscribe(first)

	f.viewport.Dispatch(Scroll)
	f.sched.Flush()
	assert.Empty(t, late.samples)

	f.viewport.Dispatch(Scroll)
	f.sched.Flush()
	assert.Len(t, late.samples, 1)
}

func TestDuplicateRegistrationFiresTwice(t *testing.T) {
	f := newFixture(t)
	rec := &recorder{}
	f.b.Subscribe(rec)
	f.b.Subscribe(rec)
	assert.Equal(t, 2, f.b.Listeners())

	f.viewport.Dispatch(Scroll)
	f.sched.Flush()
	assert.Len(t, rec.samples, 2)

	// Unsubscribe removes every registration
	f.b.Unsubscribe(rec)
	assert.Equal(t, 0, f.b.Listeners())
}

func TestUnsubscribeUnknownIsNoop(t *testing.T) {
	f := newFixture(t)
	rec := &recorder{}
	f.b.Subscribe(rec)

	f.b.Unsubscribe(&recorder{})
	assert.Equal(t, 1, f.b.Listeners())
}

func TestSubscribeRejectsNonComparable(t *testing.T) {
	f := newFixture(t)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, errors.ErrCodeListenerNotComparable))
	}()
	f.b.Subscribe(funcListener{fn: func(Sample) {}})
}

func TestUnmountCancelsPendingFrame(t *testing.T) {
	f := newFixture(t)
	rec := &recorder{}
	f.b.Subscribe(rec)

	f.viewport.Dispatch(Scroll)
	require.True(t, f.b.Pending())

	f.b.Unmount()
	assert.False(t, f.b.Pending())
	assert.Equal(t, 0, f.sched.Pending())
	assert.Equal(t, 0, f.sched.Flush())
	assert.Empty(t, rec.samples)

	for _, kind := range ViewportEvents {
		assert.Equal(t, 0, f.viewport.Bound(kind), kind.String())
	}
	assert.Equal(t, 0, f.local.Bound(Scroll))

	// Events after unmount do nothing
	f.viewport.Dispatch(Scroll)
	assert.Equal(t, 1, f.sched.Requests())
	assert.Nil(t, f.b.Root())

	// Idempotent
	f.b.Unmount()
}

func TestRootBeforeMount(t *testing.T) {
	b := New(frame.NewManualScheduler(), WithLogger(quietLogger()))
	assert.Nil(t, b.Root())
	assert.False(t, b.Mounted())
	assert.NotEmpty(t, b.ID())
}

func TestUnattachedRootIsUnmeasured(t *testing.T) {
	f := newFixture(t)
	rec := &recorder{}
	f.b.Subscribe(rec)

	f.root.Detach()
	f.viewport.Dispatch(Load)
	f.sched.Flush()

	require.Len(t, rec.samples, 1)
	assert.False(t, rec.samples[0].Measured)
	assert.Zero(t, rec.samples[0].DistanceFromTop)
}

func TestRemountReplacesBindings(t *testing.T) {
	f := newFixture(t)
	other := NewDispatcher(ScopeViewport)
	f.b.Mount(f.root, other, nil)

	assert.Equal(t, 0, f.viewport.Bound(Scroll))
	assert.Equal(t, 1, other.Bound(Scroll))
	assert.Equal(t, 0, f.local.Bound(Scroll))
}

func TestRemountStartsWithViewportSource(t *testing.T) {
	f := newFixture(t)
	rec := &recorder{}
	f.b.Subscribe(rec)

	// Root-scoped frame cancelled by Unmount must not leak into the next mount
	f.local.Dispatch(Scroll)
	f.b.Unmount()
	f.b.Mount(f.root, f.viewport, f.local)

	f.viewport.Dispatch(Resize)
	f.sched.Flush()

	require.Len(t, rec.samples, 1)
	assert.Equal(t, ScopeViewport, rec.samples[0].Source)
}

func TestParseEventKind(t *testing.T) {
	for _, kind := range ViewportEvents {
		got, ok := ParseEventKind(kind.String())
		assert.True(t, ok)
		assert.Equal(t, kind, got)
	}
	_, ok := ParseEventKind("wheel")
	assert.False(t, ok)
}
