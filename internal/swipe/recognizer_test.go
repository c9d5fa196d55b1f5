package swipe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viewpager/internal/domain"
	"viewpager/internal/pager"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestRecognizer(t *testing.T, opts ...pager.Option) (*Recognizer, *pager.Pager, *fakeClock) {
	t.Helper()
	p, err := pager.New(pager.Deps{}, opts...)
	require.NoError(t, err)
	p.AddFrame(pager.NewBox(100, 100))
	for i := 0; i < 3; i++ {
		p.AddView(pager.NewBox(100, 100), "")
	}
	p.Hydrate()

	clock := &fakeClock{now: time.Unix(0, 0)}
	return New(p, WithClock(clock)), p, clock
}

func countEvents(p *pager.Pager, t domain.EventType) *int {
	n := new(int)
	p.On(t, func(domain.DomainEvent) { *n++ })
	return n
}

func TestScenario_ShortFlickSnapsBack(t *testing.T) {
	r, p, clock := newTestRecognizer(t)
	ends := countEvents(p, domain.EventSwipeEnd)

	r.Start(Point{X: 200, Y: 50})
	clock.Advance(100 * time.Millisecond)
	require.True(t, r.Move(Point{X: 160, Y: 50}))
	assert.Equal(t, -40.0, p.TrackPosition(), "the track follows the drag")

	r.End()

	assert.Equal(t, 0, p.CurrentIndex(), "40 does not pass half of a 100 wide view")
	assert.Equal(t, 0.0, p.TrackPosition())
	assert.False(t, p.IsSwiping())
	assert.Equal(t, Idle, r.State())
	assert.Equal(t, 1, *ends)
}

func TestFlickPastThresholdCommitsNext(t *testing.T) {
	r, p, clock := newTestRecognizer(t)

	r.Start(Point{X: 200})
	clock.Advance(50 * time.Millisecond)
	r.Move(Point{X: 140})
	r.End()

	assert.Equal(t, 1, p.CurrentIndex())
	assert.Equal(t, -100.0, p.TrackPosition())
}

func TestSlowDragUsesViewsToMoveThreshold(t *testing.T) {
	r, p, clock := newTestRecognizer(t, pager.WithViewsToMove(2))

	// 60 passes a flick threshold of 50 but not 0.5 * 2 * 100
	r.Start(Point{X: 200})
	clock.Advance(time.Second)
	r.Move(Point{X: 140})
	r.End()
	assert.Equal(t, 0, p.CurrentIndex())

	r.Start(Point{X: 200})
	clock.Advance(100 * time.Millisecond)
	r.Move(Point{X: 140})
	r.End()
	assert.Equal(t, 2, p.CurrentIndex(), "the same distance as a flick commits")
}

func TestSingleStepDragMatchesFlick(t *testing.T) {
	r, p, clock := newTestRecognizer(t)

	r.Start(Point{X: 200})
	clock.Advance(time.Second)
	r.Move(Point{X: 160})
	r.End()
	assert.Equal(t, 0, p.CurrentIndex(), "40 stays under half a view however slow")

	r.Start(Point{X: 200})
	clock.Advance(time.Second)
	r.Move(Point{X: 140})
	r.End()
	assert.Equal(t, 1, p.CurrentIndex(), "60 commits without a flick")
}

func TestDragRightCommitsPrev(t *testing.T) {
	r, p, clock := newTestRecognizer(t)
	p.ScrollTo(2)
	p.PositionValue(p.TrackPosition())

	r.Start(Point{X: 10})
	clock.Advance(time.Second)
	require.True(t, r.Move(Point{X: 90}))
	assert.Equal(t, -120.0, p.TrackPosition(), "drag baseline is the displayed position")
	r.End()

	assert.Equal(t, 1, p.CurrentIndex())
	assert.Equal(t, -100.0, p.TrackPosition())
}

func TestDirectionalGate(t *testing.T) {
	r, p, _ := newTestRecognizer(t)

	r.Start(Point{X: 100, Y: 100})
	assert.False(t, r.Move(Point{X: 70, Y: 40}), "mostly vertical movement is not a horizontal swipe")
	assert.Equal(t, 0.0, p.TrackPosition())
	r.End()
	assert.Equal(t, 0, p.CurrentIndex())

	require.NoError(t, p.SetOptions(pager.WithAxis(domain.AxisY)))
	p.Hydrate()
	r.Start(Point{X: 100, Y: 100})
	assert.True(t, r.Move(Point{X: 90, Y: 20}))
	r.End()
	assert.Equal(t, 1, p.CurrentIndex(), "the gate is symmetric on the y axis")
}

func TestEndWithoutMovementDoesNothing(t *testing.T) {
	r, p, _ := newTestRecognizer(t)
	changes := countEvents(p, domain.EventViewChange)
	ends := countEvents(p, domain.EventSwipeEnd)

	r.Start(Point{X: 5, Y: 5})
	r.End()

	assert.Equal(t, 0, *changes)
	assert.Equal(t, 1, *ends)
	assert.Equal(t, 0, p.CurrentIndex())
}

func TestMalformedSequencesAreIgnored(t *testing.T) {
	r, p, _ := newTestRecognizer(t)
	ends := countEvents(p, domain.EventSwipeEnd)

	require.NotPanics(t, func() {
		assert.False(t, r.Move(Point{X: 10}))
		r.End()
		r.Leave()
	})
	assert.Equal(t, 0, *ends)
	assert.Equal(t, 0.0, p.TrackPosition())
}

func TestLeaveForceEndsGesture(t *testing.T) {
	r, p, clock := newTestRecognizer(t)
	ends := countEvents(p, domain.EventSwipeEnd)

	r.Start(Point{X: 200})
	clock.Advance(time.Second)
	r.Move(Point{X: 120})
	r.Leave()

	assert.Equal(t, Idle, r.State())
	assert.False(t, p.IsSwiping())
	assert.Equal(t, 1, p.CurrentIndex())
	assert.Equal(t, 1, *ends)

	r.Leave()
	assert.Equal(t, 1, *ends, "leaving while idle is a no-op")
}

func TestSwipeEvents(t *testing.T) {
	r, p, _ := newTestRecognizer(t)
	var got []domain.EventType
	for _, et := range []domain.EventType{domain.EventSwipeStart, domain.EventSwipeMove, domain.EventSwipeEnd} {
		p.On(et, func(e domain.DomainEvent) { got = append(got, e.Type()) })
	}

	r.Start(Point{X: 100})
	r.Move(Point{X: 90})
	r.Move(Point{X: 100, Y: 50})
	r.End()

	assert.Equal(t, []domain.EventType{domain.EventSwipeStart, domain.EventSwipeMove, domain.EventSwipeEnd}, got)
}

func TestNavigationDuringSwipeDoesNotMoveTrack(t *testing.T) {
	r, p, _ := newTestRecognizer(t)

	r.Start(Point{X: 100})
	r.Move(Point{X: 80})
	p.Next()
	assert.Equal(t, -20.0, p.TrackPosition())
	r.End()
}

func TestListeners(t *testing.T) {
	tests := []struct {
		mode  pager.SwipeMode
		mouse bool
		touch bool
	}{
		{pager.SwipeBoth, true, true},
		{pager.SwipeMouse, true, false},
		{pager.SwipeTouch, false, true},
		{pager.SwipeOff, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			r, _, _ := newTestRecognizer(t, pager.WithSwipe(tt.mode))
			l := r.Listeners()

			assert.Equal(t, tt.mouse, l.MouseDown != nil)
			assert.Equal(t, tt.mouse, l.MouseMove != nil)
			assert.Equal(t, tt.mouse, l.MouseUp != nil)
			assert.Equal(t, tt.mouse, l.MouseLeave != nil)
			assert.Equal(t, tt.touch, l.TouchStart != nil)
			assert.Equal(t, tt.touch, l.TouchMove != nil)
			assert.Equal(t, tt.touch, l.TouchEnd != nil)
		})
	}
}

func TestTouchListenersDriveGesture(t *testing.T) {
	r, p, clock := newTestRecognizer(t, pager.WithSwipe(pager.SwipeTouch))
	l := r.Listeners()

	l.TouchStart(Point{X: 300})
	clock.Advance(10 * time.Millisecond)
	l.TouchMove(Point{X: 200})
	l.TouchEnd()

	assert.Equal(t, 1, p.CurrentIndex())
}
