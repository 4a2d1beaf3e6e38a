package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPresenter(start time.Time) (*Presenter, *time.Time) {
	clock := start
	p := NewPresenter()
	p.now = func() time.Time { return clock }
	return p, &clock
}

func TestShowStacksInInsertionOrder(t *testing.T) {
	p, _ := newTestPresenter(time.Unix(0, 0))

	first, cmd := p.Show(KindError, "", "first", ContainerInput)
	require.NotNil(t, cmd)
	second, _ := p.Show(KindError, "", "second", ContainerInput)
	p.Show(KindInfo, "PDF Export", "later", ContainerExport)

	got := p.List(ContainerInput)
	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, second.ID, got[1].ID)
	assert.Len(t, p.List(ContainerExport), 1)
	assert.Equal(t, 3, p.Len())
}

func TestExpiryPerKind(t *testing.T) {
	p, _ := newTestPresenter(time.Unix(0, 0))
	errNote, _ := p.Show(KindError, "", "bad", ContainerInput)
	infoNote, _ := p.Show(KindInfo, "", "fyi", ContainerExport)
	assert.Equal(t, 5000*time.Millisecond, errNote.Expiry)
	assert.Equal(t, 4000*time.Millisecond, infoNote.Expiry)
}

func TestSweepRemovesOnlyExpired(t *testing.T) {
	start := time.Unix(100, 0)
	p, _ := newTestPresenter(start)
	p.Show(KindError, "", "error", ContainerInput)
	p.Show(KindInfo, "", "info", ContainerExport)

	assert.Equal(t, 0, p.Sweep(start.Add(3999*time.Millisecond)))
	assert.Equal(t, 1, p.Sweep(start.Add(4*time.Second)))
	assert.Empty(t, p.List(ContainerExport))
	assert.Len(t, p.List(ContainerInput), 1)
	assert.Equal(t, 1, p.Sweep(start.Add(5*time.Second)))
	assert.Zero(t, p.Len())
}

func TestDismissBeforeExpiryMakesTimerNoop(t *testing.T) {
	p, _ := newTestPresenter(time.Unix(0, 0))
	n, _ := p.Show(KindError, "", "oops", ContainerInput)

	assert.True(t, p.Dismiss(n.ID))
	assert.False(t, p.Expire(n.ID))
	assert.False(t, p.Dismiss(n.ID))
	assert.Zero(t, p.Len())
}

func TestIndependentTimers(t *testing.T) {
	p, _ := newTestPresenter(time.Unix(0, 0))
	a, _ := p.Show(KindError, "", "a", ContainerInput)
	b, _ := p.Show(KindError, "", "b", ContainerInput)

	assert.True(t, p.Expire(a.ID))
	latest, ok := p.Latest()
	require.True(t, ok)
	assert.Equal(t, b.ID, latest.ID)
}

func TestLatestFiltersByContainer(t *testing.T) {
	p, _ := newTestPresenter(time.Unix(0, 0))
	input, _ := p.Show(KindError, "", "bad url", ContainerInput)
	exported, _ := p.Show(KindInfo, "PDF Export", "soon", ContainerExport)

	latest, ok := p.Latest()
	require.True(t, ok)
	assert.Equal(t, exported.ID, latest.ID)

	latest, ok = p.Latest(ContainerInput)
	require.True(t, ok)
	assert.Equal(t, input.ID, latest.ID)

	require.True(t, p.Dismiss(input.ID))
	_, ok = p.Latest(ContainerInput)
	assert.False(t, ok)
}
