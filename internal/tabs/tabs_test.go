package tabs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeCount(r *Router) int {
	n := 0
	for _, t := range All() {
		if r.IsActive(t) {
			n++
		}
	}
	return n
}

func TestDefaultIsFirstTab(t *testing.T) {
	var r Router
	assert.Equal(t, Summary, r.Active())
	assert.Equal(t, Summary, NewRouter(Tab(42)).Active())
}

func TestSelectEachTabKeepsExactlyOneActive(t *testing.T) {
	r := NewRouter(Summary)
	for _, tab := range All() {
		require.True(t, r.Select(tab))
		assert.Equal(t, tab, r.Active())
		assert.Equal(t, 1, activeCount(r))
	}
}

func TestSelectIDUnknownKeepsPrevious(t *testing.T) {
	r := NewRouter(Summary)
	require.NoError(t, r.SelectID("qna"))

	err := r.SelectID("transcript")
	assert.ErrorIs(t, err, ErrUnknownTab)
	assert.Equal(t, QnA, r.Active())
	assert.Equal(t, 1, activeCount(r))

	assert.False(t, r.Select(Tab(-1)))
	assert.Equal(t, QnA, r.Active())
}

func TestNextPrevWrap(t *testing.T) {
	r := NewRouter(QnA)
	assert.Equal(t, Summary, r.Next())
	assert.Equal(t, QnA, r.Prev())
	assert.Equal(t, MindMap, r.Prev())
}

func TestParseAndNames(t *testing.T) {
	tab, err := Parse(" MindMap ")
	require.NoError(t, err)
	assert.Equal(t, MindMap, tab)
	assert.Equal(t, "mindmap", tab.String())
	assert.Equal(t, "Mind Map", tab.Title())
	assert.Equal(t, "Q&A", QnA.Title())
}
