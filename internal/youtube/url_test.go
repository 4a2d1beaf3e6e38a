package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", true},
		{"youtu.be/dQw4w9WgXcQ", true},
		{"https://youtube.com/embed/dQw4w9WgXcQ", true},
		{"http://youtube.com/v/dQw4w9WgXcQ", true},
		{"  https://youtu.be/dQw4w9WgXcQ  ", true},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", true},
		{"https://youtu.be/dQw4w9WgXcQ/extra", true},
		{"", false},
		{"   ", false},
		{"not a url", false},
		{"https://youtube.com/watch?v=short", false},
		{"https://vimeo.com/123456789", false},
		{"ftp://youtube.com/watch?v=dQw4w9WgXcQ", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValid(tt.input), "IsValid(%q)", tt.input)
	}
}

func TestValidateReasons(t *testing.T) {
	assert.ErrorIs(t, Validate(""), ErrEmptyURL)
	assert.ErrorIs(t, Validate("\t\n"), ErrEmptyURL)
	assert.ErrorIs(t, Validate("not a url"), ErrInvalidURL)
	assert.NoError(t, Validate("youtu.be/dQw4w9WgXcQ"))
}

func TestVideoID(t *testing.T) {
	id, ok := VideoID("https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=abc")
	require.True(t, ok)
	assert.Equal(t, "dQw4w9WgXcQ", id)

	_, ok = VideoID("https://youtube.com/watch?v=short")
	assert.False(t, ok)
}

func TestCheck(t *testing.T) {
	assert.Equal(t, FeedbackNeutral, Check(""))
	assert.Equal(t, FeedbackInvalid, Check("https://youtu"))
	assert.Equal(t, FeedbackValid, Check("youtu.be/dQw4w9WgXcQ"))
}
