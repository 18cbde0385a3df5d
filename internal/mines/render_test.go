package mines

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRows(t *testing.T) {
	f := fieldWithMines(t, 3, 3, Point{1, 1}, Point{3, 3})
	assert.Equal(t, []string{"...", "...", "..."}, f.Rows(false))
	assert.Equal(t, []string{"X1.", "121", ".1X"}, f.Rows(true))

	f.Reveal(2, 2)
	f.ToggleMark(1, 1)
	assert.Equal(t, []string{"*..", ".2.", "..."}, f.Rows(false))
}

func TestRender(t *testing.T) {
	f := fieldWithMines(t, 3, 3, Point{1, 1}, Point{3, 3})
	f.Reveal(2, 2)

	want := strings.Join([]string{
		" │123│",
		"—│———│",
		"1│...│",
		"2│.2.│",
		"3│...│",
		"—│———│",
		"",
	}, "\n")
	assert.Equal(t, want, f.String())
}

func TestRenderWideField(t *testing.T) {
	f := fieldWithMines(t, 12, 10)
	f.Reveal(1, 1)

	var b strings.Builder
	require.NoError(t, f.Render(&b, false))
	lines := strings.Split(b.String(), "\n")

	assert.Equal(t, "  │123456789012│", lines[0])
	assert.Equal(t, "——│————————————│", lines[1])
	assert.Equal(t, " 1│////////////│", lines[2])
	assert.Equal(t, "10│////////////│", lines[11])
}
