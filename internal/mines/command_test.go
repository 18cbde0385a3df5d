package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"3 4 free", Command{3, 4, Reveal}},
		{"1 9 mine", Command{1, 9, Mark}},
		{"  2   2   FREE ", Command{2, 2, Reveal}},
		{"5 6 flag", Command{5, 6, Mark}},
		{"0 12 open", Command{0, 12, Reveal}},
	}
	for _, test := range tests {
		t.Run(test.line, func(t *testing.T) {
			cmd, err := ParseCommand(test.line)
			require.NoError(t, err)
			assert.Equal(t, test.want, cmd)
		})
	}
}

func TestParseCommandErrors(t *testing.T) {
	tests := []struct {
		line    string
		message string
	}{
		{"", "x must be integer number"},
		{"a 1 free", "x must be integer number"},
		{"1", "y must be integer number"},
		{"1 b free", "y must be integer number"},
		{"1 2", "choose 'free' or 'mine' as third argument"},
		{"1 2 dig", "choose 'free' or 'mine' as third argument"},
		{"1 2 free now", "choose 'free' or 'mine' as third argument"},
	}
	for _, test := range tests {
		t.Run(test.line, func(t *testing.T) {
			_, err := ParseCommand(test.line)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidCommand)
			assert.Equal(t, test.message, err.Error())
		})
	}
}

func TestParseCommandBadAction(t *testing.T) {
	for _, line := range []string{"1 2", "1 2 dig", "1 2 free now"} {
		_, err := ParseCommand(line)
		assert.ErrorIs(t, err, ErrBadAction, line)
		assert.ErrorIs(t, err, ErrInvalidCommand, line)
	}

	_, err := ParseCommand("a 1 free")
	assert.NotErrorIs(t, err, ErrBadAction)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "free", Reveal.String())
	assert.Equal(t, "mine", Mark.String())
	assert.Equal(t, "Action(0)", Action(0).String())
}
