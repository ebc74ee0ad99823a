package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChoice_Encode(t *testing.T) {
	assert.Equal(t, uint8(0x00), Pass().Encode())
	assert.Equal(t, uint8(0x41), Move(4).Encode())
	assert.Equal(t, uint8(0x52), Switch(5).Encode())
	assert.Equal(t, uint8(0x01), Move(0).Encode())
}

func TestDecodeChoice(t *testing.T) {
	c, err := DecodeChoice(0x41)
	require.NoError(t, err)
	assert.Equal(t, Move(4), c)

	c, err = DecodeChoice(0x52)
	require.NoError(t, err)
	assert.Equal(t, Switch(5), c)

	for _, bad := range []uint8{
		0x45, // modifier bits set
		0x03, // unknown kind
		0x10, // pass with a slot
		0x51, // move 5
		0x12, // switch 1
		0x72, // switch 7
	} {
		_, err := DecodeChoice(bad)
		assert.ErrorIs(t, err, ErrInvalidChoice, "0x%02x", bad)
	}
}

func TestParseChoice(t *testing.T) {
	cases := map[string]Choice{
		"pass":      Pass(),
		"move 0":    Move(0),
		"Move 3":    Move(3),
		" switch 2": Switch(2),
	}
	for in, want := range cases {
		got, err := ParseChoice(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
		assert.Equal(t, want.Encode(), got.Encode())
	}
	for _, bad := range []string{"", "pass 1", "move", "move x", "move 5", "switch 1", "run"} {
		_, err := ParseChoice(bad)
		assert.ErrorIs(t, err, ErrInvalidChoice, bad)
	}
}

func TestRequest_Validate(t *testing.T) {
	r := Request{Kind: RequestMove, Moves: 2, Switchable: 1 << 2, Disabled: [4]bool{false, true}}
	assert.NoError(t, r.Validate(Move(1)))
	assert.ErrorIs(t, r.Validate(Move(2)), ErrInvalidChoice)
	assert.ErrorIs(t, r.Validate(Move(3)), ErrInvalidChoice)
	assert.ErrorIs(t, r.Validate(Move(0)), ErrInvalidChoice)
	assert.NoError(t, r.Validate(Switch(3)))
	assert.ErrorIs(t, r.Validate(Switch(2)), ErrInvalidChoice)
	assert.ErrorIs(t, r.Validate(Pass()), ErrInvalidChoice)
	assert.Equal(t, []Choice{Move(1), Switch(3)}, r.Choices())

	forced := Request{Kind: RequestMove, Moves: 2, Forced: true, Trapped: true, Switchable: 1 << 1}
	assert.NoError(t, forced.Validate(Move(0)))
	assert.ErrorIs(t, forced.Validate(Move(1)), ErrInvalidChoice)
	assert.ErrorIs(t, forced.Validate(Switch(2)), ErrInvalidChoice)
	assert.Equal(t, []Choice{Move(0)}, forced.Choices())

	struggle := Request{Kind: RequestMove, Moves: 1, Disabled: [4]bool{true}}
	assert.True(t, struggle.Struggle())
	assert.NoError(t, struggle.Validate(Move(0)))

	assert.Equal(t, []Choice{Pass()}, Request{}.Choices())
}

func TestResult_Encode(t *testing.T) {
	r := Result{Kind: ResultNone, P1: RequestMove, P2: RequestMove}
	assert.Equal(t, uint8(0x50), r.Encode())
	assert.Equal(t, uint8(0x01), Result{Kind: ResultWin}.Encode())
	assert.Equal(t, uint8(0x20), Result{P1: RequestSwitch}.Encode())
	assert.Equal(t, uint8(0x80), Result{P2: RequestSwitch}.Encode())

	for _, want := range []Result{r, {Kind: ResultTie}, {Kind: ResultError}, {P1: RequestSwitch, P2: RequestPass}} {
		got, err := DecodeResult(want.Encode())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := DecodeResult(0x05)
	assert.Error(t, err)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("Strict")
	require.NoError(t, err)
	assert.Equal(t, Strict, m)
	m, err = ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, Compat, m)
	_, err = ParseMode("gen9")
	assert.ErrorIs(t, err, ErrUnsupportedMode)
}
