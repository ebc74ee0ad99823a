package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPSRNG_Deterministic(t *testing.T) {
	a := New(NewPSRNG([4]uint16{1, 2, 3, 4}))
	b := New(NewPSRNG([4]uint16{1, 2, 3, 4}))
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Range(256), b.Range(256))
	}
	assert.Equal(t, uint64(100), a.Calls())
}

func TestPSRNG_FirstStep(t *testing.T) {
	p := NewPSRNG([4]uint16{0, 0, 0, 1})
	want := uint64(1)*0x5D588B656C078965 + 0x269EC3
	assert.Equal(t, uint32(want>>32), p.Next())
	assert.Equal(t, [4]uint16{uint16(want >> 48), uint16(want >> 32), uint16(want >> 16), uint16(want)}, p.Seed())
}

func TestPSRNG_SeedsDiffer(t *testing.T) {
	a := NewPSRNG([4]uint16{1, 2, 3, 4})
	b := NewPSRNG([4]uint16{4, 3, 2, 1})
	assert.NotEqual(t, a.Next(), b.Next())
}

func TestRNG_RangeBounds(t *testing.T) {
	r := New(NewPSRNG([4]uint16{0x1234, 0x5678, 0x9abc, 0xdef0}))
	for i := 0; i < 1000; i++ {
		assert.Less(t, r.Range(7), uint32(7))
	}
}

func TestRNG_CloneIndependent(t *testing.T) {
	r := New(NewPSRNG([4]uint16{9, 9, 9, 9}))
	r.Range(10)
	c := r.Clone()
	require.NotNil(t, c)
	assert.Equal(t, r.Range(1000), c.Range(1000))
	r.Range(1000)
	assert.NotEqual(t, r.Calls(), c.Calls())
}

func TestRoll_HitsExactValue(t *testing.T) {
	for _, bound := range []uint32{2, 7, 39, 256} {
		for k := uint32(0); k < bound; k++ {
			r := New(NewFixed(Roll(k, bound)))
			assert.Equal(t, k, r.Range(bound), "k=%d bound=%d", k, bound)
		}
	}
}

func TestFixed_MinMax(t *testing.T) {
	f := NewFixed(Min, Max)
	r := New(f)
	assert.Equal(t, uint32(0), r.Range(256))
	assert.Equal(t, uint32(255), r.Range(256))
	assert.True(t, f.Exhausted())
	require.NoError(t, f.Err())
}

func TestFixed_OverConsumption(t *testing.T) {
	f := NewFixed(Min)
	r := New(f)
	r.Range(2)
	r.Range(2)
	assert.False(t, f.Exhausted())
	assert.Error(t, f.Err())
}

func TestFixed_Unused(t *testing.T) {
	f := NewFixed(Min, Min)
	New(f).Range(2)
	assert.False(t, f.Exhausted())
	assert.Error(t, f.Err())
	assert.Equal(t, 1, f.Used())
}
