package fid

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/succinct/testutil"
)

func TestBuilder(t *testing.T) {
	b := NewBuilder(2)
	b.Append(true)
	b.Append(false)
	b.AppendRun(true, 3)
	b.AppendRun(false, 2)

	assert.Equal(t, uint64(7), b.Len())

	f := b.Build()
	assert.Equal(t, "1011100", f.String())
	assert.Equal(t, uint64(4), f.Ones())
	assert.Equal(t, uint64(3), f.Zeros())
}

func TestBuilder_ZeroValue(t *testing.T) {
	var b Builder
	assert.Equal(t, uint64(0), b.Build().Len())

	b.Append(false)
	b.Append(true)
	assert.Equal(t, "01", b.Build().String())
}

func TestBuilder_TrailingZerosBeyondCapacity(t *testing.T) {
	b := NewBuilder(0)
	b.Append(true)
	b.AppendRun(false, 200)

	f := b.Build()
	assert.Equal(t, uint64(201), f.Len())
	assert.Equal(t, uint64(200), f.Zeros())

	pos, ok := f.Select0(200)
	assert.True(t, ok)
	assert.Equal(t, uint64(200), pos)
}

func TestBuilder_SnapshotIndependence(t *testing.T) {
	b := NewBuilder(8)
	b.Append(true)
	first := b.Build()

	b.Append(true)
	second := b.Build()

	assert.Equal(t, "1", first.String())
	assert.Equal(t, "11", second.String())
}

func TestBuilder_MatchesParse(t *testing.T) {
	rng := testutil.NewRNG(42)
	s := rng.BitString(1500, 0.4)

	b := NewBuilder(0)
	for i := 0; i < len(s); i++ {
		b.Append(s[i] == '1')
	}

	got, want := b.Build(), MustParse(s)
	assert.Equal(t, want.String(), got.String())
	assert.Equal(t, want.Ones(), got.Ones())
	for _, i := range []uint64{0, 63, 64, 511, 512, 1499} {
		assert.Equal(t, want.Rank(i), got.Rank(i), "rank %d", i)
	}
}
