package netmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddrToInt(t *testing.T) {
	tests := []struct {
		addr string
		want uint32
	}{
		{"0.0.0.0", 0},
		{"10.10.0.0", 0x0a0a0000},
		{"10.10.16.0", 0x0a0a1000},
		{"192.168.1.1", 0xc0a80101},
		{"255.255.255.255", 0xffffffff},
	}

	for _, tt := range tests {
		got, err := AddrToInt(tt.addr)
		require.NoError(t, err, tt.addr)
		assert.Equal(t, tt.want, got, tt.addr)
	}
}

func TestAddrToInt_Malformed(t *testing.T) {
	bad := []string{
		"",
		"10.10.0",
		"10.10.0.0.0",
		"10.10.0.256",
		"10.10.0.-1",
		"10.10.0.x",
		"10..0.0",
	}

	for _, addr := range bad {
		_, err := AddrToInt(addr)
		var merr *MalformedAddressError
		require.ErrorAs(t, err, &merr, addr)
		assert.Equal(t, addr, merr.Addr)
	}
}

func TestIntToAddr_RoundTrip(t *testing.T) {
	addrs := []string{
		"0.0.0.0",
		"10.10.0.0",
		"10.10.80.0",
		"172.16.254.1",
		"255.255.255.255",
	}

	for _, addr := range addrs {
		v, err := AddrToInt(addr)
		require.NoError(t, err)
		assert.Equal(t, addr, IntToAddr(v))
	}
}

func TestParseBlock(t *testing.T) {
	b, err := ParseBlock("10.10.0.0/16")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x0a0a0000), b.Base())
	assert.Equal(t, 16, b.Prefix())
	assert.Equal(t, uint32(65536), b.Size())
	assert.Equal(t, "10.10.0.0/16", b.String())
}

func TestParseBlock_Invalid(t *testing.T) {
	_, err := ParseBlock("10.10.0.0")
	assert.Error(t, err)

	_, err = ParseBlock("10.10.0.0/33")
	assert.Error(t, err)

	_, err = ParseBlock("10.10.0.300/16")
	var merr *MalformedAddressError
	assert.ErrorAs(t, err, &merr)
}

func TestBlock_Contains(t *testing.T) {
	top, err := ParseBlock("10.10.0.0/16")
	require.NoError(t, err)
	sub, err := ParseBlock("10.10.80.0/20")
	require.NoError(t, err)
	outside, err := ParseBlock("10.11.0.0/20")
	require.NoError(t, err)

	assert.True(t, top.Contains(sub))
	assert.False(t, top.Contains(outside))
	assert.False(t, sub.Contains(top))
}

func TestBlock_Overlaps(t *testing.T) {
	a, _ := ParseBlock("10.10.0.0/20")
	b, _ := ParseBlock("10.10.16.0/20")
	assert.False(t, a.Overlaps(b))
	assert.True(t, a.Overlaps(a))

	top, _ := ParseBlock("10.10.0.0/16")
	assert.True(t, top.Overlaps(a))
}

func TestBlock_ContainsOverlaps_AddressSpaceCeiling(t *testing.T) {
	// Blocks ending at 255.255.255.255 must not wrap the exclusive
	// end back to zero.
	top, err := ParseBlock("255.255.0.0/16")
	require.NoError(t, err)
	first, err := ParseBlock("255.255.0.0/20")
	require.NoError(t, err)
	last, err := ParseBlock("255.255.240.0/20")
	require.NoError(t, err)

	assert.True(t, top.Contains(first))
	assert.True(t, top.Contains(last))
	assert.True(t, top.Overlaps(first))
	assert.True(t, top.Overlaps(last))
	assert.True(t, last.Overlaps(top))
	assert.False(t, last.Contains(top))

	below, err := ParseBlock("255.254.240.0/20")
	require.NoError(t, err)
	assert.False(t, top.Contains(below))
	assert.False(t, top.Overlaps(below))
}

func TestBlock_IPNet(t *testing.T) {
	b, err := ParseBlock("10.10.16.0/20")
	require.NoError(t, err)

	n := b.IPNet()
	assert.Equal(t, "10.10.16.0/20", n.String())

	back, err := FromIPNet(n)
	require.NoError(t, err)
	assert.Equal(t, b, back)
}
