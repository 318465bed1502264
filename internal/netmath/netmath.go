// Package netmath provides exact IPv4 address and block arithmetic.
//
// Addresses are carried as unsigned 32-bit integers so block carving is
// plain integer math; conversion to and from dotted-quad form is
// bit-exact and fails loudly on malformed input.
package netmath

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// MalformedAddressError reports a dotted-quad string that cannot be
// parsed into four octets in [0,255].
type MalformedAddressError struct {
	Addr string
}

func (e *MalformedAddressError) Error() string {
	return fmt.Sprintf("malformed address %q: want four octets in [0,255]", e.Addr)
}

// AddrToInt converts a dotted-quad address to its unsigned 32-bit value.
func AddrToInt(addr string) (uint32, error) {
	parts := strings.Split(addr, ".")
	if len(parts) != 4 {
		return 0, &MalformedAddressError{Addr: addr}
	}

	var v uint32
	for _, part := range parts {
		octet, err := strconv.Atoi(part)
		if err != nil || octet < 0 || octet > 255 {
			return 0, &MalformedAddressError{Addr: addr}
		}
		v = v<<8 | uint32(octet)
	}
	return v, nil
}

// IntToAddr converts an unsigned 32-bit value to dotted-quad form.
// Every value in [0, 2^32-1] has a valid rendering.
func IntToAddr(v uint32) string {
	return fmt.Sprintf("%d.%d.%d.%d", v>>24, v>>16&0xff, v>>8&0xff, v&0xff)
}

// Block is an immutable IPv4 network: base address and prefix length.
type Block struct {
	base   uint32
	prefix int
}

// NewBlock constructs a block from a base address value and prefix length.
func NewBlock(base uint32, prefix int) Block {
	return Block{base: base, prefix: prefix}
}

// ParseBlock parses CIDR notation ("10.10.0.0/16") into a Block.
func ParseBlock(cidr string) (Block, error) {
	addr, prefixStr, ok := strings.Cut(cidr, "/")
	if !ok {
		return Block{}, fmt.Errorf("parsing block %q: missing prefix length", cidr)
	}

	base, err := AddrToInt(addr)
	if err != nil {
		return Block{}, err
	}

	prefix, err := strconv.Atoi(prefixStr)
	if err != nil || prefix < 0 || prefix > 32 {
		return Block{}, fmt.Errorf("parsing block %q: invalid prefix length %q", cidr, prefixStr)
	}

	return Block{base: base, prefix: prefix}, nil
}

// FromIPNet converts a parsed network into a Block.
func FromIPNet(n *net.IPNet) (Block, error) {
	ip4 := n.IP.To4()
	if ip4 == nil {
		return Block{}, fmt.Errorf("block %v: not an IPv4 network", n)
	}
	prefix, _ := n.Mask.Size()
	base := uint32(ip4[0])<<24 | uint32(ip4[1])<<16 | uint32(ip4[2])<<8 | uint32(ip4[3])
	return Block{base: base, prefix: prefix}, nil
}

// Base returns the block's base address value.
func (b Block) Base() uint32 { return b.base }

// Prefix returns the block's prefix length.
func (b Block) Prefix() int { return b.prefix }

// Size returns the number of addresses in the block.
func (b Block) Size() uint32 { return 1 << (32 - b.prefix) }

// end returns the exclusive end of the block. Widened to uint64 so a
// block touching 255.255.255.255 does not wrap to zero.
func (b Block) end() uint64 {
	return uint64(b.base) + uint64(b.Size())
}

// Contains reports whether other lies fully inside b.
func (b Block) Contains(other Block) bool {
	return other.base >= b.base && other.end() <= b.end()
}

// Overlaps reports whether the two blocks share any address.
func (b Block) Overlaps(other Block) bool {
	return uint64(b.base) < other.end() && uint64(other.base) < b.end()
}

// IPNet returns the block as a net.IPNet for go-cidr arithmetic.
func (b Block) IPNet() *net.IPNet {
	ip := net.IPv4(byte(b.base>>24), byte(b.base>>16), byte(b.base>>8), byte(b.base)).To4()
	return &net.IPNet{IP: ip, Mask: net.CIDRMask(b.prefix, 32)}
}

// String renders the block in CIDR notation.
func (b Block) String() string {
	return fmt.Sprintf("%s/%d", IntToAddr(b.base), b.prefix)
}
