// Package allocator partitions one /16 block into fixed tier/zone subnets.
//
// The carving is sequential and total-ordered: tiers in Web, App, Data
// order, zones by index within each tier. Every /16 input yields the
// same six /20 blocks occupying the first 24,576 addresses; the rest of
// the /16 is left untouched for later growth.
package allocator

import (
	"fmt"

	"github.com/apparentlymart/go-cidr/cidr"

	"github.com/lex00/vpcplan-aws-go/internal/netmath"
)

// Tier is a network segment with a distinct trust posture.
type Tier int

// Tiers in allocation order.
const (
	// Web is the internet-facing tier.
	Web Tier = iota
	// App is the egress-only private tier.
	App
	// Data is the fully isolated tier.
	Data
)

// Tiers lists all tiers in allocation order.
var Tiers = []Tier{Web, App, Data}

func (t Tier) String() string {
	switch t {
	case Web:
		return "Web"
	case App:
		return "App"
	case Data:
		return "Data"
	}
	return fmt.Sprintf("Tier(%d)", int(t))
}

// Public reports whether subnets in this tier are internet-facing.
func (t Tier) Public() bool { return t == Web }

const (
	// TierCount is fixed: the planner does not support variable layouts.
	TierCount = 3

	// ZoneCount is the number of placement zones used per tier.
	// Zones are opaque positional handles; the configured zone list is
	// truncated to exactly this many.
	ZoneCount = 2

	// TopLevelPrefix is the required prefix length of the input block.
	TopLevelPrefix = 16

	// SubnetPrefix is the prefix length of every carved subnet
	// (4096 addresses each).
	SubnetPrefix = 20
)

// InvalidTopLevelPrefixError reports an input block whose prefix length
// is not TopLevelPrefix.
type InvalidTopLevelPrefixError struct {
	Prefix int
}

func (e *InvalidTopLevelPrefixError) Error() string {
	return fmt.Sprintf("top-level block prefix must be /%d, got /%d", TopLevelPrefix, e.Prefix)
}

// Allocation maps (tier, zone index) to the carved block.
// Allocations are values: construct once via Allocate, never mutate.
type Allocation struct {
	top    netmath.Block
	blocks [TierCount][ZoneCount]netmath.Block
}

// Allocate carves the top-level block into TierCount×ZoneCount
// sequential /20 sub-blocks. Pure and deterministic; the only failure
// is a top-level prefix other than /16.
func Allocate(top netmath.Block) (Allocation, error) {
	if top.Prefix() != TopLevelPrefix {
		return Allocation{}, &InvalidTopLevelPrefixError{Prefix: top.Prefix()}
	}

	alloc := Allocation{top: top}
	parent := top.IPNet()

	for ti, tier := range Tiers {
		for zone := 0; zone < ZoneCount; zone++ {
			sub, err := cidr.Subnet(parent, SubnetPrefix-TopLevelPrefix, ti*ZoneCount+zone)
			if err != nil {
				return Allocation{}, fmt.Errorf("carving %s zone %d: %w", tier, zone, err)
			}
			block, err := netmath.FromIPNet(sub)
			if err != nil {
				return Allocation{}, fmt.Errorf("carving %s zone %d: %w", tier, zone, err)
			}
			alloc.blocks[ti][zone] = block
		}
	}

	return alloc, nil
}

// TopLevel returns the block the allocation was carved from.
func (a Allocation) TopLevel() netmath.Block { return a.top }

// Block returns the sub-block assigned to the given tier and zone index.
func (a Allocation) Block(t Tier, zone int) netmath.Block {
	return a.blocks[t][zone]
}

// Blocks returns all carved blocks in allocation order.
func (a Allocation) Blocks() []netmath.Block {
	out := make([]netmath.Block, 0, TierCount*ZoneCount)
	for _, tier := range Tiers {
		for zone := 0; zone < ZoneCount; zone++ {
			out = append(out, a.blocks[tier][zone])
		}
	}
	return out
}
