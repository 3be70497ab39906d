// Package potmanager splits a hand's total commitments into an ordered list
// of pots. Players all-in for different amounts create side pots; a player
// can only win a layer they fully contributed to, and folded players leave
// their chips behind without being eligible for anything.
package potmanager

import "sort"

// Contributor exposes what side-pot construction needs from a seated player
type Contributor interface {
	TotalCommitted() int
	HasFolded() bool
}

// Pot is one layer of the pot: an amount and the players who may win it
type Pot struct {
	Amount   int
	Eligible []Contributor
}

// Pots is an ordered collection of pots, main pot first
type Pots []*Pot

// Total returns the combined total of all pots
func (p Pots) Total() int {
	total := 0
	for _, pot := range p {
		total += pot.Amount
	}

	return total
}

// Build constructs the layered pots from each contributor's total
// commitment this hand. Each distinct positive commitment level caps one
// layer; everyone whose commitment reaches the level funds the layer, and
// only non-folded players at or above the level can win it. The layers
// cover the sum of all commitments exactly.
func Build(contributors []Contributor) Pots {
	seen := make(map[int]bool)
	levels := make([]int, 0, len(contributors))
	for _, c := range contributors {
		committed := c.TotalCommitted()
		if committed > 0 && !seen[committed] {
			seen[committed] = true
			levels = append(levels, committed)
		}
	}

	sort.Ints(levels)

	pots := make(Pots, 0, len(levels))
	prev := 0
	for _, level := range levels {
		pot := &Pot{}
		for _, c := range contributors {
			committed := c.TotalCommitted()
			if committed > level {
				committed = level
			}

			if committed > prev {
				pot.Amount += committed - prev
			}

			if !c.HasFolded() && c.TotalCommitted() >= level {
				pot.Eligible = append(pot.Eligible, c)
			}
		}

		pots = append(pots, pot)
		prev = level
	}

	return pots
}
