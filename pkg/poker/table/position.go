package table

import "fmt"

// positionLabels maps player count to seat labels by offset from the dealer
var positionLabels = map[int][]string{
	2: {"BTN", "SB"},
	3: {"BTN", "SB", "BB"},
	4: {"BTN", "SB", "BB", "UTG"},
	5: {"BTN", "SB", "BB", "UTG", "CO"},
	6: {"BTN", "SB", "BB", "UTG", "HJ", "CO"},
}

// assignPositions labels every seat for the current hand based on its
// offset from the dealer button. Counts without a label table fall back
// to a generic seat label.
func (t *Table) assignPositions() {
	n := len(t.players)
	labels := positionLabels[n]

	for offset := 0; offset < n; offset++ {
		seat := (t.dealerIndex + offset) % n
		if labels != nil {
			t.players[seat].position = labels[offset]
		} else {
			t.players[seat].position = fmt.Sprintf("Seat %d", seat+1)
		}
	}
}
