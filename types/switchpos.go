package types

import "fmt"

// Pin is a microcontroller pin number.
type Pin uint8

// SwitchPos identifies a physical switch by the row and column pins that
// connect to it.
type SwitchPos struct {
	Row    Pin
	Column Pin
}

func (p SwitchPos) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Column)
}

// KmapFormat describes the visual shape of a kmap file: one entry per body
// line, listing the switches that line covers from left to right.
type KmapFormat [][]SwitchPos

// NumLines is the number of body lines in each kmap block.
func (f KmapFormat) NumLines() int {
	return len(f)
}

// ItemsPerLine returns the number of switches on each body line.
func (f KmapFormat) ItemsPerLine() []int {
	out := make([]int, len(f))
	for i, line := range f {
		out[i] = len(line)
	}
	return out
}

// NumSwitches is the total number of switches listed in the format.
func (f KmapFormat) NumSwitches() int {
	n := 0
	for _, line := range f {
		n += len(line)
	}
	return n
}

// FlatOrder lists every switch in kmap order: line by line, left to right.
func (f KmapFormat) FlatOrder() []SwitchPos {
	order := make([]SwitchPos, 0, f.NumSwitches())
	for _, line := range f {
		order = append(order, line...)
	}
	return order
}

// FirmwareOrder lists every switch in the order the firmware's matrix scan
// visits them. This must match scanMatrix(): columns outside, rows inside.
func FirmwareOrder(rowPins, columnPins []Pin) []SwitchPos {
	order := make([]SwitchPos, 0, len(rowPins)*len(columnPins))
	for _, c := range columnPins {
		for _, r := range rowPins {
			order = append(order, SwitchPos{Row: r, Column: c})
		}
	}
	return order
}
