package iro

// HueSlot is the canonical hue bucket a color is assigned to.
type HueSlot int

const (
	SlotRed HueSlot = iota
	SlotYellow
	SlotGreen
	SlotCyan
	SlotBlue
	SlotMagenta
	SlotNeutral // achromatic and leftover colors
)

// ChromaticSlots lists the six hue slots in canonical hue-angle order.
var ChromaticSlots = [6]HueSlot{SlotRed, SlotYellow, SlotGreen, SlotCyan, SlotBlue, SlotMagenta}

// Angle returns the slot's canonical hue angle in degrees. Neutral has none
// and returns -1.
func (s HueSlot) Angle() float64 {
	switch s {
	case SlotRed:
		return 0
	case SlotYellow:
		return 60
	case SlotGreen:
		return 120
	case SlotCyan:
		return 180
	case SlotBlue:
		return 240
	case SlotMagenta:
		return 300
	default:
		return -1
	}
}

// ANSIIndex returns the normal-intensity terminal index (1-6) for a chromatic
// slot, or -1 for Neutral.
func (s HueSlot) ANSIIndex() int {
	switch s {
	case SlotRed:
		return 1
	case SlotGreen:
		return 2
	case SlotYellow:
		return 3
	case SlotBlue:
		return 4
	case SlotMagenta:
		return 5
	case SlotCyan:
		return 6
	default:
		return -1
	}
}

func (s HueSlot) String() string {
	switch s {
	case SlotRed:
		return "red"
	case SlotYellow:
		return "yellow"
	case SlotGreen:
		return "green"
	case SlotCyan:
		return "cyan"
	case SlotBlue:
		return "blue"
	case SlotMagenta:
		return "magenta"
	case SlotNeutral:
		return "neutral"
	default:
		return "unknown"
	}
}
