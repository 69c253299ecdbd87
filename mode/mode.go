package mode

// Mode selects how receipts are minted
type Mode string

const (
	Demo Mode = "demo"
	Real Mode = "real"

	// Default is the mode a fresh page starts in
	Default = Real
)

// Toggle flips between demo and real
func (m Mode) Toggle() Mode {
	if m == Demo {
		return Real
	}
	return Demo
}

// IsDemo reports whether submissions are simulated
func (m Mode) IsDemo() bool {
	return m == Demo
}

// Label is the text shown on the mode switch
func (m Mode) Label() string {
	if m == Demo {
		return "Demo Mode"
	}
	return "Real Mode"
}
