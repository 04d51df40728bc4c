package panel

// IconRef identifies an icon. The ui package maps it to a glyph.
type IconRef string

// BluetoothTitle is the option title that opens the Bluetooth detail panel.
const BluetoothTitle = "Bluetooth"

// PreviewLimit is the number of options shown inside the collapsed launcher.
const PreviewLimit = 4

// Option is a labeled icon entry the panel displays as a toggle.
// Titles need not be unique.
type Option struct {
	Icon  IconRef
	Title string
}

// IsBluetooth reports whether tapping o opens the Bluetooth detail panel.
func IsBluetooth(o Option) bool {
	return o.Title == BluetoothTitle
}

// Preview returns the options shown in the collapsed launcher: the first
// PreviewLimit entries, or all of them when the list is shorter.
func Preview(options []Option) []Option {
	n := min(len(options), PreviewLimit)
	return options[:n:n]
}
