package valueobjects

// DeviceClass identifies the kind of playback device requesting admission
type DeviceClass string

const (
	DeviceClassMobile  DeviceClass = "mobile"
	DeviceClassTablet  DeviceClass = "tablet"
	DeviceClassWeb     DeviceClass = "web"
	DeviceClassTV      DeviceClass = "tv"
	DeviceClassConsole DeviceClass = "console"
)

// IsValid checks if the device class is a known value
func (d DeviceClass) IsValid() bool {
	switch d {
	case DeviceClassMobile, DeviceClassTablet, DeviceClassWeb, DeviceClassTV, DeviceClassConsole:
		return true
	}
	return false
}

// String returns the string representation
func (d DeviceClass) String() string {
	return string(d)
}
