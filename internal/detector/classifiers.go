package detector

import (
	"github.com/simplecastapps/go-device-detector/internal/detector/client"
	"github.com/simplecastapps/go-device-detector/internal/detector/device"
)

// IsMobile implements spec.md §4.8's compound mobile classifier: hint
// mobile wins outright; then type membership; then known mobile-only
// browsers; then, absent an OS, false; else the negation of IsDesktop.
func (d Detection) IsMobile() bool {
	k := d.Known
	if k == nil {
		return false
	}
	if k.Device != nil {
		if k.Device.MobileClientHint {
			return true
		}
		switch k.Device.DeviceType {
		case device.TypeFeaturePhone, device.TypeSmartPhone, device.TypeTablet,
			device.TypePhablet, device.TypeCamera, device.TypePortableMediaPlayer:
			return true
		case device.TypeTelevision, device.TypeSmartDisplay, device.TypeConsole:
			return false
		}
	}
	if k.Client != nil && device.UsesMobileBrowser(k.Client) {
		return true
	}
	if k.OS == nil {
		return false
	}
	return !d.IsDesktop()
}

// IsDesktop reports whether the resolved device is a desktop machine.
func (d Detection) IsDesktop() bool {
	return d.deviceTypeIs(device.TypeDesktop)
}

// IsTouchEnabled reports whether the UA signaled touch support.
func (d Detection) IsTouchEnabled() bool {
	if d.Known == nil || d.Known.Device == nil {
		return false
	}
	return d.Known.Device.TouchEnabled
}

func (d Detection) deviceTypeIs(t device.Type) bool {
	if d.Known == nil || d.Known.Device == nil {
		return false
	}
	return d.Known.Device.DeviceType == t
}

func (d Detection) clientTypeIs(t client.Type) bool {
	if d.Known == nil || d.Known.Client == nil {
		return false
	}
	return d.Known.Client.Type == t
}

func (d Detection) IsSmartPhone() bool          { return d.deviceTypeIs(device.TypeSmartPhone) }
func (d Detection) IsFeaturePhone() bool        { return d.deviceTypeIs(device.TypeFeaturePhone) }
func (d Detection) IsTablet() bool              { return d.deviceTypeIs(device.TypeTablet) }
func (d Detection) IsPhablet() bool             { return d.deviceTypeIs(device.TypePhablet) }
func (d Detection) IsConsole() bool             { return d.deviceTypeIs(device.TypeConsole) }
func (d Detection) IsCarBrowser() bool          { return d.deviceTypeIs(device.TypeCarBrowser) }
func (d Detection) IsCamera() bool              { return d.deviceTypeIs(device.TypeCamera) }
func (d Detection) IsPortableMediaPlayer() bool { return d.deviceTypeIs(device.TypePortableMediaPlayer) }
func (d Detection) IsNotebook() bool            { return d.deviceTypeIs(device.TypeNotebook) }
func (d Detection) IsTelevision() bool          { return d.deviceTypeIs(device.TypeTelevision) }
func (d Detection) IsSmartDisplay() bool        { return d.deviceTypeIs(device.TypeSmartDisplay) }
func (d Detection) IsSmartSpeaker() bool        { return d.deviceTypeIs(device.TypeSmartSpeaker) }
func (d Detection) IsWearable() bool            { return d.deviceTypeIs(device.TypeWearable) }
func (d Detection) IsPeripheral() bool          { return d.deviceTypeIs(device.TypePeripheral) }

func (d Detection) IsBrowser() bool     { return d.clientTypeIs(client.TypeBrowser) }
func (d Detection) IsFeedReader() bool  { return d.clientTypeIs(client.TypeFeedReader) }
func (d Detection) IsMobileApp() bool   { return d.clientTypeIs(client.TypeMobileApp) }
func (d Detection) IsMediaPlayer() bool { return d.clientTypeIs(client.TypeMediaPlayer) }
func (d Detection) IsPim() bool         { return d.clientTypeIs(client.TypePim) }
func (d Detection) IsLibrary() bool     { return d.clientTypeIs(client.TypeLibrary) }
