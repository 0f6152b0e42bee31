package detector

import (
	"github.com/simplecastapps/go-device-detector/internal/detector/bot"
	"github.com/simplecastapps/go-device-detector/internal/detector/client"
	"github.com/simplecastapps/go-device-detector/internal/detector/device"
	"github.com/simplecastapps/go-device-detector/internal/detector/osresolve"
)

// KnownDevice is the non-bot detection result: a request identified as
// coming from a recognizable client, running on a recognizable
// operating system, on a recognizable physical device. Any of the three
// sub-records may be absent.
type KnownDevice struct {
	Client *client.Client
	OS     *osresolve.OS
	Device *device.Device
}

// Detection is the outcome of Detect: either Bot or Known, never both
// (spec.md §8 Disjointness). Go has no enum-with-payload, so this is
// modeled as a struct with two optional fields instead of a closed sum
// type.
type Detection struct {
	Bot   *bot.Bot
	Known *KnownDevice
}

// IsBot reports whether the request was classified as an automated
// client.
func (d Detection) IsBot() bool { return d.Bot != nil }
