package devices

import (
	ua "github.com/mileusna/useragent"
)

// Classification is the best-effort breakdown of a User-Agent header. It is
// descriptive metadata only, never a security control.
type Classification struct {
	Device  string // "desktop", "mobile" or "tablet"
	Browser string // "<name> <version>"
	OS      string // "<name> <version>"
}

// Classify parses a raw User-Agent string. Classic desktop browsers carry no
// explicit device type, so "desktop" is the fallback; unknown name or version
// parts come back as "undefined".
func Classify(userAgent string) Classification {
	agent := ua.Parse(userAgent)

	device := "desktop"
	switch {
	case agent.Tablet:
		device = "tablet"
	case agent.Mobile:
		device = "mobile"
	}

	return Classification{
		Device:  device,
		Browser: nameVersion(agent.Name, agent.Version),
		OS:      nameVersion(agent.OS, agent.OSVersion),
	}
}

func nameVersion(name, version string) string {
	if name == "" {
		name = "undefined"
	}
	if version == "" {
		version = "undefined"
	}
	return name + " " + version
}
