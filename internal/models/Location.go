package models

import (
	"gorm.io/gorm"
)

// Geo holds the IP-derived metadata attached to a location record. All
// fields stay at their zero values when the lookup was skipped or failed.
type Geo struct {
	Country string   `json:"country"`
	Region  string   `json:"region"`
	City    string   `json:"city"`
	Lat     *float64 `json:"lat"`
	Lon     *float64 `json:"lon"`
	Isp     string   `json:"isp"`
}

// Location is a single submitted geolocation fix. Records are insert-only:
// nothing in the service updates or deletes them after creation.
type Location struct {
	gorm.Model
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`               // GPS accuracy in meters
	Timestamp int64   `json:"timestamp" gorm:"index"` // client clock, epoch milliseconds
	IPAddress string  `json:"ipAddress"`
	UserAgent string  `json:"userAgent"`
	Device    string  `json:"device"`  // "desktop", "mobile", "tablet"
	Browser   string  `json:"browser"` // "<name> <version>"
	OS        string  `json:"os"`      // "<name> <version>"
	Geo       Geo     `json:"geo" gorm:"embedded;embeddedPrefix:geo_"`
	GmapsLink string  `json:"gmapsLink"`
}
