package controllers

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"gps_tracker/internal/devices"
	"gps_tracker/internal/geoip"
	"gps_tracker/internal/models"
)

const geoLookupTimeout = 5 * time.Second

// submitLocationInput defines the expected JSON for a location submission.
// Pointers distinguish an absent field from a legitimate zero value
// (latitude 0 is on the equator, not missing).
type submitLocationInput struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Accuracy  *float64 `json:"accuracy"`
	Timestamp *int64   `json:"timestamp"`
}

// LocationController handles location submission and listing. The DB handle
// and geo client are injected once at startup.
type LocationController struct {
	DB  *gorm.DB
	Geo *geoip.Client
}

func NewLocationController(db *gorm.DB, geo *geoip.Client) *LocationController {
	return &LocationController{DB: db, Geo: geo}
}

// SubmitLocation ingests one geolocation fix: validate, derive client IP,
// classify the User-Agent, enrich with IP geolocation, persist, and answer
// with a shareable map link.
func (lc *LocationController) SubmitLocation(c *gin.Context) {
	// 1) Validate at the boundary, before any outbound call or write.
	var input submitLocationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if input.Latitude == nil || input.Longitude == nil || input.Accuracy == nil || input.Timestamp == nil {
		logrus.Warn("Submission rejected: missing required fields")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	// 2) Ambient request metadata.
	ipAddress := clientIP(c.Request)
	userAgent := c.Request.UserAgent()
	class := devices.Classify(userAgent)

	// 3) Best-effort enrichment. A failed or skipped lookup leaves the
	// zero-valued Geo in place and never aborts the submission.
	var geo models.Geo
	if geoip.Lookupable(ipAddress) {
		// Bounded by its own context: a client disconnect must not
		// cancel the pipeline once a valid fix has been accepted.
		ctx, cancel := context.WithTimeout(context.Background(), geoLookupTimeout)
		defer cancel()

		if result, err := lc.Geo.Lookup(ctx, ipAddress); err != nil {
			logrus.WithError(err).WithField("ip", ipAddress).Warn("Geo-IP lookup failed")
		} else {
			geo = models.Geo{
				Country: result.Country,
				Region:  result.RegionName,
				City:    result.City,
				Lat:     &result.Lat,
				Lon:     &result.Lon,
				Isp:     result.Isp,
			}
		}
	}

	link := gmapsLink(*input.Latitude, *input.Longitude)

	location := models.Location{
		Latitude:  *input.Latitude,
		Longitude: *input.Longitude,
		Accuracy:  *input.Accuracy,
		Timestamp: *input.Timestamp,
		IPAddress: ipAddress,
		UserAgent: userAgent,
		Device:    class.Device,
		Browser:   class.Browser,
		OS:        class.OS,
		Geo:       geo,
		GmapsLink: link,
	}

	logrus.WithFields(logrus.Fields{
		"latitude":  location.Latitude,
		"longitude": location.Longitude,
		"accuracy":  location.Accuracy,
		"timestamp": location.Timestamp,
		"ip":        ipAddress,
		"device":    class.Device,
		"browser":   class.Browser,
		"os":        class.OS,
	}).Info("Received location submission")

	if err := lc.DB.Create(&location).Error; err != nil {
		logrus.WithError(err).Error("Failed to save location")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Location saved",
		"gmapsLink": link,
	})
}

// ListLocations returns every stored record, most recent client timestamp
// first.
func (lc *LocationController) ListLocations(c *gin.Context) {
	locations := make([]models.Location, 0)
	if err := lc.DB.Order("timestamp desc").Find(&locations).Error; err != nil {
		logrus.WithError(err).Error("Failed to list locations")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, locations)
}

// clientIP derives the submitting client's address: first hop of
// X-Forwarded-For when present, otherwise the connection's remote address.
// IPv4-mapped IPv6 notation is normalized so addresses compare and look up
// consistently.
func clientIP(r *http.Request) string {
	ip := r.Header.Get("X-Forwarded-For")
	if ip == "" {
		ip = r.RemoteAddr
		if host, _, err := net.SplitHostPort(ip); err == nil {
			ip = host
		}
	}
	if i := strings.Index(ip, ","); i >= 0 {
		ip = ip[:i]
	}
	ip = strings.TrimSpace(ip)
	return strings.TrimPrefix(ip, "::ffff:")
}

func gmapsLink(latitude, longitude float64) string {
	return "https://www.google.com/maps?q=" +
		strconv.FormatFloat(latitude, 'f', -1, 64) + "," +
		strconv.FormatFloat(longitude, 'f', -1, 64)
}
