package util

import (
	"net"
	"sync"
	"time"

	"github.com/oschwald/geoip2-golang"
	cache "github.com/patrickmn/go-cache"
)

var (
	geoipMu    sync.RWMutex
	geoipDB    *geoip2.Reader
	geoipCache *cache.Cache
)

type ipLocation struct {
	City    string
	Country string
}

// InitGeoIP opens a GeoIP2/GeoLite2 .mmdb file and prepares the lookup cache.
// An empty path is a no-op: lookups then return empty locations and event
// rows simply carry no location annotation.
func InitGeoIP(dbPath string) error {
	if dbPath == "" {
		return nil
	}
	reader, err := geoip2.Open(dbPath)
	if err != nil {
		return err
	}

	geoipMu.Lock()
	defer geoipMu.Unlock()
	geoipDB = reader
	geoipCache = cache.New(6*time.Hour, 30*time.Minute)
	return nil
}

// CloseGeoIP releases the mmdb reader. Safe to call when never initialized.
func CloseGeoIP() {
	geoipMu.Lock()
	defer geoipMu.Unlock()
	if geoipDB != nil {
		geoipDB.Close()
		geoipDB = nil
	}
	geoipCache = nil
}

// GetIPLocation resolves an IP to (city, country) using the local database.
// Results are cached per IP; unknown, private or unparseable addresses
// resolve to empty strings.
func GetIPLocation(ip string) (string, string) {
	geoipMu.RLock()
	reader := geoipDB
	c := geoipCache
	geoipMu.RUnlock()

	if reader == nil || ip == "" {
		return "", ""
	}

	if cached, ok := c.Get(ip); ok {
		loc := cached.(ipLocation)
		return loc.City, loc.Country
	}

	parsed := net.ParseIP(ip)
	if parsed == nil || parsed.IsPrivate() || parsed.IsLoopback() {
		return "", ""
	}

	record, err := reader.City(parsed)
	if err != nil {
		return "", ""
	}

	loc := ipLocation{
		City:    record.City.Names["en"],
		Country: record.Country.Names["en"],
	}
	c.Set(ip, loc, cache.DefaultExpiration)
	return loc.City, loc.Country
}
