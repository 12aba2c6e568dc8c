package timeutil

import (
	"fmt"
	"sync"
	"time"

	// Embedded zone database for hosts and containers without /usr/share/zoneinfo.
	_ "time/tzdata"
)

// locationCache stores loaded locations keyed by IANA name.
var locationCache sync.Map

// GetLocation returns the location for an IANA timezone name, such as the
// "tz" field of an airport document. Results are cached.
func GetLocation(name string) (*time.Location, error) {
	if loc, ok := locationCache.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	locationCache.Store(name, loc)
	return loc, nil
}

// IsValidTimezone reports whether name is a loadable IANA timezone.
// The empty string and "Local" are rejected since they do not name a zone.
func IsValidTimezone(name string) bool {
	if name == "" || name == "Local" {
		return false
	}
	_, err := GetLocation(name)
	return err == nil
}

// ClearLocationCache clears the cached locations.
func ClearLocationCache() {
	locationCache.Range(func(key, _ any) bool {
		locationCache.Delete(key)
		return true
	})
}
