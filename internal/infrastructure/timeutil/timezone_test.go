package timeutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLocation(t *testing.T) {
	ClearLocationCache()

	loc, err := GetLocation("Europe/Paris")
	require.NoError(t, err)
	assert.Equal(t, "Europe/Paris", loc.String())

	cached, err := GetLocation("Europe/Paris")
	require.NoError(t, err)
	assert.Same(t, loc, cached)
}

func TestGetLocation_Invalid(t *testing.T) {
	ClearLocationCache()

	loc, err := GetLocation("Invalid/Timezone")
	assert.Nil(t, loc)
	assert.ErrorContains(t, err, "failed to load timezone")
}

func TestGetLocation_ConcurrentAccess(t *testing.T) {
	ClearLocationCache()

	zones := []string{"UTC", "America/Los_Angeles", "Europe/London", "Asia/Tokyo"}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		for _, tz := range zones {
			wg.Add(1)
			go func(name string) {
				defer wg.Done()
				loc, err := GetLocation(name)
				assert.NoError(t, err)
				assert.NotNil(t, loc)
			}(tz)
		}
	}
	wg.Wait()
}

func TestIsValidTimezone(t *testing.T) {
	tests := []struct {
		name string
		tz   string
		want bool
	}{
		{"region zone", "America/Anchorage", true},
		{"utc", "UTC", true},
		{"empty", "", false},
		{"local", "Local", false},
		{"unknown", "Mars/Olympus_Mons", false},
		{"garbage", "not a zone", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidTimezone(tt.tz))
		})
	}
}

func TestClearLocationCache(t *testing.T) {
	first, err := GetLocation("Europe/Berlin")
	require.NoError(t, err)
	ClearLocationCache()

	_, ok := locationCache.Load("Europe/Berlin")
	assert.False(t, ok)

	second, err := GetLocation("Europe/Berlin")
	require.NoError(t, err)
	assert.Equal(t, first.String(), second.String())
}
