package catalog

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/susu3304/geoguess/internal/geoscore"
)

func TestDefaultTable(t *testing.T) {
	c := Default()
	require.Equal(t, 15, c.Len())

	for _, l := range c.All() {
		assert.NotEmpty(t, l.DisplayName)
		assert.NotEmpty(t, l.Country)
		assert.NoError(t, l.Location.Validate("lat", "lng"), l.DisplayName)
	}
}

func TestPickReturnsOnlyTableMembersAndCoversAll(t *testing.T) {
	c := Default()
	members := make(map[Landmark]bool)
	for _, l := range c.All() {
		members[l] = true
	}

	seen := make(map[Landmark]int)
	for i := 0; i < 5000; i++ {
		l := c.Pick()
		require.True(t, members[l], "unexpected landmark %+v", l)
		seen[l]++
	}
	assert.Len(t, seen, 15)
}

func TestPickUsesSource(t *testing.T) {
	entries := []Landmark{
		{Location: geoscore.Point{Lat: 1, Lng: 1}, DisplayName: "a", Country: "A"},
		{Location: geoscore.Point{Lat: 2, Lng: 2}, DisplayName: "b", Country: "B"},
		{Location: geoscore.Point{Lat: 3, Lng: 3}, DisplayName: "c", Country: "C"},
	}
	var gotN int
	c := New(entries, func(n int) int {
		gotN = n
		return 2
	})

	assert.Equal(t, "c", c.Pick().DisplayName)
	assert.Equal(t, 3, gotN)
}

func TestMissingCountryDefaultsToUnknown(t *testing.T) {
	c := New([]Landmark{{Location: geoscore.Point{Lat: 1, Lng: 2}, DisplayName: "nowhere"}}, nil)
	assert.Equal(t, UnknownCountry, c.Pick().Country)
}

func TestNewCopiesEntries(t *testing.T) {
	entries := []Landmark{{DisplayName: "a", Country: "A"}}
	c := New(entries, nil)
	entries[0].DisplayName = "changed"

	all := c.All()
	all[0].Country = "changed"

	assert.Equal(t, "a", c.Pick().DisplayName)
	assert.Equal(t, "A", c.Pick().Country)
}

func TestNewPanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() { New(nil, nil) })
}

func TestPickConcurrent(t *testing.T) {
	c := Default()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				_ = c.Pick()
			}
		}()
	}
	wg.Wait()
}
