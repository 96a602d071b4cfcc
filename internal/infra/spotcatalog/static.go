// Package spotcatalog provides the read-only lookup from spot name to static
// per-spot metadata.
package spotcatalog

import (
	"strings"

	"github.com/surfapp/recommender/internal/domain/recommend"
)

// StaticCatalog serves metadata from an in-memory map.
type StaticCatalog struct {
	entries map[string]recommend.SpotMetadata
}

// NewStaticCatalog normalizes names so lookups are case-insensitive.
func NewStaticCatalog(entries map[string]recommend.SpotMetadata) *StaticCatalog {
	normalized := make(map[string]recommend.SpotMetadata, len(entries))
	for name, meta := range entries {
		normalized[normalizeName(name)] = meta
	}
	return &StaticCatalog{entries: normalized}
}

// Lookup implements recommend.SpotCatalog.
func (c *StaticCatalog) Lookup(name string) (recommend.SpotMetadata, bool) {
	meta, ok := c.entries[normalizeName(name)]
	return meta, ok
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Builtin returns the default Sri Lankan spot set so the service runs with
// no external catalog configured.
func Builtin() *StaticCatalog {
	return NewStaticCatalog(map[string]recommend.SpotMetadata{
		"Weligama":       {BottomType: recommend.BottomSand, Accessibility: recommend.AccessHigh, Region: "South Coast"},
		"Mirissa":        {BottomType: recommend.BottomReef, Accessibility: recommend.AccessHigh, Region: "South Coast"},
		"Midigama":       {BottomType: recommend.BottomReef, Accessibility: recommend.AccessMedium, Region: "South Coast"},
		"Hikkaduwa":      {BottomType: recommend.BottomReef, Accessibility: recommend.AccessHigh, Region: "West Coast"},
		"Arugam Bay":     {BottomType: recommend.BottomSand, Accessibility: recommend.AccessHigh, Region: "East Coast"},
		"Pottuvil Point": {BottomType: recommend.BottomRock, Accessibility: recommend.AccessLow, Region: "East Coast"},
		"Okanda":         {BottomType: recommend.BottomSand, Accessibility: recommend.AccessLow, Region: "East Coast"},
		"Peanut Farm":    {BottomType: recommend.BottomSand, Accessibility: recommend.AccessMedium, Region: "East Coast"},
		"Whiskey Point":  {BottomType: recommend.BottomSand, Accessibility: recommend.AccessMedium, Region: "East Coast"},
		"Unawatuna":      {BottomType: recommend.BottomSand, Accessibility: recommend.AccessHigh, Region: "South Coast"},
	})
}

var _ recommend.SpotCatalog = (*StaticCatalog)(nil)
