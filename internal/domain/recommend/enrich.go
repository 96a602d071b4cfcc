package recommend

// SpotCatalog is the read-only lookup from spot name to static metadata.
type SpotCatalog interface {
	Lookup(name string) (SpotMetadata, bool)
}

// enrichSpot merges static catalog attributes into a predictor record.
// A spot without a catalog entry gets neutral attributes rather than failing.
func enrichSpot(record SpotForecast, catalog SpotCatalog) Spot {
	spot := Spot{
		ID:     record.ID,
		Name:   record.Name,
		Region: record.Region,
		// Copied so the sanitizer never writes through the cached record.
		Coords:        append([]float64(nil), record.Coords...),
		BottomType:    BottomUnknown,
		Accessibility: AccessMedium,
	}

	if catalog == nil {
		return spot
	}
	meta, ok := catalog.Lookup(record.Name)
	if !ok {
		return spot
	}
	if meta.BottomType != "" {
		spot.BottomType = meta.BottomType
	}
	if meta.Accessibility != "" {
		spot.Accessibility = meta.Accessibility
	}
	if spot.Region == "" {
		spot.Region = meta.Region
	}
	return spot
}
