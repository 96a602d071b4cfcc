package spotcatalog

import (
	"encoding/json"
	"os"

	"github.com/surfapp/recommender/internal/domain/recommend"
	apperrors "github.com/surfapp/recommender/pkg/errors"
)

// fileEntry mirrors one record of the shared surf_spots JSON document.
type fileEntry struct {
	Name          string `json:"name"`
	Region        string `json:"region"`
	BottomType    string `json:"bottomType"`
	Accessibility string `json:"accessibility"`
}

// LoadFile reads a spot metadata catalog from a JSON file. The document is
// an array of {name, region, bottomType, accessibility} records.
func LoadFile(path string) (*StaticCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCatalogError, "read spot catalog", err)
	}
	return parseCatalog(data)
}

func parseCatalog(data []byte) (*StaticCatalog, error) {
	var entries []fileEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCatalogError, "parse spot catalog", err)
	}
	catalog := make(map[string]recommend.SpotMetadata, len(entries))
	for _, e := range entries {
		if e.Name == "" {
			continue
		}
		catalog[e.Name] = recommend.SpotMetadata{
			BottomType:    parseBottom(e.BottomType),
			Accessibility: parseAccessibility(e.Accessibility),
			Region:        e.Region,
		}
	}
	return NewStaticCatalog(catalog), nil
}

func parseBottom(raw string) recommend.BottomType {
	switch raw {
	case string(recommend.BottomSand), string(recommend.BottomReef), string(recommend.BottomRock):
		return recommend.BottomType(raw)
	default:
		return recommend.BottomUnknown
	}
}

func parseAccessibility(raw string) recommend.Accessibility {
	switch raw {
	case string(recommend.AccessLow), string(recommend.AccessMedium), string(recommend.AccessHigh):
		return recommend.Accessibility(raw)
	default:
		return recommend.AccessMedium
	}
}
