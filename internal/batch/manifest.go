package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Frame  int     `json:"frame"`
	Angle  float64 `json:"angle_deg"`
	Image  string  `json:"image"`
	Millis int64   `json:"millis"`
}

// WriteManifest writes manifest.json describing the rendered frames.
// Failed frames are omitted.
func WriteManifest(path string, results []Result) error {
	var entries []ManifestEntry
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			Frame:  r.Frame,
			Angle:  r.Angle,
			Image:  r.Image,
			Millis: r.Millis,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
