package travel

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// snapshotRow is the JSON-serializable form of a cache entry; cacheKey's
// fixed-size arrays don't marshal as map keys directly, so the snapshot
// is a flat slice instead of a map.
type snapshotRow struct {
	ALat    float64 `json:"a_lat"`
	ALon    float64 `json:"a_lon"`
	BLat    float64 `json:"b_lat"`
	BLon    float64 `json:"b_lon"`
	Minutes float64 `json:"minutes"`
}

type snapshotFile struct {
	Rows []snapshotRow `json:"rows"`
}

// saveSnapshot atomically writes the cache's live positive entries to
// path via a temp-file-then-rename, so a crash mid-write never leaves a
// truncated cache file behind.
func saveSnapshot(path string, entries map[cacheKey]float64) error {
	rows := make([]snapshotRow, 0, len(entries))
	for key, minutes := range entries {
		rows = append(rows, snapshotRow{
			ALat: key.a[0], ALon: key.a[1],
			BLat: key.b[0], BLon: key.b[1],
			Minutes: minutes,
		})
	}

	data, err := json.Marshal(snapshotFile{Rows: rows})
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".travel-snapshot-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, path)
}

// loadSnapshot reads a previously-saved cache file. A missing file is
// not an error: it just means there is nothing to preload.
func loadSnapshot(path string) (map[cacheKey]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[cacheKey]float64{}, nil
		}
		return nil, err
	}

	var parsed snapshotFile
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, err
	}

	out := make(map[cacheKey]float64, len(parsed.Rows))
	for _, row := range parsed.Rows {
		out[cacheKey{a: [2]float64{row.ALat, row.ALon}, b: [2]float64{row.BLat, row.BLon}}] = row.Minutes
	}

	return out, nil
}
