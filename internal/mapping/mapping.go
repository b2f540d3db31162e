package mapping

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
)

// LoadEventTypes reads the event type mapping from a CSV file with Code and
// Event columns. A missing or malformed file is not fatal: the loader logs a
// warning and returns an empty map, leaving every type named by its id
// downstream.
func LoadEventTypes(path string, log *zap.Logger) map[int]string {
	if log == nil {
		log = zap.NewNop()
	}
	out := make(map[int]string)

	f, err := os.Open(path)
	if err != nil {
		log.Warn("event mapping unavailable, type names will fall back to ids",
			zap.String("path", path), zap.Error(err))
		return out
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		log.Warn("event mapping unreadable", zap.String("path", path), zap.Error(err))
		return out
	}

	codeIdx, nameIdx := 0, 1
	start := 0
	if len(rows) > 0 {
		for i, h := range rows[0] {
			switch strings.TrimSpace(strings.ToLower(h)) {
			case "code":
				codeIdx, start = i, 1
			case "event":
				nameIdx, start = i, 1
			}
		}
	}

	for _, row := range rows[start:] {
		if len(row) <= codeIdx || len(row) <= nameIdx {
			continue
		}
		code, err := strconv.Atoi(strings.TrimSpace(row[codeIdx]))
		if err != nil {
			log.Debug("skipping event mapping row with non-numeric code",
				zap.String("code", row[codeIdx]))
			continue
		}
		out[code] = strings.TrimSpace(row[nameIdx])
	}
	return out
}

// LoadQualifiers reads the qualifier mapping from a JSON file keyed by
// qualifier id. Values are either a bare name string or an object with a
// "name" field. Soft-fails to an empty map like LoadEventTypes.
func LoadQualifiers(path string, log *zap.Logger) map[int64]string {
	if log == nil {
		log = zap.NewNop()
	}
	out := make(map[int64]string)

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Warn("qualifier mapping unavailable, qualifiers will use generic names",
			zap.String("path", path), zap.Error(err))
		return out
	}

	var entries map[string]any
	if err := sonic.Unmarshal(raw, &entries); err != nil {
		log.Warn("qualifier mapping unreadable", zap.String("path", path), zap.Error(err))
		return out
	}

	for key, val := range entries {
		id, err := strconv.ParseInt(strings.TrimSpace(key), 10, 64)
		if err != nil {
			log.Debug("skipping qualifier mapping entry with non-numeric id",
				zap.String("id", key))
			continue
		}
		switch v := val.(type) {
		case string:
			out[id] = v
		case map[string]any:
			if name, ok := v["name"].(string); ok {
				out[id] = name
			} else {
				log.Debug("qualifier mapping entry missing name", zap.Int64("id", id))
			}
		default:
			log.Debug("qualifier mapping entry has unexpected shape", zap.Int64("id", id))
		}
	}
	return out
}
