package playlist

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/desertthunder/moodmix/internal/models"
)

// NormalizeInput coerces an arbitrary value into a trimmed string, lowercased
// unless lower is false. Nil and unconvertible values degrade to "".
func NormalizeInput(value any, lower bool) string {
	if value == nil {
		return ""
	}

	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case fmt.Stringer:
		s = v.String()
	default:
		s = fmt.Sprint(v)
	}

	if lower {
		s = strings.ToLower(s)
	}
	return strings.TrimSpace(s)
}

// NormalizeSong produces the canonical form of a raw song record.
//
// Title (and ID) keep their original case; artist and genre are lowercased.
// Energy coerces to an int, defaulting to 0 when unparsable. A bare string
// tag wraps into a one-element slice. The function is idempotent: feeding a
// normalized song's Raw() projection back in yields the same song.
func NormalizeSong(raw models.RawSong) models.Song {
	return models.Song{
		ID:     NormalizeInput(raw["id"], false),
		Title:  NormalizeInput(raw["title"], false),
		Artist: NormalizeInput(raw["artist"], true),
		Genre:  NormalizeInput(raw["genre"], true),
		Energy: normalizeEnergy(raw["energy"]),
		Tags:   normalizeTags(raw["tags"]),
		Mood:   models.Mood(NormalizeInput(raw["mood"], false)),
	}
}

// normalizeEnergy coerces an energy value to an int. JSON decoding hands
// numbers over as float64 or json.Number, so both count as "already numeric";
// strings parse after trimming and anything else defaults to 0.
func normalizeEnergy(value any) int {
	switch v := value.(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float32:
		return int(v)
	case float64:
		return int(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
		if f, err := v.Float64(); err == nil {
			return int(f)
		}
		return 0
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
		return 0
	default:
		return 0
	}
}

// normalizeTags coerces a tags value to a string slice. A single string wraps
// into one element, mixed-type slices stringify element-wise, and anything
// else yields nil.
func normalizeTags(value any) []string {
	switch v := value.(type) {
	case string:
		return []string{v}
	case []string:
		if len(v) == 0 {
			return nil
		}
		tags := make([]string, len(v))
		copy(tags, v)
		return tags
	case []any:
		if len(v) == 0 {
			return nil
		}
		tags := make([]string, 0, len(v))
		for _, item := range v {
			tags = append(tags, NormalizeInput(item, false))
		}
		return tags
	default:
		return nil
	}
}
