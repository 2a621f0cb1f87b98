package sports

import (
	"errors"
	"fmt"
	"strings"
)

// Sport identifies one supported league and its API root.
type Sport struct {
	Key     string
	Name    string
	BaseURL string

	aliases []string
}

// ErrUnknownSport is returned when a label matches no known league. Callers
// get an explicit failure instead of silently querying the wrong API.
var ErrUnknownSport = errors.New("unknown sport")

var (
	// NBA is the baseline sport; api.balldontlie.io serves it at the bare /v1 root.
	NBA = Sport{
		Key:     "nba",
		Name:    "NBA",
		BaseURL: "https://api.balldontlie.io/v1",
		aliases: []string{"nba", "basketball"},
	}
	NFL = Sport{
		Key:     "nfl",
		Name:    "NFL",
		BaseURL: "https://api.balldontlie.io/nfl/v1",
		aliases: []string{"nfl", "americanfootball", "football"},
	}
	MLB = Sport{
		Key:     "mlb",
		Name:    "MLB",
		BaseURL: "https://api.balldontlie.io/mlb/v1",
		aliases: []string{"mlb", "baseball"},
	}
)

// registry order is the match precedence for alias containment.
var registry = []Sport{NBA, NFL, MLB}

// All returns the supported sports in registry order.
func All() []Sport {
	out := make([]Sport, len(registry))
	copy(out, registry)
	return out
}

// Default returns the baseline sport for callers that explicitly want the
// legacy fallback behavior.
func Default() Sport {
	return NBA
}

// Resolve maps a free-text sport label (league code, odds-feed key like
// "americanfootball_nfl", or a short alias) to a Sport by case-insensitive
// token containment. Unknown labels return ErrUnknownSport.
func Resolve(label string) (Sport, error) {
	needle := strings.ToLower(strings.TrimSpace(label))
	if needle == "" {
		return Sport{}, fmt.Errorf("%w: empty label", ErrUnknownSport)
	}
	for _, sp := range registry {
		for _, alias := range sp.aliases {
			if strings.Contains(needle, alias) {
				return sp, nil
			}
		}
	}
	return Sport{}, fmt.Errorf("%w: %q", ErrUnknownSport, label)
}

// ByKey returns the sport with the exact key.
func ByKey(key string) (Sport, bool) {
	for _, sp := range registry {
		if sp.Key == key {
			return sp, true
		}
	}
	return Sport{}, false
}
