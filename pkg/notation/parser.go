package notation

import (
	"strings"

	errorsmod "cosmossdk.io/errors"

	"github.com/behrlich/poker-equity/pkg/cards"
)

// ParseMatchup parses a matchup string into ranges, board and dead cards.
// Format: <range>/<range>/...[|<board>[|<dead>]]
// Example: "JJ+,AKs/KhQc|Kh9s4c"
// Example with dead cards: "AA/KK/QQ|Kh9s4c7d|2c3c"
func ParseMatchup(s string) (*Matchup, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errorsmod.Wrap(ErrMalformedMatchup, "empty matchup string")
	}

	parts := strings.Split(s, "|")
	if len(parts) > 3 {
		return nil, errorsmod.Wrapf(ErrMalformedMatchup, "expected at most 3 sections separated by |, got %d", len(parts))
	}

	ranges, err := parsePlayers(parts[0])
	if err != nil {
		return nil, err
	}

	m := &Matchup{Ranges: ranges}
	if len(parts) > 1 {
		if m.Board, err = parseCardSection("board", parts[1]); err != nil {
			return nil, err
		}
	}
	if len(parts) > 2 {
		if m.Dead, err = parseCardSection("dead", parts[2]); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// parsePlayers parses the players section: "RANGE/RANGE/..."
func parsePlayers(playersStr string) ([]RangeSpec, error) {
	playersStr = strings.TrimSpace(playersStr)
	if playersStr == "" {
		return nil, errorsmod.Wrap(ErrMalformedMatchup, "empty players section")
	}

	playerParts := strings.Split(playersStr, "/")
	ranges := make([]RangeSpec, 0, len(playerParts))
	for i, p := range playerParts {
		spec, err := ParseRange(p)
		if err != nil {
			return nil, errorsmod.Wrapf(err, "player %d", i)
		}
		ranges = append(ranges, spec)
	}
	return ranges, nil
}

func parseCardSection(name, section string) ([]cards.Card, error) {
	cs, err := cards.ParseCards(strings.TrimSpace(section))
	if err != nil {
		return nil, errorsmod.Wrapf(err, "%s section", name)
	}
	return cs, nil
}

// String formats the matchup back into matchup notation
func (m *Matchup) String() string {
	players := make([]string, len(m.Ranges))
	for i, r := range m.Ranges {
		players[i] = strings.Join(r, ",")
	}
	out := strings.Join(players, "/")
	if len(m.Board) > 0 || len(m.Dead) > 0 {
		out += "|" + cards.FormatCards(m.Board)
	}
	if len(m.Dead) > 0 {
		out += "|" + cards.FormatCards(m.Dead)
	}
	return out
}
