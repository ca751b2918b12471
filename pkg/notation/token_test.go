package notation

import (
	"errors"
	"testing"

	"github.com/behrlich/poker-equity/pkg/cards"
)

func TestParseToken_Kinds(t *testing.T) {
	tests := []struct {
		input     string
		wantKind  TokenKind
		wantShape HandShape
		wantPivot cards.Rank
		wantLow   cards.Rank
		wantHigh  cards.Rank
	}{
		{"88", ExactPair, Pair, 0, cards.Eight, cards.Eight},
		{"JJ+", PairRange, Pair, 0, cards.Jack, cards.Ace},
		{"AA+", PairRange, Pair, 0, cards.Ace, cards.Ace},
		{"AKs", ExactTwoCard, Suited, cards.Ace, cards.King, cards.King},
		{"AKo", ExactTwoCard, Offsuited, cards.Ace, cards.King, cards.King},
		{"KAs", ExactTwoCard, Suited, cards.Ace, cards.King, cards.King}, // normalized
		{"A5s+", SuitedRange, Suited, cards.Ace, cards.Five, cards.King},
		{"K9o+", OffsuitedRange, Offsuited, cards.King, cards.Nine, cards.Queen},
		{"AKs+", SuitedRange, Suited, cards.Ace, cards.King, cards.King},
		{"66-33", PairRange, Pair, 0, cards.Three, cards.Six},
		{"33-66", PairRange, Pair, 0, cards.Three, cards.Six},
		{"J5o-J3o", OffsuitedRange, Offsuited, cards.Jack, cards.Three, cards.Five},
		{"J3s-J5s", SuitedRange, Suited, cards.Jack, cards.Three, cards.Five},
		{" qq ", ExactPair, Pair, 0, cards.Queen, cards.Queen},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok, err := ParseToken(tt.input)
			if err != nil {
				t.Fatalf("ParseToken(%q) error = %v", tt.input, err)
			}
			if tok.Kind != tt.wantKind {
				t.Errorf("ParseToken(%q).Kind = %v, want %v", tt.input, tok.Kind, tt.wantKind)
			}
			if tok.Shape != tt.wantShape {
				t.Errorf("ParseToken(%q).Shape = %v, want %v", tt.input, tok.Shape, tt.wantShape)
			}
			if tok.Pivot != tt.wantPivot || tok.Low != tt.wantLow || tok.High != tt.wantHigh {
				t.Errorf("ParseToken(%q) = pivot %v [%v, %v], want pivot %v [%v, %v]",
					tt.input, tok.Pivot, tok.Low, tok.High, tt.wantPivot, tt.wantLow, tt.wantHigh)
			}
		})
	}
}

func TestParseToken_PinnedHand(t *testing.T) {
	tok, err := ParseToken("KhQc")
	if err != nil {
		t.Fatalf("ParseToken error = %v", err)
	}
	if tok.Kind != ExactTwoCard || tok.Shape != FixedPair {
		t.Fatalf("expected pinned exact two-card token, got %v/%v", tok.Kind, tok.Shape)
	}
	if got := tok.Hand.String(); got != "KhQc" {
		t.Errorf("pinned hand = %s, want KhQc", got)
	}
}

func TestParseToken_Errors(t *testing.T) {
	tests := []string{
		"",
		"A",
		"AK",       // ambiguous (need s or o)
		"XX",       // invalid ranks
		"AKx",      // invalid indicator
		"AAs",      // pair with indicator
		"AK+",      // open range without qualifier
		"5As+",     // kicker above pivot
		"AAs+",     // kicker equal to pivot
		"AhAh",     // pinned card repeated
		"AhKx",     // pinned card with bad suit
		"66-3",     // wrong length
		"66_33",    // missing dash
		"66-34",    // not a pair
		"AKs-AQo",  // mismatched suited/offsuit
		"AKs-KQs",  // first rank doesn't match
		"J5o+J3o",  // missing dash
		"AKs,AQs+", // commas belong to ParseRange
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := ParseToken(input)
			if !errors.Is(err, ErrMalformedRangeToken) {
				t.Errorf("ParseToken(%q) error = %v, want ErrMalformedRangeToken", input, err)
			}
		})
	}
}

func TestToken_String(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"88", "88"},
		{"JJ+", "JJ+"},
		{"33-66", "66-33"},
		{"KAs", "AKs"},
		{"A5s+", "A5s+"},
		{"J3o-J5o", "J5o-J3o"},
		{"KhQc", "KhQc"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok, err := ParseToken(tt.input)
			if err != nil {
				t.Fatalf("ParseToken(%q) error = %v", tt.input, err)
			}
			if got := tok.String(); got != tt.want {
				t.Errorf("Token.String() = %q, want %q", got, tt.want)
			}
			// The canonical form parses to the same token
			again, err := ParseToken(tok.String())
			if err != nil {
				t.Fatalf("ParseToken(%q) error = %v", tok.String(), err)
			}
			if again != tok {
				t.Errorf("canonical %q parsed to %+v, want %+v", tok.String(), again, tok)
			}
		})
	}
}
