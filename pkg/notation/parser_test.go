package notation

import (
	"errors"
	"testing"

	"github.com/behrlich/poker-equity/pkg/cards"
)

func TestParseMatchup_RangesOnly(t *testing.T) {
	m, err := ParseMatchup("AA,KK/QQ-JJ,AKs")
	if err != nil {
		t.Fatalf("ParseMatchup failed: %v", err)
	}

	if len(m.Ranges) != 2 {
		t.Fatalf("expected 2 players, got %d", len(m.Ranges))
	}
	if got := len(m.Ranges[0]); got != 2 {
		t.Errorf("expected 2 tokens for player 0, got %d", got)
	}
	if got := len(m.Ranges[1]); got != 2 {
		t.Errorf("expected 2 tokens for player 1, got %d", got)
	}
	if len(m.Board) != 0 || len(m.Dead) != 0 {
		t.Errorf("expected no board or dead cards, got board=%v dead=%v", m.Board, m.Dead)
	}
}

func TestParseMatchup_BoardAndDead(t *testing.T) {
	m, err := ParseMatchup("JJ+/KhQc/A5s+|Kh9s4c|2d 3d")
	if err != nil {
		t.Fatalf("ParseMatchup failed: %v", err)
	}

	if len(m.Ranges) != 3 {
		t.Errorf("expected 3 players, got %d", len(m.Ranges))
	}
	if got := cards.FormatCards(m.Board); got != "Kh9s4c" {
		t.Errorf("board = %s, want Kh9s4c", got)
	}
	if got := cards.FormatCards(m.Dead); got != "2d3d" {
		t.Errorf("dead = %s, want 2d3d", got)
	}
	if got := m.String(); got != "JJ+/KhQc/A5s+|Kh9s4c|2d3d" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseMatchup_EmptyBoardWithDead(t *testing.T) {
	m, err := ParseMatchup("AA/KK||2c")
	if err != nil {
		t.Fatalf("ParseMatchup failed: %v", err)
	}
	if len(m.Board) != 0 {
		t.Errorf("expected empty board, got %v", m.Board)
	}
	if len(m.Dead) != 1 {
		t.Errorf("expected 1 dead card, got %v", m.Dead)
	}
	if got := m.String(); got != "AA/KK||2c" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseMatchup_Errors(t *testing.T) {
	tests := []struct {
		input   string
		wantErr error
	}{
		{"", ErrMalformedMatchup},
		{"AA/KK|||", ErrMalformedMatchup},
		{"|Kh9s4c", ErrMalformedMatchup},
		{"AA/", ErrEmptyRange},
		{"AA/KX", ErrMalformedRangeToken},
		{"AA/KK|Kh9", cards.ErrMalformedCard},
		{"AA/KK|Kh9s4c|zz", cards.ErrMalformedCard},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseMatchup(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseMatchup(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
