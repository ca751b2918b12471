package combo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/behrlich/poker-equity/pkg/cards"
	"github.com/behrlich/poker-equity/pkg/notation"
)

func mustHands(t testing.TB, tokens ...string) []cards.Hand {
	t.Helper()
	hands, err := notation.InstantiateSpec(notation.RangeSpec(tokens))
	require.NoError(t, err)
	return hands
}

func collect(lists [][]cards.Hand, exclude cards.CardSet) []Combination {
	var out []Combination
	for c := range Enumerate(lists, exclude) {
		out = append(out, c)
	}
	return out
}

func TestEnumerate_PinnedVsPinned(t *testing.T) {
	lists := [][]cards.Hand{mustHands(t, "AhAs"), mustHands(t, "KdKc")}

	combos := collect(lists, 0)
	require.Len(t, combos, 1)
	require.Equal(t, "AhAs vs KdKc", combos[0].String())
	require.Equal(t, int64(0), combos[0].Seq)
}

func TestEnumerate_JacksOrBetterVsPinned(t *testing.T) {
	lists := [][]cards.Hand{mustHands(t, "JJ+"), mustHands(t, "KhQc")}
	require.Len(t, lists[0], 24)
	require.Equal(t, int64(24), Variants(lists))

	combos := collect(lists, 0)
	// 3 KK hands hold Kh and 3 QQ hands hold Qc
	require.Len(t, combos, 18)

	kh := cards.NewCard(cards.King, cards.Hearts)
	qc := cards.NewCard(cards.Queen, cards.Clubs)
	for _, c := range combos {
		require.False(t, c.Hands[0].Set().Has(kh), "%v shares Kh", c)
		require.False(t, c.Hands[0].Set().Has(qc), "%v shares Qc", c)
	}
}

func TestEnumerate_NoSharedCards(t *testing.T) {
	lists := [][]cards.Hand{
		mustHands(t, "QQ+", "AKs"),
		mustHands(t, "AKo", "KK"),
		mustHands(t, "A5s+"),
	}

	n := 0
	for c := range Enumerate(lists, 0) {
		require.Equal(t, 2*len(c.Hands), c.Cards().Len(), "combination %v reuses a card", c)
		require.Equal(t, int64(n), c.Seq)
		n++
	}
	require.Positive(t, n)
	require.Less(t, int64(n), Variants(lists))
}

func TestEnumerate_ProductOrder(t *testing.T) {
	lists := [][]cards.Hand{mustHands(t, "AsKs", "QsJs"), mustHands(t, "2c3c", "4c5c")}

	var got []string
	for c := range Enumerate(lists, 0) {
		got = append(got, c.String())
	}
	require.Equal(t, []string{
		"AsKs vs 2c3c",
		"AsKs vs 4c5c",
		"QsJs vs 2c3c",
		"QsJs vs 4c5c",
	}, got)
}

func TestEnumerate_ExcludesDeadAndBoard(t *testing.T) {
	lists := [][]cards.Hand{mustHands(t, "AA"), mustHands(t, "KK")}
	dead, err := cards.ParseCards("AsKh")
	require.NoError(t, err)

	combos := collect(lists, cards.NewCardSet(dead...))
	// AA without As: 3 hands; KK without Kh: 3 hands
	require.Len(t, combos, 9)
	for _, c := range combos {
		require.False(t, c.Cards().Overlaps(cards.NewCardSet(dead...)))
	}
}

func TestEnumerate_AllCollide(t *testing.T) {
	lists := [][]cards.Hand{mustHands(t, "AhKh"), mustHands(t, "AhQd")}
	require.Empty(t, collect(lists, 0))
	require.Zero(t, Count(lists, 0))

	require.Empty(t, collect(nil, 0))
	require.Empty(t, collect([][]cards.Hand{mustHands(t, "AA"), {}}, 0))
}

func TestEnumerate_Restartable(t *testing.T) {
	lists := [][]cards.Hand{mustHands(t, "TT+"), mustHands(t, "AKs", "AKo")}
	seq := Enumerate(lists, 0)

	first := 0
	for range seq {
		first++
	}
	second := 0
	for range seq {
		second++
	}
	require.Equal(t, first, second)
	require.Equal(t, int64(first), Count(lists, 0))
}

func TestEnumerate_StopsEarly(t *testing.T) {
	lists := [][]cards.Hand{mustHands(t, "22+"), mustHands(t, "22+")}

	n := 0
	for range Enumerate(lists, 0) {
		n++
		if n == 5 {
			break
		}
	}
	require.Equal(t, 5, n)
}

func TestVariants(t *testing.T) {
	require.Zero(t, Variants(nil))
	require.Equal(t, int64(6*12), Variants([][]cards.Hand{mustHands(t, "AA"), mustHands(t, "KQo")}))

	big := make([]cards.Hand, 1<<16)
	lists := [][]cards.Hand{big, big, big, big, big}
	require.Equal(t, int64(math.MaxInt64), Variants(lists))
}

func TestFilter_LeavesInputIntact(t *testing.T) {
	lists := [][]cards.Hand{mustHands(t, "AA")}
	out := Filter(lists, cards.NewCardSet(cards.NewCard(cards.Ace, cards.Spades)))
	require.Len(t, out[0], 3)
	require.Len(t, lists[0], 6)
}

func BenchmarkEnumerate_ThreeWay(b *testing.B) {
	lists := [][]cards.Hand{
		mustHands(b, "TT+", "AKs"),
		mustHands(b, "AQs+", "AKo"),
		mustHands(b, "77-55", "KQs"),
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Count(lists, 0)
	}
}
