package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carloslator/EnglishVerbs/internal/vocab"
)

var tinyPool = []vocab.Verb{
	{ID: 1, English: "run", Spanish: "correr", Category: vocab.CategoryMovement},
	{ID: 2, English: "eat", Spanish: "comer", Category: vocab.CategoryDailyLife},
	{ID: 3, English: "sleep", Spanish: "dormir", Category: vocab.CategoryDailyLife},
}

func TestSample_BoundsAndDistinct(t *testing.T) {
	s := NewSeededSampler(1)
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	for k := -1; k <= 12; k++ {
		got := Sample(s, items, k)
		want := k
		if want < 0 {
			want = 0
		}
		if want > len(items) {
			want = len(items)
		}
		require.Len(t, got, want, "k=%d", k)

		seen := map[int]bool{}
		for _, v := range got {
			assert.False(t, seen[v], "duplicate %d for k=%d", v, k)
			seen[v] = true
			assert.Contains(t, items, v)
		}
	}
}

func TestSample_DoesNotMutateInput(t *testing.T) {
	s := NewSeededSampler(2)
	items := []string{"a", "b", "c", "d"}
	_ = Sample(s, items, 3)
	assert.Equal(t, []string{"a", "b", "c", "d"}, items)
}

func TestSample_SeedIsReproducible(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	a := Sample(NewSeededSampler(42), items, 5)
	b := Sample(NewSeededSampler(42), items, 5)
	assert.Equal(t, a, b)
}

func TestSample_CoversEveryElement(t *testing.T) {
	s := NewSeededSampler(3)
	items := []int{0, 1, 2, 3, 4}
	counts := make([]int, len(items))
	for range 2000 {
		for _, v := range Sample(s, items, 1) {
			counts[v]++
		}
	}
	for i, c := range counts {
		// 400 expected per bucket.
		assert.Greater(t, c, 250, "element %d drawn %d times", i, c)
	}
}

func TestDistractors_ExcludesCorrectByID(t *testing.T) {
	s := NewSeededSampler(4)
	pool := vocab.Default().All()
	correct := pool[10]

	for range 100 {
		got := s.Distractors(correct, pool, 3, vocab.FieldSpanish)
		require.Len(t, got, 3)
		assert.NotContains(t, got, correct.Spanish)
	}
}

func TestDistractors_DegradedPool(t *testing.T) {
	s := NewSeededSampler(5)

	got := s.Distractors(tinyPool[0], tinyPool, 3, vocab.FieldSpanish)
	assert.ElementsMatch(t, []string{"comer", "dormir"}, got)

	got = s.Distractors(tinyPool[0], tinyPool[:1], 3, vocab.FieldEnglish)
	assert.Empty(t, got)
}

func TestDistractors_SharedStringNotDeduplicated(t *testing.T) {
	s := NewSeededSampler(6)
	pool := []vocab.Verb{
		{ID: 1, English: "run", Spanish: "correr"},
		{ID: 2, English: "jog", Spanish: "correr"},
	}
	got := s.Distractors(pool[0], pool, 3, vocab.FieldSpanish)
	assert.Equal(t, []string{"correr"}, got)
}

func TestChance_Extremes(t *testing.T) {
	s := NewSeededSampler(7)
	for range 100 {
		assert.False(t, s.Chance(0))
		assert.True(t, s.Chance(1))
	}
}
