package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	assert.Equal(t, 0, Levenshtein("abc", "abc"))
	assert.Equal(t, 3, Levenshtein("", "abc"))
	assert.Equal(t, 3, Levenshtein("kitten", "sitting"))
	assert.Equal(t, 1, Levenshtein("café", "cafe"))
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 100, Similarity("Learn more", "learn more "))
	assert.Equal(t, 100, Similarity("", ""))
	assert.Equal(t, 0, Similarity("abc", ""))
	assert.Equal(t, 57, Similarity("kitten", "sitting"))
}

func TestClampAndRound(t *testing.T) {
	assert.Equal(t, 100, ClampScore(140))
	assert.Equal(t, 0, ClampScore(-3))
	assert.Equal(t, 20, Clamp(5, 20, 100))
	assert.Equal(t, 53, Round(52.5))
	assert.Equal(t, -1, Round(-0.5))
}

func TestHash(t *testing.T) {
	assert.Equal(t, Hash("a", "b"), Hash("a", "b"))
	assert.NotEqual(t, Hash("a|b", "c"), Hash("a", "b|c"))
	assert.NotEqual(t, Hash("ab", ""), Hash("a", "b"))
	assert.NotEqual(t, Hash("1:a"), Hash("a"))
	assert.Len(t, Hash("x"), 64)
}

func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{"japan", "china"}, Dedupe([]string{"japan", "china", "japan"}))
}

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "middle east", NormalizeKey("  Middle   East "))
}
