package service

import (
	"context"
	"testing"

	"atelier-service/internal/models"
	"atelier-service/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewSeeded()
	require.NoError(t, err)
	return s
}

func TestQueryCategoryOnly(t *testing.T) {
	catalog := newTestCatalog(t)
	fs := NewFilterService(catalog, 3)
	ctx := context.Background()

	for _, category := range models.Categories {
		want := 0
		for _, p := range catalog.AllProducts() {
			if p.Category == category {
				want++
			}
		}

		results, err := fs.Query(ctx, models.FilterSelection{ActiveCategory: category})
		require.NoError(t, err)
		assert.Len(t, results, want)
		for _, p := range results {
			assert.Equal(t, category, p.Category)
		}
	}
}

func TestQueryRequiresCategory(t *testing.T) {
	fs := NewFilterService(newTestCatalog(t), 3)

	_, err := fs.Query(context.Background(), models.FilterSelection{})
	assert.Error(t, err)

	_, err = fs.Query(context.Background(), models.FilterSelection{ActiveCategory: "Gadgets"})
	assert.Error(t, err)
}

func TestQueryStyleLens(t *testing.T) {
	fs := NewFilterService(newTestCatalog(t), 3)

	results, err := fs.Query(context.Background(), models.FilterSelection{
		ActiveCategory: models.CategoryApparel,
		LensKind:       models.LensStyle,
		ActiveSubFacet: string(models.StyleAvantGarde),
	})
	require.NoError(t, err)
	require.NotEmpty(t, results)
	for _, p := range results {
		assert.Equal(t, models.StyleAvantGarde, p.StyleTag)
	}
}

func TestQueryEmotionLens(t *testing.T) {
	fs := NewFilterService(newTestCatalog(t), 3)

	results, err := fs.Query(context.Background(), models.FilterSelection{
		ActiveCategory: models.CategoryOuterwear,
		LensKind:       models.LensEmotion,
		ActiveSubFacet: string(models.EmotionBold),
	})
	require.NoError(t, err)
	require.NotEmpty(t, results)
	for _, p := range results {
		assert.Equal(t, models.EmotionBold, p.EmotionTag)
	}
}

func TestQueryLensIsCaseSensitive(t *testing.T) {
	fs := NewFilterService(newTestCatalog(t), 3)

	results, err := fs.Query(context.Background(), models.FilterSelection{
		ActiveCategory: models.CategoryApparel,
		LensKind:       models.LensStyle,
		ActiveSubFacet: "avant-garde",
	})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestQueryFreeText(t *testing.T) {
	fs := NewFilterService(newTestCatalog(t), 3)

	results, err := fs.Query(context.Background(), models.FilterSelection{
		ActiveCategory: models.CategoryOuterwear,
		FreeTextQuery:  "TRENCH",
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "p1", results[0].ID)

	// No match at all is a valid empty result, not an error.
	results, err = fs.Query(context.Background(), models.FilterSelection{
		ActiveCategory: models.CategoryOuterwear,
		FreeTextQuery:  "zzzz",
	})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestQueryShortQueryMoodFallback(t *testing.T) {
	fs := NewFilterService(newTestCatalog(t), 3)

	// "zq" matches no text field, but the two-character query falls back to
	// mood equality against the caller's target mood.
	results, err := fs.Query(context.Background(), models.FilterSelection{
		ActiveCategory: models.CategoryApparel,
		FreeTextQuery:  "zq",
		TargetMood:     "RESTLESS",
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "p2", results[0].ID)

	// Rune count decides "short", not byte length: a two-rune non-ASCII
	// query still falls back to mood.
	results, err = fs.Query(context.Background(), models.FilterSelection{
		ActiveCategory: models.CategoryApparel,
		FreeTextQuery:  "æø",
		TargetMood:     "restless",
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "p2", results[0].ID)

	// At the threshold the fallback no longer applies.
	results, err = fs.Query(context.Background(), models.FilterSelection{
		ActiveCategory: models.CategoryApparel,
		FreeTextQuery:  "zqx",
		TargetMood:     "restless",
	})
	require.NoError(t, err)
	assert.Empty(t, results)

	// Without a target mood, short queries stay strict substring searches.
	results, err = fs.Query(context.Background(), models.FilterSelection{
		ActiveCategory: models.CategoryApparel,
		FreeTextQuery:  "zq",
	})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestQueryStableOrder(t *testing.T) {
	catalog := newTestCatalog(t)
	fs := NewFilterService(catalog, 3)

	results, err := fs.Query(context.Background(), models.FilterSelection{
		ActiveCategory: models.CategoryApparel,
	})
	require.NoError(t, err)

	// Results follow catalog order: standard partition before archive.
	var wantIDs []string
	for _, p := range catalog.AllProducts() {
		if p.Category == models.CategoryApparel {
			wantIDs = append(wantIDs, p.ID)
		}
	}
	gotIDs := make([]string, len(results))
	for i, p := range results {
		gotIDs[i] = p.ID
	}
	assert.Equal(t, wantIDs, gotIDs)
}
