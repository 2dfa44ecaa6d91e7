package store

import (
	"errors"
	"testing"

	"atelier-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededCatalog(t *testing.T) {
	s, err := NewSeeded()
	require.NoError(t, err)

	all := s.AllProducts()
	assert.Equal(t, s.Len(), len(all))
	assert.Equal(t, len(s.Standard())+len(s.Archive()), len(all))

	// Standard partition first, then archive, stable order.
	std := s.Standard()
	for i, p := range std {
		assert.Equal(t, p.ID, all[i].ID)
		assert.Equal(t, models.PartitionStandard, p.Partition)
	}
	for i, p := range s.Archive() {
		assert.Equal(t, p.ID, all[len(std)+i].ID)
		assert.Equal(t, models.PartitionArchive, p.Partition)
	}

	// Ids unique across both partitions.
	seen := make(map[string]bool)
	for _, p := range all {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}
}

func TestByID(t *testing.T) {
	s, err := NewSeeded()
	require.NoError(t, err)

	p, err := s.ByID("p1")
	require.NoError(t, err)
	assert.Equal(t, "Duskfall Trench", p.Name)

	_, err = s.ByID("nope")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestArchiveByID(t *testing.T) {
	s, err := NewSeeded()
	require.NoError(t, err)

	p, err := s.ArchiveByID("a1")
	require.NoError(t, err)
	assert.Equal(t, models.PartitionArchive, p.Partition)

	// A standard product id is reported the same as an unknown id.
	_, err = s.ArchiveByID("p1")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestNewLeavesCallerSlicesUntouched(t *testing.T) {
	standard := []models.Product{{ID: "s1", Price: 100, Category: models.CategoryApparel}}
	archive := []models.Product{{ID: "r1", Price: 200, Category: models.CategoryJewelry}}

	s, err := New(standard, archive)
	require.NoError(t, err)

	assert.Equal(t, models.Partition(""), standard[0].Partition)
	assert.Equal(t, models.Partition(""), archive[0].Partition)

	p, err := s.ByID("s1")
	require.NoError(t, err)
	assert.Equal(t, models.PartitionStandard, p.Partition)
	p, err = s.ByID("r1")
	require.NoError(t, err)
	assert.Equal(t, models.PartitionArchive, p.Partition)
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	_, err := New(
		[]models.Product{{ID: "x", Price: 100, Category: models.CategoryApparel}},
		[]models.Product{{ID: "x", Price: 200, Category: models.CategoryJewelry}},
	)
	require.Error(t, err)
	assert.False(t, errors.Is(err, models.ErrNotFound))
}

func TestNewRejectsBadOriginalPrice(t *testing.T) {
	_, err := New(
		[]models.Product{{ID: "x", Price: 100, OriginalPrice: 100, Category: models.CategoryApparel}},
		nil,
	)
	assert.Error(t, err)
}

func TestDiscountPercent(t *testing.T) {
	p := models.Product{Price: 48000, OriginalPrice: 62000}
	assert.Equal(t, 22, p.DiscountPercent())

	assert.Zero(t, models.Product{Price: 100}.DiscountPercent())
}
