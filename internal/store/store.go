package store

import (
	"fmt"

	"atelier-service/internal/models"
)

// Store holds the immutable product catalog: two partitions (standard
// stock, archive stock) seeded at process start and never mutated. It is
// safe for concurrent readers because there are no writers after New.
type Store struct {
	standard []models.Product
	archive  []models.Product
	byID     map[string]models.Product
}

// New builds a catalog store from the two partition lists. Product ids must
// be unique across both partitions. The lists are copied, so the caller's
// slices stay untouched.
func New(standard, archive []models.Product) (*Store, error) {
	s := &Store{
		standard: make([]models.Product, len(standard)),
		archive:  make([]models.Product, len(archive)),
		byID:     make(map[string]models.Product, len(standard)+len(archive)),
	}
	copy(s.standard, standard)
	copy(s.archive, archive)

	for i := range s.standard {
		s.standard[i].Partition = models.PartitionStandard
	}
	for i := range s.archive {
		s.archive[i].Partition = models.PartitionArchive
	}

	for _, p := range s.all() {
		if _, dup := s.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id: %s", p.ID)
		}
		if p.OriginalPrice != 0 && p.OriginalPrice <= p.Price {
			return nil, fmt.Errorf("product %s: original price must exceed price", p.ID)
		}
		s.byID[p.ID] = p
	}

	return s, nil
}

// NewSeeded builds the store from the built-in mock catalog.
func NewSeeded() (*Store, error) {
	return New(seedStandard(), seedArchive())
}

func (s *Store) all() []models.Product {
	out := make([]models.Product, 0, len(s.standard)+len(s.archive))
	out = append(out, s.standard...)
	out = append(out, s.archive...)
	return out
}

// AllProducts returns the combined catalog: standard partition first, then
// archive, in stable seed order. The returned slice is a copy.
func (s *Store) AllProducts() []models.Product {
	return s.all()
}

// Standard returns a copy of the standard partition.
func (s *Store) Standard() []models.Product {
	out := make([]models.Product, len(s.standard))
	copy(out, s.standard)
	return out
}

// Archive returns a copy of the archive partition.
func (s *Store) Archive() []models.Product {
	out := make([]models.Product, len(s.archive))
	copy(out, s.archive)
	return out
}

// Len returns the combined catalog size.
func (s *Store) Len() int {
	return len(s.standard) + len(s.archive)
}

// ByID retrieves a product by id.
func (s *Store) ByID(id string) (models.Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return models.Product{}, fmt.Errorf("product %s: %w", id, models.ErrNotFound)
	}
	return p, nil
}

// ArchiveByID retrieves an archive-partition product by id. Standard
// products are reported as not found, the same as unknown ids.
func (s *Store) ArchiveByID(id string) (models.Product, error) {
	p, err := s.ByID(id)
	if err != nil {
		return models.Product{}, err
	}
	if p.Partition != models.PartitionArchive {
		return models.Product{}, fmt.Errorf("archive product %s: %w", id, models.ErrNotFound)
	}
	return p, nil
}
