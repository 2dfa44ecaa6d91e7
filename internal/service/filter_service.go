package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"atelier-service/internal/models"
	"atelier-service/internal/store"
	"atelier-service/internal/util"

	"go.uber.org/zap"
)

// FilterService computes the visible subset of the catalog for a filter
// selection. It is stateless: every call starts from the full catalog.
type FilterService struct {
	store            *store.Store
	shortQueryMaxLen int
	logger           *zap.Logger
}

// NewFilterService creates a new filter service. shortQueryMaxLen is the
// exclusive upper bound on query length for the mood fallback clause.
func NewFilterService(store *store.Store, shortQueryMaxLen int) *FilterService {
	return &FilterService{
		store:            store,
		shortQueryMaxLen: shortQueryMaxLen,
		logger:           util.GetLogger(),
	}
}

// Query filters the combined catalog by the selection. Category is
// mandatory; sub-facet and free text are optional AND-refinements. Result
// order is the stable catalog order and an empty result is not an error.
func (fs *FilterService) Query(ctx context.Context, sel models.FilterSelection) ([]models.Product, error) {
	_, span := util.StartSpan(ctx, "FilterService.Query")
	defer span.End()

	if !sel.ActiveCategory.Valid() {
		return nil, fmt.Errorf("invalid category %q", sel.ActiveCategory)
	}

	start := time.Now()
	defer func() {
		util.CatalogQueryDuration.Observe(time.Since(start).Seconds())
	}()
	util.CatalogQueriesTotal.WithLabelValues(string(sel.ActiveCategory)).Inc()

	results := make([]models.Product, 0)
	for _, p := range fs.store.AllProducts() {
		if p.Category != sel.ActiveCategory {
			continue
		}
		if !fs.matchesSubFacet(p, sel) {
			continue
		}
		if !fs.matchesText(p, sel) {
			continue
		}
		results = append(results, p)
	}

	fs.logger.Debug("Catalog query resolved",
		zap.String("category", string(sel.ActiveCategory)),
		zap.String("query", sel.FreeTextQuery),
		zap.Int("results", len(results)))

	return results, nil
}

// matchesSubFacet applies the optional lens refinement: an exact,
// case-sensitive match against the fixed enumeration.
func (fs *FilterService) matchesSubFacet(p models.Product, sel models.FilterSelection) bool {
	if sel.ActiveSubFacet == "" {
		return true
	}
	switch sel.LensKind {
	case models.LensEmotion:
		return string(p.EmotionTag) == sel.ActiveSubFacet
	default:
		return string(p.StyleTag) == sel.ActiveSubFacet
	}
}

// matchesText applies the free-text clause: a case-insensitive substring
// match over name, description, style tag and category. Very short queries
// additionally surface products whose mood equals the caller's target mood,
// so ambiguous input does not produce an empty set.
func (fs *FilterService) matchesText(p models.Product, sel models.FilterSelection) bool {
	if sel.FreeTextQuery == "" {
		return true
	}
	q := strings.ToLower(sel.FreeTextQuery)

	for _, field := range []string{p.Name, p.Description, string(p.StyleTag), string(p.Category)} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}

	if sel.TargetMood != "" && utf8.RuneCountInString(sel.FreeTextQuery) < fs.shortQueryMaxLen {
		return strings.EqualFold(p.Mood, sel.TargetMood)
	}

	return false
}
