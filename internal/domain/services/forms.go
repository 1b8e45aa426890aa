package services

import (
	"context"
	"slices"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/ports"
)

// GenericFormLabel is used when no better label can be derived.
const GenericFormLabel = "SPECIAL FORM"

// FormMarker is one row of the variant classification table.
type FormMarker struct {
	Token     string
	Qualifies bool
	Label     string
	Priority  int
}

// DefaultFormMarkers lists the alternate battle form markers.
// Lower priority wins when an identifier carries more than one token.
var DefaultFormMarkers = []FormMarker{
	{Token: "-mega", Qualifies: true, Label: "MEGA", Priority: 10},
	{Token: "-primal", Qualifies: true, Label: "PRIMAL", Priority: 20},
	{Token: "-origin", Qualifies: true, Label: "ORIGIN", Priority: 30},
	{Token: "-rayquaza", Qualifies: true, Priority: 40},
}

// DefaultFormExclusions are regional variant markers. They are non-default
// too but never count as special forms.
var DefaultFormExclusions = []string{"-alola", "-galar", "-hisui", "-paldea"}

// FormClassifier decides which variants are special forms and labels them.
type FormClassifier struct {
	markers    []FormMarker
	exclusions []string
}

// NewFormClassifier creates a classifier over the given table, sorted by priority.
func NewFormClassifier(markers []FormMarker, exclusions []string) *FormClassifier {
	sorted := slices.Clone(markers)
	slices.SortStableFunc(sorted, func(a, b FormMarker) int {
		return a.Priority - b.Priority
	})
	return &FormClassifier{
		markers:    sorted,
		exclusions: slices.Clone(exclusions),
	}
}

// NewDefaultFormClassifier uses DefaultFormMarkers and DefaultFormExclusions.
func NewDefaultFormClassifier() *FormClassifier {
	return NewFormClassifier(DefaultFormMarkers, DefaultFormExclusions)
}

// IsSpecialForm reports whether a variant should be surfaced as a special form.
func (c *FormClassifier) IsSpecialForm(variantID string, isDefault bool) bool {
	if isDefault {
		return false
	}
	for _, ex := range c.exclusions {
		if strings.Contains(variantID, ex) {
			return false
		}
	}
	for _, m := range c.markers {
		if m.Qualifies && strings.Contains(variantID, m.Token) {
			return true
		}
	}
	return false
}

// Label derives a short, non-empty display label for a variant.
func (c *FormClassifier) Label(variantID, baseID string) string {
	for _, m := range c.markers {
		if m.Label != "" && strings.Contains(variantID, m.Token) {
			return m.Label
		}
	}

	rest := strings.TrimPrefix(variantID, baseID)
	rest = strings.NewReplacer("-", " ", "_", " ").Replace(rest)
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return GenericFormLabel
	}
	return strings.ToUpper(rest)
}

// FormAggregator discovers special forms and resolves them into FormRecords.
type FormAggregator struct {
	catalog    ports.Catalog
	classifier *FormClassifier
	logger     *zap.Logger
}

// NewFormAggregator creates a new form aggregator.
func NewFormAggregator(catalog ports.Catalog, classifier *FormClassifier, logger *zap.Logger) *FormAggregator {
	if classifier == nil {
		classifier = NewDefaultFormClassifier()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FormAggregator{
		catalog:    catalog,
		classifier: classifier,
		logger:     logger,
	}
}

// SelectVariants filters variants through the classifier and drops repeated
// source refs, keeping the first occurrence.
func (a *FormAggregator) SelectVariants(variants []entities.RawVariant) []entities.RawVariant {
	seen := make(map[string]struct{}, len(variants))
	selected := make([]entities.RawVariant, 0, len(variants))
	for _, v := range variants {
		if !a.classifier.IsSpecialForm(v.VariantID, v.IsDefault) {
			continue
		}
		if _, dup := seen[v.SourceRef]; dup {
			continue
		}
		seen[v.SourceRef] = struct{}{}
		selected = append(selected, v)
	}
	return selected
}

// Aggregate fetches every selected variant concurrently. Failed fetches are
// logged and omitted; the result keeps the filtered order.
func (a *FormAggregator) Aggregate(ctx context.Context, baseID string, variants []entities.RawVariant) []entities.FormRecord {
	return a.aggregate(ctx, a.logger, baseID, variants)
}

func (a *FormAggregator) aggregate(ctx context.Context, logger *zap.Logger, baseID string, variants []entities.RawVariant) []entities.FormRecord {
	selected := a.SelectVariants(variants)
	if len(selected) == 0 {
		return []entities.FormRecord{}
	}

	slots := make([]*entities.FormRecord, len(selected))
	var g errgroup.Group
	for i, v := range selected {
		g.Go(func() error {
			raw, err := a.catalog.FetchEntity(ctx, v.SourceRef)
			if err != nil {
				logger.Warn("Dropping special form",
					zap.String("variant", v.VariantID),
					zap.String("ref", v.SourceRef),
					zap.Error(err))
				return nil
			}
			slots[i] = &entities.FormRecord{
				SourceRef: v.SourceRef,
				Label:     a.classifier.Label(v.VariantID, baseID),
				Types:     slices.Clone(raw.Types),
				SpriteRef: raw.SpriteRef,
			}
			return nil
		})
	}
	_ = g.Wait()

	forms := make([]entities.FormRecord, 0, len(slots))
	for _, f := range slots {
		if f != nil {
			forms = append(forms, *f)
		}
	}
	return forms
}
