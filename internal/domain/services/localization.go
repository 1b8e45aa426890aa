// Package services contains domain business logic.
package services

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/ersonp/dex-core/internal/domain/entities"
)

// DefaultLocale is the preferred locale when none is configured.
const DefaultLocale = "ko"

// Resolver picks the preferred-locale name out of a translation list.
type Resolver struct {
	locale    string
	canonical string
}

// NewResolver creates a resolver for the given preferred locale tag.
func NewResolver(locale string) *Resolver {
	if strings.TrimSpace(locale) == "" {
		locale = DefaultLocale
	}
	r := &Resolver{locale: locale}
	if tag, err := language.Parse(locale); err == nil {
		r.canonical = tag.String()
	}
	return r
}

// Locale returns the configured preferred locale tag.
func (r *Resolver) Locale() string {
	return r.locale
}

// Resolve returns the preferred-locale name, falling back to canonical.
// The result is never empty.
func (r *Resolver) Resolve(translations []entities.Translation, canonical string) entities.LocalizedName {
	for _, tr := range translations {
		if tr.Name == "" || !r.matches(tr.LocaleTag) {
			continue
		}
		return entities.LocalizedName(tr.Name)
	}
	if canonical == "" {
		return entities.UnknownName
	}
	return entities.LocalizedName(canonical)
}

func (r *Resolver) matches(localeTag string) bool {
	if strings.EqualFold(localeTag, r.locale) {
		return true
	}
	if r.canonical == "" {
		return false
	}
	tag, err := language.Parse(localeTag)
	if err != nil {
		return false
	}
	return tag.String() == r.canonical
}
