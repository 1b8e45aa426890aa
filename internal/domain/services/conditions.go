package services

import (
	"slices"
	"strconv"
	"strings"

	"github.com/ersonp/dex-core/internal/domain/entities"
)

// GenericConditionPhrase is returned when an edge has nothing to render.
const GenericConditionPhrase = "special condition"

const conditionSeparator = " "

// FormatConditions renders the first condition of an evolution edge as one phrase.
// Alternative conditions after the first are not rendered.
func FormatConditions(conditions []entities.EvolutionCondition) string {
	if len(conditions) == 0 {
		return GenericConditionPhrase
	}
	c := conditions[0]

	var fragments []string
	switch c.Trigger {
	case entities.TriggerTrade:
		if c.Item != nil {
			fragments = append(fragments, "trade while holding "+string(c.Item.Name))
		} else {
			fragments = append(fragments, "trade")
		}
	case entities.TriggerUseItem:
		if c.Item != nil && !c.Item.Unresolved {
			fragments = append(fragments, "use "+string(c.Item.Name))
		}
	case entities.TriggerLevelUp:
		if c.MinLevel == nil && c.MinHappiness == nil {
			fragments = append(fragments, "level up")
		}
	}

	if c.MinLevel != nil {
		fragments = append(fragments, "Lv. "+strconv.Itoa(*c.MinLevel))
	}
	if c.MinHappiness != nil {
		fragments = append(fragments, "happiness ≥ "+strconv.Itoa(*c.MinHappiness))
	}
	if c.TimeOfDay != entities.TimeOfDayNone {
		fragments = append(fragments, "("+string(c.TimeOfDay)+")")
	}
	if c.Location != nil && !c.Location.Unresolved {
		fragments = append(fragments, "at "+string(c.Location.Name))
	}

	fragments = dedupFragments(fragments)
	if len(fragments) == 0 {
		return GenericConditionPhrase
	}
	return strings.Join(fragments, conditionSeparator)
}

func dedupFragments(fragments []string) []string {
	out := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}
