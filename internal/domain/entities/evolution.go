package entities

// EvolutionTrigger is the kind of event that fires an evolution edge.
type EvolutionTrigger string

const (
	TriggerLevelUp EvolutionTrigger = "level-up"
	TriggerUseItem EvolutionTrigger = "use-item"
	TriggerTrade   EvolutionTrigger = "trade"
	TriggerOther   EvolutionTrigger = "other"
)

// ParseTrigger maps a raw trigger name onto the known set.
// Anything unrecognized becomes TriggerOther.
func ParseTrigger(raw string) EvolutionTrigger {
	switch EvolutionTrigger(raw) {
	case TriggerLevelUp, TriggerUseItem, TriggerTrade:
		return EvolutionTrigger(raw)
	default:
		return TriggerOther
	}
}

// TimeOfDay restricts an evolution to part of the day. The zero value means unrestricted.
type TimeOfDay string

const (
	TimeOfDayNone  TimeOfDay = ""
	TimeOfDayDay   TimeOfDay = "day"
	TimeOfDayNight TimeOfDay = "night"
)

// ParseTimeOfDay keeps day and night and drops every other value.
func ParseTimeOfDay(raw string) TimeOfDay {
	switch TimeOfDay(raw) {
	case TimeOfDayDay, TimeOfDayNight:
		return TimeOfDay(raw)
	default:
		return TimeOfDayNone
	}
}

// ResolvedName is an optional referenced name (item, location).
// When the lookup failed, Name is UnknownName and Unresolved is set.
type ResolvedName struct {
	Name       LocalizedName `json:"name"`
	Unresolved bool          `json:"unresolved,omitempty"`
}

// EvolutionCondition is one way of triggering an evolution edge.
type EvolutionCondition struct {
	Trigger      EvolutionTrigger `json:"trigger"`
	MinLevel     *int             `json:"min_level,omitempty"`
	Item         *ResolvedName    `json:"item,omitempty"`
	MinHappiness *int             `json:"min_happiness,omitempty"`
	TimeOfDay    TimeOfDay        `json:"time_of_day,omitempty"`
	Location     *ResolvedName    `json:"location,omitempty"`
}

// EvolutionNode is one species in an evolution tree. Children keep the
// order received from the catalog.
type EvolutionNode struct {
	ID                 EntityID             `json:"id"`
	Name               LocalizedName        `json:"name"`
	IncomingConditions []EvolutionCondition `json:"incoming_conditions"`
	Children           []*EvolutionNode     `json:"children"`
	IsFocus            bool                 `json:"is_focus"`
}

// Walk visits the node and its descendants depth-first, pre-order.
func (n *EvolutionNode) Walk(fn func(node *EvolutionNode, depth int)) {
	n.walk(fn, 0)
}

func (n *EvolutionNode) walk(fn func(*EvolutionNode, int), depth int) {
	if n == nil {
		return
	}
	fn(n, depth)
	for _, child := range n.Children {
		child.walk(fn, depth+1)
	}
}

// CountFocus returns how many nodes in the tree are marked as focus.
func (n *EvolutionNode) CountFocus() int {
	count := 0
	n.Walk(func(node *EvolutionNode, _ int) {
		if node.IsFocus {
			count++
		}
	})
	return count
}
