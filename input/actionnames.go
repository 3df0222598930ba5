package input

import (
	"fmt"
	"sort"
)

// actionRegistry maps canonical action names to actions
// Used by the keymap loader to resolve config strings to bindings
var actionRegistry = map[string]Action{
	"carve": ActionCarve,
	"set":   ActionSet,
	"parry": ActionParry,
	"jump":  ActionJump,
}

// axisRegistry maps canonical axis names to axes
var axisRegistry = map[string]Axis{
	"move": AxisMove,
	"aim":  AxisAim,
}

// ParseAction resolves an action name
func ParseAction(name string) (Action, error) {
	if a, ok := actionRegistry[name]; ok {
		return a, nil
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// ParseAxis resolves an axis name
func ParseAxis(name string) (Axis, error) {
	if a, ok := axisRegistry[name]; ok {
		return a, nil
	}
	return 0, fmt.Errorf("unknown axis %q", name)
}

// ActionNames returns all action names in sorted order
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (a Action) String() string {
	for name, v := range actionRegistry {
		if v == a {
			return name
		}
	}
	return "unknown"
}
