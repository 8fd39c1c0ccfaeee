package keymaps

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"weekplan/pkg/planner"
)

type KeyDefinition struct {
	DefaultKey string
	Help       string
}

var KeyDefinitions = map[string]KeyDefinition{
	"ShowHelp":     {"ctrl+b", "show/hide commands"},
	"QuitApp":      {"q,ctrl+c", "quit"},
	"ShowOverview": {"o,0,esc", "week overview"},
	"PrevDay":      {"left,h", "previous day"},
	"NextDay":      {"right,l", "next day"},
	"OpenDay":      {"enter", "open selected day"},
	"JumpToToday":  {"t", "jump to today"},
	"Monday":       {"1", "monday"},
	"Tuesday":      {"2", "tuesday"},
	"Wednesday":    {"3", "wednesday"},
	"Thursday":     {"4", "thursday"},
	"Friday":       {"5", "friday"},
	"Saturday":     {"6", "saturday"},
	"Sunday":       {"7", "sunday"},
}

type KeyMap struct {
	ShowHelp     key.Binding
	QuitApp      key.Binding
	ShowOverview key.Binding
	PrevDay      key.Binding
	NextDay      key.Binding
	OpenDay      key.Binding
	JumpToToday  key.Binding

	// Days holds one direct-jump binding per day view
	Days map[planner.ViewID]key.Binding
}

// BuildKeyMap applies configured overrides on top of the default keys.
// Override names are matched case-insensitively.
func BuildKeyMap(configOverrides map[string]string) KeyMap {
	overrides := make(map[string]string, len(configOverrides))
	for action, keys := range configOverrides {
		overrides[strings.ToLower(action)] = keys
	}

	km := KeyMap{Days: make(map[planner.ViewID]key.Binding, len(planner.Days))}
	for action, def := range KeyDefinitions {
		keyStr := def.DefaultKey
		if override, exists := overrides[strings.ToLower(action)]; exists && override != "" {
			keyStr = override
		}
		binding := parseKeyBinding(keyStr, def.DefaultKey, def.Help)

		switch action {
		case "ShowHelp":
			km.ShowHelp = binding
		case "QuitApp":
			km.QuitApp = binding
		case "ShowOverview":
			km.ShowOverview = binding
		case "PrevDay":
			km.PrevDay = binding
		case "NextDay":
			km.NextDay = binding
		case "OpenDay":
			km.OpenDay = binding
		case "JumpToToday":
			km.JumpToToday = binding
		default:
			// remaining definitions are the day names
			km.Days[planner.ViewID(strings.ToLower(action))] = binding
		}
	}
	return km
}

func parseKeyBinding(keyStr, defaultKey, helpText string) key.Binding {
	if keyStr == "" {
		keyStr = defaultKey
	}

	// Handle multiple keys separated by commas
	keys := strings.Split(keyStr, ",")
	for i, k := range keys {
		keys[i] = strings.TrimSpace(k)
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keys[0], helpText),
	)
}

// GetDefaultKeyMappings returns the default key mappings for configuration
func GetDefaultKeyMappings() map[string]string {
	keyMappings := make(map[string]string)
	for action, def := range KeyDefinitions {
		keyMappings[action] = def.DefaultKey
	}
	return keyMappings
}
