package keymaps

import (
	"testing"

	"weekplan/pkg/planner"
)

func TestBuildKeyMapDefaults(t *testing.T) {
	km := BuildKeyMap(nil)

	if got := km.ShowHelp.Help().Key; got != "ctrl+b" {
		t.Errorf("ShowHelp key = %q, expected ctrl+b", got)
	}
	if got := km.QuitApp.Keys(); len(got) != 2 || got[0] != "q" || got[1] != "ctrl+c" {
		t.Errorf("QuitApp keys = %v", got)
	}
	if len(km.Days) != len(planner.Days) {
		t.Fatalf("expected %d day bindings, got %d", len(planner.Days), len(km.Days))
	}
	for i, day := range planner.Days {
		b, ok := km.Days[day]
		if !ok {
			t.Fatalf("missing binding for %s", day)
		}
		expected := string(rune('1' + i))
		if b.Keys()[0] != expected {
			t.Errorf("%s key = %q, expected %q", day, b.Keys()[0], expected)
		}
	}
}

func TestBuildKeyMapOverrides(t *testing.T) {
	// viper lowercases keys read from the config file
	km := BuildKeyMap(map[string]string{
		"quitapp": "x",
		"Friday":  "f, F",
		"PrevDay": "",
	})

	if got := km.QuitApp.Keys(); len(got) != 1 || got[0] != "x" {
		t.Errorf("QuitApp keys = %v, expected [x]", got)
	}
	if got := km.Days[planner.Friday].Keys(); len(got) != 2 || got[0] != "f" || got[1] != "F" {
		t.Errorf("Friday keys = %v, expected [f F]", got)
	}
	if got := km.PrevDay.Keys(); got[0] != "left" {
		t.Errorf("empty override should keep default, got %v", got)
	}
}

func TestGetDefaultKeyMappings(t *testing.T) {
	mappings := GetDefaultKeyMappings()
	if len(mappings) != len(KeyDefinitions) {
		t.Fatalf("expected %d mappings, got %d", len(KeyDefinitions), len(mappings))
	}
	if mappings["OpenDay"] != "enter" {
		t.Errorf("OpenDay = %q", mappings["OpenDay"])
	}
}
