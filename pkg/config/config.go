package config

import (
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"weekplan/pkg/keymaps"
	"weekplan/pkg/planner"
)

// Config holds the application configuration
type Config struct {
	StylesFile    string            `mapstructure:"styles_file"`
	KeyMap        map[string]string `mapstructure:"keymap"`
	StartView     string            `mapstructure:"start_view"`
	ShowClock     bool              `mapstructure:"show_clock"`
	ClockFormat   string            `mapstructure:"clock_format"`
	ResultsDriver string            `mapstructure:"results_driver"`
	ResultsDSN    string            `mapstructure:"results_dsn"`
}

// Styles holds the application colors and the per-day theme gradients
type Styles struct {
	// UI element colors
	BorderColor string `mapstructure:"border_color"`
	AccentColor string `mapstructure:"accent_color"`

	// Text colors
	NormalTextColor   string `mapstructure:"normal_text_color"`
	SelectedTextColor string `mapstructure:"selected_text_color"`
	SelectedBgColor   string `mapstructure:"selected_bg_color"`
	ErrorColor        string `mapstructure:"error_color"`

	// Day themes keyed by day view id
	Themes map[string]planner.Theme `mapstructure:"themes"`
}

// Theme returns the gradient of a day, falling back to the built-in template
func (s Styles) Theme(day planner.ViewID) planner.Theme {
	if th, ok := s.Themes[string(day)]; ok && th.From != "" && th.To != "" {
		return th
	}
	tmpl, err := planner.NewGenerator().Template(string(day))
	if err != nil {
		return planner.Theme{From: s.AccentColor, To: s.AccentColor}
	}
	return tmpl.Theme
}

// Dir returns the default configuration directory
func Dir() (string, error) {
	return homedir.Expand(filepath.Join("~", ".config", "weekplan"))
}

// Load loads the application configuration from the specified path.
// Missing configuration and styles files are created with defaults.
func Load(configPath string) (Config, Styles, error) {
	configDir, err := Dir()
	if err != nil {
		return Config{}, Styles{}, err
	}

	if configPath == "" {
		configPath = filepath.Join(configDir, "config.json")
	} else {
		if configPath, err = homedir.Expand(configPath); err != nil {
			return Config{}, Styles{}, err
		}
		configDir = filepath.Dir(configPath)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("json")
	v.SetDefault("styles_file", filepath.Join(configDir, "styles.json"))
	v.SetDefault("keymap", keymaps.GetDefaultKeyMappings())
	v.SetDefault("start_view", string(planner.Overview))
	v.SetDefault("show_clock", true)
	v.SetDefault("clock_format", "Mon 15:04:05")
	v.SetDefault("results_driver", "sqlite3")
	v.SetDefault("results_dsn", filepath.Join(configDir, "results.db"))

	if err := readOrCreate(v, configPath); err != nil {
		return Config{}, Styles{}, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return config, Styles{}, err
	}

	if config.StylesFile, err = homedir.Expand(config.StylesFile); err != nil {
		return config, Styles{}, err
	}
	if !planner.ViewID(config.StartView).Valid() {
		return config, Styles{}, fmt.Errorf("invalid start_view %q", config.StartView)
	}

	styles, err := loadStyles(config.StylesFile)
	if err != nil {
		return config, styles, fmt.Errorf("error loading styles: %w", err)
	}

	return config, styles, nil
}

// DefaultStyles returns the built-in colors and day themes
func DefaultStyles() Styles {
	styles := Styles{
		BorderColor:       "240",
		AccentColor:       "205",
		NormalTextColor:   "86",
		SelectedTextColor: "229",
		SelectedBgColor:   "57",
		ErrorColor:        "9",
		Themes:            make(map[string]planner.Theme, len(planner.Days)),
	}
	gen := planner.NewGenerator()
	for _, day := range planner.Days {
		if tmpl, err := gen.Template(string(day)); err == nil {
			styles.Themes[string(day)] = tmpl.Theme
		}
	}
	return styles
}

// loadStyles loads the application styles from the specified path
func loadStyles(stylesPath string) (Styles, error) {
	defaults := DefaultStyles()

	v := viper.New()
	v.SetConfigFile(stylesPath)
	v.SetConfigType("json")
	v.SetDefault("border_color", defaults.BorderColor)
	v.SetDefault("accent_color", defaults.AccentColor)
	v.SetDefault("normal_text_color", defaults.NormalTextColor)
	v.SetDefault("selected_text_color", defaults.SelectedTextColor)
	v.SetDefault("selected_bg_color", defaults.SelectedBgColor)
	v.SetDefault("error_color", defaults.ErrorColor)
	themes := make(map[string]interface{}, len(defaults.Themes))
	for day, th := range defaults.Themes {
		themes[day] = map[string]interface{}{"from": th.From, "to": th.To}
	}
	v.SetDefault("themes", themes)

	if err := readOrCreate(v, stylesPath); err != nil {
		return defaults, err
	}

	var styles Styles
	if err := v.Unmarshal(&styles); err != nil {
		return defaults, err
	}
	return styles, nil
}

// readOrCreate reads the file behind v, writing the defaults first if it is missing
func readOrCreate(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}
		if err := v.WriteConfigAs(path); err != nil {
			return err
		}
	}
	return v.ReadInConfig()
}
