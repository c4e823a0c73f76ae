package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type EditorOptions struct {
	Prompt          string `toml:"prompt"`
	Marker          string `toml:"marker"`
	SystemClipboard bool   `toml:"system-clipboard"`
	HistorySize     int    `toml:"history-size"`
}

type Theme struct {
	Theme            string `toml:"theme"`
	Foreground       string `toml:"foreground"`
	Background       string `toml:"background"`
	CursorForeground string `toml:"cursor-foreground"`
	CursorBackground string `toml:"cursor-background"`
	MarkerForeground string `toml:"marker-foreground"`
	PromptForeground string `toml:"prompt-foreground"`
	StatusForeground string `toml:"status-foreground"`
	StatusBackground string `toml:"status-background"`
	HelpForeground   string `toml:"help-foreground"`
	HelpBackground   string `toml:"help-background"`
}

type Config struct {
	Editor EditorOptions `toml:"editor"`
	Theme  Theme         `toml:"theme"`
	// Aliases maps extra input words onto command tokens.
	Aliases map[string]string `toml:"aliases"`
}

func Default() Config {
	return Config{
		Editor: EditorOptions{
			Prompt:          ">",
			Marker:          "*",
			SystemClipboard: false,
			HistorySize:     100,
		},
		Theme: Theme{
			Theme:            "",
			Foreground:       "#B3B1AD",
			Background:       "#0A0E14",
			CursorForeground: "#0A0E14",
			CursorBackground: "#7FD962",
			MarkerForeground: "#E6B450",
			PromptForeground: "#59C2FF",
			StatusForeground: "#B3B1AD",
			StatusBackground: "#0F1419",
			HelpForeground:   "#B3B1AD",
			HelpBackground:   "#0F1419",
		},
		Aliases: map[string]string{},
	}
}

func Load() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var userCfg Config
	if _, err := toml.Decode(string(data), &userCfg); err != nil {
		return cfg, err
	}

	if userCfg.Editor.Prompt != "" {
		cfg.Editor.Prompt = userCfg.Editor.Prompt
	}
	if userCfg.Editor.Marker != "" {
		cfg.Editor.Marker = userCfg.Editor.Marker
	}
	if userCfg.Editor.SystemClipboard {
		cfg.Editor.SystemClipboard = userCfg.Editor.SystemClipboard
	}
	if userCfg.Editor.HistorySize > 0 {
		cfg.Editor.HistorySize = userCfg.Editor.HistorySize
	}
	if userCfg.Theme.Theme != "" {
		cfg.Theme.Theme = userCfg.Theme.Theme
	}
	if cfg.Theme.Theme != "" {
		theme, err := LoadTheme(cfg.Theme.Theme)
		if err != nil {
			return cfg, err
		}
		mergeTheme(&cfg.Theme, theme)
	}
	mergeTheme(&cfg.Theme, userCfg.Theme)
	for k, v := range userCfg.Aliases {
		cfg.Aliases[k] = v
	}

	return cfg, nil
}

func mergeTheme(dst *Theme, src Theme) {
	if src.Foreground != "" {
		dst.Foreground = src.Foreground
	}
	if src.Background != "" {
		dst.Background = src.Background
	}
	if src.CursorForeground != "" {
		dst.CursorForeground = src.CursorForeground
	}
	if src.CursorBackground != "" {
		dst.CursorBackground = src.CursorBackground
	}
	if src.MarkerForeground != "" {
		dst.MarkerForeground = src.MarkerForeground
	}
	if src.PromptForeground != "" {
		dst.PromptForeground = src.PromptForeground
	}
	if src.StatusForeground != "" {
		dst.StatusForeground = src.StatusForeground
	}
	if src.StatusBackground != "" {
		dst.StatusBackground = src.StatusBackground
	}
	if src.HelpForeground != "" {
		dst.HelpForeground = src.HelpForeground
	}
	if src.HelpBackground != "" {
		dst.HelpBackground = src.HelpBackground
	}
}

func ThemePath(name string) (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "theme", name+".toml"), nil
}

func LoadTheme(name string) (Theme, error) {
	path, err := ThemePath(name)
	if err != nil {
		return Theme{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, err
	}
	var t Theme
	if _, err := toml.Decode(string(data), &t); err == nil {
		return t, nil
	}
	var wrap struct {
		Theme Theme `toml:"theme"`
	}
	if _, err := toml.Decode(string(data), &wrap); err != nil {
		return Theme{}, err
	}
	return wrap.Theme, nil
}

func ConfigDir() (string, error) {
	if v := os.Getenv("QLINE_CONFIG_HOME"); v != "" {
		return filepath.Join(v), nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "qline"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "qline"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
