package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "flowdo.db"
	DefaultLogName        = "flowdo.log"
)

type Keymap struct {
	Quit        string `toml:"quit"`
	Add         string `toml:"add"`
	Up          string `toml:"up"`
	Down        string `toml:"down"`
	Toggle      string `toml:"toggle"`
	Delete      string `toml:"delete"`
	Subtask     string `toml:"subtask"`
	NewList     string `toml:"new_list"`
	DeleteList  string `toml:"delete_list"`
	NextList    string `toml:"next_list"`
	PrevList    string `toml:"prev_list"`
	CycleFilter string `toml:"cycle_filter"`
	Theme       string `toml:"theme"`
	Confirm     string `toml:"confirm"`
	Cancel      string `toml:"cancel"`
}

type Config struct {
	DBPath               string `toml:"db_path"`
	LogPath              string `toml:"log_path"`
	DefaultFilter        string `toml:"default_filter"`
	ReminderIntervalMins int    `toml:"reminder_interval_minutes"`
	DesktopNotifications bool   `toml:"desktop_notifications"`
	Keys                 Keymap `toml:"keys"`
}

// ResolveConfigPath prefers the user config directory, falling back to
// the working directory when it cannot be determined.
func ResolveConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, "flowdo", DefaultConfigFileName)
}

func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBName
	}
	if cfg.LogPath == "" {
		cfg.LogPath = DefaultLogName
	}
	if cfg.ReminderIntervalMins <= 0 {
		cfg.ReminderIntervalMins = 60
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig() Config {
	return Config{
		DBPath:               DefaultDBName,
		LogPath:              DefaultLogName,
		DefaultFilter:        "all",
		ReminderIntervalMins: 60,
		DesktopNotifications: true,
		Keys: Keymap{
			Quit:        "q",
			Add:         "a",
			Up:          "k",
			Down:        "j",
			Toggle:      " ",
			Delete:      "d",
			Subtask:     "s",
			NewList:     "n",
			DeleteList:  "D",
			NextList:    "l",
			PrevList:    "h",
			CycleFilter: "f",
			Theme:       "t",
			Confirm:     "enter",
			Cancel:      "esc",
		},
	}
}
