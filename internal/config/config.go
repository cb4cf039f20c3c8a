package config

import "time"

type Config struct {
	Toast ToastConfig `yaml:"toast"`
	Demo  DemoConfig  `yaml:"demo"`
	Log   LogConfig   `yaml:"log"`
}

// ToastConfig mirrors toast.Options. Durations are Go duration strings.
type ToastConfig struct {
	HideTimeout   time.Duration `yaml:"hide_timeout"`
	Stagger       time.Duration `yaml:"stagger"`
	SweepDelay    time.Duration `yaml:"sweep_delay"`
	HideGrace     time.Duration `yaml:"hide_grace"`
	Capacity      int           `yaml:"capacity"`
	BaseMargin    int           `yaml:"base_margin"`
	Width         int           `yaml:"width"`
	RenderEmpty   bool          `yaml:"render_empty"`
	ClickRestarts bool          `yaml:"click_restarts"`
}

type DemoConfig struct {
	MaxLength int `yaml:"max_length"`
}

type LogConfig struct {
	File   string `yaml:"file"`
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func NewConfig() *Config {
	return &Config{
		Toast: ToastConfig{
			HideTimeout:   4 * time.Second,
			Stagger:       100 * time.Millisecond,
			SweepDelay:    time.Second,
			HideGrace:     700 * time.Millisecond,
			Capacity:      3,
			BaseMargin:    1,
			Width:         44,
			RenderEmpty:   false,
			ClickRestarts: true,
		},
		Demo: DemoConfig{
			MaxLength: 120,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
