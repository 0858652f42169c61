// Package config loads the site profile and tuning knobs from YAML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"folio/internal/motion"
)

// Config is the full site configuration.
type Config struct {
	Profile Profile `yaml:"profile"`
	Motion  Motion  `yaml:"motion"`
	Email   Email   `yaml:"email"`
	Theme   string  `yaml:"theme"` // "dark" or "light"
	LogFile string  `yaml:"log_file"`
}

// Profile is the copy shown on the page.
type Profile struct {
	Name     string   `yaml:"name"`
	Initials string   `yaml:"initials"`
	Roles    []string `yaml:"roles"`
	Tagline  string   `yaml:"tagline"`
	Location string   `yaml:"location"`
	Resume   string   `yaml:"resume"`
	Socials  []Social `yaml:"socials"`
}

// Social is one outbound link.
type Social struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Motion tunes the animations.
type Motion struct {
	FPS        int                  `yaml:"fps"`
	MaxTiltDeg float64              `yaml:"max_tilt_deg"`
	Tilt       motion.SpringProfile `yaml:"tilt"`
	BobPeriod  time.Duration        `yaml:"bob_period"`
	BobRows    float64              `yaml:"bob_rows"`
	Breath     time.Duration        `yaml:"breath_period"`
	BreathGain float64              `yaml:"breath_gain"`
	HoverScale float64              `yaml:"hover_scale"`
	Dialog     time.Duration        `yaml:"dialog_transition"`
	Intro      bool                 `yaml:"intro"`
}

// Email configures the dispatch endpoint. An empty endpoint selects the
// offline echo dispatcher.
type Email struct {
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"timeout"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Profile: Profile{
			Name:     "Muhammad Hasib",
			Initials: "MH",
			Roles:    []string{"Software Engineer", "Problem Solver"},
			Tagline:  "Building thoughtful software and AI systems.",
			Location: "Dhaka, Bangladesh",
			Resume:   "assets/documents/Muhammad_Hasib_Resume.pdf",
			Socials: []Social{
				{Label: "GitHub", URL: "https://github.com/muhamadhasib"},
				{Label: "LinkedIn", URL: "https://www.linkedin.com/in/muhammadhasib/"},
				{Label: "Twitter", URL: "https://x.com/hasib_me_"},
				{Label: "Gmail", URL: "mailto:muhammadhasib.me@gmail.com"},
				{Label: "Location", URL: "https://maps.google.com/?q=Dhaka,Bangladesh"},
			},
		},
		Motion: Motion{
			FPS:        motion.DefaultFPS,
			MaxTiltDeg: 15,
			Tilt:       motion.SpringProfile{Stiffness: 80, Damping: 25},
			BobPeriod:  3 * time.Second,
			BobRows:    1,
			Breath:     4 * time.Second,
			BreathGain: 0.02,
			HoverScale: 1.05,
			Dialog:     300 * time.Millisecond,
			Intro:      true,
		},
		Email: Email{Timeout: 15 * time.Second},
		Theme: "dark",
	}
}

// Load reads path over the defaults, then applies environment overrides.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config %q: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %q: %w", path, err)
			}
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("FOLIO_EMAIL_ENDPOINT"); v != "" {
		c.Email.Endpoint = v
	}
	if v := os.Getenv("FOLIO_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv("FOLIO_THEME"); v != "" {
		c.Theme = v
	}
}

// Validate rejects settings the animations cannot run with.
func (c Config) Validate() error {
	m := c.Motion
	if m.FPS <= 0 {
		return fmt.Errorf("motion.fps must be positive, got %d", m.FPS)
	}
	if m.MaxTiltDeg <= 0 || m.MaxTiltDeg > 90 {
		return fmt.Errorf("motion.max_tilt_deg must be in (0, 90], got %g", m.MaxTiltDeg)
	}
	if m.Tilt.Stiffness <= 0 {
		return fmt.Errorf("motion.tilt.stiffness must be positive, got %g", m.Tilt.Stiffness)
	}
	if m.Tilt.Damping < 0 || m.Tilt.Mass < 0 {
		return fmt.Errorf("motion.tilt damping and mass must not be negative")
	}
	if c.Theme != "dark" && c.Theme != "light" {
		return fmt.Errorf("theme must be dark or light, got %q", c.Theme)
	}
	if c.Profile.Name == "" {
		return errors.New("profile.name is required")
	}
	return nil
}
