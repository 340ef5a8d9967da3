package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const FileName = "folio.yaml"

type Config struct {
	Dir     string `yaml:"-"`
	DBPath  string `yaml:"db_path"`
	LogPath string `yaml:"log_path"`

	Language      string `yaml:"language"`
	ReducedMotion bool   `yaml:"reduced_motion"`
	Mouse         bool   `yaml:"mouse"`
	CellWidthPx   int    `yaml:"cell_width_px"`
	CellHeightPx  int    `yaml:"cell_height_px"`
	CVPath        string `yaml:"cv_path"`

	Network   NetworkConfig   `yaml:"network"`
	EmailJS   EmailJSConfig   `yaml:"emailjs"`
	Analytics AnalyticsConfig `yaml:"analytics"`
}

type NetworkConfig struct {
	ProbeURL string        `yaml:"probe_url"`
	Interval time.Duration `yaml:"interval"`
	Timeout  time.Duration `yaml:"timeout"`
}

type EmailJSConfig struct {
	Endpoint      string        `yaml:"endpoint"`
	ServiceID     string        `yaml:"service_id"`
	TemplateID    string        `yaml:"template_id"`
	PublicKey     string        `yaml:"public_key"`
	RecipientName string        `yaml:"recipient_name"`
	Timeout       time.Duration `yaml:"timeout"`
}

type AnalyticsConfig struct {
	Endpoint      string `yaml:"endpoint"`
	MeasurementID string `yaml:"measurement_id"`
	APISecret     string `yaml:"api_secret"`
	QueueSize     int    `yaml:"queue_size"`
}

// Configured reports whether every EmailJS identifier is present.
func (c EmailJSConfig) Configured() bool {
	return c.ServiceID != "" && c.TemplateID != "" && c.PublicKey != ""
}

func (c AnalyticsConfig) Configured() bool {
	return c.MeasurementID != "" && c.APISecret != ""
}

func Default(dir string) Config {
	return Config{
		Dir:          dir,
		DBPath:       filepath.Join(".folio", "folio.db"),
		LogPath:      filepath.Join(".folio", "folio.log"),
		Mouse:        true,
		CellWidthPx:  8,
		CellHeightPx: 16,
		CVPath:       "cv.pdf",
		Network: NetworkConfig{
			ProbeURL: "https://www.gstatic.com/generate_204",
			Interval: 30 * time.Second,
			Timeout:  5 * time.Second,
		},
		EmailJS: EmailJSConfig{
			Endpoint:      "https://api.emailjs.com/api/v1.0/email/send",
			RecipientName: "Alejandro Seclen",
			Timeout:       10 * time.Second,
		},
		Analytics: AnalyticsConfig{
			Endpoint:  "https://www.google-analytics.com/mp/collect",
			QueueSize: 64,
		},
	}
}

// New loads <dir>/folio.yaml over the defaults and applies FOLIO_* overrides.
// A missing file is not an error. Relative paths resolve against dir.
func New(dir string) (Config, error) {
	if dir == "" {
		return Config{}, fmt.Errorf("config dir is required")
	}
	cfg := Default(dir)
	raw, err := os.ReadFile(filepath.Join(dir, FileName))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode %s: %w", FileName, err)
		}
	case os.IsNotExist(err):
	default:
		return Config{}, fmt.Errorf("read %s: %w", FileName, err)
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	cfg.resolvePaths()
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	str("FOLIO_LANGUAGE", &c.Language)
	str("FOLIO_DB_PATH", &c.DBPath)
	str("FOLIO_CV_PATH", &c.CVPath)
	str("FOLIO_PROBE_URL", &c.Network.ProbeURL)
	str("FOLIO_EMAILJS_SERVICE_ID", &c.EmailJS.ServiceID)
	str("FOLIO_EMAILJS_TEMPLATE_ID", &c.EmailJS.TemplateID)
	str("FOLIO_EMAILJS_PUBLIC_KEY", &c.EmailJS.PublicKey)
	str("FOLIO_GA_MEASUREMENT_ID", &c.Analytics.MeasurementID)
	str("FOLIO_GA_API_SECRET", &c.Analytics.APISecret)

	// Any value of the motion variables counts, as with NO_COLOR.
	for _, key := range []string{"FOLIO_REDUCED_MOTION", "NO_MOTION"} {
		if v, ok := lookup(key); ok {
			if b, err := strconv.ParseBool(v); err == nil {
				c.ReducedMotion = b
			} else {
				c.ReducedMotion = strings.TrimSpace(v) != ""
			}
		}
	}
	if v, ok := lookup("FOLIO_MOUSE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("FOLIO_MOUSE: %w", err)
		}
		c.Mouse = b
	}
	return nil
}

func (c *Config) resolvePaths() {
	for _, p := range []*string{&c.DBPath, &c.LogPath, &c.CVPath} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(c.Dir, *p)
		}
	}
}

func (c Config) validate() error {
	if c.CellWidthPx <= 0 || c.CellHeightPx <= 0 {
		return fmt.Errorf("cell size must be positive, got %dx%d", c.CellWidthPx, c.CellHeightPx)
	}
	if c.Network.Interval <= 0 {
		return fmt.Errorf("network.interval must be positive")
	}
	return nil
}
