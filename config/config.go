package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultEndpoint points at a locally running whisper-fastapi server.
const DefaultEndpoint = "http://127.0.0.1:5000/v1/audio/transcriptions"

type Config struct {
	Endpoint    string
	Token       string
	Language    string // optional language code forwarded to the server
	GPTRefine   bool   // ask the server to LLM-refine the transcript
	StateDir    string // holds the session lock and the audio artifact
	InputDevice string // capture device override; empty means platform default

	Notifications  bool
	Paste          bool // simulate the paste chord after delivery
	RequestTimeout int  // seconds, 0 disables the upload timeout
	EnableHTTP2    bool
	VerifySSL      bool
}

type fileConfig struct {
	Endpoint       string `toml:"endpoint"`
	Token          string `toml:"token"`
	Language       string `toml:"language"`
	GPTRefine      *bool  `toml:"gpt_refine"`
	StateDir       string `toml:"state_dir"`
	InputDevice    string `toml:"input_device"`
	Notifications  *bool  `toml:"notifications"`
	Paste          *bool  `toml:"paste"`
	RequestTimeout *int   `toml:"request_timeout"`
	EnableHTTP2    *bool  `toml:"enable_http2"`
	VerifySSL      *bool  `toml:"verify_ssl"`
}

func Load() (*Config, error) {
	cfg := &Config{
		Endpoint:       DefaultEndpoint,
		GPTRefine:      true,
		StateDir:       filepath.Join(os.TempDir(), "dictate"),
		Notifications:  true,
		RequestTimeout: 120,
		VerifySSL:      true,
	}

	if configPath := configFilePath(); configPath != "" {
		var fc fileConfig
		if _, err := toml.DecodeFile(configPath, &fc); err == nil {
			if fc.Endpoint != "" {
				cfg.Endpoint = fc.Endpoint
			}
			cfg.Token = fc.Token
			cfg.Language = fc.Language
			if fc.GPTRefine != nil {
				cfg.GPTRefine = *fc.GPTRefine
			}
			if fc.StateDir != "" {
				cfg.StateDir = expandTilde(fc.StateDir)
			}
			cfg.InputDevice = fc.InputDevice
			if fc.Notifications != nil {
				cfg.Notifications = *fc.Notifications
			}
			if fc.Paste != nil {
				cfg.Paste = *fc.Paste
			}
			if fc.RequestTimeout != nil {
				cfg.RequestTimeout = *fc.RequestTimeout
			}
			if fc.EnableHTTP2 != nil {
				cfg.EnableHTTP2 = *fc.EnableHTTP2
			}
			if fc.VerifySSL != nil {
				cfg.VerifySSL = *fc.VerifySSL
			}
		}
	}

	applyEnvOverrides(cfg)

	// Ensure the state directory exists
	if err := os.MkdirAll(cfg.StateDir, 0o755); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DICTATE_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("DICTATE_TOKEN"); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv("DICTATE_LANGUAGE"); v != "" {
		cfg.Language = v
	}
	if v := os.Getenv("DICTATE_GPT_REFINE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.GPTRefine = b
		}
	}
	if v := os.Getenv("DICTATE_STATE_DIR"); v != "" {
		cfg.StateDir = expandTilde(v)
	}
	if v := os.Getenv("DICTATE_INPUT_DEVICE"); v != "" {
		cfg.InputDevice = v
	}
}

func configFilePath() string {
	var configDir string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		configDir = filepath.Join(xdg, "dictate")
	} else if home, err := os.UserHomeDir(); err == nil {
		configDir = filepath.Join(home, ".config", "dictate")
	} else {
		return ""
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
