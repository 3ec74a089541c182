package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

type Config struct {
	Language     string        `json:"language"`
	AIProvider   AI            `json:"ai_provider"`
	Models       map[AI]Model  `json:"models,omitempty"`
	APIKeys      map[AI]string `json:"api_keys,omitempty"`
	OllamaHost   string        `json:"ollama_host,omitempty"`
	UseEmoji     bool          `json:"use_emoji"`
	UseBrief     bool          `json:"use_brief"`
	MaxDiffChars int           `json:"max_diff_chars"`
	PathFile     string        `json:"path_file"`
}

const (
	defaultLang         = LangEN
	defaultAIProvider   = AIGemini
	defaultUseEmoji     = false
	defaultUseBrief     = false
	defaultMaxDiffChars = 20000

	configDirName  = ".diffscribe"
	configFileName = "config.json"
)

// LoadConfig reads the configuration from path. path is either a .json file
// or a directory (usually the home directory) that holds .diffscribe/config.json.
// A default configuration is written when the file does not exist yet.
func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		configDir := filepath.Join(path, configDirName)
		configPath = filepath.Join(configDir, configFileName)

		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return nil, fmt.Errorf("error creating config directory: %w", err)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	config.PathFile = configPath
	if config.MaxDiffChars <= 0 {
		config.MaxDiffChars = defaultMaxDiffChars
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("loaded configuration is not valid: %w", err)
	}

	return &config, nil
}

func createDefaultConfig(path string) (*Config, error) {
	config := &Config{
		Language:     defaultLang,
		AIProvider:   defaultAIProvider,
		Models:       map[AI]Model{defaultAIProvider: DefaultModelForAI(defaultAIProvider)},
		APIKeys:      map[AI]string{},
		OllamaHost:   DefaultOllamaHostURL,
		UseEmoji:     defaultUseEmoji,
		UseBrief:     defaultUseBrief,
		MaxDiffChars: defaultMaxDiffChars,
		PathFile:     path,
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error encoding default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return nil, fmt.Errorf("error saving default config: %w", err)
	}

	return config, nil
}

func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration to save is not valid: %w", err)
	}

	if config.PathFile == "" {
		return errors.New("config file path is not defined")
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0600); err != nil {
		return fmt.Errorf("error saving config: %w", err)
	}

	return nil
}

// ModelFor returns the configured model of ai, or its default model.
func (c *Config) ModelFor(ai AI) Model {
	if m, ok := c.Models[ai]; ok && m != "" {
		return m
	}
	return DefaultModelForAI(ai)
}

// APIKeyFor returns the API key configured for ai.
func (c *Config) APIKeyFor(ai AI) string {
	return c.APIKeys[ai]
}

// SetAPIKey stores key for ai.
func (c *Config) SetAPIKey(ai AI, key string) {
	if c.APIKeys == nil {
		c.APIKeys = make(map[AI]string)
	}
	c.APIKeys[ai] = key
}

// SetModel stores model for ai.
func (c *Config) SetModel(ai AI, model Model) {
	if c.Models == nil {
		c.Models = make(map[AI]Model)
	}
	c.Models[ai] = model
}

func validateConfig(config *Config) error {
	if config.MaxDiffChars <= 0 {
		return errors.New("max_diff_chars must be greater than 0")
	}
	if config.Language == "" {
		return errors.New("language cannot be empty")
	}
	if config.AIProvider != "" && !IsSupportedAI(config.AIProvider) {
		return fmt.Errorf("unsupported AI provider: %s", config.AIProvider)
	}
	return nil
}
