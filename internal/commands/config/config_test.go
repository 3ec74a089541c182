package config

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/diffscribe/internal/config"
	"github.com/thomas-vilte/diffscribe/internal/i18n"
	"github.com/urfave/cli/v3"
)

type configTest struct {
	cfg          *config.Config
	translations *i18n.Translations
	out          *bytes.Buffer
	errOut       *bytes.Buffer
}

func setupConfigTest(t *testing.T) *configTest {
	t.Helper()

	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)

	translations, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	return &configTest{
		cfg:          cfg,
		translations: translations,
		out:          &bytes.Buffer{},
		errOut:       &bytes.Buffer{},
	}
}

func (ct *configTest) run(args ...string) error {
	app := &cli.Command{
		Name:      "diffscribe",
		Writer:    ct.out,
		ErrWriter: ct.errOut,
		Commands:  []*cli.Command{NewConfigCommandFactory().CreateCommand(ct.translations, ct.cfg)},
	}
	return app.Run(context.Background(), append([]string{"diffscribe", "config"}, args...))
}

func (ct *configTest) reload(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadConfig(ct.cfg.PathFile)
	require.NoError(t, err)
	return cfg
}

func TestShowCommand(t *testing.T) {
	t.Run("should display configuration with API key set", func(t *testing.T) {
		ct := setupConfigTest(t)
		ct.cfg.SetAPIKey(config.AIGemini, "secret-gemini-key")

		err := ct.run("show")

		require.NoError(t, err)
		output := ct.out.String()
		assert.Contains(t, output, "gemini")
		assert.Contains(t, output, "gemini-2.5-flash")
		assert.Contains(t, output, "*************-key")
		assert.NotContains(t, output, "secret-gemini-key")
		assert.Contains(t, output, config.DefaultOllamaHostURL)
		assert.Contains(t, output, "20000")
	})

	t.Run("should display configuration without API key set", func(t *testing.T) {
		ct := setupConfigTest(t)

		err := ct.run("show")

		require.NoError(t, err)
		assert.Contains(t, ct.out.String(), "not set")
	})
}

func TestSetProviderCommand(t *testing.T) {
	t.Run("should save a supported provider", func(t *testing.T) {
		ct := setupConfigTest(t)

		err := ct.run("set-provider", "Anthropic")

		require.NoError(t, err)
		assert.Equal(t, config.AIAnthropic, ct.reload(t).AIProvider)
	})

	t.Run("should reject an unknown provider", func(t *testing.T) {
		ct := setupConfigTest(t)

		err := ct.run("set-provider", "cohere")

		assert.ErrorContains(t, err, "Unsupported provider 'cohere'")
		assert.Equal(t, config.AIGemini, ct.reload(t).AIProvider)
	})

	t.Run("should require the provider argument", func(t *testing.T) {
		ct := setupConfigTest(t)

		err := ct.run("set-provider")

		assert.ErrorContains(t, err, "Expected 1 argument(s)")
	})
}

func TestSetKeyCommand(t *testing.T) {
	ct := setupConfigTest(t)

	err := ct.run("set-key", "openai", " sk-test ")

	require.NoError(t, err)
	assert.Equal(t, "sk-test", ct.reload(t).APIKeyFor(config.AIOpenAI))

	err = ct.run("set-key", "openai")
	assert.ErrorContains(t, err, "Expected 2 argument(s)")
}

func TestSetModelCommand(t *testing.T) {
	t.Run("should save a known model", func(t *testing.T) {
		ct := setupConfigTest(t)

		err := ct.run("set-model", "ollama", "qwen2.5-coder")

		require.NoError(t, err)
		assert.Equal(t, config.ModelOllamaQwen25, ct.reload(t).ModelFor(config.AIOllama))
		assert.NotContains(t, ct.errOut.String(), "not a known")
	})

	t.Run("should warn about an unknown model but save it", func(t *testing.T) {
		ct := setupConfigTest(t)

		err := ct.run("set-model", "ollama", "phi4:latest")

		require.NoError(t, err)
		assert.Equal(t, config.Model("phi4:latest"), ct.reload(t).ModelFor(config.AIOllama))
		assert.Contains(t, ct.errOut.String(), "not a known ollama model")
	})
}

func TestSetLangCommand(t *testing.T) {
	t.Run("should switch language", func(t *testing.T) {
		ct := setupConfigTest(t)

		err := ct.run("set-lang", "es")

		require.NoError(t, err)
		assert.Equal(t, "es", ct.reload(t).Language)
		assert.Contains(t, ct.errOut.String(), "Configuración guardada")
	})

	t.Run("should reject an unsupported language", func(t *testing.T) {
		ct := setupConfigTest(t)

		err := ct.run("set-lang", "fr")

		assert.ErrorContains(t, err, "Unsupported language 'fr'")
		assert.Equal(t, "en", ct.reload(t).Language)
	})
}

func TestSetOllamaHostCommand(t *testing.T) {
	ct := setupConfigTest(t)

	err := ct.run("set-ollama-host", "http://gpu-box:11434/")

	require.NoError(t, err)
	assert.Equal(t, "http://gpu-box:11434", ct.reload(t).OllamaHost)

	err = ct.run("set-ollama-host", "gpu-box")
	assert.Error(t, err)
}
