package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/diffscribe/internal/config"
	"github.com/thomas-vilte/diffscribe/internal/i18n"
	"github.com/urfave/cli/v3"
)

type mockCommandFactory struct {
	name string
}

func (m *mockCommandFactory) CreateCommand(_ *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name: m.name,
	}
}

func newTestRegistry(t *testing.T) *Registry {
	translations, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)
	return NewRegistry(&config.Config{}, translations)
}

func TestRegistry_Register(t *testing.T) {
	t.Run("should register new factory successfully", func(t *testing.T) {
		registry := newTestRegistry(t)

		err := registry.Register("test-command", &mockCommandFactory{name: "test-command"})

		assert.NoError(t, err)
		assert.Len(t, registry.factories, 1)
		assert.Contains(t, registry.factories, "test-command")
	})

	t.Run("should return error when registering duplicate factory", func(t *testing.T) {
		registry := newTestRegistry(t)
		factory := &mockCommandFactory{name: "test-command"}

		_ = registry.Register("test-command", factory)
		err := registry.Register("test-command", factory)

		assert.EqualError(t, err, "Command 'test-command' is already registered")
		assert.Len(t, registry.factories, 1)
	})
}

func TestRegistry_CreateCommands(t *testing.T) {
	registry := newTestRegistry(t)

	require.NoError(t, registry.Register("commit", &mockCommandFactory{name: "commit"}))
	require.NoError(t, registry.Register("branch", &mockCommandFactory{name: "branch"}))
	require.NoError(t, registry.Register("config", &mockCommandFactory{name: "config"}))

	commands := registry.CreateCommands()

	require.Len(t, commands, 3)
	assert.Equal(t, "commit", commands[0].Name)
	assert.Equal(t, "branch", commands[1].Name)
	assert.Equal(t, "config", commands[2].Name)
}
