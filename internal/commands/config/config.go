package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/thomas-vilte/diffscribe/internal/config"
	"github.com/thomas-vilte/diffscribe/internal/i18n"
	"github.com/thomas-vilte/diffscribe/internal/ui"
	"github.com/urfave/cli/v3"
)

type ConfigCommandFactory struct{}

func NewConfigCommandFactory() *ConfigCommandFactory {
	return &ConfigCommandFactory{}
}

func (c *ConfigCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: t.GetMessage("config_command_usage", 0, nil),
		Commands: []*cli.Command{
			c.newShowCommand(t, cfg),
			c.newSetProviderCommand(t, cfg),
			c.newSetKeyCommand(t, cfg),
			c.newSetModelCommand(t, cfg),
			c.newSetLangCommand(t, cfg),
			c.newSetOllamaHostCommand(t, cfg),
		},
	}
}

// requireArgs fails with a translated message when command got fewer than n
// arguments.
func requireArgs(command *cli.Command, t *i18n.Translations, n int, usage string) error {
	if command.Args().Len() >= n {
		return nil
	}
	msg := t.GetMessage("error_missing_args", 0, struct {
		Count int
		Usage string
	}{n, usage})
	ui.PrintError(command.Root().ErrWriter, msg)
	return fmt.Errorf("%s", msg)
}

func parseProvider(w io.Writer, t *i18n.Translations, value string) (config.AI, error) {
	provider := config.AI(strings.ToLower(strings.TrimSpace(value)))
	if config.IsSupportedAI(provider) {
		return provider, nil
	}

	supported := make([]string, 0, len(config.SupportedAIs()))
	for _, ai := range config.SupportedAIs() {
		supported = append(supported, string(ai))
	}
	msg := t.GetMessage("error_invalid_provider", 0, struct {
		Provider  string
		Supported string
	}{value, strings.Join(supported, ", ")})
	ui.PrintError(w, msg)
	return "", fmt.Errorf("%s", msg)
}

func save(w io.Writer, t *i18n.Translations, cfg *config.Config) error {
	if err := config.SaveConfig(cfg); err != nil {
		ui.PrintError(w, t.GetMessage("error_saving_config", 0, nil))
		return err
	}
	ui.PrintSuccess(w, t.GetMessage("config_saved", 0, nil))
	return nil
}
