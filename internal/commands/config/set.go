package config

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/thomas-vilte/diffscribe/internal/config"
	"github.com/thomas-vilte/diffscribe/internal/i18n"
	"github.com/thomas-vilte/diffscribe/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetProviderCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-provider",
		Usage:     t.GetMessage("config_set_provider_usage", 0, nil),
		ArgsUsage: "<provider>",
		Action: func(_ context.Context, command *cli.Command) error {
			if err := requireArgs(command, t, 1, "set-provider <provider>"); err != nil {
				return err
			}
			w := command.Root().ErrWriter

			provider, err := parseProvider(w, t, command.Args().Get(0))
			if err != nil {
				return err
			}

			cfg.AIProvider = provider
			return save(w, t, cfg)
		},
	}
}

func (c *ConfigCommandFactory) newSetKeyCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-key",
		Usage:     t.GetMessage("config_set_key_usage", 0, nil),
		ArgsUsage: "<provider> <api-key>",
		Action: func(_ context.Context, command *cli.Command) error {
			if err := requireArgs(command, t, 2, "set-key <provider> <api-key>"); err != nil {
				return err
			}
			w := command.Root().ErrWriter

			provider, err := parseProvider(w, t, command.Args().Get(0))
			if err != nil {
				return err
			}

			cfg.SetAPIKey(provider, strings.TrimSpace(command.Args().Get(1)))
			return save(w, t, cfg)
		},
	}
}

func (c *ConfigCommandFactory) newSetModelCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-model",
		Usage:     t.GetMessage("config_set_model_usage", 0, nil),
		ArgsUsage: "<provider> <model>",
		Action: func(_ context.Context, command *cli.Command) error {
			if err := requireArgs(command, t, 2, "set-model <provider> <model>"); err != nil {
				return err
			}
			w := command.Root().ErrWriter

			provider, err := parseProvider(w, t, command.Args().Get(0))
			if err != nil {
				return err
			}

			model := config.Model(strings.TrimSpace(command.Args().Get(1)))
			if !slices.Contains(config.ModelsForAI(provider), model) {
				ui.PrintWarning(w, t.GetMessage("warning_unknown_model", 0, struct {
					Model    string
					Provider string
				}{string(model), string(provider)}))
			}

			cfg.SetModel(provider, model)
			return save(w, t, cfg)
		},
	}
}

func (c *ConfigCommandFactory) newSetLangCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-lang",
		Usage:     t.GetMessage("config_set_lang_usage", 0, nil),
		ArgsUsage: "<lang>",
		Action: func(_ context.Context, command *cli.Command) error {
			if err := requireArgs(command, t, 1, "set-lang <lang>"); err != nil {
				return err
			}
			w := command.Root().ErrWriter

			lang := strings.ToLower(strings.TrimSpace(command.Args().Get(0)))
			if !slices.Contains(config.SupportedLanguages(), lang) {
				msg := t.GetMessage("error_invalid_language", 0, struct{ Language string }{lang})
				ui.PrintError(w, msg)
				return fmt.Errorf("%s", msg)
			}

			cfg.Language = lang
			if err := t.SetLanguage(lang); err != nil {
				return err
			}
			return save(w, t, cfg)
		},
	}
}

func (c *ConfigCommandFactory) newSetOllamaHostCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-ollama-host",
		Usage:     t.GetMessage("config_set_ollama_host_usage", 0, nil),
		ArgsUsage: "<url>",
		Action: func(_ context.Context, command *cli.Command) error {
			if err := requireArgs(command, t, 1, "set-ollama-host <url>"); err != nil {
				return err
			}
			w := command.Root().ErrWriter

			host := strings.TrimRight(strings.TrimSpace(command.Args().Get(0)), "/")
			parsed, err := url.Parse(host)
			if err != nil || parsed.Scheme == "" || parsed.Host == "" {
				msg := fmt.Sprintf("invalid URL: %s", host)
				ui.PrintError(w, msg)
				return fmt.Errorf("%s", msg)
			}

			cfg.OllamaHost = host
			return save(w, t, cfg)
		},
	}
}
