package config

import (
	"context"
	"strconv"

	"github.com/thomas-vilte/diffscribe/internal/config"
	"github.com/thomas-vilte/diffscribe/internal/i18n"
	"github.com/thomas-vilte/diffscribe/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config_show_usage", 0, nil),
		Action: func(_ context.Context, command *cli.Command) error {
			w := command.Root().Writer
			notSet := t.GetMessage("config_not_set", 0, nil)
			orNotSet := func(v string) string {
				if v == "" {
					return notSet
				}
				return v
			}

			ui.PrintSectionBanner(w, t.GetMessage("config_title", 0, nil))
			ui.PrintKeyValue(w, t.GetMessage("config_label_language", 0, nil), cfg.Language)
			ui.PrintKeyValue(w, t.GetMessage("config_label_provider", 0, nil), orNotSet(string(cfg.AIProvider)))
			ui.PrintKeyValue(w, t.GetMessage("config_label_model", 0, nil), orNotSet(string(cfg.ModelFor(cfg.AIProvider))))

			for _, ai := range config.SupportedAIs() {
				if !config.RequiresAPIKey(ai) {
					continue
				}
				key := cfg.APIKeyFor(ai)
				value := notSet
				if key != "" {
					value = ui.MaskSecret(key)
				}
				ui.PrintKeyValue(w, t.GetMessage("config_label_api_key", 0, struct{ Provider string }{string(ai)}), value)
			}

			host := cfg.OllamaHost
			if host == "" {
				host = config.DefaultOllamaHostURL
			}
			ui.PrintKeyValue(w, t.GetMessage("config_label_ollama_host", 0, nil), host)
			ui.PrintKeyValue(w, t.GetMessage("config_label_emoji", 0, nil), strconv.FormatBool(cfg.UseEmoji))
			ui.PrintKeyValue(w, t.GetMessage("config_label_brief", 0, nil), strconv.FormatBool(cfg.UseBrief))
			ui.PrintKeyValue(w, t.GetMessage("config_label_max_diff", 0, nil), strconv.Itoa(cfg.MaxDiffChars))
			ui.PrintKeyValue(w, t.GetMessage("config_label_path", 0, nil), orNotSet(cfg.PathFile))
			return nil
		},
	}
}
