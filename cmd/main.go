package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/thomas-vilte/diffscribe/internal/ai"
	"github.com/thomas-vilte/diffscribe/internal/ai/anthropic"
	"github.com/thomas-vilte/diffscribe/internal/ai/gemini"
	"github.com/thomas-vilte/diffscribe/internal/ai/ollama"
	"github.com/thomas-vilte/diffscribe/internal/ai/openai"
	"github.com/thomas-vilte/diffscribe/internal/commands/branch"
	"github.com/thomas-vilte/diffscribe/internal/commands/commit"
	"github.com/thomas-vilte/diffscribe/internal/commands/config"
	"github.com/thomas-vilte/diffscribe/internal/commands/handler"
	"github.com/thomas-vilte/diffscribe/internal/commands/registry"
	cfg "github.com/thomas-vilte/diffscribe/internal/config"
	"github.com/thomas-vilte/diffscribe/internal/di"
	"github.com/thomas-vilte/diffscribe/internal/git"
	"github.com/thomas-vilte/diffscribe/internal/i18n"
	"github.com/thomas-vilte/diffscribe/internal/logger"
	"github.com/thomas-vilte/diffscribe/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "could not get the user home directory: %v\n", err)
		os.Exit(1)
	}

	app, err := initializeApp(homeDir, git.NewGitService())
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error starting diffscribe: %v\n", err)
		os.Exit(1)
	}

	// commands print their own errors
	if err := app.Run(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
}

func initializeApp(homeDir string, gitService handler.GitService) (*cli.Command, error) {
	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return nil, fmt.Errorf("error loading translations: %w", err)
	}

	container := di.NewContainer(cfgApp, translations)
	for _, factory := range []ai.ProviderFactory{
		gemini.NewFactory(),
		anthropic.NewFactory(),
		openai.NewFactory(),
		ollama.NewFactory(),
	} {
		if err := container.RegisterAIProvider(factory); err != nil {
			return nil, err
		}
	}
	container.SetGitService(gitService)

	summarizerProvider := container.SummarizerProvider()
	diffs := handler.NewDiffLoader(gitService, os.Stdin)

	registerCommand := registry.NewRegistry(cfgApp, translations)
	if err := registerCommand.Register("commit", commit.NewCommitCommandFactory(summarizerProvider, diffs, gitService)); err != nil {
		return nil, err
	}
	if err := registerCommand.Register("branch", branch.NewBranchCommandFactory(summarizerProvider, diffs, gitService)); err != nil {
		return nil, err
	}
	if err := registerCommand.Register("config", config.NewConfigCommandFactory()); err != nil {
		return nil, err
	}

	commands := registerCommand.CreateCommands()
	withLogging(commands)

	return &cli.Command{
		Name:        "diffscribe",
		Usage:       translations.GetMessage("app_usage", 0, nil),
		Version:     version.FullVersion(),
		Description: translations.GetMessage("app_description", 0, nil),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: translations.GetMessage("debug_flag_usage", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: translations.GetMessage("verbose_flag_usage", 0, nil),
			},
		},
		Commands:              commands,
		EnableShellCompletion: true,
	}, nil
}

// withLogging installs the logger selected by --debug/--verbose before every
// command action runs.
func withLogging(commands []*cli.Command) {
	for _, command := range commands {
		withLogging(command.Commands)
		if command.Action == nil {
			continue
		}
		action := command.Action
		command.Action = func(ctx context.Context, c *cli.Command) error {
			logger.Initialize(c.Bool("debug"), c.Bool("verbose"))
			ctx = logger.WithLogger(ctx, slog.Default())
			return action(ctx, c)
		}
	}
}
