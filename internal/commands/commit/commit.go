package commit

import (
	"context"
	"fmt"
	"time"

	"github.com/thomas-vilte/diffscribe/internal/ai"
	"github.com/thomas-vilte/diffscribe/internal/commands/completion_helper"
	"github.com/thomas-vilte/diffscribe/internal/commands/handler"
	"github.com/thomas-vilte/diffscribe/internal/config"
	"github.com/thomas-vilte/diffscribe/internal/i18n"
	"github.com/thomas-vilte/diffscribe/internal/logger"
	"github.com/thomas-vilte/diffscribe/internal/ui"
	"github.com/urfave/cli/v3"
)

type CommitCommandFactory struct {
	summarizer handler.SummarizerProvider
	diffs      *handler.DiffLoader
	git        handler.GitService
}

func NewCommitCommandFactory(summarizer handler.SummarizerProvider, diffs *handler.DiffLoader, git handler.GitService) *CommitCommandFactory {
	return &CommitCommandFactory{
		summarizer: summarizer,
		diffs:      diffs,
		git:        git,
	}
}

func (f *CommitCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:          "commit",
		Aliases:       []string{"c"},
		Usage:         t.GetMessage("commit_command_usage", 0, nil),
		Flags:         f.createFlags(cfg, t),
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action:        f.createAction(cfg, t),
	}
}

func (f *CommitCommandFactory) createFlags(cfg *config.Config, t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "brief",
			Aliases: []string{"b"},
			Value:   cfg.UseBrief,
			Usage:   t.GetMessage("brief_flag_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:    "emoji",
			Aliases: []string{"e"},
			Value:   cfg.UseEmoji,
			Usage:   t.GetMessage("emoji_flag_usage", 0, nil),
		},
		&cli.StringFlag{
			Name:    "diff-file",
			Aliases: []string{"f"},
			Usage:   t.GetMessage("diff_file_flag_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:    "all",
			Aliases: []string{"a"},
			Usage:   t.GetMessage("all_flag_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "apply",
			Usage: t.GetMessage("apply_flag_usage", 0, nil),
		},
	}
}

func (f *CommitCommandFactory) createAction(cfg *config.Config, t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		log := logger.FromContext(ctx)
		out, errOut := command.Root().Writer, command.Root().ErrWriter

		opts := ai.StyleOptions{
			Brief: command.Bool("brief"),
			Emoji: command.Bool("emoji"),
		}
		apply := command.Bool("apply")

		log.Info("executing commit command",
			"brief", opts.Brief,
			"emoji", opts.Emoji,
			"provider", cfg.AIProvider,
			"apply", apply)

		diff, err := f.diffs.Load(ctx, command.String("diff-file"), command.Bool("all"))
		if err != nil {
			ui.HandleAppError(errOut, err, t)
			return err
		}

		summarizer, err := f.summarizer(ctx, cfg)
		if err != nil {
			ui.HandleAppError(errOut, err, t)
			return err
		}

		spinner := ui.NewSmartSpinner(errOut, t.GetMessage("generating_commit_message", 0, nil))
		spinner.Start()
		start := time.Now()

		msg, err := summarizer.Commit(ctx, diff, opts)
		duration := time.Since(start)
		if err != nil {
			log.Error("failed to generate commit message",
				"error", err,
				"duration_ms", duration.Milliseconds())
			spinner.Error(t.GetMessage("error_generating", 0, nil))
			ui.HandleAppError(errOut, err, t)
			return err
		}

		spinner.Stop()
		ui.PrintDuration(errOut, t.GetMessage("commit_message_ready", 0, nil), duration)
		_, _ = fmt.Fprintln(out, msg.String())

		if !apply {
			return nil
		}

		if err := f.git.CreateCommit(ctx, msg.String()); err != nil {
			ui.HandleAppError(errOut, err, t)
			return err
		}
		ui.PrintSuccess(errOut, t.GetMessage("commit_created", 0, nil))
		return nil
	}
}
