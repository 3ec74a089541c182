package branch

import (
	"context"
	"fmt"
	"time"

	"github.com/thomas-vilte/diffscribe/internal/commands/completion_helper"
	"github.com/thomas-vilte/diffscribe/internal/commands/handler"
	"github.com/thomas-vilte/diffscribe/internal/config"
	"github.com/thomas-vilte/diffscribe/internal/i18n"
	"github.com/thomas-vilte/diffscribe/internal/logger"
	"github.com/thomas-vilte/diffscribe/internal/ui"
	"github.com/urfave/cli/v3"
)

type BranchCommandFactory struct {
	summarizer handler.SummarizerProvider
	diffs      *handler.DiffLoader
	git        handler.GitService
}

func NewBranchCommandFactory(summarizer handler.SummarizerProvider, diffs *handler.DiffLoader, git handler.GitService) *BranchCommandFactory {
	return &BranchCommandFactory{
		summarizer: summarizer,
		diffs:      diffs,
		git:        git,
	}
}

func (f *BranchCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:          "branch",
		Aliases:       []string{"b"},
		Usage:         t.GetMessage("branch_command_usage", 0, nil),
		Flags:         f.createFlags(t),
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action:        f.createAction(cfg, t),
	}
}

func (f *BranchCommandFactory) createFlags(t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
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
			Name:  "create",
			Usage: t.GetMessage("create_flag_usage", 0, nil),
		},
	}
}

func (f *BranchCommandFactory) createAction(cfg *config.Config, t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		log := logger.FromContext(ctx)
		out, errOut := command.Root().Writer, command.Root().ErrWriter
		create := command.Bool("create")

		log.Info("executing branch command",
			"provider", cfg.AIProvider,
			"create", create)

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

		spinner := ui.NewSmartSpinner(errOut, t.GetMessage("generating_branch_name", 0, nil))
		spinner.Start()
		start := time.Now()

		name, err := summarizer.Branch(ctx, diff)
		duration := time.Since(start)
		if err != nil {
			log.Error("failed to generate branch name",
				"error", err,
				"duration_ms", duration.Milliseconds())
			spinner.Error(t.GetMessage("error_generating", 0, nil))
			ui.HandleAppError(errOut, err, t)
			return err
		}

		spinner.Stop()
		ui.PrintDuration(errOut, t.GetMessage("branch_name_ready", 0, nil), duration)
		_, _ = fmt.Fprintln(out, name)

		if !create {
			return nil
		}

		if err := f.git.CreateBranch(ctx, name); err != nil {
			ui.HandleAppError(errOut, err, t)
			return err
		}
		ui.PrintSuccess(errOut, t.GetMessage("branch_created", 0, struct{ Branch string }{name}))
		return nil
	}
}
