package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/ogurasousui/codex-employee-directory/internal/adapters/storage"
	"github.com/ogurasousui/codex-employee-directory/internal/core/employee"
	"github.com/ogurasousui/codex-employee-directory/internal/core/i18n"
	"github.com/ogurasousui/codex-employee-directory/internal/platform/config"
	"github.com/ogurasousui/codex-employee-directory/internal/platform/logging"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	lang       string
}

// session は 1 回のコマンド実行で使うサービスと翻訳です。
type session struct {
	svc        *employee.Service
	translator *i18n.Translator
	close      func()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "directoryctl",
		Short:         "社員名簿をローカルのストレージに対して操作します",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file (defaults to CONFIG_PATH env or assets/local.yaml)")
	root.PersistentFlags().StringVar(&opts.lang, "lang", "", "message language (en or tr); defaults to i18n.default_language")

	root.AddCommand(
		newListCmd(opts),
		newGetCmd(opts),
		newAddCmd(opts),
		newUpdateCmd(opts),
		newDeleteCmd(opts),
	)
	return root
}

func openSession(ctx context.Context, opts *rootOptions, stderr io.Writer) (*session, error) {
	cfg, err := config.Load(config.EffectivePath(opts.configPath))
	if err != nil {
		return nil, err
	}
	logger := logging.New(cfg.Log, stderr)

	backend, err := storage.Open(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, err
	}

	lang := cfg.I18n.DefaultLanguage
	if opts.lang != "" {
		lang = opts.lang
	}
	translator, err := i18n.NewTranslator(i18n.Negotiate(lang), logger)
	if err != nil {
		_ = backend.Close()
		return nil, err
	}

	store := employee.NewStore(ctx, employee.NewKVPersister(backend, cfg.Storage.Key), employee.WithLogger(logger))
	return &session{
		svc:        employee.NewService(store),
		translator: translator,
		close: func() {
			if err := backend.Close(); err != nil {
				logger.Warn("failed to close storage", slog.Any("error", err))
			}
		},
	}, nil
}

// withSession は設定からセッションを開き、run の後で閉じます。
func withSession(opts *rootOptions, run func(cmd *cobra.Command, args []string, s *session) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context(), opts, cmd.ErrOrStderr())
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
			return err
		}
		defer s.close()

		if err := run(cmd, args, s); err != nil {
			s.report(cmd.ErrOrStderr(), err)
			return err
		}
		return nil
	}
}

// report はエラーを現在の言語で表示します。検証エラーはフィールドごとに 1 行です。
func (s *session) report(w io.Writer, err error) {
	var verr *employee.ValidationError
	switch {
	case errors.As(err, &verr):
		for _, field := range verr.Fields.Sorted() {
			label := s.translator.T("employeeForm." + field)
			fmt.Fprintf(w, "%s: %s\n", label, s.translator.T(verr.Fields[field].TranslationKey()))
		}
	case errors.Is(err, employee.ErrEmployeeNotFound):
		fmt.Fprintln(w, s.translator.T("messages.employeeNotFound"))
	default:
		fmt.Fprintf(w, "error: %v\n", err)
	}
}
