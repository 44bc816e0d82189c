// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app drives a single cryptfile invocation: it resolves the
// password, then feeds every target from the command line through the crypt
// service sequentially, reporting per-target progress on stdout.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/cryptfile/internal/config"
	"github.com/MKhiriev/cryptfile/internal/logger"
	"github.com/MKhiriev/cryptfile/internal/service"
	"github.com/MKhiriev/cryptfile/internal/store"
	"github.com/MKhiriev/cryptfile/models"
)

// ErrSomeTargetsFailed reports that at least one target failed while others
// may have completed. Per-target errors are printed as they happen; this
// sentinel only drives the process exit code.
var ErrSomeTargetsFailed = errors.New("some targets failed")

// PasswordPrompter asks the user for a password interactively. Implemented
// by [tui.TUI].
type PasswordPrompter interface {
	PromptPassword(title string, confirm bool) (string, error)
}

type App struct {
	cfg     *config.Config
	service service.CryptService
	prompt  PasswordPrompter
	journal store.JournalRepository // nil when no journal is configured
	logger  *logger.Logger
}

func NewApp(cfg *config.Config, svc service.CryptService, prompt PasswordPrompter, journal store.JournalRepository, log *logger.Logger) (*App, error) {
	if cfg == nil || svc == nil || prompt == nil {
		return nil, errors.New("app: nil dependency")
	}
	return &App{cfg: cfg, service: svc, prompt: prompt, journal: journal, logger: log}, nil
}

// Run processes every configured target in order. A failing target does not
// stop the remaining ones; the aggregate outcome is reported through
// [ErrSomeTargetsFailed].
func (a *App) Run(ctx context.Context) error {
	if a.cfg.Run.History > 0 {
		return a.printHistory(ctx, a.cfg.Run.History)
	}

	password, err := a.resolvePassword()
	if err != nil {
		return err
	}

	run := a.cfg.Run
	failed := 0
	for _, path := range run.Targets {
		req := models.Request{
			Mode:           run.Mode,
			Target:         models.Target{Kind: targetKind(run), Path: path},
			Compress:       run.Compress,
			RemoveOriginal: run.Remove,
			Password:       password,
		}

		fmt.Printf("%s [ %s ] ... ", actionLabel(run.Mode), path)

		result, err := a.service.Run(ctx, req)
		if err != nil {
			failed++
			fmt.Printf("Failed: %s\n", humanizeError(err))
			a.logger.Err(err).Str("target", path).Msg("operation failed")
			continue
		}

		fmt.Printf("Completed -> %s\n", result.OutputPath)
		if run.Remove && !result.OriginalRemoved {
			fmt.Fprintf(os.Stderr, "warning: could not remove original %s\n", path)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrSomeTargetsFailed, failed, len(run.Targets))
	}
	return nil
}

// resolvePassword prefers the configured non-interactive password and falls
// back to the prompt. Encryption asks for the password twice: a typo there
// produces a container nobody can open.
func (a *App) resolvePassword() (string, error) {
	if a.cfg.App.Password != "" {
		return a.cfg.App.Password, nil
	}

	confirm := a.cfg.Run.Mode == models.ModeEncrypt
	title := "DECRYPTION PASSWORD"
	if confirm {
		title = "ENCRYPTION PASSWORD"
	}

	password, err := a.prompt.PromptPassword(title, confirm)
	if err != nil {
		return "", fmt.Errorf("prompt password: %w", err)
	}
	return password, nil
}

// printHistory lists the most recent journal entries, newest first.
func (a *App) printHistory(ctx context.Context, limit uint64) error {
	if a.journal == nil {
		return errors.New("history requested but no journal configured")
	}

	records, err := a.journal.ListOperations(ctx, limit)
	if err != nil {
		return fmt.Errorf("list journal: %w", err)
	}
	if len(records) == 0 {
		fmt.Println("journal is empty")
		return nil
	}

	for _, rec := range records {
		kind := "file"
		if rec.Directory {
			kind = "dir"
		}
		fmt.Printf("%s  %-7s %-4s %s -> %s (%s)\n",
			rec.CreatedAt.Format("2006-01-02 15:04:05"),
			rec.Mode,
			kind,
			rec.TargetPath,
			rec.OutputPath,
			rec.Duration.Round(time.Millisecond),
		)
	}
	return nil
}

func targetKind(run config.Run) models.TargetKind {
	if run.Mode == models.ModeEncrypt && run.Directory {
		return models.TargetDirectory
	}
	return models.TargetFile
}

func actionLabel(mode models.Mode) string {
	if mode == models.ModeDecrypt {
		return "Decrypting"
	}
	return "Encrypting"
}
