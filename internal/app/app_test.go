package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/cryptfile/internal/config"
	"github.com/MKhiriev/cryptfile/internal/container"
	"github.com/MKhiriev/cryptfile/internal/logger"
	"github.com/MKhiriev/cryptfile/internal/service"
	"github.com/MKhiriev/cryptfile/models"
)

// ─────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────

type fakeCryptService struct {
	requests  []models.Request
	errByPath map[string]error
}

func (f *fakeCryptService) Run(_ context.Context, req models.Request) (models.Result, error) {
	f.requests = append(f.requests, req)
	if err := f.errByPath[req.Target.Path]; err != nil {
		return models.Result{}, err
	}
	return models.Result{OutputPath: req.Target.Path + ".enc"}, nil
}

type fakeJournal struct {
	records   []models.OperationRecord
	lastLimit uint64
}

func (f *fakeJournal) RecordOperation(_ context.Context, record models.OperationRecord) error {
	f.records = append(f.records, record)
	return nil
}

func (f *fakeJournal) ListOperations(_ context.Context, limit uint64) ([]models.OperationRecord, error) {
	f.lastLimit = limit
	return f.records, nil
}

type fakePrompter struct {
	password    string
	err         error
	calls       int
	lastConfirm bool
}

func (f *fakePrompter) PromptPassword(_ string, confirm bool) (string, error) {
	f.calls++
	f.lastConfirm = confirm
	return f.password, f.err
}

func newTestApp(t *testing.T, cfg *config.Config, svc service.CryptService, prompt PasswordPrompter) *App {
	t.Helper()
	a, err := NewApp(cfg, svc, prompt, nil, logger.Nop())
	require.NoError(t, err)
	return a
}

// ─────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────

func TestRun_PasswordFromConfigSkipsPrompt(t *testing.T) {
	svc := &fakeCryptService{}
	prompt := &fakePrompter{}
	cfg := &config.Config{
		App: config.App{Password: "from-env"},
		Run: config.Run{Mode: models.ModeEncrypt, Targets: []string{"a.txt"}},
	}

	err := newTestApp(t, cfg, svc, prompt).Run(context.Background())
	require.NoError(t, err)

	assert.Zero(t, prompt.calls)
	require.Len(t, svc.requests, 1)
	assert.Equal(t, "from-env", svc.requests[0].Password)
}

func TestRun_EncryptPromptAsksForConfirmation(t *testing.T) {
	svc := &fakeCryptService{}
	prompt := &fakePrompter{password: "typed"}
	cfg := &config.Config{
		Run: config.Run{Mode: models.ModeEncrypt, Targets: []string{"a.txt"}},
	}

	err := newTestApp(t, cfg, svc, prompt).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, prompt.calls)
	assert.True(t, prompt.lastConfirm)
	require.Len(t, svc.requests, 1)
	assert.Equal(t, "typed", svc.requests[0].Password)
}

func TestRun_DecryptPromptSkipsConfirmation(t *testing.T) {
	svc := &fakeCryptService{}
	prompt := &fakePrompter{password: "typed"}
	cfg := &config.Config{
		Run: config.Run{Mode: models.ModeDecrypt, Targets: []string{"a.txt.enc"}},
	}

	err := newTestApp(t, cfg, svc, prompt).Run(context.Background())
	require.NoError(t, err)
	assert.False(t, prompt.lastConfirm)
}

func TestRun_PromptFailureAbortsBeforeAnyTarget(t *testing.T) {
	svc := &fakeCryptService{}
	prompt := &fakePrompter{err: errors.New("aborted")}
	cfg := &config.Config{
		Run: config.Run{Mode: models.ModeEncrypt, Targets: []string{"a.txt", "b.txt"}},
	}

	err := newTestApp(t, cfg, svc, prompt).Run(context.Background())
	require.Error(t, err)
	assert.Empty(t, svc.requests)
}

func TestRun_FailedTargetDoesNotStopTheRest(t *testing.T) {
	svc := &fakeCryptService{
		errByPath: map[string]error{"b.txt": service.ErrTargetNotFound},
	}
	cfg := &config.Config{
		App: config.App{Password: "pw"},
		Run: config.Run{Mode: models.ModeEncrypt, Targets: []string{"a.txt", "b.txt", "c.txt"}},
	}

	err := newTestApp(t, cfg, svc, &fakePrompter{}).Run(context.Background())
	assert.ErrorIs(t, err, ErrSomeTargetsFailed)
	assert.Len(t, svc.requests, 3)
}

func TestRun_DirectoryFlagShapesTarget(t *testing.T) {
	svc := &fakeCryptService{}
	cfg := &config.Config{
		App: config.App{Password: "pw"},
		Run: config.Run{
			Mode:      models.ModeEncrypt,
			Directory: true,
			Compress:  true,
			Remove:    true,
			Targets:   []string{"tree"},
		},
	}

	err := newTestApp(t, cfg, svc, &fakePrompter{}).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, svc.requests, 1)
	req := svc.requests[0]
	assert.Equal(t, models.TargetDirectory, req.Target.Kind)
	assert.True(t, req.Compress)
	assert.True(t, req.RemoveOriginal)
}

func TestRun_DecryptTargetIsAlwaysFile(t *testing.T) {
	svc := &fakeCryptService{}
	cfg := &config.Config{
		App: config.App{Password: "pw"},
		// Directory set on decrypt is advisory only; containers are files.
		Run: config.Run{Mode: models.ModeDecrypt, Directory: true, Targets: []string{"tree.enc"}},
	}

	err := newTestApp(t, cfg, svc, &fakePrompter{}).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, svc.requests, 1)
	assert.Equal(t, models.TargetFile, svc.requests[0].Target.Kind)
}

func TestNewApp_NilDependency(t *testing.T) {
	_, err := NewApp(nil, &fakeCryptService{}, &fakePrompter{}, nil, logger.Nop())
	assert.Error(t, err)
}

func TestRun_HistoryWithoutJournalFails(t *testing.T) {
	cfg := &config.Config{Run: config.Run{History: 5}}

	err := newTestApp(t, cfg, &fakeCryptService{}, &fakePrompter{}).Run(context.Background())
	assert.Error(t, err)
}

func TestRun_HistoryListsJournal(t *testing.T) {
	journal := &fakeJournal{records: []models.OperationRecord{
		{Mode: "encrypt", TargetPath: "a.txt", OutputPath: "a.txt.enc"},
	}}
	cfg := &config.Config{Run: config.Run{History: 5}}
	prompt := &fakePrompter{}

	a, err := NewApp(cfg, &fakeCryptService{}, prompt, journal, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, uint64(5), journal.lastLimit)
	assert.Zero(t, prompt.calls, "history mode never prompts for a password")
}

func TestHumanizeError(t *testing.T) {
	assert.Equal(t, "wrong password or corrupted file", humanizeError(container.ErrAuthenticationFailed))
	assert.Equal(t, "not an encrypted file", humanizeError(container.ErrMalformedContainer))
	assert.Equal(t, "no such file or directory", humanizeError(service.ErrTargetNotFound))
	assert.Equal(t, "boom", humanizeError(errors.New("boom")))
}
