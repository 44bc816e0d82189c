package config

import "errors"

// Validation errors returned by [Config.validate] when the assembled
// configuration does not describe a runnable operation.
var (
	// ErrNoModeSelected indicates that none of the -e, -d, -ed, -dd mode
	// selectors was set, or that more than one was.
	ErrNoModeSelected = errors.New("exactly one of -e, -d, -ed, -dd must be given")
	// ErrNoTargets indicates that the command line named no files or
	// directories to operate on.
	ErrNoTargets = errors.New("no targets given")
	// ErrNoJournalConfigured indicates a -history request without a journal
	// database to read from.
	ErrNoJournalConfigured = errors.New("history requested but no journal configured")
)
