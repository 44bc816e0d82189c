package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/MKhiriev/cryptfile/internal/logger"
	"github.com/MKhiriev/cryptfile/models"
)

func newTestJournalRepo(t *testing.T) (*journalRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &journalRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestRecordOperation_Success(t *testing.T) {
	repo, mock, db := newTestJournalRepo(t)
	defer db.Close()

	record := models.OperationRecord{
		Mode:       "encrypt",
		TargetPath: "/home/user/docs",
		OutputPath: "/home/user/docs.enc",
		Directory:  true,
		Compressed: true,
		Removed:    false,
		Duration:   1500 * time.Millisecond,
		CreatedAt:  time.Now(),
	}

	mock.ExpectExec("INSERT INTO operations").
		WithArgs(
			record.Mode,
			record.TargetPath,
			record.OutputPath,
			record.Directory,
			record.Compressed,
			record.Removed,
			int64(1500),
			record.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.RecordOperation(context.Background(), record); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

func TestRecordOperation_FillsCreatedAt(t *testing.T) {
	repo, mock, db := newTestJournalRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO operations").
		WithArgs(
			"decrypt", "/tmp/a.enc", "/tmp/a", false, false, true, int64(0),
			sqlmock.AnyArg(), // created_at filled by the repository
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	record := models.OperationRecord{
		Mode:       "decrypt",
		TargetPath: "/tmp/a.enc",
		OutputPath: "/tmp/a",
		Removed:    true,
	}
	if err := repo.RecordOperation(context.Background(), record); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

func TestRecordOperation_DBError(t *testing.T) {
	repo, mock, db := newTestJournalRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO operations").
		WillReturnError(errors.New("disk full"))

	err := repo.RecordOperation(context.Background(), models.OperationRecord{Mode: "encrypt"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestListOperations_Success(t *testing.T) {
	repo, mock, db := newTestJournalRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"id", "mode", "target_path", "output_path", "directory", "compressed", "removed", "duration_ms", "created_at"}).
		AddRow(2, "decrypt", "/tmp/a.enc", "/tmp/a", false, false, false, int64(200), now).
		AddRow(1, "encrypt", "/tmp/a", "/tmp/a.enc", false, false, true, int64(900), now.Add(-time.Minute))

	mock.ExpectQuery("SELECT (.+) FROM operations").
		WillReturnRows(rows)

	records, err := repo.ListOperations(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("records count = %d, want 2", len(records))
	}
	if records[0].Mode != "decrypt" || records[0].Duration != 200*time.Millisecond {
		t.Errorf("unexpected first record: %+v", records[0])
	}
	if records[1].ID != 1 || !records[1].Removed {
		t.Errorf("unexpected second record: %+v", records[1])
	}
}

func TestListOperations_QueryError(t *testing.T) {
	repo, mock, db := newTestJournalRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM operations").
		WillReturnError(errors.New("no such table"))

	if _, err := repo.ListOperations(context.Background(), 5); err == nil {
		t.Fatal("expected error, got nil")
	}
}
