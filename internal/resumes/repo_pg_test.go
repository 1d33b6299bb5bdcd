package resumes

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	created := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	mock.ExpectExec("INSERT INTO parse_results").
		WithArgs("id-1", "resume.pdf", sqlmock.AnyArg(), "heuristic", []byte(`{"name":null}`), created).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := &PGRepo{DB: db}
	err = repo.Create(context.Background(), ParseResult{
		ID:         "id-1",
		FileName:   "resume.pdf",
		StorageKey: "abc_resume.pdf",
		Engine:     "heuristic",
		Record:     json.RawMessage(`{"name":null}`),
		CreatedAt:  created,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoCreateDefaultsEngine(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO parse_results").
		WithArgs("id-2", "resume.txt", sqlmock.AnyArg(), "heuristic", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := &PGRepo{DB: db}
	err = repo.Create(context.Background(), ParseResult{
		ID:        "id-2",
		FileName:  "resume.txt",
		Record:    json.RawMessage(`{}`),
		CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	created := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "file_name", "storage_key", "engine", "record", "created_at"}).
		AddRow("id-1", "resume.pdf", "abc_resume.pdf", "llm", []byte(`{"name":"Jane"}`), created)
	mock.ExpectQuery("SELECT id, file_name, storage_key, engine, record, created_at").
		WithArgs("id-1").
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	got, err := repo.GetByID(context.Background(), "id-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != "id-1" || got.Engine != "llm" || got.StorageKey != "abc_resume.pdf" {
		t.Fatalf("unexpected result %+v", got)
	}
	if string(got.Record) != `{"name":"Jane"}` {
		t.Fatalf("unexpected record %s", got.Record)
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("unexpected created_at %v", got.CreatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, file_name, storage_key, engine, record, created_at").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "file_name", "storage_key", "engine", "record", "created_at"}))

	repo := &PGRepo{DB: db}
	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestMemoryRepoRoundtrip(t *testing.T) {
	repo := NewMemoryRepo()
	result := ParseResult{ID: "id-1", FileName: "resume.txt", Engine: "heuristic", Record: json.RawMessage(`{}`)}

	if err := repo.Create(context.Background(), result); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := repo.GetByID(context.Background(), "id-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.FileName != "resume.txt" {
		t.Fatalf("unexpected result %+v", got)
	}
	if _, err := repo.GetByID(context.Background(), "absent"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
