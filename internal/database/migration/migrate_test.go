package migration

import (
	"context"
	"strings"
	"testing"

	"skill-exchange/internal/database"
)

type recordingTx struct {
	statements []string
	committed  bool
	rolledBack bool
}

func (t *recordingTx) Exec(_ context.Context, query string, _ ...any) (int64, error) {
	t.statements = append(t.statements, query)
	return 0, nil
}

func (t *recordingTx) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, nil
}

func (t *recordingTx) QueryRow(context.Context, string, ...any) database.Row {
	return nil
}

func (t *recordingTx) Commit(context.Context) error {
	t.committed = true
	return nil
}

func (t *recordingTx) Rollback(context.Context) error {
	t.rolledBack = true
	return nil
}

type recordingDB struct {
	tx        *recordingTx
	poolExecs []string
}

func (d *recordingDB) Ping(context.Context) error { return nil }
func (d *recordingDB) Close() error               { return nil }

func (d *recordingDB) Exec(_ context.Context, query string, _ ...any) (int64, error) {
	d.poolExecs = append(d.poolExecs, query)
	return 0, nil
}

func (d *recordingDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, nil
}

func (d *recordingDB) QueryRow(context.Context, string, ...any) database.Row {
	return nil
}

func (d *recordingDB) Begin(context.Context) (database.Tx, error) {
	return d.tx, nil
}

func TestRun_LockAndBootstrapShareOneSession(t *testing.T) {
	db := &recordingDB{tx: &recordingTx{}}

	if err := Run(context.Background(), db); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// Pool-level Exec picks an arbitrary connection per call, so nothing may
	// bypass the transaction.
	if len(db.poolExecs) != 0 {
		t.Fatalf("expected no pool-level statements, got %v", db.poolExecs)
	}
	if len(db.tx.statements) == 0 {
		t.Fatalf("expected statements on the transaction")
	}
	if !strings.Contains(db.tx.statements[0], "pg_advisory_xact_lock") {
		t.Fatalf("expected xact advisory lock first, got %q", db.tx.statements[0])
	}
	if !db.tx.committed {
		t.Fatalf("expected commit")
	}
}

func TestRun_CreatesTablesAndSeeds(t *testing.T) {
	db := &recordingDB{tx: &recordingTx{}}

	if err := Run(context.Background(), db); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	var sawAccounts, sawSeed bool
	for _, stmt := range db.tx.statements {
		if strings.Contains(stmt, "CREATE TABLE IF NOT EXISTS accounts") {
			sawAccounts = true
		}
		if strings.Contains(stmt, "INSERT INTO skill_levels") {
			sawSeed = true
		}
	}
	if !sawAccounts {
		t.Fatalf("accounts table not created")
	}
	if !sawSeed {
		t.Fatalf("skill levels not seeded")
	}
}

func TestRun_NilDB(t *testing.T) {
	if err := Run(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil db")
	}
}
