package mint

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSnapshotPath(t *testing.T) {
	got := SnapshotPath("transactions.csv", day(2023, time.April, 1))
	if got != "transactions-2023-04-01.csv" {
		t.Errorf("SnapshotPath = %q", got)
	}
}

func TestWriteSnapshot(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "transactions.csv")
	on := day(2023, time.April, 1)
	l := NewLedger(debit(on, "coffee", 4.50, "Dining", "visa"))

	// First write goes straight to base.
	path, err := WriteSnapshot(base, on, l)
	if err != nil {
		t.Fatal(err)
	}
	if path != base {
		t.Errorf("first write went to %s, want %s", path, base)
	}

	// Second write preserves base and lands on the dated path.
	l.Append(debit(on, "lunch", 12, "Dining", "visa"))
	path, err = WriteSnapshot(base, on, l)
	if err != nil {
		t.Fatal(err)
	}
	if path != SnapshotPath(base, on) {
		t.Errorf("second write went to %s, want the dated snapshot", path)
	}
	prev, err := ReadLedgerFile(base)
	if err != nil {
		t.Fatal(err)
	}
	if prev.Len() != 1 {
		t.Errorf("base file changed under the snapshot: %d transactions", prev.Len())
	}

	// The dated file wins the read until promoted.
	if got := LatestSnapshot(base, on); got != path {
		t.Errorf("LatestSnapshot = %s, want %s", got, path)
	}
	if err := Promote(base, on); err != nil {
		t.Fatal(err)
	}
	promoted, err := ReadLedgerFile(base)
	if err != nil {
		t.Fatal(err)
	}
	if promoted.Len() != 2 {
		t.Errorf("promoted base has %d transactions, want 2", promoted.Len())
	}
	if got := LatestSnapshot(base, on); got != base {
		t.Errorf("LatestSnapshot after promote = %s, want %s", got, base)
	}
}

func TestPromoteWithoutSnapshot(t *testing.T) {
	base := filepath.Join(t.TempDir(), "transactions.csv")
	if err := Promote(base, day(2023, time.April, 1)); err == nil {
		t.Fatal("promoted a snapshot that does not exist")
	}
}

func TestNewTransactionsAvailable(t *testing.T) {
	dir := t.TempDir()
	export := filepath.Join(dir, "export.csv")
	base := filepath.Join(dir, "transactions.csv")

	if NewTransactionsAvailable(export, base) {
		t.Error("missing export reported as news")
	}
	if err := os.WriteFile(export, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !NewTransactionsAvailable(export, base) {
		t.Error("missing ledger should count as stale")
	}
	if err := os.WriteFile(base, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	old := time.Now().Add(-time.Hour)
	if err := os.Chtimes(export, old, old); err != nil {
		t.Fatal(err)
	}
	if NewTransactionsAvailable(export, base) {
		t.Error("older export reported as news")
	}
}
