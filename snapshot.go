package mint

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SnapshotPath returns the dated sibling of a transactions file:
// "transactions.csv" dated 2023-04-01 becomes
// "transactions-2023-04-01.csv".
func SnapshotPath(base string, on Date) string {
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s-%s%s", strings.TrimSuffix(base, ext), on, ext)
}

// LatestSnapshot returns the path to read for the given day: the dated
// snapshot when one exists, otherwise the base file itself.
func LatestSnapshot(base string, on Date) string {
	dated := SnapshotPath(base, on)
	if _, err := os.Stat(dated); err == nil {
		return dated
	}
	return base
}

// ReadLedgerFile reads a transactions CSV from disk.
func ReadLedgerFile(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	l, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return l, nil
}

// WriteSnapshot persists the ledger. When the base file already exists the
// ledger goes to the dated snapshot path so the previous state survives for
// review; the first write goes straight to base. The file is written to a
// temporary sibling and renamed in place so a failed write never leaves a
// truncated ledger. It returns the path written.
func WriteSnapshot(base string, on Date, l *Ledger) (string, error) {
	path := base
	if _, err := os.Stat(base); err == nil {
		path = SnapshotPath(base, on)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())
	if err := EncodeLedger(tmp, l); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", err
	}
	return path, nil
}

// Promote makes the dated snapshot the new base file, replacing the
// previous base. It is the accept step after reviewing a merge.
func Promote(base string, on Date) error {
	dated := SnapshotPath(base, on)
	if _, err := os.Stat(dated); err != nil {
		return fmt.Errorf("no snapshot to promote: %w", err)
	}
	return os.Rename(dated, base)
}

// NewTransactionsAvailable reports whether the export file is newer than the
// ledger it would merge into. A missing ledger counts as stale, a missing
// export as no news.
func NewTransactionsAvailable(export, base string) bool {
	ei, err := os.Stat(export)
	if err != nil {
		return false
	}
	bi, err := os.Stat(base)
	if err != nil {
		return true
	}
	return ei.ModTime().After(bi.ModTime())
}
