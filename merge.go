package mint

import (
	"context"
	"fmt"
	"io"
)

// Resolution is the outcome of a conflict decision during a merge.
type Resolution int

const (
	// Overwrite updates the primary match's description and category in
	// place with the incoming values; no new row is appended.
	Overwrite Resolution = iota
	// AddAsNew appends the incoming transaction as a distinct record
	// despite the shared natural key.
	AddAsNew
	// Ignore discards the incoming transaction and leaves the ledger
	// unchanged.
	Ignore
)

func (r Resolution) String() string {
	switch r {
	case Overwrite:
		return "overwrite"
	case AddAsNew:
		return "add"
	case Ignore:
		return "ignore"
	default:
		return "unknown"
	}
}

// ParseResolution parses a string into a Resolution.
func ParseResolution(s string) (Resolution, error) {
	switch s {
	case "overwrite", "o":
		return Overwrite, nil
	case "add", "a":
		return AddAsNew, nil
	case "ignore", "i":
		return Ignore, nil
	default:
		return 0, fmt.Errorf("unknown resolution %q (want overwrite, add or ignore)", s)
	}
}

// Conflict describes a possible duplicate: an incoming transaction whose
// natural key matches existing records whose description or category differ.
type Conflict struct {
	// Incoming is the new transaction under consideration.
	Incoming Transaction
	// Candidates are the existing records sharing the incoming natural
	// key, metadata-differing ones first. The first candidate is the
	// primary match that an Overwrite rewrites.
	Candidates []Transaction
}

// Resolver decides the outcome of a merge conflict. It is injected so that
// interactive, scripted and test implementations share the same engine; it
// is invoked once per ambiguous record, strictly sequentially.
type Resolver interface {
	Resolve(ctx context.Context, c Conflict) (Resolution, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(ctx context.Context, c Conflict) (Resolution, error)

func (f ResolverFunc) Resolve(ctx context.Context, c Conflict) (Resolution, error) {
	return f(ctx, c)
}

// Assume returns a resolver that always answers with the given resolution.
// It is the batch-mode counterpart of the interactive prompt.
func Assume(r Resolution) Resolver {
	return ResolverFunc(func(context.Context, Conflict) (Resolution, error) { return r, nil })
}

// MergeReport carries the counters of a merge, used for the user-visible
// summary.
type MergeReport struct {
	Added             int
	Overwritten       int
	SkippedDuplicates int
	SkippedIgnored    int
}

func (r MergeReport) String() string {
	msg := fmt.Sprintf("Added %d new transactions", r.Added)
	if r.Overwritten > 0 {
		msg += fmt.Sprintf(" and updated %d existing transactions", r.Overwritten)
	}
	skipped := r.SkippedDuplicates + r.SkippedIgnored
	msg += fmt.Sprintf("; %d transactions in the new export already existed", skipped)
	return msg
}

// Merge merges a batch of incoming transactions into the ledger,
// applying the duplicate/conflict policy once per record, in input order.
//
// For each incoming transaction, the existing records matching its natural
// key (date, amount, account, direction) are collected. No match: the record
// is unambiguously new and appended. Matches whose description and category
// are all identical: the record is a true duplicate and skipped without
// consulting the resolver. Otherwise the resolver decides between
// [Overwrite], [AddAsNew] and [Ignore].
//
// Records appended mid-batch take part in the candidate search for later
// records: first match wins against the then-current state, so merging is
// deliberately order-sensitive. The final ledger is re-sorted by date
// descending.
//
// The report writer, when non-nil, receives a line per new transaction as the
// original interactive flow printed them.
func (l *Ledger) Merge(ctx context.Context, incoming []Transaction, resolver Resolver, report io.Writer) (MergeReport, error) {
	if report == nil {
		report = io.Discard
	}
	var rep MergeReport
	for _, t := range incoming {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		if err := t.Validate(); err != nil {
			return rep, fmt.Errorf("invalid incoming transaction: %w", err)
		}

		idx := l.candidates(t.Key())
		if len(idx) == 0 {
			// Unambiguously new.
			fmt.Fprintf(report, "Found new transaction: %s\n", t)
			l.transactions = append(l.transactions, t)
			rep.Added++
			continue
		}

		// Partition the key matches by whether description or category differ.
		var differing []int
		for _, i := range idx {
			if !l.transactions[i].SameMetadata(t) {
				differing = append(differing, i)
			}
		}
		if len(differing) == 0 {
			// True duplicate: never prompts.
			rep.SkippedDuplicates++
			continue
		}

		if resolver == nil {
			return rep, fmt.Errorf("possible duplicate on %s (%s %s %s) and no resolver configured",
				t.Date, t.AccountName, t.Direction, t.Amount)
		}
		conflict := Conflict{Incoming: t, Candidates: make([]Transaction, 0, len(idx))}
		for _, i := range differing {
			conflict.Candidates = append(conflict.Candidates, l.transactions[i])
		}
		for _, i := range idx {
			if l.transactions[i].SameMetadata(t) {
				conflict.Candidates = append(conflict.Candidates, l.transactions[i])
			}
		}
		resolution, err := resolver.Resolve(ctx, conflict)
		if err != nil {
			return rep, fmt.Errorf("conflict resolution failed for transaction on %s: %w", t.Date, err)
		}
		switch resolution {
		case Overwrite:
			primary := differing[0]
			l.transactions[primary].Description = t.Description
			l.transactions[primary].Category = t.Category
			rep.Overwritten++
		case AddAsNew:
			l.transactions = append(l.transactions, t)
			rep.Added++
		case Ignore:
			rep.SkippedIgnored++
		default:
			return rep, fmt.Errorf("invalid resolution %v for transaction on %s", resolution, t.Date)
		}
	}
	l.stableSort()
	return rep, nil
}
