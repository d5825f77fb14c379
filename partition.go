package mint

// AccountSet is a set of account names used to partition a ledger.
type AccountSet map[string]struct{}

// NewAccountSet builds a set from the given account names.
func NewAccountSet(names ...string) AccountSet {
	s := make(AccountSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Contains reports whether the account name belongs to the set.
func (s AccountSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Partition splits the ledger in two by account name: transactions whose
// account is in the given set land in "theirs", the rest in "mine". Every
// transaction lands in exactly one side and relative order is preserved.
// An empty set yields an empty "theirs".
func (l *Ledger) Partition(accounts AccountSet) (mine, theirs *Ledger) {
	mine, theirs = &Ledger{}, &Ledger{}
	for _, t := range l.Transactions() {
		if accounts.Contains(t.AccountName) {
			theirs.transactions = append(theirs.transactions, t)
		} else {
			mine.transactions = append(mine.transactions, t)
		}
	}
	return mine, theirs
}
