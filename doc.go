// Package mint reconciles and classifies personal financial transactions
// exported from external sources (Mint, Empower, Lunch Money) into a single
// canonical ledger, then derives spending and income views grouped by
// user-defined spending groups.
//
// The canonical record is [Transaction]: a calendar date, a non-negative
// monetary magnitude, a debit/credit direction, and free-text metadata
// (description, category, account, labels, notes). A [Ledger] is an ordered
// collection of transactions, persisted as a CSV snapshot and kept sorted by
// date descending.
//
// The pipeline is: normalize a source export into canonical transactions,
// merge the batch into the existing ledger ([Ledger.Merge], with an injected
// [Resolver] deciding conflicts), split third-party accounts out
// ([Ledger.Partition]), assign spending groups ([Ledger.AssignGroups]), and
// extract per-year spending or income views ([Ledger.ExtractSpending],
// [Ledger.ExtractIncome]).
package mint
