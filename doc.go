// Package spot tracks buy and sell trades of a small catalog of tradable
// symbols and derives, from the trade history alone, the weighted-average
// cost basis, the realized and unrealized profit-and-loss and the market
// value of the position.
//
// The core is [Compute]: a stateless engine that folds over a date-sorted
// [Ledger] and produces [Stats]. It never reads the clock, never performs
// I/O and never mutates its input, so it can be called as often as needed
// (on every edit, on every price update) with the same answer for the same
// input.
//
// Everything around the engine is boundary code:
//   - Entry validation: [Draft] parses user input into a [Transaction] and
//     [Portfolio] rejects changes that would sell more than is held.
//   - Encoding: the portfolio is persisted as a JSON object keyed by symbol,
//     and the processed history can be exported as CSV with [WriteCSV].
//   - Symbols: the [DefaultCatalog] lists the supported symbols and whether
//     a live quote exists for them.
//
// Money and quantities are exact decimals so that repeated buys and sells do
// not accumulate binary floating point residue.
package spot
