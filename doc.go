// Package tresorerie provides the functions and types for managing the
// treasury of a volunteer association. It is designed to be local-first and
// auditable, ensuring the treasurer has full control and transparency over
// the association's books.
//
// The core functionalities include:
//   - Ledger Management: Recording income and expense lines, with automatic
//     entries linking registrations and activity enrollments to the books.
//   - Member Management: Tracking the roster, registration fee tiers, and
//     each member's payment progress, kept in sync with the ledger.
//   - Activity Management: Events with role-dependent participation fees and
//     per-activity financial results.
//   - Fiscal Year Closing: Folding the year's balance into a single
//     carry-over line, resetting the roster, and freezing the closed year
//     into a browsable read-only archive.
//   - Data Persistence: A keyed blob store (directory or SQLite backed) plus
//     a JSON backup and restore format compatible with the historical data
//     files of the association.
//
// This package serves as the foundational logic for the `tresor` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package tresorerie
