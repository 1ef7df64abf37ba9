// Package storage is the persistence gateway: it round-trips the catalog,
// sales ledger, user directory and movement log through JSON flat files in
// the historical on-disk format, and handles backup bundles.
package storage

import "context"

type Gateway interface {
	// Load fills the stores from disk, seeding defaults for files that do
	// not exist yet.
	Load(ctx context.Context) error

	SaveCatalog(ctx context.Context) error
	SaveSales(ctx context.Context) error
	SaveUsers(ctx context.Context) error
	SaveMovements(ctx context.Context) error
	SaveAll(ctx context.Context) error

	// Export writes a backup bundle to path.
	Export(ctx context.Context, path string) error
	// Import wholesale-replaces the catalog, ledger and directory from a
	// bundle; it never merges.
	Import(ctx context.Context, path string) error
}
