// Package metadata provides the durable key/value storage the client keeps in
// its local SQLite file. The session record lives here under a single key.
//
// The table is created by the embedded migrations (see internal/client/migrations):
//
//	CREATE TABLE metadata (key TEXT PRIMARY KEY, value BLOB NOT NULL);
//
// Typical Usage
//
//	repo := metadata.NewSQLiteRepository(db)
//	_ = repo.Set(ctx, "currentUser", payload)
//	v, _ := repo.Get(ctx, "currentUser") // nil when absent
package metadata
