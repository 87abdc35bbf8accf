// Package sqlite implements the KnowledgeStore port on a single SQLite
// table using the pure-Go modernc.org/sqlite driver.
//
// The schema is the one the knowledge base has always used:
//
//	CREATE TABLE kb (
//	  id INTEGER PRIMARY KEY AUTOINCREMENT,
//	  question TEXT NOT NULL,
//	  answer TEXT NOT NULL,
//	  created_at TEXT DEFAULT (datetime('now'))
//	)
//
// Records are append-only. No updates, deletes, indexes or multi-statement
// transactions are needed; the single writer relies on SQLite's
// per-statement atomicity. Connection management is left to database/sql,
// which checks connections out per operation rather than pinning one.
package sqlite
