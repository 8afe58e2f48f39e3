// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections
// from the application's configuration. The audit uses it only to read the
// downloader's document records when the metadata source is "database".
//
// # Schema Inspection
//
// MissingColumns checks that the records table carries the columns the
// metadata index reads before any rows are loaded.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "documents", []string{"url"})
package database
