// Package database handles database connections for the article store.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) that
// configures either a MySQL or a SQLite connection based on the application's
// configuration. SQLite is primarily used for local runs and throwaway
// imports; MySQL backs the production magazine database.
//
// # Connect
//
// The Connect function establishes a connection and verifies it with a ping.
// The returned handle is an explicitly constructed, explicitly closed
// dependency; nothing in this package keeps global state.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//	defer database.Close(db)
package database
