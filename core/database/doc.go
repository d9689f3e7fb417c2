// Package database handles database connections.
//
// It provides a wrapper around GORM to configure MySQL (production) or SQLite
// (local runs and tests) connections from the application's configuration.
// The database only records wiki export history; the bot keeps working
// without it.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("Optional database connection failed", zap.Error(err))
//	}
package database
