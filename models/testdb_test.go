package models

import (
	"context"
	"fmt"
	"testing"
	"time"

	"bitbucket.org/greenfields/farmbooks_backend/config"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var testDBSeq int

// setupTestDB installs a fresh in-memory database for one test. The DSN is
// unique per call so parallel tests never share a store, and shared cache
// keeps the memory database alive across pooled connections.
func setupTestDB(t *testing.T) context.Context {
	t.Helper()

	testDBSeq++
	dsn := fmt.Sprintf("file:testdb_%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), config.InitConfig())
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	config.SetDB(db)

	if err := MigrateTable(); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return context.Background()
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("parse date %q: %v", value, err)
	}
	return d
}
