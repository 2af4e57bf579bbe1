package storage

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

func getMySQLDB(t *testing.T) *sql.DB {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = "root:root@tcp(localhost:3306)/shopcart?parseTime=true"
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Skipf("MySQL not available: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Skipf("MySQL not available: %v", err)
	}
	return db
}

func TestMySQLStore(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	store, err := NewMySQLStore(ctx, db)
	if err != nil {
		t.Fatalf("NewMySQLStore failed: %v", err)
	}

	// Setup
	db.ExecContext(ctx, `DELETE FROM kv WHERE k LIKE 'shopcart:test-%'`)

	exerciseStore(t, ctx, store)
}
