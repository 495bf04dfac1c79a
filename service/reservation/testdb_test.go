package reservation

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
)

// The service only uses *sql.DB for transaction boundaries; every query goes
// through the Store interfaces. This driver hands out no-op transactions so
// the lifecycle can be exercised against in-memory fakes.

func init() { sql.Register("resvmock", mockDriver{}) }

type mockDriver struct{}

func (mockDriver) Open(string) (driver.Conn, error) { return &mockConn{}, nil }

type mockConn struct{}

func (*mockConn) Prepare(string) (driver.Stmt, error) { return nil, errors.New("unexpected Prepare") }
func (*mockConn) Close() error                        { return nil }
func (*mockConn) Begin() (driver.Tx, error)           { return mockTx{}, nil }
func (*mockConn) BeginTx(context.Context, driver.TxOptions) (driver.Tx, error) {
	return mockTx{}, nil
}

type mockTx struct{}

func (mockTx) Commit() error   { return nil }
func (mockTx) Rollback() error { return nil }

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("resvmock", "")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}
