package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

// fakeConn records every statement and fails the n-th one (1-based) when
// told to. Queries return a single row holding "e1".
type fakeConn struct {
	mu        sync.Mutex
	execs     []string
	fail      map[int]error
	commits   int
	rollbacks int
}

func (c *fakeConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepare is not supported")
}

func (c *fakeConn) Close() error { return nil }

func (c *fakeConn) Begin() (driver.Tx, error) { return fakeTx{c: c}, nil }

func (c *fakeConn) CheckNamedValue(*driver.NamedValue) error { return nil }

func (c *fakeConn) ExecContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.execs = append(c.execs, query)
	if err, ok := c.fail[len(c.execs)]; ok {
		return nil, err
	}
	return driver.RowsAffected(1), nil
}

func (c *fakeConn) QueryContext(context.Context, string, []driver.NamedValue) (driver.Rows, error) {
	return &fakeRows{}, nil
}

func (c *fakeConn) statements() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.execs...)
}

type fakeTx struct {
	c *fakeConn
}

func (t fakeTx) Commit() error {
	t.c.mu.Lock()
	t.c.commits++
	t.c.mu.Unlock()
	return nil
}

func (t fakeTx) Rollback() error {
	t.c.mu.Lock()
	t.c.rollbacks++
	t.c.mu.Unlock()
	return nil
}

type fakeRows struct {
	done bool
}

func (r *fakeRows) Columns() []string { return []string{"id"} }

func (r *fakeRows) Close() error { return nil }

func (r *fakeRows) Next(dest []driver.Value) error {
	if r.done {
		return io.EOF
	}
	r.done = true
	dest[0] = "e1"
	return nil
}

type fakeConnector struct {
	conn *fakeConn
}

func (f fakeConnector) Connect(context.Context) (driver.Conn, error) { return f.conn, nil }

func (f fakeConnector) Driver() driver.Driver { return fakeDriver(f) }

type fakeDriver struct {
	conn *fakeConn
}

func (d fakeDriver) Open(string) (driver.Conn, error) { return d.conn, nil }

func newFakeDB(t *testing.T, fail map[int]error) (*dbpg.DB, *fakeConn) {
	t.Helper()

	conn := &fakeConn{fail: fail}
	master := sql.OpenDB(fakeConnector{conn: conn})
	t.Cleanup(func() { _ = master.Close() })

	return &dbpg.DB{Master: master}, conn
}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestMemberRepository_CreateLink_ConflictIsReportedOnce(t *testing.T) {
	db, conn := newFakeDB(t, map[int]error{1: &pq.Error{Code: codeUniqueViolation}})
	repo := NewMemberRepo(db, newTestLogger(t))

	err := repo.CreateLink(context.Background(), &domain.HostUserLink{HostID: "h1", UserID: "u2", Status: domain.MemberInvited})

	assert.ErrorIs(t, err, domain.ErrAlreadyMember)
	assert.Len(t, conn.statements(), 1)
}

func TestRepositories_FailedWritesAreNotRepeated(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name  string
		write func(db *dbpg.DB) error
	}{
		{name: "delete guest", write: func(db *dbpg.DB) error {
			return NewGuestRepo(db, newTestLogger(t)).Delete(ctx, "e1", "g1")
		}},
		{name: "set guest status", write: func(db *dbpg.DB) error {
			return NewGuestRepo(db, newTestLogger(t)).SetStatus(ctx, "e1", "g1", domain.GuestStatusCheckedIn)
		}},
		{name: "delete request", write: func(db *dbpg.DB) error {
			return NewRequestRepo(db).Delete(ctx, "e1", "u1")
		}},
		{name: "delete member link", write: func(db *dbpg.DB) error {
			return NewMemberRepo(db, newTestLogger(t)).DeleteLink(ctx, "h1", "u2")
		}},
		{name: "set member type", write: func(db *dbpg.DB) error {
			return NewUserRepo(db).SetMemberType(ctx, "u2", "h1", domain.MemberTypeModerator)
		}},
		{name: "delete event", write: func(db *dbpg.DB) error {
			return NewEventRepo(db).Delete(ctx, "e1")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, conn := newFakeDB(t, map[int]error{1: errors.New("connection reset by peer")})

			err := tt.write(db)

			require.Error(t, err)
			assert.Len(t, conn.statements(), 1)
		})
	}
}

func TestMemberRepository_Join_RollsBackWhenRoleWriteFails(t *testing.T) {
	db, conn := newFakeDB(t, map[int]error{2: errors.New("network")})
	repo := NewMemberRepo(db, newTestLogger(t))

	err := repo.Join(context.Background(), "h1", "u2", domain.MemberTypeMember)

	require.Error(t, err)
	assert.Len(t, conn.statements(), 2)
	assert.Equal(t, 0, conn.commits)
	assert.Equal(t, 1, conn.rollbacks)
}

func TestMemberRepository_Remove_RollsBackWhenRoleWriteFails(t *testing.T) {
	db, conn := newFakeDB(t, map[int]error{2: errors.New("network")})
	repo := NewMemberRepo(db, newTestLogger(t))

	err := repo.Remove(context.Background(), "h1", "u2")

	require.Error(t, err)
	assert.Equal(t, 0, conn.commits)
	assert.Equal(t, 1, conn.rollbacks)
}

func TestMemberRepository_Remove_DeletesLinkAndRole(t *testing.T) {
	db, conn := newFakeDB(t, nil)
	repo := NewMemberRepo(db, newTestLogger(t))

	require.NoError(t, repo.Remove(context.Background(), "h1", "u2"))

	stmts := conn.statements()
	require.Len(t, stmts, 2)
	assert.Contains(t, stmts[0], "DELETE FROM host_member_links")
	assert.Contains(t, stmts[1], "host_member_types - $2")
	assert.Equal(t, 1, conn.commits)
}

func TestGuestRepository_Add_DropsPendingRequest(t *testing.T) {
	db, conn := newFakeDB(t, nil)
	repo := NewGuestRepo(db, newTestLogger(t))
	userID := "u1"

	err := repo.Add(context.Background(), &domain.EventGuest{
		ID:      "u1",
		EventID: "e1",
		UserID:  &userID,
		Name:    "Alice",
		Gender:  domain.GenderWoman,
		Status:  domain.GuestStatusInvited,
	}, nil)

	require.NoError(t, err)
	stmts := conn.statements()
	require.Len(t, stmts, 2)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(stmts[0]), "INSERT INTO event_guests"))
	assert.Contains(t, stmts[1], "DELETE FROM event_requests")
	assert.Equal(t, 1, conn.commits)
}
