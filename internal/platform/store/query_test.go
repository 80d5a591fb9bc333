package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

type fakeTag int64

func (n fakeTag) String() string      { return fmt.Sprintf("INSERT 0 %d", int64(n)) }
func (n fakeTag) RowsAffected() int64 { return int64(n) }

// fakeQ records the last statement and replays canned results
type fakeQ struct {
	sql  string
	args []any

	tag  CommandTag
	rows Rows
	err  error
}

func (f *fakeQ) Exec(_ context.Context, sql string, args ...any) (CommandTag, error) {
	f.sql, f.args = sql, args
	return f.tag, f.err
}

func (f *fakeQ) Query(_ context.Context, sql string, args ...any) (Rows, error) {
	f.sql, f.args = sql, args
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func (f *fakeQ) QueryRow(context.Context, string, ...any) Row { return nil }

// strRows yields one string per row
type strRows struct {
	vals   []string
	i      int
	err    error
	closed bool
}

func (r *strRows) Next() bool { r.i++; return r.i <= len(r.vals) }
func (r *strRows) Err() error { return r.err }
func (r *strRows) Close()     { r.closed = true }
func (r *strRows) Scan(dest ...any) error {
	s, ok := dest[0].(*string)
	if !ok || len(dest) != 1 {
		return errors.New("want one *string")
	}
	*s = r.vals[r.i-1]
	return nil
}

func scanString(r Row) (string, error) {
	var s string
	err := r.Scan(&s)
	return s, err
}

func TestExecOne(t *testing.T) {
	conn := errors.New("conn reset")
	cases := map[string]struct {
		f       *fakeQ
		wantErr bool
	}{
		"one row":    {&fakeQ{tag: fakeTag(1)}, false},
		"no rows":    {&fakeQ{tag: fakeTag(0)}, true},
		"many rows":  {&fakeQ{tag: fakeTag(3)}, true},
		"exec error": {&fakeQ{err: conn}, true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := ExecOne(context.Background(), tc.f, "insert into subscriptions values ($1)", "x")
			if (err != nil) != tc.wantErr {
				t.Fatalf("ExecOne = %v", err)
			}
			if tc.f.err != nil && !errors.Is(err, conn) {
				t.Fatalf("exec error should come back unwrapped, got %v", err)
			}
		})
	}

	err := ExecOne(context.Background(), &fakeQ{tag: fakeTag(2)}, "x")
	if err == nil || err.Error() != "INSERT 0 2: affected 2 rows, want 1" {
		t.Fatalf("ExecOne message = %v", err)
	}
}

func TestMany(t *testing.T) {
	ctx := context.Background()

	rs := &strRows{vals: []string{"a@b.io", "c@d.io"}}
	got, err := Many(ctx, &fakeQ{rows: rs}, scanString, "q")
	if err != nil || len(got) != 2 || got[1] != "c@d.io" {
		t.Fatalf("Many = %v %v", got, err)
	}
	if !rs.closed {
		t.Fatalf("rows left open")
	}

	got, err = Many(ctx, &fakeQ{rows: &strRows{}}, scanString, "q")
	if err != nil || got != nil {
		t.Fatalf("empty Many = %v %v", got, err)
	}

	if _, err := Many(ctx, &fakeQ{err: errors.New("q")}, scanString, "q"); err == nil {
		t.Fatalf("query error swallowed")
	}

	badScan := func(Row) (string, error) { return "", errors.New("scan") }
	if _, err := Many(ctx, &fakeQ{rows: &strRows{vals: []string{"x"}}}, badScan, "q"); err == nil {
		t.Fatalf("scan error swallowed")
	}

	iter := &strRows{err: errors.New("iter")}
	if _, err := Many(ctx, &fakeQ{rows: iter}, scanString, "q"); err == nil || !iter.closed {
		t.Fatalf("rows.Err swallowed or rows left open: %v", err)
	}
}
