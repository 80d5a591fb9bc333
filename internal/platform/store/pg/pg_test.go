package pg

import (
	"context"
	"errors"
	"testing"
	"time"

	"newsletter/internal/platform/testkit"

	"github.com/jackc/pgx/v5/pgxpool"
)

const dsn = "postgres://app:secret@db:5432/newsletter?sslmode=disable&connect_timeout=9"

func TestOpen_BadURL(t *testing.T) {
	if _, err := Open(context.Background(), Config{URL: "://bad"}); err == nil {
		t.Fatalf("want parse error")
	}
}

func TestOpen_PoolError(t *testing.T) {
	testkit.Serial(t)
	testkit.Swap(t, &newPool, func(context.Context, *pgxpool.Config) (*pgxpool.Pool, error) {
		return nil, errors.New("boom")
	})

	if _, err := Open(context.Background(), Config{URL: dsn}); err == nil || err.Error() != "boom" {
		t.Fatalf("err = %v", err)
	}
}

func TestOpen_OverridesThenTunes(t *testing.T) {
	testkit.Serial(t)

	var got *pgxpool.Config
	want := &pgxpool.Pool{}
	testkit.Swap(t, &newPool, func(_ context.Context, pc *pgxpool.Config) (*pgxpool.Pool, error) {
		got = pc
		return want, nil
	})

	var order []string
	p, err := Open(context.Background(), Config{URL: dsn, MaxConns: 7, ConnectTimeout: 2 * time.Second},
		func(pc *pgxpool.Config) {
			if pc.MaxConns != 7 {
				t.Fatalf("MaxConns = %d before tune", pc.MaxConns)
			}
			order = append(order, "a")
		},
		func(pc *pgxpool.Config) {
			pc.ConnConfig.RuntimeParams["application_name"] = "newsletter-api"
			order = append(order, "b")
		},
	)
	if err != nil || p != want {
		t.Fatalf("Open = %p %v", p, err)
	}
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("tune order = %v", order)
	}
	if got.ConnConfig.ConnectTimeout != 2*time.Second {
		t.Fatalf("ConnectTimeout = %v", got.ConnConfig.ConnectTimeout)
	}
	if got.ConnConfig.RuntimeParams["application_name"] != "newsletter-api" {
		t.Fatalf("runtime params = %v", got.ConnConfig.RuntimeParams)
	}
}

func TestOpen_KeepsURLTimeoutByDefault(t *testing.T) {
	testkit.Serial(t)

	var got *pgxpool.Config
	testkit.Swap(t, &newPool, func(_ context.Context, pc *pgxpool.Config) (*pgxpool.Pool, error) {
		got = pc
		return &pgxpool.Pool{}, nil
	})
	if _, err := Open(context.Background(), Config{URL: dsn}); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got.ConnConfig.ConnectTimeout != 9*time.Second {
		t.Fatalf("ConnectTimeout = %v, want the URL value", got.ConnConfig.ConnectTimeout)
	}
}
