package llmcache

import (
	"context"
	"errors"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/heartmarshall/llmstxt-backend/internal/domain"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func TestRepo_Upsert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "success",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`INSERT INTO llm_content_cache .* ON CONFLICT \(shop\) DO UPDATE`).
					WithArgs("shop-a.myshopify.com", "# [Shop A](https://shop-a.myshopify.com)").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "database failure",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`INSERT INTO llm_content_cache`).
					WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: domain.ErrCacheWriteFailed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mock := newMock(t)
			tt.setup(mock)

			err := New(mock).Upsert(context.Background(), "shop-a.myshopify.com", "# [Shop A](https://shop-a.myshopify.com)")
			if tt.wantErr == nil && err != nil {
				t.Fatalf("Upsert() unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("Upsert() error = %v, want %v", err, tt.wantErr)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestRepo_GetMany(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT shop, content, updated_at FROM llm_content_cache WHERE shop IN \(\$1,\$2\)`).
		WithArgs("a.myshopify.com", "b.myshopify.com").
		WillReturnRows(pgxmock.NewRows([]string{"shop", "content", "updated_at"}).
			AddRow("a.myshopify.com", "# a", now))

	got, err := New(mock).GetMany(context.Background(), []string{"a.myshopify.com", "b.myshopify.com"})
	if err != nil {
		t.Fatalf("GetMany() unexpected error: %v", err)
	}
	if len(got) != 1 || got["a.myshopify.com"].Content != "# a" {
		t.Errorf("GetMany() = %v", got)
	}
	if _, ok := got["b.myshopify.com"]; ok {
		t.Error("missing shop must be absent from the result")
	}
}

func TestRepo_GetMany_Empty(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	got, err := New(mock).GetMany(context.Background(), nil)
	if err != nil || len(got) != 0 {
		t.Fatalf("GetMany(nil) = %v, %v", got, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("no query expected: %v", err)
	}
}
