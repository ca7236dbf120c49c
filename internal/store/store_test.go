package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"skyvoyager/internal/config"
	"skyvoyager/internal/logger"
	"skyvoyager/internal/models"
)

func init() {
	logger.Init("test")
}

func newSQLiteStore(t *testing.T) *GormStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "store.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.StoreEntry{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return NewGormStore(db)
}

func newRedisStore(t *testing.T) *RedisStore {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, "test:")
}

// runContract exercises the behaviour every Store adapter must share.
func runContract(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("missing_key", func(t *testing.T) {
		if _, err := s.Get(ctx, "nope"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("set_then_get", func(t *testing.T) {
		if err := s.Set(ctx, "wallet", []byte(`{"balance":1}`)); err != nil {
			t.Fatalf("set failed: %v", err)
		}
		got, err := s.Get(ctx, "wallet")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if string(got) != `{"balance":1}` {
			t.Errorf("unexpected value %s", got)
		}
	})

	t.Run("set_replaces_whole_value", func(t *testing.T) {
		if err := s.Set(ctx, "k", []byte("first")); err != nil {
			t.Fatalf("set failed: %v", err)
		}
		if err := s.Set(ctx, "k", []byte("second")); err != nil {
			t.Fatalf("set failed: %v", err)
		}
		got, err := s.Get(ctx, "k")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if string(got) != "second" {
			t.Errorf("expected second, got %s", got)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := s.Set(ctx, "user", []byte("{}")); err != nil {
			t.Fatalf("set failed: %v", err)
		}
		if err := s.Delete(ctx, "user"); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		if _, err := s.Get(ctx, "user"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound after delete, got %v", err)
		}
		if err := s.Delete(ctx, "user"); err != nil {
			t.Errorf("deleting a missing key should not fail: %v", err)
		}
	})
}

func TestMemoryStore(t *testing.T) {
	runContract(t, NewMemoryStore())

	t.Run("returned_value_is_a_copy", func(t *testing.T) {
		s := NewMemoryStore()
		ctx := context.Background()
		_ = s.Set(ctx, "k", []byte("abc"))
		got, _ := s.Get(ctx, "k")
		got[0] = 'x'
		again, _ := s.Get(ctx, "k")
		if string(again) != "abc" {
			t.Errorf("stored value was mutated through Get result: %s", again)
		}
	})
}

func TestGormStore(t *testing.T) {
	runContract(t, newSQLiteStore(t))
}

func TestRedisStore(t *testing.T) {
	runContract(t, newRedisStore(t))
}

func TestJSONHelpers(t *testing.T) {
	ctx := context.Background()

	t.Run("round_trip", func(t *testing.T) {
		s := NewMemoryStore()
		in := models.Wallet{Balance: 42, Transactions: []models.WalletTransaction{{Amount: 8, Type: models.TransactionTypeDebit}}}
		if err := SetJSON(ctx, s, KeyWallet, in); err != nil {
			t.Fatalf("SetJSON failed: %v", err)
		}

		var out models.Wallet
		found, err := GetJSON(ctx, s, KeyWallet, &out)
		if err != nil || !found {
			t.Fatalf("expected value, found=%v err=%v", found, err)
		}
		if out.Balance != 42 || len(out.Transactions) != 1 {
			t.Errorf("unexpected wallet %+v", out)
		}
	})

	t.Run("absent", func(t *testing.T) {
		var out models.Wallet
		found, err := GetJSON(ctx, NewMemoryStore(), KeyWallet, &out)
		if err != nil || found {
			t.Fatalf("expected absent, found=%v err=%v", found, err)
		}
	})

	t.Run("corrupted_value_is_treated_as_absent", func(t *testing.T) {
		s := NewMemoryStore()
		_ = s.Set(ctx, KeyBookings, []byte("{not json"))

		var out []models.Booking
		found, err := GetJSON(ctx, s, KeyBookings, &out)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found {
			t.Error("corrupted value should be reported as absent")
		}
	})
}

func TestFlightsKey(t *testing.T) {
	if got := FlightsKey("DEL", "BOM", "2025-06-01"); got != "flights_DEL_BOM_2025-06-01" {
		t.Errorf("unexpected key %q", got)
	}
}

func TestOpen(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		s, closeFn, err := Open(context.Background(), &config.Config{StoreDriver: config.StoreDriverMemory})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer func() { _ = closeFn() }()
		if _, ok := s.(*MemoryStore); !ok {
			t.Errorf("expected *MemoryStore, got %T", s)
		}
	})

	t.Run("sqlite", func(t *testing.T) {
		cfg := &config.Config{StoreDriver: config.StoreDriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "open.db")}
		s, closeFn, err := Open(context.Background(), cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer func() { _ = closeFn() }()
		runContract(t, s)
	})

	t.Run("redis", func(t *testing.T) {
		srv := miniredis.RunT(t)
		cfg := &config.Config{StoreDriver: config.StoreDriverRedis, RedisAddr: srv.Addr(), RedisPrefix: "sv:"}
		s, closeFn, err := Open(context.Background(), cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer func() { _ = closeFn() }()
		runContract(t, s)
	})

	t.Run("unknown_driver", func(t *testing.T) {
		if _, _, err := Open(context.Background(), &config.Config{StoreDriver: "etcd"}); err == nil {
			t.Fatal("expected error for unknown driver")
		}
	})
}
