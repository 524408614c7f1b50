package cache

import (
	"context"
	"testing"
	"time"
)

func TestRedis_UnavailableBypasses(t *testing.T) {
	ctx := context.Background()
	var r *Redis

	hit, err := r.GetJSON(ctx, "k", &struct{}{})
	if err != nil || hit {
		t.Fatalf("expected miss without error, got hit=%v err=%v", hit, err)
	}
	if err := r.SetJSON(ctx, "k", map[string]int{"a": 1}, time.Second); err != nil {
		t.Fatalf("expected nil error on bypass, got %v", err)
	}
	if err := r.DeleteByPattern(ctx, "recs:*"); err != nil {
		t.Fatalf("expected nil error on bypass, got %v", err)
	}
	if gen, err := r.Generation(ctx, "recs-gen:u"); err != nil || gen != 0 {
		t.Fatalf("expected generation 0 on bypass, got %d err=%v", gen, err)
	}
	if err := r.BumpGeneration(ctx, "recs-gen:u"); err != nil {
		t.Fatalf("expected nil error on bypass, got %v", err)
	}
	if err := r.Ping(ctx); err == nil {
		t.Fatalf("expected ping error when unavailable")
	}
	if err := r.Close(); err != nil {
		t.Fatalf("expected nil close error, got %v", err)
	}
}

func TestNewRedisFromClient_DefaultTTL(t *testing.T) {
	r := NewRedisFromClient(nil, 0, nil)
	if r.defaultTTL != 600*time.Second {
		t.Fatalf("expected default ttl 600s, got %s", r.defaultTTL)
	}
	if !r.isUnavailable() {
		t.Fatalf("nil client must be treated as unavailable")
	}
}
