package localstore_test

import (
	"context"
	"testing"

	"inventory-dashboard/internal/localstore"
)

func TestMemory_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := localstore.NewMemory()

	if _, ok, err := kv.Get(ctx, "missing"); ok || err != nil {
		t.Fatalf("Get(missing) = ok=%v err=%v, want absent without error", ok, err)
	}

	if err := kv.Put(ctx, "k", []byte("v1")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok, err := kv.Get(ctx, "k")
	if err != nil || !ok || string(got) != "v1" {
		t.Fatalf("Get = (%q, %v, %v), want v1", got, ok, err)
	}

	// Overwrite wins.
	if err := kv.Put(ctx, "k", []byte("v2")); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}
	got, _, _ = kv.Get(ctx, "k")
	if string(got) != "v2" {
		t.Fatalf("after overwrite = %q, want v2", got)
	}

	if err := kv.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := kv.Get(ctx, "k"); ok {
		t.Fatalf("key still present after delete")
	}
	// Deleting an absent key is a no-op.
	if err := kv.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete(absent): %v", err)
	}
}

func TestMemory_CopiesDefendAgainstMutation(t *testing.T) {
	ctx := context.Background()
	kv := localstore.NewMemory()

	src := []byte("original")
	if err := kv.Put(ctx, "k", src); err != nil {
		t.Fatalf("Put: %v", err)
	}
	src[0] = 'X'

	got, _, _ := kv.Get(ctx, "k")
	if string(got) != "original" {
		t.Fatalf("stored value shares memory with caller: %q", got)
	}

	got[0] = 'Y'
	again, _, _ := kv.Get(ctx, "k")
	if string(again) != "original" {
		t.Fatalf("returned value shares memory with store: %q", again)
	}
}
