package cron

import "testing"

// Reverse/empty window: until <= after is a no-op that fires nothing and
// still reports success.
func TestExecuteBetweenReverseWindowIsNoop(t *testing.T) {
	ctx := NewContext()
	count := 0
	mustAdd(t, ctx, "0 * * * * * *", func(any, Instant) { count++ })

	after := Instant{Sec: 1739788205, Nsec: 0}
	until := Instant{Sec: 1739788204, Nsec: 0}

	if ok := ctx.ExecuteBetween(after, until); !ok {
		t.Fatal("ExecuteBetween should report success for a reverse window")
	}
	if count != 0 {
		t.Fatalf("count = %d, want 0 (reverse window must fire nothing)", count)
	}
}

func TestExecuteBetweenEmptyWindowIsNoop(t *testing.T) {
	ctx := NewContext()
	count := 0
	mustAdd(t, ctx, "0 * * * * * *", func(any, Instant) { count++ })

	t0 := Instant{Sec: 1739788200, Nsec: 0}
	if ok := ctx.ExecuteBetween(t0, t0); !ok {
		t.Fatal("ExecuteBetween should report success for an empty window")
	}
	if count != 0 {
		t.Fatalf("count = %d, want 0 (until == after must fire nothing)", count)
	}
}

// after is exclusive, until is inclusive: a job matching exactly at after
// does not fire, but one matching exactly at until does.
func TestExecuteBetweenStrictLowerBoundInclusiveUpperBound(t *testing.T) {
	ctx := NewContext()
	var fired []Instant
	mustAdd(t, ctx, "0,500000000 * * * * * *", func(_ any, at Instant) { fired = append(fired, at) })

	after := Instant{Sec: 1739788200, Nsec: 0}
	until := Instant{Sec: 1739788200, Nsec: 500000000}

	if ok := ctx.ExecuteBetween(after, until); !ok {
		t.Fatal("ExecuteBetween should succeed")
	}

	want := []Instant{{Sec: 1739788200, Nsec: 500000000}}
	if len(fired) != len(want) || fired[0] != want[0] {
		t.Fatalf("fired = %v, want %v (after excluded, until included)", fired, want)
	}
}
