package attempt

import "testing"

func TestLedger_PutOverwrites(t *testing.T) {
	l := NewLedger()

	l.Put("q1", "a")
	l.Put("q1", "b")
	l.Put("q2", "c")

	if got, _ := l.Get("q1"); got != "b" {
		t.Errorf("Get(q1) = %q, want %q (last write wins)", got, "b")
	}
	if l.Len() != 2 {
		t.Errorf("Len() = %d, want 2", l.Len())
	}
}

func TestLedger_GetMissing(t *testing.T) {
	l := NewLedger()
	if _, ok := l.Get("q1"); ok {
		t.Error("expected Get on empty ledger to report missing")
	}
}

func TestLedger_SnapshotDecoupled(t *testing.T) {
	l := NewLedger()
	l.Put("q1", "a")

	snap := l.Snapshot()
	l.Put("q1", "b")
	l.Put("q2", "c")

	if snap["q1"] != "a" {
		t.Errorf("snapshot q1 = %q, want %q (must not see later writes)", snap["q1"], "a")
	}
	if len(snap) != 1 {
		t.Errorf("snapshot len = %d, want 1", len(snap))
	}
}
