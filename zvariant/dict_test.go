package zvariant

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ============================================================
// Dict Tests
// ============================================================

func TestDict_Signature(t *testing.T) {
	d := NewDict("s", "u")
	if got := d.Signature(); got != "a{su}" {
		t.Errorf("empty dict: expected a{su}, got %q", got)
	}
	if err := Add(d, "a", uint32(1)); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if got := d.Signature(); got != "a{su}" {
		t.Errorf("non-empty dict: expected a{su}, got %q", got)
	}

	nested := NewDict("y", "a{sv}")
	if got := nested.Signature(); got != "a{ya{sv}}" {
		t.Errorf("nested: expected a{ya{sv}}, got %q", got)
	}
}

func TestDict_AppendChecksSignatures(t *testing.T) {
	d := NewDict("s", "u")
	if err := d.Append(Str("a"), U32(1)); err != nil {
		t.Fatalf("matching append failed: %v", err)
	}
	if err := d.Append(U32(2), U32(2)); !errors.Is(err, ErrIncorrectType) {
		t.Errorf("wrong key signature: expected ErrIncorrectType, got %v", err)
	}
	if err := d.Append(Str("b"), Str("b")); !errors.Is(err, ErrIncorrectType) {
		t.Errorf("wrong value signature: expected ErrIncorrectType, got %v", err)
	}
	if d.Len() != 1 {
		t.Errorf("failed appends must leave the dict unchanged, len=%d", d.Len())
	}
}

func TestDict_AddIncorrectKeyType(t *testing.T) {
	// Dict declared over i32 keys; a string key must be rejected and
	// leave the dictionary empty.
	d := NewDict("i", "u")
	if err := Add(d, "x", uint32(5)); !errors.Is(err, ErrIncorrectType) {
		t.Errorf("expected ErrIncorrectType, got %v", err)
	}
	if d.Len() != 0 {
		t.Errorf("dict should be empty after failed Add, len=%d", d.Len())
	}
}

func TestDict_AddThenGet(t *testing.T) {
	d := NewDict("s", "u")
	if err := Add(d, "answer", uint32(42)); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	got, err := Get[string, uint32](d, "answer")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil || *got != 42 {
		t.Errorf("expected 42, got %v", got)
	}

	missing, err := Get[string, uint32](d, "question")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if missing != nil {
		t.Errorf("expected no match, got %v", *missing)
	}
}

func TestDict_GetFirstMatchWins(t *testing.T) {
	// Duplicate keys are legal; the forward scan returns the FIRST
	// matching entry, not the last as a native map would.
	d := NewDict("s", "u")
	for _, e := range []struct {
		k string
		v uint32
	}{{"a", 1}, {"b", 2}, {"a", 3}} {
		if err := Add(d, e.k, e.v); err != nil {
			t.Fatalf("Add(%q, %d) failed: %v", e.k, e.v, err)
		}
	}

	got, err := Get[string, uint32](d, "a")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil || *got != 1 {
		t.Errorf("expected first match 1, got %v", got)
	}
}

func TestDict_GetStrictDowncast(t *testing.T) {
	d := NewDict("s", "u")
	if err := Add(d, "a", uint32(1)); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	// Wrong requested key type fails the whole call on the first
	// scanned entry, before any equality check.
	if _, err := Get[uint32, uint32](d, 1); !errors.Is(err, ErrIncorrectType) {
		t.Errorf("wrong key type: expected ErrIncorrectType, got %v", err)
	}
	// Wrong requested value type fails once a key matches.
	if _, err := Get[string, string](d, "a"); !errors.Is(err, ErrIncorrectType) {
		t.Errorf("wrong value type: expected ErrIncorrectType, got %v", err)
	}
}

func TestDict_MapRoundTrip(t *testing.T) {
	orig := map[string]uint32{"a": 1, "b": 2, "c": 3}

	d := DictFromMap(orig)
	if got := d.Signature(); got != "a{su}" {
		t.Errorf("inferred signature: expected a{su}, got %q", got)
	}
	if d.Len() != len(orig) {
		t.Errorf("expected %d entries, got %d", len(orig), d.Len())
	}

	back, err := DictToMap[string, uint32](d)
	if err != nil {
		t.Fatalf("DictToMap failed: %v", err)
	}
	if diff := cmp.Diff(orig, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDict_ToMapDuplicateKeysLastWins(t *testing.T) {
	d := NewDict("s", "u")
	for _, e := range []struct {
		k string
		v uint32
	}{{"a", 1}, {"a", 3}} {
		if err := Add(d, e.k, e.v); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	m, err := DictToMap[string, uint32](d)
	if err != nil {
		t.Fatalf("DictToMap failed: %v", err)
	}
	if m["a"] != 3 {
		t.Errorf("native-map conversion is last-wins, got %d", m["a"])
	}
}

func TestDict_ToMapAllOrNothing(t *testing.T) {
	d := NewDict("s", "v")
	if err := d.Append(Str("a"), Variant(U32(1))); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if _, err := DictToMap[string, uint32](d); !errors.Is(err, ErrIncorrectType) {
		t.Errorf("boxed values cannot extract as uint32: expected ErrIncorrectType, got %v", err)
	}
}

func TestDict_CloneDetachesBorrowedData(t *testing.T) {
	buf := []byte("key")
	d := NewDict("s", "u")
	if err := d.Append(StrBytes(buf), U32(7)); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	c := d.Clone()
	buf[0] = 'X' // caller discards/reuses the buffer

	got, err := Get[string, uint32](c, "key")
	if err != nil {
		t.Fatalf("Get on clone failed: %v", err)
	}
	if got == nil || *got != 7 {
		t.Errorf("clone should still hold the original key, got %v", got)
	}
	if gone, _ := Get[string, uint32](d, "key"); gone != nil {
		t.Errorf("original now views mutated bytes; \"key\" should not match")
	}
}

// recordLog collects emitted records for order checks.
type recordLog struct {
	records []DictEntry
	failAt  int // fail on this record index if >= 0
}

func (r *recordLog) WriteRecord(key, value Value) error {
	if r.failAt >= 0 && len(r.records) == r.failAt {
		return fmt.Errorf("writer full")
	}
	r.records = append(r.records, DictEntry{Key: key, Value: value})
	return nil
}

func TestDict_EmitRecordsOrder(t *testing.T) {
	d := NewDict("s", "u")
	keys := []string{"c", "a", "b", "a"}
	for i, k := range keys {
		if err := Add(d, k, uint32(i)); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	log := &recordLog{failAt: -1}
	if err := d.EmitRecords(log); err != nil {
		t.Fatalf("EmitRecords failed: %v", err)
	}
	if len(log.records) != len(keys) {
		t.Fatalf("expected %d records, got %d", len(keys), len(log.records))
	}
	for i, rec := range log.records {
		k, err := Extract[string](rec.Key)
		if err != nil {
			t.Fatalf("record %d key: %v", i, err)
		}
		if k != keys[i] {
			t.Errorf("record %d: expected key %q, got %q (insertion order must hold)", i, keys[i], k)
		}
	}
}

func TestDict_EmitRecordsStopsOnError(t *testing.T) {
	d := NewDict("s", "u")
	for i, k := range []string{"a", "b", "c"} {
		if err := Add(d, k, uint32(i)); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	log := &recordLog{failAt: 1}
	if err := d.EmitRecords(log); err == nil {
		t.Fatalf("expected writer error")
	}
	if len(log.records) != 1 {
		t.Errorf("emission should stop at the first writer error, wrote %d", len(log.records))
	}
}

func TestDict_EntriesView(t *testing.T) {
	d := NewDict("y", "b")
	if err := Add(d, uint8(1), true); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	entries := d.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if sig := entries[0].Key.Signature(); sig != "y" {
		t.Errorf("entry key signature: expected y, got %q", sig)
	}
}

func TestDict_EqualAndClone(t *testing.T) {
	d := NewDict("s", "x")
	if err := Add(d, "n", int64(-40)); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	c := d.Clone()
	if !d.Equal(c) {
		t.Errorf("clone must equal original")
	}
	if err := Add(c, "m", int64(1)); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if d.Equal(c) {
		t.Errorf("diverged dicts must not compare equal")
	}
}
