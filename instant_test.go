package cron

import "testing"

func TestInstantValid(t *testing.T) {
	if !(Instant{Sec: 0, Nsec: 0}).Valid() {
		t.Error("zero instant should be valid")
	}
	if !(Instant{Sec: 0, Nsec: 999999999}).Valid() {
		t.Error("999999999 ns should be valid")
	}
	if (Instant{Sec: 0, Nsec: 1000000000}).Valid() {
		t.Error("1000000000 ns should be invalid")
	}
	if (Instant{Sec: 0, Nsec: -1}).Valid() {
		t.Error("negative ns should be invalid")
	}
}

func TestInstantCompareAndAfter(t *testing.T) {
	a := Instant{Sec: 100, Nsec: 5}
	b := Instant{Sec: 100, Nsec: 6}
	c := Instant{Sec: 101, Nsec: 0}

	if a.Compare(a) != 0 {
		t.Error("a should compare equal to itself")
	}
	if a.Compare(b) >= 0 || !b.After(a) {
		t.Error("b should be after a")
	}
	if b.Compare(c) >= 0 || !c.After(b) {
		t.Error("c should be after b")
	}
	if a.After(a) {
		t.Error("a should not be after itself")
	}
}

func TestFieldValuesDecomposition(t *testing.T) {
	// 2025-02-01T00:00:00Z is a Saturday.
	i := Instant{Sec: 1738368000, Nsec: 0}
	values := fieldValues(i)
	if values[FieldDayOfMonth] != 1 {
		t.Errorf("day-of-month = %d, want 1", values[FieldDayOfMonth])
	}
	if values[FieldMonth] != 2 {
		t.Errorf("month = %d, want 2", values[FieldMonth])
	}
	if values[FieldDayOfWeek] != 6 { // Saturday
		t.Errorf("day-of-week = %d, want 6 (Saturday)", values[FieldDayOfWeek])
	}
	if values[FieldHour] != 0 || values[FieldMinute] != 0 || values[FieldSecond] != 0 {
		t.Errorf("expected midnight, got h=%d m=%d s=%d", values[FieldHour], values[FieldMinute], values[FieldSecond])
	}
}
