package model

import "testing"

func TestRecordCopyIndependent(t *testing.T) {
	orig := Record{"strain": "A/1", "date": "2020"}
	dup := orig.Copy()
	dup["date"] = "2021"

	if orig["date"] != "2020" {
		t.Errorf("copy mutated the original: %v", orig["date"])
	}
	if dup["strain"] != "A/1" {
		t.Errorf("copy lost a field: %v", dup)
	}
}

func TestRecordGetString(t *testing.T) {
	rec := Record{"date": "2020", "empty": "", "count": 3}

	if v, ok := rec.GetString("date"); !ok || v != "2020" {
		t.Errorf("GetString(date) = %q, %v", v, ok)
	}
	if _, ok := rec.GetString("empty"); ok {
		t.Error("empty string should report absent")
	}
	if _, ok := rec.GetString("count"); ok {
		t.Error("non-string should report absent")
	}
	if _, ok := rec.GetString("missing"); ok {
		t.Error("missing field should report absent")
	}
}

func TestRecordFieldsSorted(t *testing.T) {
	rec := Record{"b": 1, "a": 2, "c": 3}
	got := rec.Fields()
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Fields() = %v, want %v", got, want)
		}
	}
}
