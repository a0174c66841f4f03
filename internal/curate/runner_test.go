package curate

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/text/unicode/norm"

	"seqlab.dev/metacurate/internal/model"
)

func TestRunFormatDates(t *testing.T) {
	in := strings.NewReader(`{"strain":"A/1","date":"2020-01"}
{"strain":"A/2","date":"01-01"}
{"strain":"A/3","date":"not-a-date"}
`)
	var out, diag bytes.Buffer
	log := zerolog.New(&diag)

	task := &FormatDates{
		DateFields:      []string{"date"},
		ExpectedFormats: testFormats,
		Log:             log,
	}
	summary, err := Run(in, &out, []Task{task}, zerolog.Nop())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if summary.RecordsRead != 3 || summary.RecordsWritten != 3 {
		t.Fatalf("summary = %+v", summary)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 output lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], `"2020-01-XX"`) {
		t.Errorf("line 0: %s", lines[0])
	}
	if !strings.Contains(lines[1], `"XXXX-XX-XX"`) {
		t.Errorf("line 1: %s", lines[1])
	}
	if !strings.Contains(lines[2], `"not-a-date"`) {
		t.Errorf("line 2: %s", lines[2])
	}
	if !strings.Contains(diag.String(), "not-a-date") {
		t.Errorf("expected a warning for the unmatched value, got %q", diag.String())
	}
}

func TestRunTaskChain(t *testing.T) {
	in := strings.NewReader(`{"location":"  Hubei   Province ","date":"2021-3-4"}` + "\n")
	var out bytes.Buffer

	tasks := []Task{
		&NormalizeStrings{Fields: []string{"location"}, Form: norm.NFC},
		&FormatDates{DateFields: []string{"date"}, ExpectedFormats: testFormats, Log: zerolog.Nop()},
	}
	if _, err := Run(in, &out, tasks, zerolog.Nop()); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, `"Hubei Province"`) {
		t.Errorf("string normalization missing: %s", got)
	}
	if !strings.Contains(got, `"2021-03-04"`) {
		t.Errorf("date normalization missing: %s", got)
	}
}

func TestRunMalformedInput(t *testing.T) {
	in := strings.NewReader(`{"date":"2020"}` + "\n" + `{oops` + "\n")
	var out bytes.Buffer

	summary, err := Run(in, &out, []Task{Passthru{}}, zerolog.Nop())
	if err == nil {
		t.Fatal("expected error for malformed record")
	}
	if summary.RecordsWritten != 1 {
		t.Errorf("records before the failure should be written, got %d", summary.RecordsWritten)
	}
}

func TestNormalizeStringsAllFields(t *testing.T) {
	task := &NormalizeStrings{Form: norm.NFC}
	rec := model.Record{"a": " x  y ", "b": 3, "c": "z"}

	out, err := task.Apply(rec)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if out["a"] != "x y" || out["c"] != "z" || out["b"] != 3 {
		t.Errorf("unexpected output: %v", out)
	}
}

func TestFormByName(t *testing.T) {
	if f, err := FormByName(""); err != nil || f != norm.NFC {
		t.Errorf("default form: %v %v", f, err)
	}
	if _, err := FormByName("NFX"); err == nil {
		t.Error("expected error for unknown form")
	}
}
