package qr

import (
	"bytes"
	"testing"
	"time"

	"clinictrack/internal/models"
)

func TestParsePayloadJSONFieldPriority(t *testing.T) {
	cases := []struct{ payload, want string }{
		{`{"studentId":"KLU001","id":"other","rollNumber":"third"}`, "KLU001"},
		{`{"id":"KLU002","rollNumber":"other"}`, "KLU002"},
		{`{"rollNumber":"KLU003"}`, "KLU003"},
	}

	for _, tc := range cases {
		if got := ParsePayload(tc.payload); got != tc.want {
			t.Errorf("ParsePayload(%s) = %q, want %q", tc.payload, got, tc.want)
		}
	}
}

func TestParsePayloadJSONWithoutUsableField(t *testing.T) {
	payload := `{"name":"Rahul Kumar"}`
	if got := ParsePayload(payload); got != payload {
		t.Errorf("expected the raw payload back, got %q", got)
	}
}

func TestParsePayloadTextExtraction(t *testing.T) {
	cases := []struct{ payload, want string }{
		{"Student ID: KLU001", "KLU001"},
		{"Roll number KLU042 issued 2024", "KLU042"},
		{"id=ABC1234", "ABC1234"},
	}

	for _, tc := range cases {
		if got := ParsePayload(tc.payload); got != tc.want {
			t.Errorf("ParsePayload(%q) = %q, want %q", tc.payload, got, tc.want)
		}
	}
}

func TestParsePayloadRawFallback(t *testing.T) {
	if got := ParsePayload("KLU001"); got != "KLU001" {
		t.Errorf("expected a bare ID to pass through, got %q", got)
	}
	if got := ParsePayload("hello world"); got != "hello world" {
		t.Errorf("expected unmatchable text to pass through, got %q", got)
	}
}

func TestLookupStudent(t *testing.T) {
	info, ok := LookupStudent("KLU001")
	if !ok {
		t.Fatal("expected KLU001 in the directory")
	}
	if info.Name != "Rahul Kumar" {
		t.Errorf("unexpected directory name %q", info.Name)
	}

	if _, ok := LookupStudent("KLU999"); ok {
		t.Error("expected unknown IDs to miss")
	}
}

func TestEncodeProducesPNG(t *testing.T) {
	visit := models.Visit{
		Name:      "Rahul Kumar",
		StudentID: "KLU001",
		EntryTime: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		Symptoms:  "Fever",
	}

	png, err := Encode(visit)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("expected PNG output")
	}
}
