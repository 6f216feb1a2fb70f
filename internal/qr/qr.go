// Package qr handles the payload side of QR scanning and generation.
// Camera access and image display belong to external collaborators; this
// package only parses decoded payload text and encodes visit summaries.
package qr

import (
	"encoding/json"
	"fmt"
	"regexp"

	qrcode "github.com/skip2/go-qrcode"

	"clinictrack/internal/models"
)

// idPattern extracts a student ID (3 letters + at least 3 digits) from
// free-form text like "Student ID: KLU001".
var idPattern = regexp.MustCompile(`(?i)(?:ID|Roll|Student).*?([A-Z]{3}\d{3,})`)

// ParsePayload extracts a student ID from a decoded QR payload.
// Structured JSON payloads are checked for studentId, id, and rollNumber
// fields in that order; other text falls back to pattern extraction, then
// to the raw payload as a literal ID.
func ParsePayload(payload string) string {
	var parsed any
	if err := json.Unmarshal([]byte(payload), &parsed); err == nil {
		if obj, ok := parsed.(map[string]any); ok {
			for _, key := range []string{"studentId", "id", "rollNumber"} {
				if value, ok := obj[key].(string); ok && value != "" {
					return value
				}
			}
		}
		// valid JSON without a usable field keeps the raw payload
		return payload
	}

	if m := idPattern.FindStringSubmatch(payload); m != nil {
		return m[1]
	}

	return payload
}

// Encode renders a visit summary as a PNG QR image. The caller decides what
// to do with the bytes; an encode failure never touches the visit record.
func Encode(v models.Visit) ([]byte, error) {
	content := fmt.Sprintf("Student: %s (%s)\nEntry: %s\nSymptoms: %s",
		v.Name, v.StudentID, v.EntryTime.Format("02 Jan 2006 15:04"), v.Symptoms)

	return qrcode.Encode(content, qrcode.Medium, 256)
}
