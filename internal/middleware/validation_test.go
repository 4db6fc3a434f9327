package middleware

import (
	"strings"
	"testing"

	"github.com/Dharmub376/Digital-Chunab/internal/model"
)

func TestValidateUUID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid v4", "8f14e45f-ceea-467f-9e4d-5a7b3c2d1e0f", "8f14e45f-ceea-467f-9e4d-5a7b3c2d1e0f", false},
		{"uppercase normalized", "8F14E45F-CEEA-467F-9E4D-5A7B3C2D1E0F", "8f14e45f-ceea-467f-9e4d-5a7b3c2d1e0f", false},
		{"trims whitespace", " 8f14e45f-ceea-467f-9e4d-5a7b3c2d1e0f ", "8f14e45f-ceea-467f-9e4d-5a7b3c2d1e0f", false},
		{"empty", "", "", true},
		{"not a uuid", "12345", "", true},
		{"sql injection", "'; DROP TABLE votes--", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateUUID(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidatePagination(t *testing.T) {
	tests := []struct {
		name      string
		page      string
		limit     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", "", 1, 10},
		{"explicit", "3", "25", 3, 25},
		{"zero page falls back", "0", "10", 1, 10},
		{"negative falls back", "-2", "-5", 1, 10},
		{"garbage falls back", "abc", "xyz", 1, 10},
		{"limit clamped", "1", "10000", 1, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := ValidatePagination(tt.page, tt.limit)
			if page != tt.wantPage || limit != tt.wantLimit {
				t.Errorf("got (%d, %d), want (%d, %d)", page, limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestValidateSearch(t *testing.T) {
	if got := ValidateSearch("  alice  "); got != "alice" {
		t.Errorf("trim failed: got %q", got)
	}
	long := strings.Repeat("x", 200)
	if got := ValidateSearch(long); len(got) != MaxSearchLen {
		t.Errorf("truncation failed: got len %d, want %d", len(got), MaxSearchLen)
	}
}

func TestValidateStruct_LoginRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     model.LoginRequest
		wantErr bool
	}{
		{"valid student", model.LoginRequest{Email: "a@b.edu", Password: "secret1", Role: "student"}, false},
		{"valid admin", model.LoginRequest{Email: "a@b.edu", Password: "secret1", Role: "admin"}, false},
		{"bad email", model.LoginRequest{Email: "not-an-email", Password: "secret1", Role: "student"}, true},
		{"short password", model.LoginRequest{Email: "a@b.edu", Password: "abc", Role: "student"}, true},
		{"bad role", model.LoginRequest{Email: "a@b.edu", Password: "secret1", Role: "root"}, true},
		{"missing everything", model.LoginRequest{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := ValidateStruct(tt.req)
			if tt.wantErr && msg == "" {
				t.Errorf("expected validation message, got none")
			}
			if !tt.wantErr && msg != "" {
				t.Errorf("unexpected validation message: %s", msg)
			}
		})
	}
}

func TestValidateStruct_VoteRequest(t *testing.T) {
	valid := model.VoteRequest{
		PositionID:  "8f14e45f-ceea-467f-9e4d-5a7b3c2d1e0f",
		CandidateID: "0c74f13f-77b0-4c2d-b6af-9e8d7c6b5a4f",
	}
	if msg := ValidateStruct(valid); msg != "" {
		t.Errorf("unexpected validation message: %s", msg)
	}

	if msg := ValidateStruct(model.VoteRequest{PositionID: "nope", CandidateID: "also-nope"}); msg == "" {
		t.Error("expected validation message for malformed UUIDs")
	}
	if msg := ValidateStruct(model.VoteRequest{}); msg == "" {
		t.Error("expected validation message for empty body")
	}
}
