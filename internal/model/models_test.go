package model_test

import (
	"testing"

	"github.com/DeadAB/Gotcha-Advanced-Username-Email-OSINT-Tool/internal/model"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"FOUND", "NOT_FOUND", "TIMEOUT", "TRANSPORT_ERROR", "UNVERIFIED"} {
		got, err := model.ParseStatus(s)
		if err != nil {
			t.Errorf("ParseStatus(%q): %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParseStatus(%q) = %q", s, got)
		}
	}
	for _, s := range []string{"", "found", "MAYBE"} {
		if _, err := model.ParseStatus(s); err == nil {
			t.Errorf("ParseStatus(%q) accepted", s)
		}
	}
}

func TestIsFailure(t *testing.T) {
	failures := map[model.Status]bool{
		model.StatusFound:          false,
		model.StatusNotFound:       false,
		model.StatusUnverified:     false,
		model.StatusTimeout:        true,
		model.StatusTransportError: true,
	}
	for status, want := range failures {
		if got := status.IsFailure(); got != want {
			t.Errorf("%s.IsFailure() = %v, want %v", status, got, want)
		}
	}
}

func TestTotalFound(t *testing.T) {
	r := model.HuntReport{
		Identifier: "alice",
		Categories: map[string][]model.ProbeResult{
			"social":    {{Platform: "twitter"}, {Platform: "instagram"}},
			"developer": {{Platform: "github"}},
			"gaming":    {},
		},
	}
	if got := r.TotalFound(); got != 3 {
		t.Fatalf("TotalFound = %d, want 3", got)
	}
}
