package session_test

import (
	"fmt"
	"testing"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/engine/registry"
	"pgregory.net/rapid"
)

// TestApplyOrderIsDeterministic drives the session with arbitrary plugin
// sequences and match outcomes: the applied markers must always equal the
// matching subsequence in discovery order, regardless of how many plugins
// there are or which of them match.
func TestApplyOrderIsDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		count := rapid.IntRange(1, 8).Draw(t, "count")
		matches := make([]bool, count)
		anyMatch := false
		for i := range matches {
			matches[i] = rapid.Bool().Draw(t, fmt.Sprintf("match-%d", i))
			anyMatch = anyMatch || matches[i]
		}

		plugins := make([]registry.Registered, count)
		var want []string
		for i := range plugins {
			marker := fmt.Sprintf("p%d", i)
			matched := matches[i]
			plugins[i] = registered(marker, &markerPlugin{
				marker: marker,
				match:  func(*domain.TypeDescription) bool { return matched },
			}, false)
			if matched {
				want = append(want, marker)
			}
		}

		s := newTestSessionRapid(plugins)

		got, err := s.Matches("com.app.Foo")
		if err != nil {
			t.Fatalf("unexpected match error: %v", err)
		}
		if got != anyMatch {
			t.Fatalf("Matches = %v, want %v", got, anyMatch)
		}

		out, err := s.Apply("com.app.Foo", []string{})
		if err != nil {
			t.Fatalf("unexpected apply error: %v", err)
		}
		markers := out.([]string) //nolint:forcetypeassert // Test carrier is always []string
		if len(markers) != len(want) {
			t.Fatalf("applied %v, want %v", markers, want)
		}
		for i := range want {
			if markers[i] != want[i] {
				t.Fatalf("applied %v, want %v", markers, want)
			}
		}
	})
}
