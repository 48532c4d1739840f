// Package tests provides helpers shared by this module's test suites:
// contexts tagged with a unique test identity, and record types with
// deterministic generators for exercising the sorted containers.
package tests

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/JohnScience/sorted-vec2/contexts"
)

// contextKey keeps test metadata keys from colliding with other
// packages' context keys.
type contextKey string

const (
	testIDKey   contextKey = "testId"
	testNameKey contextKey = "testName"
)

// GetUniqueContext returns a context derived from t.Context() carrying
// the test's name and a fresh unique identifier. Parallel tests that
// attach tracers or loggers to their context get isolated values this
// way, and resources named after the identifier cannot collide.
func GetUniqueContext(t *testing.T) context.Context {
	t.Helper()

	return contexts.WithMultipleValues[contextKey](t.Context(), map[contextKey]any{
		testIDKey:   "test-" + uuid.New().String(),
		testNameKey: t.Name(),
	})
}

// GetTestName returns the test name attached by GetUniqueContext.
func GetTestName(ctx context.Context) (string, bool) {
	return contexts.GetValue[contextKey, string](ctx, testNameKey)
}

// GetTestID returns the unique identifier attached by GetUniqueContext.
func GetTestID(ctx context.Context) (string, bool) {
	return contexts.GetValue[contextKey, string](ctx, testIDKey)
}
