package factory

import (
	"fmt"
	"time"

	"github.com/mcoot/othello-arena/internal/dependencies/mocks"
	"github.com/mcoot/othello-arena/internal/model"
	"github.com/mcoot/othello-arena/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// Game IDs are sequential: game-1, game-2, ...
func NewTestApp() *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	next := 0
	app := newWithDependencies(mockClock, mockRandom, testutil.NopLogger(), func() model.GameID {
		next++
		return model.GameID(fmt.Sprintf("game-%d", next))
	})

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
