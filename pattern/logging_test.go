package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuzzyml/fuzzygo/pkg/log"
)

func TestFit_LogsStructuredEvents(t *testing.T) {
	provider, _ := log.NewTestLoggerProvider(log.LevelDebug)
	log.SetProvider(provider)
	t.Cleanup(func() { log.SetProvider(nil) })

	X, y := fixtureData()

	clf := NewRandomAgreementClassifier(WithNAgreeing(2), WithNSamples(1), WithRandomState(0))
	require.NoError(t, clf.Fit(X, y))

	testLogger, ok := provider.GetLogger().(*log.TestLogger)
	require.True(t, ok)

	assert.True(t, testLogger.ContainsMessage("fit complete"))

	entries, err := testLogger.Entries()
	require.NoError(t, err)

	var sawTrials bool
	for _, entry := range entries {
		if entry["message"] == "agreement trials finished" {
			sawTrials = true
			assert.Equal(t, float64(100), entry[log.TrialsKey])
		}
	}
	assert.True(t, sawTrials, "per-class trial summaries should be logged at debug")
}
