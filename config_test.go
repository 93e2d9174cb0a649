package main

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlagsDefaults(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"duplication", "generic", "points"}, cfg.Lessons)
	assert.False(t, cfg.NoColor)
	assert.False(t, cfg.Verbose)
}

func TestParseFlagsSelection(t *testing.T) {
	cfg, err := parseFlags([]string{"-l", "points,generic", "--no-color", "-v"})
	require.NoError(t, err)
	assert.Equal(t, []string{"points", "generic"}, cfg.Lessons)
	assert.True(t, cfg.NoColor)
	assert.True(t, cfg.Verbose)
}

func TestParseFlagsUnknownLesson(t *testing.T) {
	_, err := parseFlags([]string{"--lesson", "lifetimes"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown lesson "lifetimes"`)
}

func TestParseFlagsHelp(t *testing.T) {
	_, err := parseFlags([]string{"--help"})
	assert.ErrorIs(t, err, pflag.ErrHelp)
}

// TestLessonsRun runs every lesson and checks that the empty-input path is
// logged rather than panicking.
func TestLessonsRun(t *testing.T) {
	log, hook := test.NewNullLogger()

	for _, l := range lessons {
		require.NotPanics(t, func() { l.run(log) }, l.name)
	}

	warnings := 0
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warnings++
			assert.Contains(t, e.Data, logrus.ErrorKey)
		}
	}
	assert.Equal(t, 2, warnings)
}
