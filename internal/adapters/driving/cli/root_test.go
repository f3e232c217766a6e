package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutricoach/nutricoach/internal/core/domain"
)

func TestRootCmd_RegistersCommands(t *testing.T) {
	want := []string{"ask [question]", "chat", "search [query]", "ingest", "recommend [goal]", "stats", "config", "version"}
	for _, use := range want {
		found := false
		for _, cmd := range rootCmd.Commands() {
			if cmd.Use == use {
				found = true
				break
			}
		}
		assert.True(t, found, "command %q should be registered", use)
	}
}

func TestRootCmd_HelpOutput(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"--help"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "knowledge base")
	assert.Contains(t, output, "--verbose")
}

func TestAskCmd_RequiresQuery(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"ask"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
}

func TestBuildProfile_EmptyFlagsYieldNil(t *testing.T) {
	assert.Nil(t, buildProfile())
}

func TestBuildProfile_FlagsPopulateProfile(t *testing.T) {
	profileAge = 30
	profileGoals = "muscle building"
	profileRestrict = []string{"vegetarian"}
	defer func() {
		profileAge = 0
		profileGoals = ""
		profileRestrict = nil
	}()

	profile := buildProfile()

	require.NotNil(t, profile)
	assert.Equal(t, 30, profile.Age)
	assert.Equal(t, "muscle building", profile.Goals)
	assert.Equal(t, []string{"vegetarian"}, profile.DietaryRestrictions)
}

func TestResolveStyle(t *testing.T) {
	originalStyle := appSettings.Chat.Style
	appSettings.Chat.Style = domain.StyleComprehensive
	defer func() { appSettings.Chat.Style = originalStyle }()

	style, err := resolveStyle("")
	require.NoError(t, err)
	assert.Equal(t, domain.StyleComprehensive, style)

	style, err = resolveStyle("brief")
	require.NoError(t, err)
	assert.Equal(t, domain.StyleBrief, style)

	_, err = resolveStyle("shouty")
	assert.Error(t, err)
}

func TestSourceName(t *testing.T) {
	assert.Equal(t, "Chicken Breast", sourceName(map[string]string{"food_name": "Chicken Breast"}))
	assert.Equal(t, "Protein Requirements", sourceName(map[string]string{"topic": "Protein Requirements"}))
	assert.Equal(t, "Nutrition document", sourceName(map[string]string{"other": "x"}))
}

func TestSnippet(t *testing.T) {
	assert.Equal(t, "short", snippet("short", 10))
	assert.Equal(t, "0123456789...", snippet("0123456789abcdef", 10))
}
