package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-tailor/internal/types"
)

func TestSelectSummaryCommand(t *testing.T) {
	profile := writeProfile(t)

	res, err := runCLI(t, "select-summary", "--profile", profile, "--text", splunkJob)
	require.NoError(t, err)

	var sel types.SummarySelection
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &sel))
	assert.Equal(t, "soc", sel.Key)
	assert.Equal(t, "SOC analyst skilled in Splunk SIEM and threat hunting.", sel.Text)
	assert.Greater(t, sel.Score, 0.0)
}

func TestSelectSummaryCommand_NoMatchesPicksFirst(t *testing.T) {
	profile := writeProfile(t)

	res, err := runCLI(t, "select-summary", "-p", profile, "--text", "Bakery seeks a pastry chef")
	require.NoError(t, err)

	var sel types.SummarySelection
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &sel))
	assert.Equal(t, "general", sel.Key)
	assert.Equal(t, 0.0, sel.Score)
}

func TestSelectSummaryCommand_ExplicitType(t *testing.T) {
	profile := writeProfile(t)

	res, err := runCLI(t, "select-summary", "-p", profile, "--text", splunkJob, "--type", "appsec")
	require.NoError(t, err)

	var sel types.SummarySelection
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &sel))
	assert.Equal(t, "appsec", sel.Key)
}

func TestSelectSummaryCommand_UnknownType(t *testing.T) {
	profile := writeProfile(t)

	_, err := runCLI(t, "select-summary", "-p", profile, "--text", splunkJob, "--type", "healthcare")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to select summary")
}
