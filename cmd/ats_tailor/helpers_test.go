package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

const testProfileJSON = `{
  "basics": {
    "name": "Violet Figueroa",
    "label": "Security Analyst",
    "email": "violet@example.com",
    "years_experience": 5,
    "primary_skill": "security operations",
    "domain": "Threat Detection"
  },
  "summaries": {
    "general": "Security professional with broad IT experience.",
    "soc": "SOC analyst skilled in Splunk SIEM and threat hunting.",
    "appsec": "Application security engineer focused on secure coding and OWASP Top 10."
  },
  "skills": {
    "siem": ["QRadar", "Splunk"],
    "operations": ["Wireshark", "Threat Hunting"]
  },
  "projects": {
    "cyber": [
      {"id": "c1", "name": "Sigma Rules", "description": "Detection content"}
    ]
  },
  "achievements": [
    {"description": "Implemented Splunk SIEM reducing incidents by 75%", "metrics": {"incident_reduction": 0.75}},
    {"description": "Trained 8 analysts on threat hunting"}
  ]
}`

const splunkJob = "We need Splunk SIEM expertise and advanced threat hunting capabilities."

// cliResult is the captured output of one in-process command run
type cliResult struct {
	stdout string
	stderr string
}

// runCLI executes the root command in-process. Flag values left over from earlier runs are
// reset first, since cobra binds them to package variables.
func runCLI(t *testing.T, args ...string) (cliResult, error) {
	t.Helper()
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return cliResult{stdout: stdout.String(), stderr: stderr.String()}, err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// writeProfile writes the test profile into a temp dir and returns its path
func writeProfile(t *testing.T) string {
	t.Helper()
	return writeTestFile(t, t.TempDir(), "profile.json", testProfileJSON)
}

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
