//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/notion-client/pkg/notion"
	"github.com/fivetwenty-io/notion-client/pkg/notionclient"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	Token      string
	DatabaseID string
	NotionPath string
	Verbose    bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		Token:      os.Getenv(notionclient.TokenEnvVar),
		DatabaseID: os.Getenv("NOTION_TEST_DATABASE_ID"),
		NotionPath: getNotionPath(),
		Verbose:    os.Getenv("NOTION_VERBOSE") == "true",
	}
}

// getNotionPath determines the path to the notion binary
func getNotionPath() string {
	if path := os.Getenv("NOTION_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../notion",
		"./notion",
		"../notion",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "notion"
}

// SkipIfMissingToken skips tests that need a workspace
func (config *TestConfig) SkipIfMissingToken(t *testing.T) {
	t.Helper()

	if config.Token == "" {
		t.Skipf("%s not set, skipping integration test", notionclient.TokenEnvVar)
	}
}

// SkipIfMissingDatabase skips tests that write to a database
func (config *TestConfig) SkipIfMissingDatabase(t *testing.T) {
	t.Helper()
	config.SkipIfMissingToken(t)

	if config.DatabaseID == "" {
		t.Skip("NOTION_TEST_DATABASE_ID not set, skipping integration test")
	}
}

// SkipIfMissingBinary skips tests that drive the CLI
func (config *TestConfig) SkipIfMissingBinary(t *testing.T) {
	t.Helper()
	config.SkipIfMissingToken(t)

	if _, err := exec.LookPath(config.NotionPath); err != nil {
		t.Skipf("notion binary not found at %s, skipping integration test", config.NotionPath)
	}
}

// Client creates a library client from the test token
func (config *TestConfig) Client(t *testing.T) notion.Client {
	t.Helper()

	client, err := notionclient.New(context.Background(), &notion.Config{
		Token:    config.Token,
		RetryMax: 3,
	})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	return client
}

// NewTestContext bounds a single integration test
func NewTestContext(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	t.Cleanup(cancel)

	return ctx
}

// CommandRunner provides utilities for running notion commands
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{
		config: config,
		t:      t,
	}
}

// Run executes a notion command with the test token and returns its output
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(runner.config.NotionPath, args...)
	cmd.Env = append(os.Environ(), "NOTION_TOKEN="+runner.config.Token)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.NotionPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// GenerateTestName creates a unique test page title
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().Unix())
}

// AssertJSONOutput verifies command output is valid JSON
func AssertJSONOutput(t *testing.T, output string) {
	t.Helper()

	var document interface{}
	if err := json.Unmarshal([]byte(output), &document); err != nil {
		t.Errorf("Output is not JSON: %v\n%s", err, output)
	}
}

// AssertYAMLOutput verifies command output is valid YAML
func AssertYAMLOutput(t *testing.T, output string) {
	t.Helper()

	var document interface{}
	if err := yaml.Unmarshal([]byte(output), &document); err != nil {
		t.Errorf("Output is not YAML: %v\n%s", err, output)
	}
}
