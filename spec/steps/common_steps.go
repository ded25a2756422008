// Package steps provides step definitions for the evtpages CLI Gherkin specs.
package steps

import (
	"context"
	"fmt"
	"strings"

	"github.com/cucumber/godog"

	"github.com/evtpages/evtpages/spec/support"
)

// contextKey is a type for context keys to avoid collisions.
type contextKey string

const (
	testEnvKey   contextKey = "testEnv"
	cliRunnerKey contextKey = "cliRunner"
)

// getTestEnv retrieves the TestEnv from context.
func getTestEnv(ctx context.Context) *support.TestEnv {
	if env, ok := ctx.Value(testEnvKey).(*support.TestEnv); ok {
		return env
	}
	return nil
}

// getCLIRunner retrieves the CLIRunner from context.
func getCLIRunner(ctx context.Context) *support.CLIRunner {
	if runner, ok := ctx.Value(cliRunnerKey).(*support.CLIRunner); ok {
		return runner
	}
	return nil
}

// getLastResult retrieves the last command result from context.
func getLastResult(ctx context.Context) *support.CommandResult {
	if runner := getCLIRunner(ctx); runner != nil {
		return runner.LastResult
	}
	return nil
}

// InitializeCommonSteps registers all common step definitions.
func InitializeCommonSteps(ctx *godog.ScenarioContext) {
	// Before each scenario: set up test environment
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		env, err := support.NewTestEnv()
		if err != nil {
			return ctx, fmt.Errorf("failed to create test environment: %w", err)
		}

		// Create CLI runner pointing to the built binary
		runner := support.NewCLIRunner("")
		runner.WorkDir = env.TempDir

		ctx = context.WithValue(ctx, testEnvKey, env)
		ctx = context.WithValue(ctx, cliRunnerKey, runner)

		return ctx, nil
	})

	// After each scenario: clean up test environment
	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		env := getTestEnv(ctx)
		if env != nil {
			if cleanupErr := env.Cleanup(); cleanupErr != nil {
				// Log but don't fail on cleanup errors
				fmt.Printf("Warning: cleanup failed: %v\n", cleanupErr)
			}
		}
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a master document with events "([^"]*)" and tags "([^"]*)"$`, aMasterDocumentWithEventsAndTags)
	ctx.Step(`^a master document with script "([^"]*)"$`, aMasterDocumentWithScript)
	ctx.Step(`^a master document described by:$`, aMasterDocumentDescribedBy)
	ctx.Step(`^no master document$`, noMasterDocument)
	ctx.Step(`^a config file with the following content:$`, aConfigFileWithTheFollowingContent)

	// When steps
	ctx.Step(`^I run "([^"]*)"$`, iRun)

	// Then steps
	ctx.Step(`^the exit code should be (\d+)$`, theExitCodeShouldBe)
	ctx.Step(`^stdout should contain "([^"]*)"$`, stdoutShouldContain)
	ctx.Step(`^stdout should not contain "([^"]*)"$`, stdoutShouldNotContain)
	ctx.Step(`^stderr should contain "([^"]*)"$`, stderrShouldContain)
	ctx.Step(`^stdout should be empty$`, stdoutShouldBeEmpty)
	ctx.Step(`^stdout should contain:$`, stdoutShouldContainDoc)
	ctx.Step(`^stdout should be exactly:$`, stdoutShouldBeExactly)
	ctx.Step(`^the file "([^"]*)" should exist$`, theFileShouldExist)
	ctx.Step(`^the file "([^"]*)" should not exist$`, theFileShouldNotExist)
	ctx.Step(`^the file "([^"]*)" should contain "([^"]*)"$`, theFileShouldContain)
}

// splitList splits a comma-separated step argument into trimmed names.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func aMasterDocumentWithEventsAndTags(ctx context.Context, events, tags string) error {
	env := getTestEnv(ctx)
	if env == nil {
		return fmt.Errorf("test environment not initialized")
	}
	fixture := &support.MasterFixture{
		Events: splitList(events),
		Tags:   splitList(tags),
	}
	return env.WriteMaster(fixture.Render())
}

func aMasterDocumentWithScript(ctx context.Context, script string) error {
	env := getTestEnv(ctx)
	if env == nil {
		return fmt.Errorf("test environment not initialized")
	}
	fixture := &support.MasterFixture{Script: script}
	return env.WriteMaster(fixture.Render())
}

func aMasterDocumentDescribedBy(ctx context.Context, doc *godog.DocString) error {
	env := getTestEnv(ctx)
	if env == nil {
		return fmt.Errorf("test environment not initialized")
	}
	fixture, err := support.ParseMasterFixture(doc.Content)
	if err != nil {
		return err
	}
	return env.WriteMaster(fixture.Render())
}

func noMasterDocument(ctx context.Context) error {
	// nothing to create; the scenario exercises the missing-file path
	return nil
}

func aConfigFileWithTheFollowingContent(ctx context.Context, doc *godog.DocString) error {
	env := getTestEnv(ctx)
	if env == nil {
		return fmt.Errorf("test environment not initialized")
	}
	return env.CreateFile(".evtpages/config.yaml", doc.Content)
}

func iRun(ctx context.Context, command string) error {
	runner := getCLIRunner(ctx)
	if runner == nil {
		return fmt.Errorf("CLI runner not initialized")
	}
	result := runner.Run(command)
	if result.Err != nil {
		return fmt.Errorf("failed to run %q: %w", command, result.Err)
	}
	return nil
}

func theExitCodeShouldBe(ctx context.Context, code int) error {
	result := getLastResult(ctx)
	if result == nil {
		return fmt.Errorf("no command has been run")
	}
	if result.ExitCode != code {
		return fmt.Errorf("expected exit code %d, got %d\nstdout: %s\nstderr: %s",
			code, result.ExitCode, result.Stdout, result.Stderr)
	}
	return nil
}

func stdoutShouldContain(ctx context.Context, substr string) error {
	result := getLastResult(ctx)
	if result == nil {
		return fmt.Errorf("no command has been run")
	}
	if !result.StdoutContains(substr) {
		return fmt.Errorf("stdout does not contain %q:\n%s", substr, result.Stdout)
	}
	return nil
}

func stdoutShouldNotContain(ctx context.Context, substr string) error {
	result := getLastResult(ctx)
	if result == nil {
		return fmt.Errorf("no command has been run")
	}
	if result.StdoutContains(substr) {
		return fmt.Errorf("stdout contains %q:\n%s", substr, result.Stdout)
	}
	return nil
}

func stderrShouldContain(ctx context.Context, substr string) error {
	result := getLastResult(ctx)
	if result == nil {
		return fmt.Errorf("no command has been run")
	}
	if !result.StderrContains(substr) {
		return fmt.Errorf("stderr does not contain %q:\n%s", substr, result.Stderr)
	}
	return nil
}

func stdoutShouldBeEmpty(ctx context.Context) error {
	result := getLastResult(ctx)
	if result == nil {
		return fmt.Errorf("no command has been run")
	}
	if result.Stdout != "" {
		return fmt.Errorf("stdout is not empty:\n%s", result.Stdout)
	}
	return nil
}

func stdoutShouldContainDoc(ctx context.Context, doc *godog.DocString) error {
	return stdoutShouldContain(ctx, doc.Content)
}

func stdoutShouldBeExactly(ctx context.Context, doc *godog.DocString) error {
	result := getLastResult(ctx)
	if result == nil {
		return fmt.Errorf("no command has been run")
	}
	got := strings.TrimRight(result.Stdout, "\n")
	want := strings.TrimRight(doc.Content, "\n")
	if got != want {
		return fmt.Errorf("stdout mismatch:\ngot  %q\nwant %q", got, want)
	}
	return nil
}

func theFileShouldExist(ctx context.Context, relativePath string) error {
	env := getTestEnv(ctx)
	if env == nil {
		return fmt.Errorf("test environment not initialized")
	}
	if !env.FileExists(relativePath) {
		return fmt.Errorf("file %s does not exist", relativePath)
	}
	return nil
}

func theFileShouldNotExist(ctx context.Context, relativePath string) error {
	env := getTestEnv(ctx)
	if env == nil {
		return fmt.Errorf("test environment not initialized")
	}
	if env.FileExists(relativePath) {
		return fmt.Errorf("file %s exists", relativePath)
	}
	return nil
}

func theFileShouldContain(ctx context.Context, relativePath, substr string) error {
	env := getTestEnv(ctx)
	if env == nil {
		return fmt.Errorf("test environment not initialized")
	}
	content, err := env.ReadFile(relativePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", relativePath, err)
	}
	if !strings.Contains(content, substr) {
		return fmt.Errorf("file %s does not contain %q:\n%s", relativePath, substr, content)
	}
	return nil
}
