// Package test holds smoke scenarios run by cmd/testrunner against a live
// dungeongen preview server.
package test

import (
	"fmt"
	"regexp"
)

// Verbose controls whether detailed logging is shown during tests
var Verbose = false

// DeterminismSeed is regenerated twice by the determinism scenario.
var DeterminismSeed int64 = 7

// TestResult represents the result of a test
type TestResult struct {
	Name    string
	Passed  bool
	Message string
}

// logAction logs a test action when verbose mode is enabled
func logAction(testName, action string) {
	if Verbose {
		fmt.Printf("  [%s] %s\n", testName, action)
	}
}

// logResult logs an expected vs actual result when verbose mode is enabled
func logResult(testName string, success bool, detail string) {
	if Verbose {
		status := "OK"
		if !success {
			status = "FAIL"
		}
		fmt.Printf("  [%s] %s: %s\n", testName, status, detail)
	}
}

func fail(name, format string, args ...any) TestResult {
	return TestResult{Name: name, Passed: false, Message: fmt.Sprintf(format, args...)}
}

func pass(name, format string, args ...any) TestResult {
	return TestResult{Name: name, Passed: true, Message: fmt.Sprintf(format, args...)}
}

// Scenario is one smoke check against a preview endpoint.
type Scenario struct {
	Group string
	Name  string
	Run   func(url string) TestResult
}

// Scenarios returns every smoke scenario in run order.
func Scenarios() []Scenario {
	return []Scenario{
		{"Connection", "Replay On Connect", TestReplayOnConnect},
		{"Connection", "Broadcast To All Clients", TestBroadcastToAllClients},
		{"Commands", "Regenerate With Seed", TestRegenerateWithSeed},
		{"Commands", "Regenerate Is Deterministic", TestRegenerateIsDeterministic},
		{"Commands", "Regenerate Random Seed", TestRegenerateRandomSeed},
		{"Commands", "Invalid Seed", TestInvalidSeed},
		{"Commands", "Unknown Command", TestUnknownCommand},
	}
}

// Select returns the scenarios whose group or name matches pattern, ignoring
// case. An empty pattern selects everything.
func Select(pattern string) ([]Scenario, error) {
	all := Scenarios()
	if pattern == "" {
		return all, nil
	}
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid scenario pattern: %w", err)
	}
	var out []Scenario
	for _, s := range all {
		if re.MatchString(s.Name) || re.MatchString(s.Group) {
			out = append(out, s)
		}
	}
	return out, nil
}

// RunScenarios runs scenarios in order against url.
func RunScenarios(url string, scenarios []Scenario) []TestResult {
	results := make([]TestResult, 0, len(scenarios))
	for _, s := range scenarios {
		logAction(s.Name, "Starting ("+s.Group+")")
		results = append(results, s.Run(url))
	}
	return results
}

// RunAllTests runs every scenario against the preview endpoint at url.
func RunAllTests(url string) []TestResult {
	return RunScenarios(url, Scenarios())
}

// PrintResults prints a summary of results
func PrintResults(results []TestResult) {
	passed := 0
	failed := 0

	fmt.Println("============================================================")
	fmt.Println("Preview Smoke Test Results")
	fmt.Println("============================================================")
	fmt.Println()

	for _, r := range results {
		status := "PASS"
		if !r.Passed {
			status = "FAIL"
			failed++
		} else {
			passed++
		}
		fmt.Printf("[%s] %s: %s\n", status, r.Name, r.Message)
	}

	fmt.Println()
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Total: %d | Passed: %d | Failed: %d\n", len(results), passed, failed)
	fmt.Println("------------------------------------------------------------")
}
