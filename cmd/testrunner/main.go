package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lawnchairsociety/dungeonforge/test"
)

func main() {
	url := flag.String("url", "ws://localhost:8080/ws", "Preview WebSocket URL of a running dungeongen serve")
	verbose := flag.Bool("v", false, "Show each scenario step")
	run := flag.String("run", "", "Only run scenarios whose group or name matches this regexp")
	list := flag.Bool("list", false, "List scenarios and exit")
	seed := flag.Int64("seed", test.DeterminismSeed, "Seed regenerated twice by the determinism scenario")
	flag.Parse()

	scenarios, err := test.Select(*run)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if *list {
		for _, s := range scenarios {
			fmt.Printf("%-12s %s\n", s.Group, s.Name)
		}
		return
	}
	if len(scenarios) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no scenario matches %q\n", *run)
		os.Exit(2)
	}
	if *seed <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -seed must be positive; 0 asks the server for a random dungeon")
		os.Exit(2)
	}

	test.Verbose = *verbose
	test.DeterminismSeed = *seed

	fmt.Printf("Running %d preview scenarios against %s\n", len(scenarios), *url)
	fmt.Println("Make sure dungeongen serve is running!")
	fmt.Println()

	results := test.RunScenarios(*url, scenarios)
	test.PrintResults(results)

	for _, result := range results {
		if !result.Passed {
			os.Exit(1)
		}
	}
}
