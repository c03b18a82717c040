// Command mapview renders a saved dungeon snapshot as an ASCII map.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lawnchairsociety/dungeonforge/internal/export"
)

func main() {
	inputFile := flag.String("input", "data/dungeon_snapshot.yaml", "Path to snapshot YAML file")
	outputFile := flag.String("output", "", "Output file (empty for stdout)")
	showLegend := flag.Bool("legend", true, "Show legend")
	showRooms := flag.Bool("rooms", true, "Show room details")
	flag.Parse()

	snapshot, err := export.ReadYAML(*inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var output strings.Builder
	output.WriteString(export.RenderASCII(snapshot, false))
	if !snapshot.SavedAt.IsZero() {
		output.WriteString(fmt.Sprintf("Generated: %s\n", snapshot.SavedAt.Format("2006-01-02 15:04:05")))
	}
	if snapshot.Fingerprint != "" {
		output.WriteString(fmt.Sprintf("Config: %s\n", snapshot.Fingerprint))
	}
	if *showRooms {
		output.WriteString("\n")
		output.WriteString(export.RoomSummary(snapshot))
	}
	if *showLegend {
		output.WriteString(export.Legend())
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(output.String()), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Map written to %s\n", *outputFile)
	} else {
		fmt.Print(output.String())
	}
}
