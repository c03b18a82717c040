package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lawnchairsociety/dungeonforge/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the prop, enemy and class templates in use",
	RunE:  runCatalog,
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	_, cat, err := loadSettings()
	if err != nil {
		return err
	}
	printCatalog(cmd.OutOrStdout(), cat)
	return nil
}

func printCatalog(w io.Writer, cat *catalog.Catalog) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Props (%d):\n", len(cat.Props))
	fmt.Fprintln(tw, "  NAME\tSIZE\tQTY\tCHANCE\tPLACEMENT")
	for _, p := range cat.Props {
		pw, ph := p.Footprint()
		fmt.Fprintf(tw, "  %s\t%dx%d\t%d-%d\t%.0f%%\t%s\n",
			p.Name, pw, ph, p.QuantityMin, p.QuantityMax, p.Chance()*100, placement(p))
	}

	fmt.Fprintf(tw, "\nEnemies (%d):\n", len(cat.Enemies))
	fmt.Fprintln(tw, "  NAME\tHP\tDAMAGE\tWEIGHT\tGROUPS")
	for _, e := range cat.Enemies {
		groups := "-"
		if e.PrefersGroups {
			groups = fmt.Sprintf("%d-%d", e.GroupMin, e.GroupMax)
		}
		fmt.Fprintf(tw, "  %s\t%d\t%d\t%.1f\t%s\n", e.Name, e.BaseHP, e.BaseDamage, e.SpawnWeight, groups)
	}

	fmt.Fprintf(tw, "\nClasses (%d):\n", len(cat.Classes))
	fmt.Fprintln(tw, "  NAME\tHEALTH\tSTAMINA\tDAMAGE\tCOMBAT")
	for _, c := range cat.Classes {
		fmt.Fprintf(tw, "  %s\t%d\t%d\t%d\t%s\n", c.Name, c.MaxHealth, c.MaxStamina, c.Damage, c.Combat)
	}
	tw.Flush()
}

func placement(p *catalog.PropDefinition) string {
	var tags []string
	add := func(on bool, tag string) {
		if on {
			tags = append(tags, tag)
		}
	}
	add(p.OnlyCorner, "only-corner")
	add(p.Corner, "corner")
	add(p.NearWallUp, "wall-up")
	add(p.NearWallDown, "wall-down")
	add(p.NearWallLeft, "wall-left")
	add(p.NearWallRight, "wall-right")
	add(p.Inner, "inner")
	add(p.PlaceAsGroup, "group")
	add(p.Trap, "trap")
	if len(tags) == 0 {
		return "-"
	}
	out := tags[0]
	for _, t := range tags[1:] {
		out += "," + t
	}
	return out
}
