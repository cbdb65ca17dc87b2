// Command huedump normalizes colour values and prints their canonical form.
//
// Usage:
//
//	huedump '#00aa11' 'rgb(0.5, 1.0, 0.25)' red
//	huedump -scheme theme.scheme
//	huedump -yaml theme.yaml
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/huelib/hue"
)

func main() {
	var (
		schemePath = flag.String("scheme", "", "line-oriented scheme file to read")
		yamlPath   = flag.String("yaml", "", "YAML scheme file to read")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		hue.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	switch {
	case *schemePath != "":
		scheme, err := hue.ReadSchemeFile(*schemePath)
		if err != nil {
			log.Fatalf("Failed to read scheme: %v", err)
		}
		dumpScheme(scheme)
	case *yamlPath != "":
		scheme, err := hue.ReadSchemeYAMLFile(*yamlPath)
		if err != nil {
			log.Fatalf("Failed to read scheme: %v", err)
		}
		dumpScheme(scheme)
	default:
		if flag.NArg() == 0 {
			fmt.Fprintln(os.Stderr, "usage: huedump [-scheme file | -yaml file] [colour ...]")
			flag.PrintDefaults()
			os.Exit(2)
		}
		scheme := &hue.Scheme{Name: "arguments"}
		for _, arg := range flag.Args() {
			c, err := hue.Parse(arg)
			if err != nil {
				log.Fatalf("Failed to parse %q: %v", arg, err)
			}
			scheme.Colors = append(scheme.Colors, c)
		}
		dumpScheme(scheme)
	}
}

func dumpScheme(scheme *hue.Scheme) {
	fmt.Printf("%s (%d colours)\n", scheme.Name, len(scheme.Colors))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"R", "G", "B", "A", "Packed", "Canonical"})
	for _, c := range scheme.Colors {
		table.Append([]string{
			strconv.Itoa(int(c.R)),
			strconv.Itoa(int(c.G)),
			strconv.Itoa(int(c.B)),
			strconv.Itoa(int(c.A)),
			fmt.Sprintf("%#08x", hue.Pack(c)),
			c.String(),
		})
	}
	table.Render()
}
