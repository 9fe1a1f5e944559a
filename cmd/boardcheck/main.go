// Command boardcheck prints a board profile and reports every wiring or
// threshold problem in it. Exit status is 1 when any issue is found.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"envmon-go/errcode"
	"envmon-go/hw"
	"envmon-go/services/config"
	"envmon-go/setups"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("boardcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	name := fs.String("profile", setups.SelectedName, "profile to check")
	overrides := fs.String("overrides", "", "YAML file with threshold/pin overrides")
	asJSON := fs.Bool("json", false, "print the HAL device list as JSON")
	list := fs.Bool("list", false, "list profiles and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *list {
		for _, n := range setups.Names() {
			fmt.Fprintln(stdout, n)
		}
		return 0
	}

	p, err := setups.ByName(*name)
	if err != nil {
		fmt.Fprintln(stderr, "boardcheck:", err)
		return 2
	}
	if *overrides != "" {
		f, err := os.Open(*overrides)
		if err != nil {
			fmt.Fprintln(stderr, "boardcheck:", err)
			return 2
		}
		o, err := setups.ParseOverrides(f)
		f.Close()
		if err != nil {
			fmt.Fprintln(stderr, "boardcheck:", err)
			return 2
		}
		// Validation errors are reported below with the rest.
		if p, err = p.WithOverrides(o); errors.Is(err, errcode.InvalidParams) {
			fmt.Fprintln(stderr, "boardcheck:", err)
			return 2
		}
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(p.HALConfig()); err != nil {
			fmt.Fprintln(stderr, "boardcheck:", err)
			return 2
		}
	} else {
		describe(stdout, p)
	}

	issues := p.Issues()
	for _, is := range issues {
		fmt.Fprintf(stderr, "%-17s %-13s %s\n", is.Code, is.Field, is.Msg)
	}
	if len(issues) > 0 {
		return 1
	}
	return 0
}

func describe(w io.Writer, p setups.Profile) {
	fmt.Fprintf(w, "profile %s on %s\n", p.Name, p.Board.Name)

	fmt.Fprintln(w, "pins:")
	pins := config.Pins(p)
	names := make([]string, 0, len(pins))
	for n := range pins {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintf(w, "  %-14s %s\n", n, pins[n])
	}

	t, l := p.Thresholds, p.Limits
	fmt.Fprintf(w, "temperature: low %d high %d (max ±%d, test %d)\n", t.TempLow, t.TempHigh, l.MaxTemp, l.TestTemp)
	fmt.Fprintf(w, "light:       low %d high %d (max %d)\n", t.LuzLow, t.LuzHigh, l.MaxLight)

	for _, s := range hw.Sensors(p) {
		kinds := make([]string, len(s.Kinds))
		for i, k := range s.Kinds {
			kinds[i] = string(k)
		}
		fmt.Fprintf(w, "sensor %-9s measures %s\n", s.ID, strings.Join(kinds, ","))
	}
}
