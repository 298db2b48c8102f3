// Command holidaygen prints movable-holiday estimates for a range of years.
//
// The output is meant for embedding in static pages or spot-checking the
// engine; every date is an approximation.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/calverse/calendars-api/internal/calendar"
)

type yearHolidays struct {
	Year         int    `json:"year"`
	Easter       string `json:"easter"`
	RamadanStart string `json:"ramadan_start"`
	Diwali       string `json:"diwali"`
	Holi         string `json:"holi"`
	Navratri     string `json:"navratri"`
}

func main() {
	start := flag.Int("start", 2024, "First year to generate")
	end := flag.Int("end", 2030, "Last year to generate (inclusive)")
	format := flag.String("format", "text", "Output format: text or json")
	out := flag.String("o", "", "Output file (default stdout)")
	flag.Parse()

	if *end < *start {
		fmt.Fprintln(os.Stderr, "end year must not precede start year")
		os.Exit(2)
	}

	var rows []yearHolidays
	for year := *start; year <= *end; year++ {
		rows = append(rows, yearHolidays{
			Year:         year,
			Easter:       calendar.Easter(year),
			RamadanStart: calendar.RamadanStart(year),
			Diwali:       calendar.Diwali(year),
			Holi:         calendar.Holi(year),
			Navratri:     calendar.Navratri(year),
		})
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "create %s: %v\n", *out, err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	switch *format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rows); err != nil {
			fmt.Fprintf(os.Stderr, "encode: %v\n", err)
			os.Exit(1)
		}
	case "text":
		for _, r := range rows {
			fmt.Fprintf(w, "=== %d ===\n", r.Year)
			fmt.Fprintf(w, "  Easter:         %s\n", r.Easter)
			fmt.Fprintf(w, "  Ramadan start:  %s\n", r.RamadanStart)
			fmt.Fprintf(w, "  Diwali:         %s\n", r.Diwali)
			fmt.Fprintf(w, "  Holi:           %s\n", r.Holi)
			fmt.Fprintf(w, "  Navratri:       %s\n", r.Navratri)
			fmt.Fprintln(w)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q\n", *format)
		os.Exit(2)
	}
}
