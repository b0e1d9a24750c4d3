// Command nsdate converts a Gregorian date to Nepal Sambat on the
// command line.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rmanandhar/nepalsambat-api/internal/sambat"
)

func main() {
	dateStr := flag.String("date", "", "Gregorian date as YYYY-MM-DD (default: today)")
	details := flag.Bool("details", false, "also print solar/lunar longitudes at sunrise")
	flag.Parse()

	date := time.Now().UTC()
	if *dateStr != "" {
		parsed, err := time.Parse("2006-01-02", *dateStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "nsdate: invalid date %q: use YYYY-MM-DD\n", *dateStr)
			os.Exit(2)
		}
		date = parsed
	}

	d, err := sambat.ConvertDate(date.Year(), int(date.Month()), date.Day())
	if err != nil {
		fmt.Fprintf(os.Stderr, "nsdate: %v\n", err)
		os.Exit(1)
	}

	f := sambat.Format(d)
	fmt.Printf("%s\n", f.Readable)
	fmt.Printf("  code:   %s\n", f.Numerical)
	fmt.Printf("  month:  %d %s (%s)", d.Month.Number, d.Month.Name, d.Month.Native)
	switch {
	case d.Month.Leap:
		fmt.Print("  [anala]")
	case d.Month.Skipped:
		fmt.Print("  [nhala]")
	}
	fmt.Println()
	fmt.Printf("  tithi:  %d/%d %s %s (%s)\n",
		d.Tithi.Number, d.Tithi.AdjustedNumber, d.Tithi.Paksha, d.Tithi.Name, d.Tithi.Type)

	if *details {
		fmt.Printf("  sun:    %10.5f deg\n", d.SolarLongitude)
		fmt.Printf("  moon:   %10.5f deg\n", d.LunarLongitude)
		fmt.Printf("  elong:  %10.5f deg\n", d.Elongation)
		fmt.Printf("  jd:     %.2f\n", d.JulianDay)
	}
}
