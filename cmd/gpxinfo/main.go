// The gpxinfo command summarizes the contents of a GPX file.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/adietz/gpxtools/internal/gpxfile"
	"github.com/adietz/gpxtools/internal/inspect"
	"github.com/adietz/gpxtools/internal/track"
)

const (
	version = "1.0.0"
)

func main() {
	// Parse command-line flags
	var (
		dumpPoints  = flag.Bool("points", false, "Print every point before the summary")
		showVersion = flag.Bool("version", false, "Show version and exit")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "gpxinfo - GPX track inspection tool v%s\n\n", version)
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <source.gpx>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  <source.gpx>    Path of the GPX file to inspect\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s ride.gpx\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -points ride.gpx\n", os.Args[0])
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("gpxinfo v%s\n", version)
		os.Exit(0)
	}

	// Check for source file argument
	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: source file is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0), *dumpPoints, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(source string, dumpPoints bool, w io.Writer) error {
	trackLog, err := gpxfile.Read(source)
	if err != nil {
		return err
	}

	if dumpPoints {
		printPoints(trackLog, w)
	}

	printReport(inspect.Summarize(trackLog), w)

	return nil
}

func printPoints(trackLog *track.Log, w io.Writer) {
	for _, trk := range trackLog.Tracks {
		for _, seg := range trk.Segments {
			for _, p := range seg.Points {
				fmt.Fprintf(w, "point (%.6f, %.6f)", p.Latitude, p.Longitude)
				if p.Elevation != nil {
					fmt.Fprintf(w, " ele %.1f", *p.Elevation)
				}
				if !p.Time.IsZero() {
					fmt.Fprintf(w, " @ %s", p.Time.Format(time.RFC3339))
				}
				fmt.Fprintln(w)
			}
		}
	}
}

func printReport(r inspect.Report, w io.Writer) {
	fmt.Fprintf(w, "tracks:   %d\n", r.Tracks)
	fmt.Fprintf(w, "segments: %d\n", r.Segments)
	fmt.Fprintf(w, "points:   %d (%d timed)\n", r.Points, r.TimedPoints)

	if r.TimedPoints > 0 {
		fmt.Fprintf(w, "first:    %s\n", r.First.Format(time.RFC3339))
		fmt.Fprintf(w, "last:     %s\n", r.Last.Format(time.RFC3339))
	}
	if r.OutOfOrder > 0 {
		fmt.Fprintf(w, "warning:  %d points out of time order\n", r.OutOfOrder)
	}

	if r.LengthErr != nil {
		fmt.Fprintf(w, "length:   unavailable (%v)\n", r.LengthErr)
	} else {
		fmt.Fprintf(w, "length:   %.1f km\n", r.LengthMeters/1000)
	}
}
