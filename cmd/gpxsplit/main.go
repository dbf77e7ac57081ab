// The gpxsplit command splits a large GPX file into smaller files bounded by a maximum point count.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adietz/gpxtools/internal/diag"
	"github.com/adietz/gpxtools/internal/gpxfile"
	"github.com/adietz/gpxtools/internal/splitter"
)

const (
	version = "1.0.0"
)

func main() {
	// Parse command-line flags
	var (
		output      = flag.String("o", ".", "Output directory for the split files")
		points      = flag.Int("p", splitter.DefaultMaxPoints, "Maximum number of points per result file (minimum 2)")
		debug       = flag.Bool("debug", false, "Enable diagnostic logging")
		showVersion = flag.Bool("version", false, "Show version and exit")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "gpxsplit - GPX track splitting tool v%s\n\n", version)
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <source.gpx>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  <source.gpx>    Path of the GPX file to split\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s ride.gpx\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -o chunks -p 250 ride.gpx\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -debug ride.gpx\n", os.Args[0])
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("gpxsplit v%s\n", version)
		os.Exit(0)
	}

	// Check for source file argument
	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: source file is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	source := flag.Arg(0)

	// Setup logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Run the application
	if err := run(source, *output, *points, *debug, logger); err != nil {
		logger.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(source, destDir string, maxPoints int, debug bool, logger *slog.Logger) error {
	cfg := splitter.Config{
		BaseName:  baseName(source),
		MaxPoints: maxPoints,
	}

	writer := &gpxfile.Writer{DestDir: destDir, MkdirAll: true}

	// Configuration is validated here, before the source file is opened
	s, err := splitter.New(cfg, writer, diag.New("gpxsplit", debug, os.Stderr))
	if err != nil {
		return err
	}

	trackLog, err := gpxfile.Read(source)
	if err != nil {
		return err
	}

	count, err := s.Split(trackLog)
	if err != nil {
		return err
	}

	logger.Info("split complete",
		"source", source,
		"dest", destDir,
		"files", count,
	)

	return nil
}

// baseName strips the directory and file extension from the source path.
// Emitted files are named "{baseName}_{N}.gpx".
func baseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
