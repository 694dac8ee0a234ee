package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
)

type options struct {
	dir        string
	input      string
	output     string
	configPath string
	progress   bool
}

func main() {
	dir := flag.String("dir", ".", "Directory holding the bookmarks export and the output file")
	input := flag.String("input", "", "Bookmarks export to read (default: today's bookmarks_<M>_<D>_<YY>.html)")
	output := flag.String("output", "", "Output file name (default: \""+defaultOutputFile+"\")")
	configPath := flag.String("config", "", "Optional INI file with [Filter] StartMarker/Prefix/Suffix and [Files] Output")
	progress := flag.Bool("progress", false, "Show a progress bar while filtering bookmarks")
	verbose := flag.Bool("verbose", false, "print debug statements")

	flag.Parse()

	if *verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	opts := options{
		dir:        *dir,
		input:      *input,
		output:     *output,
		configPath: *configPath,
		progress:   *progress,
	}

	if err := run(opts, time.Now(), os.Stdout); err != nil {
		slog.Error(fmt.Sprintf("%v", err))
		os.Exit(1)
	}
}

// run processes one bookmarks export. A missing export is reported on stdout
// and is not an error.
func run(opts options, now time.Time, stdout io.Writer) error {
	f := defaultFilter()
	outputName := defaultOutputFile
	if opts.configPath != "" {
		var err error
		f, outputName, err = loadConfig(opts.configPath, f, outputName)
		if err != nil {
			return err
		}
	}
	if opts.output != "" {
		outputName = opts.output
	}

	inputName := opts.input
	if inputName == "" {
		inputName = bookmarkFilename(now)
	}
	inputPath := filepath.Join(opts.dir, inputName)

	if _, err := os.Stat(inputPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(stdout, "File not found: %s\n", inputName)
			return nil
		}
		return fmt.Errorf("checking %s: %w", inputPath, err)
	}

	slog.Debug(fmt.Sprintf("Reading bookmarks from %s", inputPath))
	content, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}
	links := extractLinks(string(content))
	slog.Debug(fmt.Sprintf("Found %d links in %s", len(links), inputPath))

	outputPath := filepath.Join(opts.dir, outputName)
	var bar *progressbar.ProgressBar
	if opts.progress {
		bar = newProgressBar(len(links), "[cyan][1/1][reset] Filtering bookmarks...", ansi.NewAnsiStderr())
	}
	count, err := writeCourseBookmarks(links, outputPath, f, bar)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Bookmarks processed: %d\n", count)

	duplicates, err := findDuplicates(outputPath)
	if err != nil {
		return err
	}
	if len(duplicates) == 0 {
		fmt.Fprintln(stdout, "No duplicates found.")
		return nil
	}
	fmt.Fprintln(stdout, "Duplicate lines found:")
	for _, d := range duplicates {
		fmt.Fprintf(stdout, "%s (x%d)\n", d.Line, d.Count)
	}
	return nil
}
