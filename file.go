package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"gopkg.in/ini.v1"
)

const (
	defaultStartMarker = "Course: _Start_ | Udemy"
	defaultPrefix      = "Course: "
	defaultSuffix      = " | Udemy"
	defaultOutputFile  = "Udemy Bookmarks.txt"
)

// filter holds the marker strings used to pick course bookmarks out of the
// export.
type filter struct {
	StartMarker string
	Prefix      string
	Suffix      string
}

func defaultFilter() filter {
	return filter{
		StartMarker: defaultStartMarker,
		Prefix:      defaultPrefix,
		Suffix:      defaultSuffix,
	}
}

// clean strips one leading prefix and one occurrence of the suffix.
func (f filter) clean(title string) string {
	cleaned := strings.Replace(title, f.Prefix, "", 1)
	return strings.Replace(cleaned, f.Suffix, "", 1)
}

// loadConfig overlays the [Filter] and [Files] sections of an INI file on top
// of the defaults. Keys that are missing keep their default value.
func loadConfig(filePath string, f filter, outputFile string) (filter, string, error) {
	cfg, err := ini.Load(filePath)
	if err != nil {
		return f, outputFile, fmt.Errorf("loading config %s: %w", filePath, err)
	}

	section := cfg.Section("Filter")
	f.StartMarker = section.Key("StartMarker").MustString(f.StartMarker)
	f.Prefix = section.Key("Prefix").MustString(f.Prefix)
	f.Suffix = section.Key("Suffix").MustString(f.Suffix)

	outputFile = cfg.Section("Files").Key("Output").MustString(outputFile)

	slog.Debug(fmt.Sprintf("Loaded config %s: start=%q prefix=%q suffix=%q output=%q", filePath, f.StartMarker, f.Prefix, f.Suffix, outputFile))
	return f, outputFile, nil
}

// writeCourseBookmarks writes the cleaned title of every course bookmark that
// follows the start marker, one per line, and returns how many were written.
// Once the marker is seen the section never closes, so a course bookmark
// anywhere later in the export is included too.
func writeCourseBookmarks(links []link, outputPath string, f filter, bar *progressbar.ProgressBar) (int, error) {
	// Create or truncate the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", outputPath, err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)

	started := false
	count := 0
	for _, l := range links {
		if bar != nil {
			bar.Add(1)
		}
		if !started && strings.HasPrefix(l.Title, f.StartMarker) {
			slog.Debug(fmt.Sprintf("Found start marker: %s", l.Title))
			started = true
			continue
		}
		if !started || !strings.HasPrefix(l.Title, f.Prefix) {
			continue
		}
		if _, err := writer.WriteString(f.clean(l.Title) + "\n"); err != nil {
			return count, fmt.Errorf("writing %s: %w", outputPath, err)
		}
		count++
	}

	// Flush the buffered writer to ensure all data is written
	if err := writer.Flush(); err != nil {
		return count, fmt.Errorf("flushing %s: %w", outputPath, err)
	}
	if err := file.Close(); err != nil {
		return count, fmt.Errorf("closing %s: %w", outputPath, err)
	}

	if !started {
		slog.Debug(fmt.Sprintf("Start marker %q never found", f.StartMarker))
	}
	return count, nil
}

// duplicate is a line that occurs more than once in a file.
type duplicate struct {
	Line  string
	Count int
}

// findDuplicates counts the non-blank lines of filePath and returns the ones
// seen more than once, in order of first appearance.
func findDuplicates(filePath string) ([]duplicate, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filePath, err)
	}
	defer file.Close()

	counts := map[string]int{}
	var order []string

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if counts[line] == 0 {
			order = append(order, line)
		}
		counts[line]++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", filePath, err)
	}

	var duplicates []duplicate
	for _, line := range order {
		if counts[line] > 1 {
			duplicates = append(duplicates, duplicate{Line: line, Count: counts[line]})
		}
	}
	return duplicates, nil
}
