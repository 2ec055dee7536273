package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// formatDuration renders a scroll duration as seconds with one decimal
func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// readLines returns the non-blank lines of r, trimmed
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read labels: %w", err)
	}
	return lines, nil
}

// readLinesFile reads labels from path, "-" meaning stdin
func readLinesFile(path string) ([]string, error) {
	if path == "-" {
		return readLines(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open labels file: %w", err)
	}
	defer f.Close()
	return readLines(f)
}

// labelWidth is the container width for labels: the configured width,
// shrunk to fit the terminal inside the border and padding
func labelWidth(maxWidth, termWidth int) int {
	const chrome = 6 // border plus horizontal padding
	w := maxWidth
	if termWidth > 0 && termWidth-chrome < w {
		w = termWidth - chrome
	}
	if w < 1 {
		w = 1
	}
	return w
}
