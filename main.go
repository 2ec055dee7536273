package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
)

var fileFlag string

func init() {
	pflag.StringP("color", "c", "2", "Set the text color (ANSI code or hex)")
	pflag.IntP("width", "w", 40, "Width of each label in columns")
	pflag.Bool("bold", false, "Draw labels in bold")
	pflag.String("direction", "left", "Scroll direction: left or right")
	pflag.String("curve", "ease-in-out", "Easing curve: linear, ease-in, ease-out or ease-in-out")
	pflag.String("strategy", "continuous", "Scroll driver: continuous or declarative")
	pflag.Int("duration", 6000, "Duration of one scroll cycle in milliseconds")
	pflag.Int("spacing", 4, "Columns between the text and its repeat")
	pflag.StringVarP(&fileFlag, "file", "f", "", "Read labels from a file, one per line (- for stdin)")
}

func main() {
	pflag.Parse()
	initConfig(pflag.CommandLine)

	lines := pflag.Args()
	if fileFlag != "" {
		fromFile, err := readLinesFile(fileFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		lines = append(lines, fromFile...)
	}

	m := newModel(config.Get(), lines, time.Now)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if fileFlag == "-" {
		// stdin was consumed by the labels, read keys from the terminal
		opts = append(opts, tea.WithInputTTY())
	}
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
