package commands

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrcise612/ZorinPad/internal/document"
	"github.com/mrcise612/ZorinPad/internal/editor"
	"github.com/mrcise612/ZorinPad/internal/logger"
	"github.com/mrcise612/ZorinPad/internal/pandoc"
	"github.com/mrcise612/ZorinPad/internal/prefs"
	"github.com/mrcise612/ZorinPad/internal/selftest"
)

// Edit launches the interactive editor.
func Edit() {
	lg, cleanup, err := logger.NewFileLogger(logger.DefaultLogPath())
	if err != nil {
		// The log file is a nicety; the editor runs without it.
		lg = logger.Discard()
		cleanup = func() {}
	}
	defer cleanup()

	store := prefs.NewStore()
	p := store.Load()

	pcap := pandoc.Detect()
	if pcap.Available() {
		lg.ConverterDetected(pcap.Version)
	} else {
		lg.ConverterMissing()
	}

	disp := document.NewDispatcher(pcap)

	prog := tea.NewProgram(editor.InitModel(store, p, disp, lg), tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// SelfTest runs the headless checks and returns the process exit code.
func SelfTest() int {
	return selftest.Run(os.Stdout)
}
