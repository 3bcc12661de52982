package main

import (
	"fmt"
	"os"

	"github.com/mrcise612/ZorinPad/internal/commands"
	"github.com/mrcise612/ZorinPad/internal/prefs"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--self-test":
			os.Exit(commands.SelfTest())
		case "-h", "--help":
			printUsage()
			return
		default:
			fmt.Fprintf(os.Stderr, "Unknown argument: %s\n\n", os.Args[1])
			printUsage()
			os.Exit(2)
		}
	}

	commands.Edit()
}

func printUsage() {
	usage := fmt.Sprintf(`zorinpad - WordPad-style editor

Usage:
  zorinpad [--self-test]

Options:
  --self-test   Run headless self-tests and exit
  -h, --help    Show this help message

Without arguments the interactive editor launches.

Formats:
  Native: .zpad .html .htm (HTML under the hood), .txt
  Via pandoc (optional): .rtf .docx .odt

Configuration:
  Preferences file: %s
`, prefs.ConfigPath())
	fmt.Print(usage)
}
