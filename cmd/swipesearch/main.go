// Package main is the entry point for the swipesearch application.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gen2brain/beeep"
	"github.com/spf13/pflag"

	"github.com/hy4ri/swipesearch/internal/config"
	"github.com/hy4ri/swipesearch/internal/tui"
)

const version = "0.1.0"

const helpText = `swipesearch - An animated search field for the terminal

USAGE:
    swipesearch [OPTIONS]

OPTIONS:
    -c, --config PATH     Use this config file (.yaml, .toml, .json or .jsonc)
    -q, --query TEXT      Start with TEXT in the field
        --variant NAME    Field variant: swipe or tap
        --init            Create a template config file
        --debug           Write a debug log to debug.log
    -h, --help            Show this help message
    -v, --version         Show version information

CONFIGURATION:
    Config file: ~/.config/swipesearch/config.yaml

KEYBINDINGS:
    Collapsed:
        / or Enter      Expand the field
        Scroll up       Expand (swipe variant)
        Drag down       Expand (swipe variant)
        Click           Expand
        ?               Toggle help
        q               Quit

    Expanded:
        Enter           Submit the query
        Esc             Collapse
        Scroll down     Collapse (swipe variant)
        Drag up         Collapse (swipe variant)
        Click outside   Collapse

    Always:
        Ctrl+v          Paste from the clipboard
        Ctrl+y          Copy the query
        Ctrl+c          Quit
`

const configTemplate = `# swipesearch configuration
# Location: ~/.config/swipesearch/config.yaml

field:
  # "swipe" opens on a downward drag or scroll, "tap" only on click or key
  variant: swipe
  placeholder: Search
  icon: "🔍"
  # Where the pill sits: top, center or bottom
  alignment: bottom

  # Sizes in terminal cells. Leave unset for the variant's defaults;
  # an unset target width fills the window.
  # initial_width: 14
  # target_width: 0
  # initial_height: 3
  # target_height: 4.2
  # initial_font_size: 14
  # target_font_size: 17.5
  # drag_threshold: 40

  single_line: true
  # max_lines: 0
  # char_limit: 0
  read_only: false
  # mask: "*"
  show_text_when_collapsed: false

  colors:
    background: "#F0F0F3"
    container: "#8E8E93"
    content: "#FFFFFF"

animation:
  # tween or spring
  kind: tween
  duration: 400ms
  # linear, ease, ease-in, ease-out, ease-in-out, fast-out-slow-in
  curve: ease-in-out
  # Spring settings
  frequency: 6
  damping: 1

ui:
  # Send a desktop notification when a query is submitted
  notify_on_search: false
  show_help: true
  # auto, ascii, ansi, ansi256 or truecolor
  color_profile: auto
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Define flags
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		debug       bool
		configPath  string
		query       string
		variant     string
	)

	flags := pflag.NewFlagSet("swipesearch", pflag.ContinueOnError)
	flags.BoolVarP(&showHelp, "help", "h", false, "Show help message")
	flags.BoolVarP(&showVersion, "version", "v", false, "Show version")
	flags.BoolVar(&initConfig, "init", false, "Create template config file")
	flags.BoolVar(&debug, "debug", false, "Write a debug log to debug.log")
	flags.StringVarP(&configPath, "config", "c", "", "Config file path")
	flags.StringVarP(&query, "query", "q", "", "Initial query")
	flags.StringVar(&variant, "variant", "", "Field variant: swipe or tap")

	flags.Usage = func() {
		fmt.Print(helpText)
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	// Handle flags
	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("swipesearch version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate(configPath)
	}

	if debug {
		f, err := tea.LogToFile("debug.log", "swipesearch ")
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	return runApp(configPath, query, variant)
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate(path string) error {
	if path == "" {
		var err error
		path, err = config.ConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	// Write template
	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

// runApp starts the main TUI application.
func runApp(configPath, query, variant string) error {
	// Load configuration
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if variant != "" {
		if cfg.Field.Variant, err = config.ParseVariant(variant); err != nil {
			return err
		}
	}

	profile, auto, err := config.ParseColorProfile(cfg.UI.ColorProfile)
	if err != nil {
		return err
	}
	if !auto {
		lipgloss.SetColorProfile(profile)
	}

	beeep.AppName = "swipesearch"

	app, err := tui.NewApp(cfg, query, tui.DefaultServices())
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
