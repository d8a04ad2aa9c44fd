package main

import (
	"fmt"
	"log"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"multiselect/internal/config"
	"multiselect/internal/domain"
	"multiselect/internal/eventbus"
	"multiselect/internal/ui"
)

var (
	configPath string
	logPath    string
	save       bool
	overrides  config.Overrides
)

var rootCmd = &cobra.Command{
	Use:   "multiselect-demo [config-file]",
	Short: "Try out the searchable multi-select widget",
	Long: "multiselect-demo renders the widgets described in a TOML or YAML config file. " +
		"Without a config file it shows a few sample widgets.",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			configPath = args[0]
		}
		return run()
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "config file (.toml, .yaml or .yml)")
	flags.StringVar(&logPath, "log", "multiselect.log", "log file")
	flags.BoolVar(&save, "save", false, "write selections back to the config file")
	overrides.AddFlags(flags)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Set up logging
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Failed to load config from %s, using defaults: %v", configSvc.Path(), err)
		cfg = config.DefaultConfig()
	}
	overrides.Apply(cfg)

	uiModel, err := ui.NewModel(bus, cfg)
	if err != nil {
		return fmt.Errorf("failed to build widgets: %w", err)
	}
	defer uiModel.Close()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if !cfg.UISettings.DisableMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(uiModel, opts...)
	uiModel.SetProgram(p)

	if save {
		var mu sync.Mutex
		bus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.DomainEvent) {
			event, ok := e.(eventbus.SelectionChangedEvent)
			if !ok {
				return
			}
			mu.Lock()
			defer mu.Unlock()

			if !cfg.ApplySelection(domain.Selection{WidgetID: event.WidgetID, Labels: event.Labels}) {
				return
			}
			if err := configSvc.Save(cfg); err != nil {
				log.Printf("Failed to save config: %v", err)
				bus.Publish(eventbus.ErrorEvent{Message: "save failed: " + err.Error(), Err: err})
			} else {
				log.Printf("Config saved to %s", configSvc.Path())
			}
		})
	}

	// Forward events the screen reacts to
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	bus.Subscribe(eventbus.EventConfigSaved, forward)
	bus.Subscribe(eventbus.EventError, forward)

	log.Printf("Starting UI with %d widgets...", len(cfg.Widgets))
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("error running program: %w", err)
	}
	log.Printf("UI exited normally")
	return nil
}
