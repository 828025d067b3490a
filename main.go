package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"peoplepick/internal/config"
	"peoplepick/internal/dataset"
	"peoplepick/internal/eventbus"
	"peoplepick/internal/ui"
)

type options struct {
	configPath string
	peopleFile string
	delay      time.Duration
	delaySet   bool
	watch      bool
	logFile    string
}

func main() {
	os.Exit(realMain(os.Args[1:]))
}

// realMain returns the exit code so deferred cleanup runs before exiting
func realMain(args []string) int {
	opts, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	// Set up logging. Bubble Tea owns the terminal, so logs go to a file or nowhere.
	if opts.logFile != "" {
		f, err := tea.LogToFile(opts.logFile, "peoplepick")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
			return 1
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	if err := run(opts); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	log.Printf("UI exited normally")
	return 0
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("peoplepick", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: peoplepick [flags]\n\nPick a person from a list by typing part of the name.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	opts := &options{}
	fs.StringVar(&opts.configPath, "config", "", "Path to the config file (default "+config.DefaultPath()+")")
	fs.StringVarP(&opts.peopleFile, "people", "p", "", "People file (json, toml or yaml) instead of the built-in list")
	fs.DurationVarP(&opts.delay, "delay", "d", 0, "Quiet period before a search runs (e.g. 150ms)")
	fs.BoolVar(&opts.watch, "watch", false, "Reload the people file when it changes")
	fs.StringVar(&opts.logFile, "log-file", "", "Write debug logs to this file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	// any explicit --delay overrides the config file, even one Validate rejects
	opts.delaySet = fs.Changed("delay")
	return opts, nil
}

// loadConfig reads the config file and applies flag overrides
func loadConfig(opts *options) (*config.Config, error) {
	svc := config.NewConfigService()
	if opts.configPath != "" {
		svc = config.NewConfigServiceAt(opts.configPath)
	}

	cfg, err := svc.Load()
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded config from %s", svc.Path())

	if opts.peopleFile != "" {
		cfg.PeopleFile = opts.peopleFile
	}
	if opts.delaySet {
		cfg.Selector.DelayMS = int(opts.delay / time.Millisecond)
	}
	if opts.watch {
		cfg.Watch = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(opts *options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	bus.Subscribe(eventbus.EventPersonSelected, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.PersonSelectedEvent); ok {
			log.Printf("Selected %s (%s)", event.Person.Name, event.Person.Slug)
		}
	})
	bus.Subscribe(eventbus.EventSelectionCleared, func(e eventbus.DomainEvent) {
		log.Printf("Selection cleared")
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			log.Printf("%s: %v", event.Message, event.Err)
		}
	})
	bus.Subscribe(eventbus.EventDatasetReloaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.DatasetReloadedEvent); ok {
			log.Printf("People file reloaded: %d people, version %d", event.Count, event.Version)
		}
	})

	var ds dataset.Dataset
	var store *dataset.Store
	if cfg.PeopleFile == "" {
		static, err := dataset.Default()
		if err != nil {
			return err
		}
		ds = static
	} else {
		people, err := dataset.Load(cfg.PeopleFile)
		if err != nil {
			return err
		}
		log.Printf("Loaded %d people from %s", len(people), cfg.PeopleFile)
		store = dataset.NewStore(people)
		ds = store
	}

	model := ui.NewModel(bus, cfg, ds)
	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	if cfg.Watch && store != nil {
		watcher, err := dataset.NewWatcher(dataset.WatcherConfig{
			Path:  cfg.PeopleFile,
			Store: store,
			OnReload: func(version uint64, count int) {
				bus.Publish(eventbus.DatasetReloadedEvent{Version: version, Count: count})
				p.Send(ui.DatasetReloadedMsg{Version: version, Count: count})
			},
			OnError: func(err error) {
				bus.Publish(eventbus.ErrorEvent{Message: "people file reload failed", Err: err})
				p.Send(ui.DatasetReloadFailedMsg{Err: err})
			},
		})
		if err != nil {
			return err
		}
		if err := watcher.Start(ctx); err != nil {
			return err
		}
		defer watcher.Stop()
	}

	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	log.Printf("Starting UI...")
	_, err = p.Run()
	return err
}
