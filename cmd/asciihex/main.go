package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/asciihex/audio"
	"github.com/lixenwraith/asciihex/clip"
	"github.com/lixenwraith/asciihex/codetable"
	"github.com/lixenwraith/asciihex/config"
	"github.com/lixenwraith/asciihex/export"
	"github.com/lixenwraith/asciihex/ui"
	"github.com/spf13/afero"
	"golang.org/x/term"
)

var (
	exportFlag = flag.String("export", "", "write the table to this file and exit")
	findFlag   = flag.String("find", "", "print entries matching a char, decimal or hex query and exit")
	printFlag  = flag.Bool("print", false, "write the delimited table to stdout and exit")
	themeFlag  = flag.String("theme", "", "color theme: light, dark")
	fontFlag   = flag.String("font", "", "font size: 8, 10, 14 or small, medium, large")
	delimFlag  = flag.String("delim", "", "export delimiter: , ; | tab")
	audioFlag  = flag.Bool("audio", false, "play feedback tones")
)

func main() {
	flag.Parse()

	fs := afero.NewOsFs()

	// Dotenv discovery logs go to stderr; the UI redirects later
	cfg := config.Load(fs)
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "asciihex: %v\n", err)
		os.Exit(2)
	}

	table := codetable.Default()

	switch {
	case *exportFlag != "":
		os.Exit(runExport(fs, cfg, table, *exportFlag))
	case *findFlag != "":
		os.Exit(runFind(os.Stdout, table, *findFlag))
	case *printFlag || !term.IsTerminal(int(os.Stdout.Fd())):
		os.Exit(runPrint(os.Stdout, cfg, table))
	}

	os.Exit(runUI(fs, cfg, table))
}

// applyFlags overrides loaded preferences with explicit flags
func applyFlags(cfg *config.Config) error {
	if *themeFlag != "" {
		t, err := config.ParseTheme(*themeFlag)
		if err != nil {
			return err
		}
		cfg.Theme = t
	}
	if *fontFlag != "" {
		f, err := config.ParseFontSize(*fontFlag)
		if err != nil {
			return err
		}
		cfg.FontSize = f
	}
	if *delimFlag != "" {
		d, err := config.ParseDelimiter(*delimFlag)
		if err != nil {
			return err
		}
		cfg.Delimiter = d
	}
	if *audioFlag {
		cfg.AudioEnabled = true
	}
	return nil
}

func runExport(fs afero.Fs, cfg *config.Config, table *codetable.Table, path string) int {
	if err := export.NewWriter(fs, cfg.Delimiter).Write(path, table); err != nil {
		fmt.Fprintln(os.Stderr, export.FailureMessage(err))
		return 1
	}
	fmt.Println(export.SuccessMessage(path))
	return 0
}

func runPrint(w io.Writer, cfg *config.Config, table *codetable.Table) int {
	if err := export.Encode(w, table, cfg.Delimiter); err != nil {
		fmt.Fprintf(os.Stderr, "asciihex: %v\n", err)
		return 1
	}
	return 0
}

// setupLogging keeps log output off the screen while the UI owns it
func setupLogging(fs afero.Fs, path string) (io.Closer, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	f, err := fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return f, nil
}

func runUI(fs afero.Fs, cfg *config.Config, table *codetable.Table) (code int) {
	logFile, err := setupLogging(fs, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		return 1
	}
	defer logFile.Close()

	sound := audio.NewSoundManager(cfg.AudioEnabled, cfg.Volume)
	if err := sound.Initialize(); err != nil {
		// Non-fatal, the table works without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sound.Cleanup()

	system := clip.NewSystem()
	if !system.Available() {
		log.Printf("System clipboard unavailable, copies stay in process")
	}

	model := ui.NewModel(cfg, ui.Deps{
		Table:     table,
		Clipboard: clip.Fallback{Primary: system, Secondary: &clip.Memory{}},
		Sound:     sound,
		Exporter:  export.NewWriter(fs, cfg.Delimiter),
	})

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}

	app := ui.NewApp(screen, model)
	if err := app.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			app.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mASCIIHEX CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			code = 1
		}
	}()

	app.Run()
	app.Fini()
	return 0
}
