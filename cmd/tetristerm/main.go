package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/gui"
	"github.com/qnkhuat/tetristerm/pkg/logging"
)

func main() {
	cfg := game.DefaultConfig()

	nick := flag.String("nick", "", "nickname shown next to the board")
	scoresPath := flag.String("scores", "scores.txt", "path to high score file")
	logPath := flag.String("log", "", "path to log file")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	themeName := flag.String("theme", gui.ThemeBasic.Name, "theme name")
	themesPath := flag.String("themes", "", "path to a JSON file of themes")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "board width")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "board height")
	flag.DurationVar(&cfg.FallInterval, "fall", cfg.FallInterval, "time for the piece to fall one row")
	flag.StringVar(&cfg.Randomizer, "randomizer", cfg.Randomizer, "piece randomizer: uniform or bag")
	flag.Int64Var(&cfg.Seed, "seed", 0, "random seed, 0 picks one from the clock")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal("failed to start tetris: non-interactive terminals are not supported")
	}

	logger, err := logging.InitLog(*logPath, "CLIENT", *logLevel)
	if err != nil {
		log.Fatal(err)
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.PlayerName = game.Nickname(*nick)

	theme, err := loadTheme(*themeName, *themesPath)
	if err != nil {
		log.Fatal(err)
	}

	g, err := game.New(cfg, &game.FileStore{Path: *scoresPath}, nil)
	if err != nil {
		log.Fatal(err)
	}
	g.Logger = logger.With("player", cfg.PlayerName)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	ui := gui.New(g, theme)
	if err := ui.Run(ctx); err != nil {
		logger.Error("terminal failed", "err", err)
		cancel()
		os.Exit(1)
	}

	summary(g)
}

func loadTheme(name, path string) (gui.Theme, error) {
	var themes []gui.ThemeHex
	if path != "" {
		var err error
		themes, err = gui.LoadThemes(path)
		if err != nil {
			return gui.Theme{}, err
		}
	}

	return gui.ImportThemes(name, themes)
}

func summary(g *game.Game) {
	title := color.New(color.FgCyan, color.Bold)
	value := color.New(color.FgYellow)

	title.Print("Score: ")
	value.Println(g.Score())
	title.Print("High Score: ")
	value.Println(g.HighScore())
	title.Print("Lines: ")
	value.Println(g.Lines())
}
