package main

import (
	"errors"
	"flag"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/nightblade9/crawlkit/ecs"
	"github.com/nightblade9/crawlkit/ecs/debugui"
	debuguiebiten "github.com/nightblade9/crawlkit/ecs/debugui/ebiten"
	"github.com/nightblade9/crawlkit/rogue"
	"github.com/nightblade9/crawlkit/rogue/ebitenio"
)

func main() {
	configPath := flag.String("config", "crawl.yaml", "path to the config file")
	debug := flag.Bool("debug", false, "show the debug overlay")
	flag.Parse()

	logger := zap.Must(zap.NewProduction())
	defer logger.Sync()
	logger = logger.With(zap.String("session", uuid.NewString()))

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	if *debug {
		cfg.Debug = true
	}

	registry := ecs.NewKindRegistry()
	rogue.RegisterKinds(registry)
	container := ecs.NewContainer(registry)

	bounds := rogue.Bounds{Width: cfg.MapWidth, Height: cfg.MapHeight}
	container.AddEntity(rogue.NewPlayer(cfg.MapWidth/2, cfg.MapHeight/2, bounds))
	for i := 0; i < cfg.Monsters; i++ {
		container.AddEntity(rogue.NewMonster((i*7+3)%cfg.MapWidth, (i*5+2)%cfg.MapHeight))
	}

	surface := ebitenio.NewGridSurface()
	keyboard := rogue.NewKeyboardSystem(ebitenio.NewKeyboard())

	// Input first, then simulation, then display: the tick a key arrives
	// in is the tick its effect is drawn.
	container.AddSystem(keyboard)
	container.AddSystem(rogue.NewWanderSystem(bounds, cfg.WanderSeed))
	container.AddSystem(rogue.NewDisplaySystem(surface))

	game := ebitenio.NewGame(container, keyboard, surface, bounds)

	width := cfg.MapWidth * ebitenio.CellWidth * 2
	height := cfg.MapHeight * ebitenio.CellHeight * 2

	if cfg.Debug {
		overlay := debugui.NewOverlay(container)
		game.SetOverlay(debuguiebiten.New(overlay, cfg.Title, width, height))
		// Keys typed into debug windows must not double as game input.
		keyboard.SetCaptureGuard(debugui.WantCaptureKeyboard)
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle(cfg.Title)
	}

	logger.Info("starting crawl",
		zap.Int("map_width", cfg.MapWidth),
		zap.Int("map_height", cfg.MapHeight),
		zap.Int("monsters", cfg.Monsters),
		zap.Bool("debug", cfg.Debug))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game loop", zap.Error(err))
	}

	logger.Info("stopped", zap.Any("stats", container.Stats()))
}
