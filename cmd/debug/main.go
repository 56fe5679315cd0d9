package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/VoidMesh/density/cmd/debug/models"
	"github.com/VoidMesh/density/internal/biome"
	"github.com/VoidMesh/density/internal/interp"
	"github.com/VoidMesh/density/internal/logging"
	"github.com/VoidMesh/density/internal/noise"
	"github.com/VoidMesh/density/internal/sampler"
	"github.com/VoidMesh/density/internal/world"
)

func main() {
	seed := flag.Int64("seed", 0, "World seed")
	noiseKind := flag.String("noise", string(noise.KindPerlin), "Noise source (perlin, simplex)")
	modeName := flag.String("mode", interp.Trilinear.String(), "Interpolation mode (bilinear, trilinear)")
	biomeName := flag.String("biome", "", "Force a single biome everywhere (ocean, plains, hills, mountains)")
	tileX := flag.Int("x", 0, "Starting tile x")
	tileZ := flag.Int("z", 0, "Starting tile z")
	logLevel := flag.String("log", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	// Setup file logging for debug
	if len(os.Getenv("DEBUG")) > 0 {
		f, err := tea.LogToFile("debug.log", "debug")
		if err != nil {
			fmt.Println("fatal:", err)
			os.Exit(1)
		}
		defer f.Close()
		logging.Configure(logging.Options{Level: *logLevel, Format: "text", Output: f})
	} else {
		logging.Configure(logging.Options{Level: "error", Format: "text"})
	}
	log := logging.GetLogger()

	mode, err := interp.ParseMode(*modeName)
	if err != nil {
		log.Fatal("Invalid mode", "error", err)
	}

	src, err := noise.New(noise.Kind(*noiseKind), *seed)
	if err != nil {
		log.Fatal("Invalid noise source", "error", err)
	}

	var classifier interp.Classifier = biome.NewCached(biome.NewClassifier(src, biome.DefaultScale))
	if *biomeName != "" {
		b, err := biome.Lookup(*biomeName)
		if err != nil {
			log.Fatal("Invalid biome", "error", err, "known", biome.Names())
		}
		classifier = biome.Uniform{Generator: b}
	}

	svc, err := sampler.NewServiceWithDefaultLogger(sampler.Options{
		Mode:       mode,
		World:      world.New("debug", *seed),
		Classifier: classifier,
		Source:     src,
	})
	if err != nil {
		log.Fatal("Failed to create sampler", "error", err)
	}

	explorer := models.NewTileExplorerModel(svc, *tileX, *tileZ)
	program := tea.NewProgram(explorer, tea.WithAltScreen())

	log.Info("Starting density debug tool", "seed", *seed, "noise", *noiseKind, "mode", mode)

	if _, err := program.Run(); err != nil {
		log.Fatal("Error running debug tool", "error", err)
	}
}
