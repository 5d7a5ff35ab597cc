package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"antfarm/internal/app"
	"antfarm/internal/terrain"
)

// loadConfig reads antfarm.toml from the working directory when present,
// falling back to defaults for anything unset.
func loadConfig() (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigName("antfarm")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 800)
	v.SetDefault("terrain.tile_size", 16)
	v.SetDefault("terrain.max_extent", terrain.DefaultMaxExtent)
	v.SetDefault("terrain.default_material", "grass")
	v.SetDefault("editor.brush_size", 1)
	v.SetDefault("editor.invalidate_delay_ms", 1000)

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; anything else is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	return v, nil
}

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	entry := logger.WithField("component", "editor")

	v, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	material := terrain.MaterialGrass
	if m, ok := terrain.ParseMaterial(v.GetString("terrain.default_material")); ok {
		material = m
	} else {
		entry.WithField("material", v.GetString("terrain.default_material")).
			Warn("unknown default material in config, using grass")
	}

	cfg := app.Config{
		CanvasW:         v.GetInt("window.width"),
		CanvasH:         v.GetInt("window.height"),
		TileSize:        v.GetInt("terrain.tile_size"),
		MaxExtent:       v.GetInt("terrain.max_extent"),
		DefaultMaterial: material,
		BrushSize:       v.GetInt("editor.brush_size"),
		InvalidateDelay: time.Duration(v.GetInt("editor.invalidate_delay_ms")) * time.Millisecond,
	}
	entry.WithFields(logrus.Fields{
		"max_extent": cfg.MaxExtent,
		"tile_size":  cfg.TileSize,
	}).Info("starting editor")

	a, err := app.New(cfg, entry)
	if err != nil {
		log.Fatal(err)
	}
	defer a.Close()

	ebiten.SetWindowTitle("Ant Farm Editor")
	ebiten.SetWindowSize(cfg.CanvasW, cfg.CanvasH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
