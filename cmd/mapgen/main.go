package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"antfarm/internal/terrain"
)

func main() {
	var chunksX int
	var chunksY int
	var chunkSize int
	var tileSize int
	var fillName string
	var materialName string
	var seed int64
	var out string

	flag.IntVar(&chunksX, "chunks-x", 4, "chunk columns")
	flag.IntVar(&chunksY, "chunks-y", 4, "chunk rows")
	flag.IntVar(&chunkSize, "chunk-size", 16, "tiles per chunk edge")
	flag.IntVar(&tileSize, "tile-size", 16, "pixels per tile edge")
	flag.StringVar(&fillName, "fill", "noise", "fill mode: flat, columns, checkerboard, noise")
	flag.StringVar(&materialName, "material", "grass", "base material")
	flag.Int64Var(&seed, "seed", 42, "noise seed")
	flag.StringVar(&out, "out", "map.json", "output snapshot path")
	flag.Parse()

	log := logrus.WithField("component", "mapgen")

	fill, ok := terrain.ParseFillMode(fillName)
	if !ok {
		log.WithField("fill", fillName).Fatal("unknown fill mode")
	}
	material, ok := terrain.ParseMaterial(materialName)
	if !ok {
		log.WithField("material", materialName).Fatal("unknown material")
	}

	grid := terrain.NewDenseChunkGrid(terrain.DenseConfig{
		ChunksX:         chunksX,
		ChunksY:         chunksY,
		ChunkSize:       chunkSize,
		TileSize:        tileSize,
		DefaultMaterial: material,
		Fill:            fill,
		Seed:            seed,
	})

	snap := grid.ExportSnapshot()
	data, err := terrain.EncodeSnapshot(snap)
	if err != nil {
		log.WithError(err).Fatal("encode snapshot")
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		log.WithError(err).Fatal("write snapshot")
	}
	log.WithFields(logrus.Fields{
		"out":   out,
		"size":  grid.Width() * grid.Height(),
		"tiles": len(snap.Tiles),
		"fill":  fill.String(),
	}).Info("map generated")
}
