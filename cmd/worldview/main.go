package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/CLOEI/gtworld-r/catalog"
	"github.com/CLOEI/gtworld-r/render"
	"github.com/CLOEI/gtworld-r/snapshot"
	"github.com/CLOEI/gtworld-r/world"
)

func main() {
	var (
		itemsFile   = flag.String("items", "", "Path to item catalog YAML file")
		worldFile   = flag.String("world", "", "Path to world snapshot file")
		jsonOut     = flag.String("json", "", "Export decoded world as JSON (use .gz suffix for gzip)")
		pngOut      = flag.String("png", "", "Export world image as PNG")
		texturesDir = flag.String("textures", "", "Directory with converted sprite sheets (optional)")
		scale       = flag.Int("scale", 32, "Pixels per tile for PNG export")
		interactive = flag.Bool("i", false, "Interactive tile inspector")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *itemsFile == "" || *worldFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: worldview -items <items.yaml> -world <world.dat> [-json out.json] [-png out.png]")
		fmt.Fprintln(os.Stderr, "       worldview -items <items.yaml> -world <world.dat> -i  (interactive mode)")
		os.Exit(1)
	}

	log := zap.NewNop()
	if *verbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		log = dev
		defer log.Sync()
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: -i requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*itemsFile, *worldFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*itemsFile, *worldFile, *jsonOut, *pngOut, *texturesDir, *scale, log); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(itemsFile, worldFile, jsonOut, pngOut, texturesDir string, scale int, log *zap.Logger) error {
	cat, err := catalog.LoadYAMLFile(itemsFile)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	log.Info("catalog loaded",
		zap.String("file", itemsFile),
		zap.Int("items", cat.Len()),
		zap.Uint32("item_count", cat.ItemCount()))

	data, err := os.ReadFile(worldFile)
	if err != nil {
		return fmt.Errorf("read world: %w", err)
	}

	w := world.New(cat)
	if err := w.Parse(data); err != nil {
		return fmt.Errorf("decode %s: %w", worldFile, err)
	}

	printSummary(w)

	if jsonOut != "" {
		if err := exportJSON(w, jsonOut); err != nil {
			return fmt.Errorf("export json: %w", err)
		}
		fmt.Printf("\nJSON written to %s\n", jsonOut)
	}

	if pngOut != "" {
		opts := []render.Option{
			render.WithPixelsPerTile(scale),
			render.WithLogger(log),
		}
		if texturesDir != "" {
			opts = append(opts, render.WithTextures(render.NewTextureCache(texturesDir, log)))
		}
		img, err := render.New(cat, opts...).Render(w)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		f, err := os.Create(pngOut)
		if err != nil {
			return fmt.Errorf("create png: %w", err)
		}
		defer f.Close()
		if err := render.EncodePNG(f, img); err != nil {
			return fmt.Errorf("encode png: %w", err)
		}
		fmt.Printf("PNG written to %s (%dx%d)\n", pngOut, img.Bounds().Dx(), img.Bounds().Dy())
	}

	return nil
}

func exportJSON(w *world.World, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if len(path) > 3 && path[len(path)-3:] == ".gz" {
		return snapshot.WriteGzip(f, w)
	}
	return snapshot.Write(f, w)
}

func printSummary(w *world.World) {
	fmt.Printf("World: %s\n", w.Name)
	fmt.Printf("Version: %#x\n", w.Version)
	fmt.Printf("Size: %dx%d (%d tiles)\n", w.Width, w.Height, w.TileCount)
	fmt.Printf("Dropped items: %d (last uid %d)\n", w.Dropped.ItemsCount, w.Dropped.LastDroppedItemUID)
	fmt.Printf("Weather: %s (base %s)\n", w.CurrentWeather, w.BaseWeather)

	// Variant histogram, most common first.
	counts := make(map[world.Kind]int)
	for i := range w.Tiles {
		counts[w.Tiles[i].Type.Kind()]++
	}
	kinds := make([]world.Kind, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool {
		if counts[kinds[i]] != counts[kinds[j]] {
			return counts[kinds[i]] > counts[kinds[j]]
		}
		return kinds[i] < kinds[j]
	})

	fmt.Printf("\nTile variants:\n")
	for _, k := range kinds {
		fmt.Printf("  %-28s %d\n", k, counts[k])
	}
}
