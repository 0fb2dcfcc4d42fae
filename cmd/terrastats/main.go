// terrastats runs the terrain pipeline headless and prints field statistics:
// biome histogram, river coverage, and elevation spread. Useful for eyeballing
// parameter sweeps without the viewer.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"terrasim/internal/engine"
	"terrasim/internal/logger"
	"terrasim/internal/terrain"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	logLevel := flag.String("log-level", "info", "log level")
	var overrides kvList
	flag.Var(&overrides, "set", "terrain parameter override in key=value form (repeatable)")
	var edits kvList
	flag.Var(&edits, "edit", "brush edit as kind:x:y:radius:strength (repeatable)")
	flag.Parse()

	params := map[string]string{}
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		params[parts[0]] = parts[1]
	}
	cfg := terrain.FromMap(params)

	log := logger.New(*logLevel, "")
	defer log.Sync()

	reqs := make(chan engine.Request)
	out := make(chan engine.Response)
	eng := engine.New(engine.WithLogger(log))
	go eng.Serve(reqs, out)

	go func() {
		defer close(reqs)
		reqs <- engine.InitializeRequest{Seed: cfg.Seed, Params: cfg}
		for _, arg := range edits {
			req, err := parseEdit(arg)
			if err != nil {
				log.Warn("skipping edit", zap.String("edit", arg), zap.Error(err))
				continue
			}
			reqs <- req
		}
	}()

	var last terrain.FieldSet
	for resp := range out {
		switch r := resp.(type) {
		case engine.Progress:
			log.Debug("progress",
				zap.String("phase", string(r.Phase)),
				zap.Float64("fraction", r.Fraction))
		case engine.Result:
			if r.Err != nil {
				log.Fatal("request failed", zap.Error(r.Err))
			}
			last = r.Fields
		}
	}

	printStats(last)
}

// parseEdit decodes kind:x:y:radius:strength.
func parseEdit(arg string) (engine.EditRequest, error) {
	parts := strings.Split(arg, ":")
	if len(parts) != 5 {
		return engine.EditRequest{}, fmt.Errorf("want kind:x:y:radius:strength, got %q", arg)
	}
	kind, err := terrain.ParseBrushKind(parts[0])
	if err != nil {
		return engine.EditRequest{}, err
	}
	x, err := strconv.Atoi(parts[1])
	if err != nil {
		return engine.EditRequest{}, fmt.Errorf("bad x %q: %w", parts[1], err)
	}
	y, err := strconv.Atoi(parts[2])
	if err != nil {
		return engine.EditRequest{}, fmt.Errorf("bad y %q: %w", parts[2], err)
	}
	radius, err := strconv.ParseFloat(parts[3], 64)
	if err != nil {
		return engine.EditRequest{}, fmt.Errorf("bad radius %q: %w", parts[3], err)
	}
	strength, err := strconv.ParseFloat(parts[4], 64)
	if err != nil {
		return engine.EditRequest{}, fmt.Errorf("bad strength %q: %w", parts[4], err)
	}
	return engine.EditRequest{
		X: x, Y: y,
		Brush: terrain.Brush{Kind: kind, Radius: radius, Strength: strength},
	}, nil
}

func printStats(fs terrain.FieldSet) {
	if fs.Size == 0 {
		fmt.Fprintln(os.Stderr, "no result produced")
		os.Exit(1)
	}
	total := fs.Size * fs.Size

	counts := make([]int, terrain.BiomeCount)
	rivers := 0
	minH, maxH := fs.Height[0], fs.Height[0]
	var sumH float64
	for i := 0; i < total; i++ {
		if int(fs.Biomes[i]) < len(counts) {
			counts[fs.Biomes[i]]++
		}
		if fs.Rivers[i] != 0 {
			rivers++
		}
		h := fs.Height[i]
		if h < minH {
			minH = h
		}
		if h > maxH {
			maxH = h
		}
		sumH += float64(h)
	}

	fmt.Printf("grid %dx%d (%d cells)\n", fs.Size, fs.Size, total)
	fmt.Printf("height min %.3f max %.3f mean %.3f\n", minH, maxH, sumH/float64(total))
	fmt.Printf("rivers %d cells (%.2f%%)\n", rivers, 100*float64(rivers)/float64(total))
	fmt.Println("biomes:")
	for i, n := range counts {
		if n == 0 {
			continue
		}
		fmt.Printf("  %-17s %7d (%.2f%%)\n", terrain.Biome(i).String(), n, 100*float64(n)/float64(total))
	}
}
