package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jozzs/svgcast/pkg/cache"
	"github.com/jozzs/svgcast/pkg/errors"
	"github.com/jozzs/svgcast/pkg/geom"
	"github.com/jozzs/svgcast/pkg/sceneio"
	"github.com/jozzs/svgcast/pkg/svg"
)

// cacheTTL bounds how long rendered documents are kept. Serialization is
// deterministic, so entries never go stale; the TTL only caps disk growth.
const cacheTTL = 7 * 24 * time.Hour

// convertOpts holds the command-line flags for the convert command.
type convertOpts struct {
	output   string // output file path, derived from input when empty
	unit     string // CSS unit for width/height
	decimals int    // rounding precision factor
	noCache  bool   // bypass the render cache
}

// convertCommand creates the convert command for serializing scenes.
func (c *CLI) convertCommand() *cobra.Command {
	opts := convertOpts{
		unit:     c.Config.Unit,
		decimals: c.Config.Decimals,
		noCache:  c.Config.NoCache,
	}

	cmd := &cobra.Command{
		Use:   "convert [scene.json]",
		Short: "Serialize a geometry scene to an SVG document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := pickInput(args)
			if err != nil {
				return err
			}
			return c.runConvert(cmd.Context(), input, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input with .svg extension)")
	cmd.Flags().StringVar(&opts.unit, "unit", opts.unit, "unit for document dimensions: em, ex, px, in, cm, mm, pt, pc")
	cmd.Flags().IntVar(&opts.decimals, "decimals", opts.decimals, "rounding factor for coordinates (e.g. 10000 keeps 4 decimal places)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", opts.noCache, "bypass the render cache")

	return cmd
}

// pickInput resolves the scene file: the positional argument when given,
// otherwise the interactive picker over JSON files in the working directory.
func pickInput(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	return pickScene(".")
}

// runConvert reads the scene, serializes it (through the cache), and
// writes the resulting document.
func (c *CLI) runConvert(ctx context.Context, input string, opts *convertOpts) error {
	sceneBytes, err := os.ReadFile(input)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(errors.ErrCodeFileNotFound, err, "scene file %s", input)
		}
		return err
	}

	store := newCache(opts.noCache)
	defer store.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Converting %s", input))
	spinner.Start()

	doc, stats, err := c.convertScene(ctx, store, sceneBytes, opts)
	if err != nil {
		spinner.StopWithError(errors.UserMessage(err))
		return err
	}
	spinner.Stop()

	outputPath := opts.output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + ".svg"
	}
	if err := os.WriteFile(outputPath, doc, 0644); err != nil {
		return err
	}

	printSuccess("Serialized %s", input)
	printStats(stats.objects, stats.skipped, stats.cached)
	printFile(outputPath)
	return nil
}

// convertStats summarizes a conversion for display.
type convertStats struct {
	objects int
	skipped int
	cached  bool
}

// convertScene produces the document for a scene, consulting the cache
// first. Cache entries are keyed on the scene bytes plus the options that
// affect output.
func (c *CLI) convertScene(ctx context.Context, store cache.Cache, sceneBytes []byte, opts *convertOpts) ([]byte, convertStats, error) {
	objects, err := sceneio.ReadScene(bytes.NewReader(sceneBytes))
	if err != nil {
		return nil, convertStats{}, err
	}
	stats := convertStats{objects: len(objects), skipped: countSkipped(objects)}

	key := cache.DocumentKey(sceneBytes, opts.unit, opts.decimals)
	if doc, hit, err := store.Get(ctx, key); err == nil && hit {
		stats.cached = true
		return doc, stats, nil
	}

	track := newProgress(c.Logger)
	doc, err := svg.Serialize(svg.Options{
		Unit:     opts.unit,
		Decimals: opts.decimals,
		Logger:   c.Logger,
	}, objects...)
	if err != nil {
		return nil, stats, err
	}
	track.done(fmt.Sprintf("Serialized %d objects", stats.objects-stats.skipped))

	if err := store.Set(ctx, key, doc, cacheTTL); err != nil {
		c.Logger.Debugf("cache write failed: %v", err)
	}
	return doc, stats, nil
}

// countSkipped counts objects the serializer will not convert.
func countSkipped(objects []any) int {
	n := 0
	for _, obj := range objects {
		if _, ok := obj.(*geom.Geom3); ok {
			n++
		}
	}
	return n
}
