// Command layoutdump computes and prints the memory layout of a
// texture resource description.
//
// The description comes either from flags or from a TOML file:
//
//	layoutdump -gen 7 -format RGBA8Unorm -width 256 -height 256 -bind sampler
//	layoutdump -config resource.toml
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/texlayout"
	"github.com/gogpu/texlayout/pixfmt"
)

// resourceConfig is the TOML form of a resource description.
type resourceConfig struct {
	Gen       string `toml:"gen"`
	Target    string `toml:"target"`
	Format    string `toml:"format"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Depth     int    `toml:"depth"`
	MipLevels int    `toml:"mip_levels"`
	ArraySize int    `toml:"array_size"`
	Samples   int    `toml:"samples"`
	Bind      string `toml:"bind"`
	Staging   bool   `toml:"staging"`
	NoAux     bool   `toml:"no_aux"`
}

var genNames = map[string]texlayout.GenID{
	"6":   texlayout.Gen6,
	"7":   texlayout.Gen7,
	"7.5": texlayout.Gen75,
}

var targetNames = map[string]texlayout.Target{
	"1d":         texlayout.Target1D,
	"2d":         texlayout.Target2D,
	"3d":         texlayout.Target3D,
	"cube":       texlayout.TargetCube,
	"rect":       texlayout.TargetRect,
	"1d-array":   texlayout.Target1DArray,
	"2d-array":   texlayout.Target2DArray,
	"cube-array": texlayout.TargetCubeArray,
}

var bindNames = map[string]texlayout.BindFlags{
	"render-target": texlayout.BindRenderTarget,
	"depth-stencil": texlayout.BindDepthStencil,
	"sampler":       texlayout.BindSampler,
	"scanout":       texlayout.BindScanout,
	"cursor":        texlayout.BindCursor,
	"linear":        texlayout.BindLinear,
	"stream-output": texlayout.BindStreamOutput,
	"aux":           texlayout.BindAux,
}

func main() {
	var (
		configPath = flag.String("config", "", "TOML resource description")
		gen        = flag.String("gen", "7", "hardware generation (6, 7, 7.5)")
		target     = flag.String("target", "2d", "resource target shape")
		format     = flag.String("format", "RGBA8Unorm", "pixel format")
		width      = flag.Int("width", 256, "base width in texels")
		height     = flag.Int("height", 256, "base height in texels")
		depth      = flag.Int("depth", 1, "base depth in texels")
		mipLevels  = flag.Int("mips", 1, "mip level count")
		arraySize  = flag.Int("layers", 1, "array layer count")
		samples    = flag.Int("samples", 1, "sample count")
		bind       = flag.String("bind", "sampler", "comma-separated binding flags")
		staging    = flag.Bool("staging", false, "staging usage")
		noAux      = flag.Bool("no-aux", false, "disable hierarchical depth buffering")
	)
	flag.Parse()

	cfg := resourceConfig{
		Gen:       *gen,
		Target:    *target,
		Format:    *format,
		Width:     *width,
		Height:    *height,
		Depth:     *depth,
		MipLevels: *mipLevels,
		ArraySize: *arraySize,
		Samples:   *samples,
		Bind:      *bind,
		Staging:   *staging,
		NoAux:     *noAux,
	}

	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			log.Fatalf("Failed to read config: %v", err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			log.Fatalf("Failed to parse config: %v", err)
		}
	}

	dev, res, dbg, err := build(cfg)
	if err != nil {
		log.Fatalf("Invalid description: %v", err)
	}

	layout, err := texlayout.ComputeLayout(dev, res, dbg, nil)
	if err != nil {
		log.Fatalf("Layout failed: %v", err)
	}

	dump(res, layout)
}

func build(cfg resourceConfig) (texlayout.DevInfo, *texlayout.ResourceDesc, texlayout.DebugFlags, error) {
	var zero texlayout.DevInfo

	genID, ok := genNames[cfg.Gen]
	if !ok {
		return zero, nil, texlayout.DebugFlags{}, fmt.Errorf("unknown generation %q", cfg.Gen)
	}

	tgt, ok := targetNames[strings.ToLower(cfg.Target)]
	if !ok {
		return zero, nil, texlayout.DebugFlags{}, fmt.Errorf("unknown target %q", cfg.Target)
	}

	pf, err := pixfmt.Parse(cfg.Format)
	if err != nil {
		return zero, nil, texlayout.DebugFlags{}, err
	}

	var binds texlayout.BindFlags
	for _, name := range strings.Split(cfg.Bind, ",") {
		name = strings.TrimSpace(strings.ToLower(name))
		if name == "" {
			continue
		}
		b, ok := bindNames[name]
		if !ok {
			return zero, nil, texlayout.DebugFlags{}, fmt.Errorf("unknown bind flag %q", name)
		}
		binds |= b
	}

	res := &texlayout.ResourceDesc{
		Target:    tgt,
		Format:    pf,
		Width:     cfg.Width,
		Height:    cfg.Height,
		Depth:     cfg.Depth,
		ArraySize: cfg.ArraySize,
		Samples:   cfg.Samples,
		Bind:      binds,
	}
	if cfg.MipLevels > 1 {
		res.LastLevel = cfg.MipLevels - 1
	}
	if cfg.Staging {
		res.Usage = texlayout.UsageStaging
	}

	return texlayout.DevInfo{Gen: genID}, res, texlayout.DebugFlags{NoAux: cfg.NoAux}, nil
}

func dump(res *texlayout.ResourceDesc, l *texlayout.Layout) {
	fmt.Printf("resource:    %s %dx%dx%d, %d level(s), %d layer(s), %d sample(s)\n",
		res.DebugName(), res.Width, res.Height, res.Depth,
		res.LastLevel+1, max(res.ArraySize, 1), max(res.Samples, 1))
	fmt.Printf("format:      %s (requested %s)\n", l.Format, res.Format)
	fmt.Printf("tiling:      %s\n", l.Tiling)
	fmt.Printf("alignment:   %dx%d\n", l.AlignI, l.AlignJ)
	fmt.Printf("spacing:     interleaved=%v full=%v qpitch=%d\n",
		l.Interleaved, l.FullArraySpacing, l.QPitch)
	fmt.Printf("surface:     %dx%d texels\n", l.Width, l.Height)
	fmt.Printf("buffer:      %d bytes/row x %d rows = %d bytes\n",
		l.BOStride, l.BOHeight, l.ByteSize())
	for lv, ext := range l.Levels {
		fmt.Printf("  level %-2d   %dx%dx%d\n", lv, ext.W, ext.H, ext.D)
	}
	if l.Aux {
		fmt.Printf("aux buffer:  %d bytes/row x %d rows = %d bytes\n",
			l.AuxStride, l.AuxHeight, l.AuxByteSize())
	}
	if l.SeparateStencil {
		fmt.Println("stencil:     stored separately")
	}
}
