package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/hsiuhsiu/opennurbs-go/pkg/nurbs"
	"github.com/hsiuhsiu/opennurbs-go/pkg/nurbs/logging"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a JSON loader configuration")
		dir        = flag.String("dir", "", "directory to resolve the resource in (default: executable directory)")
		resource   = flag.String("resource", "curve.json", "name of the curve document")
		strict     = flag.Bool("strict", false, "validate the curve before constructing it")
		verbose    = flag.Bool("v", false, "log loader steps")
	)
	flag.Parse()

	cfg := &nurbs.Config{}
	if *configPath != "" {
		loaded, err := nurbs.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}
	if *strict {
		cfg.Strict = true
	}

	level, err := cfg.Level()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *verbose {
		level = slog.LevelDebug
	}
	logger := logging.New(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	ctx := context.Background()

	logger.Info(ctx, "opennurbs-go", "version", nurbs.WrapperVersion(), "native", nurbs.NativeVersion())

	var scope nurbs.Scope
	if *dir != "" {
		scope = nurbs.DirScope(*dir)
	} else {
		scope, err = nurbs.MainBundle()
		if err != nil {
			log.Fatalf("main bundle: %v", err)
		}
	}

	curve, err := cfg.NewLoader(logger).LoadContext(ctx, *resource, scope)
	if err != nil {
		if nurbs.IsNothingToConstruct(err) {
			fmt.Printf("nothing to construct: %v\n", err)
			os.Exit(2)
		}
		if errors.Is(err, nurbs.ErrInvalidCurve) {
			log.Fatalf("invalid curve: %v", err)
		}
		log.Fatalf("load %s: %v", *resource, err)
	}
	defer curve.Free()

	fmt.Printf("degree:         %d\n", curve.Degree())
	fmt.Printf("control points: %d\n", curve.ControlPointCount())
	for i, p := range curve.ControlPoints() {
		fmt.Printf("  [%d] x=%g y=%g z=%g w=%g\n", i, p.X(), p.Y(), p.Z(), p.W())
	}
	fmt.Printf("knots:          %d %v\n", curve.KnotCount(), curve.Knots())
}
