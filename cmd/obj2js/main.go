// obj2js converts Wavefront OBJ models into JavaScript vertex arrays.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/manvscode/obj2js/internal/config"
	"github.com/manvscode/obj2js/internal/logger"
	"github.com/manvscode/obj2js/pkg/jsexport"
	"github.com/manvscode/obj2js/pkg/obj"
)

const version = "1.1"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "info":
		cmdInfo(os.Args[2:])
	case "config":
		cmdConfig(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	default:
		cmdConvert(os.Args[1:])
	}
}

func printUsage() {
	fmt.Printf(`obj2js v%s - Wavefront OBJ to JavaScript converter

Usage:
  obj2js -i <obj-file> -o <javascript-file> [options]
  obj2js info <obj-file>
  obj2js config [path]

Command Line Options:
  -i, --input           The input OBJ file.
  -o, --output          The output JavaScript file (- for stdout).
  -v, --variable-name   The variable name for the JavaScript object.
      --no-texcoords    Omit texture coordinates.
      --no-normals      Omit normals.
      --strict          Reject non-numeric values instead of reading 0.
      --skip-malformed  Skip malformed records instead of failing.
      --exact-directives Match directive keywords exactly.
      --encoding        Input text encoding (default utf-8).
      --verbose         Log parser notices.
      --debug           Enable debug logging.
      --config          Path to config file.

Examples:
  obj2js -i teapot.obj -o teapot.js
  obj2js -i house.obj -o - -v House --no-normals
  obj2js info teapot.obj
`, version)
}

func cmdConvert(args []string) {
	if err := config.ParseFlags(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if extra := flag.Args(); len(extra) > 0 {
		fmt.Fprintf(os.Stderr, "Unrecognized command line option '%s'\n", extra[0])
		printUsage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	input := config.InputPath()
	if input == "" {
		fmt.Fprintln(os.Stderr, "Error: need to specify input OBJ file.")
		printUsage()
		os.Exit(3)
	}
	output := config.OutputPath()
	if output == "" {
		fmt.Fprintln(os.Stderr, "Error: need to specify output JavaScript file.")
		printUsage()
		os.Exit(3)
	}

	if err := convert(cfg, input, output); err != nil {
		logger.Error("Conversion failed", zap.String("input", input), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

// convert loads input and writes the JavaScript literal to output.
func convert(cfg *config.Config, input, output string) error {
	opts := cfg.ParseOptions()
	opts.Logger = logger.Named("obj")

	model, err := obj.ParseFile(input, opts)
	if err != nil {
		return err
	}
	defer model.Clear()

	exportOpts := cfg.ExportOptions(input)
	if output == "-" {
		err = jsexport.Write(os.Stdout, model, exportOpts)
	} else {
		err = jsexport.WriteFile(output, model, exportOpts)
	}
	if err != nil {
		return err
	}

	logger.Info("Converted",
		zap.String("input", input),
		zap.String("output", output),
		zap.String("variable", exportOpts.VariableName),
		zap.Int("groups", model.GroupCount()),
		zap.Int("faces", model.FaceCount()))
	return nil
}

func cmdInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	encoding := fs.String("encoding", "", "Input text encoding")
	exact := fs.Bool("exact-directives", false, "Match directive keywords exactly")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: obj2js info <file.obj>")
		os.Exit(1)
	}

	opts := obj.DefaultOptions()
	opts.Encoding = *encoding
	opts.ExactDirectives = *exact
	opts.SkipMalformed = true

	model, err := obj.ParseFile(fs.Arg(0), opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer model.Clear()

	fmt.Printf("Model:      %s\n", filepath.Base(fs.Arg(0)))
	fmt.Printf("Vertices:   %d\n", model.VertexCount())
	fmt.Printf("TexCoords:  %d\n", model.TexCoordCount())
	fmt.Printf("Normals:    %d\n", model.NormalCount())
	fmt.Printf("Faces:      %d\n", model.FaceCount())
	if b, ok := model.Bounds(); ok {
		fmt.Printf("Bounds:     min %v max %v\n", b.Min, b.Max)
		fmt.Printf("Center:     %v (radius %.4f)\n", b.Center(), b.Radius())
	}
	fmt.Println()
	fmt.Printf("Groups (%d):\n", model.GroupCount())
	for i := 0; i < model.GroupCount(); i++ {
		g := model.GroupAt(i)
		fmt.Printf("  %-24q %d faces\n", g.Name(), g.FaceCount())
	}
}

func cmdConfig(args []string) {
	cfg := config.Default()

	var err error
	path := filepath.Join(config.ConfigDir(), config.FileName)
	if len(args) > 0 {
		path = args[0]
		err = cfg.SaveTo(path)
	} else {
		err = cfg.Save()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote config: %s\n", path)
}
