package config

import "flag"

var (
	flagConfig          = flag.String("config", "", "Path to config file")
	flagDebug           = flag.Bool("debug", false, "Enable debug logging")
	flagVerbose         = flag.Bool("verbose", false, "Log parser notices")
	flagStrict          = flag.Bool("strict", false, "Reject non-numeric values")
	flagSkipMalformed   = flag.Bool("skip-malformed", false, "Skip malformed records instead of failing")
	flagExactDirectives = flag.Bool("exact-directives", false, "Match directive keywords exactly")
	flagEncoding        = flag.String("encoding", "", "Input text encoding (e.g. euc-kr, shift_jis)")
	flagNoTexCoords     = flag.Bool("no-texcoords", false, "Omit texture coordinates from the output")
	flagNoNormals       = flag.Bool("no-normals", false, "Omit normals from the output")

	flagInput        = flag.String("input", "", "The input OBJ file")
	flagOutput       = flag.String("output", "", "The output JavaScript file (- for stdout)")
	flagVariableName = flag.String("variable-name", "", "The variable name for the JavaScript object")
)

func init() {
	flag.StringVar(flagInput, "i", "", "Shorthand for --input")
	flag.StringVar(flagOutput, "o", "", "Shorthand for --output")
	flag.StringVar(flagVariableName, "v", "", "Shorthand for --variable-name")
}

// ParseFlags parses command-line flags from args. Call this early in main().
func ParseFlags(args []string) error {
	return flag.CommandLine.Parse(args)
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// InputPath returns the OBJ file given with -i/--input.
func InputPath() string {
	return *flagInput
}

// OutputPath returns the JavaScript file given with -o/--output.
func OutputPath() string {
	return *flagOutput
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Parse.Verbose = true
	}
	if *flagVerbose {
		cfg.Parse.Verbose = true
	}
	if *flagStrict {
		cfg.Parse.Strict = true
	}
	if *flagSkipMalformed {
		cfg.Parse.SkipMalformed = true
	}
	if *flagExactDirectives {
		cfg.Parse.ExactDirectives = true
	}
	if *flagEncoding != "" {
		cfg.Parse.Encoding = *flagEncoding
	}
	if *flagNoTexCoords {
		cfg.Convert.ExcludeTexCoords = true
	}
	if *flagNoNormals {
		cfg.Convert.ExcludeNormals = true
	}
	if *flagVariableName != "" {
		cfg.Convert.VariableName = *flagVariableName
	}
}
