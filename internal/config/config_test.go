package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test convert defaults
	if cfg.Convert.VariableName != "" {
		t.Errorf("expected empty variable name, got %s", cfg.Convert.VariableName)
	}
	if cfg.Convert.Precision != 10 {
		t.Errorf("expected precision 10, got %d", cfg.Convert.Precision)
	}
	if cfg.Convert.Width != 16 {
		t.Errorf("expected width 16, got %d", cfg.Convert.Width)
	}
	if cfg.Convert.ExcludeTexCoords || cfg.Convert.ExcludeNormals {
		t.Error("expected all attributes to be emitted by default")
	}

	// Test parse defaults
	if cfg.Parse.Strict {
		t.Error("expected lenient parsing by default")
	}
	if cfg.Parse.SkipMalformed {
		t.Error("expected skip_malformed to be false by default")
	}
	if cfg.Parse.Encoding != "utf-8" {
		t.Errorf("expected encoding 'utf-8', got %s", cfg.Parse.Encoding)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)

	yamlContent := `
convert:
  variable_name: Teapot
  exclude_texcoords: true
  exclude_normals: false
  precision: 6
  width: 12

parse:
  strict: true
  skip_malformed: true
  exact_directives: true
  encoding: euc-kr
  verbose: true

logging:
  level: "debug"
  log_file: "obj2js.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Convert.VariableName != "Teapot" {
		t.Errorf("expected variable name Teapot, got %s", cfg.Convert.VariableName)
	}
	if !cfg.Convert.ExcludeTexCoords {
		t.Error("expected exclude_texcoords to be true")
	}
	if cfg.Convert.Precision != 6 {
		t.Errorf("expected precision 6, got %d", cfg.Convert.Precision)
	}
	if cfg.Convert.Width != 12 {
		t.Errorf("expected width 12, got %d", cfg.Convert.Width)
	}

	if !cfg.Parse.Strict || !cfg.Parse.SkipMalformed || !cfg.Parse.ExactDirectives || !cfg.Parse.Verbose {
		t.Errorf("expected all parse switches on, got %+v", cfg.Parse)
	}
	if cfg.Parse.Encoding != "euc-kr" {
		t.Errorf("expected encoding euc-kr, got %s", cfg.Parse.Encoding)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "obj2js.log" {
		t.Errorf("expected log file 'obj2js.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
convert:
  precision: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/obj2js.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, FileName)
	if err := os.WriteFile(configPath, []byte("convert:\n  width: 8\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Errorf("expected to find %s in current directory", FileName)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Parse.Verbose {
					t.Error("expected verbose to be enabled with debug flag")
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name: "parse flags",
			setup: func() {
				*flagStrict = true
				*flagSkipMalformed = true
				*flagExactDirectives = true
				*flagEncoding = "shift_jis"
			},
			verify: func(cfg *Config) {
				if !cfg.Parse.Strict || !cfg.Parse.SkipMalformed || !cfg.Parse.ExactDirectives {
					t.Errorf("expected parse switches on, got %+v", cfg.Parse)
				}
				if cfg.Parse.Encoding != "shift_jis" {
					t.Errorf("expected encoding shift_jis, got %s", cfg.Parse.Encoding)
				}
			},
			teardown: func() {
				*flagStrict = false
				*flagSkipMalformed = false
				*flagExactDirectives = false
				*flagEncoding = ""
			},
		},
		{
			name: "output flags",
			setup: func() {
				*flagNoTexCoords = true
				*flagNoNormals = true
				*flagVariableName = "Wheel"
			},
			verify: func(cfg *Config) {
				if !cfg.Convert.ExcludeTexCoords || !cfg.Convert.ExcludeNormals {
					t.Error("expected texcoords and normals to be excluded")
				}
				if cfg.Convert.VariableName != "Wheel" {
					t.Errorf("expected variable name Wheel, got %s", cfg.Convert.VariableName)
				}
			},
			teardown: func() {
				*flagNoTexCoords = false
				*flagNoNormals = false
				*flagVariableName = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(cfg)
		})
	}
}

func TestParseFlags_ShortAndLongForms(t *testing.T) {
	defer func() {
		*flagInput = ""
		*flagOutput = ""
		*flagVariableName = ""
	}()

	if err := ParseFlags([]string{"-i", "cube.obj", "--output", "cube.js", "-v", "Cube"}); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if InputPath() != "cube.obj" {
		t.Errorf("expected input cube.obj, got %s", InputPath())
	}
	if OutputPath() != "cube.js" {
		t.Errorf("expected output cube.js, got %s", OutputPath())
	}
	if *flagVariableName != "Cube" {
		t.Errorf("expected variable name Cube, got %s", *flagVariableName)
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)

	yamlContent := `
convert:
  variable_name: FromFile
  width: 20
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagVariableName = "FromFlag"
	defer func() {
		*flagConfig = ""
		*flagVariableName = ""
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Variable name should be from flag, not file
	if cfg.Convert.VariableName != "FromFlag" {
		t.Errorf("expected variable name from flag, got %s", cfg.Convert.VariableName)
	}

	// Width should be from file since no flag override
	if cfg.Convert.Width != 20 {
		t.Errorf("expected width 20 from file, got %d", cfg.Convert.Width)
	}

	// Precision keeps its default
	if cfg.Convert.Precision != 10 {
		t.Errorf("expected default precision 10, got %d", cfg.Convert.Precision)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	cfg := Default()
	cfg.Convert.VariableName = "Saved"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if loaded.Convert.VariableName != "Saved" {
		t.Errorf("expected variable name Saved, got %s", loaded.Convert.VariableName)
	}
}

func TestSave(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("APPDATA", t.TempDir())

	if err := Default().Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(ConfigDir(), FileName)); err != nil {
		t.Errorf("expected config in %s: %v", ConfigDir(), err)
	}
}

func TestOptions(t *testing.T) {
	cfg := Default()
	cfg.Parse.Strict = true
	cfg.Parse.Encoding = "euc-kr"
	cfg.Convert.ExcludeNormals = true

	po := cfg.ParseOptions()
	if !po.Strict || po.Encoding != "euc-kr" {
		t.Errorf("unexpected parse options %+v", po)
	}
	if po.Logger != nil {
		t.Error("expected no logger in parse options")
	}

	eo := cfg.ExportOptions("models/teapot.obj")
	if eo.VariableName != "teapot" {
		t.Errorf("expected variable name from input file, got %s", eo.VariableName)
	}
	if !eo.ExcludeNormals || eo.ExcludeTexCoords {
		t.Errorf("unexpected export options %+v", eo)
	}

	cfg.Convert.VariableName = "Pot"
	if eo := cfg.ExportOptions("models/teapot.obj"); eo.VariableName != "Pot" {
		t.Errorf("expected configured variable name Pot, got %s", eo.VariableName)
	}
}
