package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/pelletier/go-toml/v2"

	"github.com/notescan/notescan/internal/scanner"
	"github.com/notescan/notescan/pkg/resync"
)

// How many parent directories to traverse before considering a
// directory as not part of a notescan workspace.
const maxDepth = 10

// ConfigFilename is searched in the current directory and its parents.
const ConfigFilename = ".notescan.toml"

// Default .notescan.toml content
const DefaultConfig = `
[core]
extensions = ["md", "markdown"]

[zettelkasten]
link-start = "[["
link-end = "]]"

[dictionary]
wordlists = []
suggestions = true

[check]
ignore = []
`

var (
	// Lazy-load configuration and ensure a single read
	configOnce      resync.Once
	configSingleton *Config
)

// Note: Fields must be public for the toml package to unmarshal
type ConfigFile struct {
	Core         ConfigCore
	Zettelkasten ConfigZettelkasten
	Dictionary   ConfigDictionary
	Check        ConfigCheck
}

type ConfigCore struct {
	Extensions []string
}

type ConfigZettelkasten struct {
	LinkStart       string `toml:"link-start"`
	LinkEnd         string `toml:"link-end"`
	TagPattern      string `toml:"tag-pattern"`
	FootnotePattern string `toml:"footnote-pattern"`
	NoInlineCode    bool   `toml:"no-inline-code"`
}

type ConfigDictionary struct {
	// Word-per-line user dictionary files.
	Wordlists []string

	// Propose corrections for misspelled words in reports.
	Suggestions bool
}

type ConfigCheck struct {
	// Glob expressions of paths to skip.
	Ignore []string
}

// SupportExtension checks if the given file extension must be considered.
func (f *ConfigFile) SupportExtension(path string) bool {
	ext := strings.TrimPrefix(filepath.Ext(path), ".") // ".md" => "md"
	for _, extension := range f.Core.Extensions {
		if strings.EqualFold(extension, ext) { // case-insensitive
			return true
		}
	}
	return false
}

// IgnoreFile checks if a relative path matches one of the ignore globs.
func (f *ConfigFile) IgnoreFile(relativePath string) bool {
	relativePath = filepath.ToSlash(relativePath)
	for _, expr := range f.Check.Ignore {
		if matched, err := filepath.Match(expr, relativePath); err == nil && matched {
			return true
		}
		// Also match against the base name so "README.md" ignores
		// the file anywhere in the tree.
		if matched, err := filepath.Match(expr, filepath.Base(relativePath)); err == nil && matched {
			return true
		}
	}
	return false
}

type Config struct {
	// Directory containing the configuration file (or the working
	// directory when no configuration file was found).
	RootDirectory string

	// .notescan.toml content
	ConfigFile ConfigFile
}

// NewConfig returns the default configuration rooted at the given directory.
func NewConfig(rootDirectory string) *Config {
	config := defaultConfig()
	config.RootDirectory = rootDirectory
	return config
}

func CurrentConfig() *Config {
	configOnce.Do(func() {
		var err error
		configSingleton, err = ReadConfigFromDirectory(currentHome())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to read current configuration: %v\n", err)
			os.Exit(1)
		}
	})
	return configSingleton
}

// ReplaceConfig overrides the current configuration, mainly for tests.
func ReplaceConfig(config *Config) {
	configOnce.Do(func() {})
	configSingleton = config
}

// Clone returns a deep copy to customize for a single session without
// touching the shared configuration.
func (c *Config) Clone() *Config {
	var result Config
	if err := copier.CopyWithOption(&result, c, copier.Option{DeepCopy: true}); err != nil {
		// Config structs only hold plain values
		panic(err)
	}
	return &result
}

// SetVerboseLevel sets the logger verbosity.
func (c *Config) SetVerboseLevel(level VerboseLevel) *Config {
	CurrentLogger().SetVerboseLevel(level)
	return c
}

// Recognizers compiles the special-span matchers from the
// configuration. A malformed pattern is reported once and recognition
// degrades to pure word/delimiter tokenizing instead of failing.
func (c *Config) Recognizers() *scanner.Recognizers {
	zk := c.ConfigFile.Zettelkasten
	recognizers, err := scanner.NewRecognizers(scanner.RecognizerOptions{
		LinkStart:       zk.LinkStart,
		LinkEnd:         zk.LinkEnd,
		TagPattern:      zk.TagPattern,
		FootnotePattern: zk.FootnotePattern,
		NoInlineCode:    zk.NoInlineCode,
	})
	if err != nil {
		CurrentLogger().Warnf("Special-span recognition disabled: %v", err)
	}
	return recognizers
}

func currentHome() string {
	// Supports overriding the root directory mainly for testing purposes.
	if path, ok := os.LookupEnv("NOTESCAN_HOME"); ok {
		abspath, err := filepath.Abs(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to evaluate $NOTESCAN_HOME")
			os.Exit(1)
		}
		return abspath
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to determine current directory: %v\n", err)
		os.Exit(1)
	}
	return cwd
}

// ReadConfigFromDirectory loads the configuration by searching for a
// .notescan.toml file in the given directory or any parent directory.
// When no file is found, the default configuration applies with the
// given directory as root.
func ReadConfigFromDirectory(path string) (*Config, error) {
	currentPath := path
	for i := 0; i < maxDepth; i++ {
		configPath := filepath.Join(currentPath, ConfigFilename)
		if _, err := os.Stat(configPath); err == nil {
			return readConfigFromFile(currentPath, configPath)
		}
		parent := filepath.Dir(currentPath)
		if parent == currentPath {
			break
		}
		currentPath = parent
	}

	// Not a notescan workspace: degrade to defaults
	config := defaultConfig()
	config.RootDirectory = path
	return config, nil
}

func readConfigFromFile(rootPath, configPath string) (*Config, error) {
	content, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read %q: %w", configPath, err)
	}

	config := defaultConfig()
	config.RootDirectory = rootPath
	if err := toml.Unmarshal(content, &config.ConfigFile); err != nil {
		return nil, fmt.Errorf("unable to parse %q: %w", configPath, err)
	}
	return config, nil
}

func defaultConfig() *Config {
	var configFile ConfigFile
	if err := toml.Unmarshal([]byte(DefaultConfig), &configFile); err != nil {
		// The default configuration is a constant and always parses
		panic(err)
	}
	return &Config{
		ConfigFile: configFile,
	}
}
