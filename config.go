package bulkfm

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config carries the process-wide settings the bulk core reads. It is
// passed to the App explicitly; nothing here is ambient state.
type Config struct {
	// TempDir is where temporary documents are created. Empty means a
	// bulkfm-owned directory under the system temp dir.
	TempDir string `toml:"temp_dir"`

	// StealthMode forces temporary documents into the system default
	// temp dir, ignoring TempDir.
	StealthMode bool `toml:"stealth_mode"`

	// AutoList reloads the directory listing after operations that
	// touched the current workspace.
	AutoList bool `toml:"auto_list"`

	// Editor opens the temporary document (defaults to $VISUAL/$EDITOR).
	Editor string `toml:"editor"`

	// UseTrash routes removals into TrashDir instead of unlinking.
	UseTrash bool `toml:"use_trash"`

	// TrashDir is the trash destination when UseTrash is set. Empty
	// means $XDG_DATA_HOME/bulkfm/trash.
	TrashDir string `toml:"trash_dir"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{AutoList: true}
}

// Load loads the configuration from the default location, falling back to
// defaults if the file does not exist.
func Load() (*Config, error) {
	path := DefaultPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "bulkfm", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".bulkfm.toml")
	}
	return filepath.Join(home, ".config", "bulkfm", "config.toml")
}

// effectiveTempDir resolves the directory temporary documents go to.
// Stealth mode always wins and uses the system default temp dir.
func (c *Config) effectiveTempDir() string {
	if c.StealthMode {
		return os.TempDir()
	}
	if c.TempDir != "" {
		return c.TempDir
	}
	return filepath.Join(os.TempDir(), "bulkfm-"+strconv.Itoa(os.Getuid()))
}

func (c *Config) effectiveTrashDir() string {
	if c.TrashDir != "" {
		return c.TrashDir
	}
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "bulkfm", "trash")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share", "bulkfm", "trash")
}

// editorCommand resolves the editor used by the default opener: config
// value first, then $VISUAL and $EDITOR.
func (c *Config) editorCommand() string {
	if c.Editor != "" {
		return c.Editor
	}
	if ed := os.Getenv("VISUAL"); ed != "" {
		return ed
	}
	return os.Getenv("EDITOR")
}
