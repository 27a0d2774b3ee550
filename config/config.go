package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/ekohilas/train-conductor-world-tools/logging"
)

// ErrInvalid indicates a configuration that cannot run.
var ErrInvalid = errors.New("config: invalid configuration")

// Defaults.
const (
	DefaultDistances  = "data/distances.json"
	DefaultTiles      = "data/tiles.json"
	DefaultTMX        = "data/train-conductor-world.tmx"
	DefaultPortLimit  = 8
	DefaultMapLayer   = "map"
	DefaultTrackLayer = "tracks"
	DefaultMaxLogSize = 10 // megabytes
	DefaultMaxLogAge  = 30 // days
)

// Config is the full configuration.
type Config struct {
	Files   FilesConfig
	Helper  HelperConfig
	Paths   PathsConfig
	Logging logging.Config
}

// FilesConfig locates the input files.
type FilesConfig struct {
	Distances string
	Tiles     string
	TMX       string `toml:"tmx"`
}

// HelperConfig tunes the pipeline.
type HelperConfig struct {
	PortLimit     int    `toml:"port_limit"`
	AutoUpdate    bool   `toml:"auto_update"`
	MapLayer      string `toml:"map_layer"`
	TrackLayer    string `toml:"track_layer"`
	AnnotateAreas bool   `toml:"annotate_areas"`
}

// PathsConfig tunes the path engine.
type PathsConfig struct {
	// CacheSize bounds the location-pair search cache, 0 = unbounded.
	CacheSize int `toml:"cache_size"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Files: FilesConfig{
			Distances: DefaultDistances,
			Tiles:     DefaultTiles,
			TMX:       DefaultTMX,
		},
		Helper: HelperConfig{
			PortLimit:     DefaultPortLimit,
			AutoUpdate:    true,
			MapLayer:      DefaultMapLayer,
			TrackLayer:    DefaultTrackLayer,
			AnnotateAreas: true,
		},
		Logging: logging.Config{
			MaxSize: DefaultMaxLogSize,
			MaxAge:  DefaultMaxLogAge,
		},
	}
}

// Load decodes filename over the defaults. Keys the file leaves out keep their
// default values.
func Load(filename string) (Config, error) {
	c := Default()
	md, err := toml.DecodeFile(filename, &c)
	if err != nil {
		return Config{}, fmt.Errorf("config: could not decode %s: %w", filename, err)
	}
	for _, k := range md.Undecoded() {
		logging.Warningf("Ignoring unknown config key %q in %s", k.String(), filename)
	}
	if err := c.convertPathsToAbsolute(filename); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Some settings can be given as relative paths. This converts them in place to
// absolute paths, relative to the directory of the TOML file.
func (c *Config) convertPathsToAbsolute(configPath string) error {
	configDir, err := filepath.Abs(filepath.Dir(configPath))
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	for _, p := range []*string{&c.Files.Distances, &c.Files.Tiles, &c.Files.TMX, &c.Logging.Logfile} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(configDir, *p)
		}
	}
	return nil
}

// Validate rejects configurations that cannot run.
func (c Config) Validate() error {
	var errs []error
	for name, v := range map[string]string{
		"files.distances":    c.Files.Distances,
		"files.tiles":        c.Files.Tiles,
		"files.tmx":          c.Files.TMX,
		"helper.map_layer":   c.Helper.MapLayer,
		"helper.track_layer": c.Helper.TrackLayer,
	} {
		if v == "" {
			errs = append(errs, fmt.Errorf("%w: %s is empty", ErrInvalid, name))
		}
	}
	if c.Helper.PortLimit < 0 {
		errs = append(errs, fmt.Errorf("%w: helper.port_limit is %d", ErrInvalid, c.Helper.PortLimit))
	}
	if c.Paths.CacheSize < 0 {
		errs = append(errs, fmt.Errorf("%w: paths.cache_size is %d", ErrInvalid, c.Paths.CacheSize))
	}
	if c.Logging.MaxSize < 0 || c.Logging.MaxAge < 0 {
		errs = append(errs, fmt.Errorf("%w: negative log rotation limits", ErrInvalid))
	}
	return errors.Join(errs...)
}

func (c Config) String() string {
	return fmt.Sprintf("distances=%s tiles=%s tmx=%s port_limit=%d auto_update=%t",
		c.Files.Distances, c.Files.Tiles, c.Files.TMX, c.Helper.PortLimit, c.Helper.AutoUpdate)
}
