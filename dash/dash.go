package dash

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/midbel/plotgraph"
	"github.com/midbel/plotgraph/dataset"
	"gopkg.in/yaml.v3"
)

var (
	DefaultPath   = "out.svg"
	DefaultAddr   = ":8080"
	DefaultExpiry = 5 * time.Minute
)

type Data struct {
	Path            string `yaml:"path"`
	dataset.Options `yaml:",inline"`
}

type Server struct {
	Addr   string        `yaml:"addr"`
	Expiry time.Duration `yaml:"expiry"`
}

// Config is the state the board starts from.
type Config struct {
	Title  string   `yaml:"title"`
	Path   string   `yaml:"path"`
	Screen float64  `yaml:"screen"`
	Kinds  []string `yaml:"kinds"`
	Kind   string   `yaml:"kind"`
	X      string   `yaml:"x"`
	Y      string   `yaml:"y"`

	Data   Data            `yaml:"data"`
	Style  plotgraph.Style `yaml:"style"`
	Server Server          `yaml:"server"`
}

func Default() Config {
	cfg := Config{
		Path:  DefaultPath,
		Style: plotgraph.DefaultStyle(),
	}
	for _, k := range plotgraph.Priority {
		cfg.Kinds = append(cfg.Kinds, k.String())
	}
	cfg.Server.Addr = DefaultAddr
	cfg.Server.Expiry = DefaultExpiry
	return cfg
}

// Load decodes the YAML configuration in file on top of Default.
func Load(file string) (Config, error) {
	cfg := Default()
	if file == "" {
		return cfg, nil
	}
	r, err := os.Open(file)
	if err != nil {
		return cfg, err
	}
	defer r.Close()
	return Decode(r)
}

func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if _, err := cfg.Enabled(); err != nil {
		return cfg, err
	}
	if _, err := cfg.Style.Colorer(plotgraph.Scatter); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Enabled() (plotgraph.KindSet, error) {
	var set plotgraph.KindSet
	for _, str := range c.Kinds {
		k, err := plotgraph.ParseKind(str)
		if err != nil {
			return set, err
		}
		set = set.Enable(k)
	}
	return set, nil
}

// Dataset loads the dataset named in the configuration. No path gives an
// empty dataset.
func (c Config) Dataset() (plotgraph.Dataset, error) {
	if c.Data.Path == "" {
		return nil, nil
	}
	return dataset.Load(c.Data.Path, c.Data.Options)
}
