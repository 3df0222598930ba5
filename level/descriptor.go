package level

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/sandfall/parameter"
)

// Descriptor is the YAML level file
// Spawn coordinates are image pixels: x from the left, y from the top
type Descriptor struct {
	Name     string  `yaml:"name"`
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	CellSize float64 `yaml:"cell_size"`
	Image    string  `yaml:"image"`
	Spawns   []Spawn `yaml:"spawns"`

	// Directory of the descriptor file, image paths resolve against it
	dir string
}

// Spawn is a player spawn cell
type Spawn struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// LoadDescriptor reads and validates a level descriptor
func LoadDescriptor(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file %s: %w", path, err)
	}
	d, err := ParseDescriptor(data)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	d.dir = filepath.Dir(path)
	return d, nil
}

// ParseDescriptor decodes descriptor YAML and applies defaults
func ParseDescriptor(data []byte) (*Descriptor, error) {
	var d Descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse level YAML: %w", err)
	}
	applyDefaults(&d)
	if err := validate(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

// ImagePath resolves the terrain image against the descriptor's directory
func (d *Descriptor) ImagePath() string {
	if d.Image == "" || filepath.IsAbs(d.Image) {
		return d.Image
	}
	return filepath.Join(d.dir, d.Image)
}

func applyDefaults(d *Descriptor) {
	if d.Name == "" {
		d.Name = "untitled"
	}
	if d.CellSize == 0 {
		d.CellSize = parameter.CellSize
	}
	// Width and height stay zero when an image supplies them
	if d.Image == "" {
		if d.Width == 0 {
			d.Width = parameter.DefaultGridWidth
		}
		if d.Height == 0 {
			d.Height = parameter.DefaultGridHeight
		}
	}
}

func validate(d *Descriptor) error {
	if d.Width < 0 || d.Height < 0 {
		return fmt.Errorf("grid size must not be negative, got %dx%d", d.Width, d.Height)
	}
	if d.CellSize <= 0 {
		return fmt.Errorf("cell_size must be positive, got %v", d.CellSize)
	}
	if d.Width > 0 && d.Height > 0 {
		for i, s := range d.Spawns {
			if s.X < 0 || s.X >= d.Width || s.Y < 0 || s.Y >= d.Height {
				return fmt.Errorf("spawn %d at (%d,%d) outside %dx%d grid", i, s.X, s.Y, d.Width, d.Height)
			}
		}
	}
	return nil
}
