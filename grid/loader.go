package grid

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// fileSpec is the YAML layout of an environment file: rows of reward
// numbers top row first, with null marking an obstacle.
//
//	gamma: 0.9
//	rows:
//	  - [-0.04, -0.04, -0.04, 1]
//	  - [-0.04, null, -0.04, -1]
//	  - [-0.04, -0.04, -0.04, -0.04]
//	terminals: [[3, 2], [3, 1]]
type fileSpec struct {
	Gamma     float64      `yaml:"gamma"`
	Init      []int        `yaml:"init"`
	Rows      [][]*float64 `yaml:"rows"`
	Terminals [][]int      `yaml:"terminals"`
}

// Load reads a YAML environment description and builds the GridMDP.
func Load(r io.Reader) (*GridMDP, error) {
	var spec fileSpec
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	rows := make([][]Cell, len(spec.Rows))
	for i, specRow := range spec.Rows {
		row := make([]Cell, len(specRow))
		for j, v := range specRow {
			if v == nil {
				row[j] = Obstacle()
			} else {
				row[j] = Reward(*v)
			}
		}
		rows[i] = row
	}

	terminals := make([]Point, 0, len(spec.Terminals))
	for _, t := range spec.Terminals {
		if len(t) != 2 {
			return nil, fmt.Errorf("terminal %v: want [x, y]", t)
		}
		terminals = append(terminals, Point{t[0], t[1]})
	}

	cfg := Config{
		Rows:      rows,
		Terminals: terminals,
		Gamma:     spec.Gamma,
	}
	if len(spec.Init) == 2 {
		cfg.Init = Point{spec.Init[0], spec.Init[1]}
	} else if len(spec.Init) != 0 {
		return nil, fmt.Errorf("init %v: want [x, y]", spec.Init)
	}
	return New(cfg)
}

// LoadFile is Load over a file path.
func LoadFile(path string) (*GridMDP, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}
