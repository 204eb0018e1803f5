// Package config loads and validates the YAML problem files read by the aco
// command.
//
// A problem file lists the cities of a TSP instance and the colony settings:
//
//	name: square
//	cities:
//	  - {name: a, x: 0, y: 0}
//	  - {name: b, x: 1, y: 0}
//	colony:
//	  ants: 200
//	  workers: 4
//	  seed: 42
//	  evaporation: 0.1
//	  two_opt: true
//
// Missing colony keys keep the values of Default.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/aco/tsp"
)

// ErrInvalid wraps every decoding or validation failure.
var ErrInvalid = errors.New("config: invalid problem")

// Problem is one TSP instance plus the colony that solves it.
type Problem struct {
	Name   string     `yaml:"name"`
	Cities []tsp.City `yaml:"cities" validate:"min=2"`
	Colony Colony     `yaml:"colony"`
}

// Colony holds the run settings.
type Colony struct {
	Ants             int     `yaml:"ants" validate:"gte=1"`
	Workers          int     `yaml:"workers" validate:"gte=1"`
	Seed             int64   `yaml:"seed"`
	Start            int     `yaml:"start" validate:"gte=0"`
	InitialPheromone int64   `yaml:"initial_pheromone" validate:"gte=0"`
	Evaporation      float64 `yaml:"evaporation" validate:"gte=0,lte=1"`
	Deposit          float64 `yaml:"deposit" validate:"gt=0"`
	TwoOpt           bool    `yaml:"two_opt"`
	MaxMoves         int     `yaml:"max_moves" validate:"gte=0"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterStructValidation(problemStructLevel, Problem{})
}

// problemStructLevel checks the cross-field rule: the start city must exist.
func problemStructLevel(sl validator.StructLevel) {
	p := sl.Current().Interface().(Problem)
	if len(p.Cities) > 0 && p.Colony.Start >= len(p.Cities) {
		sl.ReportError(p.Colony.Start, "Start", "Start", "ltcities", "")
	}
}

// Default returns a Problem without cities and with the tsp package defaults.
func Default() Problem {
	return Problem{
		Colony: Colony{
			Ants:             tsp.DefaultAnts,
			Workers:          1,
			InitialPheromone: tsp.DefaultInitialPheromone,
			Evaporation:      tsp.DefaultEvaporation,
			Deposit:          tsp.DefaultDeposit,
		},
	}
}

// Load reads and validates the problem file at path.
func Load(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("Load %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a YAML document over Default and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (*Problem, error) {
	p := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate applies the struct tags and cross-field rules.
func (p *Problem) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Options translates the colony settings into tsp options.
func (p *Problem) Options() []tsp.Option {
	c := p.Colony
	opts := []tsp.Option{
		tsp.WithAnts(c.Ants),
		tsp.WithWorkers(c.Workers),
		tsp.WithSeed(c.Seed),
		tsp.WithStart(c.Start),
		tsp.WithPheromone(c.InitialPheromone, c.Evaporation, c.Deposit),
	}
	if c.TwoOpt {
		opts = append(opts, tsp.WithTwoOpt(c.MaxMoves))
	}
	return opts
}
