// Package manifest drives the application from a YAML fleet manifest: it
// declares ships and containers, then replays an ordered list of steps
// through the command handlers.
//
//	ships:
//	  - name: Kontenerowiec 1
//	    max_containers: 10
//	    max_weight: 15000
//	    max_speed: 20
//	containers:
//	  - ref: milk
//	    kind: refrigerated
//	    max_load: 3000
//	    tare_weight: 600
//	    height: 250
//	    depth: 600
//	    product: mleko
//	    min_temperature: 2
//	steps:
//	  - action: load
//	    container: milk
//	    amount: 1500
//	    product: mleko
//	    temperature: 1
//	  - action: board
//	    ship: Kontenerowiec 1
//	    container: milk
//
// Ships are referred to by name and containers by ref, since serial numbers
// are only assigned when the containers are built.
package manifest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"cargo/internal/core/domain/model/container"
	"cargo/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

// Action names a manifest step.
type Action string

const (
	ActionLoad     Action = "load"
	ActionEmpty    Action = "empty"
	ActionBoard    Action = "board"
	ActionRemove   Action = "remove"
	ActionReplace  Action = "replace"
	ActionTransfer Action = "transfer"
	ActionUnload   Action = "unload"
)

// Manifest is the parsed YAML document.
type Manifest struct {
	Ships      []Ship      `yaml:"ships"`
	Containers []Container `yaml:"containers"`
	Steps      []Step      `yaml:"steps"`
}

// Ship declares a ship. Masses in the manifest are kilograms kept as
// written and parsed as exact decimals; an omitted mass is 0 kg.
type Ship struct {
	Name          string  `yaml:"name"`
	MaxContainers int     `yaml:"max_containers"`
	MaxWeight     string  `yaml:"max_weight"`
	MaxSpeed      float64 `yaml:"max_speed"`
}

type Container struct {
	Ref        string  `yaml:"ref"`
	Kind       string  `yaml:"kind"`
	MaxLoad    string  `yaml:"max_load"`
	TareWeight string  `yaml:"tare_weight"`
	Height     float64 `yaml:"height"`
	Depth      float64 `yaml:"depth"`

	Product        string  `yaml:"product,omitempty"`
	MinTemperature float64 `yaml:"min_temperature,omitempty"`
	Hazardous      bool    `yaml:"hazardous,omitempty"`
	Pressure       float64 `yaml:"pressure,omitempty"`
}

// Step is one operation. Which fields are used depends on Action:
//
//	load      container, amount, product, temperature
//	empty     container
//	board     ship, container
//	remove    ship, container
//	replace   ship, container, replacement
//	transfer  ship, to, container
//	unload    ship, container
type Step struct {
	Action      Action  `yaml:"action"`
	Ship        string  `yaml:"ship,omitempty"`
	To          string  `yaml:"to,omitempty"`
	Container   string  `yaml:"container,omitempty"`
	Replacement string  `yaml:"replacement,omitempty"`
	Amount      string  `yaml:"amount,omitempty"`
	Product     string  `yaml:"product,omitempty"`
	Temperature float64 `yaml:"temperature,omitempty"`
}

func (s Step) String() string {
	parts := []string{string(s.Action)}
	for _, f := range []struct{ name, value string }{
		{"ship", s.Ship},
		{"to", s.To},
		{"container", s.Container},
		{"replacement", s.Replacement},
	} {
		if f.value != "" {
			parts = append(parts, f.name+"="+f.value)
		}
	}
	return strings.Join(parts, " ")
}

// Load reads and parses the manifest at path.
func Load(path string) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes a manifest and checks that every reference resolves.
// Unknown YAML fields are rejected.
func Parse(r io.Reader) (Manifest, error) {
	var m Manifest

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return Manifest{}, fmt.Errorf("decode manifest: %w", err)
	}

	if err := m.Validate(); err != nil {
		return Manifest{}, err
	}

	return m, nil
}

// Validate checks names, kinds, actions and references. Domain rules such as
// capacities are left to the domain.
func (m Manifest) Validate() error {
	var problems []error

	ships := make(map[string]bool, len(m.Ships))
	for i, s := range m.Ships {
		switch {
		case s.Name == "":
			problems = append(problems, errs.NewValueIsRequiredError(fmt.Sprintf("ships[%d].name", i)))
		case ships[s.Name]:
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("ships[%d].name", i), fmt.Errorf("%q is declared twice", s.Name)))
		}
		ships[s.Name] = true
	}

	containers := make(map[string]bool, len(m.Containers))
	for i, c := range m.Containers {
		switch {
		case c.Ref == "":
			problems = append(problems, errs.NewValueIsRequiredError(fmt.Sprintf("containers[%d].ref", i)))
		case containers[c.Ref]:
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("containers[%d].ref", i), fmt.Errorf("%q is declared twice", c.Ref)))
		}
		containers[c.Ref] = true

		if _, err := container.ParseKind(c.Kind); err != nil {
			problems = append(problems, fmt.Errorf("containers[%d]: %w", i, err))
		}
	}

	for i, s := range m.Steps {
		if err := s.validate(ships, containers); err != nil {
			problems = append(problems, fmt.Errorf("steps[%d] (%s): %w", i, s, err))
		}
	}

	return errors.Join(problems...)
}

func (s Step) validate(ships, containers map[string]bool) error {
	needShip := func(name, field string) error {
		if name == "" {
			return errs.NewValueIsRequiredError(field)
		}
		if !ships[name] {
			return errs.NewObjectNotFoundError("ship", name)
		}
		return nil
	}
	needContainer := func(ref, field string) error {
		if ref == "" {
			return errs.NewValueIsRequiredError(field)
		}
		if !containers[ref] {
			return errs.NewObjectNotFoundError("container", ref)
		}
		return nil
	}

	switch s.Action {
	case ActionLoad, ActionEmpty:
		return needContainer(s.Container, "container")
	case ActionBoard, ActionRemove, ActionUnload:
		return errors.Join(needShip(s.Ship, "ship"), needContainer(s.Container, "container"))
	case ActionReplace:
		return errors.Join(
			needShip(s.Ship, "ship"),
			needContainer(s.Container, "container"),
			needContainer(s.Replacement, "replacement"),
		)
	case ActionTransfer:
		return errors.Join(
			needShip(s.Ship, "ship"),
			needShip(s.To, "to"),
			needContainer(s.Container, "container"),
		)
	default:
		return errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%q is not a known action", s.Action))
	}
}
