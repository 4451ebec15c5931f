package orrery

import (
	"errors"
	"fmt"
	"math"
)

// NoMoon is the Moon index of a BodyID that names a planet.
const NoMoon = -1

// BodyID identifies a planet (Moon == NoMoon) or the Moon-th moon of the
// Planet-th planet in catalog order.
type BodyID struct {
	Planet int
	Moon   int
}

func PlanetID(i int) BodyID {
	return BodyID{Planet: i, Moon: NoMoon}
}

func MoonID(i, j int) BodyID {
	return BodyID{Planet: i, Moon: j}
}

func (id BodyID) IsMoon() bool {
	return id.Moon != NoMoon
}

func (id BodyID) String() string {
	if id.IsMoon() {
		return fmt.Sprintf(`planet %d moon %d`, id.Planet, id.Moon)
	}
	return fmt.Sprintf(`planet %d`, id.Planet)
}

// PlanetSpec is the declarative form of a planet, as written in the default
// catalog or a config file.
type PlanetSpec struct {
	Name         string   `mapstructure:"name"`
	OrbitRadius  float64  `mapstructure:"orbit_radius"`
	Color        string   `mapstructure:"color"`
	AngularSpeed float64  `mapstructure:"speed"`
	Moons        []string `mapstructure:"moons"`
}

type Planet struct {
	Name         string
	OrbitRadius  float64
	Color        string
	AngularSpeed float64 // radians per unit of frame parameter
	Moons        []Moon
}

type Moon struct {
	Name   string
	Parent int
	Index  int
}

func (m Moon) ID() BodyID {
	return MoonID(m.Parent, m.Index)
}

// SpeedFactor is the multiple of its parent's angular speed at which a moon
// revolves.
func (m Moon) SpeedFactor() float64 {
	return 2 + float64(m.Index)*0.5
}

// OffsetRadius is the moon's distance from its parent.
func (m Moon) OffsetRadius() float64 {
	return 0.1 * float64(m.Index+1)
}

// ErrInvalidCatalog is wrapped by every catalog validation error.
var ErrInvalidCatalog = errors.New(`invalid catalog`)

// ConfigError describes a catalog entry that violates an invariant.
type ConfigError struct {
	Body   string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf(`%s: %s: %s`, ErrInvalidCatalog, e.Body, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidCatalog
}

// Catalog is the immutable, ordered set of planets and their moons.
type Catalog struct {
	planets []Planet
	bodies  []BodyID
}

// NewCatalog validates specs and builds a Catalog from them.
func NewCatalog(specs []PlanetSpec) (*Catalog, error) {
	if len(specs) == 0 {
		return nil, &ConfigError{Body: `catalog`, Reason: `no planets`}
	}

	c := &Catalog{planets: make([]Planet, 0, len(specs))}
	planetNames := map[string]bool{}
	moonNames := map[string]string{}

	for i, s := range specs {
		if s.Name == `` {
			return nil, &ConfigError{Body: fmt.Sprintf(`planet #%d`, i), Reason: `empty name`}
		}
		if planetNames[s.Name] {
			return nil, &ConfigError{Body: s.Name, Reason: `duplicate planet name`}
		}
		planetNames[s.Name] = true

		if !(s.OrbitRadius > 0) || math.IsInf(s.OrbitRadius, 0) {
			return nil, &ConfigError{Body: s.Name, Reason: fmt.Sprintf(`orbit radius must be positive and finite, got %v`, s.OrbitRadius)}
		}
		if !(s.AngularSpeed > 0) || math.IsInf(s.AngularSpeed, 0) {
			return nil, &ConfigError{Body: s.Name, Reason: fmt.Sprintf(`angular speed must be positive and finite, got %v`, s.AngularSpeed)}
		}

		p := Planet{
			Name:         s.Name,
			OrbitRadius:  s.OrbitRadius,
			Color:        s.Color,
			AngularSpeed: s.AngularSpeed,
			Moons:        make([]Moon, 0, len(s.Moons)),
		}
		c.bodies = append(c.bodies, PlanetID(i))

		for j, name := range s.Moons {
			if name == `` {
				return nil, &ConfigError{Body: fmt.Sprintf(`%s moon #%d`, s.Name, j), Reason: `empty name`}
			}
			if parent, dup := moonNames[name]; dup {
				return nil, &ConfigError{Body: name, Reason: fmt.Sprintf(`duplicate moon name (already a moon of %s)`, parent)}
			}
			moonNames[name] = s.Name

			p.Moons = append(p.Moons, Moon{Name: name, Parent: i, Index: j})
			c.bodies = append(c.bodies, MoonID(i, j))
		}

		c.planets = append(c.planets, p)
	}

	return c, nil
}

// Planets returns the planets in catalog order. The result is a copy.
func (c *Catalog) Planets() []Planet {
	r := make([]Planet, len(c.planets))
	for i, p := range c.planets {
		p.Moons = append([]Moon(nil), p.Moons...)
		r[i] = p
	}
	return r
}

func (c *Catalog) Len() int {
	return len(c.planets)
}

// MoonsOf returns the moons of the i-th planet in declaration order.
func (c *Catalog) MoonsOf(i int) []Moon {
	if i < 0 || i >= len(c.planets) {
		return nil
	}
	return append([]Moon(nil), c.planets[i].Moons...)
}

// Bodies returns every body ID, each planet followed by its moons.
func (c *Catalog) Bodies() []BodyID {
	return append([]BodyID(nil), c.bodies...)
}

func (c *Catalog) Planet(i int) (Planet, bool) {
	if i < 0 || i >= len(c.planets) {
		return Planet{}, false
	}
	p := c.planets[i]
	p.Moons = append([]Moon(nil), p.Moons...)
	return p, true
}

func (c *Catalog) Moon(id BodyID) (Moon, bool) {
	if !id.IsMoon() || id.Planet < 0 || id.Planet >= len(c.planets) {
		return Moon{}, false
	}
	moons := c.planets[id.Planet].Moons
	if id.Moon < 0 || id.Moon >= len(moons) {
		return Moon{}, false
	}
	return moons[id.Moon], true
}

// Name returns the display name of a body, or "" if id is unknown.
func (c *Catalog) Name(id BodyID) string {
	if id.IsMoon() {
		m, _ := c.Moon(id)
		return m.Name
	}
	p, ok := c.Planet(id.Planet)
	if !ok {
		return ``
	}
	return p.Name
}

// DefaultPlanets is the built-in solar system.
func DefaultPlanets() []PlanetSpec {
	return []PlanetSpec{
		{Name: `Mercury`, OrbitRadius: 0.39, Color: `gray`, AngularSpeed: 4.15},
		{Name: `Venus`, OrbitRadius: 0.72, Color: `yellow`, AngularSpeed: 1.62},
		{Name: `Terravita`, OrbitRadius: 0.85, Color: `purple`, AngularSpeed: 1.28},
		{Name: `Earth`, OrbitRadius: 1.0, Color: `blue`, AngularSpeed: 1.0, Moons: []string{`Moon`}},
		{Name: `Mars`, OrbitRadius: 1.52, Color: `red`, AngularSpeed: 0.53, Moons: []string{`Phobos`, `Deimos`}},
		{Name: `Jupiter`, OrbitRadius: 5.2, Color: `orange`, AngularSpeed: 0.084, Moons: []string{`Io`, `Europa`, `Ganymede`, `Callisto`}},
		{Name: `Saturn`, OrbitRadius: 9.58, Color: `gold`, AngularSpeed: 0.034, Moons: []string{`Titan`, `Enceladus`}},
		{Name: `Uranus`, OrbitRadius: 19.22, Color: `lightblue`, AngularSpeed: 0.011, Moons: []string{`Miranda`, `Ariel`}},
		{Name: `Neptune`, OrbitRadius: 30.05, Color: `darkblue`, AngularSpeed: 0.006, Moons: []string{`Triton`}},
	}
}

// DefaultCatalog builds the catalog of DefaultPlanets.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultPlanets())
	if err != nil {
		panic(fmt.Sprintf(`built-in catalog is invalid: %s`, err))
	}
	return c
}
