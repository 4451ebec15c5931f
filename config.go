package main

import (
	"fmt"
	"strings"
	"time"

	"git.c3pb.de/farhaven/solarsystem/orrery"

	"github.com/spf13/viper"
)

const envPrefix = "SOLARSYSTEM"

type config struct {
	Width, Height int
	Interval      time.Duration
	Frames        int
	Seed          int64
	Stars         int
	Asteroids     int
	Font          string
	GIF           string
	Planets       []orrery.PlanetSpec
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("width", 800)
	v.SetDefault("height", 800)
	v.SetDefault("interval", orrery.DefaultInterval)
	v.SetDefault("frames", orrery.DefaultFrameCount)
	v.SetDefault("seed", 0)
	v.SetDefault("stars", orrery.DefaultStarCount)
	v.SetDefault("asteroids", orrery.DefaultAsteroidCount)
	v.SetDefault("font", "")
	v.SetDefault("gif", "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// loadConfig reads the optional config file at path on top of the defaults
// and the environment, then checks the result.
func loadConfig(v *viper.Viper, path string) (config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config{}, fmt.Errorf(`can't read config %s: %w`, path, err)
		}
	}

	c := config{
		Width:     v.GetInt("width"),
		Height:    v.GetInt("height"),
		Interval:  v.GetDuration("interval"),
		Frames:    v.GetInt("frames"),
		Seed:      v.GetInt64("seed"),
		Stars:     v.GetInt("stars"),
		Asteroids: v.GetInt("asteroids"),
		Font:      v.GetString("font"),
		GIF:       v.GetString("gif"),
	}

	if v.IsSet("planets") {
		if err := v.UnmarshalKey("planets", &c.Planets); err != nil {
			return config{}, fmt.Errorf(`can't parse planets: %w`, err)
		}
	} else {
		c.Planets = orrery.DefaultPlanets()
	}

	if err := c.validate(); err != nil {
		return config{}, err
	}

	return c, nil
}

// sceneSeed is the seed for the star field and asteroid belt. Zero picks a
// new one on every run.
func (c config) sceneSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

func (c config) validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf(`window size must be positive, got %dx%d`, c.Width, c.Height)
	case c.Interval <= 0:
		return fmt.Errorf(`frame interval must be positive, got %s`, c.Interval)
	case c.Frames <= 0:
		return fmt.Errorf(`frame count must be positive, got %d`, c.Frames)
	case c.Stars < 0 || c.Asteroids < 0:
		return fmt.Errorf(`star and asteroid counts can't be negative`)
	}
	return nil
}
