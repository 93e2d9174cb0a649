package main

import (
	"fmt"
	"slices"

	"github.com/spf13/pflag"
)

type config struct {
	Lessons []string
	NoColor bool
	Verbose bool
}

func parseFlags(args []string) (config, error) {
	var cfg config

	fs := pflag.NewFlagSet("largest", pflag.ContinueOnError)
	fs.StringSliceVarP(&cfg.Lessons, "lesson", "l", lessonNames(), "lessons to run, in order")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable colored section headers")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "log at debug level")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if err := cfg.validate(); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func (c config) validate() error {
	if len(c.Lessons) == 0 {
		return fmt.Errorf("no lesson selected (known: %v)", lessonNames())
	}
	known := lessonNames()
	for _, name := range c.Lessons {
		if !slices.Contains(known, name) {
			return fmt.Errorf("unknown lesson %q (known: %v)", name, known)
		}
	}
	return nil
}
