package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

type lesson struct {
	name  string
	title string
	run   func(log *logrus.Logger)
}

// lessons run in this order unless --lesson says otherwise.
var lessons = []lesson{
	{"duplication", "Duplication — one largest function per element type", demoDuplication},
	{"generic", "Generics — Of[T], Index, Smallest, Func, Comparer, Seq", demoGeneric},
	{"points", "Generic structs — Point[T], MixedPoint[T, U], Mixup, Pair[T]", demoPoints},
}

func lessonNames() []string {
	names := make([]string, len(lessons))
	for i, l := range lessons {
		names[i] = l.name
	}
	return names
}

func lookupLesson(name string) (lesson, bool) {
	for _, l := range lessons {
		if l.name == name {
			return l, true
		}
	}
	return lesson{}, false
}

// Finding the largest element of a list, from copy-pasted per-type
// functions to a single generic one.
//
// Run:
//
//	go run .
//	go run . --lesson generic,points
func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	cfg, err := parseFlags(os.Args[1:])
	switch {
	case errors.Is(err, pflag.ErrHelp):
		return
	case err != nil:
		log.WithError(err).Error("invalid flags")
		os.Exit(2)
	}

	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	for _, name := range cfg.Lessons {
		l, _ := lookupLesson(name)
		log.WithField("lesson", l.name).Debug("running")
		section(l.title)
		l.run(log)
	}
}

var header = color.New(color.FgCyan, color.Bold)

func section(title string) {
	fmt.Println()
	header.Printf("━━━ %s ━━━\n", title)
}
