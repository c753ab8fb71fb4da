// Package autopilot drives the ship from a tengo script instead of the
// keyboard. The script is re-run every tick with `tick` set and declares the
// controls to press and release in top-level `press` and `release` arrays.
package autopilot

import (
	"context"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/shipscroller/motion"
	"github.com/milk9111/shipscroller/prefabs"
)

// Pilot runs one compiled script.
type Pilot struct {
	name     string
	compiled *tengo.Compiled
	tick     int64
}

// Load compiles a script from the prefab scripts directory.
func Load(name string) (*Pilot, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("autopilot: load %s: %w", name, err)
	}
	return Compile(name, src)
}

// Compile builds a pilot from script source.
func Compile(name string, src []byte) (*Pilot, error) {
	script := tengo.NewScript(src)
	_ = script.Add("tick", 0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("autopilot: compile %s: %w", name, err)
	}
	return &Pilot{name: name, compiled: compiled}, nil
}

// Name returns the script name the pilot was built from.
func (p *Pilot) Name() string {
	return p.name
}

// Tick returns the number of ticks run so far.
func (p *Pilot) Tick() int64 {
	return p.tick
}

// Next runs the script for the current tick and returns its key events,
// releases first. Unknown control names are dropped.
func (p *Pilot) Next(ctx context.Context) ([]motion.KeyEvent, error) {
	if err := p.compiled.Set("tick", p.tick); err != nil {
		return nil, fmt.Errorf("autopilot: %s: set tick: %w", p.name, err)
	}
	if err := p.compiled.RunContext(ctx); err != nil {
		return nil, fmt.Errorf("autopilot: %s: tick %d: %w", p.name, p.tick, err)
	}
	p.tick++

	var events []motion.KeyEvent
	for _, name := range names(p.compiled.Get("release")) {
		if k := motion.ParseKey(name); k != motion.KeyNone {
			events = append(events, motion.Release(k))
		}
	}
	for _, name := range names(p.compiled.Get("press")) {
		if k := motion.ParseKey(name); k != motion.KeyNone {
			events = append(events, motion.Press(k))
		}
	}
	return events, nil
}

func names(v *tengo.Variable) []string {
	if v == nil {
		return nil
	}
	var out []string
	switch v.ValueType() {
	case "array", "immutable-array":
		for _, item := range v.Array() {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
	case "string":
		out = append(out, v.String())
	}
	return out
}
