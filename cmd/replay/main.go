// Command replay drives the ship simulation headless from an autopilot script
// at the session tick rate and prints the final ship state.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/milk9111/shipscroller/autopilot"
	"github.com/milk9111/shipscroller/ecs"
	"github.com/milk9111/shipscroller/ecs/component"
	"github.com/milk9111/shipscroller/ecs/entity"
	"github.com/milk9111/shipscroller/ecs/system"
	"github.com/milk9111/shipscroller/pacing"
	"github.com/milk9111/shipscroller/prefabs"
)

func main() {
	script := flag.String("script", "weave", "autopilot script in prefabs/scripts")
	ticks := flag.Int("ticks", 600, "stop after this many ticks (0 runs until the script quits)")
	fast := flag.Bool("fast", false, "step without waiting for the frame budget")
	verbose := flag.Bool("v", false, "log the pipeline, pose changes and tile wraps")
	prefabDir := flag.String("prefabs", prefabs.Dir, "directory checked for prefab overrides")
	flag.Parse()

	prefabs.Dir = *prefabDir

	if err := run(*script, *ticks, *fast, *verbose); err != nil {
		log.Fatal(err)
	}
}

func run(script string, ticks int, fast, verbose bool) error {
	specs, err := entity.LoadSpecs()
	if err != nil {
		return err
	}
	scene, err := entity.BuildScene(specs, nil)
	if err != nil {
		return err
	}
	pilot, err := autopilot.Load(script)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	pipeline := system.NewPipeline(nil, system.NewAutopilotSystem(ctx, pilot))
	pacer := pacing.NewPacer(pacing.SystemClock, specs.Session.TPS)
	if fast {
		pacer.Budget = 0
	}
	if specs.Session.OverrunMS > 0 {
		pacer.OverrunThreshold = time.Duration(specs.Session.OverrunMS) * time.Millisecond
	}
	if verbose {
		for i, sys := range pipeline.Systems() {
			log.Printf("replay: system %d: %T", i, sys)
		}
	}

	wraps := 0
	tick := func() bool {
		pipeline.Update(scene.World)
		for _, ev := range scene.World.Events().Drain() {
			if ev.Type == ecs.EventTileWrapped {
				wraps++
			}
			if verbose {
				log.Printf("replay: %s %v", ev.Type, ev.Data)
			}
		}
		sess, ok := ecs.Get(scene.World, scene.Session, component.SessionComponent.Kind())
		if !ok || sess.Quit {
			return false
		}
		return ticks <= 0 || sess.Tick < uint64(ticks)
	}

	err = pacing.Run(ctx, pacer, tick)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	ship, ok := ecs.Get(scene.World, scene.Ship, component.ShipComponent.Kind())
	if !ok {
		return fmt.Errorf("replay: ship entity missing")
	}
	sess, _ := ecs.Get(scene.World, scene.Session, component.SessionComponent.Kind())
	a := ship.Actor
	fmt.Printf("script=%s ticks=%d wraps=%d\n", pilot.Name(), sess.Tick, wraps)
	fmt.Printf("pos=%d,%d pose=%s flame=%s sustain=%d/%d thrust=%d\n",
		a.X, a.Y, a.Pose, a.Flame, a.SustainUp, a.SustainDown, a.ThrustPhase)
	return nil
}
