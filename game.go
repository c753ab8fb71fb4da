package main

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/shipscroller/autopilot"
	"github.com/milk9111/shipscroller/ecs"
	"github.com/milk9111/shipscroller/ecs/component"
	"github.com/milk9111/shipscroller/ecs/entity"
	"github.com/milk9111/shipscroller/ecs/system"
	"github.com/milk9111/shipscroller/pacing"
	"github.com/milk9111/shipscroller/prefabs"
)

type Options struct {
	Debug  bool
	Script string
	Watch  bool
}

type Game struct {
	debug bool

	specs    entity.Specs
	scene    *entity.Scene
	pipeline *ecs.Scheduler
	render   *system.RenderSystem
	pilot    *system.AutopilotSystem

	pacer     *pacing.Pacer
	lastFrame time.Time
	stats     pacing.Stats

	watcher *prefabs.Watcher
	pauseUI *ebitenui.UI
}

func NewGame(opts Options) (*Game, error) {
	specs, err := entity.LoadSpecs()
	if err != nil {
		return nil, err
	}
	scene, err := entity.BuildScene(specs, entity.EmbeddedImages)
	if err != nil {
		return nil, err
	}

	script := opts.Script
	if script == "" {
		script = specs.Session.Script
	}
	var pilot *system.AutopilotSystem
	if script != "" {
		p, err := autopilot.Load(script)
		if err != nil {
			return nil, err
		}
		pilot = system.NewAutopilotSystem(context.Background(), p)
		log.Printf("game: autopilot %s engaged", script)
	}

	g := &Game{
		debug:    opts.Debug,
		specs:    specs,
		scene:    scene,
		pipeline: system.NewPipeline(system.NewInputSystem(), pilot),
		render:   system.NewRenderSystem(specs.Session.Color()),
		pilot:    pilot,
		pacer:    pacing.NewPacer(pacing.SystemClock, specs.Session.TPS),
	}
	if specs.Session.OverrunMS > 0 {
		g.pacer.OverrunThreshold = time.Duration(specs.Session.OverrunMS) * time.Millisecond
	}
	if opts.Debug {
		for i, sys := range g.pipeline.Systems() {
			log.Printf("game: system %d: %T", i, sys)
		}
	}
	g.pauseUI = NewPauseUI(g)

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
		if err != nil {
			log.Printf("game: hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) session() *component.Session {
	s, _ := ecs.Get(g.scene.World, g.scene.Session, component.SessionComponent.Kind())
	return s
}

func (g *Game) ship() *component.Ship {
	s, _ := ecs.Get(g.scene.World, g.scene.Ship, component.ShipComponent.Kind())
	return s
}

// Resume and Quit are driven by the pause menu.
func (g *Game) Resume() {
	if s := g.session(); s != nil {
		s.Paused = false
	}
}

func (g *Game) Quit() {
	if s := g.session(); s != nil {
		s.Quit = true
	}
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for _, name := range g.watcher.Poll() {
		if err := system.RequestReload(g.scene.World, name); err != nil {
			log.Printf("game: queue reload %s: %v", name, err)
		}
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("game: watcher: %v", err)
		}
	default:
	}
}

func (g *Game) Update() error {
	now := time.Now()
	if !g.lastFrame.IsZero() {
		g.stats = g.pacer.EndFrame(g.lastFrame)
	}
	g.lastFrame = now

	g.pollWatcher()
	g.pipeline.Update(g.scene.World)

	for _, ev := range g.scene.World.Events().Drain() {
		if g.debug {
			traceEvent(ev)
		}
	}

	sess := g.session()
	if sess == nil {
		return fmt.Errorf("game: session entity missing")
	}
	if sess.FullscreenRequested {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if sess.Paused {
		g.pauseUI.Update()
	}
	if sess.Quit {
		g.Close()
		return ebiten.Termination
	}
	return nil
}

func traceEvent(ev ecs.Event) {
	switch ev.Type {
	case ecs.EventTileWrapped:
		if tw, ok := ev.Data.(ecs.TileWrapped); ok {
			log.Printf("game: tile %d wrapped to %d", tw.Index, tw.Offset)
		}
	case ecs.EventPoseChanged:
		log.Printf("game: pose %v", ev.Data)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.scene.World, screen)

	if sess := g.session(); sess != nil && sess.Paused {
		g.pauseUI.Draw(screen)
	}

	if g.debug {
		msg := fmt.Sprintf("TPS: %.1f  FPS: %.1f  frame: %s", ebiten.ActualTPS(), ebiten.ActualFPS(), g.stats.Duration.Round(time.Microsecond))
		if s := g.ship(); s != nil {
			a := s.Actor
			msg += fmt.Sprintf("\npos: %d,%d  pose: %s  flame: %s\nsustain up/down: %d/%d  thrust: %d",
				a.X, a.Y, a.Pose, a.Flame, a.SustainUp, a.SustainDown, a.ThrustPhase)
		}
		ebitenutil.DebugPrint(screen, msg)
	}
}

func (g *Game) viewport() (int, int) {
	return g.specs.Session.Viewport.Width, g.specs.Session.Viewport.Height
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	w, h := g.viewport()
	return float64(w), float64(h)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.viewport()
}

// Close releases the hot reload watcher.
func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
		g.watcher = nil
	}
}
