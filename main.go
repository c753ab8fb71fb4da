package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/shipscroller/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "enable the debug overlay and event tracing")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	script := flag.String("script", "", "autopilot script in prefabs/scripts (basename, .tengo optional)")
	fullscreen := flag.Bool("fullscreen", false, "start fullscreen")
	watch := flag.Bool("watch", false, "hot reload prefab specs and scripts from disk")
	prefabDir := flag.String("prefabs", prefabs.Dir, "directory checked for prefab overrides")
	flag.Parse()

	prefabs.Dir = *prefabDir

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	game, err := NewGame(Options{Debug: *debug, Script: *script, Watch: *watch})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	session := game.specs.Session
	ebiten.SetWindowSize(session.Viewport.Width*session.WindowScale, session.Viewport.Height*session.WindowScale)
	ebiten.SetWindowTitle(session.Title)
	ebiten.SetTPS(session.TPS)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetFullscreen(*fullscreen)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
