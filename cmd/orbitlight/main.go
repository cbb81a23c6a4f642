package main

import (
	"log"
	"math"

	"github.com/moonlit-edelweiss/orbitlight/engine"
	"github.com/moonlit-edelweiss/orbitlight/engine/camera"
	"github.com/moonlit-edelweiss/orbitlight/engine/light"
	"github.com/moonlit-edelweiss/orbitlight/engine/renderer"
	"github.com/moonlit-edelweiss/orbitlight/engine/scene"
	"github.com/moonlit-edelweiss/orbitlight/engine/window"
)

func main() {
	// ── Window ──────────────────────────────────────────────────────
	win := window.NewWindow(
		window.WithTitle("orbitlight"),
		window.WithWidth(800),
		window.WithHeight(600),
	)

	// ── Renderer ────────────────────────────────────────────────────
	r := renderer.NewRenderer(
		renderer.BackendTypeWGPU,
		win,
		renderer.WithPresentMode(renderer.PresentModeVSync),
		renderer.WithMSAA(renderer.MSAA4x),
	)

	// ── Camera ──────────────────────────────────────────────────────
	cam := camera.NewCamera(
		camera.WithFov(float32(60.0*math.Pi/180.0)),
		camera.WithAspect(float32(win.Width())/float32(win.Height())),
		camera.WithNear(0.1),
		camera.WithFar(100),
		camera.WithRig(camera.NewOrbitRig(
			camera.WithRadius(5),
			camera.WithAzimuth(45),
			camera.WithPolar(20),
			camera.WithTarget(0, 0, 0),
		)),
	)

	// ── Light ───────────────────────────────────────────────────────
	lgt := light.NewLight(
		light.WithPosition(2, 4, 2),
		light.WithColor(255, 241, 224),
	)

	// ── Scene ───────────────────────────────────────────────────────
	sc := scene.NewScene("orbitlight", cam, lgt, r, win,
		scene.WithControllerOptions(
			scene.WithLocked(false),
			scene.WithSpinning(true),
			scene.WithMarkerVisible(true),
		),
	)

	// ── Engine ──────────────────────────────────────────────────────
	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithScene(sc),
	)

	if err := eng.Run(); err != nil {
		log.Fatalf("orbitlight exited with error: %v", err)
	}
}
