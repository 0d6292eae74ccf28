package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

var backgroundColor = rl.NewColor(18, 18, 22, 255)

// Run opens the window and drives the main loop. Each frame it calls update
// (input and state), then clears the screen and calls draw (3D scene, then
// widgets). All event handling happens inside update on this one goroutine.
// ESC is reserved for field/dialog handling, so the window closes only via
// the window button.
func Run(title string, width, height int32, update, draw func()) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(width, height, title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(backgroundColor)
		draw()
		rl.EndDrawing()
	}
}
