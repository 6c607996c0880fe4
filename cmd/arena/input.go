package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/fps/player"
)

// Input polls devices once per frame into a player.Input snapshot and owns
// mouse capture.
type Input struct {
	captured bool
	lastX    int
	lastY    int
}

func NewInput() *Input {
	return &Input{}
}

func (i *Input) Update() player.Input {
	var in player.Input

	in.ToggleCapture = inpututil.IsKeyJustPressed(ebiten.KeyTab) ||
		(!i.captured && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft))
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && i.captured {
		in.ToggleCapture = true
	}
	if in.ToggleCapture {
		i.setCaptured(!i.captured)
	}

	mx, my := ebiten.CursorPosition()
	if i.captured {
		in.LookDX = float64(mx - i.lastX)
		in.LookDY = float64(my - i.lastY)
	}
	i.lastX, i.lastY = mx, my

	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		in.Move.Y += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		in.Move.Y -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		in.Move.X += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		in.Move.X -= 1
	}

	in.Jump = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	in.Reload = inpututil.IsKeyJustPressed(ebiten.KeyR)
	in.Fire = i.captured && !in.ToggleCapture && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	ids := ebiten.GamepadIDs()
	if len(ids) > 0 {
		gid := ids[0]
		lx := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickVertical)
		if lx < -0.3 || lx > 0.3 {
			in.Move.X = lx
		}
		if ly < -0.3 || ly > 0.3 {
			in.Move.Y = -ly
		}
		rx := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisRightStickVertical)
		in.LookDX += rx * 12
		in.LookDY += ry * 12

		in.Jump = in.Jump || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		in.Reload = in.Reload || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightLeft)
		in.Fire = in.Fire || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonFrontBottomRight)
	}

	return in
}

func (i *Input) setCaptured(v bool) {
	i.captured = v
	if v {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		return
	}
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}
