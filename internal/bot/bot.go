// internal/bot/bot.go
package bot

import (
	"math"

	"go-survivor/internal/app"
	"go-survivor/internal/input"
	"go-survivor/internal/utils"
)

const (
	noiseAngle   = 0.35 // ±20°
	axisDeadZone = 0.38 // sin(22.5°): below this an axis is not pressed
)

// Action is the direction the bot wants to move in. Zero means stand still.
type Action struct {
	DX, DY float64
}

// Controller is a rule-based autopilot. It keeps enemies at arm's length
// and picks up jewels while the weapons do the shooting.
type Controller struct {
	CloseRange float64 // back away inside this distance
	MidRange   float64 // circle the enemy inside this distance
	StrafeSign float64 // +1 counter-clockwise, -1 clockwise

	rng *utils.PRNGService
}

// NewController returns a bot with a randomized temperament.
func NewController(rng *utils.PRNGService) *Controller {
	sign := 1.0
	if rng.Float64() < 0.5 {
		sign = -1
	}
	return &Controller{
		CloseRange: rng.Range(60, 100),
		MidRange:   rng.Range(140, 200),
		StrafeSign: sign,
		rng:        rng,
	}
}

func (c *Controller) Decide(f app.Frame) Action {
	px, py := f.Player.X, f.Player.Y

	var (
		enemyDist = math.Inf(1)
		ex, ey    float64
	)
	for _, e := range f.Enemies {
		// Measure to the edge so big enemies count as closer.
		d := utils.Distance(px, py, e.X, e.Y) - e.Size
		if d < enemyDist {
			enemyDist, ex, ey = d, e.X, e.Y
		}
	}

	if !math.IsInf(enemyDist, 1) {
		nx, ny := unit(ex-px, ey-py)
		switch {
		case enemyDist < c.CloseRange:
			return c.noisy(-nx, -ny)
		case enemyDist < c.MidRange:
			return c.noisy(-ny*c.StrafeSign, nx*c.StrafeSign)
		}
	}

	jewelDist := math.Inf(1)
	var jx, jy float64
	for _, j := range f.Jewels {
		if d := utils.DistanceSq(px, py, j.X, j.Y); d < jewelDist {
			jewelDist, jx, jy = d, j.X, j.Y
		}
	}
	if !math.IsInf(jewelDist, 1) {
		return c.noisy(unit(jx-px, jy-py))
	}
	if !math.IsInf(enemyDist, 1) {
		return c.noisy(unit(ex-px, ey-py))
	}
	return Action{}
}

func (c *Controller) noisy(dx, dy float64) Action {
	if dx == 0 && dy == 0 {
		return Action{}
	}
	if c.rng != nil {
		a := math.Atan2(dy, dx) + c.rng.Range(-noiseAngle, noiseAngle)
		return Action{DX: math.Cos(a), DY: math.Sin(a)}
	}
	return Action{DX: dx, DY: dy}
}

func unit(dx, dy float64) (float64, float64) {
	l := math.Hypot(dx, dy)
	if l < 1e-9 {
		return 0, 0
	}
	return dx / l, dy / l
}

// Keys maps an action onto at most one key per axis.
func Keys(a Action) []input.Key {
	var keys []input.Key
	switch {
	case a.DY < -axisDeadZone:
		keys = append(keys, input.KeyUp)
	case a.DY > axisDeadZone:
		keys = append(keys, input.KeyDown)
	}
	switch {
	case a.DX < -axisDeadZone:
		keys = append(keys, input.KeyLeft)
	case a.DX > axisDeadZone:
		keys = append(keys, input.KeyRight)
	}
	return keys
}

// Drive replaces the held keys with the ones for the bot's next move.
func (c *Controller) Drive(keys *input.KeySet, f app.Frame) Action {
	a := c.Decide(f)
	keys.Clear()
	for _, k := range Keys(a) {
		keys.Apply(input.Event{Key: k, Down: true})
	}
	return a
}
