package ui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

const (
	fps           = 60
	frameTime     = time.Second / fps
	settleEpsilon = 0.005
)

// frameMsg drives spring animations. gen ties a frame to the animation loop
// that scheduled it so a remounted widget ignores stale frames.
type frameMsg struct {
	gen int64
}

// spring animates a scalar toward a target.
type spring struct {
	s      harmonica.Spring
	pos    float64
	vel    float64
	target float64
}

func newSpring(pos, frequency, damping float64) spring {
	return spring{
		s:      harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
		pos:    pos,
		target: pos,
	}
}

// step advances one frame. It snaps to the target once settled.
func (a *spring) step() {
	if a.settled() {
		return
	}
	a.pos, a.vel = a.s.Update(a.pos, a.vel, a.target)
	if a.settled() {
		a.pos, a.vel = a.target, 0
	}
}

func (a *spring) settled() bool {
	return math.Abs(a.pos-a.target) < settleEpsilon && math.Abs(a.vel) < settleEpsilon
}

// jump moves the spring to pos with no velocity.
func (a *spring) jump(pos float64) {
	a.pos, a.vel = pos, 0
}

func frameCmd(gen int64) tea.Cmd {
	return tea.Tick(frameTime, func(time.Time) tea.Msg {
		return frameMsg{gen: gen}
	})
}
