// Package gridstrike adapts the GridStrike rules to the platform's Game
// interface: it owns the scene, turns input frames into rule events and
// draws the board at the sprites' animated positions.
package gridstrike

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	platformcore "github.com/vovakirdan/gridstrike/internal/core"
	"github.com/vovakirdan/gridstrike/internal/games/gridstrike/core"
	"github.com/vovakirdan/gridstrike/internal/registry"
	"github.com/vovakirdan/gridstrike/internal/scene"
)

// Settings tunes every game created after Configure.
type Settings struct {
	MoveDuration time.Duration
	RefillEvery  int // Steps between board refills
	Easing       core.Easing
	Logger       *log.Logger
}

// DefaultSettings returns the settings used when Configure is never called.
func DefaultSettings() Settings {
	return Settings{
		MoveDuration: core.DefaultMoveDuration,
		RefillEvery:  30,
		Easing:       core.EaseInOut,
	}
}

var (
	settingsMu sync.RWMutex
	settings   = DefaultSettings()
)

// Configure replaces the package settings. Running games keep theirs until Reset.
func Configure(s Settings) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = s
}

func currentSettings() Settings {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}

func init() {
	registry.Register("gridstrike", "attack clears the tile under the player", func() registry.Game {
		return New("gridstrike", "GridStrike", core.SingleTileRule{})
	})
	registry.Register("gridstrike_flood", "attack clears every tile of the targeted color", func() registry.Game {
		return New("gridstrike_flood", "GridStrike: Flood", core.SameColorRule{})
	})
}

// Game is one GridStrike session.
type Game struct {
	id    string
	title string
	rule  core.AttackRule

	rng      *rand.Rand
	scene    *scene.Scene
	state    *core.State
	settings Settings
	logger   *log.Logger

	screenW  int
	screenH  int
	tickRate int
	tick     uint64
	cleared  int
	paused   bool
}

// New creates a game variant with a fixed attack rule.
func New(id, title string, rule core.AttackRule) *Game {
	return &Game{id: id, title: title, rule: rule}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset builds a fresh board from cfg.Seed.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.settings = currentSettings()
	g.logger = g.settings.Logger
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if g.settings.RefillEvery <= 0 {
		g.settings.RefillEvery = 1
	}

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = platformcore.DefaultConfig().TickRate
	}
	g.tick = 0
	g.cleared = 0
	g.paused = false

	g.scene = scene.New()
	g.state = core.NewState(g.rng, g.scene, core.Options{
		Rule:         g.rule,
		MoveDuration: g.settings.MoveDuration,
		Easing:       g.settings.Easing,
		Logger:       g.logger,
	})
	g.logger.Debug("board reset", "variant", g.id, "seed", cfg.Seed)
}

// directions lists the movement actions in priority order; one move per step.
var directions = []struct {
	action platformcore.Action
	dir    core.Direction
}{
	{platformcore.ActionUp, core.DirUp},
	{platformcore.ActionDown, core.DirDown},
	{platformcore.ActionLeft, core.DirLeft},
	{platformcore.ActionRight, core.DirRight},
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if in.Has(platformcore.ActionRestart) {
		g.Reset(platformcore.RuntimeConfig{
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
			Seed:     g.rng.Int63(),
		})
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	g.scene.Update(time.Second / time.Duration(g.tickRate))

	for _, d := range directions {
		if in.Has(d.action) {
			g.state.HandleEvent(core.MoveEvent(d.dir))
			break
		}
	}

	if in.Has(platformcore.ActionAttack) {
		out := g.state.HandleEvent(core.ActionEvent())
		g.cleared += out.Removed
	}

	g.tick++
	if g.tick%uint64(g.settings.RefillEvery) == 0 {
		g.state.HandleEvent(core.TickEvent())
	}

	return platformcore.StepResult{State: g.State()}
}

// State returns the HUD state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Cleared: g.cleared,
		Paused:  g.paused,
	}
}

// Board returns the rule state. Tests and diagnostics only.
func (g *Game) Board() *core.State {
	return g.state
}

// Scene returns the visual state.
func (g *Game) Scene() *scene.Scene {
	return g.scene
}
