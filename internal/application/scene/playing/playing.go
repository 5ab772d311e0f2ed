// Package playing provides the main gameplay scene: the frame driver
// for player movement, interaction dispatch, and map transitions.
package playing

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/tidegate/emberwood/internal/application/scene"
	"github.com/tidegate/emberwood/internal/application/state"
	"github.com/tidegate/emberwood/internal/application/system"
	"github.com/tidegate/emberwood/internal/application/transition"
	"github.com/tidegate/emberwood/internal/domain/entity"
	"github.com/tidegate/emberwood/internal/domain/interact"
	"github.com/tidegate/emberwood/internal/domain/progress"
	"github.com/tidegate/emberwood/internal/domain/world"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorGround   = color.RGBA{60, 110, 60, 255}
	colorWall     = color.RGBA{80, 80, 100, 255}
	colorWater    = color.RGBA{50, 90, 180, 255}
	colorBridge   = color.RGBA{140, 100, 60, 255}
	colorRoof     = color.RGBA{120, 70, 70, 255}
	colorHazard   = color.RGBA{200, 50, 50, 160}
	colorPlayer   = color.RGBA{100, 200, 100, 255}
	colorChest    = color.RGBA{180, 140, 60, 255}
	colorDoor     = color.RGBA{150, 110, 80, 255}
	colorPortal   = color.RGBA{160, 80, 220, 255}
	colorProp     = color.RGBA{110, 110, 130, 255}
	colorHealthBG = color.RGBA{60, 60, 60, 255}
	colorHealthFG = color.RGBA{100, 200, 100, 255}
)

const (
	messageDuration = 3.0 // seconds a message box stays up
	hazardIframes   = 1.0
)

// Input is one frame of player intent. It is gathered from ebiten in
// Update and fed to step, so tests can drive frames directly.
type Input struct {
	Up       bool
	Down     bool
	Left     bool
	Right    bool
	Interact bool // just pressed
	Pause    bool // just pressed
}

// Playing is the main gameplay scene.
type Playing struct {
	manager *system.Manager
	gs      progress.GameState
	coord   *transition.Coordinator
	player  *entity.Player
	log     *zap.Logger

	mode    state.Mode
	screenW int
	screenH int

	message      string
	messageTimer float64

	// Activation flags for cosmetic subsystems. The core only toggles
	// them; audio/particles read them elsewhere.
	ambientWaterActive bool
	enemyWaveArmed     bool
}

// New creates the playing scene over a populated map manager. A nil
// logger disables logging.
func New(manager *system.Manager, gs progress.GameState, screenW, screenH int, log *zap.Logger) *Playing {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Playing{
		manager: manager,
		gs:      gs,
		player:  entity.NewPlayer(0, 0),
		log:     log,
		mode:    state.ModePlaying,
		screenW: screenW,
		screenH: screenH,
	}
	p.coord = transition.NewCoordinator(manager, log)
	manager.OnSwap = func(spawnX, spawnY int) {
		p.player.SetPos(spawnX, spawnY)
	}
	return p
}

// Start makes the given map current at its own spawn point.
func (p *Playing) Start(mapID string) error {
	mp, ok := p.manager.Get(mapID)
	if !ok {
		return system.ErrUnknownMap
	}
	return p.manager.SwapTo(mapID, mp.SpawnX, mp.SpawnY)
}

// Coordinator exposes the transition coordinator for the renderer
// (fade overlay, player scale).
func (p *Playing) Coordinator() *transition.Coordinator { return p.coord }

// Player returns the player entity.
func (p *Playing) Player() *entity.Player { return p.player }

// Mode returns the scene's current mode.
func (p *Playing) Mode() state.Mode { return p.mode }

// Message returns the active message box text, or "".
func (p *Playing) Message() string {
	if p.messageTimer <= 0 {
		return ""
	}
	return p.message
}

// AmbientWaterActive reports whether the open-water ambience should
// play this frame.
func (p *Playing) AmbientWaterActive() bool { return p.ambientWaterActive }

// EnemyWaveArmed reports whether a trapped chest fired this session.
func (p *Playing) EnemyWaveArmed() bool { return p.enemyWaveArmed }

// Update gathers input and advances one frame (implements scene.Scene).
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	in := Input{
		Up:       ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:     ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:     ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:    ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Interact: inpututil.IsKeyJustPressed(ebiten.KeyE) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Pause:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
	return nil, p.step(in, dt)
}

// step advances one frame in the fixed order the core requires:
// player movement and interaction dispatch first, then interactable
// animation, then the transition coordinator, so a same-frame
// interact-then-transition is visible to the coordinator immediately.
func (p *Playing) step(in Input, dt float64) error {
	if in.Pause && p.mode != state.ModeGameOver {
		if p.mode == state.ModePaused {
			p.mode = state.ModePlaying
		} else {
			p.mode = state.ModePaused
		}
	}
	if p.mode != state.ModePlaying {
		return nil
	}

	cur := p.manager.Current()

	// Movement and interaction are frozen while a transition runs.
	if p.coord.Idle() && cur != nil {
		p.movePlayer(in, cur.Grid, dt)
		p.checkHazards(cur.Grid)
		if in.Interact {
			p.handleInteract(cur)
		}
	}
	p.player.Update(dt)

	// Interactable animation updates before the coordinator reads the
	// pending transition.
	if cur != nil {
		for _, it := range cur.Interactables {
			it.Update(dt)
		}
	}

	if err := p.coord.Update(dt); err != nil {
		// A bad destination leaves the player on the source map.
		p.log.Error("transition failed", zap.Error(err))
		p.setMessage("A strange force pushes you back.")
	}

	if cur = p.manager.Current(); cur != nil {
		p.ambientWaterActive = cur.Grid.HasVisibleWaterOfKind(p.viewport(cur.Grid), world.WaterOpen)
	}

	if p.messageTimer > 0 {
		p.messageTimer -= dt
	}
	if p.player.Health <= 0 {
		p.mode = state.ModeGameOver
	}
	return nil
}

// movePlayer applies axis-separated movement so sliding along walls
// works: each axis advances only if the resulting box is clear.
func (p *Playing) movePlayer(in Input, grid *world.TileGrid, dt float64) {
	dx, dy := 0.0, 0.0
	if in.Left {
		dx -= 1
		p.player.FacingRight = false
	}
	if in.Right {
		dx += 1
		p.player.FacingRight = true
	}
	if in.Up {
		dy -= 1
	}
	if in.Down {
		dy += 1
	}
	if dx == 0 && dy == 0 {
		return
	}
	if dx != 0 && dy != 0 {
		norm := math.Sqrt2 / 2
		dx *= norm
		dy *= norm
	}

	step := p.player.Speed * dt
	newX := p.player.X + dx*step
	if !grid.IsColliding(int(newX), int(p.player.Y), p.player.Width, p.player.Height) {
		p.player.X = newX
	}
	newY := p.player.Y + dy*step
	if !grid.IsColliding(int(p.player.X), int(newY), p.player.Width, p.player.Height) {
		p.player.Y = newY
	}
}

func (p *Playing) checkHazards(grid *world.TileGrid) {
	x, y, w, h := p.player.Box()
	hazard, ok := grid.HazardAt(x, y, w, h)
	if !ok {
		return
	}
	if p.player.TakeDamage(hazard.Damage, hazardIframes) {
		p.log.Debug("hazard damage",
			zap.String("kind", hazard.Kind),
			zap.Int("damage", hazard.Damage))
	}
}

// handleInteract dispatches on the nearest in-range interactable of
// the current visible set and routes its outcome.
func (p *Playing) handleInteract(cur *system.Map) {
	visible := system.VisibleInteractables(cur.Interactables, p.gs)

	var nearest *interact.Interactable
	bestDist := math.MaxFloat64
	px, py := p.player.CenterX(), p.player.CenterY()
	for _, it := range visible {
		if !it.IsPlayerNear(px, py) {
			continue
		}
		cx := float64(it.X) + float64(it.Width)/2
		cy := float64(it.Y) + float64(it.Height)/2
		d := (px-cx)*(px-cx) + (py-cy)*(py-cy)
		if d < bestDist {
			bestDist = d
			nearest = it
		}
	}
	if nearest == nil {
		return
	}

	p.applyOutcome(nearest.Interact(p.gs), cur.ID)
}

func (p *Playing) applyOutcome(out interact.Outcome, sourceMap string) {
	switch o := out.(type) {
	case interact.TextMessage:
		p.setMessage(o.Text)
	case interact.ItemGranted:
		p.setMessage("You found: " + o.ItemID + "!")
	case interact.GoldGranted:
		p.setMessage("You found some gold!")
	case interact.SpellLearned:
		p.setMessage(o.TutorialText)
	case interact.ChestOpened:
		p.setMessage(o.Contents)
	case interact.TriggerEvent:
		if o.Event == interact.EventEnemyWave {
			p.enemyWaveArmed = true
			p.setMessage("The chest was trapped!")
		}
	case interact.MapTransitionRequested:
		// The coordinator never queues; the Idle guard in step keeps
		// this from firing mid-flight.
		err := p.coord.StartTransition(o.TargetMap, o.SpawnX, o.SpawnY, transition.Options{
			PortalStyle: o.PortalStyle,
			SourceMap:   sourceMap,
		})
		if err != nil {
			p.log.Warn("transition not started", zap.Error(err))
		}
	case interact.ChoiceOffered:
		p.gs.SetChoice(o.ChoiceKind, o.ChoiceData)
		p.setMessage("You choose the way of the " + o.ChoiceData + ".")
	case interact.NoOp:
		// decorative
	}
}

func (p *Playing) setMessage(text string) {
	if text == "" {
		return
	}
	p.message = text
	p.messageTimer = messageDuration
}

// viewport returns the camera window clamped to the map bounds.
func (p *Playing) viewport(grid *world.TileGrid) world.Viewport {
	camX := int(p.player.CenterX()) - p.screenW/2
	camY := int(p.player.CenterY()) - p.screenH/2
	maxCamX := grid.Width()*grid.TileSize() - p.screenW
	maxCamY := grid.Height()*grid.TileSize() - p.screenH
	if camX > maxCamX {
		camX = maxCamX
	}
	if camY > maxCamY {
		camY = maxCamY
	}
	if camX < 0 {
		camX = 0
	}
	if camY < 0 {
		camY = 0
	}
	return world.Viewport{X: camX, Y: camY, Width: p.screenW, Height: p.screenH}
}

// Draw renders the game screen (implements scene.Scene).
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	cur := p.manager.Current()
	if cur == nil {
		return
	}
	view := p.viewport(cur.Grid)

	p.drawTiles(screen, cur.Grid, view)
	p.drawHazards(screen, cur.Grid, view)
	p.drawInteractables(screen, cur, view)
	p.drawPlayer(screen, view)
	p.drawRoofs(screen, cur.Grid, view)

	// Fade overlay over the world, under the UI.
	if alpha := p.coord.FadeAlpha(); alpha > 0 {
		overlay := color.RGBA{0, 0, 0, uint8(alpha * 255)}
		ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)
	}

	p.drawUI(screen)
}

func (p *Playing) drawTiles(screen *ebiten.Image, grid *world.TileGrid, view world.Viewport) {
	size := grid.TileSize()
	startX := view.X / size
	startY := view.Y / size
	endX := (view.X+view.Width)/size + 1
	endY := (view.Y+view.Height)/size + 1

	for ty := startY; ty <= endY && ty < grid.Height(); ty++ {
		for tx := startX; tx <= endX && tx < grid.Width(); tx++ {
			if tx < 0 || ty < 0 {
				continue
			}
			x := float64(tx*size - view.X)
			y := float64(ty*size - view.Y)

			if grid.TileAt(tx, ty, world.LayerGround) != 0 {
				ebitenutil.DrawRect(screen, x, y, float64(size), float64(size), colorGround)
			}
			switch grid.TileAt(tx, ty, world.LayerWater) {
			case world.WaterOpen, world.WaterFountain:
				ebitenutil.DrawRect(screen, x, y, float64(size), float64(size), colorWater)
			case world.WaterBridge:
				ebitenutil.DrawRect(screen, x, y, float64(size), float64(size), colorBridge)
			}
			if grid.TileAt(tx, ty, world.LayerCollision) == world.CollisionSolid {
				ebitenutil.DrawRect(screen, x, y, float64(size), float64(size), colorWall)
			}
		}
	}
}

func (p *Playing) drawRoofs(screen *ebiten.Image, grid *world.TileGrid, view world.Viewport) {
	size := grid.TileSize()
	for ty := view.Y / size; ty <= (view.Y+view.Height)/size+1 && ty < grid.Height(); ty++ {
		for tx := view.X / size; tx <= (view.X+view.Width)/size+1 && tx < grid.Width(); tx++ {
			if tx < 0 || ty < 0 || grid.TileAt(tx, ty, world.LayerRoofs) == 0 {
				continue
			}
			x := float64(tx*size - view.X)
			y := float64(ty*size - view.Y)
			ebitenutil.DrawRect(screen, x, y, float64(size), float64(size), colorRoof)
		}
	}
}

func (p *Playing) drawHazards(screen *ebiten.Image, grid *world.TileGrid, view world.Viewport) {
	for _, h := range grid.Hazards() {
		ebitenutil.DrawRect(screen,
			float64(h.X-view.X), float64(h.Y-view.Y),
			float64(h.Width), float64(h.Height), colorHazard)
	}
}

func (p *Playing) drawInteractables(screen *ebiten.Image, cur *system.Map, view world.Viewport) {
	for _, it := range system.VisibleInteractables(cur.Interactables, p.gs) {
		x := float64(it.X - view.X)
		y := float64(it.Y - view.Y)
		w := float64(it.Width)
		h := float64(it.Height)

		var c color.RGBA
		switch it.Kind {
		case interact.KindChest:
			c = colorChest
			// The lid lifts with the open animation.
			lid := h * 0.3 * it.Anim
			y -= lid
			h += lid
		case interact.KindDoor, interact.KindCaveEntrance,
			interact.KindAncientPath, interact.KindEasternPath:
			c = colorDoor
		case interact.KindPortal:
			c = colorPortal
		default:
			c = colorProp
		}
		ebitenutil.DrawRect(screen, x, y, w, h, c)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, view world.Viewport) {
	scale := p.coord.PlayerScale()
	w := float64(p.player.Width) * scale
	h := float64(p.player.Height) * scale
	x := p.player.CenterX() - w/2 - float64(view.X)
	y := p.player.CenterY() - h/2 - float64(view.Y)

	c := colorPlayer
	if p.player.IsInvincible() && int(p.player.IframeTimer*10)%2 == 0 {
		c = color.RGBA{255, 255, 255, 200}
	}
	ebitenutil.DrawRect(screen, x, y, w, h, c)
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	barX, barY := 10.0, float64(p.screenH-20)
	barW, barH := 100.0, 10.0
	ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorHealthBG)
	ratio := float64(p.player.Health) / float64(p.player.MaxHealth)
	if ratio < 0 {
		ratio = 0
	}
	ebitenutil.DrawRect(screen, barX, barY, barW*ratio, barH, colorHealthFG)

	if msg := p.Message(); msg != "" {
		boxH := 40.0
		ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), boxH, color.RGBA{0, 0, 0, 180})
		ebitenutil.DebugPrintAt(screen, msg, 8, 8)
	}

	switch p.mode {
	case state.ModePaused:
		ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrintAt(screen, "PAUSED\n\nPress ESC to resume", p.screenW/2-50, p.screenH/2-20)
	case state.ModeGameOver:
		ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), color.RGBA{100, 0, 0, 180})
		ebitenutil.DebugPrintAt(screen, "GAME OVER", p.screenW/2-40, p.screenH/2-10)
	}

	ebitenutil.DebugPrint(screen, "WASD: Move | E: Interact | ESC: Pause")
}

// OnEnter is called when entering this scene.
func (p *Playing) OnEnter() {}

// OnExit is called when leaving this scene.
func (p *Playing) OnExit() {
	p.log.Info("leaving playing scene",
		zap.String("map", p.manager.CurrentID()),
		zap.Int("gold", p.gs.Gold()))
}
