package engine

import "time"

// Phase is the state machine position of a game. Spawning and line
// clearing resolve within a single update, so between updates a game sits
// in Falling, Locking or GameOver.
type Phase uint8

const (
	PhaseSpawning Phase = iota
	PhaseFalling
	PhaseLocking
	PhaseLineClearing
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "Spawning"
	case PhaseFalling:
		return "Falling"
	case PhaseLocking:
		return "Locking"
	case PhaseLineClearing:
		return "LineClearing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Game owns a complete play session: the grid, the active piece, the
// preview queue, the scoring state and the timers that drive falling and
// locking. It advances only through Update calls; there is no internal
// concurrency and no hidden state.
type Game struct {
	rules Rules

	grid     *Grid
	piece    Piece
	hasPiece bool
	bag      *ShapeBag
	queue    []ShapeKind

	score ComboState
	phase Phase

	fallAcc    time.Duration // time accumulated toward the next gravity step
	lockAcc    time.Duration // time accumulated toward the lock
	lockResets int           // delay restarts spent on the current piece

	lastEvent LineClearEvent // rows cleared by the current tick's lock
	pieces    int            // pieces locked this session
	elapsed   time.Duration  // total play time this session
}

// New creates a game from the rules and spawns the first piece. Invalid
// rules are a programming error and panic; user-facing validation belongs
// to the configuration layer.
func New(rules Rules) *Game {
	if err := rules.Validate(); err != nil {
		panic(err)
	}
	g := &Game{rules: rules}
	g.reset()
	return g
}

// Reset atomically replaces the session with a fresh one under the same
// rules. Legal in every phase.
func (g *Game) Reset() {
	g.reset()
}

func (g *Game) reset() {
	g.grid = NewGrid(g.rules.Width, g.rules.Height)
	g.bag = NewShapeBag(g.rules.Seed)
	g.queue = g.queue[:0]
	for len(g.queue) < g.rules.PreviewCount {
		g.queue = append(g.queue, g.bag.Next())
	}
	g.score = ComboState{}
	g.hasPiece = false
	g.phase = PhaseSpawning
	g.fallAcc = 0
	g.lockAcc = 0
	g.lockResets = 0
	g.lastEvent = LineClearEvent{}
	g.pieces = 0
	g.elapsed = 0
	g.spawn()
}

// Update advances the game by the elapsed wall time and the commands
// queued since the last call. Commands drain first, in submission order,
// then gravity and lock timers consume the elapsed time. The returned
// snapshot reflects the state after the tick; its Cleared rows are the
// lines removed during this tick only.
func (g *Game) Update(elapsed time.Duration, commands []Command) Snapshot {
	g.lastEvent = LineClearEvent{}

	for _, cmd := range commands {
		g.apply(cmd)
	}

	if g.phase != PhaseGameOver {
		g.elapsed += elapsed
		g.advance(elapsed)
	}

	return g.snapshot()
}

// CurrentScore returns the cumulative score.
func (g *Game) CurrentScore() int {
	return g.score.Score
}

// IsNewHighScore reports whether the current score beats a previous best.
func (g *Game) IsNewHighScore(previousHigh int) bool {
	return g.score.Score > previousHigh
}

// Rules returns the tuning the game was built with.
func (g *Game) Rules() Rules {
	return g.rules
}

// apply executes one command. Reset works in every phase; everything else
// needs a live piece and is dropped silently when it cannot apply.
func (g *Game) apply(cmd Command) {
	if cmd == CommandReset {
		g.reset()
		return
	}
	if g.phase == PhaseGameOver || !g.hasPiece {
		return
	}

	switch cmd {
	case CommandMoveLeft:
		g.tryCommit(g.piece.MovedBy(-1, 0))
	case CommandMoveRight:
		g.tryCommit(g.piece.MovedBy(1, 0))
	case CommandRotateCW:
		g.tryCommit(g.piece.RotatedCW())
	case CommandRotateCCW:
		g.tryCommit(g.piece.RotatedCCW())
	case CommandSoftDrop:
		g.softDrop()
	case CommandHardDrop:
		g.hardDrop()
	}
}

// tryCommit validates a candidate piece and commits it on success. A
// commit while the lock delay is running restarts the delay, up to the
// reset cap. A nudge that frees the piece to fall again returns it to
// Falling and spends a reset as well, counted past the cap: once the
// budget is overdrawn the piece locks the moment it next lands.
// Candidates that do not fit are dropped.
func (g *Game) tryCommit(candidate Piece) {
	if !Fits(candidate, g.grid) {
		return
	}
	g.piece = candidate

	if g.phase == PhaseLocking {
		if CanFall(g.piece, g.grid) {
			g.lockResets++
			g.phase = PhaseFalling
			g.fallAcc = 0
		} else if g.lockResets < g.rules.MaxLockResets {
			g.lockResets++
			g.lockAcc = 0
		}
	}
}

// softDrop nudges the piece one row down and restarts the gravity
// accumulator so the next natural fall step is measured from here.
func (g *Game) softDrop() {
	candidate := g.piece.MovedBy(0, 1)
	if !Fits(candidate, g.grid) {
		return
	}
	g.piece = candidate
	g.fallAcc = 0
}

// hardDrop drives the piece to its lowest valid position and locks it
// immediately, bypassing the lock delay.
func (g *Game) hardDrop() {
	for CanFall(g.piece, g.grid) {
		g.piece = g.piece.MovedBy(0, 1)
	}
	g.lockAndClear()
}

// advance runs the phase timers over the elapsed slice of time.
func (g *Game) advance(elapsed time.Duration) {
	switch g.phase {
	case PhaseFalling:
		g.fallAcc += elapsed
		step := g.rules.gravityStep(g.score.Level(g.rules))
		for g.fallAcc >= step && g.phase == PhaseFalling {
			g.fallAcc -= step
			if CanFall(g.piece, g.grid) {
				g.piece = g.piece.MovedBy(0, 1)
			} else if g.lockResets > g.rules.MaxLockResets {
				// the reset budget is overdrawn; this landing is final
				g.lockAndClear()
			} else {
				g.phase = PhaseLocking
				g.lockAcc = 0
			}
		}
	case PhaseLocking:
		g.lockAcc += elapsed
		if g.lockAcc >= g.rules.LockDelay {
			g.lockAndClear()
		}
	}
}

// lockAndClear commits the piece into the grid, scores the resulting line
// clears and spawns the successor. Line clearing and spawning are
// instantaneous: they complete within the same update tick, so the game
// never rests in those phases. Rows accumulate across locks so a tick
// that locks twice still reports every cleared row.
func (g *Game) lockAndClear() {
	cells := g.piece.Cells()
	g.grid.Place(cells[:], g.piece.Color())
	g.hasPiece = false
	g.pieces++

	g.phase = PhaseLineClearing
	ev := ClearFullRows(g.grid)
	g.lastEvent.Rows = append(g.lastEvent.Rows, ev.Rows...)
	g.score = g.score.AfterLock(ev.Lines(), g.rules)

	g.phase = PhaseSpawning
	g.spawn()
}

// spawn pops the next kind from the preview queue and places it at the
// spawn anchor. A spawn that does not fit ends the game: the stack has
// reached the top.
func (g *Game) spawn() {
	if len(g.queue) == 0 {
		panic("engine: empty preview queue at spawn")
	}
	kind := g.queue[0]
	copy(g.queue, g.queue[1:])
	g.queue[len(g.queue)-1] = g.bag.Next()

	p := SpawnPiece(kind, g.grid.Width())
	if !Fits(p, g.grid) {
		g.hasPiece = false
		g.phase = PhaseGameOver
		return
	}

	g.piece = p
	g.hasPiece = true
	g.phase = PhaseFalling
	g.fallAcc = 0
	g.lockAcc = 0
	g.lockResets = 0
}
