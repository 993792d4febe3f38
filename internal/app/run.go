// internal/app/run.go
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"go-tank-shmup/internal/config"
	"go-tank-shmup/internal/defs"
	"go-tank-shmup/internal/entity"
	"go-tank-shmup/internal/event"
	"go-tank-shmup/internal/logging"
	"go-tank-shmup/internal/skilltree"
	"go-tank-shmup/internal/storage"
	"go-tank-shmup/internal/system"
	"go-tank-shmup/internal/utils"
	vec "go-tank-shmup/pkg/utils"
)

// ErrInvalidTransition возвращается, если операция недопустима в текущей фазе.
var ErrInvalidTransition = errors.New("invalid phase transition")

// Phase - фаза забега.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseMenu
	PhasePlaying
	PhaseSkillTree
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseSkillTree:
		return "skill_tree"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Input - ввод одного тика. ToggleSkillTree, Confirm и Back срабатывают по фронту
// (дребезг уже отфильтрован), Fire - пока кнопка зажата.
type Input struct {
	Fire            bool
	AimX, AimY      float64
	ToggleSkillTree bool
	Confirm         bool
	Back            bool
}

// Options - зависимости забега.
type Options struct {
	Tuning   config.Tuning
	Store    storage.HighScoreStore
	Upgrades []defs.UpgradeDefinition // nil - встроенное дерево
	Events   *event.Dispatcher        // nil - новый диспетчер
}

// Summary - итог последнего завершённого забега.
type Summary struct {
	RunID        string
	Score        uint32
	HighScore    uint32
	NewHighScore bool
	Duration     float64
	Kills        int
}

// Run - машина состояний забега. Владеет контекстом симуляции и вызывает системы
// в фиксированном порядке; вызывается только из одного потока тика.
type Run struct {
	ID    string
	phase Phase

	ctx      *system.Context
	store    storage.HighScoreStore
	upgrades []defs.UpgradeDefinition
	history  *skilltree.History
	tree     *skilltree.Tree

	weapon    *system.WeaponSystem
	enemyAI   *system.EnemyAISystem
	status    *system.StatusEffectSystem
	melee     *system.MeleeSystem
	movement  *system.MovementSystem
	visual    *system.VisualEffectSystem
	overlap   *system.OverlapSystem
	collision *system.CollisionSystem
	death     *system.DeathSystem
	spawn     *system.SpawnSystem

	highScore      uint32
	highScoreKnown bool
	fatal          error // Сбой хранилища при GameOver; после него забег не тикает
	elapsed        float64
	kills          int
	summary        Summary
}

// NewRun создает забег в фазе Loading.
func NewRun(opts Options) (*Run, error) {
	if opts.Store == nil {
		return nil, errors.New("high score store is required")
	}
	if opts.Events == nil {
		opts.Events = event.NewDispatcher()
	}
	if opts.Upgrades == nil {
		opts.Upgrades = defs.DefaultUpgrades()
	}
	if err := opts.Tuning.Validate(); err != nil {
		return nil, err
	}

	history := skilltree.NewHistory()
	tree, err := skilltree.New(opts.Upgrades, history)
	if err != nil {
		return nil, fmt.Errorf("invalid upgrade tree: %w", err)
	}

	ctx := system.NewContext(opts.Tuning, opts.Events, utils.NewPRNGService(opts.Tuning.Seed))
	r := &Run{
		phase:     PhaseLoading,
		ctx:       ctx,
		store:     opts.Store,
		upgrades:  opts.Upgrades,
		history:   history,
		tree:      tree,
		weapon:    system.NewWeaponSystem(ctx),
		enemyAI:   system.NewEnemyAISystem(ctx),
		status:    system.NewStatusEffectSystem(ctx),
		melee:     system.NewMeleeSystem(ctx),
		movement:  system.NewMovementSystem(ctx),
		visual:    system.NewVisualEffectSystem(ctx.ECS),
		overlap:   system.NewOverlapSystem(ctx.ECS),
		collision: system.NewCollisionSystem(ctx),
		death:     system.NewDeathSystem(ctx),
		spawn:     system.NewSpawnSystem(ctx),
	}
	opts.Events.Subscribe(event.EnemyKilled, r)
	logging.LogDebug("run created with seed %d", ctx.Rng.Seed())
	return r, nil
}

// OnEvent считает убийства для итогов забега.
func (r *Run) OnEvent(e event.Event) {
	if e.Type == event.EnemyKilled {
		r.kills++
	}
}

func (r *Run) Phase() Phase { return r.phase }
func (r *Run) Context() *system.Context { return r.ctx }
func (r *Run) ECS() *entity.ECS { return r.ctx.ECS }
func (r *Run) Events() *event.Dispatcher { return r.ctx.Events }
func (r *Run) Summary() Summary { return r.summary }
func (r *Run) HighScore() (uint32, bool) { return r.highScore, r.highScoreKnown }
func (r *Run) Tree() *skilltree.Tree { return r.tree }
func (r *Run) History() *skilltree.History { return r.history }
func (r *Run) Upgrades() []defs.UpgradeDefinition { return r.upgrades }

// Err возвращает сбой хранилища, остановивший забег, или nil.
func (r *Run) Err() error { return r.fatal }

func (r *Run) setPhase(p Phase) {
	from := r.phase
	r.phase = p
	r.ctx.Events.Dispatch(event.Event{
		Type: event.PhaseChanged,
		Data: event.PhaseChangedData{From: from.String(), To: p.String()},
	})
}

// FinishLoading: Loading -> Menu. Читает рекорд для экрана меню.
func (r *Run) FinishLoading(ctx context.Context) error {
	if r.phase != PhaseLoading {
		return fmt.Errorf("%w: finish loading from %s", ErrInvalidTransition, r.phase)
	}
	score, found, err := r.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load high score: %w", err)
	}
	r.highScore, r.highScoreKnown = score, found
	r.setPhase(PhaseMenu)
	return nil
}

// StartRun: Menu -> Playing. Сбрасывает прогресс и создаёт игрока.
func (r *Run) StartRun() error {
	if r.phase != PhaseMenu {
		return fmt.Errorf("%w: start run from %s", ErrInvalidTransition, r.phase)
	}
	r.resetProgress()
	r.ID = uuid.NewString()
	system.SpawnPlayer(r.ctx)

	r.setPhase(PhasePlaying)
	r.ctx.Events.Dispatch(event.Event{Type: event.RunStarted, Data: event.RunStartedData{RunID: r.ID}})
	return nil
}

// resetProgress возвращает валюту, оружие, сложность и таймеры к начальным значениям.
func (r *Run) resetProgress() {
	r.ctx.ECS.DestroyKinds(entity.KindPlayer, entity.KindEnemy, entity.KindBullet,
		entity.KindCurrencyPickup, entity.KindOverlay)
	clear(r.ctx.ECS.MotionSnapshots)
	r.ctx.ResetProgress()
	r.spawn.Reset()
	r.weapon.Reset()
	r.overlap.Reset()
	r.elapsed = 0
	r.kills = 0
}

// OpenSkillTree: Playing -> SkillTree. Замораживает все тела, кроме игрока,
// и перестраивает дерево из истории покупок.
func (r *Run) OpenSkillTree() error {
	if r.fatal != nil {
		return r.fatal
	}
	if r.phase != PhasePlaying {
		return fmt.Errorf("%w: open skill tree from %s", ErrInvalidTransition, r.phase)
	}
	tree, err := skilltree.New(r.upgrades, r.history)
	if err != nil {
		return fmt.Errorf("failed to rebuild skill tree: %w", err)
	}
	r.tree = tree

	system.FreezeMotion(r.ctx.ECS)
	r.spawn.Pause()
	r.spawnOverlay()
	r.setPhase(PhaseSkillTree)
	return nil
}

// CloseSkillTree: SkillTree -> Playing.
func (r *Run) CloseSkillTree() error {
	if r.phase != PhaseSkillTree {
		return fmt.Errorf("%w: close skill tree from %s", ErrInvalidTransition, r.phase)
	}
	r.ctx.ECS.DestroyKinds(entity.KindOverlay)
	system.RestoreMotion(r.ctx.ECS)
	r.spawn.Resume()
	r.setPhase(PhasePlaying)
	return nil
}

// Purchase покупает узел дерева. Возможна только при открытом оверлее.
func (r *Run) Purchase(nodeID string) error {
	if r.fatal != nil {
		return r.fatal
	}
	if r.phase != PhaseSkillTree {
		return fmt.Errorf("%w: purchase outside skill tree", ErrInvalidTransition)
	}
	if err := r.tree.Purchase(nodeID, &r.ctx.Currency, &r.ctx.Weapon); err != nil {
		return err
	}
	r.refreshOverlay()
	cost, _ := r.tree.Cost(nodeID)
	r.ctx.Events.Dispatch(event.Event{
		Type: event.UpgradePurchased,
		Data: event.UpgradePurchasedData{NodeID: nodeID, Cost: cost, Balance: r.ctx.Currency},
	})
	return nil
}

// Update выполняет один тик. Ошибка возвращается только при сбое хранилища рекорда;
// после такого сбоя Update больше ничего не делает и возвращает ту же ошибку.
func (r *Run) Update(ctx context.Context, deltaTime float64, in Input) error {
	if r.fatal != nil {
		return r.fatal
	}
	if deltaTime < 0 {
		deltaTime = 0
	}
	switch r.phase {
	case PhaseLoading:
		return r.FinishLoading(ctx)
	case PhaseMenu:
		if in.Confirm {
			return r.StartRun()
		}
	case PhaseSkillTree:
		r.visual.Update(deltaTime)
		if in.ToggleSkillTree || in.Back {
			return r.CloseSkillTree()
		}
	case PhaseGameOver:
		if in.Confirm || in.Back {
			return r.ReturnToMenu()
		}
	case PhasePlaying:
		if in.ToggleSkillTree {
			return r.OpenSkillTree()
		}
		return r.tick(ctx, deltaTime, in)
	}
	return nil
}

func (r *Run) tick(ctx context.Context, deltaTime float64, in Input) error {
	r.elapsed += deltaTime
	r.ctx.ECS.GameTime += deltaTime

	r.weapon.Aim(vec.V(in.AimX, in.AimY))
	r.weapon.Update(deltaTime, in.Fire)
	r.enemyAI.Update(deltaTime)
	r.status.Update(deltaTime)
	r.melee.Update(deltaTime)
	r.movement.Update(deltaTime)
	r.visual.Update(deltaTime)

	// Все пары тика собираются до начала разрешения
	pairs := r.overlap.Detect()
	deferred := r.collision.Resolve(pairs)
	r.overlap.Release(deferred)
	r.death.Sweep()

	r.spawn.Update(deltaTime)

	if r.playerDead() {
		return r.EnterGameOver(ctx)
	}
	return nil
}

func (r *Run) playerDead() bool {
	id, ok := r.ctx.ECS.PlayerID()
	if !ok {
		return false
	}
	h, ok := r.ctx.ECS.Health(id)
	return ok && h.IsDead()
}

// EnterGameOver: Playing -> GameOver. Записывает рекорд, если он побит или ещё
// не сохранялся. Ошибка хранилища возвращается вызывающему, фаза не меняется,
// а забег останавливается: повторных попыток записи нет.
func (r *Run) EnterGameOver(ctx context.Context) error {
	if r.fatal != nil {
		return r.fatal
	}
	if r.phase != PhasePlaying {
		return fmt.Errorf("%w: game over from %s", ErrInvalidTransition, r.phase)
	}
	score := r.ctx.Currency

	stored, found, err := r.store.Load(ctx)
	if err != nil {
		logging.LogError("run %s: failed to load high score: %v", r.ID, err)
		r.fatal = fmt.Errorf("failed to load high score: %w", err)
		return r.fatal
	}
	best := stored
	improved := !found || score > stored
	if improved {
		if err := r.store.Save(ctx, score); err != nil {
			logging.LogError("run %s: failed to save high score: %v", r.ID, err)
			r.fatal = fmt.Errorf("failed to save high score: %w", err)
			return r.fatal
		}
		best = score
		r.ctx.Events.Dispatch(event.Event{
			Type: event.HighScoreUpdated,
			Data: event.HighScoreUpdatedData{Previous: stored, Current: score},
		})
	}
	r.highScore, r.highScoreKnown = best, true

	r.ctx.ECS.DestroyKinds(entity.KindEnemy, entity.KindBullet, entity.KindCurrencyPickup,
		entity.KindPlayer, entity.KindOverlay)
	clear(r.ctx.ECS.MotionSnapshots)

	r.summary = Summary{
		RunID:        r.ID,
		Score:        score,
		HighScore:    best,
		NewHighScore: improved,
		Duration:     r.elapsed,
		Kills:        r.kills,
	}
	r.setPhase(PhaseGameOver)
	r.ctx.Events.Dispatch(event.Event{
		Type: event.RunEnded,
		Data: event.RunEndedData{RunID: r.ID, Score: score, HighScore: best, Duration: r.elapsed},
	})
	return nil
}

// ReturnToMenu: GameOver -> Menu. Полный сброс, включая историю покупок.
func (r *Run) ReturnToMenu() error {
	if r.phase != PhaseGameOver {
		return fmt.Errorf("%w: return to menu from %s", ErrInvalidTransition, r.phase)
	}
	r.resetProgress()
	r.history.Clear()
	tree, err := skilltree.New(r.upgrades, r.history)
	if err != nil {
		return fmt.Errorf("failed to rebuild skill tree: %w", err)
	}
	r.tree = tree
	r.ID = ""
	r.setPhase(PhaseMenu)
	return nil
}
