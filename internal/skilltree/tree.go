// Package skilltree реализует дерево улучшений одного забега: небольшой DAG узлов,
// покупка которых ограничена валютой, предшественниками и взаимоисключающими группами.
package skilltree

import (
	"errors"
	"fmt"

	"go-tank-shmup/internal/component"
	"go-tank-shmup/internal/defs"
)

var (
	ErrNotFound          = errors.New("upgrade not found")
	ErrAlreadyPurchased  = errors.New("upgrade already purchased")
	ErrLocked            = errors.New("upgrade locked")
	ErrInsufficientFunds = errors.New("not enough currency")
)

// Status - состояние узла, как его показывает оверлей.
type Status int

const (
	StatusAvailable Status = iota
	StatusLocked
	StatusPurchased
)

func (s Status) String() string {
	switch s {
	case StatusAvailable:
		return "available"
	case StatusLocked:
		return "locked"
	case StatusPurchased:
		return "purchased"
	default:
		return "unknown"
	}
}

type node struct {
	def    defs.UpgradeDefinition
	effect Effect
	status Status
}

// NodeView - копия узла только для чтения, для UI.
type NodeView struct {
	ID       string
	Title    string
	Branch   string
	Group    string
	Cost     uint32
	Requires []string
	Status   Status
}

// Tree - снимок блокировок DAG улучшений на одно открытие оверлея.
// Таблицы групп и зависимостей строятся один раз в New.
type Tree struct {
	nodes      map[string]*node
	order      []string
	groups     map[string][]string // группа -> ID узлов
	dependents map[string][]string // ID узла -> узлы, которые его требуют
	history    *History
}

// New проверяет определения, компилирует эффекты и выводит блокировки
// из истории покупок. Повторная сборка по той же истории даёт тот же снимок.
func New(upgrades []defs.UpgradeDefinition, history *History) (*Tree, error) {
	if history == nil {
		history = NewHistory()
	}
	t := &Tree{
		nodes:      make(map[string]*node, len(upgrades)),
		groups:     make(map[string][]string),
		dependents: make(map[string][]string),
		history:    history,
	}

	for _, def := range upgrades {
		if def.ID == "" {
			return nil, errors.New("upgrade with empty id")
		}
		if _, dup := t.nodes[def.ID]; dup {
			return nil, fmt.Errorf("duplicate upgrade id %q", def.ID)
		}
		if def.Cost == 0 {
			return nil, fmt.Errorf("upgrade %q: cost must be positive", def.ID)
		}
		effect, err := compileEffects(def.Effects)
		if err != nil {
			return nil, fmt.Errorf("upgrade %q: %w", def.ID, err)
		}
		t.nodes[def.ID] = &node{def: def, effect: effect}
		t.order = append(t.order, def.ID)
		if def.Group != "" {
			t.groups[def.Group] = append(t.groups[def.Group], def.ID)
		}
	}

	for _, id := range t.order {
		for _, req := range t.nodes[id].def.Requires {
			if _, ok := t.nodes[req]; !ok {
				return nil, fmt.Errorf("upgrade %q requires unknown %q", id, req)
			}
			t.dependents[req] = append(t.dependents[req], id)
		}
	}
	if err := t.checkAcyclic(); err != nil {
		return nil, err
	}

	for _, id := range history.Purchased() {
		if _, ok := t.nodes[id]; !ok {
			return nil, fmt.Errorf("history references unknown upgrade %q", id)
		}
	}
	for _, id := range t.order {
		t.nodes[id].status = t.deriveStatus(id)
	}
	return t, nil
}

func (t *Tree) checkAcyclic() error {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(t.nodes))
	var visit func(id string) error
	visit = func(id string) error {
		switch state[id] {
		case visiting:
			return fmt.Errorf("upgrade dependency cycle through %q", id)
		case done:
			return nil
		}
		state[id] = visiting
		for _, req := range t.nodes[id].def.Requires {
			if err := visit(req); err != nil {
				return err
			}
		}
		state[id] = done
		return nil
	}
	for _, id := range t.order {
		if err := visit(id); err != nil {
			return err
		}
	}
	return nil
}

// deriveStatus вычисляет статус узла только по истории покупок.
func (t *Tree) deriveStatus(id string) Status {
	n := t.nodes[id]
	if t.history.Has(id) {
		return StatusPurchased
	}
	if n.def.Group != "" {
		for _, sibling := range t.groups[n.def.Group] {
			if sibling != id && t.history.Has(sibling) {
				return StatusLocked
			}
		}
	}
	for _, req := range n.def.Requires {
		if !t.history.Has(req) {
			return StatusLocked
		}
	}
	return StatusAvailable
}

// Purchase покупает узел. При ошибке ничего не меняется. При успехе средства
// уменьшаются на цену, эффект применяется к оружию, а остальные узлы группы
// блокируются независимо от того, хватает ли на них средств.
func (t *Tree) Purchase(id string, funds *uint32, weapon *component.WeaponState) error {
	n, ok := t.nodes[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	switch n.status {
	case StatusPurchased:
		return fmt.Errorf("%w: %q", ErrAlreadyPurchased, id)
	case StatusLocked:
		return fmt.Errorf("%w: %q", ErrLocked, id)
	}
	if *funds < n.def.Cost {
		return fmt.Errorf("%w: %q costs %d, have %d", ErrInsufficientFunds, id, n.def.Cost, *funds)
	}

	*funds -= n.def.Cost
	*weapon = n.effect(*weapon)
	n.status = StatusPurchased
	t.history.record(id)

	if n.def.Group != "" {
		for _, sibling := range t.groups[n.def.Group] {
			if sibling != id {
				t.nodes[sibling].status = StatusLocked
			}
		}
	}
	for _, dep := range t.dependents[id] {
		if t.nodes[dep].status != StatusPurchased {
			t.nodes[dep].status = t.deriveStatus(dep)
		}
	}
	return nil
}

// Status возвращает текущий статус узла.
func (t *Tree) Status(id string) (Status, bool) {
	n, ok := t.nodes[id]
	if !ok {
		return StatusLocked, false
	}
	return n.status, true
}

// Cost возвращает цену узла.
func (t *Tree) Cost(id string) (uint32, bool) {
	n, ok := t.nodes[id]
	if !ok {
		return 0, false
	}
	return n.def.Cost, true
}

// Siblings возвращает остальных членов группы узла.
func (t *Tree) Siblings(id string) []string {
	n, ok := t.nodes[id]
	if !ok || n.def.Group == "" {
		return nil
	}
	var out []string
	for _, s := range t.groups[n.def.Group] {
		if s != id {
			out = append(out, s)
		}
	}
	return out
}

// Nodes возвращает все узлы в порядке определения.
func (t *Tree) Nodes() []NodeView {
	views := make([]NodeView, 0, len(t.order))
	for _, id := range t.order {
		n := t.nodes[id]
		views = append(views, NodeView{
			ID:       n.def.ID,
			Title:    n.def.Title,
			Branch:   n.def.Branch,
			Group:    n.def.Group,
			Cost:     n.def.Cost,
			Requires: append([]string(nil), n.def.Requires...),
			Status:   n.status,
		})
	}
	return views
}

// Branches группирует узлы по веткам в порядке первого появления.
func (t *Tree) Branches() (names []string, columns map[string][]NodeView) {
	columns = make(map[string][]NodeView)
	for _, v := range t.Nodes() {
		if _, seen := columns[v.Branch]; !seen {
			names = append(names, v.Branch)
		}
		columns[v.Branch] = append(columns[v.Branch], v)
	}
	return names, columns
}
