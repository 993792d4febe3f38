package skilltree

import "slices"

// History хранит покупки текущего забега; каждое открытие оверлея
// восстанавливает из неё одно и то же состояние блокировок. Очищается при выходе в меню.
type History struct {
	order []string
	set   map[string]struct{}
}

func NewHistory() *History {
	return &History{set: make(map[string]struct{})}
}

// Has сообщает, куплен ли узел в этом забеге.
func (h *History) Has(id string) bool {
	_, ok := h.set[id]
	return ok
}

// Purchased возвращает ID узлов в порядке покупки.
func (h *History) Purchased() []string {
	return slices.Clone(h.order)
}

// Len - число покупок.
func (h *History) Len() int {
	return len(h.order)
}

// Clear забывает все покупки.
func (h *History) Clear() {
	h.order = nil
	h.set = make(map[string]struct{})
}

func (h *History) record(id string) {
	if h.Has(id) {
		return
	}
	h.order = append(h.order, id)
	h.set[id] = struct{}{}
}
