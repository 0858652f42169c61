package ui

// FocusRing tracks which control of a form holds keyboard focus and cycles
// through them in tab order.
type FocusRing struct {
	Current  string   // ID of the focused control
	Order    []string // Tab order
	OnChange func(from, to string)
}

// Next moves focus to the following control, wrapping at the end.
func (f *FocusRing) Next() string { return f.step(1) }

// Prev moves focus to the preceding control, wrapping at the start.
func (f *FocusRing) Prev() string { return f.step(-1) }

// SetFocus focuses id. Returns false if id is not in the ring.
func (f *FocusRing) SetFocus(id string) bool {
	if f.index(id) < 0 {
		return false
	}
	f.move(id)
	return true
}

// IsLast reports whether the last control in tab order is focused.
func (f *FocusRing) IsLast() bool {
	return len(f.Order) > 0 && f.Current == f.Order[len(f.Order)-1]
}

func (f *FocusRing) step(delta int) string {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	i := f.index(f.Current)
	if i < 0 {
		i = 0
		if delta < 0 {
			i = n - 1
		}
	} else {
		i = ((i+delta)%n + n) % n
	}
	f.move(f.Order[i])
	return f.Current
}

func (f *FocusRing) index(id string) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}

func (f *FocusRing) move(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}
