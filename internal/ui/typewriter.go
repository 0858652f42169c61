package ui

import "time"

// Typewriter types each word, holds it, deletes it, and moves to the next.
type Typewriter struct {
	Words       []string
	TypeDelay   time.Duration
	DeleteDelay time.Duration
	Hold        time.Duration

	idx      int
	n        int
	deleting bool
	wait     time.Duration
}

// NewTypewriter creates a typewriter with the page's default pacing.
func NewTypewriter(words []string) *Typewriter {
	return &Typewriter{
		Words:       words,
		TypeDelay:   90 * time.Millisecond,
		DeleteDelay: 45 * time.Millisecond,
		Hold:        1500 * time.Millisecond,
	}
}

// Step advances by dt, applying as many keystrokes as fit.
func (t *Typewriter) Step(dt time.Duration) {
	if len(t.Words) == 0 {
		return
	}
	t.wait -= dt
	for t.wait <= 0 {
		word := []rune(t.Words[t.idx])
		switch {
		case !t.deleting && t.n < len(word):
			t.n++
			t.wait += t.TypeDelay
		case !t.deleting:
			t.deleting = true
			t.wait += t.Hold
		case t.n > 0:
			t.n--
			t.wait += t.DeleteDelay
		default:
			t.deleting = false
			t.idx = (t.idx + 1) % len(t.Words)
			t.wait += t.TypeDelay
		}
		if t.TypeDelay <= 0 && t.DeleteDelay <= 0 && t.Hold <= 0 {
			return
		}
	}
}

// Text returns the visible part of the current word.
func (t *Typewriter) Text() string {
	if len(t.Words) == 0 {
		return ""
	}
	return string([]rune(t.Words[t.idx])[:t.n])
}
