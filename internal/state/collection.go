package state

import "log"

// Collection holds the finished arrows in the order they were drawn.
type Collection struct {
	arrows []Arrow
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{arrows: make([]Arrow, 0)}
}

// Add appends a finished arrow.
func (c *Collection) Add(a Arrow) {
	c.arrows = append(c.arrows, a)
	log.Printf("[BOARD] Arrow added: %s (%d points)", a.ID, len(a.Points))
}

// RemoveLast removes the most recently added arrow and returns it. On an
// empty collection it does nothing and reports false.
func (c *Collection) RemoveLast() (Arrow, bool) {
	if len(c.arrows) == 0 {
		return Arrow{}, false
	}
	last := c.arrows[len(c.arrows)-1]
	c.arrows = c.arrows[:len(c.arrows)-1]
	log.Printf("[BOARD] Arrow removed: %s", last.ID)
	return last, true
}

// Clear removes every arrow and returns how many there were.
func (c *Collection) Clear() int {
	n := len(c.arrows)
	c.arrows = make([]Arrow, 0)
	log.Printf("[BOARD] Cleared %d arrows", n)
	return n
}

// Len returns the number of arrows.
func (c *Collection) Len() int {
	return len(c.arrows)
}

// All returns a copy of the arrows in drawing order.
func (c *Collection) All() []Arrow {
	arrows := make([]Arrow, 0, len(c.arrows))
	for _, a := range c.arrows {
		arrows = append(arrows, a.Clone())
	}
	return arrows
}
