package game

const (
	left  = -1
	right = 1
)

// Cycler walks a fixed ring of player ids in the current play direction.
type Cycler struct {
	elements  []int64
	current   int
	direction int
}

func NewCycler(elements []int64) *Cycler {
	return &Cycler{
		elements:  elements,
		current:   len(elements) - 1,
		direction: right,
	}
}

func (c *Cycler) Current() int64 {
	return c.elements[c.current]
}

func (c *Cycler) Direction() int {
	return c.direction
}

func (c *Cycler) ForEach(function func(int64)) {
	for _, element := range c.elements {
		function(element)
	}
}

func (c *Cycler) Next() int64 {
	elementCount := len(c.elements)
	c.current = (c.current + c.direction + elementCount) % elementCount
	return c.elements[c.current]
}

func (c *Cycler) Reverse() {
	switch c.direction {
	case right:
		c.direction = left
	case left:
		c.direction = right
	}
}
