package logic

// ListCursor tracks the highlighted row and the first visible row of a list
type ListCursor struct {
	Index  int
	Offset int
}

// Move shifts the cursor by delta rows, clamped to [0, total-1]
func (c *ListCursor) Move(delta, total, visible int) {
	c.Index += delta
	c.Clamp(total, visible)
}

// PageUp moves one viewport up
func (c *ListCursor) PageUp(total, visible int) {
	c.Move(-pageSize(visible), total, visible)
}

// PageDown moves one viewport down
func (c *ListCursor) PageDown(total, visible int) {
	c.Move(pageSize(visible), total, visible)
}

// Home jumps to the first row
func (c *ListCursor) Home(total, visible int) {
	c.Index = 0
	c.Clamp(total, visible)
}

// End jumps to the last row
func (c *ListCursor) End(total, visible int) {
	c.Index = total - 1
	c.Clamp(total, visible)
}

// Reset puts the cursor back on the first row
func (c *ListCursor) Reset() {
	c.Index = 0
	c.Offset = 0
}

// Clamp keeps the cursor inside the list and the viewport around the cursor
func (c *ListCursor) Clamp(total, visible int) {
	if total <= 0 {
		c.Reset()
		return
	}
	if c.Index >= total {
		c.Index = total - 1
	}
	if c.Index < 0 {
		c.Index = 0
	}
	if visible <= 0 {
		c.Offset = c.Index
		return
	}

	if c.Index < c.Offset {
		c.Offset = c.Index
	}
	if c.Index >= c.Offset+visible {
		c.Offset = c.Index - visible + 1
	}

	maxOffset := total - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if c.Offset > maxOffset {
		c.Offset = maxOffset
	}
	if c.Offset < 0 {
		c.Offset = 0
	}
}

// Window returns the half-open range of rows currently on screen
func (c ListCursor) Window(total, visible int) (start, end int) {
	start = c.Offset
	if start > total {
		start = total
	}
	end = start + visible
	if end > total {
		end = total
	}
	return start, end
}

// Scroll is a viewport over text with no highlighted row
type Scroll struct {
	Offset int
}

// By scrolls delta lines, clamped to [0, max(0, total-visible)]
func (s *Scroll) By(delta, total, visible int) {
	s.Offset += delta
	s.Clamp(total, visible)
}

// Top scrolls to the first line
func (s *Scroll) Top() {
	s.Offset = 0
}

// Bottom scrolls so the last line is on screen
func (s *Scroll) Bottom(total, visible int) {
	s.Offset = total
	s.Clamp(total, visible)
}

// Clamp bounds the offset for the given sizes
func (s *Scroll) Clamp(total, visible int) {
	maxOffset := total - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.Offset > maxOffset {
		s.Offset = maxOffset
	}
	if s.Offset < 0 {
		s.Offset = 0
	}
}

func pageSize(visible int) int {
	if visible < 1 {
		return 1
	}
	return visible
}
