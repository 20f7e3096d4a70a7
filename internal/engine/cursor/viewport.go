package cursor

// Viewport is the window of visible lines.
type Viewport struct {
	// Offset is the first visible row.
	Offset int
	// Height is the number of visible rows, at least 1.
	Height int
}

// NewViewport creates a viewport at the top of the document.
// Height is clamped to a minimum of 1.
func NewViewport(height int) Viewport {
	if height < 1 {
		height = 1
	}
	return Viewport{Height: height}
}

// Bottom returns the first row below the viewport.
func (v Viewport) Bottom() int {
	return v.Offset + v.Height
}

// Contains returns true if row is visible.
func (v Viewport) Contains(row int) bool {
	return row >= v.Offset && row < v.Bottom()
}

// Follow scrolls the minimum distance needed to make row visible.
func (v *Viewport) Follow(row int) {
	if v.Height < 1 {
		v.Height = 1
	}
	if row < v.Offset {
		v.Offset = row
	}
	if row >= v.Bottom() {
		v.Offset = row - v.Height + 1
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
}

// Resize changes the height and scrolls to keep row visible.
func (v *Viewport) Resize(height, row int) {
	if height < 1 {
		height = 1
	}
	v.Height = height
	v.Follow(row)
}
