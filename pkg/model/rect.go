package model

// Point is a position in screen coordinates.
type Point struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// Rect is an element's box in its parent's coordinate space.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// RectFromArray converts wire-format [x, y, w, h] bounds.
func RectFromArray(b [4]int) Rect {
	return Rect{X: b[0], Y: b[1], Width: b[2], Height: b[3]}
}

// Array converts back to wire-format [x, y, w, h].
func (r Rect) Array() [4]int {
	return [4]int{r.X, r.Y, r.Width, r.Height}
}
