package block

// Layout addresses a grid as square blocks numbered row-major,
// b = row*Cols + col.
type Layout struct {
	width, height int // Grid dimensions
	size          int // Block edge length

	cols, rows int // Number of whole blocks per row and per column
	blockArea  int // size * size
}

func NewLayout(width, height, size int) Layout {
	var l = Layout{
		width:  width,
		height: height,
		size:   size,
	}
	if size > 0 {
		l.cols, l.rows = width/size, height/size
		l.blockArea = size * size
	}
	return l
}

func (l Layout) Cols() int { return l.cols }

func (l Layout) Rows() int { return l.rows }

func (l Layout) Total() int { return l.cols * l.rows }

func (l Layout) Size() int { return l.size }

func (l Layout) BlockArea() int { return l.blockArea }

// Aligned reports whether the grid is covered by whole blocks with no margin.
func (l Layout) Aligned() bool {
	return l.size > 0 && l.width%l.size == 0 && l.height%l.size == 0
}

// Origin returns the top-left pixel of block id.
func (l Layout) Origin(id int) (x, y int) {
	return (id % l.cols) * l.size, (id / l.cols) * l.size
}

// Load copies block id of g into dst, row-major. dst must hold BlockArea values.
func (l Layout) Load(g Grid, id int, dst []float64) {
	x0, y0 := l.Origin(id)
	for by := range l.size {
		start := (y0+by)*g.Width + x0
		_ = copy(dst[by*l.size:(by+1)*l.size:(by+1)*l.size], g.Pix[start:start+l.size:start+l.size])
	}
}

// Store writes src into block id of g.
func (l Layout) Store(g Grid, id int, src []float64) {
	x0, y0 := l.Origin(id)
	for by := range l.size {
		start := (y0+by)*g.Width + x0
		_ = copy(g.Pix[start:start+l.size:start+l.size], src[by*l.size:(by+1)*l.size:(by+1)*l.size])
	}
}
