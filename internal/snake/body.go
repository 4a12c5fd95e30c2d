package snake

// body is a fixed-capacity ring deque of segments. Index 0 is the head.
type body struct {
	buf   []Position
	start int
	n     int
}

func newBody(capacity int) body {
	if capacity < 1 {
		capacity = 1
	}
	return body{buf: make([]Position, capacity)}
}

func (b *body) len() int { return b.n }

// at returns segment i counted from the head.
func (b *body) at(i int) Position {
	return b.buf[(b.start+i)%len(b.buf)]
}

func (b *body) head() Position { return b.at(0) }

func (b *body) tail() Position { return b.at(b.n - 1) }

// pushFront prepends p. The body never outgrows the board, so capacity is
// sized to width*height and a full buffer is a programming error.
func (b *body) pushFront(p Position) {
	if b.n == len(b.buf) {
		panic("snake: body overflow")
	}
	b.start = (b.start - 1 + len(b.buf)) % len(b.buf)
	b.buf[b.start] = p
	b.n++
}

func (b *body) popBack() Position {
	p := b.tail()
	b.n--
	return p
}

// positions copies the segments out, head first.
func (b *body) positions() []Position {
	out := make([]Position, b.n)
	for i := range out {
		out[i] = b.at(i)
	}
	return out
}
