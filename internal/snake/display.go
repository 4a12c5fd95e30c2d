package snake

import "image/color"

// Display buffer cell values.
const (
	CellEmpty uint8 = iota
	CellBody
	CellHead
	CellFood
)

var snakePalette = []color.RGBA{
	CellEmpty: {R: 16, G: 18, B: 24, A: 255},
	CellBody:  {R: 70, G: 180, B: 90, A: 255},
	CellHead:  {R: 170, G: 240, B: 120, A: 255},
	CellFood:  {R: 230, G: 70, B: 60, A: 255},
}

// Palette exposes the color palette used for rendering the display buffer.
func (s *Sim) Palette() []color.RGBA {
	return snakePalette
}

// paint redraws the display buffer from the game state. Food is painted
// first so a segment covering it wins.
func (s *Sim) paint() {
	s.display.Clear()
	food := s.game.Food()
	s.display.Set(food.X, food.Y, CellFood)
	for i, p := range s.game.Body() {
		v := CellBody
		if i == 0 {
			v = CellHead
		}
		s.display.Set(p.X, p.Y, v)
	}
}
