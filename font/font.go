package font

import (
	"sync"

	"gioui.org/font"
	"gioui.org/font/gofont"
)

var (
	once       sync.Once
	collection []font.FontFace
)

// Collection returns the fonts used by all windows. The returned slice must not be modified.
func Collection() []font.FontFace {
	once.Do(func() {
		c := gofont.Collection()
		n := len(c)
		collection = c[:n:n]
	})
	return collection
}
