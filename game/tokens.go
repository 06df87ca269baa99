package game

// Color identifies a gem color. The joker is the wild gold token: it is
// never taken directly and never appears as a card bonus.
type Color string

const (
	Black Color = "black"
	Blue  Color = "blue"
	White Color = "white"
	Green Color = "green"
	Red   Color = "red"
	Joker Color = "joker"
)

// Colors lists the five real gem colors in canonical rules order. Move
// text, validation messages and return-combination enumeration all walk
// colors in this order.
var Colors = [5]Color{Black, Blue, White, Green, Red}

// AllColors is Colors plus the joker, joker last.
var AllColors = [6]Color{Black, Blue, White, Green, Red, Joker}

// TokenSet counts tokens per color. It doubles as a card-cost and a
// bonus record (joker always zero there). Value semantics throughout.
//
// The json tags serve the card/noble catalog files only; the wire format
// has its own encoding.
type TokenSet struct {
	Black int `json:"black,omitempty"`
	Blue  int `json:"blue,omitempty"`
	White int `json:"white,omitempty"`
	Green int `json:"green,omitempty"`
	Red   int `json:"red,omitempty"`
	Joker int `json:"joker,omitempty"`
}

// Get returns the count for c. Unknown colors read as zero.
func (t TokenSet) Get(c Color) int {
	switch c {
	case Black:
		return t.Black
	case Blue:
		return t.Blue
	case White:
		return t.White
	case Green:
		return t.Green
	case Red:
		return t.Red
	case Joker:
		return t.Joker
	}
	return 0
}

// Add adds n (may be negative) to the count for c.
func (t *TokenSet) Add(c Color, n int) {
	switch c {
	case Black:
		t.Black += n
	case Blue:
		t.Blue += n
	case White:
		t.White += n
	case Green:
		t.Green += n
	case Red:
		t.Red += n
	case Joker:
		t.Joker += n
	}
}

// Total counts every token including jokers.
func (t TokenSet) Total() int {
	return t.Black + t.Blue + t.White + t.Green + t.Red + t.Joker
}

// IsZero reports whether every count is zero.
func (t TokenSet) IsZero() bool {
	return t == TokenSet{}
}

// Plus returns t + o per color.
func (t TokenSet) Plus(o TokenSet) TokenSet {
	return TokenSet{
		Black: t.Black + o.Black,
		Blue:  t.Blue + o.Blue,
		White: t.White + o.White,
		Green: t.Green + o.Green,
		Red:   t.Red + o.Red,
		Joker: t.Joker + o.Joker,
	}
}

// Minus returns t - o per color. Counts may go negative; callers that
// care validate first.
func (t TokenSet) Minus(o TokenSet) TokenSet {
	return TokenSet{
		Black: t.Black - o.Black,
		Blue:  t.Blue - o.Blue,
		White: t.White - o.White,
		Green: t.Green - o.Green,
		Red:   t.Red - o.Red,
		Joker: t.Joker - o.Joker,
	}
}

// ParseColor maps a lowercase color word to its Color. ok is false for
// anything that is not one of the six token colors.
func ParseColor(word string) (Color, bool) {
	switch Color(word) {
	case Black, Blue, White, Green, Red, Joker:
		return Color(word), true
	}
	return "", false
}
