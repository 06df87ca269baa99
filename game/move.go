package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MoveType discriminates the five move forms.
type MoveType int

const (
	MoveTake MoveType = iota
	MoveReserve
	MoveBuy
	MovePass
	MoveReveal // replay transcripts only
)

// Move is one parsed move line. NobleID zero means "not specified".
type Move struct {
	Player   int
	Type     MoveType
	Taken    TokenSet // TAKE only
	Returned TokenSet // TAKE and RESERVE overflow returns
	CardID   int      // RESERVE, BUY, REVEAL
	Payment  TokenSet // BUY with explicit USING clause
	AutoPay  bool     // BUY without USING: derive payment during validation
	NobleID  int      // BUY disambiguation between qualifying nobles
}

// ParseMove parses one whitespace-separated move line on behalf of the
// given player. The grammar is strict: every word must be a verb, a
// section keyword, a color, or a number where one is expected.
func ParseMove(line string, player int) (Move, error) {
	m := Move{Player: player}
	words := strings.Fields(line)
	if len(words) == 0 {
		return m, errors.New("Empty move string")
	}

	switch words[0] {
	case "TAKE":
		m.Type = MoveTake
		if err := parseTakeSections(words[1:], &m); err != nil {
			return m, err
		}

	case "RESERVE":
		m.Type = MoveReserve
		if len(words) < 2 {
			return m, errors.New("RESERVE missing card_id")
		}
		id, err := strconv.Atoi(words[1])
		if err != nil {
			return m, fmt.Errorf("Invalid card ID in RESERVE: %s", words[1])
		}
		m.CardID = id
		if err := parseReturnSection(words[2:], &m); err != nil {
			return m, err
		}

	case "BUY":
		m.Type = MoveBuy
		m.AutoPay = true
		if len(words) < 2 {
			return m, errors.New("BUY missing card_id")
		}
		id, err := strconv.Atoi(words[1])
		if err != nil {
			return m, fmt.Errorf("Malformed move parameter: %s", words[1])
		}
		m.CardID = id
		if err := parseBuyClauses(words[2:], &m); err != nil {
			return m, err
		}

	case "PASS":
		m.Type = MovePass
		if len(words) > 1 {
			return m, fmt.Errorf("Malformed move parameter: %s", words[1])
		}

	case "REVEAL":
		m.Type = MoveReveal
		if len(words) < 2 {
			return m, errors.New("REVEAL missing card_id")
		}
		id, err := strconv.Atoi(words[1])
		if err != nil {
			return m, fmt.Errorf("Invalid card ID in REVEAL: %s", words[1])
		}
		m.CardID = id

	default:
		return m, fmt.Errorf("Unknown move action: %s", words[0])
	}

	return m, nil
}

// parseTakeSections reads the taken colors up to an optional RETURN
// keyword, then the returned colors.
func parseTakeSections(words []string, m *Move) error {
	target := &m.Taken
	for _, w := range words {
		if w == "RETURN" && target == &m.Taken {
			target = &m.Returned
			continue
		}
		c, ok := ParseColor(w)
		if !ok {
			return fmt.Errorf("Malformed move parameter: %s", w)
		}
		target.Add(c, 1)
	}
	return nil
}

// parseReturnSection reads an optional trailing RETURN clause.
func parseReturnSection(words []string, m *Move) error {
	if len(words) == 0 {
		return nil
	}
	if words[0] != "RETURN" {
		return fmt.Errorf("Malformed move parameter: %s", words[0])
	}
	for _, w := range words[1:] {
		c, ok := ParseColor(w)
		if !ok {
			return fmt.Errorf("Malformed move parameter: %s", w)
		}
		m.Returned.Add(c, 1)
	}
	return nil
}

// parseBuyClauses reads the optional USING payment section followed by
// an optional NOBLE selection.
func parseBuyClauses(words []string, m *Move) error {
	i := 0
	if i < len(words) && words[i] == "USING" {
		m.AutoPay = false
		for i++; i < len(words) && words[i] != "NOBLE"; i++ {
			c, ok := ParseColor(words[i])
			if !ok {
				return fmt.Errorf("Malformed move parameter: %s", words[i])
			}
			m.Payment.Add(c, 1)
		}
	}
	if i < len(words) && words[i] == "NOBLE" {
		if i+1 >= len(words) {
			return fmt.Errorf("Malformed move parameter: %s", words[i])
		}
		id, err := strconv.Atoi(words[i+1])
		if err != nil || id <= 0 {
			return fmt.Errorf("Malformed move parameter: %s", words[i+1])
		}
		m.NobleID = id
		i += 2
	}
	if i < len(words) {
		return fmt.Errorf("Malformed move parameter: %s", words[i])
	}
	return nil
}

// String renders the move in canonical wire text. Payments are never
// emitted: a stringified BUY always means auto-pay.
func (m Move) String() string {
	var b strings.Builder
	switch m.Type {
	case MoveTake:
		b.WriteString("TAKE")
		writeColorWords(&b, m.Taken, false)
		writeReturnClause(&b, m.Returned)
	case MoveReserve:
		b.WriteString("RESERVE ")
		b.WriteString(strconv.Itoa(m.CardID))
		writeReturnClause(&b, m.Returned)
	case MoveBuy:
		b.WriteString("BUY ")
		b.WriteString(strconv.Itoa(m.CardID))
		if m.NobleID > 0 {
			b.WriteString(" NOBLE ")
			b.WriteString(strconv.Itoa(m.NobleID))
		}
	case MovePass:
		b.WriteString("PASS")
	case MoveReveal:
		b.WriteString("REVEAL ")
		b.WriteString(strconv.Itoa(m.CardID))
	}
	return b.String()
}

func writeReturnClause(b *strings.Builder, returned TokenSet) {
	if returned.IsZero() {
		return
	}
	b.WriteString(" RETURN")
	writeColorWords(b, returned, true)
}

func writeColorWords(b *strings.Builder, t TokenSet, withJoker bool) {
	for _, c := range Colors {
		for i := 0; i < t.Get(c); i++ {
			b.WriteString(" ")
			b.WriteString(string(c))
		}
	}
	if withJoker {
		for i := 0; i < t.Joker; i++ {
			b.WriteString(" joker")
		}
	}
}
