package settlement

import (
	"strconv"
	"strings"
)

// Mode is the closed set of bet modes the engine can settle. Anything that
// does not parse is ModeUnknown and settles as a loss.
type Mode int

const (
	ModeUnknown Mode = iota
	ModeJodi
	ModeHarf
	ModeCrossing
	ModeOddEven
	ModeTeamToss
)

func (m Mode) String() string {
	switch m {
	case ModeJodi:
		return "jodi"
	case ModeHarf:
		return "harf"
	case ModeCrossing:
		return "crossing"
	case ModeOddEven:
		return "odd_even"
	case ModeTeamToss:
		return "toss"
	default:
		return "unknown"
	}
}

func ParseMode(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "jodi":
		return ModeJodi
	case "harf":
		return ModeHarf
	case "crossing":
		return ModeCrossing
	case "odd_even", "oddeven":
		return ModeOddEven
	case "toss", "team_a", "team_b":
		return ModeTeamToss
	default:
		return ModeUnknown
	}
}

// Wins reports whether a prediction beats the declared result under the
// given mode. Pure and deterministic; malformed predictions lose.
func Wins(mode Mode, prediction, result string) bool {
	prediction = strings.TrimSpace(prediction)
	result = strings.TrimSpace(result)

	switch mode {
	case ModeJodi:
		return winsJodi(prediction, result)
	case ModeHarf:
		return winsHarf(prediction, result)
	case ModeCrossing:
		return winsCrossing(prediction, result)
	case ModeOddEven:
		return winsOddEven(prediction, result)
	case ModeTeamToss:
		return winsTeamToss(prediction, result)
	default:
		return false
	}
}

func isTwoDigit(s string) bool {
	return len(s) == 2 && isDigit(s[0]) && isDigit(s[1])
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func winsJodi(prediction, result string) bool {
	return isTwoDigit(result) && prediction == result
}

// winsHarf matches a single digit against one or both positions of the
// result: "A5"/"L5" = leftmost digit is 5, "B5"/"R5" = rightmost digit is 5,
// a bare "5" = either position.
func winsHarf(prediction, result string) bool {
	if !isTwoDigit(result) {
		return false
	}

	p := strings.ToUpper(prediction)
	pos := byte(0)
	if len(p) == 2 {
		switch p[0] {
		case 'A', 'L':
			pos = 'L'
			p = p[1:]
		case 'B', 'R':
			pos = 'R'
			p = p[1:]
		}
	}
	if len(p) != 1 || !isDigit(p[0]) {
		return false
	}

	switch pos {
	case 'L':
		return result[0] == p[0]
	case 'R':
		return result[1] == p[0]
	default:
		return result[0] == p[0] || result[1] == p[0]
	}
}

// winsCrossing accepts either the exact result, or a delimited list of
// digits from which every ordered pair of two distinct digits is generated;
// the bet wins when the result is one of those pairs. "11" never wins a list
// bet because both digits of a generated pair must differ.
func winsCrossing(prediction, result string) bool {
	if !isTwoDigit(result) {
		return false
	}
	if prediction == result {
		return true
	}

	digits := crossingDigits(prediction)
	if len(digits) < 2 {
		return false
	}
	for i := range digits {
		for j := range digits {
			if i == j || digits[i] == digits[j] {
				continue
			}
			if result[0] == digits[i] && result[1] == digits[j] {
				return true
			}
		}
	}
	return false
}

// crossingDigits splits a crossing list on the delimiters seen in the wild
// (comma, space, x, *). Returns nil when any token is not a single digit.
func crossingDigits(prediction string) []byte {
	tokens := strings.FieldsFunc(prediction, func(r rune) bool {
		return r == ',' || r == ' ' || r == 'x' || r == 'X' || r == '*'
	})
	if len(tokens) == 0 {
		return nil
	}
	digits := make([]byte, 0, len(tokens))
	for _, t := range tokens {
		if len(t) != 1 || !isDigit(t[0]) {
			return nil
		}
		digits = append(digits, t[0])
	}
	return digits
}

func winsOddEven(prediction, result string) bool {
	n, err := strconv.Atoi(result)
	if err != nil {
		return false
	}
	parity := "even"
	if n%2 != 0 {
		parity = "odd"
	}
	return strings.ToLower(prediction) == parity
}

const (
	TeamA = "team_a"
	TeamB = "team_b"
)

func winsTeamToss(prediction, result string) bool {
	p := strings.ToLower(prediction)
	r := strings.ToLower(result)
	if p != TeamA && p != TeamB {
		return false
	}
	if r != TeamA && r != TeamB {
		return false
	}
	return p == r
}
