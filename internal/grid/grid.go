package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"cupid_fragments/internal/style"
)

// Slots is the fixed number of grid slots a list is laid out against.
const Slots = 6

// Mode selects the unit Span answers in.
type Mode string

const (
	Static Mode = "static" // pixels
	Fluid  Mode = "fluid"  // percentage of the container
)

var ErrBadRatio = errors.New("grid: malformed ratio")

// Spanner converts an "<n> of <total>" ratio into a width token.
type Spanner interface {
	Span(ratio string, mode Mode) (string, error)
}

// Settings is the physical grid a static span is measured against.
type Settings struct {
	ColumnWidth int
	Gutter      int
}

func DefaultSettings() Settings { return Settings{ColumnWidth: 148, Gutter: 30} }

func (s Settings) Span(ratio string, mode Mode) (string, error) {
	n, total, err := parseRatio(ratio)
	if err != nil {
		return "", err
	}
	switch mode {
	case Static:
		return style.Px(n*s.ColumnWidth + (n-1)*s.Gutter), nil
	case Fluid:
		return style.Num(float64(n)/float64(total)*100) + "%", nil
	default:
		return "", fmt.Errorf("grid: unknown mode %q", mode)
	}
}

func parseRatio(ratio string) (int, int, error) {
	parts := strings.Fields(ratio)
	if len(parts) != 3 || parts[1] != "of" {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadRatio, ratio)
	}
	n, err1 := strconv.Atoi(parts[0])
	total, err2 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || n <= 0 || total <= 0 || n > total {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadRatio, ratio)
	}
	return n, total, nil
}

// ParseMode reads a configured mode; empty means Static.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", Static:
		return Static, nil
	case Fluid:
		return Fluid, nil
	default:
		return "", fmt.Errorf("grid: unknown mode %q", s)
	}
}

// Pin answers every span in mode m regardless of what the caller asks for.
func Pin(sp Spanner, m Mode) Spanner { return pinned{sp: sp, mode: m} }

type pinned struct {
	sp   Spanner
	mode Mode
}

func (p pinned) Span(ratio string, _ Mode) (string, error) { return p.sp.Span(ratio, p.mode) }
