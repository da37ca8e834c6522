package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/colormine/internal/colour"
)

// centerValue is a pflag.Value for the wheel centre mode.
type centerValue struct {
	mode colour.CenterMode
}

var _ pflag.Value = (*centerValue)(nil)

func (c *centerValue) String() string { return c.mode.String() }

func (c *centerValue) Set(s string) error {
	mode, err := colour.ParseCenterMode(s)
	if err != nil {
		return err
	}
	c.mode = mode
	return nil
}

func (c *centerValue) Type() string { return "white|black" }

// pointValue is a pflag.Value holding an "x,y" pair of floats.
type pointValue struct {
	X, Y float64
	set  bool
}

var _ pflag.Value = (*pointValue)(nil)

func (p *pointValue) String() string {
	if !p.set {
		return ""
	}
	return strconv.FormatFloat(p.X, 'g', -1, 64) + "," + strconv.FormatFloat(p.Y, 'g', -1, 64)
}

func (p *pointValue) Set(s string) error {
	x, y, err := parsePair(s)
	if err != nil {
		return err
	}
	p.X, p.Y, p.set = x, y, true
	return nil
}

func (p *pointValue) Type() string { return "x,y" }

func parsePair(s string) (x, y float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected x,y but got %q", s)
	}
	if x, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64); err != nil {
		return 0, 0, fmt.Errorf("invalid x in %q", s)
	}
	if y, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err != nil {
		return 0, 0, fmt.Errorf("invalid y in %q", s)
	}
	return x, y, nil
}

// sizeFlag returns the --size flag value if set, or the configured size.
func (a *app) sizeFlag(flags *pflag.FlagSet) (int, error) {
	if !flags.Changed("size") {
		return a.config.Size, nil
	}
	return flags.GetInt("size")
}
