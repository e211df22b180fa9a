package cli

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"github.com/umwelt-studio/treepath/internal/pathcmp"
)

const sortNone = "none"

// sortValue is a pflag.Value accepting a sort order name or "none".
type sortValue string

var _ pflag.Value = (*sortValue)(nil)

func sortChoices() []string {
	return append(pathcmp.NameStrings(), sortNone)
}

func (s *sortValue) String() string { return string(*s) }

func (s *sortValue) Set(v string) error {
	if v != sortNone {
		if _, err := pathcmp.ParseName(v); err != nil {
			return err
		}
	}
	*s = sortValue(v)
	return nil
}

func (s *sortValue) Type() string { return "order" }

const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

var colorChoices = []string{colorAuto, colorAlways, colorNever}

// colorValue is a pflag.Value for --color.
type colorValue string

var _ pflag.Value = (*colorValue)(nil)

func (c *colorValue) String() string { return string(*c) }

func (c *colorValue) Set(v string) error {
	if !slices.Contains(colorChoices, v) {
		return fmt.Errorf("must be one of %s, got: %s", strings.Join(colorChoices, ", "), v)
	}
	*c = colorValue(v)
	return nil
}

func (c *colorValue) Type() string { return "when" }

// enabled reports whether output written to w should be coloured.
func (c colorValue) enabled(w io.Writer) bool {
	switch c {
	case colorAlways:
		return true
	case colorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
