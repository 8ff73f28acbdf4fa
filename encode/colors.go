package encode

import (
	"io"
	"os"

	"github.com/borisskert/cloneutils/ir"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: color.New(color.Reset).SprintfFunc(),
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ir.Types() {
		colors.Map[Colorable{Type: t, Attr: FieldColor}] = color.New(color.FgCyan).SprintfFunc()
		colors.Map[Colorable{Type: t, Attr: SepColor}] = color.New(color.Faint).SprintfFunc()
	}
	colors.Map[Colorable{Type: ir.StringType, Attr: ValueColor}] = color.New(color.FgGreen).SprintfFunc()
	colors.Map[Colorable{Type: ir.NumberType, Attr: ValueColor}] = color.New(color.FgYellow).SprintfFunc()
	colors.Map[Colorable{Type: ir.BoolType, Attr: ValueColor}] = color.New(color.FgMagenta).SprintfFunc()
	colors.Map[Colorable{Type: ir.NullType, Attr: ValueColor}] = color.New(color.Faint).SprintfFunc()
	return colors
}

// ColorsFor returns terminal colors when w is a TTY, nil otherwise.
func ColorsFor(w io.Writer) *Colors {
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return nil
	}
	return NewColors()
}

func (es *EncState) color(attr ColorAttr, t ir.Type, s string) string {
	if es.colors == nil {
		return s
	}
	f, ok := es.colors.Map[Colorable{Type: t, Attr: attr}]
	if !ok {
		f = es.colors.Default
	}
	return f("%s", s)
}
