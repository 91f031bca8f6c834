package encode

import (
	"fmt"
	"strings"

	"github.com/advaoptical/alpakka/ir"

	"github.com/fatih/color"
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

	// attrs backs the yaml printer, which takes raw escape sequences.
	attrs map[Colorable]color.Attribute
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
		attrs:   map[Colorable]color.Attribute{},
	}
	for _, t := range ir.Types() {
		colors.Map[Colorable{Type: t, Attr: SepColor}] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Type = ir.NumberType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	colors.attrs[able] = color.FgHiCyan

	able.Type = ir.NullType
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()
	colors.attrs[able] = color.FgMagenta

	able.Type = ir.BoolType
	colors.Map[able] = color.CyanString
	colors.attrs[able] = color.FgCyan

	able.Type = ir.StringType
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	colors.attrs[able] = color.FgGreen

	able.Type = ir.ObjectType
	able.Attr = FieldColor
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	colors.attrs[able] = color.FgHiBlue
	able.Attr = SepColor
	colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	res := c.Get(t, a)(s)
	return res
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}

// escape returns the ansi prefix and suffix for t and a, empty when
// there is no color for them.
func (c *Colors) escape(t ir.Type, a ColorAttr) (string, string) {
	attr, ok := c.attrs[Colorable{Type: t, Attr: a}]
	if !ok {
		return "", ""
	}
	return fmt.Sprintf("\x1b[%dm", attr), fmt.Sprintf("\x1b[%dm", color.Reset)
}
