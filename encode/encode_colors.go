package encode

import (
	"fmt"

	"github.com/opsel/opsel/ir"

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
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ir.Types() {
		able := Colorable{
			Type: t,
			Attr: FieldColor,
		}
		colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Type = ir.NumberType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Type = ir.BoolType
	colors.Map[able] = color.MagentaString

	able.Type = ir.NullType
	colors.Map[able] = color.HiBlackString

	able.Type = ir.StringType
	colors.Map[able] = color.GreenString

	return colors
}

func (cs *Colors) Color(t ir.Type, attr ColorAttr, v string) string {
	f, ok := cs.Map[Colorable{Type: t, Attr: attr}]
	if !ok {
		f = cs.Default
	}
	if f == nil {
		return v
	}
	return f("%s", v)
}

func colorDefault(f string, args ...any) string {
	return fmt.Sprintf(f, args...)
}
