package data

import (
	"fmt"
	"math"

	"github.com/pie2d/sim/internal/body"
	"gopkg.in/yaml.v3"
)

// DefaultColor is used when a hex color cannot be parsed.
var DefaultColor = body.Color{R: 200.0 / 255, G: 200.0 / 255, B: 1, A: 1}

// ColorSpec accepts either "#rrggbb" / "#rrggbbaa" or a [r, g, b(, a)] list
// of channels in [0,1].
type ColorSpec struct {
	body.Color

	hex     string // hex text that failed to parse
	invalid bool
}

// HexColorSpec parses hex. An unparseable value yields DefaultColor and is
// reported when the body is built.
func HexColorSpec(hex string) *ColorSpec {
	c, ok := ParseHexColor(hex)
	if !ok {
		return &ColorSpec{Color: c, hex: hex, invalid: true}
	}
	return &ColorSpec{Color: c}
}

func (c *ColorSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*c = *HexColorSpec(node.Value)
		return nil
	case yaml.SequenceNode:
		var ch []float64
		if err := node.Decode(&ch); err != nil {
			return err
		}
		switch len(ch) {
		case 3:
			c.Color = body.Color{R: ch[0], G: ch[1], B: ch[2], A: 1}
		case 4:
			c.Color = body.Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}
		default:
			return fmt.Errorf("line %d: color needs 3 or 4 channels, got %d", node.Line, len(ch))
		}
		return nil
	}
	return fmt.Errorf("line %d: color must be a hex string or a list", node.Line)
}

// MarshalYAML writes the channels as a list so values survive a round trip.
func (c ColorSpec) MarshalYAML() (any, error) {
	return &yaml.Node{
		Kind:  yaml.SequenceNode,
		Style: yaml.FlowStyle,
		Content: []*yaml.Node{
			floatNode(c.R), floatNode(c.G), floatNode(c.B), floatNode(c.A),
		},
	}, nil
}

func floatNode(v float64) *yaml.Node {
	n := &yaml.Node{}
	_ = n.Encode(v)
	return n
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa". On failure it returns
// DefaultColor and false.
func ParseHexColor(hex string) (body.Color, bool) {
	var r, g, b, a uint8 = 0, 0, 0, 255
	switch {
	case len(hex) == 7 && hex[0] == '#':
		if n, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err != nil || n != 3 {
			return DefaultColor, false
		}
	case len(hex) == 9 && hex[0] == '#':
		if n, err := fmt.Sscanf(hex, "#%02x%02x%02x%02x", &r, &g, &b, &a); err != nil || n != 4 {
			return DefaultColor, false
		}
	default:
		return DefaultColor, false
	}
	return body.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, true
}

// HueColor returns a fully saturated opaque color for hue in turns ([0,1)).
func HueColor(hue float64) body.Color {
	h := (hue - math.Floor(hue)) * 6
	x := 1 - math.Abs(math.Mod(h, 2)-1)
	switch int(h) {
	case 0:
		return body.Color{R: 1, G: x, A: 1}
	case 1:
		return body.Color{R: x, G: 1, A: 1}
	case 2:
		return body.Color{G: 1, B: x, A: 1}
	case 3:
		return body.Color{G: x, B: 1, A: 1}
	case 4:
		return body.Color{R: x, B: 1, A: 1}
	default:
		return body.Color{R: 1, B: x, A: 1}
	}
}
