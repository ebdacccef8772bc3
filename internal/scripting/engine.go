package scripting

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pie2d/sim/internal/body"
	"github.com/pie2d/sim/internal/data"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

var (
	ErrNoScenario  = errors.New("lua function scenario not defined")
	ErrBadScenario = errors.New("malformed lua scenario")
)

// Engine wraps a single gopher-lua VM that builds scenarios.
// Single-goroutine access only.
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua VM with the world extent exposed as the globals
// world_width and world_height.
func NewEngine(width, height float64, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	vm.SetGlobal("API_VERSION", lua.LNumber(1))
	vm.SetGlobal("world_width", lua.LNumber(width))
	vm.SetGlobal("world_height", lua.LNumber(height))

	e := &Engine{vm: vm, log: log}
	vm.SetGlobal("hue_color", vm.NewFunction(luaHueColor))
	return e
}

// LoadFile executes a Lua file, defining its globals.
func (e *Engine) LoadFile(path string) error {
	if err := e.vm.DoFile(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	e.log.Debug("loaded lua script", zap.String("file", path))
	return nil
}

// LoadString executes Lua source; name is used in error messages.
func (e *Engine) LoadString(src, name string) error {
	if err := e.vm.DoString(src); err != nil {
		return fmt.Errorf("load %s: %w", name, err)
	}
	return nil
}

// Scenario calls the Lua scenario() function. It may return either a table
// with name, timestep, auto_orbit and bodies fields, or a bare list of bodies.
// Each body is a table with pos = {x, y}, vel = {x, y} and optional mass,
// radius, restitution and color ("#rrggbb" or {r, g, b, a}).
func (e *Engine) Scenario() (*data.Scenario, error) {
	fn := e.vm.GetGlobal("scenario")
	if fn.Type() != lua.LTFunction {
		return nil, ErrNoScenario
	}
	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}); err != nil {
		return nil, fmt.Errorf("lua scenario error: %w", err)
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	rt, ok := result.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("%w: scenario() returned %s, want table", ErrBadScenario, result.Type())
	}

	s := &data.Scenario{Name: "lua"}
	list := rt
	if bt, ok := rt.RawGetString("bodies").(*lua.LTable); ok {
		list = bt
		if name := lStr(rt, "name"); name != "" {
			s.Name = name
		}
		s.Timestep = lNum(rt, "timestep")
		s.AutoOrbit = lua.LVAsBool(rt.RawGetString("auto_orbit"))
	}

	for i := 1; i <= list.Len(); i++ {
		bt, ok := list.RawGetInt(i).(*lua.LTable)
		if !ok {
			return nil, fmt.Errorf("%w: body %d is not a table", ErrBadScenario, i)
		}
		spec, err := bodySpec(bt)
		if err != nil {
			return nil, fmt.Errorf("%w: body %d: %v", ErrBadScenario, i, err)
		}
		s.Bodies = append(s.Bodies, spec)
	}
	return s, nil
}

func bodySpec(t *lua.LTable) (data.BodySpec, error) {
	var spec data.BodySpec
	var err error
	if spec.Pos, err = lVec(t, "pos"); err != nil {
		return spec, err
	}
	if spec.Vel, err = lVec(t, "vel"); err != nil {
		return spec, err
	}
	spec.Mass = lOptNum(t, "mass")
	spec.Radius = lOptNum(t, "radius")
	spec.Restitution = lOptNum(t, "restitution")

	switch c := t.RawGetString("color").(type) {
	case lua.LString:
		spec.Color = data.HexColorSpec(string(c))
	case *lua.LTable:
		col := body.Color{
			R: float64(lua.LVAsNumber(c.RawGetInt(1))),
			G: float64(lua.LVAsNumber(c.RawGetInt(2))),
			B: float64(lua.LVAsNumber(c.RawGetInt(3))),
			A: 1,
		}
		if a, ok := c.RawGetInt(4).(lua.LNumber); ok {
			col.A = float64(a)
		}
		spec.Color = &data.ColorSpec{Color: col}
	}
	return spec, nil
}

// luaHueColor is exposed as hue_color(h) and returns {r, g, b, a}.
func luaHueColor(L *lua.LState) int {
	c := data.HueColor(float64(L.CheckNumber(1)))
	t := L.NewTable()
	t.Append(lua.LNumber(c.R))
	t.Append(lua.LNumber(c.G))
	t.Append(lua.LNumber(c.B))
	t.Append(lua.LNumber(c.A))
	L.Push(t)
	return 1
}

// lNum reads a number field from a Lua table; absent fields read as 0.
func lNum(t *lua.LTable, key string) float64 {
	return float64(lua.LVAsNumber(t.RawGetString(key)))
}

func lOptNum(t *lua.LTable, key string) *float64 {
	n, ok := t.RawGetString(key).(lua.LNumber)
	if !ok {
		return nil
	}
	v := float64(n)
	return &v
}

// lStr reads a string field from a Lua table.
func lStr(t *lua.LTable, key string) string {
	return lua.LVAsString(t.RawGetString(key))
}

// lVec reads a {x, y} pair; an absent field is the zero vector.
func lVec(t *lua.LTable, key string) ([2]float64, error) {
	switch v := t.RawGetString(key).(type) {
	case *lua.LNilType:
		return [2]float64{}, nil
	case *lua.LTable:
		x, okX := v.RawGetInt(1).(lua.LNumber)
		y, okY := v.RawGetInt(2).(lua.LNumber)
		if !okX || !okY {
			return [2]float64{}, fmt.Errorf("%s must be {x, y}", key)
		}
		return [2]float64{float64(x), float64(y)}, nil
	default:
		return [2]float64{}, fmt.Errorf("%s must be {x, y}, got %s", key, v.Type())
	}
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}

// LoadScenario loads a scenario file, running .lua files through a fresh
// engine and decoding anything else as YAML.
func LoadScenario(path string, width, height float64, log *zap.Logger) (*data.Scenario, error) {
	if !strings.EqualFold(filepath.Ext(path), ".lua") {
		return data.LoadScenario(path)
	}
	e := NewEngine(width, height, log)
	defer e.Close()
	if err := e.LoadFile(path); err != nil {
		return nil, err
	}
	s, err := e.Scenario()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "lua" {
		s.Name = path
	}
	return s, nil
}
