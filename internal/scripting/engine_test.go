package scripting

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pie2d/sim/internal/body"
	"github.com/pie2d/sim/internal/data"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const ringScript = `
function scenario()
  local bodies = {
    { pos = {0, 0}, mass = 50, radius = 4, color = "#ffff00" },
  }
  for i = 1, 4 do
    local a = (i - 1) * math.pi / 2
    table.insert(bodies, {
      pos = { math.cos(a) * world_width / 8, math.sin(a) * world_width / 8 },
      radius = 1,
      restitution = 0.5,
      color = hue_color(i / 4),
    })
  end
  return { name = "ring", timestep = 0.005, auto_orbit = true, bodies = bodies }
end
`

func newEngine(t *testing.T, src string) *Engine {
	t.Helper()
	e := NewEngine(800, 600, nil)
	t.Cleanup(e.Close)
	if err := e.LoadString(src, "test"); err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	return e
}

func TestScenarioTable(t *testing.T) {
	s, err := newEngine(t, ringScript).Scenario()
	if err != nil {
		t.Fatalf("Scenario: %v", err)
	}
	if s.Name != "ring" || s.Timestep != 0.005 || !s.AutoOrbit || s.Count() != 5 {
		t.Fatalf("scenario = %+v", s)
	}
	sun := s.Bodies[0]
	if *sun.Mass != 50 || *sun.Radius != 4 || sun.Restitution != nil {
		t.Errorf("sun = %+v", sun)
	}
	if sun.Color.Color != (body.Color{R: 1, G: 1, A: 1}) {
		t.Errorf("sun color = %+v", sun.Color.Color)
	}
	if got := s.Bodies[1].Pos; got != [2]float64{100, 0} {
		t.Errorf("first satellite at %v, want [100 0]", got)
	}
	if s.Bodies[1].Mass != nil || *s.Bodies[1].Restitution != 0.5 {
		t.Errorf("satellite = %+v", s.Bodies[1])
	}
	if c := s.Bodies[4].Color.Color; c != (body.Color{R: 1, A: 1}) {
		t.Errorf("hue_color(1) = %+v", c)
	}
}

func TestScenarioBareList(t *testing.T) {
	s, err := newEngine(t, `
function scenario()
  return {
    { pos = {1, 2}, vel = {3, 4}, color = {0, 0, 1} },
    { pos = {-1, -2}, color = {1, 0, 0, 0.5} },
  }
end`).Scenario()
	if err != nil {
		t.Fatalf("Scenario: %v", err)
	}
	if s.Name != "lua" || s.Count() != 2 || s.AutoOrbit {
		t.Fatalf("scenario = %+v", s)
	}
	if s.Bodies[0].Vel != [2]float64{3, 4} {
		t.Errorf("vel = %v", s.Bodies[0].Vel)
	}
	if s.Bodies[0].Color.Color != (body.Color{B: 1, A: 1}) {
		t.Errorf("rgb color = %+v", s.Bodies[0].Color.Color)
	}
	if s.Bodies[1].Color.Color != (body.Color{R: 1, A: 0.5}) {
		t.Errorf("rgba color = %+v", s.Bodies[1].Color.Color)
	}
}

func TestScenarioBadHexColorReported(t *testing.T) {
	s, err := newEngine(t, `
function scenario()
  return { { pos = {0, 0}, color = "red" } }
end`).Scenario()
	if err != nil {
		t.Fatalf("Scenario: %v", err)
	}
	if c := s.Bodies[0].Color.Color; c != data.DefaultColor {
		t.Errorf("color = %+v, want default", c)
	}

	core, logs := observer.New(zapcore.WarnLevel)
	b, err := s.Bodies[0].Build(zap.New(core))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if b.Color() != data.DefaultColor {
		t.Errorf("body color = %+v", b.Color())
	}
	entries := logs.FilterMessage("invalid hex color, using default").AllUntimed()
	if len(entries) != 1 || entries[0].ContextMap()["value"] != "red" {
		t.Errorf("warnings = %+v", logs.AllUntimed())
	}
}

func TestScenarioErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"undefined", `x = 1`, ErrNoScenario},
		{"non-table", `function scenario() return 3 end`, ErrBadScenario},
		{"bad body", `function scenario() return { 7 } end`, ErrBadScenario},
		{"bad pos", `function scenario() return { { pos = "here" } } end`, ErrBadScenario},
		{"short pos", `function scenario() return { { pos = {1} } } end`, ErrBadScenario},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newEngine(t, tt.src).Scenario()
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}

	_, err := newEngine(t, `function scenario() error("boom") end`).Scenario()
	if err == nil {
		t.Error("runtime error not reported")
	}
}

func TestLoadScenarioDispatch(t *testing.T) {
	dir := t.TempDir()
	luaPath := filepath.Join(dir, "ring.lua")
	yamlPath := filepath.Join(dir, "pair.yaml")
	if err := os.WriteFile(luaPath, []byte(ringScript), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(yamlPath, []byte("bodies:\n  - pos: [1, 1]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadScenario(luaPath, 800, 600, nil)
	if err != nil || s.Count() != 5 {
		t.Fatalf("lua: %v, %+v", err, s)
	}
	s, err = LoadScenario(yamlPath, 800, 600, nil)
	if err != nil || s.Count() != 1 || s.Name != yamlPath {
		t.Fatalf("yaml: %v, %+v", err, s)
	}
	if _, err := LoadScenario(filepath.Join(dir, "missing.lua"), 800, 600, nil); err == nil {
		t.Error("missing lua file accepted")
	}
}
