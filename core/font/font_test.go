package font

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/ivy/core"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

func TestNormalizeFontname(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ivy.fonts")
	defer teardown()
	//
	assert.Equal(t, "times_new_roman", NormalizeFontname(` "Times New Roman" `))
	assert.Equal(t, "dejavusans", NormalizeFontname("DejaVuSans.ttf"))
	assert.Equal(t, "font.v2", NormalizeFontname("Font.v2"))
}

func TestGlyphMetrics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ivy.fonts")
	defer teardown()
	//
	f := FallbackFont()
	m, err := f.GlyphMetrics(nil, 'M', 14)
	if err != nil {
		t.Fatal(err)
	}
	assert.Greater(t, m.Advance, 0.0)
	assert.Greater(t, m.Width, 0.0)
	assert.Greater(t, m.Height, 0.0)
	space, err := f.GlyphMetrics(nil, ' ', 14)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, space.Width)
	assert.Greater(t, space.Advance, 0.0)
	double, _ := f.GlyphMetrics(nil, 'M', 28)
	assert.InDelta(t, 2*m.Advance, double.Advance, 0.05)
}

func TestParseInvalidFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ivy.fonts")
	defer teardown()
	//
	_, err := ParseOpenTypeFont([]byte("no font"))
	assert.True(t, core.Is(err, core.EFORMAT))
	_, err = LoadOpenTypeFont(filepath.Join(t.TempDir(), "missing.ttf"))
	assert.True(t, core.Is(err, core.EMISSING))
}

// --- Manager ---------------------------------------------------------------

type ManagerTestEnviron struct {
	suite.Suite
	dir      string
	lookups  int
	fontfile map[string]string
	manager  *Manager
}

func TestManager(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ivy.fonts")
	defer teardown()
	tracing.Select("ivy.fonts").SetTraceLevel(tracing.LevelInfo)
	suite.Run(t, new(ManagerTestEnviron))
}

func (env *ManagerTestEnviron) SetupTest() {
	env.dir = env.T().TempDir()
	env.fontfile = map[string]string{
		"Go Regular.ttf":     filepath.Join(env.dir, "goregular.ttf"),
		"Go Mono.ttf":        filepath.Join(env.dir, "gomono.ttf"),
		"DejaVuSansMono.ttf": filepath.Join(env.dir, "gomono.ttf"),
	}
	env.Require().NoError(os.WriteFile(filepath.Join(env.dir, "goregular.ttf"), goregular.TTF, 0644))
	env.Require().NoError(os.WriteFile(filepath.Join(env.dir, "gomono.ttf"), gomono.TTF, 0644))
	env.lookups = 0
	env.manager = NewManager()
	env.manager.find = func(name string) (string, error) {
		env.lookups++
		if p, ok := env.fontfile[name]; ok {
			return p, nil
		}
		return "", errors.New("font file not found")
	}
}

func (env *ManagerTestEnviron) TestGenericSlots() {
	m := env.manager
	env.Equal(FallbackFont(), m.Select("serif"))
	env.Equal(FallbackFont(), m.Select(""))
	env.Equal(MonospaceFont(), m.Select("monospace"))
	env.Equal(MonospaceFont(), m.Select("ui-monospace"))
	env.Equal(m.Font(SansSerifSlot), m.Select("ui-sans-serif"))
	env.Equal(m.Font(SerifSlot), m.Select("emoji"))
	env.Equal(0, env.lookups, "generic families must not trigger lookups")
}

func (env *ManagerTestEnviron) TestByNameKeepsRecentFont() {
	m := env.manager
	f, err := m.ByName(`"Go Regular"`)
	env.Require().NoError(err)
	env.Equal(filepath.Join(env.dir, "goregular.ttf"), f.Filepath)
	n := env.lookups
	g, err := m.ByName("go regular")
	env.NoError(err)
	env.Same(f, g)
	env.Equal(n, env.lookups, "expected second lookup to be served from memo")
	//
	h, err := m.ByName("Go Mono")
	env.NoError(err)
	env.NotSame(f, h)
	g, _ = m.ByName("Go Regular")
	env.NotSame(f, g, "memo holds a single font only")
}

func (env *ManagerTestEnviron) TestUnknownFamilyFallsBack() {
	m := env.manager
	_, err := m.ByName("Nonexisting Sans")
	env.True(core.Is(err, core.EMISSING))
	env.Equal(FallbackFont(), m.Select("Nonexisting Sans"))
	metrics := m.GlyphMetrics('x', 14, "Nonexisting Sans")
	env.Greater(metrics.Advance, 0.0)
}

func (env *ManagerTestEnviron) TestMissingFontIsRemembered() {
	m := env.manager
	_, err := m.ByName("Arial, sans-serif")
	env.True(core.Is(err, core.EMISSING))
	n := env.lookups
	for _, r := range "Hello" {
		m.GlyphMetrics(r, 14, "Arial, sans-serif")
	}
	env.Equal(n, env.lookups, "expected a missing font to be looked up once")
	_, err = m.ByName("Go Regular")
	env.NoError(err)
	env.Greater(env.lookups, n)
}

func (env *ManagerTestEnviron) TestLoadSystemFonts() {
	m := env.manager
	cnt := m.LoadSystemFonts()
	env.Equal(1, cnt)
	env.Equal(filepath.Join(env.dir, "gomono.ttf"), m.Font(MonospaceSlot).Filepath)
	env.Equal(FallbackFont(), m.Font(SerifSlot))
	m.SetFont(MonospaceSlot, nil)
	env.Equal(FallbackFont(), m.Font(MonospaceSlot))
}

func (env *ManagerTestEnviron) TestMonospaceMetrics() {
	m := env.manager
	i := m.GlyphMetrics('i', 14, "monospace")
	w := m.GlyphMetrics('W', 14, "monospace")
	env.InDelta(i.Advance, w.Advance, 0.001)
	env.Equal("monospace", MonospaceSlot.String())
}
