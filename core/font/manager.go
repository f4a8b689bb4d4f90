package font

import (
	"strings"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/ivy/core"
	"golang.org/x/image/font/sfnt"
)

// Slot denotes one of the generic CSS font families a Manager holds a font for.
type Slot int

// Generic font family slots
const (
	SerifSlot Slot = iota
	SansSerifSlot
	MonospaceSlot
	CursiveSlot
	FantasySlot
	slotCount
)

var slotNames = [...]string{"serif", "sans-serif", "monospace", "cursive", "fantasy"}

func (s Slot) String() string {
	if s < 0 || s >= slotCount {
		return "<unknown slot>"
	}
	return slotNames[s]
}

// genericFamilies maps CSS generic family keywords to slots.
var genericFamilies = map[string]Slot{
	"serif":         SerifSlot,
	"sans-serif":    SansSerifSlot,
	"monospace":     MonospaceSlot,
	"cursive":       CursiveSlot,
	"fantasy":       FantasySlot,
	"system-ui":     SerifSlot,
	"ui-serif":      SerifSlot,
	"ui-sans-serif": SansSerifSlot,
	"ui-monospace":  MonospaceSlot,
	"ui-rounded":    SerifSlot,
	"math":          SerifSlot,
	"emoji":         SerifSlot,
	"fangsong":      SerifSlot,
}

// systemCandidates lists font files to search for with LoadSystemFonts,
// in order of preference.
var systemCandidates = map[Slot][]string{
	SerifSlot:     {"DejaVuSerif.ttf", "LiberationSerif-Regular.ttf", "Times New Roman.ttf", "Times.ttc"},
	SansSerifSlot: {"DejaVuSans.ttf", "LiberationSans-Regular.ttf", "Arial.ttf", "Helvetica.ttc"},
	MonospaceSlot: {"DejaVuSansMono.ttf", "LiberationMono-Regular.ttf", "Courier New.ttf", "Menlo.ttc"},
	CursiveSlot:   {"Comic Sans MS.ttf", "URWChanceryL-MediItal.ttf"},
	FantasySlot:   {"Impact.ttf", "Papyrus.ttc"},
}

// Manager holds the fonts used for measuring text.
//
// A Manager has a font for each generic font family, initialized with the
// fonts packaged with Go. Concrete typefaces are looked up by name; the most
// recently used one is kept, so that runs of text in the same typeface do not
// trigger repeated lookups.
type Manager struct {
	sync.Mutex
	slots  [slotCount]*ScalableFont
	recent *ScalableFont // most recently used font looked up by name; nil for a miss
	key    string        // normalized name of recent
	memo   bool          // recent and key are valid
	buf    sfnt.Buffer
	find   func(string) (string, error)
}

// NewManager creates a font manager with the packaged Go fonts in every slot.
func NewManager() *Manager {
	m := &Manager{find: findfont.Find}
	for s := SerifSlot; s < slotCount; s++ {
		m.slots[s] = FallbackFont()
	}
	m.slots[MonospaceSlot] = MonospaceFont()
	return m
}

// SetFont places f in slot s. A nil font resets the slot to the fallback font.
func (m *Manager) SetFont(s Slot, f *ScalableFont) {
	if s < 0 || s >= slotCount {
		tracer().Errorf("font manager has no slot %d", s)
		return
	}
	if f == nil {
		f = FallbackFont()
	}
	m.Lock()
	defer m.Unlock()
	m.slots[s] = f
}

// Font returns the font held for slot s.
func (m *Manager) Font(s Slot) *ScalableFont {
	if s < 0 || s >= slotCount {
		return FallbackFont()
	}
	m.Lock()
	defer m.Unlock()
	return m.slots[s]
}

// LoadSystemFonts tries to fill the generic slots with fonts installed on
// the system. Slots for which no candidate font is found keep their current
// font. It returns the number of slots filled.
func (m *Manager) LoadSystemFonts() int {
	cnt := 0
	for s := SerifSlot; s < slotCount; s++ {
		for _, candidate := range systemCandidates[s] {
			fpath, err := m.find(candidate)
			if err != nil || fpath == "" {
				continue
			}
			f, err := LoadOpenTypeFont(fpath)
			if err != nil {
				tracer().Infof("system font %s unusable: %v", fpath, err)
				continue
			}
			tracer().Infof("using system font %s for %s", f.Fontname, s)
			m.SetFont(s, f)
			cnt++
			break
		}
	}
	return cnt
}

// ByName looks up a typeface by name among the fonts installed on the system.
func (m *Manager) ByName(name string) (*ScalableFont, error) {
	m.Lock()
	defer m.Unlock()
	return m.byName(name)
}

func (m *Manager) byName(name string) (*ScalableFont, error) {
	key := NormalizeFontname(name)
	if m.memo && m.key == key {
		if m.recent == nil {
			return nil, core.Error(core.EMISSING, "font not found: %s", name)
		}
		return m.recent, nil
	}
	plain := strings.Trim(strings.TrimSpace(name), `"'`)
	for _, candidate := range []string{plain, plain + ".ttf", plain + ".otf", plain + ".ttc"} {
		fpath, err := m.find(candidate)
		if err != nil || fpath == "" {
			continue
		}
		f, err := LoadOpenTypeFont(fpath)
		if err != nil {
			return nil, err
		}
		tracer().Debugf("font %q found at %s", name, fpath)
		m.recent, m.key, m.memo = f, key, true
		return f, nil
	}
	m.recent, m.key, m.memo = nil, key, true
	return nil, core.Error(core.EMISSING, "font not found: %s", name)
}

// Select returns the font for a CSS font family. family is either a generic
// family keyword or the name of a typeface. An empty family selects serif.
// If a typeface cannot be found, the fallback font is returned.
func (m *Manager) Select(family string) *ScalableFont {
	m.Lock()
	defer m.Unlock()
	return m.selectFont(family)
}

func (m *Manager) selectFont(family string) *ScalableFont {
	if family == "" {
		return m.slots[SerifSlot]
	}
	if s, ok := genericFamilies[family]; ok {
		return m.slots[s]
	}
	f, err := m.byName(family)
	if err != nil {
		tracer().Infof("font family %q not available, using fallback font", family)
		return FallbackFont()
	}
	return f
}

// GlyphMetrics measures the glyph for r in font family family at a size of px
// pixels. Glyphs which cannot be measured have zero metrics.
func (m *Manager) GlyphMetrics(r rune, px float64, family string) Metrics {
	m.Lock()
	defer m.Unlock()
	f := m.selectFont(family)
	metrics, err := f.GlyphMetrics(&m.buf, r, px)
	if err != nil {
		tracer().Errorf("cannot measure %#U in %s: %v", r, f.Fontname, err)
		return Metrics{}
	}
	return metrics
}
