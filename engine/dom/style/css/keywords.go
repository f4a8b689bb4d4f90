package css

import "strings"

// --- Display ---------------------------------------------------------------

// Display is an enum type for the CSS display property.
type Display uint8

// Enum values for type Display
const (
	DisplayBlock       Display = iota // CSS block (default)
	DisplayInline                     // CSS inline
	DisplayInlineBlock                // CSS inline-block
	DisplayFlex                       // CSS flex
	DisplayInlineFlex                 // CSS inline-flex
	DisplayGrid                       // CSS grid
	DisplayInlineGrid                 // CSS inline-grid
	DisplayFlowRoot                   // CSS flow-root
	DisplayNone                       // CSS none
	DisplayContents                   // CSS contents
)

var displayMap = map[Display]string{
	DisplayBlock:       "block",
	DisplayInline:      "inline",
	DisplayInlineBlock: "inline-block",
	DisplayFlex:        "flex",
	DisplayInlineFlex:  "inline-flex",
	DisplayGrid:        "grid",
	DisplayInlineGrid:  "inline-grid",
	DisplayFlowRoot:    "flow-root",
	DisplayNone:        "none",
	DisplayContents:    "contents",
}

var displayStringMap = invert(displayMap)

func (d Display) String() string {
	if s, ok := displayMap[d]; ok {
		return s
	}
	return "<unknown display>"
}

// ParseDisplay parses a display keyword. Keywords are case-sensitive.
// For unknown keywords, block and false are returned.
func ParseDisplay(s string) (Display, bool) {
	d, ok := displayStringMap[s]
	return d, ok
}

// --- Position --------------------------------------------------------------

// Position is an enum type for the CSS position property.
type Position uint8

// Enum values for type Position
const (
	PositionStatic   Position = iota // CSS static (default)
	PositionRelative                 // CSS relative
	PositionAbsolute                 // CSS absolute
	PositionFixed                    // CSS fixed
	PositionSticky                   // CSS sticky
)

var positionMap = map[Position]string{
	PositionStatic:   "static",
	PositionRelative: "relative",
	PositionAbsolute: "absolute",
	PositionFixed:    "fixed",
	PositionSticky:   "sticky",
}

var positionStringMap = invert(positionMap)

func (p Position) String() string {
	if s, ok := positionMap[p]; ok {
		return s
	}
	return "<unknown position>"
}

// ParsePosition parses a position keyword. Keywords are case-sensitive.
// For unknown keywords, static and false are returned.
func ParsePosition(s string) (Position, bool) {
	p, ok := positionStringMap[s]
	return p, ok
}

// --- Font family -----------------------------------------------------------

// FamilyKind is an enum type for generic font families.
type FamilyKind uint8

// Generic font families. FamilyCustom denotes a family given by name.
const (
	FamilySerif       FamilyKind = iota // serif (default)
	FamilySansSerif                     // sans-serif
	FamilyMonospace                     // monospace
	FamilyCursive                       // cursive
	FamilyFantasy                       // fantasy
	FamilySystemUI                      // system-ui
	FamilyUISerif                       // ui-serif
	FamilyUISansSerif                   // ui-sans-serif
	FamilyUIMonospace                   // ui-monospace
	FamilyUIRounded                     // ui-rounded
	FamilyMath                          // math
	FamilyEmoji                         // emoji
	FamilyFangsong                      // fangsong
	FamilyCustom
)

var familyMap = map[FamilyKind]string{
	FamilySerif:       "serif",
	FamilySansSerif:   "sans-serif",
	FamilyMonospace:   "monospace",
	FamilyCursive:     "cursive",
	FamilyFantasy:     "fantasy",
	FamilySystemUI:    "system-ui",
	FamilyUISerif:     "ui-serif",
	FamilyUISansSerif: "ui-sans-serif",
	FamilyUIMonospace: "ui-monospace",
	FamilyUIRounded:   "ui-rounded",
	FamilyMath:        "math",
	FamilyEmoji:       "emoji",
	FamilyFangsong:    "fangsong",
}

var familyStringMap = invert(familyMap)

// FontFamily is either a generic font family or a typeface given by name.
// The zero value is serif.
type FontFamily struct {
	Kind FamilyKind
	Name string // set for FamilyCustom only
}

// GenericFamily returns a font family for a generic family kind.
func GenericFamily(kind FamilyKind) FontFamily {
	return FontFamily{Kind: kind}
}

// CustomFamily returns a font family for a typeface name.
func CustomFamily(name string) FontFamily {
	return FontFamily{Kind: FamilyCustom, Name: name}
}

// IsCustom is true for families given by name.
func (f FontFamily) IsCustom() bool {
	return f.Kind == FamilyCustom
}

// String returns the CSS keyword for generic families and the name for
// custom families.
func (f FontFamily) String() string {
	if f.Kind == FamilyCustom {
		return f.Name
	}
	return familyMap[f.Kind]
}

// ParseFontFamily interprets a font-family value. Generic family keywords
// are case-sensitive; any other text is taken as the name of a typeface.
func ParseFontFamily(s string) FontFamily {
	s = strings.TrimSpace(s)
	if kind, ok := familyStringMap[s]; ok {
		return GenericFamily(kind)
	}
	return CustomFamily(s)
}

func invert[K, V comparable](m map[K]V) map[V]K {
	inv := make(map[V]K, len(m))
	for k, v := range m {
		inv[v] = k
	}
	return inv
}
