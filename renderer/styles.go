package renderer

// Visual skin of one chain. Styles are immutable data: adding a chain is
// a new table entry, never a new branch in the renderer.
type ChainStyle struct {
	Name         string
	ShortName    string
	PrimaryColor string
	// Second stop of the background gradient, unused for flat skins
	GradientColor string
	AccentColor   string
	Background    BackgroundKind
	FontFamily    string
	TextColor     string
	FooterColor   string
	// Word-wrap budget of the body text for this skin's font
	CharsPerLine int
}

type BackgroundKind string

const (
	// Single flat fill
	BackgroundFlat BackgroundKind = "flat"
	// Gradient with the procedural grain filter on top
	BackgroundGrain BackgroundKind = "grain"
	// Flat fill with the decorative wave path
	BackgroundPattern BackgroundKind = "pattern"
	// Flat dark fill with the large low-opacity watermark logo
	BackgroundDark BackgroundKind = "dark"
)

// Sentinel chain id of the chain-agnostic "classic" skin used for
// ephemeral (unminted) cards.
const ChainIDClassic int64 = 0

const (
	chainIDBase       int64 = 8453
	chainIDBaseTest   int64 = 84532
	chainIDBob        int64 = 60808
	chainIDBobTest    int64 = 808813
	chainIDInk        int64 = 57073
	chainIDInkTest    int64 = 763373
)

var baseStyle = ChainStyle{
	Name:          "Base",
	ShortName:     "Base",
	PrimaryColor:  "#0000ff",
	GradientColor: "#3c8aff",
	AccentColor:   "#f9f7f1",
	Background:    BackgroundGrain,
	FontFamily:    "Georgia, serif",
	TextColor:     "white",
	FooterColor:   "white",
	CharsPerLine:  35,
}

var bobStyle = ChainStyle{
	Name:          "Bob",
	ShortName:     "Bob",
	PrimaryColor:  "#f25d00",
	GradientColor: "#ff9500",
	AccentColor:   "#ffe3c2",
	Background:    BackgroundPattern,
	FontFamily:    "Georgia, serif",
	TextColor:     "white",
	FooterColor:   "white",
	CharsPerLine:  35,
}

var inkStyle = ChainStyle{
	Name:          "Ink",
	ShortName:     "Ink",
	PrimaryColor:  "#160f1f",
	GradientColor: "#7132f5",
	AccentColor:   "#7132f5",
	Background:    BackgroundDark,
	FontFamily:    "Georgia, serif",
	TextColor:     "white",
	FooterColor:   "#b3a6cc",
	CharsPerLine:  35,
}

var classicStyle = ChainStyle{
	Name:          "Classic",
	ShortName:     "Classic",
	PrimaryColor:  "#f6eee3",
	GradientColor: "#f9f7f1",
	AccentColor:   "#5a5a5a",
	Background:    BackgroundFlat,
	FontFamily:    "Georgia, serif",
	TextColor:     "#2d2d2d",
	FooterColor:   "#5a5a5a",
	CharsPerLine:  35,
}

var fallbackStyle = ChainStyle{
	Name:          "Unknown",
	ShortName:     "Unknown",
	PrimaryColor:  "#000000",
	GradientColor: "#666666",
	AccentColor:   "#999999",
	Background:    BackgroundFlat,
	FontFamily:    "sans-serif",
	TextColor:     "white",
	FooterColor:   "white",
	CharsPerLine:  35,
}

var chainStyles = map[int64]ChainStyle{
	ChainIDClassic:  classicStyle,
	chainIDBase:     baseStyle,
	chainIDBaseTest: baseStyle,
	chainIDBob:      bobStyle,
	chainIDBobTest:  bobStyle,
	chainIDInk:      inkStyle,
	chainIDInkTest:  inkStyle,
}

// Total lookup: unknown chain ids resolve to the neutral fallback skin.
// Matching is exact; there is no nearest-chain heuristic.
func ResolveStyle(chainID int64) ChainStyle {
	if style, ok := chainStyles[chainID]; ok {
		return style
	}
	return fallbackStyle
}
