package renderer

import (
	"fmt"
	"strings"
)

// Input of RenderSVG. Mood is the display glyph, not the catalog value.
// BlockNumber 0 is the sentinel for "not minted yet" and suppresses the
// block badge.
type Content struct {
	Text        string
	Mood        string
	ChainID     int64
	BlockNumber uint64
}

const svgHeader = `<svg width="100%" height="100%" viewBox="0 0 500 500" xmlns="http://www.w3.org/2000/svg">`

const dropShadowFilter = `<filter id="drop-shadow" x="-20%" y="-20%" width="140%" height="140%">` +
	`<feDropShadow dx="4" dy="4" stdDeviation="5" flood-color="#000" flood-opacity="0.4"></feDropShadow>` +
	`</filter>`

// Decorative wave path of the pattern skins, drawn across the lower third
// of the card.
const wavePath = `M8,340 C90,300 170,380 250,340 C330,300 410,380 492,340 L492,492 L8,492 Z`

// Watermark logo path of the dark skins, a large rounded drop centered on
// the card.
const watermarkPath = `M250,110 C330,190 370,250 370,310 C370,376 316,420 250,420 C184,420 130,376 130,310 C130,250 170,190 250,110 Z`

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(text string) string {
	return xmlEscaper.Replace(text)
}

// Renders the card as a complete SVG document string. Pure and
// byte-deterministic: identical content always yields identical markup,
// with no clocks, randomness or generated ids involved. The output is
// meant to be embedded as-is; callers must not re-escape it.
func RenderSVG(content Content) string {
	style := ResolveStyle(content.ChainID)
	idSuffix := strings.ToLower(style.ShortName)

	var b strings.Builder
	b.WriteString(svgHeader)

	b.WriteString("<defs>")
	b.WriteString(dropShadowFilter)
	if style.Background == BackgroundGrain {
		writeGrainDefs(&b, style, idSuffix)
	}
	b.WriteString(`<clipPath id="card-clip"><rect x="8" y="8" width="484" height="484" rx="15" ry="15"></rect></clipPath>`)
	b.WriteString("</defs>")

	b.WriteString(`<rect x="8" y="8" width="484" height="484" rx="15" ry="15" fill="transparent" filter="url(#drop-shadow)"></rect>`)
	b.WriteString(`<g clip-path="url(#card-clip)">`)

	writeBackground(&b, style, idSuffix)

	// Mood glyph, anchored top-right
	fmt.Fprintf(&b, `<text x="450" y="90" font-family="sans-serif" font-size="70" text-anchor="end" fill="%s">%s</text>`,
		style.TextColor, escapeXML(content.Mood))

	if content.BlockNumber > 0 {
		fmt.Fprintf(&b, `<text x="35" y="45" font-family="monospace" font-size="14" fill="%s" fill-opacity="0.7">minted on block</text>`,
			style.TextColor)
		fmt.Fprintf(&b, `<text x="35" y="65" font-family="monospace" font-size="16" fill="%s" fill-opacity="0.8">#%d</text>`,
			style.TextColor, content.BlockNumber)
	}

	writeBody(&b, style, content.Text)

	// Footer labels
	fmt.Fprintf(&b, `<text x="35" y="465" font-family="monospace" font-size="16" fill="%s" fill-opacity="0.7" text-anchor="start">%s</text>`,
		style.FooterColor, strings.ToUpper(style.ShortName))
	fmt.Fprintf(&b, `<text x="465" y="465" font-family="monospace" font-size="16" fill="%s" fill-opacity="0.7" text-anchor="end">MintMyMood</text>`,
		style.FooterColor)

	b.WriteString("</g>")
	b.WriteString("</svg>")
	return b.String()
}

// The procedural grain recipe: turbulence noise, desaturated, boosted per
// channel, then remapped to an alpha mask. The primitive chain and all
// parameters mirror the contract's output exactly; changing any value
// changes the rendered grain pattern.
func writeGrainDefs(b *strings.Builder, style ChainStyle, idSuffix string) {
	fmt.Fprintf(b, `<linearGradient gradientTransform="rotate(-202, 0.5, 0.5)" x1="50%%" y1="0%%" x2="50%%" y2="100%%" id="grain-gradient2-%s">`, idSuffix)
	fmt.Fprintf(b, `<stop stop-color="%s" stop-opacity="1" offset="-0%%"></stop>`, style.GradientColor)
	b.WriteString(`<stop stop-color="rgba(255,255,255,0)" stop-opacity="0" offset="100%"></stop></linearGradient>`)

	fmt.Fprintf(b, `<linearGradient gradientTransform="rotate(202, 0.5, 0.5)" x1="50%%" y1="0%%" x2="50%%" y2="100%%" id="grain-gradient3-%s">`, idSuffix)
	fmt.Fprintf(b, `<stop stop-color="%sff" stop-opacity="1"></stop>`, style.AccentColor)
	b.WriteString(`<stop stop-color="rgba(255,255,255,0)" stop-opacity="0" offset="40%"></stop></linearGradient>`)

	fmt.Fprintf(b, `<filter id="grain-filter-%s" x="-20%%" y="-20%%" width="140%%" height="140%%" filterUnits="objectBoundingBox" primitiveUnits="userSpaceOnUse" color-interpolation-filters="sRGB">`, idSuffix)
	b.WriteString(`<feTurbulence type="fractalNoise" baseFrequency="0.63" numOctaves="2" seed="2" stitchTiles="stitch" result="turbulence"></feTurbulence>`)
	b.WriteString(`<feColorMatrix type="saturate" values="0" in="turbulence" result="colormatrix"></feColorMatrix>`)
	b.WriteString(`<feComponentTransfer in="colormatrix" result="componentTransfer">`)
	b.WriteString(`<feFuncR type="linear" slope="3"></feFuncR>`)
	b.WriteString(`<feFuncG type="linear" slope="3"></feFuncG>`)
	b.WriteString(`<feFuncB type="linear" slope="3"></feFuncB>`)
	b.WriteString(`</feComponentTransfer>`)
	b.WriteString(`<feColorMatrix in="componentTransfer" result="colormatrix2" type="matrix" values="1 0 0 0 0 0 1 0 0 0 0 0 1 0 0 0 0 0 20 -12"></feColorMatrix>`)
	b.WriteString(`</filter>`)
}

func writeBackground(b *strings.Builder, style ChainStyle, idSuffix string) {
	fmt.Fprintf(b, `<rect x="8" y="8" width="484" height="484" rx="15" ry="15" fill="%s"></rect>`, style.PrimaryColor)

	switch style.Background {
	case BackgroundGrain:
		fmt.Fprintf(b, `<rect x="8" y="8" width="484" height="484" rx="15" ry="15" fill="url(#grain-gradient3-%s)"></rect>`, idSuffix)
		fmt.Fprintf(b, `<rect x="8" y="8" width="484" height="484" rx="15" ry="15" fill="url(#grain-gradient2-%s)"></rect>`, idSuffix)
		fmt.Fprintf(b, `<rect x="8" y="8" width="484" height="484" rx="15" ry="15" fill="transparent" filter="url(#grain-filter-%s)" opacity="0.66" style="mix-blend-mode: soft-light"></rect>`, idSuffix)
	case BackgroundPattern:
		fmt.Fprintf(b, `<path d="%s" fill="%s" fill-opacity="0.35"></path>`, wavePath, style.GradientColor)
	case BackgroundDark:
		fmt.Fprintf(b, `<path d="%s" fill="%s" fill-opacity="0.08"></path>`, watermarkPath, style.AccentColor)
	case BackgroundFlat:
		// primary fill only
	}
}

func writeBody(b *strings.Builder, style ChainStyle, text string) {
	lines := WrapText(text, style.CharsPerLine)
	y := FirstLineY(len(lines))

	fmt.Fprintf(b, `<text x="250" y="%d" text-anchor="middle" font-family="%s" font-size="18" fill="%s" style="text-shadow: -1px -1px 1px rgba(0,0,0,0.4), 1px 1px 1px rgba(255,255,255,0.15)">`,
		y, style.FontFamily, style.TextColor)
	for i, line := range lines {
		dy := 0
		if i > 0 {
			dy = LineHeight
		}
		fmt.Fprintf(b, `<tspan x="250" dy="%d">%s</tspan>`, dy, escapeXML(line))
	}
	b.WriteString(`</text>`)
}
