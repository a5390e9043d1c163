package database

// Mint lifecycle of a thought. A row leaves EPHEMERAL only through the
// finalize-mint transaction; PENDING marks a submitted but unconfirmed
// mint transaction.
type MintState string

const (
	MintStateEphemeral MintState = "EPHEMERAL"
	MintStatePending   MintState = "PENDING"
	MintStateMinted    MintState = "MINTED"
)

// Closed mood catalog. Each mood maps 1:1 to the glyph rendered on the
// card; the glyph strings must match what the journal contract embeds.
type Mood string

const (
	MoodPeaceful    Mood = "peaceful"
	MoodReflective  Mood = "reflective"
	MoodInspired    Mood = "inspired"
	MoodMelancholic Mood = "melancholic"
	MoodPassionate  Mood = "passionate"
	MoodGrowing     Mood = "growing"
	MoodDreamy      Mood = "dreamy"
	MoodEnergized   Mood = "energized"
)

var moodGlyphs = map[Mood]string{
	MoodPeaceful:    "😌",
	MoodReflective:  "💭",
	MoodInspired:    "✨",
	MoodMelancholic: "🌙",
	MoodPassionate:  "🔥",
	MoodGrowing:     "🌱",
	MoodDreamy:      "💫",
	MoodEnergized:   "⚡",
}

func (m Mood) Valid() bool {
	_, ok := moodGlyphs[m]
	return ok
}

func (m Mood) Glyph() string {
	if glyph, ok := moodGlyphs[m]; ok {
		return glyph
	}
	return moodGlyphs[MoodReflective]
}

var moodCatalog = []Mood{
	MoodPeaceful,
	MoodReflective,
	MoodInspired,
	MoodMelancholic,
	MoodPassionate,
	MoodGrowing,
	MoodDreamy,
	MoodEnergized,
}

// The full catalog in presentation order.
func Moods() []Mood {
	moods := make([]Mood, len(moodCatalog))
	copy(moods, moodCatalog)
	return moods
}
