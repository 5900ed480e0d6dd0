package constant

import "babybook-be/internal/entity"

type MilestoneCategory string

const (
	MilestonePhysical  MilestoneCategory = "physical"
	MilestoneLanguage  MilestoneCategory = "language"
	MilestoneSocial    MilestoneCategory = "social"
	MilestoneFeeding   MilestoneCategory = "feeding"
	MilestoneSleep     MilestoneCategory = "sleep"
	MilestoneCognitive MilestoneCategory = "cognitive"
)

// MilestoneType is a suggested milestone offered by the editor UI; the
// schema only constrains the category enum, not the name.
type MilestoneType struct {
	Id       string            `json:"id"`
	Name     string            `json:"name"`
	Category MilestoneCategory `json:"category"`
	Emoji    string            `json:"emoji"`
}

var MilestoneTypes = []MilestoneType{
	{Id: "rolling_over", Name: "Rolling Over", Category: MilestonePhysical, Emoji: "🔄"},
	{Id: "sitting_up", Name: "Sitting Up", Category: MilestonePhysical, Emoji: "🧸"},
	{Id: "crawling", Name: "Crawling", Category: MilestonePhysical, Emoji: "🐛"},
	{Id: "standing", Name: "Standing", Category: MilestonePhysical, Emoji: "🧍"},
	{Id: "first_steps", Name: "First Steps", Category: MilestonePhysical, Emoji: "👣"},
	{Id: "running", Name: "Running", Category: MilestonePhysical, Emoji: "🏃"},
	{Id: "climbing_stairs", Name: "Climbing Stairs", Category: MilestonePhysical, Emoji: "🪜"},

	{Id: "first_smile", Name: "First Smile", Category: MilestoneLanguage, Emoji: "😊"},
	{Id: "first_laugh", Name: "First Laugh", Category: MilestoneLanguage, Emoji: "😄"},
	{Id: "babbling", Name: "Babbling", Category: MilestoneLanguage, Emoji: "💬"},
	{Id: "first_word", Name: "First Word", Category: MilestoneLanguage, Emoji: "🗣️"},
	{Id: "two_word_phrases", Name: "Two-Word Phrases", Category: MilestoneLanguage, Emoji: "📢"},
	{Id: "says_name", Name: "Says Name", Category: MilestoneLanguage, Emoji: "✨"},

	{Id: "recognizes_parents", Name: "Recognizes Parents", Category: MilestoneSocial, Emoji: "👨‍👩‍👧"},
	{Id: "waves_bye", Name: "Waves Bye-Bye", Category: MilestoneSocial, Emoji: "👋"},
	{Id: "first_playdate", Name: "First Playdate", Category: MilestoneSocial, Emoji: "🎮"},
	{Id: "plays_with_others", Name: "Plays with Others", Category: MilestoneSocial, Emoji: "🤝"},
	{Id: "hugs_back", Name: "Hugs Back", Category: MilestoneSocial, Emoji: "🤗"},

	{Id: "first_solid_food", Name: "First Solid Food", Category: MilestoneFeeding, Emoji: "🥣"},
	{Id: "sippy_cup", Name: "Sippy Cup", Category: MilestoneFeeding, Emoji: "🥤"},
	{Id: "self_feeding_spoon", Name: "Self-Feeding with Spoon", Category: MilestoneFeeding, Emoji: "🥄"},
	{Id: "drinks_from_cup", Name: "Drinks from Cup", Category: MilestoneFeeding, Emoji: "🫖"},

	{Id: "sleeping_through_night", Name: "Sleeping Through the Night", Category: MilestoneSleep, Emoji: "🌙"},
	{Id: "first_night_in_crib", Name: "First Night in Crib", Category: MilestoneSleep, Emoji: "🛏️"},
	{Id: "dropped_to_one_nap", Name: "Dropped to One Nap", Category: MilestoneSleep, Emoji: "😴"},

	{Id: "object_permanence", Name: "Object Permanence", Category: MilestoneCognitive, Emoji: "🎭"},
	{Id: "points_at_objects", Name: "Points at Objects", Category: MilestoneCognitive, Emoji: "☝️"},
	{Id: "stacks_blocks", Name: "Stacks Blocks", Category: MilestoneCognitive, Emoji: "🧱"},
	{Id: "pretend_play", Name: "Pretend Play", Category: MilestoneCognitive, Emoji: "🎪"},
}

// PageTemplate describes one of the seven page kinds for the add-page
// picker. Variants only apply to photo spreads.
type PageTemplate struct {
	Type        entity.PageType `json:"type"`
	Label       string          `json:"label"`
	Description string          `json:"description"`
	Emoji       string          `json:"emoji"`
	Variants    []string        `json:"variants,omitempty"`
}

var PageTemplates = []PageTemplate{
	{Type: entity.PageTypeCover, Label: "Cover Page", Description: "The cover of your baby book", Emoji: "📖"},
	{Type: entity.PageTypeBirthStory, Label: "Birth Story", Description: "Birth stats and the story of arrival", Emoji: "👶"},
	{Type: entity.PageTypeMilestone, Label: "Milestone", Description: "A special achievement or first", Emoji: "⭐"},
	{Type: entity.PageTypePhotoSpread, Label: "Photo Spread", Description: "Beautiful photo layout", Emoji: "📸", Variants: []string{"single", "grid", "polaroid"}},
	{Type: entity.PageTypeJournal, Label: "Journal Entry", Description: "A diary entry about a special moment", Emoji: "📝"},
	{Type: entity.PageTypeLetter, Label: "Letter", Description: "A letter to your child (can be time-locked)", Emoji: "💌"},
	{Type: entity.PageTypeMonthlySummary, Label: "Monthly Summary", Description: "A snapshot of the month's highlights", Emoji: "📅"},
}
