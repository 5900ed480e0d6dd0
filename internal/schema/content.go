package schema

import "babybook-be/internal/entity"

// PageContent is the tagged union of the seven content payload shapes.
// Each variant reports the page type it belongs to.
type PageContent interface {
	PageType() entity.PageType
}

// TiptapDoc is an arbitrary rich-text document object. The registry only
// requires it to be a JSON object; its internals are the editor's.
type TiptapDoc map[string]interface{}

type CoverContent struct {
	BookTitle             string  `json:"book_title" validate:"required,min=1,max=100"`
	Subtitle              *string `json:"subtitle,omitempty" validate:"omitempty,max=200"`
	CoverPhotoStoragePath *string `json:"cover_photo_storage_path,omitempty"`
}

func (CoverContent) PageType() entity.PageType { return entity.PageTypeCover }

type BirthStoryContent struct {
	DateOfBirth      string  `json:"date_of_birth" validate:"required,isodate"`
	TimeOfBirth      *string `json:"time_of_birth,omitempty"`
	WeightKg         float64 `json:"weight_kg" validate:"required,gt=0,lte=20"`
	HeightCm         float64 `json:"height_cm" validate:"required,gt=0,lte=100"`
	Hospital         *string `json:"hospital,omitempty" validate:"omitempty,max=200"`
	StoryText        *string `json:"story_text,omitempty" validate:"omitempty,max=10000"`
	PhotoStoragePath *string `json:"photo_storage_path,omitempty"`
}

func (BirthStoryContent) PageType() entity.PageType { return entity.PageTypeBirthStory }

type MilestoneContent struct {
	MilestoneName    string  `json:"milestone_name" validate:"required,min=1,max=100"`
	Category         string  `json:"category" validate:"required,oneof=physical language social feeding sleep cognitive"`
	AchievedAt       string  `json:"achieved_at" validate:"required,isodate"`
	Notes            *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
	PhotoStoragePath *string `json:"photo_storage_path,omitempty"`
}

func (MilestoneContent) PageType() entity.PageType { return entity.PageTypeMilestone }

type PhotoItem struct {
	StoragePath string  `json:"storage_path" validate:"required,min=1"`
	Caption     *string `json:"caption,omitempty" validate:"omitempty,max=300"`
	PublicURL   *string `json:"public_url,omitempty"`
}

type PhotoSpreadContent struct {
	Layout string      `json:"layout" validate:"required,oneof=single grid polaroid"`
	Photos []PhotoItem `json:"photos" validate:"required,min=1,max=4,dive"`
}

func (PhotoSpreadContent) PageType() entity.PageType { return entity.PageTypePhotoSpread }

type JournalContent struct {
	Title                  string    `json:"title" validate:"required,min=1,max=200"`
	ContentTiptap          TiptapDoc `json:"content_tiptap" validate:"required"`
	Mood                   *string   `json:"mood,omitempty" validate:"omitempty,max=50"`
	Tags                   []string  `json:"tags,omitempty" validate:"omitempty,max=10,dive,max=30"`
	HeaderPhotoStoragePath *string   `json:"header_photo_storage_path,omitempty"`
}

func (JournalContent) PageType() entity.PageType { return entity.PageTypeJournal }

// LetterContent may carry a reveal date; hiding the letter from viewers
// until then is the read side's job, not the schema's.
type LetterContent struct {
	AuthorName    string    `json:"author_name" validate:"required,min=1,max=100"`
	ContentTiptap TiptapDoc `json:"content_tiptap" validate:"required"`
	RevealDate    *string   `json:"reveal_date,omitempty" validate:"omitempty,isodate"`
}

func (LetterContent) PageType() entity.PageType { return entity.PageTypeLetter }

type MonthlySummaryContent struct {
	YearMonth        string   `json:"year_month" validate:"required,yearmonth"`
	WeightKg         *float64 `json:"weight_kg,omitempty" validate:"omitempty,gt=0,lte=50"`
	HeightCm         *float64 `json:"height_cm,omitempty" validate:"omitempty,gt=0,lte=200"`
	Notes            *string  `json:"notes,omitempty" validate:"omitempty,max=2000"`
	HighlightPageIds []string `json:"highlight_page_ids,omitempty" validate:"omitempty,max=10,dive,uuid"`
}

func (MonthlySummaryContent) PageType() entity.PageType { return entity.PageTypeMonthlySummary }
