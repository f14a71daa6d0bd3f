// Package casestudy classifies authored note HTML into typed content blocks and a table of
// contents for the case-study reading view.
package casestudy

// BlockType is the type of a content block.
type BlockType string

const (
	TypeSectionLabel BlockType = "section-label"
	TypeHeading1     BlockType = "heading-1"
	TypeHeading2     BlockType = "heading-2"
	TypeHeading3     BlockType = "heading-3"
	TypeParagraph    BlockType = "paragraph"
	TypeImage        BlockType = "image"
	TypeImageGrid    BlockType = "image-grid"
	TypeQuote        BlockType = "quote"
	TypeList         BlockType = "list"
	TypeCode         BlockType = "code"
	TypeDivider      BlockType = "divider"
	TypeInfoGrid     BlockType = "info-grid"
	TypeCallout      BlockType = "callout"
	TypeCardGrid     BlockType = "card-grid"
)

// BlockTypes lists every content block type.
var BlockTypes = []BlockType{
	TypeSectionLabel,
	TypeHeading1,
	TypeHeading2,
	TypeHeading3,
	TypeParagraph,
	TypeImage,
	TypeImageGrid,
	TypeQuote,
	TypeList,
	TypeCode,
	TypeDivider,
	TypeInfoGrid,
	TypeCallout,
	TypeCardGrid,
}

type ListType string

const (
	ListUnordered ListType = "unordered"
	ListOrdered   ListType = "ordered"
)

// Image layouts.
const (
	LayoutFullWidth    = "full-width"
	LayoutContentWidth = "content-width"
)

// Callout variants.
const (
	VariantInsight = "insight"
	VariantWarning = "warning"
	VariantSuccess = "success"
)

// ContentBlock is one classified unit of case-study content.
type ContentBlock struct {
	ID        string       `json:"id"`
	Type      BlockType    `json:"type"`
	Content   BlockContent `json:"content"`
	IsLead    bool         `json:"isLead,omitempty"`
	SectionID string       `json:"sectionId,omitempty"`
	Level     int          `json:"level,omitempty"`
	ListType  ListType     `json:"listType,omitempty"`
	Variant   string       `json:"variant,omitempty"`
}

// BlockContent is the payload of a content block. Its concrete type follows the block type:
// Text for text blocks, ImageData for image, ImageGrid for image-grid, InfoGrid and CardGrid
// for the custom blocks.
type BlockContent interface {
	blockContent()
}

// Text is markup or plain text, depending on the block type.
type Text string

// ImageData is one authored image.
type ImageData struct {
	Src     string `json:"src"`
	Alt     string `json:"alt"`
	Caption string `json:"caption,omitempty"`
	Layout  string `json:"layout"`
}

type ImageGrid []ImageData

type InfoItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type InfoGrid []InfoItem

type Card struct {
	Icon        string `json:"icon,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type CardGrid []Card

func (Text) blockContent()      {}
func (ImageData) blockContent() {}
func (ImageGrid) blockContent() {}
func (InfoGrid) blockContent()  {}
func (CardGrid) blockContent()  {}

// TableOfContentsEntry anchors one h2 section.
type TableOfContentsEntry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ParsedCaseStudy is the result of a case-study compile.
// HeroImage is nil when neither a header image nor any authored image exists.
type ParsedCaseStudy struct {
	HeroImage       *string                `json:"heroImage"`
	TableOfContents []TableOfContentsEntry `json:"tableOfContents"`
	ContentBlocks   []ContentBlock         `json:"contentBlocks"`
}

func newParsedCaseStudy(headerImage string) *ParsedCaseStudy {
	p := &ParsedCaseStudy{
		TableOfContents: []TableOfContentsEntry{},
		ContentBlocks:   []ContentBlock{},
	}
	if headerImage != "" {
		p.HeroImage = &headerImage
	}
	return p
}
