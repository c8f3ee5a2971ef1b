package chipmd

// Builder constructs output nodes of type N. The parser only ever talks to
// a Builder, so it can target a DOM binding, a virtual-node tree or a plain
// data structure.
type Builder[N any] interface {
	// Text returns a text run. The string never contains a sentinel.
	Text(s string) N
	// Element wraps children in a tagged container. The zero Tag is a
	// transparent fragment.
	Element(tag Tag, children ...N) N
	// LineBreak returns an explicit line break.
	LineBreak() N
	// Slot returns an empty node standing in for placeholder index.
	Slot(index int) N
}

// Tag names an element of the rendered tree.
type Tag struct {
	Name  string
	Class string
	// Href is the link target of chip anchors.
	Href string
}

// IsFragment reports whether t is the zero fragment tag.
func (t Tag) IsFragment() bool {
	return t == Tag{}
}

// Class names used on rendered elements.
const (
	ClassChip    = "chip"
	ClassComment = "hl-comment"
	ClassString  = "hl-string"
	ClassKeyword = "hl-keyword"
	ClassNumber  = "hl-number"

	languageClassPrefix = "language-"
)

var (
	tagParagraph     = Tag{Name: "p"}
	tagBulletList    = Tag{Name: "ul"}
	tagOrderedList   = Tag{Name: "ol"}
	tagListItem      = Tag{Name: "li"}
	tagBold          = Tag{Name: "strong"}
	tagItalic        = Tag{Name: "em"}
	tagStrikethrough = Tag{Name: "s"}
	tagUnderline     = Tag{Name: "u"}
	tagInlineCode    = Tag{Name: "code"}

	headingTags = [...]Tag{
		{},
		{Name: "h1"},
		{Name: "h2"},
		{Name: "h3"},
		{Name: "h4"},
		{Name: "h5"},
		{Name: "h6"},
	}

	inlineTags = [...]Tag{
		TokenBold:          tagBold,
		TokenItalic:        tagItalic,
		TokenStrikethrough: tagStrikethrough,
		TokenUnderline:     tagUnderline,
		TokenCode:          tagInlineCode,
	}

	spanTags = [...]Tag{
		SpanComment: {Name: "span", Class: ClassComment},
		SpanString:  {Name: "span", Class: ClassString},
		SpanKeyword: {Name: "span", Class: ClassKeyword},
		SpanNumber:  {Name: "span", Class: ClassNumber},
	}
)

func preTag(language string) Tag {
	if language == "" {
		return Tag{Name: "pre"}
	}
	return Tag{Name: "pre", Class: languageClassPrefix + language}
}

func codeTag(language string) Tag {
	if language == "" {
		return tagInlineCode
	}
	return Tag{Name: "code", Class: languageClassPrefix + language}
}

// ChipTag returns the tag used for chip anchors spliced into slots.
func ChipTag(href string) Tag {
	return Tag{Name: "a", Class: ClassChip, Href: href}
}
