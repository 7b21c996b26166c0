// ABOUTME: ContentElement domain model represents one structural unit of a document body
// ABOUTME: Defines the element type enumeration used by the content codec and editor

package domain

// ElementType identifies the structural kind of a content element
type ElementType string

const (
	ElementParagraph  ElementType = "paragraph"
	ElementHeading    ElementType = "heading"
	ElementImage      ElementType = "image"
	ElementList       ElementType = "list"
	ElementCode       ElementType = "code"
	ElementBlockquote ElementType = "blockquote"
)

// ContentElement is one structural unit (paragraph, heading, image, list,
// code block or blockquote) of a decoded document body.
//
// IDs are assigned per decode and are not stable across re-parses of
// modified content; they must not be used as persistent keys.
type ContentElement struct {
	// ID is unique within one decoding of one document
	ID string `json:"id"`

	// Type is the structural kind of the element
	Type ElementType `json:"type"`

	// Content holds the element's inner markup, or the complete outer
	// markup for list and code elements. Empty for images.
	Content string `json:"content"`

	// Level is the heading level (1-6), headings only
	Level int `json:"level,omitempty"`

	// Src and Alt describe the image source, images only
	Src string `json:"src,omitempty"`
	Alt string `json:"alt,omitempty"`

	// IsHighlighted is a transient editing flag, not persisted directly
	IsHighlighted bool `json:"-"`
}
