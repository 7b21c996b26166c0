// ABOUTME: Content codec converts between markup and an ordered sequence of typed content elements
// ABOUTME: Decode never fails and never returns an empty sequence; encode is its structural inverse

package content

import (
	"fmt"
	"html"
	"strings"

	"readstash-api/core/domain"

	"github.com/PuerkitoBio/goquery"
)

const (
	// NoContentNotice is carried by the fallback paragraph returned for
	// empty or blank markup
	NoContentNotice = "No content available"

	// ParseFailureNotice is carried by the fallback paragraph returned
	// when the markup cannot be parsed at all
	ParseFailureNotice = "Content could not be parsed"
)

// containerSelectors name the content containers preferred over the body
// when decoding a full page, in preference order
var containerSelectors = []string{"article", "main", ".content"}

// Codec converts markup to content elements and back. It is stateless and
// safe for concurrent use.
type Codec struct{}

// NewCodec creates a new content codec
func NewCodec() *Codec {
	return &Codec{}
}

// Decode parses markup into an ordered sequence of content elements.
// It never fails and never returns an empty sequence: blank input and
// unparseable input each yield a single fallback paragraph.
func (c *Codec) Decode(markup string) []domain.ContentElement {
	if strings.TrimSpace(markup) == "" {
		return []domain.ContentElement{fallbackParagraph(NoContentNotice)}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return []domain.ContentElement{fallbackParagraph(ParseFailureNotice)}
	}

	root := doc.Find("body").First()
	for _, selector := range containerSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			root = sel
			break
		}
	}

	var elements []domain.ContentElement
	counter := 0
	c.decodeChildren(root, &elements, &counter)

	if len(elements) == 0 {
		// Markup with no recognizable structure at all; keep any bare
		// text rather than dropping it
		if text := strings.TrimSpace(root.Text()); text != "" {
			return []domain.ContentElement{{
				ID:      fmt.Sprintf("%s-0", domain.ElementParagraph),
				Type:    domain.ElementParagraph,
				Content: text,
			}}
		}
		return []domain.ContentElement{fallbackParagraph(NoContentNotice)}
	}

	return elements
}

// decodeChildren walks the direct children of sel, appending one element
// per recognized node. Unrecognized containers are flattened; unrecognized
// leaves become paragraphs over their own outer markup.
func (c *Codec) decodeChildren(sel *goquery.Selection, elements *[]domain.ContentElement, counter *int) {
	sel.Children().Each(func(_ int, child *goquery.Selection) {
		tag := goquery.NodeName(child)

		switch tag {
		case "script", "style":
			return

		case "p":
			*elements = append(*elements, newElement(counter, domain.ElementParagraph, innerMarkup(child)))

		case "h1", "h2", "h3", "h4", "h5", "h6":
			el := newElement(counter, domain.ElementHeading, innerMarkup(child))
			el.Level = int(tag[1] - '0')
			*elements = append(*elements, el)

		case "img":
			el := newElement(counter, domain.ElementImage, "")
			el.Src, _ = child.Attr("src")
			el.Alt, _ = child.Attr("alt")
			*elements = append(*elements, el)

		case "ul", "ol":
			// Lists keep their entire outer markup as one element
			*elements = append(*elements, newElement(counter, domain.ElementList, outerMarkup(child)))

		case "pre":
			*elements = append(*elements, newElement(counter, domain.ElementCode, outerMarkup(child)))

		case "blockquote":
			*elements = append(*elements, newElement(counter, domain.ElementBlockquote, innerMarkup(child)))

		default:
			if child.Children().Length() > 0 {
				c.decodeChildren(child, elements, counter)
				return
			}
			*elements = append(*elements, newElement(counter, domain.ElementParagraph, outerMarkup(child)))
		}
	})
}

// Encode reconstructs markup from an ordered sequence of content elements.
// List and code elements already carry their complete outer markup and are
// inserted as-is; all other types are re-wrapped in their tag.
func (c *Codec) Encode(elements []domain.ContentElement) string {
	var b strings.Builder

	for _, el := range elements {
		switch el.Type {
		case domain.ElementHeading:
			level := el.Level
			if level < 1 || level > 6 {
				level = 2
			}
			fmt.Fprintf(&b, "<h%d>%s</h%d>", level, el.Content, level)

		case domain.ElementImage:
			b.WriteString("<img")
			if el.Src != "" {
				fmt.Fprintf(&b, ` src="%s"`, html.EscapeString(el.Src))
			}
			if el.Alt != "" {
				fmt.Fprintf(&b, ` alt="%s"`, html.EscapeString(el.Alt))
			}
			b.WriteString(">")

		case domain.ElementList:
			b.WriteString(firstFragmentChild(el.Content, "<ul></ul>"))

		case domain.ElementCode:
			b.WriteString(firstFragmentChild(el.Content, "<pre></pre>"))

		case domain.ElementBlockquote:
			fmt.Fprintf(&b, "<blockquote>%s</blockquote>", el.Content)

		default:
			fmt.Fprintf(&b, "<p>%s</p>", el.Content)
		}
	}

	return b.String()
}

// newElement builds an element with the next per-decode id
func newElement(counter *int, elementType domain.ElementType, markup string) domain.ContentElement {
	el := domain.ContentElement{
		ID:      fmt.Sprintf("%s-%d", elementType, *counter),
		Type:    elementType,
		Content: markup,
	}
	*counter++
	return el
}

// fallbackParagraph builds the single synthetic element decode returns when
// it cannot produce anything else
func fallbackParagraph(notice string) domain.ContentElement {
	return domain.ContentElement{
		ID:      fmt.Sprintf("%s-0", domain.ElementParagraph),
		Type:    domain.ElementParagraph,
		Content: notice,
	}
}

// innerMarkup returns the inner HTML of a node
func innerMarkup(sel *goquery.Selection) string {
	markup, err := sel.Html()
	if err != nil {
		return ""
	}
	return markup
}

// outerMarkup returns the node's own markup including its tag
func outerMarkup(sel *goquery.Selection) string {
	markup, err := goquery.OuterHtml(sel)
	if err != nil {
		return ""
	}
	return markup
}

// firstFragmentChild re-parses a stored outer-markup fragment and returns
// its first element, falling back to an empty container when the fragment
// is unparseable
func firstFragmentChild(fragment, empty string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return empty
	}

	first := doc.Find("body").Children().First()
	if first.Length() == 0 {
		return empty
	}

	markup, err := goquery.OuterHtml(first)
	if err != nil {
		return empty
	}
	return markup
}
