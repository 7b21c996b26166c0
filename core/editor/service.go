// ABOUTME: Content editor provides element-level workflows over one open article
// ABOUTME: Applies mutations optimistically and rolls back the in-memory view on save failure

package editor

import (
	"context"
	"strings"

	"readstash-api/core/content"
	"readstash-api/core/domain"
	coreerrors "readstash-api/core/errors"
	"readstash-api/core/interfaces"
)

const (
	highlightOpen  = `<mark class="rs-highlight">`
	highlightClose = `</mark>`
)

// Editor holds one article's decoded element sequence and persists
// element-granular mutations through the article store.
//
// Highlight state lives on the in-memory elements; it is baked into the
// encoded markup as a mark wrapper when persisting.
type Editor struct {
	store  interfaces.ArticleWriter
	codec  *content.Codec
	logger interfaces.Logger

	article  domain.Article
	elements []domain.ContentElement
}

// NewEditor creates an editor persisting through the given article writer
func NewEditor(store interfaces.ArticleWriter, logger interfaces.Logger) *Editor {
	return &Editor{
		store:  store,
		codec:  content.NewCodec(),
		logger: logger,
	}
}

// Open decodes the article's content and makes it the editing target
func (e *Editor) Open(article domain.Article) {
	e.article = article
	e.elements = unbakeHighlights(e.codec.Decode(article.Content))
}

// Elements returns the current element sequence
func (e *Editor) Elements() []domain.ContentElement {
	return cloneElements(e.elements)
}

// ToggleHighlight flips the highlight flag on one element and persists
func (e *Editor) ToggleHighlight(ctx context.Context, elementID string) error {
	idx := e.indexOf(elementID)
	if idx < 0 {
		return &coreerrors.NotFoundError{Resource: "element", ID: elementID}
	}

	return e.apply(ctx, func(elements []domain.ContentElement) []domain.ContentElement {
		elements[idx].IsHighlighted = !elements[idx].IsHighlighted
		return elements
	})
}

// DeleteElement removes exactly one element, leaving the rest in order
func (e *Editor) DeleteElement(ctx context.Context, elementID string) error {
	idx := e.indexOf(elementID)
	if idx < 0 {
		return &coreerrors.NotFoundError{Resource: "element", ID: elementID}
	}

	return e.apply(ctx, func(elements []domain.ContentElement) []domain.ContentElement {
		return append(elements[:idx], elements[idx+1:]...)
	})
}

// DeleteHighlighted removes every highlighted element. A view with no
// highlights is left untouched.
func (e *Editor) DeleteHighlighted(ctx context.Context) error {
	if !e.anyHighlighted() {
		return nil
	}

	return e.apply(ctx, func(elements []domain.ContentElement) []domain.ContentElement {
		remaining := elements[:0]
		for _, el := range elements {
			if !el.IsHighlighted {
				remaining = append(remaining, el)
			}
		}
		return remaining
	})
}

// ClearHighlights unsets the highlight flag on every element
func (e *Editor) ClearHighlights(ctx context.Context) error {
	if !e.anyHighlighted() {
		return nil
	}

	return e.apply(ctx, func(elements []domain.ContentElement) []domain.ContentElement {
		for i := range elements {
			elements[i].IsHighlighted = false
		}
		return elements
	})
}

// apply mutates a copy of the element sequence, installs it optimistically,
// persists, and restores the previous sequence when the save fails
func (e *Editor) apply(ctx context.Context, mutate func([]domain.ContentElement) []domain.ContentElement) error {
	snapshot := e.elements
	e.elements = mutate(cloneElements(e.elements))

	if err := e.persist(ctx); err != nil {
		e.elements = snapshot
		if e.logger != nil {
			e.logger.Error("Edit not saved, view restored", map[string]interface{}{
				"article_id": e.article.ID,
				"error":      err.Error(),
			})
		}
		return err
	}

	return nil
}

// persist encodes the current sequence with highlights baked in and updates
// the stored article
func (e *Editor) persist(ctx context.Context) error {
	e.article.Content = e.codec.Encode(bakeHighlights(e.elements))
	return e.store.UpdateArticle(ctx, e.article)
}

func (e *Editor) indexOf(elementID string) int {
	for i, el := range e.elements {
		if el.ID == elementID {
			return i
		}
	}
	return -1
}

func (e *Editor) anyHighlighted() bool {
	for _, el := range e.elements {
		if el.IsHighlighted {
			return true
		}
	}
	return false
}

// bakeHighlights wraps highlighted content in the persistent marker.
// Images, lists and code blocks carry no inner wrapper, so their highlight
// state stays transient.
func bakeHighlights(elements []domain.ContentElement) []domain.ContentElement {
	baked := cloneElements(elements)
	for i := range baked {
		if !baked[i].IsHighlighted || !isWrappable(baked[i].Type) {
			continue
		}
		baked[i].Content = highlightOpen + baked[i].Content + highlightClose
	}
	return baked
}

// unbakeHighlights strips the persistent marker back into the transient flag
func unbakeHighlights(elements []domain.ContentElement) []domain.ContentElement {
	for i := range elements {
		if !isWrappable(elements[i].Type) {
			continue
		}
		if strings.HasPrefix(elements[i].Content, highlightOpen) &&
			strings.HasSuffix(elements[i].Content, highlightClose) {
			elements[i].Content = strings.TrimSuffix(
				strings.TrimPrefix(elements[i].Content, highlightOpen), highlightClose)
			elements[i].IsHighlighted = true
		}
	}
	return elements
}

func isWrappable(elementType domain.ElementType) bool {
	switch elementType {
	case domain.ElementParagraph, domain.ElementHeading, domain.ElementBlockquote:
		return true
	}
	return false
}

func cloneElements(elements []domain.ContentElement) []domain.ContentElement {
	out := make([]domain.ContentElement, len(elements))
	copy(out, elements)
	return out
}
