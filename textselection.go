package dnd

// TextSelectionSource is the source of a drag of selected text.
type TextSelectionSource struct {
	// Node is the text node the selection started in.
	Node  *Node
	Plain string
	HTML  string
}

// TextSelectionAdapter handles drags of selected text.
type TextSelectionAdapter struct {
	*Adapter[TextSelectionSource]
}

// NewTextSelectionAdapter creates the text selection drag engine on m.
func NewTextSelectionAdapter(m *Manager) *TextSelectionAdapter {
	return &TextSelectionAdapter{Adapter: newAdapter[TextSelectionSource](m, DragTypeTextSelection)}
}

// Lift starts a drag of the selection captured from origin. An empty plain
// text payload is malformed and ignored.
func (t *TextSelectionAdapter) Lift(origin *Node, input Input, plain, html string) bool {
	if origin == nil || plain == "" {
		t.mgr.logger.Warn("dnd: text selection drag without text; ignoring", nodeAttr(origin))
		return false
	}
	return t.start(TextSelectionSource{Node: origin, Plain: plain, HTML: html}, origin, input)
}
