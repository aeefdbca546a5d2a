package dnd

// ExternalItem is one entry of a native payload. Values are only readable at
// drop time.
type ExternalItem struct {
	Type  string
	Value string
}

// ExternalSource is the source of a drag that entered the scene from outside.
type ExternalSource struct {
	// Types lists the payload types announced when the drag entered.
	Types []string
	// Items is empty until the drop event.
	Items []ExternalItem
}

// HasType reports whether the payload announces typ.
func (s ExternalSource) HasType(typ string) bool {
	for _, t := range s.Types {
		if t == typ {
			return true
		}
	}
	return false
}

// Get returns the first item value of typ.
func (s ExternalSource) Get(typ string) (string, bool) {
	for _, it := range s.Items {
		if it.Type == typ {
			return it.Value, true
		}
	}
	return "", false
}

// ExternalAdapter handles native drags coming from outside the scene.
type ExternalAdapter struct {
	*Adapter[ExternalSource]
}

// NewExternalAdapter creates the external drag engine on m.
func NewExternalAdapter(m *Manager) *ExternalAdapter {
	return &ExternalAdapter{Adapter: newAdapter[ExternalSource](m, DragTypeExternal)}
}

// CanStart reports whether a native drag announcing types may start. Drags
// that began inside the scene are already active and win.
func (x *ExternalAdapter) CanStart(types []string) bool {
	return x.mgr.CanStart() && len(types) > 0
}

// Enter starts an external drag over the node under the pointer. A payload
// without types is malformed and ignored.
func (x *ExternalAdapter) Enter(over *Node, input Input, types []string) bool {
	if len(types) == 0 {
		x.mgr.logger.Warn("dnd: external drag without payload types; ignoring", nodeAttr(over))
		return false
	}
	source := ExternalSource{Types: append([]string(nil), types...)}
	return x.start(source, over, input)
}

// Drop ends the active external drag. items become the source payload of the
// drop event.
func (x *ExternalAdapter) Drop(input Input, items []ExternalItem) {
	s := x.session
	if s == nil {
		return
	}
	source := s.source
	source.Items = append([]ExternalItem(nil), items...)
	s.dropWithSource(input, source)
}

// Leave cancels the active external drag, as when the payload leaves the window.
func (x *ExternalAdapter) Leave() {
	if x.session != nil {
		x.session.cancel()
	}
}
