package dnd

// resolve computes the drop target chain under hit, innermost first.
// current is the chain of the previous resolution; when the fresh chain is
// shorter, sticky targets from current may be kept.
func (a *Adapter[S]) resolve(hit *Node, input Input, source S, current []*DropTargetRecord) []*DropTargetRecord {
	actual := a.actualDropTargets(hit, input, source)
	// Stickiness can only keep targets the fresh chain lost.
	if len(actual) >= len(current) {
		return actual
	}

	// Compare outermost first.
	lastOuter := reversed(current)
	freshOuter := reversed(actual)
	result := make([]*DropTargetRecord, 0, len(current))
	for i, last := range lastOuter {
		if i < len(freshOuter) {
			result = append(result, freshOuter[i])
			continue
		}
		// A target is only kept while its parent in the chain is unchanged;
		// moving into a sibling subtree releases it.
		var parent, lastParent *Node
		if i > 0 {
			parent = result[i-1].Node
			lastParent = lastOuter[i-1].Node
		}
		if parent != lastParent {
			break
		}
		reg, ok := a.targets.Lookup(last.Node)
		if !ok {
			break
		}
		fb := DropTargetFeedback[S]{Input: input, Source: source, Node: last.Node}
		if reg.Options.CanDrop != nil && !reg.Options.CanDrop(fb) {
			break
		}
		if reg.Options.GetIsSticky == nil || !reg.Options.GetIsSticky(fb) {
			break
		}
		if last.IsActiveDueToStickiness {
			result = append(result, last)
			continue
		}
		kept := *last
		kept.IsActiveDueToStickiness = true
		result = append(result, &kept)
	}
	return reversed(result)
}

// actualDropTargets walks from hit to the root collecting eligible drop
// targets. A target whose CanDrop is false is skipped without stopping the walk.
func (a *Adapter[S]) actualDropTargets(hit *Node, input Input, source S) []*DropTargetRecord {
	var out []*DropTargetRecord
	for n := hit; n != nil; n = n.Parent {
		reg, ok := a.targets.Lookup(n)
		if !ok {
			continue
		}
		opts := &reg.Options
		fb := DropTargetFeedback[S]{Input: input, Source: source, Node: n}
		if opts.CanDrop != nil && !opts.CanDrop(fb) {
			continue
		}
		var data Data
		if opts.GetData != nil {
			data = opts.GetData(fb)
		}
		if data == nil {
			data = Data{}
		}
		effect := DropEffectMove
		if opts.GetDropEffect != nil {
			effect = opts.GetDropEffect(fb)
		}
		out = append(out, &DropTargetRecord{Node: n, Data: data, DropEffect: effect})
	}
	return out
}

func reversed(chain []*DropTargetRecord) []*DropTargetRecord {
	out := make([]*DropTargetRecord, len(chain))
	for i, r := range chain {
		out[len(chain)-1-i] = r
	}
	return out
}
