package edit

import "github.com/mesh-intelligence/contactdesk/pkg/types"

// Batch is the DraftBatch: at most one draft per record id, kept in the
// order each record was first edited.
type Batch struct {
	order  []string
	drafts map[string]*types.DraftEdit
}

func newBatch() *Batch {
	return &Batch{drafts: make(map[string]*types.DraftEdit)}
}

// set merges one field change into the draft for recordID; last write wins.
func (b *Batch) set(recordID, field string, value any) {
	d, ok := b.drafts[recordID]
	if !ok {
		d = &types.DraftEdit{RecordID: recordID, Changes: make(map[string]any)}
		b.drafts[recordID] = d
		b.order = append(b.order, recordID)
	}
	d.Changes[field] = value
}

// absorb applies every change in later on top of b.
func (b *Batch) absorb(later *Batch) {
	for _, id := range later.order {
		for field, value := range later.drafts[id].Changes {
			b.set(id, field, value)
		}
	}
}

// Len returns the number of records with drafts.
func (b *Batch) Len() int {
	return len(b.order)
}

// Drafts returns deep copies of the drafts in first-edit order.
func (b *Batch) Drafts() []types.DraftEdit {
	out := make([]types.DraftEdit, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.drafts[id].Clone())
	}
	return out
}
