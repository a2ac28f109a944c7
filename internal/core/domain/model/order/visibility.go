package order

// Visibility is the projection of an order an actor is allowed to read.
type Visibility int

const (
	// VisibilityFull exposes the whole record.
	VisibilityFull Visibility = iota + 1
	// VisibilityRedacted exposes only status, preparedAt and the two address blocks.
	VisibilityRedacted
)

// VisibilityFor decides what an actor holding relations may read. Participants
// and administrators see everything; anybody else may only browse Prepared
// orders, redacted, which is the riders' list of orders waiting to be claimed.
func (o *Order) VisibilityFor(relations Relation) (Visibility, error) {
	if relations.IsParticipant() {
		return VisibilityFull, nil
	}
	if o.status == Prepared {
		return VisibilityRedacted, nil
	}
	return 0, ErrOrderNotVisible
}
