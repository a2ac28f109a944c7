package order

// Relation is how an actor relates to a particular order. An actor may hold
// several relations at once (a shop owner ordering from their own shop), so
// relations combine as a bit set.
type Relation uint8

const (
	RelationCustomer Relation = 1 << iota
	RelationShopOwner
	RelationRider
	RelationAdmin

	// RelationNone is an authenticated actor unrelated to the order.
	RelationNone Relation = 0
)

// participantRelations are checked against the transition table in this order.
var participantRelations = []Relation{RelationCustomer, RelationShopOwner, RelationRider}

// Has reports whether r includes every bit of other.
func (r Relation) Has(other Relation) bool {
	return other != RelationNone && r&other == other
}

// IsParticipant reports whether r grants full read access.
func (r Relation) IsParticipant() bool {
	return r != RelationNone
}

func (r Relation) String() string {
	if r == RelationNone {
		return "none"
	}
	names := []struct {
		rel  Relation
		name string
	}{
		{RelationCustomer, "customer"},
		{RelationShopOwner, "shop_owner"},
		{RelationRider, "rider"},
		{RelationAdmin, "admin"},
	}
	out := ""
	for _, n := range names {
		if r.Has(n.rel) {
			if out != "" {
				out += "|"
			}
			out += n.name
		}
	}
	return out
}

// Stamp names the lifecycle timestamp a transition sets.
type Stamp int

const (
	StampNone Stamp = iota
	StampPaidAt
	StampPreparedAt
	StampDeliveredAt
	StampFinishedAt
	StampCanceledAt
)

func (s Stamp) String() string {
	switch s {
	case StampPaidAt:
		return "paid_at"
	case StampPreparedAt:
		return "prepared_at"
	case StampDeliveredAt:
		return "delivered_at"
	case StampFinishedAt:
		return "finished_at"
	case StampCanceledAt:
		return "canceled_at"
	default:
		return "none"
	}
}

type transitionKey struct {
	actor Relation
	from  Status
	to    Status
}

// transitions is the complete set of modeled status changes. Rider assignment
// (Prepared -> Delivering) is not here: it goes through Order.ClaimBy.
// Administrators bypass the table through Order.Override.
var transitions = map[transitionKey]Stamp{
	{RelationCustomer, Unpaid, Canceled}:     StampCanceledAt,
	{RelationCustomer, Unpaid, Preparing}:    StampPaidAt,
	{RelationShopOwner, Preparing, Prepared}: StampPreparedAt,
	{RelationRider, Delivering, Finished}:    StampFinishedAt,
}

// LookupTransition returns the timestamp stamped when an actor holding relations
// moves an order from one status to another, and false when no row permits it.
func LookupTransition(relations Relation, from, to Status) (Stamp, bool) {
	for _, rel := range participantRelations {
		if !relations.Has(rel) {
			continue
		}
		if stamp, ok := transitions[transitionKey{actor: rel, from: from, to: to}]; ok {
			return stamp, true
		}
	}
	return StampNone, false
}
