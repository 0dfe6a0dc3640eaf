// Package policies is the authorization layer: a pure decision function over
// (actor, action, resource, owner), testable without any HTTP plumbing.
package policies

import "shopapi/pkg/auth"

// Action is a CRUD operation on a resource.
type Action string

const (
	ActionList     Action = "list"
	ActionRetrieve Action = "retrieve"
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
)

// Resource names an entity type.
type Resource string

const (
	ResourceProduct    Resource = "product"
	ResourceReview     Resource = "review"
	ResourceOrder      Resource = "order"
	ResourceCollection Resource = "collection"
)

// Decision is the outcome of a policy check. Unauthenticated and Forbidden
// are distinct so the HTTP layer can answer 401 vs 403.
type Decision int

const (
	Allow Decision = iota
	Unauthenticated
	Forbidden
)

// Decide applies the permission table:
//
//	resource    list                retrieve        create         update/delete
//	product     anyone              anyone          staff          staff
//	review      anyone              anyone          authenticated  owner or staff
//	order       own (staff: all)    owner or staff  authenticated  staff
//	collection  anyone              anyone          staff          staff
//
// ownerID is the owning user of the target resource; pass 0 where ownership
// does not apply (list, create, ownerless resources). For order list, Allow
// means "may list" — scoping the result set to the actor's own orders is the
// repository's job.
func Decide(actor *auth.Identity, action Action, resource Resource, ownerID uint) Decision {
	switch resource {
	case ResourceProduct, ResourceCollection:
		if action == ActionList || action == ActionRetrieve {
			return Allow
		}
		return staffOnly(actor)

	case ResourceReview:
		switch action {
		case ActionList, ActionRetrieve:
			return Allow
		case ActionCreate:
			return authenticated(actor)
		default:
			return ownerOrStaff(actor, ownerID)
		}

	case ResourceOrder:
		switch action {
		case ActionList, ActionCreate:
			return authenticated(actor)
		case ActionRetrieve:
			return ownerOrStaff(actor, ownerID)
		default:
			return staffOnly(actor)
		}
	}

	return Forbidden
}

func authenticated(actor *auth.Identity) Decision {
	if actor == nil {
		return Unauthenticated
	}
	return Allow
}

func staffOnly(actor *auth.Identity) Decision {
	if actor == nil {
		return Unauthenticated
	}
	if !actor.IsStaff {
		return Forbidden
	}
	return Allow
}

func ownerOrStaff(actor *auth.Identity, ownerID uint) Decision {
	if actor == nil {
		return Unauthenticated
	}
	if actor.IsStaff || actor.UserID == ownerID {
		return Allow
	}
	return Forbidden
}
