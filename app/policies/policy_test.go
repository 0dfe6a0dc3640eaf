package policies_test

import (
	"testing"

	"shopapi/app/policies"
	"shopapi/pkg/auth"
)

var (
	anonymous *auth.Identity
	customer  = &auth.Identity{UserID: 7}
	stranger  = &auth.Identity{UserID: 8}
	staff     = &auth.Identity{UserID: 1, IsStaff: true}
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name     string
		actor    *auth.Identity
		action   policies.Action
		resource policies.Resource
		ownerID  uint
		want     policies.Decision
	}{
		// products and collections: open reads, staff writes
		{"anon lists products", anonymous, policies.ActionList, policies.ResourceProduct, 0, policies.Allow},
		{"anon retrieves product", anonymous, policies.ActionRetrieve, policies.ResourceProduct, 0, policies.Allow},
		{"anon creates product", anonymous, policies.ActionCreate, policies.ResourceProduct, 0, policies.Unauthenticated},
		{"customer creates product", customer, policies.ActionCreate, policies.ResourceProduct, 0, policies.Forbidden},
		{"staff creates product", staff, policies.ActionCreate, policies.ResourceProduct, 0, policies.Allow},
		{"customer deletes product", customer, policies.ActionDelete, policies.ResourceProduct, 0, policies.Forbidden},
		{"staff updates collection", staff, policies.ActionUpdate, policies.ResourceCollection, 0, policies.Allow},
		{"customer updates collection", customer, policies.ActionUpdate, policies.ResourceCollection, 0, policies.Forbidden},
		{"anon lists collections", anonymous, policies.ActionList, policies.ResourceCollection, 0, policies.Allow},

		// reviews: open reads, authenticated create, owner-or-staff mutation
		{"anon lists reviews", anonymous, policies.ActionList, policies.ResourceReview, 0, policies.Allow},
		{"anon creates review", anonymous, policies.ActionCreate, policies.ResourceReview, 0, policies.Unauthenticated},
		{"customer creates review", customer, policies.ActionCreate, policies.ResourceReview, 0, policies.Allow},
		{"owner updates own review", customer, policies.ActionUpdate, policies.ResourceReview, customer.UserID, policies.Allow},
		{"stranger updates review", stranger, policies.ActionUpdate, policies.ResourceReview, customer.UserID, policies.Forbidden},
		{"staff deletes any review", staff, policies.ActionDelete, policies.ResourceReview, customer.UserID, policies.Allow},
		{"anon deletes review", anonymous, policies.ActionDelete, policies.ResourceReview, customer.UserID, policies.Unauthenticated},

		// orders: authenticated list/create, owner-or-staff retrieve, staff mutation
		{"anon lists orders", anonymous, policies.ActionList, policies.ResourceOrder, 0, policies.Unauthenticated},
		{"customer lists orders", customer, policies.ActionList, policies.ResourceOrder, 0, policies.Allow},
		{"anon creates order", anonymous, policies.ActionCreate, policies.ResourceOrder, 0, policies.Unauthenticated},
		{"customer creates order", customer, policies.ActionCreate, policies.ResourceOrder, 0, policies.Allow},
		{"owner retrieves own order", customer, policies.ActionRetrieve, policies.ResourceOrder, customer.UserID, policies.Allow},
		{"stranger retrieves order", stranger, policies.ActionRetrieve, policies.ResourceOrder, customer.UserID, policies.Forbidden},
		{"staff retrieves any order", staff, policies.ActionRetrieve, policies.ResourceOrder, customer.UserID, policies.Allow},
		{"owner updates own order", customer, policies.ActionUpdate, policies.ResourceOrder, customer.UserID, policies.Forbidden},
		{"staff updates order", staff, policies.ActionUpdate, policies.ResourceOrder, customer.UserID, policies.Allow},
		{"customer deletes order", customer, policies.ActionDelete, policies.ResourceOrder, customer.UserID, policies.Forbidden},
		{"staff deletes order", staff, policies.ActionDelete, policies.ResourceOrder, customer.UserID, policies.Allow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := policies.Decide(tt.actor, tt.action, tt.resource, tt.ownerID)
			if got != tt.want {
				t.Errorf("Decide(%v, %s, %s, %d) = %v, want %v",
					tt.actor, tt.action, tt.resource, tt.ownerID, got, tt.want)
			}
		})
	}
}
