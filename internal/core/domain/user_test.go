package domain

import "testing"

func TestRole_Valid(t *testing.T) {
	for _, r := range []Role{RoleCollaborator, RoleHRManager, RoleAdmin} {
		if !r.Valid() {
			t.Fatalf("expected %s to be valid", r)
		}
	}
	if Role("GERENTE").Valid() {
		t.Fatalf("unknown role reported valid")
	}
	if Role("").Valid() {
		t.Fatalf("empty role reported valid")
	}
}

func TestIsRole(t *testing.T) {
	u := &UserAccount{ID: "1", Role: RoleHRManager}

	if !IsRole(u, RoleHRManager) {
		t.Fatalf("expected role match")
	}
	if IsRole(u, RoleAdmin) {
		t.Fatalf("unexpected role match")
	}
	if IsRole(nil, RoleAdmin) {
		t.Fatalf("absent user must never hold a role")
	}
}

func TestHasAnyRole(t *testing.T) {
	u := &UserAccount{ID: "1", Role: RoleHRManager}

	if !HasAnyRole(u, RoleHRManager, RoleAdmin) {
		t.Fatalf("expected membership in {GESTOR_RH, ADMIN}")
	}
	if HasAnyRole(u, RoleAdmin) {
		t.Fatalf("unexpected membership in {ADMIN}")
	}
	if HasAnyRole(u) {
		t.Fatalf("empty set must yield false at the predicate level")
	}
	if HasAnyRole(nil, RoleCollaborator, RoleHRManager, RoleAdmin) {
		t.Fatalf("absent user must never match")
	}
}
