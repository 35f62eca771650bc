package memory

import (
	"encoding/json"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/beneficios/portal-api/internal/core/domain"
	"github.com/beneficios/portal-api/internal/core/ports"
)

func TestDirectory_AddUser_ForcesRoleAndStatus(t *testing.T) {
	d := NewDirectory(nil)

	u := d.AddUser(ports.NewUserInput{
		Name:     "Novo Colaborador",
		Email:    "novo@empresa.com.br",
		Username: "novo",
		Secret:   "segredo1",
	})

	if u.ID == "" {
		t.Fatalf("expected generated id")
	}
	if u.Role != domain.RoleCollaborator {
		t.Fatalf("expected forced role COLABORADOR, got %s", u.Role)
	}
	if u.Status != domain.StatusActive {
		t.Fatalf("expected forced status ATIVO, got %s", u.Status)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.SecretHash), []byte("segredo1")); err != nil {
		t.Fatalf("stored hash does not match secret: %v", err)
	}
	if u.SecretHash == "segredo1" {
		t.Fatalf("secret stored in the clear")
	}
}

func TestDirectory_AddUser_UniqueIDsAndOrder(t *testing.T) {
	d := NewDirectory(SeedUsers())

	a := d.AddUser(ports.NewUserInput{Username: "a", Secret: "secret1"})
	b := d.AddUser(ports.NewUserInput{Username: "b", Secret: "secret2"})

	if a.ID == b.ID {
		t.Fatalf("ids must be unique, both got %s", a.ID)
	}

	users := d.Users()
	if len(users) != 5 {
		t.Fatalf("expected 5 users, got %d", len(users))
	}
	if users[3].ID != a.ID || users[4].ID != b.ID {
		t.Fatalf("insertion order not preserved")
	}
}

func TestDirectory_SetRole(t *testing.T) {
	d := NewDirectory(SeedUsers())

	d.SetRole("1", domain.RoleAdmin)

	u, ok := d.ByID("1")
	if !ok {
		t.Fatalf("seed user missing")
	}
	if u.Role != domain.RoleAdmin {
		t.Fatalf("expected ADMIN, got %s", u.Role)
	}
	if u.Name != "Ana Souza" || u.Status != domain.StatusActive {
		t.Fatalf("other fields must be preserved: %+v", u)
	}

	users := d.Users()
	if users[0].ID != "1" {
		t.Fatalf("record position must be preserved")
	}
}

func TestDirectory_SetRole_PublishedRecordsStayUntouched(t *testing.T) {
	d := NewDirectory(SeedUsers())

	before, _ := d.ByID("1")
	d.SetRole("1", domain.RoleAdmin)

	if before.Role != domain.RoleCollaborator {
		t.Fatalf("previously returned record mutated, got %s", before.Role)
	}
	after, _ := d.ByID("1")
	if after.Role != domain.RoleAdmin {
		t.Fatalf("re-fetch must observe the new role, got %s", after.Role)
	}
}

func TestDirectory_SetRole_ConcurrentWithReaders(t *testing.T) {
	d := NewDirectory(SeedUsers())

	// A request encoding the record must never observe a torn write while an
	// admin flips the role; the race detector fails this on in-place mutation.
	done := make(chan struct{})
	go func() {
		defer close(done)
		roles := [...]domain.Role{domain.RoleAdmin, domain.RoleCollaborator}
		for i := 0; i < 1000; i++ {
			d.SetRole("1", roles[i%2])
		}
	}()

	for i := 0; i < 1000; i++ {
		u, ok := d.ByID("1")
		if !ok {
			t.Fatalf("seed user missing")
		}
		if _, err := json.Marshal(u); err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if u.Role != domain.RoleAdmin && u.Role != domain.RoleCollaborator {
			t.Fatalf("inconsistent record observed: %+v", u)
		}
	}
	<-done
}

func TestDirectory_SetRole_UnknownIDIsNoOp(t *testing.T) {
	d := NewDirectory(SeedUsers())

	d.SetRole("999", domain.RoleAdmin)

	for _, u := range d.Users() {
		if u.ID != "3" && u.Role == domain.RoleAdmin {
			t.Fatalf("unexpected role change on %s", u.ID)
		}
	}
}

func TestDirectory_ByID_Unknown(t *testing.T) {
	d := NewDirectory(SeedUsers())
	if _, ok := d.ByID("999"); ok {
		t.Fatalf("expected miss for unknown id")
	}
}
