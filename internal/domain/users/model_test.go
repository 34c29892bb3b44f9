package users

import "testing"

func TestNormalizeRole(t *testing.T) {
	cases := map[Role]Role{
		RolePetOwner:     RolePetOwner,
		RoleVeterinarian: RoleVeterinarian,
		"admin":          RolePetOwner,
		"":               RolePetOwner,
		"Veterinarian":   RolePetOwner,
	}
	for in, want := range cases {
		if got := NormalizeRole(in); got != want {
			t.Fatalf("NormalizeRole(%q)=%q want %q", in, got, want)
		}
	}
}
