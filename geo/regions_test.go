package geo

import "testing"

func TestMembersExactKey(t *testing.T) {
	members, ok := Members("north west")
	if !ok {
		t.Fatal("north west should resolve")
	}
	assertContains(t, members, "manchester")
	assertContains(t, members, "liverpool")
}

func TestMembersBidirectionalSubstring(t *testing.T) {
	// Input containing the key.
	if _, ok := Members("the north west of england"); !ok {
		t.Error("input containing a region key should resolve")
	}
	// Key containing the input.
	members, ok := Members("midlands")
	if !ok {
		t.Fatal("partial region name should resolve")
	}
	// First match in declaration order wins: west midlands precedes east midlands.
	assertContains(t, members, "birmingham")
}

func TestMembersUnknown(t *testing.T) {
	if _, ok := Members("atlantis"); ok {
		t.Error("unknown region should not resolve")
	}
	if _, ok := Members(""); ok {
		t.Error("empty region should not resolve")
	}
}

func TestMembersUmbrellaNotRostered(t *testing.T) {
	// "uk" and "england" are umbrella terms, not rostered regions.
	if _, ok := Members("uk"); ok {
		t.Error("uk should have no roster")
	}
}

func TestKeysOrder(t *testing.T) {
	keys := Keys()
	if len(keys) != 11 {
		t.Fatalf("expected 11 region keys, got %d", len(keys))
	}
	if keys[0] != "london" || keys[10] != "scotland" {
		t.Errorf("declaration order not preserved: %v", keys)
	}
}

func TestMatchesCaseInsensitive(t *testing.T) {
	if !Matches("  YORKSHIRE ", "yorkshire") {
		t.Error("matching should lowercase and trim the input")
	}
	if Matches("", "yorkshire") {
		t.Error("empty input should not match")
	}
}

func assertContains(t *testing.T, items []string, want string) {
	t.Helper()
	for _, item := range items {
		if item == want {
			return
		}
	}
	t.Errorf("expected %q in %v", want, items)
}
