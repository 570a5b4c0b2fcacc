package services

import "testing"

func TestToggleFavorite(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "dua@test.dev")
	svc := NewDuaService(db)

	fav, err := svc.ToggleFavorite(ctx(), user.ID, "morning-protection")
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !fav {
		t.Error("first toggle should favorite")
	}

	ids, err := svc.ListFavorites(ctx(), user.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ids) != 1 || ids[0] != "morning-protection" {
		t.Errorf("favorites = %v, want [morning-protection]", ids)
	}

	fav, err = svc.ToggleFavorite(ctx(), user.ID, "morning-protection")
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if fav {
		t.Error("second toggle should unfavorite")
	}

	ids, _ = svc.ListFavorites(ctx(), user.ID)
	if len(ids) != 0 {
		t.Errorf("favorites after unfavorite = %v, want empty", ids)
	}

	// Third toggle re-favorites; the hard delete must have freed the slot.
	fav, err = svc.ToggleFavorite(ctx(), user.ID, "morning-protection")
	if err != nil {
		t.Fatalf("third toggle: %v", err)
	}
	if !fav {
		t.Error("third toggle should favorite again")
	}
}

func TestFavoritesAreScopedToUser(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice@test.dev")
	bob := seedUser(t, db, "bob@test.dev")
	svc := NewDuaService(db)

	if _, err := svc.ToggleFavorite(ctx(), alice.ID, "iftar"); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	ids, err := svc.ListFavorites(ctx(), bob.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("bob sees alice's favorites: %v", ids)
	}
}
