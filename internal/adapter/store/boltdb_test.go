package store

import (
	"path/filepath"
	"reflect"
	"testing"

	"go.etcd.io/bbolt"

	"brstemmer/internal/domain"
)

func openTestStore(t *testing.T) *BoltStore {
	t.Helper()
	st, err := NewBoltStore(filepath.Join(t.TempDir(), "stems.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestBoltStore_PutLookupFamily(t *testing.T) {
	st := openTestStore(t)

	pairs := []domain.Pair{
		{Word: "menina", Stem: "menino"},
		{Word: "meninas", Stem: "menino"},
		{Word: "cantando", Stem: "cant"},
		{Word: "cantar", Stem: "cant"},
		{Word: "cantar", Stem: "cant"},
	}
	if err := st.PutPairs(pairs); err != nil {
		t.Fatalf("PutPairs failed: %v", err)
	}

	stem, ok, err := st.Lookup("meninas")
	if err != nil || !ok || stem != "menino" {
		t.Errorf("expected (menino, true, nil), got (%q, %v, %v)", stem, ok, err)
	}
	if _, ok, _ := st.Lookup("livro"); ok {
		t.Error("expected unknown word to be missing")
	}

	family, err := st.Family("cant")
	if err != nil {
		t.Fatalf("Family failed: %v", err)
	}
	if want := []string{"cantando", "cantar"}; !reflect.DeepEqual(family, want) {
		t.Errorf("expected %v, got %v", want, family)
	}

	stats, err := st.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Words != 4 || stats.Stems != 2 {
		t.Errorf("expected 4 words and 2 stems, got %d and %d", stats.Words, stats.Stems)
	}
	if stats.UpdatedAt.IsZero() {
		t.Error("expected updated_at to be set")
	}
}

func TestBoltStore_PutPairsMovesWordBetweenFamilies(t *testing.T) {
	st := openTestStore(t)

	if err := st.PutPairs([]domain.Pair{{Word: "casas", Stem: "cas"}}); err != nil {
		t.Fatal(err)
	}
	if err := st.PutPairs([]domain.Pair{{Word: "casas", Stem: "casa"}}); err != nil {
		t.Fatal(err)
	}

	if family, _ := st.Family("cas"); len(family) != 0 {
		t.Errorf("expected old family to be removed, got %v", family)
	}
	if family, _ := st.Family("casa"); !reflect.DeepEqual(family, []string{"casas"}) {
		t.Errorf("expected [casas], got %v", family)
	}
}

func TestBoltStore_Clear(t *testing.T) {
	st := openTestStore(t)
	if err := st.Migrate("abc"); err != nil {
		t.Fatal(err)
	}
	if err := st.PutPairs([]domain.Pair{{Word: "bons", Stem: "bom"}}); err != nil {
		t.Fatal(err)
	}
	if err := st.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	stats, err := st.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.Words != 0 || stats.Stems != 0 {
		t.Errorf("expected empty store, got %+v", stats)
	}
	if stats.Fingerprint != "abc" {
		t.Errorf("expected schema info to survive Clear, got %q", stats.Fingerprint)
	}
}

func TestBoltStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stems.db")
	st, err := NewBoltStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := st.PutPairs([]domain.Pair{{Word: "felizmente", Stem: "feliz"}}); err != nil {
		t.Fatal(err)
	}
	st.Close()

	st, err = NewBoltStore(path)
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()
	if stem, ok, _ := st.Lookup("felizmente"); !ok || stem != "feliz" {
		t.Errorf("expected feliz after reopen, got (%q, %v)", stem, ok)
	}
}

func TestCheckMigration(t *testing.T) {
	st := openTestStore(t)

	result, err := st.CheckMigration("f1")
	if err != nil {
		t.Fatal(err)
	}
	if !result.NeedsMigration || result.NeedsRebuild {
		t.Errorf("expected fresh store to need migration only, got %+v", result)
	}

	if err := st.Migrate("f1"); err != nil {
		t.Fatal(err)
	}
	result, err = st.CheckMigration("f1")
	if err != nil {
		t.Fatal(err)
	}
	if result.NeedsMigration || result.NeedsRebuild {
		t.Errorf("expected up-to-date store, got %+v", result)
	}

	result, err = st.CheckMigration("f2")
	if err != nil {
		t.Fatal(err)
	}
	if !result.NeedsRebuild {
		t.Errorf("expected rebuild after rule change, got %+v", result)
	}

	if err := st.SetSchemaInfo(&SchemaInfo{Version: CurrentSchemaVersion + 1}); err != nil {
		t.Fatal(err)
	}
	result, err = st.CheckMigration("f1")
	if err != nil {
		t.Fatal(err)
	}
	if !result.NeedsRebuild {
		t.Errorf("expected rebuild for newer schema, got %+v", result)
	}
}

func TestMigrate_V1RebuildsFamilies(t *testing.T) {
	st := openTestStore(t)

	// A v1 database only has the word -> stem bucket filled.
	err := st.DB().Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketStems)
		if err := b.Put([]byte("livros"), []byte("livro")); err != nil {
			return err
		}
		return b.Put([]byte("livro"), []byte("livro"))
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := st.SetSchemaInfo(&SchemaInfo{Version: 1}); err != nil {
		t.Fatal(err)
	}

	if err := st.Migrate("f1"); err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}

	family, err := st.Family("livro")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"livro", "livros"}; !reflect.DeepEqual(family, want) {
		t.Errorf("expected %v, got %v", want, family)
	}
	info, err := st.GetSchemaInfo()
	if err != nil {
		t.Fatal(err)
	}
	if info.Version != CurrentSchemaVersion || info.RulesFingerprint != "f1" {
		t.Errorf("unexpected schema info %+v", info)
	}
}
