package storage

import (
	"testing"

	"github.com/grooveshop/storefront/pkg/types"
)

func TestSnapshotRoundTrip(t *testing.T) {
	s := NewSnapshotStorage(t.TempDir())
	sale := 22.50
	in := []types.Product{
		{Id: "p1", Title: "Rumours", Artist: "Fleetwood Mac", Price: 28.50, SalePrice: &sale},
		{Id: "p2", Title: "Kind of Blue", Artist: "Miles Davis", Price: 24.99, Tags: []string{"Jazz Vinyl"}},
	}
	if err := s.Save(in); err != nil {
		t.Fatalf("save: %v", err)
	}

	var out []types.Product
	err := s.Load(func(p *types.Product) { out = append(out, *p) })
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("loaded %d products, want 2", len(out))
	}
	if out[0].Id != "p1" || out[0].SalePrice == nil || *out[0].SalePrice != 22.50 {
		t.Errorf("first product = %+v", out[0])
	}
	if out[1].Tags[0] != "Jazz Vinyl" {
		t.Errorf("second product tags = %v", out[1].Tags)
	}
}

func TestLoadMissingSnapshotIsEmpty(t *testing.T) {
	s := NewSnapshotStorage(t.TempDir())
	calls := 0
	if err := s.Load(func(*types.Product) { calls++ }); err != nil {
		t.Fatalf("load: %v", err)
	}
	if calls != 0 {
		t.Errorf("handler called %d times on missing snapshot", calls)
	}
}

func TestSaveOverwritesAtomically(t *testing.T) {
	s := NewSnapshotStorage(t.TempDir())
	if err := s.Save([]types.Product{{Id: "p1", Title: "First"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Save([]types.Product{{Id: "p2", Title: "Second"}}); err != nil {
		t.Fatalf("second save: %v", err)
	}
	var ids []string
	if err := s.Load(func(p *types.Product) { ids = append(ids, p.Id) }); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(ids) != 1 || ids[0] != "p2" {
		t.Errorf("ids = %v, want just p2", ids)
	}
}
