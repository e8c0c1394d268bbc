package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shopcore/ecommerce-api/internal/core/domain"
	"github.com/shopcore/ecommerce-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubProductRepo struct {
	products map[string]*domain.Product
	seq      int
	saves    int   // number of successful Save calls
	saveErr  error // if set, Save returns this error
	findErr  error // if set, FindAll/FindByCategory return this error
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]*domain.Product)}
}

func (r *stubProductRepo) FindAll(_ context.Context) ([]domain.Product, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductRepo) FindByCategory(_ context.Context, category string) ([]domain.Product, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	out := make([]domain.Product, 0)
	for _, p := range r.products {
		if p.Category == category {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

// Save emulates the store: it assigns an id on first insert and replaces
// the stored record otherwise.
func (r *stubProductRepo) Save(_ context.Context, p *domain.Product) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	if p.ID == "" {
		r.seq++
		p.ID = fmt.Sprintf("prod-%d", r.seq)
	}
	clone := *p
	r.products[p.ID] = &clone
	r.saves++
	return nil
}

func (r *stubProductRepo) DeleteByID(_ context.Context, id string) error {
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) ExistsByID(_ context.Context, id string) (bool, error) {
	_, ok := r.products[id]
	return ok, nil
}

var discardLogger = zerolog.Nop()

func widgetInput() ports.CreateProductInput {
	return ports.CreateProductInput{
		Name:        "Widget",
		Description: "a widget",
		Price:       10,
		Quantity:    5,
		Category:    "tools",
	}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestProductService_CreateThenGetRoundTrip(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, discardLogger)

	created, err := svc.Create(context.Background(), widgetInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected store-assigned id on created product")
	}

	got, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if *got != *created {
		t.Fatalf("round trip mismatch: created %+v, got %+v", created, got)
	}
}

func TestProductService_GetByID_NotFound(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), discardLogger)

	_, err := svc.GetByID(context.Background(), "missing")
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_Update_NotFoundWritesNothing(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, discardLogger)

	_, err := svc.Update(context.Background(), "missing", ports.UpdateProductInput{Name: "x"})
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if repo.saves != 0 {
		t.Fatalf("expected no writes, got %d", repo.saves)
	}
}

func TestProductService_Update_FullReplaceKeepsID(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, discardLogger)

	created, err := svc.Create(context.Background(), widgetInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateProductInput{
		Name:        "Widget v2",
		Description: "",
		Price:       12,
		Quantity:    0,
		Category:    "hardware",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.ID != created.ID {
		t.Fatalf("id changed: %s -> %s", created.ID, updated.ID)
	}
	// Full replace: zero values overwrite too.
	if updated.Description != "" || updated.Quantity != 0 {
		t.Fatalf("expected zero values to win, got %+v", updated)
	}
	if updated.Name != "Widget v2" || updated.Price != 12 || updated.Category != "hardware" {
		t.Fatalf("unexpected updated fields: %+v", updated)
	}

	got, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if *got != *updated {
		t.Fatalf("persisted record mismatch: %+v vs %+v", got, updated)
	}
}

func TestProductService_Delete_RemovesAndIsIdempotent(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, discardLogger)

	created, err := svc.Create(context.Background(), widgetInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	existed, err := svc.Delete(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !existed {
		t.Fatal("expected existed=true deleting a stored product")
	}

	if _, err := svc.GetByID(context.Background(), created.ID); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound after delete, got %v", err)
	}

	// Repeated delete is a no-op, not an error.
	existed, err = svc.Delete(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if existed {
		t.Fatal("expected existed=false on repeated delete")
	}
}

func TestProductService_List_PropagatesStoreError(t *testing.T) {
	repo := newStubProductRepo()
	repo.findErr = errors.New("store unavailable")
	svc := NewProductService(repo, discardLogger)

	if _, err := svc.List(context.Background()); err == nil {
		t.Fatal("expected store error to propagate")
	}
}

func TestProductService_ListByCategory(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, discardLogger)

	if _, err := svc.Create(context.Background(), widgetInput()); err != nil {
		t.Fatalf("create: %v", err)
	}
	other := widgetInput()
	other.Name = "Gadget"
	other.Category = "toys"
	if _, err := svc.Create(context.Background(), other); err != nil {
		t.Fatalf("create: %v", err)
	}

	tools, err := svc.ListByCategory(context.Background(), "tools")
	if err != nil {
		t.Fatalf("list by category: %v", err)
	}
	if len(tools) != 1 || tools[0].Name != "Widget" {
		t.Fatalf("unexpected category listing: %+v", tools)
	}

	empty, err := svc.ListByCategory(context.Background(), "unknown")
	if err != nil {
		t.Fatalf("list unknown category: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty listing, got %+v", empty)
	}
}

func TestProductService_Create_PropagatesStoreError(t *testing.T) {
	repo := newStubProductRepo()
	repo.saveErr = errors.New("store unavailable")
	svc := NewProductService(repo, discardLogger)

	if _, err := svc.Create(context.Background(), widgetInput()); err == nil {
		t.Fatal("expected store error to propagate")
	}
}
