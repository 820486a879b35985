package workspace

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"shopping-helper-admin/crud"
	"shopping-helper-admin/models"
)

type (
	StoreController   = crud.Controller[models.Store, models.StoreForm]
	ProductController = crud.Controller[models.Product, models.ProductForm]
	PriceController   = crud.Controller[models.Price, models.PriceForm]
)

// Workspace is one admin's page: three entity controllers sharing one banner.
type Workspace struct {
	Banner   *crud.Banner
	Stores   *StoreController
	Products *ProductController
	Prices   *PriceController

	mu       sync.Mutex
	mounted  bool
	lastSeen time.Time
}

func New(backend crud.Backend, log *zap.SugaredLogger) *Workspace {
	banner := &crud.Banner{}
	w := &Workspace{
		Banner:   banner,
		Stores:   crud.NewController(StoreEntity, backend, banner, log),
		Products: crud.NewController(ProductEntity, backend, banner, log),
		Prices:   crud.NewController(PriceEntity, backend, banner, log),
		lastSeen: time.Now(),
	}

	// Price rows resolve store and product names, so removals must show up there.
	w.Stores.RefreshAfterDelete(w.Prices)
	w.Products.RefreshAfterDelete(w.Prices)
	return w
}

// Load fetches every collection, as on first mount.
func (w *Workspace) Load(ctx context.Context) {
	w.mu.Lock()
	w.mounted = true
	w.mu.Unlock()

	w.Banner.Clear()
	_ = w.Stores.Refresh(ctx)
	_ = w.Products.Refresh(ctx)
	_ = w.Prices.Refresh(ctx)
}

// Mount loads the collections the first time the workspace is shown.
// It reports whether a load happened.
func (w *Workspace) Mount(ctx context.Context) bool {
	w.mu.Lock()
	mounted := w.mounted
	w.mu.Unlock()
	if mounted {
		return false
	}
	w.Load(ctx)
	return true
}

func (w *Workspace) touch(now time.Time) {
	w.mu.Lock()
	w.lastSeen = now
	w.mu.Unlock()
}

func (w *Workspace) idleSince(now time.Time) time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()
	return now.Sub(w.lastSeen)
}
