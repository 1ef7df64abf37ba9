package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fekuna/tortilleria-pos/config"
	"github.com/fekuna/tortilleria-pos/internal/catalog"
	catalogdto "github.com/fekuna/tortilleria-pos/internal/catalog/dto"
	"github.com/fekuna/tortilleria-pos/internal/logger"
	"github.com/fekuna/tortilleria-pos/internal/model"
	"github.com/fekuna/tortilleria-pos/internal/movement"
	"github.com/fekuna/tortilleria-pos/internal/sales"
	"github.com/fekuna/tortilleria-pos/internal/user"
	userdto "github.com/fekuna/tortilleria-pos/internal/user/dto"
	"go.uber.org/zap"
)

// JSONGateway persists the stores as flat JSON files. Writes go through a
// temp file plus rename so a failed flush never truncates existing data.
type JSONGateway struct {
	cfg       config.StorageConfig
	catalog   catalog.Repository
	sales     sales.Repository
	users     user.Repository
	movements movement.Repository
	logger    logger.Logger
}

func NewJSONGateway(
	cfg config.StorageConfig,
	catalogRepo catalog.Repository,
	salesRepo sales.Repository,
	userRepo user.Repository,
	movementRepo movement.Repository,
	log logger.Logger,
) *JSONGateway {
	return &JSONGateway{
		cfg:       cfg,
		catalog:   catalogRepo,
		sales:     salesRepo,
		users:     userRepo,
		movements: movementRepo,
		logger:    log,
	}
}

// Verify interface compliance
var _ Gateway = (*JSONGateway)(nil)

func (g *JSONGateway) Load(ctx context.Context) error {
	if err := g.loadCatalog(ctx); err != nil {
		return fmt.Errorf("load inventory: %w", err)
	}
	if err := g.loadSales(ctx); err != nil {
		return fmt.Errorf("load sales history: %w", err)
	}
	if err := g.loadUsers(ctx); err != nil {
		return fmt.Errorf("load users: %w", err)
	}
	if err := g.loadMovements(ctx); err != nil {
		return fmt.Errorf("load stock movements: %w", err)
	}
	return nil
}

func (g *JSONGateway) loadCatalog(ctx context.Context) error {
	data, err := os.ReadFile(g.cfg.InventoryPath())
	if os.IsNotExist(err) {
		g.logger.Info("inventory file missing, seeding defaults",
			zap.String("path", g.cfg.InventoryPath()))
		return g.catalog.Replace(ctx, seedProducts())
	}
	if err != nil {
		return err
	}

	entries, err := decodeProducts(data)
	if err != nil {
		return err
	}
	return g.catalog.Replace(ctx, entries)
}

func (g *JSONGateway) loadSales(ctx context.Context) error {
	data, err := os.ReadFile(g.cfg.SalesPath())
	if os.IsNotExist(err) {
		return g.sales.Replace(ctx, nil)
	}
	if err != nil {
		return err
	}

	var records []model.Sale
	if err := json.Unmarshal(data, &records); err != nil {
		return err
	}
	return g.sales.Replace(ctx, records)
}

func (g *JSONGateway) loadUsers(ctx context.Context) error {
	data, err := os.ReadFile(g.cfg.UsersPath())
	if os.IsNotExist(err) {
		g.logger.Info("users file missing, seeding defaults",
			zap.String("path", g.cfg.UsersPath()))
		return g.users.Replace(ctx, seedUsers())
	}
	if err != nil {
		return err
	}

	entries, err := decodeUsers(data)
	if err != nil {
		return err
	}
	return g.users.Replace(ctx, entries)
}

func (g *JSONGateway) loadMovements(ctx context.Context) error {
	data, err := os.ReadFile(g.cfg.MovementsPath())
	if os.IsNotExist(err) {
		return g.movements.Replace(ctx, nil)
	}
	if err != nil {
		return err
	}

	var movements []model.StockMovement
	if err := json.Unmarshal(data, &movements); err != nil {
		return err
	}
	return g.movements.Replace(ctx, movements)
}

func (g *JSONGateway) SaveCatalog(ctx context.Context) error {
	entries, err := g.catalog.List(ctx)
	if err != nil {
		return err
	}
	data, err := encodeProducts(entries)
	if err != nil {
		return err
	}
	return writeFileAtomic(g.cfg.InventoryPath(), data)
}

func (g *JSONGateway) SaveSales(ctx context.Context) error {
	records, err := g.sales.ListAll(ctx)
	if err != nil {
		return err
	}
	if records == nil {
		records = []model.Sale{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(g.cfg.SalesPath(), data)
}

func (g *JSONGateway) SaveUsers(ctx context.Context) error {
	entries, err := g.users.List(ctx)
	if err != nil {
		return err
	}
	data, err := encodeUsers(entries)
	if err != nil {
		return err
	}
	return writeFileAtomic(g.cfg.UsersPath(), data)
}

func (g *JSONGateway) SaveMovements(ctx context.Context) error {
	movements, err := g.movements.ListAll(ctx)
	if err != nil {
		return err
	}
	if movements == nil {
		movements = []model.StockMovement{}
	}
	data, err := json.MarshalIndent(movements, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(g.cfg.MovementsPath(), data)
}

func (g *JSONGateway) SaveAll(ctx context.Context) error {
	if err := g.SaveCatalog(ctx); err != nil {
		return fmt.Errorf("save inventory: %w", err)
	}
	if err := g.SaveSales(ctx); err != nil {
		return fmt.Errorf("save sales history: %w", err)
	}
	if err := g.SaveUsers(ctx); err != nil {
		return fmt.Errorf("save users: %w", err)
	}
	if err := g.SaveMovements(ctx); err != nil {
		return fmt.Errorf("save stock movements: %w", err)
	}
	return nil
}

// encodeProducts keeps the file's key order equal to the catalog's
// insertion order.
func encodeProducts(entries []catalogdto.ProductEntry) ([]byte, error) {
	byKey := make(map[string]model.Product, len(entries))
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
		byKey[e.Key] = e.Product
	}
	return marshalOrderedObject(keys, func(key string) (interface{}, error) {
		return byKey[key], nil
	})
}

func decodeProducts(data []byte) ([]catalogdto.ProductEntry, error) {
	var entries []catalogdto.ProductEntry
	err := decodeOrderedObject(data, func(key string, raw json.RawMessage) error {
		var p model.Product
		if err := json.Unmarshal(raw, &p); err != nil {
			return fmt.Errorf("product %q: %w", key, err)
		}
		entries = append(entries, catalogdto.ProductEntry{Key: key, Product: p})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func encodeUsers(entries []userdto.UserEntry) ([]byte, error) {
	byName := make(map[string]model.User, len(entries))
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Username)
		byName[e.Username] = e.User
	}
	return marshalOrderedObject(names, func(name string) (interface{}, error) {
		return byName[name], nil
	})
}

func decodeUsers(data []byte) ([]userdto.UserEntry, error) {
	var entries []userdto.UserEntry
	err := decodeOrderedObject(data, func(name string, raw json.RawMessage) error {
		var u model.User
		if err := json.Unmarshal(raw, &u); err != nil {
			return fmt.Errorf("user %q: %w", name, err)
		}
		entries = append(entries, userdto.UserEntry{Username: name, User: u})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
