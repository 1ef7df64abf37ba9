package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fekuna/tortilleria-pos/internal/model"
	"go.uber.org/zap"
)

const backupVersion = "1.0"

// bundle is the combined export format. Inventario and Usuarios stay raw so
// their key order survives the round trip.
type bundle struct {
	Inventario json.RawMessage `json:"inventario"`
	Historial  []model.Sale    `json:"historial_ventas"`
	Usuarios   json.RawMessage `json:"usuarios_sistema"`
	Fecha      model.SaleTime  `json:"fecha_respaldo"`
	Version    string          `json:"version"`
}

func (g *JSONGateway) Export(ctx context.Context, path string) error {
	catalogEntries, err := g.catalog.List(ctx)
	if err != nil {
		return err
	}
	inventario, err := encodeProducts(catalogEntries)
	if err != nil {
		return err
	}

	records, err := g.sales.ListAll(ctx)
	if err != nil {
		return err
	}
	if records == nil {
		records = []model.Sale{}
	}

	userEntries, err := g.users.List(ctx)
	if err != nil {
		return err
	}
	usuarios, err := encodeUsers(userEntries)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(bundle{
		Inventario: inventario,
		Historial:  records,
		Usuarios:   usuarios,
		Fecha:      model.NewSaleTime(time.Now()),
		Version:    backupVersion,
	}, "", "  ")
	if err != nil {
		return err
	}

	if err := writeFileAtomic(path, data); err != nil {
		return err
	}
	g.logger.Info("backup exported", zap.String("path", path))
	return nil
}

func (g *JSONGateway) Import(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	// Missing top-level keys invalidate the whole file; empty sections are
	// fine.
	var sections map[string]json.RawMessage
	if err := json.Unmarshal(data, &sections); err != nil {
		return fmt.Errorf("%w: %v", model.ErrInvalidBackup, err)
	}
	for _, key := range []string{"inventario", "historial_ventas", "usuarios_sistema"} {
		if _, ok := sections[key]; !ok {
			return fmt.Errorf("%w: missing %q", model.ErrInvalidBackup, key)
		}
	}

	products, err := decodeProducts(sections["inventario"])
	if err != nil {
		return fmt.Errorf("%w: inventario: %v", model.ErrInvalidBackup, err)
	}
	var records []model.Sale
	if err := json.Unmarshal(sections["historial_ventas"], &records); err != nil {
		return fmt.Errorf("%w: historial_ventas: %v", model.ErrInvalidBackup, err)
	}
	users, err := decodeUsers(sections["usuarios_sistema"])
	if err != nil {
		return fmt.Errorf("%w: usuarios_sistema: %v", model.ErrInvalidBackup, err)
	}

	// Validated: replace everything, no merging.
	if err := g.catalog.Replace(ctx, products); err != nil {
		return err
	}
	if err := g.sales.Replace(ctx, records); err != nil {
		return err
	}
	if err := g.users.Replace(ctx, users); err != nil {
		return err
	}

	g.logger.Info("backup imported", zap.String("path", path),
		zap.Int("products", len(products)), zap.Int("sales", len(records)), zap.Int("users", len(users)))
	return g.SaveAll(ctx)
}
