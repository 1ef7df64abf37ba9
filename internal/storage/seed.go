package storage

import (
	catalogdto "github.com/fekuna/tortilleria-pos/internal/catalog/dto"
	"github.com/fekuna/tortilleria-pos/internal/model"
	userdto "github.com/fekuna/tortilleria-pos/internal/user/dto"
)

// First-run data, matching what the shop has always opened with.

func seedProducts() []catalogdto.ProductEntry {
	return []catalogdto.ProductEntry{
		{Key: "tortillas_maiz", Product: model.Product{
			Name:        "Tortillas de Maíz",
			Stock:       50.0,
			Price:       25.0,
			Unit:        "kg",
			Description: "Tortillas de maíz tradicionales, hechas a mano",
			Category:    "tortillas",
		}},
		{Key: "tortillas_harina", Product: model.Product{
			Name:        "Tortillas de Harina",
			Stock:       35.0,
			Price:       30.0,
			Unit:        "kg",
			Description: "Tortillas de harina suaves y esponjosas",
			Category:    "tortillas",
		}},
		{Key: "masa_maiz", Product: model.Product{
			Name:        "Masa de Maíz",
			Stock:       40.0,
			Price:       20.0,
			Unit:        "kg",
			Description: "Masa fresca de maíz nixtamalizado",
			Category:    "masa",
		}},
		{Key: "masa_harina", Product: model.Product{
			Name:        "Masa de Harina",
			Stock:       25.0,
			Price:       22.0,
			Unit:        "kg",
			Description: "Masa de harina lista para tortillas",
			Category:    "masa",
		}},
	}
}

func seedUsers() []userdto.UserEntry {
	return []userdto.UserEntry{
		{Username: "admin", User: model.User{Password: "admin123", Role: model.RoleAdmin, Name: "Administrador"}},
		{Username: "gerente", User: model.User{Password: "gerente123", Role: model.RoleAdmin, Name: "Gerente General"}},
		{Username: "empleado1", User: model.User{Password: "emp123", Role: model.RoleEmployee, Name: "Juan Pérez"}},
		{Username: "empleado2", User: model.User{Password: "emp456", Role: model.RoleEmployee, Name: "María García"}},
		{Username: "cajero", User: model.User{Password: "caja123", Role: model.RoleEmployee, Name: "Luis Rodríguez"}},
	}
}
