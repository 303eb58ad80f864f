// seed puebla la base de datos con datos de demostración: roles admin/user,
// dos usuarios, categorías y productos de ejemplo, inventario inicial y
// ventas aleatorias del último año.
//
// Uso: go run ./cmd/seed
// Idempotencia parcial: si el usuario admin ya existe, el seed se aborta.
package main

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/infrastructure/postgres"
	"github.com/jhoicas/ecommerce-admin-api/pkg/config"
	"github.com/jhoicas/ecommerce-admin-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	userRoleRepo := postgres.NewUserRoleRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	invRepo := postgres.NewInventoryRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)

	existing, err := userRepo.GetByUsername("admin")
	if err != nil {
		log.Fatal().Err(err).Msg("verificar usuario admin")
	}
	if existing != nil {
		log.Info().Msg("el usuario admin ya existe, nada que sembrar")
		return
	}

	// Roles
	adminRole := &entity.Role{ID: uuid.New().String(), Name: entity.RoleAdmin, Description: "Acceso total"}
	userRole := &entity.Role{ID: uuid.New().String(), Name: "user", Description: "Solo lectura"}
	for _, r := range []*entity.Role{adminRole, userRole} {
		if err := roleRepo.Create(r); err != nil {
			log.Fatal().Err(err).Str("role", r.Name).Msg("crear rol")
		}
	}

	// Usuarios
	users := []struct {
		username, email, password string
		role                      *entity.Role
	}{
		{"admin", "admin@example.com", "admin12345", adminRole},
		{"demo", "demo@example.com", "demo12345", userRole},
	}
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hashear password")
		}
		user := &entity.User{
			ID:           uuid.New().String(),
			Username:     u.username,
			Email:        u.email,
			PasswordHash: string(hash),
			CreatedAt:    time.Now(),
		}
		if err := userRepo.Create(user); err != nil {
			log.Fatal().Err(err).Str("username", u.username).Msg("crear usuario")
		}
		if _, err := userRoleRepo.Assign(user.ID, u.role.ID); err != nil {
			log.Fatal().Err(err).Str("username", u.username).Msg("asignar rol")
		}
	}
	log.Info().Int("users", len(users)).Msg("usuarios creados")

	// Categorías y productos
	catalog := map[string][]struct {
		name  string
		price float64
	}{
		"Electrónica": {
			{"Audífonos inalámbricos", 59.99},
			{"Teclado mecánico", 89.90},
			{"Monitor 27\"", 249.00},
		},
		"Hogar": {
			{"Cafetera de goteo", 45.50},
			{"Lámpara de escritorio", 22.00},
		},
		"Deportes": {
			{"Balón de fútbol", 18.75},
			{"Mancuernas 5kg (par)", 34.20},
		},
	}

	var productIDs []string
	for catName, items := range catalog {
		cat := &entity.Category{
			ID:          uuid.New().String(),
			Name:        catName,
			Description: "Categoría de demostración",
			CreatedAt:   time.Now(),
		}
		if err := categoryRepo.Create(cat); err != nil {
			log.Fatal().Err(err).Str("category", catName).Msg("crear categoría")
		}
		for _, item := range items {
			now := time.Now()
			p := &entity.Product{
				ID:         uuid.New().String(),
				Name:       item.name,
				CategoryID: cat.ID,
				UnitPrice:  decimal.NewFromFloat(item.price),
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			if err := productRepo.Create(p); err != nil {
				log.Fatal().Err(err).Str("product", item.name).Msg("crear producto")
			}
			productIDs = append(productIDs, p.ID)

			inv := &entity.Inventory{
				ID:                uuid.New().String(),
				ProductID:         p.ID,
				QuantityOnHand:    20 + rand.Intn(80),
				LowStockThreshold: entity.DefaultLowStockThreshold,
				LastUpdated:       now,
			}
			if err := invRepo.Create(inv); err != nil {
				log.Fatal().Err(err).Str("product", item.name).Msg("crear inventario")
			}
		}
	}
	log.Info().Int("products", len(productIDs)).Msg("catálogo creado")

	// Ventas aleatorias del último año
	priceByProduct := make(map[string]decimal.Decimal)
	products, err := productRepo.List(1000, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("listar productos")
	}
	for _, p := range products {
		priceByProduct[p.ID] = p.UnitPrice
	}

	const saleCount = 300
	for i := 0; i < saleCount; i++ {
		productID := productIDs[rand.Intn(len(productIDs))]
		qty := 1 + rand.Intn(5)
		saleDate := time.Now().AddDate(0, 0, -rand.Intn(365)).Truncate(24 * time.Hour)
		total := priceByProduct[productID].Mul(decimal.NewFromInt(int64(qty)))
		sale := &entity.Sale{
			ID:          uuid.New().String(),
			ProductID:   productID,
			SaleDate:    saleDate,
			Quantity:    qty,
			TotalAmount: total,
			CreatedAt:   time.Now(),
		}
		if err := saleRepo.Create(sale); err != nil {
			log.Fatal().Err(err).Msg("crear venta")
		}
	}
	log.Info().Int("sales", saleCount).Msg("ventas creadas")
	log.Info().Msg("seed completado")
}
