// Package bootstrap seeds the demo accounts and catalog on start.
package bootstrap

import (
	"context"
	"log/slog"

	"cafeteria/config"
	"cafeteria/internal/domain/entity"
	"cafeteria/internal/domain/lifecycle"
	"cafeteria/internal/errors"
	"cafeteria/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	seedActor     = "system"
	seedImageURL  = "/images/sardinha.jpg"
	lookupPageCap = entity.MaxPageSize
)

type seedUser struct {
	username string
	password string
	fullName string
	role     entity.Role
}

type seedCategory struct {
	name          string
	description   string
	subcategories []seedCategory
}

type seedProduct struct {
	name        string
	description string
	price       string
	category    string
	stock       int
}

var seedUsers = []seedUser{
	{username: "u1@mail.com", password: "Password1", fullName: "Administrator", role: entity.RoleUserAdmin},
	{username: "mary@mail.com", password: "myMy123!", fullName: "Mary", role: entity.RoleCustomer},
}

var seedCategories = []seedCategory{
	{
		name:        "Beverages",
		description: "All_kinds_of_beverages",
		subcategories: []seedCategory{
			{name: "HotBeverages", description: "Warm_and_comforting_drinks"},
			{name: "ColdBeverages", description: "Refreshing_and_cool_drinks"},
		},
	},
	{
		name:        "FoodItems",
		description: "Delicious_meals_and_snacks",
		subcategories: []seedCategory{
			{name: "Sandwiches", description: "Freshly_made_sandwiches"},
			{name: "Salads", description: "Healthy_and_green_salads"},
		},
	},
}

var seedProducts = []seedProduct{
	{"Espresso", "Strong_black_coffee_brewed_by_forcing_hot_water_through_finely_ground_coffee_beans", "1.50", "HotBeverages", 100},
	{"Cappuccino", "Coffee_with_steamed_milk_foam", "2.50", "HotBeverages", 75},
	{"HotChocolate", "Warm_chocolate_beverage_with_milk_and_sugar", "2.25", "HotBeverages", 50},
	{"IcedCoffee", "Chilled_coffee_served_with_ice_and_optional_milk", "2.75", "ColdBeverages", 60},
	{"Lemonade", "Refreshing_citrus_drink_made_with_lemons_and_sugar", "2.00", "ColdBeverages", 80},
	{"OrangeJuice", "Freshly_squeezed_orange_juice", "2.50", "ColdBeverages", 45},
	{"HamAndCheese", "Classic_sandwich_with_ham_and_cheese", "4.50", "Sandwiches", 30},
	{"TunaSalad", "Tuna_with_mayo_lettuce_and_tomato_on_whole_grain_bread", "5.25", "Sandwiches", 25},
	{"VeggieBagel", "Cream_cheese_cucumber_tomato_and_sprouts_on_a_bagel", "4.75", "Sandwiches", 20},
	{"CaesarSalad", "Crisp_romaine_lettuce_croutons_parmesan_and_caesar_dressing", "6.50", "Salads", 15},
	{"GreekSalad", "Tomatoes_cucumber_olives_feta_cheese_and_olive_oil", "6.25", "Salads", 18},
	{"FruitSalad", "Mix_of_seasonal_fresh_fruits", "5.75", "Salads", 22},
}

// SeederParams defines the dependencies of the Seeder.
type SeederParams struct {
	fx.In

	UserAdminUC usecase.UserAdminUsecase
	CategoryUC  usecase.CategoryUsecase
	ProductUC   usecase.ProductUsecase
	Logger      *slog.Logger
}

// Seeder creates the demo data through the use cases. Records are matched by
// username or name, so running it twice creates nothing new.
type Seeder struct {
	userAdminUC usecase.UserAdminUsecase
	categoryUC  usecase.CategoryUsecase
	productUC   usecase.ProductUsecase
	logger      *slog.Logger
}

func NewSeeder(params SeederParams) *Seeder {
	return &Seeder{
		userAdminUC: params.UserAdminUC,
		categoryUC:  params.CategoryUC,
		productUC:   params.ProductUC,
		logger:      params.Logger,
	}
}

// RegisterParams defines what Register needs to hook the seeder into the app lifecycle.
type RegisterParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Seeder *Seeder
}

// Register runs the seeder on start when bootstrap.enabled is set. It must be
// invoked after the database is provided so the schema is migrated first.
func Register(params RegisterParams) {
	if cfg := params.Config.Bootstrap; cfg == nil || !cfg.Enabled {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return params.Seeder.Seed(ctx)
		},
	})
}

// Seed creates the missing demo users, categories and products.
func (s *Seeder) Seed(ctx context.Context) error {
	if err := s.seedUsers(ctx); err != nil {
		return err
	}

	categoryIDs, err := s.seedCategories(ctx)
	if err != nil {
		return err
	}

	if err := s.seedProducts(ctx, categoryIDs); err != nil {
		return err
	}

	s.logger.Info("Bootstrap data ready",
		slog.Int("users", len(seedUsers)),
		slog.Int("categories", len(categoryIDs)),
		slog.Int("products", len(seedProducts)),
	)

	return nil
}

func (s *Seeder) seedUsers(ctx context.Context) error {
	for _, u := range seedUsers {
		exists, err := s.userAdminUC.UsernameExists(ctx, u.username)
		if err != nil {
			return errors.Wrapf(err, "failed to look up user %s", u.username)
		}
		if exists {
			continue
		}

		if _, err := s.userAdminUC.CreateUser(ctx, usecase.CreateUserInput{
			Username:   u.username,
			Password:   u.password,
			RePassword: u.password,
			FullName:   u.fullName,
			Roles:      []string{u.role.String()},
			CreatedBy:  seedActor,
		}); err != nil {
			return errors.Wrapf(err, "failed to seed user %s", u.username)
		}
	}

	return nil
}

// seedCategories returns the id of every seeded category keyed by name.
func (s *Seeder) seedCategories(ctx context.Context) (map[string]uuid.UUID, error) {
	ids := make(map[string]uuid.UUID)

	var seed func(categories []seedCategory, parentID *uuid.UUID) error
	seed = func(categories []seedCategory, parentID *uuid.UUID) error {
		for _, c := range categories {
			id, err := s.ensureCategory(ctx, c, parentID)
			if err != nil {
				return err
			}
			ids[c.name] = id

			if err := seed(c.subcategories, &id); err != nil {
				return err
			}
		}

		return nil
	}

	if err := seed(seedCategories, nil); err != nil {
		return nil, err
	}

	return ids, nil
}

func (s *Seeder) ensureCategory(ctx context.Context, c seedCategory, parentID *uuid.UUID) (uuid.UUID, error) {
	page, err := s.categoryUC.SearchCategories(ctx, usecase.CategorySearchQuery{Name: c.name},
		entity.NewPageRequest(0, lookupPageCap))
	if err != nil {
		return uuid.Nil, errors.Wrapf(err, "failed to look up category %s", c.name)
	}
	for _, existing := range page.Content {
		if existing.Name.EqualsString(c.name) {
			return existing.ID, nil
		}
	}

	details, err := s.categoryUC.CreateCategory(ctx, usecase.CreateCategoryInput{
		Name:        c.name,
		Description: c.description,
		ParentID:    parentID,
	})
	if err != nil {
		return uuid.Nil, errors.Wrapf(err, "failed to seed category %s", c.name)
	}

	return details.Category.ID, nil
}

func (s *Seeder) seedProducts(ctx context.Context, categoryIDs map[string]uuid.UUID) error {
	for _, p := range seedProducts {
		page, err := s.productUC.SearchProducts(ctx, usecase.ProductSearchQuery{Name: p.name},
			entity.NewPageRequest(0, lookupPageCap))
		if err != nil {
			return errors.Wrapf(err, "failed to look up product %s", p.name)
		}
		if containsProduct(page.Content, p.name) {
			continue
		}

		stock := p.stock
		if _, err := s.productUC.CreateProduct(ctx, usecase.CreateProductInput{
			Name:         p.name,
			Description:  p.description,
			Price:        decimal.RequireFromString(p.price),
			CategoryID:   categoryIDs[p.category],
			ImageURL:     seedImageURL,
			InitialStock: &stock,
		}); err != nil {
			return errors.Wrapf(err, "failed to seed product %s", p.name)
		}
	}

	return nil
}

func containsProduct(views []*usecase.ProductView, name string) bool {
	for _, v := range views {
		if v.Product.Name.EqualsString(name) {
			return true
		}
	}

	return false
}
