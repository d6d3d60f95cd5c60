package main

import (
	"log"

	"go-inventory-api/internal/model"
	"go-inventory-api/internal/repository"
	"go-inventory-api/internal/service"
	"go-inventory-api/internal/ws"
	"go-inventory-api/pkg/database"

	"github.com/joho/godotenv"
)

// Loads a demo dataset: roles, two users, a product catalog, suppliers and
// a handful of ledger movements recorded through the ledger service so the
// stock invariant holds.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	db := database.ConnectDB()
	db.AutoMigrate(&model.Role{}, &model.User{}, &model.Product{}, &model.Supplier{}, &model.Transaction{})

	roleRepo := repository.NewRoleRepo(db)
	userRepo := repository.NewUserRepo(db)
	productRepo := repository.NewProductRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)
	txRepo := repository.NewTransactionRepo(db)

	if err := roleRepo.SeedDefaults(); err != nil {
		log.Fatalf("Failed to seed roles: %v", err)
	}

	admin := seedUser(userRepo, roleRepo, model.RoleAdmin, "admin@demo.local", "admin123", "Admin", "Demo")
	staff := seedUser(userRepo, roleRepo, model.RoleStaff, "staff@demo.local", "staff123", "Jane", "Doe")

	products := []model.Product{
		{Name: "Casual Shirt", Category: model.CategoryShirts, Size: model.SizeM, Description: "Cotton casual shirt", Reference: "SHI001M", Price: 4500, MinimumStock: 5, IsActive: true},
		{Name: "Casual Shirt", Category: model.CategoryShirts, Size: model.SizeL, Description: "Cotton casual shirt", Reference: "SHI001L", Price: 4500, MinimumStock: 5, IsActive: true},
		{Name: "Classic Jeans", Category: model.CategoryPants, Size: model.SizeM, Description: "Skinny-cut denim jeans", Reference: "JEA002M", Price: 8500, MinimumStock: 4, IsActive: true},
		{Name: "Evening Dress", Category: model.CategoryDresses, Size: model.SizeS, Description: "Elegant dress for special occasions", Reference: "DRE003S", Price: 12000, MinimumStock: 2, IsActive: true},
		{Name: "Running Shoes", Category: model.CategoryShoes, Size: model.SizeL, Description: "Comfortable sport shoes", Reference: "SHO004L", Price: 18000, MinimumStock: 3, IsActive: true},
		{Name: "Fashion Necklace", Category: model.CategoryAccessories, Size: model.SizeUnique, Description: "Necklace to complement any outfit", Reference: "NEC005U", Price: 2500, MinimumStock: 10, IsActive: true},
		{Name: "Sport T-Shirt", Category: model.CategorySportswear, Size: model.SizeM, Description: "Breathable training t-shirt", Reference: "TSH006M", Price: 3500, MinimumStock: 6, IsActive: true},
		{Name: "Winter Jacket", Category: model.CategoryOuterwear, Size: model.SizeXL, Description: "Insulated winter jacket", Reference: "JAC007X", Price: 22000, MinimumStock: 2, IsActive: true},
	}
	for i := range products {
		if existing, _ := productRepo.FindByReference(products[i].Reference); existing != nil {
			products[i] = *existing
			continue
		}
		if err := productRepo.Create(&products[i]); err != nil {
			log.Fatalf("Failed to create product %s: %v", products[i].Reference, err)
		}
		log.Printf("Product created: %s (%s)", products[i].Name, products[i].Reference)
	}

	suppliers := []model.Supplier{
		{Name: "ABC Textiles", Type: model.SupplierNational, ContactPerson: "Carlos Ruiz", Email: "sales@abctextiles.example", Phone: "+57 300 111 2233", IsActive: true},
		{Name: "Denim Distribution Co", Type: model.SupplierNational, ContactPerson: "Maria Lopez", Email: "orders@denimdist.example", IsActive: true},
		{Name: "Sport Imports Ltd", Type: model.SupplierInternational, ContactPerson: "John Smith", Email: "contact@sportimports.example", IsActive: true},
	}
	for i := range suppliers {
		if existing, _ := supplierRepo.FindByName(suppliers[i].Name); existing != nil {
			continue
		}
		if err := supplierRepo.Create(&suppliers[i]); err != nil {
			log.Fatalf("Failed to create supplier %s: %v", suppliers[i].Name, err)
		}
		log.Printf("Supplier created: %s", suppliers[i].Name)
	}

	// Record movements through the ledger so quantities stay consistent.
	hub := ws.NewHub()
	go hub.Run()
	ledger := service.NewLedgerService(productRepo, txRepo, db, hub)

	adminActor := service.Actor{ID: admin.ID, Name: admin.FullName(), Email: admin.Email}
	staffActor := service.Actor{ID: staff.ID, Name: staff.FullName(), Email: staff.Email}

	movements := []struct {
		actor service.Actor
		req   service.CreateTransactionRequest
	}{
		{adminActor, service.CreateTransactionRequest{ProductID: products[0].ID, Type: model.TxEntry, Quantity: 25, Supplier: "ABC Textiles"}},
		{adminActor, service.CreateTransactionRequest{ProductID: products[2].ID, Type: model.TxEntry, Quantity: 15, Supplier: "Denim Distribution Co"}},
		{adminActor, service.CreateTransactionRequest{ProductID: products[4].ID, Type: model.TxEntry, Quantity: 12, Supplier: "Sport Imports Ltd"}},
		{staffActor, service.CreateTransactionRequest{ProductID: products[0].ID, Type: model.TxExit, Quantity: 3}},
		{staffActor, service.CreateTransactionRequest{ProductID: products[2].ID, Type: model.TxExit, Quantity: 2}},
		{staffActor, service.CreateTransactionRequest{ProductID: products[4].ID, Type: model.TxExit, Quantity: 5}},
	}
	for _, m := range movements {
		if _, warnings, err := ledger.ApplyTransaction(&m.req, m.actor); err != nil {
			log.Printf("Skipping movement on %s: %v", m.req.ProductID, err)
		} else if len(warnings) > 0 {
			log.Printf("Movement left product %s low on stock", m.req.ProductID)
		}
	}

	log.Println("Demo data loaded")
}

func seedUser(userRepo repository.UserRepository, roleRepo repository.RoleRepository, roleCode, email, password, firstName, lastName string) *model.User {
	if existing, err := userRepo.FindByEmail(email); err == nil {
		return existing
	}

	role, err := roleRepo.FindByCode(roleCode)
	if err != nil {
		log.Fatalf("Role %s missing: %v", roleCode, err)
	}

	user := &model.User{
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		RoleID:    &role.ID,
		IsActive:  true,
	}
	if err := user.SetPassword(password); err != nil {
		log.Fatalf("Failed to hash password for %s: %v", email, err)
	}
	if err := userRepo.Create(user); err != nil {
		log.Fatalf("Failed to create user %s: %v", email, err)
	}
	user.Role = role
	log.Printf("User created: %s (%s)", email, roleCode)
	return user
}
