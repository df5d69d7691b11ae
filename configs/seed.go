package configs

import (
	"log"

	"backend/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the back-office account on first boot.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("⚠️ skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("ℹ️ admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:    email,
		Password: string(hash),
		Name:     "Admin",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// SeedDemo inserts one browsable branch with a small menu for local runs.
func SeedDemo() error {
	db := DB()

	branch := entity.Branch{Name: "Lekki Branch", Slug: "lekki-branch"}
	db.FirstOrCreate(&branch, entity.Branch{Slug: "lekki-branch"})
	if branch.Address == "" {
		branch.Address = "12 Admiralty Way, Lekki Phase 1"
		branch.Phone = "+2348000000001"
		branch.Email = "lekki@example.com"
		branch.WhatsApp = "+2348000000001"
		branch.Description = "Our flagship branch"
		if err := db.Save(&branch).Error; err != nil {
			return err
		}
	}

	grills := entity.Category{Name: "Grills", Slug: "grills", BranchID: &branch.ID}
	db.FirstOrCreate(&grills, entity.Category{Slug: "grills", BranchID: &branch.ID})
	swallow := entity.Category{Name: "Swallow", Slug: "swallow", BranchID: &branch.ID}
	db.FirstOrCreate(&swallow, entity.Category{Slug: "swallow", BranchID: &branch.ID})

	items := []entity.FoodItem{
		{Name: "Suya Platter", Slug: "suya-platter", Description: "Spiced beef skewers", Picture: "/img/suya.jpg", Price: 3500, BranchID: &branch.ID, CategoryID: &grills.ID},
		{Name: "Grilled Catfish", Slug: "grilled-catfish", Description: "Whole catfish, pepper sauce", Picture: "/img/catfish.jpg", Price: 6000, BranchID: &branch.ID, CategoryID: &grills.ID},
		{Name: "Pounded Yam & Egusi", Slug: "pounded-yam-egusi", Description: "With assorted meat", Picture: "/img/egusi.jpg", Price: 4200, BranchID: &branch.ID, CategoryID: &swallow.ID},
	}
	for i := range items {
		db.FirstOrCreate(&items[i], entity.FoodItem{Slug: items[i].Slug, BranchID: &branch.ID})
	}

	log.Println("✅ demo catalog seeded")
	return nil
}
