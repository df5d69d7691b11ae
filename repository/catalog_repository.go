package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

// CatalogRepository covers the read-mostly reference data: categories and
// food items of a branch.
type CatalogRepository struct{ DB *gorm.DB }

func NewCatalogRepository(db *gorm.DB) *CatalogRepository { return &CatalogRepository{DB: db} }

// ---------------- Categories ----------------

func (r *CatalogRepository) CreateCategory(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

func (r *CatalogRepository) SaveCategory(cat *entity.Category) error {
	return r.DB.Save(cat).Error
}

func (r *CatalogRepository) DeleteCategory(id uint) error {
	return r.DB.Delete(&entity.Category{}, id).Error
}

func (r *CatalogRepository) GetCategory(id uint) (*entity.Category, error) {
	var cat entity.Category
	if err := r.DB.First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CatalogRepository) ListCategories(branchID uint) ([]entity.Category, error) {
	var out []entity.Category
	err := r.DB.Where("branch_id = ?", branchID).
		Order("created_at DESC").Find(&out).Error
	return out, err
}

// ---------------- Food items ----------------

func (r *CatalogRepository) CreateFoodItem(fi *entity.FoodItem) error {
	return r.DB.Create(fi).Error
}

func (r *CatalogRepository) SaveFoodItem(fi *entity.FoodItem) error {
	return r.DB.Save(fi).Error
}

func (r *CatalogRepository) DeleteFoodItem(id uint) error {
	return r.DB.Delete(&entity.FoodItem{}, id).Error
}

func (r *CatalogRepository) GetFoodItem(id uint) (*entity.FoodItem, error) {
	var fi entity.FoodItem
	if err := r.DB.First(&fi, id).Error; err != nil {
		return nil, err
	}
	return &fi, nil
}

// GetFoodItemBasics loads just what order assembly needs for a price
// lookup (id, name, price, branch).
func (r *CatalogRepository) GetFoodItemBasics(id uint) (entity.FoodItem, error) {
	var fi entity.FoodItem
	err := r.DB.Select("id, name, price, branch_id").First(&fi, id).Error
	return fi, err
}

func (r *CatalogRepository) ListFoodItems(branchID uint, categoryID *uint) ([]entity.FoodItem, error) {
	db := r.DB.Where("branch_id = ?", branchID)
	if categoryID != nil && *categoryID != 0 {
		db = db.Where("category_id = ?", *categoryID)
	}
	var out []entity.FoodItem
	err := db.Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *CatalogRepository) CountFoodItems(branchID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.FoodItem{}).Where("branch_id = ?", branchID).Count(&cnt).Error
	return cnt, err
}
