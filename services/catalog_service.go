package services

import (
	"strings"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"
	"backend/utils"
)

type CatalogService struct {
	Repo       *repository.CatalogRepository
	BranchRepo *repository.BranchRepository
}

func NewCatalogService(repo *repository.CatalogRepository, br *repository.BranchRepository) *CatalogService {
	return &CatalogService{Repo: repo, BranchRepo: br}
}

// ---------------- Categories ----------------

func (s *CatalogService) CreateCategory(branchID uint, name string) (*entity.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperr.Validationf("category name is required")
	}
	ok, err := s.BranchRepo.Exists(branchID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFoundf("branch %d not found", branchID)
	}
	cat := &entity.Category{
		Name:     name,
		Slug:     utils.Slugify(name),
		BranchID: &branchID,
	}
	if err := s.Repo.CreateCategory(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *CatalogService) UpdateCategory(id uint, name string) (*entity.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperr.Validationf("category name is required")
	}
	cat, err := s.Repo.GetCategory(id)
	if err != nil {
		return nil, err
	}
	cat.Name = name
	cat.Slug = utils.Slugify(name)
	if err := s.Repo.SaveCategory(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *CatalogService) DeleteCategory(id uint) error {
	if _, err := s.Repo.GetCategory(id); err != nil {
		return err
	}
	return s.Repo.DeleteCategory(id)
}

func (s *CatalogService) ListCategories(branchID uint) ([]entity.Category, error) {
	return s.Repo.ListCategories(branchID)
}

// ---------------- Food items ----------------

type FoodItemIn struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Picture     string `json:"picture"`
	Price       int64  `json:"price"`
	CategoryID  uint   `json:"categoryId"`
}

func (s *CatalogService) CreateFoodItem(branchID uint, in *FoodItemIn) (*entity.FoodItem, error) {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Description) == "" ||
		strings.TrimSpace(in.Picture) == "" ||
		in.Price <= 0 {
		return nil, apperr.Validationf("all fields are required")
	}
	ok, err := s.BranchRepo.Exists(branchID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFoundf("branch %d not found", branchID)
	}

	// the category must live in the same branch
	cat, err := s.Repo.GetCategory(in.CategoryID)
	if err != nil {
		return nil, apperr.NotFoundf("category %d not found", in.CategoryID)
	}
	if cat.BranchID == nil || *cat.BranchID != branchID {
		return nil, apperr.Validationf("category not in this branch")
	}

	fi := &entity.FoodItem{
		Name:        in.Name,
		Slug:        utils.Slugify(in.Name),
		Description: in.Description,
		Picture:     in.Picture,
		Price:       in.Price,
		BranchID:    &branchID,
		CategoryID:  &in.CategoryID,
	}
	if err := s.Repo.CreateFoodItem(fi); err != nil {
		return nil, err
	}
	return fi, nil
}

func (s *CatalogService) UpdateFoodItem(id uint, in *FoodItemIn) (*entity.FoodItem, error) {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Description) == "" ||
		in.Price <= 0 {
		return nil, apperr.Validationf("all fields are required")
	}
	fi, err := s.Repo.GetFoodItem(id)
	if err != nil {
		return nil, err
	}
	fi.Name = in.Name
	fi.Slug = utils.Slugify(in.Name)
	fi.Description = in.Description
	fi.Price = in.Price
	if in.Picture != "" {
		fi.Picture = in.Picture
	}
	if err := s.Repo.SaveFoodItem(fi); err != nil {
		return nil, err
	}
	return fi, nil
}

func (s *CatalogService) DeleteFoodItem(id uint) error {
	if _, err := s.Repo.GetFoodItem(id); err != nil {
		return err
	}
	return s.Repo.DeleteFoodItem(id)
}

func (s *CatalogService) GetFoodItem(id uint) (*entity.FoodItem, error) {
	return s.Repo.GetFoodItem(id)
}

func (s *CatalogService) ListFoodItems(branchID uint, categoryID *uint) ([]entity.FoodItem, error) {
	return s.Repo.ListFoodItems(branchID, categoryID)
}

func (s *CatalogService) CountFoodItems(branchID uint) (int64, error) {
	return s.Repo.CountFoodItems(branchID)
}
