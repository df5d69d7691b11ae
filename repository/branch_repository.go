package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type BranchRepository struct{ DB *gorm.DB }

func NewBranchRepository(db *gorm.DB) *BranchRepository { return &BranchRepository{DB: db} }

func (r *BranchRepository) Create(b *entity.Branch) error {
	return r.DB.Create(b).Error
}

func (r *BranchRepository) Save(b *entity.Branch) error {
	return r.DB.Save(b).Error
}

func (r *BranchRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Branch{}, id).Error
}

func (r *BranchRepository) List() ([]entity.Branch, error) {
	var out []entity.Branch
	err := r.DB.Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *BranchRepository) GetByID(id uint) (*entity.Branch, error) {
	var b entity.Branch
	if err := r.DB.First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BranchRepository) GetBySlug(slug string) (*entity.Branch, error) {
	var b entity.Branch
	if err := r.DB.Where("slug = ?", slug).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BranchRepository) Exists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Branch{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}
