package services

import (
	"strings"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"
	"backend/utils"
)

type BranchService struct {
	Repo *repository.BranchRepository
}

func NewBranchService(repo *repository.BranchRepository) *BranchService {
	return &BranchService{Repo: repo}
}

type BranchIn struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	WhatsApp    string `json:"whatsapp"`
	Description string `json:"description"`
	Banner      string `json:"banner"`
	DeliveryFee int64  `json:"deliveryFee"`
}

func (in *BranchIn) validate() error {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Address) == "" ||
		strings.TrimSpace(in.Phone) == "" ||
		strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.WhatsApp) == "" ||
		strings.TrimSpace(in.Description) == "" {
		return apperr.Validationf("all fields are required")
	}
	return nil
}

func (s *BranchService) Create(in *BranchIn) (*entity.Branch, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	b := &entity.Branch{
		Name:        in.Name,
		Slug:        utils.Slugify(in.Name),
		Address:     in.Address,
		Phone:       in.Phone,
		Email:       in.Email,
		WhatsApp:    in.WhatsApp,
		Description: in.Description,
		Banner:      in.Banner,
		DeliveryFee: in.DeliveryFee,
	}
	if err := s.Repo.Create(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BranchService) Update(id uint, in *BranchIn) (*entity.Branch, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	b.Name = in.Name
	b.Slug = utils.Slugify(in.Name)
	b.Address = in.Address
	b.Phone = in.Phone
	b.Email = in.Email
	b.WhatsApp = in.WhatsApp
	b.Description = in.Description
	b.DeliveryFee = in.DeliveryFee
	if in.Banner != "" {
		b.Banner = in.Banner
	}
	if err := s.Repo.Save(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BranchService) Delete(id uint) error {
	if _, err := s.Repo.GetByID(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}

func (s *BranchService) List() ([]entity.Branch, error) {
	return s.Repo.List()
}

func (s *BranchService) GetBySlug(slug string) (*entity.Branch, error) {
	return s.Repo.GetBySlug(slug)
}

func (s *BranchService) GetByID(id uint) (*entity.Branch, error) {
	return s.Repo.GetByID(id)
}
