package services

import "DoceGestor/app/models"

// ResellerService handles revendedores
type ResellerService struct {
	*BaseService
}

// NewResellerService creates a new reseller service
func NewResellerService() *ResellerService {
	return &ResellerService{
		BaseService: NewBaseService(),
	}
}

// GetAllResellers retrieves all resellers ordered by name
func (s *ResellerService) GetAllResellers() ([]models.Reseller, error) {
	var resellers []models.Reseller
	err := s.db.Order("name ASC").Find(&resellers).Error
	return resellers, err
}

// GetReseller retrieves a single reseller by ID
func (s *ResellerService) GetReseller(id uint) (*models.Reseller, error) {
	var reseller models.Reseller
	err := s.db.First(&reseller, id).Error
	return &reseller, err
}

// CreateReseller creates a reseller
func (s *ResellerService) CreateReseller(reseller *models.Reseller) error {
	if reseller.Name == "" {
		return NewValidationError("nome do revendedor é obrigatório")
	}
	if reseller.Commission < 0 || reseller.Commission > 100 {
		return NewValidationError("comissão deve estar entre 0 e 100")
	}
	return s.db.Create(reseller).Error
}

// UpdateReseller updates a reseller
func (s *ResellerService) UpdateReseller(reseller *models.Reseller) error {
	if reseller.Commission < 0 || reseller.Commission > 100 {
		return NewValidationError("comissão deve estar entre 0 e 100")
	}
	return s.db.Save(reseller).Error
}

// DeleteReseller removes a reseller
func (s *ResellerService) DeleteReseller(id uint) error {
	var sales int64
	if err := s.db.Model(&models.Sale{}).Where("reseller_id = ?", id).Count(&sales).Error; err != nil {
		return err
	}
	if sales > 0 {
		return NewValidationError("revendedor possui %d venda(s) registrada(s)", sales)
	}
	return s.db.Delete(&models.Reseller{}, id).Error
}
