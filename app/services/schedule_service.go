package services

import (
	"time"

	"DoceGestor/app/models"
)

// ScheduleService handles the weekly production cronograma
type ScheduleService struct {
	*BaseService
	recipes *RecipeService
}

// NewScheduleService creates a new schedule service
func NewScheduleService(recipes *RecipeService) *ScheduleService {
	return &ScheduleService{
		BaseService: NewBaseService(),
		recipes:     recipes,
	}
}

// GetWeek lists schedule items with production date inside [start, start+7d)
func (s *ScheduleService) GetWeek(start time.Time) ([]models.ScheduleItem, error) {
	start = truncateToDay(start)
	end := start.AddDate(0, 0, 7)

	var items []models.ScheduleItem
	err := s.db.Preload("Recipe").
		Where("production_date >= ? AND production_date < ?", start, end).
		Order("production_date ASC, time_of_day ASC").
		Find(&items).Error
	return items, err
}

// GetDueOn lists still-pending items scheduled for the given day
func (s *ScheduleService) GetDueOn(day time.Time) ([]models.ScheduleItem, error) {
	start := truncateToDay(day)
	end := start.AddDate(0, 0, 1)

	var items []models.ScheduleItem
	err := s.db.Preload("Recipe").
		Where("production_date >= ? AND production_date < ? AND status = ?",
			start, end, "pendente").
		Find(&items).Error
	return items, err
}

// CreateItem schedules a production run
func (s *ScheduleService) CreateItem(item *models.ScheduleItem) error {
	if item.RecipeID == 0 {
		return NewValidationError("receita é obrigatória")
	}
	if item.Batches <= 0 {
		return NewValidationError("quantidade de lotes deve ser maior que zero")
	}
	if item.Status == "" {
		item.Status = "pendente"
	}
	return s.db.Create(item).Error
}

// UpdateItem updates a schedule item
func (s *ScheduleService) UpdateItem(item *models.ScheduleItem) error {
	return s.db.Save(item).Error
}

// DeleteItem removes a schedule item
func (s *ScheduleService) DeleteItem(id uint) error {
	return s.db.Delete(&models.ScheduleItem{}, id).Error
}

// StartItem flips a pending item to em_producao
func (s *ScheduleService) StartItem(id uint) error {
	return s.db.Model(&models.ScheduleItem{}).
		Where("id = ? AND status = ?", id, "pendente").
		Update("status", "em_producao").Error
}

// CompleteItem runs the scheduled production and, if it succeeds, marks
// the item concluido. Stock shortages surface unchanged so the caller
// can restock and retry; the item stays in its current status.
func (s *ScheduleService) CompleteItem(id uint) (*models.ProductionEvent, error) {
	var item models.ScheduleItem
	if err := s.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	if item.Status == "concluido" {
		return nil, NewValidationError("item do cronograma já concluído")
	}

	event, err := s.recipes.Produce(item.RecipeID, item.Batches)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.ScheduleItem{}).
		Where("id = ?", id).
		Update("status", "concluido").Error; err != nil {
		return nil, err
	}
	return event, nil
}
