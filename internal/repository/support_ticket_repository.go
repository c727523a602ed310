package repository

import (
	"errors"

	"github.com/stayloop/hotel-backoffice/internal/domain"

	"gorm.io/gorm"
)

var ErrTicketNotFound = errors.New("support ticket not found")

type SupportTicketRepository interface {
	Create(ticket *domain.SupportTicket) error
	FindByID(id uint) (*domain.SupportTicket, error)
	List() ([]domain.SupportTicket, error)
	ListByUser(userID uint) ([]domain.SupportTicket, error)
	Update(id uint, fields map[string]any) error
	DeleteByID(id uint) error
}

type GormSupportTicketRepository struct{ db *gorm.DB }

func NewSupportTicketRepository(db *gorm.DB) SupportTicketRepository {
	return &GormSupportTicketRepository{db: db}
}

func (r *GormSupportTicketRepository) Create(ticket *domain.SupportTicket) error {
	return r.db.Create(ticket).Error
}

func (r *GormSupportTicketRepository) FindByID(id uint) (*domain.SupportTicket, error) {
	var t domain.SupportTicket
	if err := r.db.Preload("User").First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *GormSupportTicketRepository) List() ([]domain.SupportTicket, error) {
	var tickets []domain.SupportTicket
	err := r.db.Preload("User").Order("ticket_id").Find(&tickets).Error
	return tickets, err
}

func (r *GormSupportTicketRepository) ListByUser(userID uint) ([]domain.SupportTicket, error) {
	var tickets []domain.SupportTicket
	err := r.db.Preload("User").Where("user_id = ?", userID).Order("ticket_id").Find(&tickets).Error
	return tickets, err
}

func (r *GormSupportTicketRepository) Update(id uint, fields map[string]any) error {
	res := r.db.Model(&domain.SupportTicket{}).Where("ticket_id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrTicketNotFound
	}
	return nil
}

func (r *GormSupportTicketRepository) DeleteByID(id uint) error {
	res := r.db.Delete(&domain.SupportTicket{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrTicketNotFound
	}
	return nil
}
