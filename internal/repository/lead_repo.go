package repository

import (
	"context"
	"strings"
	"time"

	"loanhelp/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

type leadModel struct {
	ID             string    `gorm:"column:id;primaryKey"`
	Name           string    `gorm:"column:name"`
	Email          string    `gorm:"column:email;index"`
	Phone          string    `gorm:"column:phone"`
	State          string    `gorm:"column:state"`
	PropertyState  string    `gorm:"column:property_state"`
	HomeType       string    `gorm:"column:home_type"`
	CreditRange    string    `gorm:"column:credit_range"`
	Timeline       string    `gorm:"column:timeline"`
	AdditionalInfo *string   `gorm:"column:additional_info"`
	SourcePage     string    `gorm:"column:source_page"`
	IPAddress      *string   `gorm:"column:ip_address"`
	UserAgent      *string   `gorm:"column:user_agent"`
	CreatedAt      time.Time `gorm:"column:created_at;index"`
}

func (leadModel) TableName() string { return "leads" }

func toDomainLead(m leadModel) *domain.Lead {
	var info, ip, ua string
	if m.AdditionalInfo != nil {
		info = *m.AdditionalInfo
	}
	if m.IPAddress != nil {
		ip = *m.IPAddress
	}
	if m.UserAgent != nil {
		ua = *m.UserAgent
	}

	return &domain.Lead{
		ID:             m.ID,
		Name:           m.Name,
		Email:          m.Email,
		Phone:          m.Phone,
		State:          m.State,
		PropertyState:  m.PropertyState,
		HomeType:       domain.HomeType(m.HomeType),
		CreditRange:    domain.CreditRange(m.CreditRange),
		Timeline:       domain.Timeline(m.Timeline),
		AdditionalInfo: info,
		SourcePage:     m.SourcePage,
		IPAddress:      ip,
		UserAgent:      ua,
		CreatedAt:      m.CreatedAt,
	}
}

func toLeadModel(l *domain.Lead) leadModel {
	email := strings.TrimSpace(strings.ToLower(l.Email))

	var info, ip, ua *string
	if l.AdditionalInfo != "" {
		v := l.AdditionalInfo
		info = &v
	}
	if l.IPAddress != "" {
		v := l.IPAddress
		ip = &v
	}
	if l.UserAgent != "" {
		v := l.UserAgent
		ua = &v
	}

	return leadModel{
		ID:             l.ID,
		Name:           l.Name,
		Email:          email,
		Phone:          l.Phone,
		State:          l.State,
		PropertyState:  l.PropertyState,
		HomeType:       string(l.HomeType),
		CreditRange:    string(l.CreditRange),
		Timeline:       string(l.Timeline),
		AdditionalInfo: info,
		SourcePage:     l.SourcePage,
		IPAddress:      ip,
		UserAgent:      ua,
		CreatedAt:      l.CreatedAt,
	}
}

// Create inserts the lead, assigning its id and creation timestamp. Both are
// immutable after this call.
func (r *LeadRepository) Create(ctx context.Context, l *domain.Lead) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}

	m := toLeadModel(l)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*l = *toDomainLead(m)
	return nil
}

// FindRecentIDsByEmail returns ids of leads sharing the email with a creation
// timestamp at or after since. Used only for the duplicate-window check.
func (r *LeadRepository) FindRecentIDsByEmail(ctx context.Context, email string, since time.Time) ([]string, error) {
	var ids []string
	tx := r.db.WithContext(ctx).
		Model(&leadModel{}).
		Where("LOWER(email) = ? AND created_at >= ?", strings.ToLower(strings.TrimSpace(email)), since).
		Limit(1).
		Pluck("id", &ids)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return ids, nil
}

// Migrate creates or updates the leads table schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&leadModel{})
}
