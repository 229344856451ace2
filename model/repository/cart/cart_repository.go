package cart

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	cartEntity "github.com/aguilerap-jc/thecatmanor/model/entity/cart"
)

type CartRepository struct {
	db *gorm.DB
}

// NewCartRepository prepares the cart tables and returns the repository.
func NewCartRepository(db *gorm.DB) (*CartRepository, error) {
	if err := db.AutoMigrate(&cartEntity.Line{}, &cartEntity.CheckoutRef{}); err != nil {
		return nil, err
	}
	return &CartRepository{db: db}, nil
}

// LinesBySession returns the persisted local lines for a session, oldest first.
func (r *CartRepository) LinesBySession(sessionID string) ([]cartEntity.Line, error) {
	var lines []cartEntity.Line
	err := r.db.Where("session_id = ?", sessionID).Order("id asc").Find(&lines).Error
	return lines, err
}

// ReplaceLines rewrites the persisted lines of a session to match the given
// snapshot. The store calls this after every local mutation.
func (r *CartRepository) ReplaceLines(sessionID string, lines []cartEntity.Line) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", sessionID).Delete(&cartEntity.Line{}).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}
		for i := range lines {
			lines[i].ID = 0
			lines[i].SessionID = sessionID
		}
		return tx.Create(&lines).Error
	})
}

// CheckoutRef returns the session's platform checkout reference, or nil when
// the session has none yet.
func (r *CartRepository) CheckoutRef(sessionID string) (*cartEntity.CheckoutRef, error) {
	var ref cartEntity.CheckoutRef
	err := r.db.Where("session_id = ?", sessionID).First(&ref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

// SaveCheckoutRef upserts the session's checkout reference.
func (r *CartRepository) SaveCheckoutRef(sessionID, checkoutID, webURL string) error {
	ref := cartEntity.CheckoutRef{
		SessionID:  sessionID,
		CheckoutID: checkoutID,
		WebURL:     webURL,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"checkout_id", "web_url", "updated_at"}),
	}).Create(&ref).Error
}

// DeleteCheckoutRef detaches the session from its checkout, e.g. after the
// shopper completed the purchase.
func (r *CartRepository) DeleteCheckoutRef(sessionID string) error {
	return r.db.Where("session_id = ?", sessionID).Delete(&cartEntity.CheckoutRef{}).Error
}

// ClearSession removes everything persisted for a session.
func (r *CartRepository) ClearSession(sessionID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", sessionID).Delete(&cartEntity.Line{}).Error; err != nil {
			return err
		}
		return tx.Where("session_id = ?", sessionID).Delete(&cartEntity.CheckoutRef{}).Error
	})
}
