package integrity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStore adapts a *gorm.DB (usually a transaction handle) to the Store
// interface. All statements address tables by name so one adapter serves
// every registered entity.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(tx *gorm.DB) GormStore { return GormStore{DB: tx} }

func (s GormStore) live(ent Entity) *gorm.DB {
	return s.DB.Table(ent.Table).Where(ent.DeletedColumn + " IS NULL")
}

func (s GormStore) Exists(ent Entity, schoolID, id uuid.UUID) (bool, error) {
	var n int64
	err := s.live(ent).
		Where(fmt.Sprintf("%s = ? AND %s = ?", ent.IDColumn, ent.SchoolColumn), id, schoolID).
		Count(&n).Error
	return n > 0, err
}

func (s GormStore) FindRefIDs(ent Entity, refColumn string, schoolID uuid.UUID, parentIDs []uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.live(ent).
		Where(fmt.Sprintf("%s = ? AND %s IN ?", ent.SchoolColumn, refColumn), schoolID, parentIDs).
		Pluck(ent.IDColumn, &ids).Error
	return ids, err
}

func (s GormStore) DeleteWhereRef(ent Entity, refColumn string, schoolID uuid.UUID, parentIDs []uuid.UUID) (int64, error) {
	res := s.live(ent).
		Where(fmt.Sprintf("%s = ? AND %s IN ?", ent.SchoolColumn, refColumn), schoolID, parentIDs).
		Update(ent.DeletedColumn, time.Now())
	return res.RowsAffected, res.Error
}

func (s GormStore) NullifyRef(ent Entity, refColumn string, schoolID uuid.UUID, parentIDs []uuid.UUID) (int64, error) {
	res := s.live(ent).
		Where(fmt.Sprintf("%s = ? AND %s IN ?", ent.SchoolColumn, refColumn), schoolID, parentIDs).
		Update(refColumn, gorm.Expr("NULL"))
	return res.RowsAffected, res.Error
}

func (s GormStore) DeleteByID(ent Entity, schoolID, id uuid.UUID) (int64, error) {
	res := s.live(ent).
		Where(fmt.Sprintf("%s = ? AND %s = ?", ent.IDColumn, ent.SchoolColumn), id, schoolID).
		Update(ent.DeletedColumn, time.Now())
	return res.RowsAffected, res.Error
}
