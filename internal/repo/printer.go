package repo

import (
	"context"

	"gorm.io/gorm"

	"VenuePOS/internal/model"
)

// PrinterRepository определяет контракт доступа к Printer.
type PrinterRepository interface {
	List(ctx context.Context) ([]model.Printer, error)
	GetByID(ctx context.Context, id int64) (*model.Printer, error)
	Create(ctx context.Context, printer *model.Printer) error
	Update(ctx context.Context, printer *model.Printer) error
	Delete(ctx context.Context, id int64) error
}

type printerRepo struct {
	db *gorm.DB
}

// NewPrinterRepository создаёт реализацию репозитория для Printer.
func NewPrinterRepository(db *gorm.DB) PrinterRepository {
	return &printerRepo{db: db}
}

func (r *printerRepo) List(ctx context.Context) ([]model.Printer, error) {
	var printers []model.Printer
	if err := r.db.WithContext(ctx).Order("id").Find(&printers).Error; err != nil {
		return nil, err
	}
	return printers, nil
}

func (r *printerRepo) GetByID(ctx context.Context, id int64) (*model.Printer, error) {
	var p model.Printer
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *printerRepo) Create(ctx context.Context, printer *model.Printer) error {
	return r.db.WithContext(ctx).Create(printer).Error
}

func (r *printerRepo) Update(ctx context.Context, printer *model.Printer) error {
	return r.db.WithContext(ctx).Save(printer).Error
}

func (r *printerRepo) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&model.Printer{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
