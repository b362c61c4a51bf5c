package infra

import (
	"estoquepos/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection with a bounded pool.
// Callers run RunMigrations explicitly after connecting.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	return db, nil
}

// RunMigrations creates or updates all tables. The schema only ever
// grows — AutoMigrate adds tables and columns, never removes them.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Produto{},
		&model.Usuario{},
		&model.Venda{},
		&model.MovimentoEstoque{},
	)
}
