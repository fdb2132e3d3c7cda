package config

import (
	"keyeditor-api/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitDB(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Organization{},
		&models.OrganizationInfo{},
		&models.Workgroup{},
		&models.Editor{},
		&models.Group{},
		&models.GroupInfo{},
		&models.GroupParent{},
		&models.Collection{},
		&models.CollectionInfo{},
		&models.Media{},
		&models.MediaInfo{},
		&models.Key{},
		&models.KeyInfo{},
		&models.KeyCollection{},
		&models.Revision{},
		&models.KeyRevision{},
		&models.Taxon{},
		&models.Character{},
		&models.CharacterState{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
