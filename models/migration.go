package models

import "bitbucket.org/greenfields/farmbooks_backend/config"

func MigrateTable() error {
	db := config.GetDB()
	return db.AutoMigrate(
		&Color{},
		&Group{},
		&Field{},
		&Unit{},
		&QualityStandard{},
		&ShipDestination{},
		&Crop{},
		&PlantingSchedule{},
		&Shipment{},
		&ShipmentDetail{},
		&User{},
		&History{},
	)
}
