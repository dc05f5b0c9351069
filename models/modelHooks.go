package models

import "gorm.io/gorm"

// History hooks run after the entity write, inside the same transaction, so
// the audit row commits or rolls back with the data. They are After hooks on
// purpose: the Before slots carry the stamper promoted from RecordStamp.

func (c *Color) AfterCreate(tx *gorm.DB) error {
	return SaveHistoryCreate(tx, "color", c.ID, c)
}
func (c *Color) AfterUpdate(tx *gorm.DB) error {
	return SaveHistoryUpdate(tx, "color", c.ID, c)
}
func (c *Color) AfterDelete(tx *gorm.DB) error {
	return SaveHistoryDelete(tx, "color", c.ID, c)
}

func (g *Group) AfterCreate(tx *gorm.DB) error {
	return SaveHistoryCreate(tx, "group", g.ID, g)
}
func (g *Group) AfterUpdate(tx *gorm.DB) error {
	return SaveHistoryUpdate(tx, "group", g.ID, g)
}
func (g *Group) AfterDelete(tx *gorm.DB) error {
	return SaveHistoryDelete(tx, "group", g.ID, g)
}

func (f *Field) AfterCreate(tx *gorm.DB) error {
	return SaveHistoryCreate(tx, "field", f.ID, f)
}
func (f *Field) AfterUpdate(tx *gorm.DB) error {
	return SaveHistoryUpdate(tx, "field", f.ID, f)
}
func (f *Field) AfterDelete(tx *gorm.DB) error {
	return SaveHistoryDelete(tx, "field", f.ID, f)
}

func (c *Crop) AfterCreate(tx *gorm.DB) error {
	return SaveHistoryCreate(tx, "crop", c.ID, c)
}
func (c *Crop) AfterUpdate(tx *gorm.DB) error {
	return SaveHistoryUpdate(tx, "crop", c.ID, c)
}
func (c *Crop) AfterDelete(tx *gorm.DB) error {
	return SaveHistoryDelete(tx, "crop", c.ID, c)
}

func (p *PlantingSchedule) AfterCreate(tx *gorm.DB) error {
	return SaveHistoryCreate(tx, "planting_schedule", p.ID, p)
}
func (p *PlantingSchedule) AfterUpdate(tx *gorm.DB) error {
	return SaveHistoryUpdate(tx, "planting_schedule", p.ID, p)
}
func (p *PlantingSchedule) AfterDelete(tx *gorm.DB) error {
	return SaveHistoryDelete(tx, "planting_schedule", p.ID, p)
}

func (u *Unit) AfterCreate(tx *gorm.DB) error {
	return SaveHistoryCreate(tx, "unit", u.ID, u)
}
func (u *Unit) AfterUpdate(tx *gorm.DB) error {
	return SaveHistoryUpdate(tx, "unit", u.ID, u)
}
func (u *Unit) AfterDelete(tx *gorm.DB) error {
	return SaveHistoryDelete(tx, "unit", u.ID, u)
}

func (q *QualityStandard) AfterCreate(tx *gorm.DB) error {
	return SaveHistoryCreate(tx, "quality_standard", q.ID, q)
}
func (q *QualityStandard) AfterUpdate(tx *gorm.DB) error {
	return SaveHistoryUpdate(tx, "quality_standard", q.ID, q)
}
func (q *QualityStandard) AfterDelete(tx *gorm.DB) error {
	return SaveHistoryDelete(tx, "quality_standard", q.ID, q)
}

func (s *ShipDestination) AfterCreate(tx *gorm.DB) error {
	return SaveHistoryCreate(tx, "ship_destination", s.ID, s)
}
func (s *ShipDestination) AfterUpdate(tx *gorm.DB) error {
	return SaveHistoryUpdate(tx, "ship_destination", s.ID, s)
}
func (s *ShipDestination) AfterDelete(tx *gorm.DB) error {
	return SaveHistoryDelete(tx, "ship_destination", s.ID, s)
}

func (s *Shipment) AfterCreate(tx *gorm.DB) error {
	return SaveHistoryCreate(tx, "shipment", s.ID, s)
}
func (s *Shipment) AfterUpdate(tx *gorm.DB) error {
	return SaveHistoryUpdate(tx, "shipment", s.ID, s)
}
func (s *Shipment) AfterDelete(tx *gorm.DB) error {
	return SaveHistoryDelete(tx, "shipment", s.ID, s)
}

func (u *User) AfterCreate(tx *gorm.DB) error {
	return SaveHistoryCreate(tx, "user", u.ID, u)
}
func (u *User) AfterUpdate(tx *gorm.DB) error {
	return SaveHistoryUpdate(tx, "user", u.ID, u)
}
func (u *User) AfterDelete(tx *gorm.DB) error {
	return SaveHistoryDelete(tx, "user", u.ID, u)
}
