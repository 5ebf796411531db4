package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/example/fashionstore/internal/models"
)

// schemaRepair is one additive schema patch. Repairs run in order, once, at
// startup; every repair must be idempotent so a partially-migrated database
// converges on restart. Request paths assume the full set has been applied.
type schemaRepair struct {
	name  string
	apply func(conn *gorm.DB) error
}

var schemaRepairs = []schemaRepair{
	{
		// Orders created before the contact-phone column existed. Backfill
		// with the sentinel the legacy deployment used.
		name: "orders_customer_phone",
		apply: func(conn *gorm.DB) error {
			if conn.Migrator().HasColumn(&models.Order{}, "customer_phone") {
				return nil
			}
			if err := conn.Migrator().AddColumn(&models.Order{}, "CustomerPhone"); err != nil {
				return err
			}
			return conn.Model(&models.Order{}).
				Where("customer_phone IS NULL OR customer_phone = ''").
				Update("customer_phone", "Not provided").Error
		},
	},
	{
		name: "users_phone",
		apply: func(conn *gorm.DB) error {
			if conn.Migrator().HasColumn(&models.User{}, "phone") {
				return nil
			}
			return conn.Migrator().AddColumn(&models.User{}, "Phone")
		},
	},
}

// RunSchemaRepairs applies the ordered additive migrations. A failed repair
// is a fatal configuration problem for the caller to surface.
func RunSchemaRepairs(conn *gorm.DB) error {
	for _, repair := range schemaRepairs {
		if err := repair.apply(conn); err != nil {
			return err
		}
		log.Printf("schema repair %q ensured", repair.name)
	}
	return nil
}
