package specification

import "gorm.io/gorm"

// Specification is a composable query fragment. Repositories chain the
// fragments a caller passes onto one gorm query.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
