// Package repo is the gorm persistence layer. Every method takes a context
// and returns errors from the apperr taxonomy where the caller can act on
// them; raw database errors pass through untyped and surface as 500s.
package repo

import "gorm.io/gorm"

type Repo struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Repo {
	return &Repo{DB: db}
}
