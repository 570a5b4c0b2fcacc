package models

import "gorm.io/gorm"

// DuaFavorite marks a supplication from the static dua catalog as a
// favorite. Rows are toggled: inserted on favorite, deleted on un-favorite.
type DuaFavorite struct {
	gorm.Model
	UserID uint   `gorm:"not null;uniqueIndex:uidx_dua_user_dua"`
	DuaID  string `gorm:"size:64;not null;uniqueIndex:uidx_dua_user_dua"`
}
