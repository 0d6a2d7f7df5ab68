package seeds

import (
	rooms "kursusku_backend/internals/seeds/training/rooms"

	"gorm.io/gorm"
)

// RunAllSeeds mengisi data master awal. Tiap seeder idempotent
// (lewati baris yang sudah ada), jadi aman dipanggil berulang.
func RunAllSeeds(db *gorm.DB) {
	rooms.SeedRoomsFromJSON(db, "internals/seeds/training/rooms/data_rooms.json")
}
