package rooms

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/training/rooms/model"
)

// Struktur sesuai kolom class_rooms
type RoomSeed struct {
	Name      string   `json:"class_rooms_name"`
	Code      string   `json:"class_rooms_code"`
	Location  string   `json:"class_rooms_location"`
	Capacity  int      `json:"class_rooms_capacity"`
	IsVirtual bool     `json:"class_rooms_is_virtual"`
	Features  []string `json:"class_rooms_features"`
}

func SeedRoomsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var seeds []RoomSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, r := range seeds {
		var existing model.ClassRoomModel
		if err := db.Where("class_rooms_code = ?", r.Code).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Ruangan dengan kode %s sudah ada, lewati...", r.Code)
			continue
		}

		features, _ := json.Marshal(r.Features)
		code := r.Code
		loc := r.Location
		capacity := r.Capacity
		room := model.ClassRoomModel{
			ClassRoomName:      r.Name,
			ClassRoomCode:      &code,
			ClassRoomLocation:  &loc,
			ClassRoomCapacity:  &capacity,
			ClassRoomIsVirtual: r.IsVirtual,
			ClassRoomIsActive:  true,
			ClassRoomFeatures:  datatypes.JSON(features),
		}
		if err := db.Create(&room).Error; err != nil {
			log.Printf("❌ Gagal seed ruangan %s: %v", r.Name, err)
			continue
		}
		log.Printf("✅ Ruangan %s dibuat", r.Name)
	}
}
