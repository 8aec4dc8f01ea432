package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"loonbedrijf/internal/config"
	"loonbedrijf/internal/database"
	"loonbedrijf/internal/modules/upload"
)

// Removing an image from the post editor only clears the post's reference.
// This pass reconciles: any upload past the grace period that no post
// references anymore gets its file and row removed.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	cutoff := time.Now().Add(-cfg.GCGrace)

	var orphans []upload.Upload
	err = db.
		Where("created_at < ?", cutoff).
		Where("file_url NOT IN (SELECT image_url FROM blog_posts WHERE image_url <> '')").
		Find(&orphans).Error
	if err != nil {
		log.Fatalf("orphan scan failed: %v", err)
	}

	removedFiles := 0
	removedRows := 0
	for _, o := range orphans {
		absPath := filepath.Join(cfg.UploadsDir, o.FilePath)
		if err := os.Remove(absPath); err != nil {
			if !os.IsNotExist(err) {
				log.Printf("skip %s: remove file failed: %v", o.ID, err)
				continue
			}
			// file already gone, row cleanup still applies
		} else {
			removedFiles++
		}
		if err := db.Delete(&upload.Upload{}, "id = ?", o.ID).Error; err != nil {
			log.Printf("skip %s: delete row failed: %v", o.ID, err)
			continue
		}
		removedRows++
	}

	log.Printf("storage gc completed: scanned=%d files=%d rows=%d grace=%s",
		len(orphans), removedFiles, removedRows, cfg.GCGrace)
}
