package utils

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/robfig/cron/v3"
)

// Retry configuration
const maxRetries = 3
const retryDelay = 2 * time.Minute

// exportFilesDir is where generated spreadsheets land before being swept.
const exportFilesDir = "./public/files"

// CleanupExpiredFile removes the file if it is older than the TTL
func CleanupExpiredFile(filePath string, ttl time.Duration) error {
	info, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("error checking file: %v", err)
	}

	if time.Since(info.ModTime()) > ttl {
		if err := os.Remove(filePath); err != nil {
			return fmt.Errorf("error deleting expired file: %v", err)
		}
		log.Printf("expired export file %s deleted", filePath)
	}
	return nil
}

// CleanupExpiredExports sweeps generated export spreadsheets older than the TTL
func CleanupExpiredExports(fileTTL time.Duration) error {
	files, err := os.ReadDir(exportFilesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // nothing exported yet
		}
		return fmt.Errorf("error reading export files directory: %v", err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}
		filePath := fmt.Sprintf("%s/%s", exportFilesDir, file.Name())
		if err := CleanupExpiredFile(filePath, fileTTL); err != nil {
			log.Println("error cleaning up file:", err)
		}
	}
	return nil
}

// RunScheduledCleanup sweeps expired export files daily at 1 AM, with retries.
func RunScheduledCleanup() {
	c := cron.New()

	c.AddFunc("0 1 * * *", func() {
		log.Println("running scheduled export cleanup task...")

		var retries int
		var cleanupSuccess bool

		for retries < maxRetries {
			err := CleanupExpiredExports(24 * time.Hour)
			if err == nil {
				cleanupSuccess = true
				break
			}
			log.Printf("cleanup failed: %v", err)
			retries++
			time.Sleep(retryDelay)
		}

		if !cleanupSuccess {
			log.Printf("cleanup task failed after %d retries. please check the system.", retries)
		}
	})

	c.Start()

	// Keep the goroutine alive so the cron jobs run
	select {}
}
