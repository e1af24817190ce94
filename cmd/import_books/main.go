// Command import_books loads the starter catalog into the database through
// the regular create path.
package main

import (
	"go.uber.org/zap"

	"fritzoria/internal/repository"
	"fritzoria/internal/seed"
	"fritzoria/internal/validator"
	"fritzoria/pkg/config"
	"fritzoria/pkg/database"
	"fritzoria/pkg/logger"
)

func main() {
	appConfig, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	if err := database.InitDB(appConfig); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}

	// Make sure the catalog tables exist before importing
	if err := database.Setup(database.GetDB()); err != nil {
		log.Fatal("Failed to set up schema", zap.Error(err))
	}

	books := repository.NewBookRepository(database.GetDB())

	successCount := 0
	errorCount := 0
	for _, draft := range seed.Books() {
		title := ""
		if draft.Title != nil {
			title = *draft.Title
		}

		if errs := validator.ValidateBook(draft, false); len(errs) > 0 {
			log.Error("Invalid seed book",
				zap.String("title", title),
				zap.Strings("errors", errs))
			errorCount++
			continue
		}

		book, err := books.Create(draft)
		if err != nil {
			log.Error("Failed to import book",
				zap.String("title", title),
				zap.Error(err))
			errorCount++
			continue
		}

		log.Info("Imported book",
			zap.String("book_id", book.ID),
			zap.String("title", book.Title))
		successCount++
	}

	log.Info("Book import completed",
		zap.Int("success", successCount),
		zap.Int("errors", errorCount))
}
