package database

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	"orgseed/internal/generator"
	"orgseed/internal/models"
)

const defaultBatchSize = 500

// Writer persists generated collections with batched inserts. It is the only
// boundary between the generation pipeline and the database: the pipeline
// emits plain records, the writer turns each collection into insert batches.
type Writer struct {
	db        *gorm.DB
	batchSize int
}

func NewWriter(db *gorm.DB) *Writer {
	return &Writer{db: db, batchSize: defaultBatchSize}
}

// WriteDataset inserts every collection in foreign-key dependency order.
// Any insert error aborts the run; there is no partial-success mode.
func (w *Writer) WriteDataset(ctx context.Context, ds *generator.Dataset) error {
	if err := insertBatch(ctx, w, "organizations", []models.Organization{ds.Organization}); err != nil {
		return err
	}
	if err := insertBatch(ctx, w, "users", ds.Users); err != nil {
		return err
	}
	if err := insertBatch(ctx, w, "teams", ds.Teams); err != nil {
		return err
	}
	if err := insertBatch(ctx, w, "team memberships", ds.Memberships); err != nil {
		return err
	}
	if err := insertBatch(ctx, w, "projects", ds.Projects); err != nil {
		return err
	}
	if err := insertBatch(ctx, w, "sections", ds.Sections); err != nil {
		return err
	}
	if err := insertBatch(ctx, w, "tasks", ds.Tasks); err != nil {
		return err
	}
	if err := insertBatch(ctx, w, "subtasks", ds.Subtasks); err != nil {
		return err
	}
	if err := insertBatch(ctx, w, "comments", ds.Comments); err != nil {
		return err
	}
	if err := insertBatch(ctx, w, "tags", ds.Tags); err != nil {
		return err
	}
	if err := insertBatch(ctx, w, "custom field definitions", ds.CustomFields); err != nil {
		return err
	}
	if err := insertBatch(ctx, w, "custom field values", ds.CustomFieldValues); err != nil {
		return err
	}
	if err := insertBatch(ctx, w, "task tags", ds.TaskTags); err != nil {
		return err
	}
	if err := insertBatch(ctx, w, "task dependencies", ds.Dependencies); err != nil {
		return err
	}
	return insertBatch(ctx, w, "attachments", ds.Attachments)
}

func insertBatch[T any](ctx context.Context, w *Writer, label string, records []T) error {
	if len(records) == 0 {
		return nil
	}
	if err := w.db.WithContext(ctx).CreateInBatches(records, w.batchSize).Error; err != nil {
		return fmt.Errorf("insert %s: %w", label, err)
	}
	log.Printf("Inserted %d %s", len(records), label)
	return nil
}
