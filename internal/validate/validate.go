// Package validate checks inbound event records before they are processed.
package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/filealert/upload-notifier/internal/models"
)

// Record checks that an event record carries every field the relay needs.
// It fails fast with an error naming the missing or invalid field.
func Record(rec models.S3EventRecord) error {
	if strings.TrimSpace(rec.S3.Bucket.Name) == "" {
		return errors.New("missing bucket name")
	}
	if rec.S3.Object.Key == "" {
		return errors.New("missing object key")
	}
	if rec.S3.Object.Size < 0 {
		return fmt.Errorf("negative object size %d", rec.S3.Object.Size)
	}
	if strings.TrimSpace(rec.EventTime) == "" {
		return errors.New("missing event time")
	}
	return nil
}
