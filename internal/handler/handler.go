// Package handler processes S3 upload event batches: one metadata write and
// one alert publish per record.
package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"github.com/filealert/upload-notifier/internal/alert"
	"github.com/filealert/upload-notifier/internal/models"
	"github.com/filealert/upload-notifier/internal/validate"

	"github.com/oklog/ulid/v2"
)

// MetadataStore persists one row per uploaded object.
type MetadataStore interface {
	PutMetadata(ctx context.Context, m models.FileMetadata) error
}

// AlertPublisher fans a subject/message pair out to subscribers.
type AlertPublisher interface {
	PublishAlert(ctx context.Context, subject, message string) error
}

// Response is the invocation result envelope.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// App holds the handler's injected collaborators.
type App struct {
	Store  MetadataStore
	Alerts AlertPublisher
}

// Handle processes the records of one event batch strictly in order. The
// first validation, store, or publish failure aborts the remaining records;
// side effects already performed are not rolled back.
func (a *App) Handle(ctx context.Context, ev models.S3Event) (Response, error) {
	inv := ulid.Make().String()
	log.Printf("notifier[%s]: received %d record(s)", inv, len(ev.Records))

	for i, rec := range ev.Records {
		if err := a.processRecord(ctx, inv, rec); err != nil {
			return Response{}, fmt.Errorf("record %d: %w", i, err)
		}
	}
	return success(), nil
}

// processRecord performs the two external writes for a single record,
// metadata first.
func (a *App) processRecord(ctx context.Context, inv string, rec models.S3EventRecord) error {
	if err := validate.Record(rec); err != nil {
		return fmt.Errorf("invalid record: %w", err)
	}

	bucket := rec.S3.Bucket.Name
	key, err := url.QueryUnescape(rec.S3.Object.Key)
	if err != nil {
		return fmt.Errorf("bad object key %q: %w", rec.S3.Object.Key, err)
	}

	meta := models.FileMetadata{
		FileName:   key,
		BucketName: bucket,
		FileSize:   rec.S3.Object.Size,
		UploadTime: rec.EventTime,
	}
	if err := a.Store.PutMetadata(ctx, meta); err != nil {
		return fmt.Errorf("store metadata for %s: %w", key, err)
	}
	log.Printf("notifier[%s]: stored metadata for %s/%s", inv, bucket, key)

	msg := alert.Message(key, bucket, rec.S3.Object.Size, rec.EventTime)
	if err := a.Alerts.PublishAlert(ctx, alert.Subject, msg); err != nil {
		return fmt.Errorf("publish alert for %s: %w", key, err)
	}
	log.Printf("notifier[%s]: published alert for %s/%s", inv, bucket, key)
	return nil
}

// success builds the fixed full-batch success response. The body is the JSON
// encoding of the confirmation string, matching the documented envelope.
func success() Response {
	body, _ := json.Marshal("File processed successfully!")
	return Response{StatusCode: http.StatusOK, Body: string(body)}
}
