package validate

import (
	"testing"

	"github.com/filealert/upload-notifier/internal/models"

	"github.com/stretchr/testify/assert"
)

func rec(bucket, key string, size int64, eventTime string) models.S3EventRecord {
	return models.S3EventRecord{
		EventTime: eventTime,
		S3: models.S3Entity{
			Bucket: models.S3Bucket{Name: bucket},
			Object: models.S3Object{Key: key, Size: size},
		},
	}
}

func TestRecord(t *testing.T) {
	tests := []struct {
		name    string
		rec     models.S3EventRecord
		wantErr string
	}{
		{"valid", rec("my-bucket", "a.txt", 10, "2024-01-15T10:30:00Z"), ""},
		{"zero size ok", rec("my-bucket", "empty.txt", 0, "2024-01-15T10:30:00Z"), ""},
		{"missing bucket", rec("", "a.txt", 10, "2024-01-15T10:30:00Z"), "missing bucket name"},
		{"blank bucket", rec("   ", "a.txt", 10, "2024-01-15T10:30:00Z"), "missing bucket name"},
		{"missing key", rec("my-bucket", "", 10, "2024-01-15T10:30:00Z"), "missing object key"},
		{"negative size", rec("my-bucket", "a.txt", -1, "2024-01-15T10:30:00Z"), "negative object size -1"},
		{"missing event time", rec("my-bucket", "a.txt", 10, ""), "missing event time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Record(tt.rec)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
