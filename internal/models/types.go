// Package models defines the data models used in the application.
package models

// FileMetadata is the row stored per uploaded object.
type FileMetadata struct {
	// FileName is the table's partition key. Writing the same name again
	// overwrites the prior row; no merge, no history.
	FileName   string `dynamodbav:"FileName" json:"file_name"`
	BucketName string `dynamodbav:"BucketName" json:"bucket_name"`
	FileSize   int64  `dynamodbav:"FileSize" json:"file_size"`
	UploadTime string `dynamodbav:"UploadTime" json:"upload_time"` // ISO8601, as supplied by the event
}
