package models

// S3Event is the notification envelope S3 delivers for bucket events.
// The shape is owned by S3; see
// https://docs.aws.amazon.com/AmazonS3/latest/userguide/notification-content-structure.html
type S3Event struct {
	Records []S3EventRecord `json:"Records"`
}

// S3EventRecord describes a single bucket event. EventTime is kept as the
// raw ISO8601 string so it reaches the metadata row and the alert untouched.
type S3EventRecord struct {
	EventVersion string   `json:"eventVersion,omitempty"`
	EventSource  string   `json:"eventSource,omitempty"`
	AwsRegion    string   `json:"awsRegion,omitempty"`
	EventTime    string   `json:"eventTime"`
	EventName    string   `json:"eventName,omitempty"`
	S3           S3Entity `json:"s3"`
}

// S3Entity groups the bucket and object halves of a record.
type S3Entity struct {
	SchemaVersion   string   `json:"s3SchemaVersion,omitempty"`
	ConfigurationID string   `json:"configurationId,omitempty"`
	Bucket          S3Bucket `json:"bucket"`
	Object          S3Object `json:"object"`
}

// S3Bucket identifies the storage container.
type S3Bucket struct {
	Name string `json:"name"`
	ARN  string `json:"arn,omitempty"`
}

// S3Object identifies the uploaded object. Key arrives URL-encoded.
type S3Object struct {
	Key       string `json:"key"`
	Size      int64  `json:"size"`
	ETag      string `json:"eTag,omitempty"`
	VersionID string `json:"versionId,omitempty"`
	Sequencer string `json:"sequencer,omitempty"`
}
