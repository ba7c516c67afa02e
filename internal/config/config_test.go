package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMustLoad(t *testing.T) {
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("DDB_TABLE", "FileMetadata")
	t.Setenv("SNS_TOPIC_ARN", "arn:aws:sns:eu-west-1:123456789012:file-upload-alerts")

	e := MustLoad()
	assert.Equal(t, "eu-west-1", e.Region)
	assert.Equal(t, "FileMetadata", e.Table)
	assert.Equal(t, "arn:aws:sns:eu-west-1:123456789012:file-upload-alerts", e.TopicARN)
}

func TestMustLoadDefaultRegion(t *testing.T) {
	t.Setenv("AWS_REGION", "")
	t.Setenv("DDB_TABLE", "FileMetadata")
	t.Setenv("SNS_TOPIC_ARN", "arn:aws:sns:us-east-1:123456789012:alerts")

	e := MustLoad()
	assert.Equal(t, "us-east-1", e.Region)
}

func TestMustLoadPanicsOnMissingTable(t *testing.T) {
	t.Setenv("AWS_REGION", "us-east-1")
	t.Setenv("DDB_TABLE", "")
	t.Setenv("SNS_TOPIC_ARN", "arn:aws:sns:us-east-1:123456789012:alerts")

	assert.Panics(t, func() { MustLoad() })
}

func TestMustLoadPanicsOnMissingTopic(t *testing.T) {
	t.Setenv("AWS_REGION", "us-east-1")
	t.Setenv("DDB_TABLE", "FileMetadata")
	t.Setenv("SNS_TOPIC_ARN", "")

	assert.Panics(t, func() { MustLoad() })
}
