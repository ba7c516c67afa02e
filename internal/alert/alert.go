// Package alert formats upload alerts and publishes them to SNS.
package alert

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// Subject is the fixed subject line carried by every upload alert.
const Subject = "New File Upload Alert"

// Message renders the fixed alert body for one uploaded object.
func Message(fileName, bucketName string, sizeBytes int64, uploadedAt string) string {
	return fmt.Sprintf("📂 New file uploaded!\n\nFile: %s\nBucket: %s\nSize: %d bytes\nUploaded at: %s",
		fileName, bucketName, sizeBytes, uploadedAt)
}

// PublishAPI is the slice of the SNS client the publisher needs.
type PublishAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// Publisher sends alerts to a fixed SNS topic.
type Publisher struct {
	SNS      PublishAPI
	TopicARN string
}

// PublishAlert delivers one subject/message pair to the configured topic.
func (p *Publisher) PublishAlert(ctx context.Context, subject, message string) error {
	_, err := p.SNS.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(p.TopicARN),
		Subject:  aws.String(subject),
		Message:  aws.String(message),
	})
	return err
}
