// Package main relays S3 upload events: metadata to DynamoDB, alerts to SNS.
package main

import (
	"context"
	"log"

	"github.com/filealert/upload-notifier/internal/alert"
	"github.com/filealert/upload-notifier/internal/awsutil"
	"github.com/filealert/upload-notifier/internal/config"
	"github.com/filealert/upload-notifier/internal/ddb"
	"github.com/filealert/upload-notifier/internal/handler"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// main initializes the clients once and starts the Lambda handler.
func main() {
	env := config.MustLoad()
	cfg, _, err := awsutil.Load(context.Background(), env.Region)
	if err != nil {
		log.Fatal(err)
	}

	app := &handler.App{
		Store:  &ddb.Repo{DB: dynamodb.NewFromConfig(cfg), Table: env.Table},
		Alerts: &alert.Publisher{SNS: sns.NewFromConfig(cfg), TopicARN: env.TopicARN},
	}
	lambda.Start(app.Handle)
}
