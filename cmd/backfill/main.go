// Package main seeds the metadata table from objects already in a bucket.
// Useful when the table is created after the bucket has content; it writes
// rows only and publishes no alerts.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/filealert/upload-notifier/internal/awsutil"
	"github.com/filealert/upload-notifier/internal/config"
	"github.com/filealert/upload-notifier/internal/ddb"
	"github.com/filealert/upload-notifier/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

func main() {
	bucket := flag.String("bucket", "", "bucket to scan (required)")
	prefix := flag.String("prefix", "", "optional key prefix to limit the scan")
	flag.Parse()
	if *bucket == "" {
		log.Fatal("backfill: -bucket is required")
	}

	env := config.MustLoad()
	ctx := context.Background()
	cfg, endpoint, err := awsutil.Load(ctx, env.Region)
	if err != nil {
		log.Fatal(err)
	}

	s3c := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.UsePathStyle = true // localstack/dev friendliness
		}
	})
	repo := &ddb.Repo{DB: dynamodb.NewFromConfig(cfg), Table: env.Table}

	n, err := backfill(ctx, s3c, repo, *bucket, *prefix)
	if err != nil {
		log.Fatalf("backfill: %v", err)
	}
	log.Printf("backfill: wrote %d metadata row(s) from s3://%s/%s", n, *bucket, *prefix)
}

// backfill pages through the bucket listing and writes one metadata row per
// object, using the object's last-modified time as the upload time.
func backfill(ctx context.Context, s3c s3.ListObjectsV2APIClient, repo *ddb.Repo, bucket, prefix string) (int, error) {
	p := s3.NewListObjectsV2Paginator(s3c, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(prefix),
	})

	count := 0
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return count, err
		}
		for _, obj := range page.Contents {
			meta := models.FileMetadata{
				FileName:   aws.ToString(obj.Key),
				BucketName: bucket,
				FileSize:   aws.ToInt64(obj.Size),
			}
			if obj.LastModified != nil {
				meta.UploadTime = obj.LastModified.UTC().Format(time.RFC3339)
			}
			if err := repo.PutMetadata(ctx, meta); err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}
