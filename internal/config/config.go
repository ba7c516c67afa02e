// Package config loads configuration from environment variables.
package config

import (
	"fmt"
	"os"
)

// Env holds the configuration values for the application.
type Env struct {
	Region   string
	Table    string // DynamoDB metadata table
	TopicARN string // SNS alert topic
}

// MustLoad reads the environment variables and returns an Env struct.
func MustLoad() Env {
	return Env{
		Region:   get("AWS_REGION", "us-east-1"),
		Table:    must("DDB_TABLE"),
		TopicARN: must("SNS_TOPIC_ARN"),
	}
}

// get returns the value of the environment variable k or def if not set.
func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// must returns the value of the environment variable k or panics if not set.
func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic(fmt.Errorf("missing env %s", k))
	}
	return v
}
