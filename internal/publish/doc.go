// Package publish stores rendered HTML in a directory or an S3 bucket.
//
// A target is either a filesystem directory or an s3://bucket/prefix URL:
//
//	store, err := publish.Open(ctx, "s3://site/pages/", publish.Options{Region: "eu-west-1"})
//	loc, err := store.Put(ctx, "index.html", html)
//
// S3 credentials come from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and
// AWS_SESSION_TOKEN. Without them requests are sent unsigned, which suits
// local S3-compatible servers.
package publish
