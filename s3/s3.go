// Package s3 implements wrappers for the AWS S3 service used to publish
// built workbooks.
//
// Uses the default AWS SDK credentials; e.g. via the environment
// AWS_REGION=region AWS_ACCESS_KEY_ID=key AWS_SECRET_ACCESS_KEY=secret
// OR in the AWS SDK credential configuration ~/.aws/credentials:
//
// aws_access_key_id = AKID
// aws_secret_access_key = SECRET
// aws_session_token = TOKEN
//
// See: https://docs.aws.amazon.com/sdk-for-go/api/aws/session/#pkg-overview
package s3

import (
	"bytes"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	log "github.com/sirupsen/logrus"
)

// FileManager generic workbook publisher interface
type FileManager interface {
	Upload(buf []byte, bucket, key string) (string, error)
	List(bucket, prefix string) ([]Entry, error)
}

// Manager AWS S3 file manager
type Manager struct {
	s3Uploader   *s3manager.Uploader
	s3Downloader *s3manager.Downloader
}

func (m *Manager) setUp(region, profile string) {
	if profile == "" {
		profile = "default"
	}
	log.Debugf("Using region: %q, profile: %q", region, profile)

	sess := session.Must(session.NewSessionWithOptions(
		session.Options{
			Profile: profile,
			Config:  aws.Config{Region: aws.String(region)},
		}))
	m.s3Uploader = s3manager.NewUploader(sess)
	m.s3Downloader = s3manager.NewDownloader(sess)
}

// NewManager instantiates an AWS S3 file manager
func NewManager(region, profile string) Manager {
	m := Manager{}
	m.setUp(region, profile)
	return m
}

// NewManagerWithCredentials instantiates an AWS S3 file manager with static
// credentials
func NewManagerWithCredentials(accessKeyID, secretAccessKey, region string) Manager {
	m := Manager{}
	creds := credentials.NewStaticCredentials(accessKeyID, secretAccessKey, "")
	if _, err := creds.Get(); err != nil {
		log.Errorln("Failed to obtain AWS credentials: ", err.Error())
	}
	sess := session.Must(session.NewSession(&aws.Config{
		Region:      aws.String(region),
		Credentials: creds,
	}))
	m.s3Uploader = s3manager.NewUploader(sess)
	m.s3Downloader = s3manager.NewDownloader(sess)
	return m
}

// Entry S3 entry returned by List
type Entry struct {
	Name, Owner, Repr string
	Size              int64
}

// List lists content of a S3 bucket
func (m Manager) List(bucket, prefix string) ([]Entry, error) {

	params := &s3.ListObjectsInput{
		Bucket: aws.String(bucket),
		Prefix: aws.String(prefix),
	}

	resp, err := m.s3Downloader.S3.ListObjects(params)
	if err != nil {
		return nil, err
	}

	list := make([]Entry, len(resp.Contents))
	for i, key := range resp.Contents {
		list[i].Name = *key.Key
		list[i].Size = *key.Size
		list[i].Repr = key.String()
		owner := key.Owner
		if owner != nil {
			if owner.DisplayName != nil {
				list[i].Owner = *owner.DisplayName
			} else if owner.ID != nil {
				list[i].Owner = *owner.ID
			}
		}
	}
	return list, nil
}

// Upload uploads a built workbook buffer to the given bucket.
func (m Manager) Upload(buf []byte, bucket, key string) (string, error) {

	result, err := m.s3Uploader.Upload(&s3manager.UploadInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf),
		ContentType: aws.String("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"),
	})
	if err != nil {
		return "", err
	}
	log.Debugf("Uploaded workbook %q to %q", key, result.Location)
	return result.Location, nil
}
