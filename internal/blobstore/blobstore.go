// Package blobstore uploads local documents to cloud storage and hands back
// the stable gs:// reference the backend's verification service reads from.
package blobstore

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Uploader stores the contents of r under objectPath and returns the gs://
// reference for it. Implementations own their bucket; callers only pick the
// object path.
type Uploader interface {
	Upload(ctx context.Context, r io.Reader, objectPath string) (ref string, err error)
}

// KYCDocPath is the storage path for a KYC document. No uniqueness suffix:
// re-verifying a document overwrites the previous upload for that kind.
func KYCDocPath(uid, kindKey string) string {
	return fmt.Sprintf("patient_docs/%s/kyc_docs/%s", uid, kindKey)
}

// BillPath is the storage path for a claim bill. The epoch-millis suffix keeps
// repeat submissions of the same file distinct.
func BillPath(uid, fileName string, now time.Time) string {
	return fmt.Sprintf("bills/%s/%s_%d", uid, fileName, now.UnixMilli())
}

// Ref builds the gs:// reference for an object in a bucket.
func Ref(bucket, objectPath string) string {
	return fmt.Sprintf("gs://%s/%s", bucket, objectPath)
}
