package blobstore_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renalize/internal/blobstore"
	"renalize/internal/token"
)

func TestPaths(t *testing.T) {
	at := time.UnixMilli(1723100000000)

	assert.Equal(t,
		"patient_docs/user-1/kyc_docs/aadhar_front",
		blobstore.KYCDocPath("user-1", "aadhar_front"))

	assert.Equal(t,
		"bills/user-1/pharmacy.jpg_1723100000000",
		blobstore.BillPath("user-1", "pharmacy.jpg", at))

	assert.Equal(t,
		"gs://renalize-docs/bills/user-1/x",
		blobstore.Ref("renalize-docs", "bills/user-1/x"))
}

func TestFirebaseUploader_Upload(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Query().Get("name")
		gotAuth = r.Header.Get("Authorization")
		buf := make([]byte, 64)
		n, _ := r.Body.Read(buf)
		gotBody = buf[:n]
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tokens := token.NewSigner("dev-secret", "renalize-dev", "renalize-api", "user-1")
	up := blobstore.NewFirebase("renalize-docs", tokens, blobstore.WithEndpoint(srv.URL))

	ref, err := up.Upload(context.Background(), strings.NewReader("image-bytes"), "patient_docs/user-1/kyc_docs/pan")
	require.NoError(t, err)

	assert.Equal(t, "gs://renalize-docs/patient_docs/user-1/kyc_docs/pan", ref)
	assert.Equal(t, "patient_docs/user-1/kyc_docs/pan", gotPath)
	assert.True(t, strings.HasPrefix(gotAuth, "Bearer "))
	assert.Equal(t, "image-bytes", string(gotBody))
}

func TestFirebaseUploader_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	tokens := token.NewSigner("dev-secret", "renalize-dev", "renalize-api", "user-1")
	up := blobstore.NewFirebase("renalize-docs", tokens, blobstore.WithEndpoint(srv.URL))

	_, err := up.Upload(context.Background(), strings.NewReader("x"), "bills/user-1/a_1")
	assert.Error(t, err)
}

func TestMemoryUploader_RecordsAndFails(t *testing.T) {
	up := blobstore.NewMemoryUploader("bucket")

	ref, err := up.Upload(context.Background(), strings.NewReader("hello"), "a/b")
	require.NoError(t, err)
	assert.Equal(t, "gs://bucket/a/b", ref)

	data, ok := up.Object("a/b")
	require.True(t, ok)
	assert.Equal(t, "hello", string(data))

	up.FailOn("a/c")
	_, err = up.Upload(context.Background(), strings.NewReader("x"), "a/c")
	assert.Error(t, err)
	assert.Equal(t, 1, up.Len())
}

func TestFirebaseUploader_TimeoutBoundsSlowStorage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	tokens := token.NewSigner("dev-secret", "renalize-dev", "renalize-api", "user-1")
	up := blobstore.NewFirebase("renalize-docs", tokens,
		blobstore.WithEndpoint(srv.URL),
		blobstore.WithTimeout(50*time.Millisecond),
	)

	start := time.Now()
	_, err := up.Upload(context.Background(), strings.NewReader("x"), "bills/user-1/a_1")
	require.Error(t, err)
	assert.Less(t, time.Since(start), 400*time.Millisecond)
}
