package test

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"
)

// UploadFile returns a multipart body with the content as form file "file"
// and the headers to send it with.
func UploadFile(t *testing.T, fileName string, content []byte) (*bytes.Buffer, map[string]string) {
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	w, err := mw.CreateFormFile("file", fileName)
	require.Nil(t, err)

	_, err = w.Write(content)
	require.Nil(t, err)

	require.Nil(t, mw.Close())

	return body, map[string]string{"Content-Type": mw.FormDataContentType()}
}
