// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"

	"github.com/taibuivan/cmsadmin/internal/platform/constants"
)

// Upload POSTs content as the "file" part of a multipart form.
//
// The part's Content-Type comes from the file extension, falling back to
// sniffing the first 512 bytes; the backend stores it as the asset's MIME type.
func (client *Client) Upload(context context.Context, endpoint, filename string, content io.Reader, out any) error {
	data, err := io.ReadAll(content)
	if err != nil {
		return fmt.Errorf("apiclient_upload_read_failed: %w", err)
	}

	var buffer bytes.Buffer
	writer := multipart.NewWriter(&buffer)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`,
		constants.UploadFormFileKey, filepath.Base(filename)))
	header.Set("Content-Type", detectContentType(filename, data))

	part, err := writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("apiclient_upload_encode_failed: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("apiclient_upload_encode_failed: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("apiclient_upload_encode_failed: %w", err)
	}

	return client.do(context, http.MethodPost, endpoint, nil, &buffer, writer.FormDataContentType(), out)
}

// detectContentType resolves a MIME type from the extension, then the content.
func detectContentType(filename string, data []byte) string {
	if byExt := mime.TypeByExtension(filepath.Ext(filename)); byExt != "" {
		return byExt
	}
	return http.DetectContentType(data)
}
