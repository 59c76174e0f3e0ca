package backend

import (
	"bytes"
	"io"
	"mime/multipart"
)

// Multipart accumulates a multipart/form-data request body. It carries its
// own content type (with the generated boundary), which the gateway sends
// in place of the default JSON content type.
type Multipart struct {
	buf    bytes.Buffer
	writer *multipart.Writer
	closed bool
}

func NewMultipart() *Multipart {
	m := &Multipart{}
	m.writer = multipart.NewWriter(&m.buf)
	return m
}

// AddField appends a plain form field.
func (m *Multipart) AddField(name, value string) error {
	return m.writer.WriteField(name, value)
}

// AddFile appends a file part, copying the content from r.
func (m *Multipart) AddFile(field, filename string, r io.Reader) error {
	part, err := m.writer.CreateFormFile(field, filename)
	if err != nil {
		return err
	}
	_, err = io.Copy(part, r)
	return err
}

// Close finalizes the body. Idempotent; the gateway calls it before sending.
func (m *Multipart) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true
	return m.writer.Close()
}

// ContentType returns "multipart/form-data" with the boundary parameter.
func (m *Multipart) ContentType() string {
	return m.writer.FormDataContentType()
}

// Reader returns the accumulated body.
func (m *Multipart) Reader() io.Reader {
	return &m.buf
}
