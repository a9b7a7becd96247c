package host

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"sendyourfiles/internal/core/domain"
	"strings"

	"github.com/google/uuid"
)

const boundaryPrefix = "SendYourFiles"

type formField struct {
	name  string
	value string
}

// formBody is a multipart/form-data body whose file part is streamed from the source file
type formBody struct {
	contentType string
	body        io.Reader
	length      int64
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"", "\r", "%0D", "\n", "%0A")

func newBoundary() string {
	id := uuid.New()
	return boundaryPrefix + hex.EncodeToString(id[:])
}

// encodeForm writes fields in order followed by the file under fileField
func encodeForm(fields []formField, fileField string, file domain.UploadableFile) (*formBody, error) {
	var head bytes.Buffer
	w := multipart.NewWriter(&head)

	boundary := newBoundary()
	if err := w.SetBoundary(boundary); err != nil {
		return nil, fmt.Errorf("failed to set multipart boundary: %w", err)
	}

	for _, field := range fields {
		if err := w.WriteField(field.name, field.value); err != nil {
			return nil, fmt.Errorf("failed to write form field %s: %w", field.name, err)
		}
	}

	partHeader := make(textproto.MIMEHeader)
	partHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(fileField), quoteEscaper.Replace(file.FileName())))
	partHeader.Set("Content-Type", file.MimeType())
	if _, err := w.CreatePart(partHeader); err != nil {
		return nil, fmt.Errorf("failed to write file part header: %w", err)
	}

	// same closing delimiter multipart.Writer.Close emits after a part
	tail := "\r\n--" + boundary + "--\r\n"

	return &formBody{
		contentType: w.FormDataContentType(),
		body:        io.MultiReader(bytes.NewReader(head.Bytes()), file.Reader(), strings.NewReader(tail)),
		length:      int64(head.Len()) + file.Size + int64(len(tail)),
	}, nil
}
