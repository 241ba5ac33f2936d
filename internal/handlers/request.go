package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/nowshad-islam-dev/skipq-api/internal/httperr"
)

// errEmptyFile marks a multipart part with no content.
var errEmptyFile = errors.New("empty file")

// parseID reads a positive numeric path parameter. It writes the 400 itself
// and reports false on failure.
func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid id")
		return 0, false
	}
	return uint(id), true
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), binding.MIMEMultipartPOSTForm)
}

// bind decodes JSON bodies and form bodies alike. Rules are enforced later by
// the use case validator.
func bind(c *gin.Context, obj any) error {
	if isMultipart(c) {
		return c.ShouldBindWith(obj, binding.FormMultipart)
	}
	if c.ContentType() == binding.MIMEPOSTForm {
		return c.ShouldBindWith(obj, binding.Form)
	}
	return c.ShouldBindJSON(obj)
}

// bindFailed writes the response for a body that could not be decoded.
func bindFailed(c *gin.Context, err error) {
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		httperr.Write(c, http.StatusRequestEntityTooLarge, "payload_too_large", "Request body too large")
		return
	}
	if errors.Is(err, errEmptyFile) {
		httperr.BadRequest(c, "empty_file", "Uploaded files must not be empty")
		return
	}
	httperr.BadRequest(c, "invalid_request", "Invalid request body")
}

// formFile returns the named upload, or nil when the request carries none.
func formFile(c *gin.Context, field string) ([]byte, error) {
	if !isMultipart(c) {
		return nil, nil
	}

	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return readFile(fh)
}

// formFiles returns every upload sent under field in request order.
func formFiles(c *gin.Context, field string) ([][]byte, error) {
	if !isMultipart(c) {
		return nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}

	headers := form.File[field]
	files := make([][]byte, 0, len(headers))
	for _, fh := range headers {
		data, err := readFile(fh)
		if err != nil {
			return nil, err
		}
		if len(data) == 0 {
			return nil, fmt.Errorf("%s: %w", fh.Filename, errEmptyFile)
		}
		files = append(files, data)
	}
	return files, nil
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", fh.Filename, err)
	}
	return data, nil
}
