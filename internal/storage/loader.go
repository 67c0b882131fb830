package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"

	"github.com/equinor/linref-api/internal/geom"
)

// Loader fetches a geometry document and decodes it into the geom data
// model. It is the one place azblob is imported from.
type Loader struct{}

// NewLoader returns a Loader ready to serve Connections produced by
// either NewFileConnection or MakeAzureConnection.
func NewLoader() *Loader { return &Loader{} }

// Load fetches and decodes the geometry document named by conn.
func (l *Loader) Load(ctx context.Context, conn Connection) (geom.Geometry, error) {
	raw, err := l.fetch(ctx, conn)
	if err != nil {
		return nil, err
	}

	var doc geometryDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, NewErrorf(InvalidArgument, "malformed geometry document: %v", err)
	}
	if len(doc.Lines) == 0 {
		return nil, NewError(InvalidArgument, "geometry document has no lines")
	}

	return doc.toGeometry(), nil
}

func (l *Loader) fetch(ctx context.Context, conn Connection) ([]byte, error) {
	if fc, ok := conn.(fileConnection); ok {
		b, err := os.ReadFile(fc.path)
		if err != nil {
			return nil, NewErrorf(InternalError, "reading geometry file: %v", err)
		}
		return b, nil
	}

	ac, ok := conn.(azureConnection)
	if !ok {
		return nil, NewError(InternalError, "unsupported connection type")
	}

	account, container, blob, err := splitBlobURL(ac.url)
	if err != nil {
		return nil, NewErrorf(InvalidArgument, "invalid blob url: %v", err)
	}

	client, err := azblob.NewClientWithNoCredential(account, nil)
	if err != nil {
		return nil, NewErrorf(InternalError, "constructing blob client: %v", err)
	}

	resp, err := client.DownloadStream(ctx, container, blob, nil)
	if err != nil {
		return nil, NewErrorf(InternalError, "downloading blob: %v", err)
	}
	defer resp.Body.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, resp.Body); err != nil {
		return nil, NewErrorf(InternalError, "reading blob stream: %v", err)
	}
	return buf.Bytes(), nil
}

// splitBlobURL decomposes "https://account.blob.core.windows.net/container/blob/path"
// into the service URL, container name, and blob path.
func splitBlobURL(raw string) (serviceURL, container, blob string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", "", err
	}

	parts := strings.SplitN(strings.TrimPrefix(u.Path, "/"), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", "", fmt.Errorf("expected /<container>/<blob>, got %q", u.Path)
	}

	service := fmt.Sprintf("%s://%s", u.Scheme, u.Host)
	return service, parts[0], parts[1], nil
}
