//go:build integration
// +build integration

package connector

import (
	"context"
	"testing"

	"github.com/Tsilavina4274/odyssea/internal/domain/documents"
	"github.com/Tsilavina4274/odyssea/internal/domain/shared"
	"github.com/Tsilavina4274/odyssea/internal/pkg/config"
	"github.com/Tsilavina4274/odyssea/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConnector(t *testing.T) documents.DocumentConnector {
	t.Helper()

	settings := &config.DocumentConnectorSettings{
		CloudProvider:    TestCloudProvider,
		ConnectionString: TestConnectionString,
		ContainerName:    TestContainerName,
	}
	c, err := NewAzureDocumentConnector(context.Background(), settings, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return c
}

func TestAzureDocumentConnector_UploadDownloadDelete(t *testing.T) {
	c := newTestConnector(t)
	ctx := context.Background()

	doc := &documents.Document{ID: uuid.NewString(), Name: "bulletin.pdf"}
	content := []byte("%PDF-1.4 bulletin de notes")

	require.NoError(t, c.Upload(ctx, content, doc.BlobName()))

	downloaded, err := c.Download(ctx, doc.BlobName())
	require.NoError(t, err)
	assert.Equal(t, content, downloaded)

	require.NoError(t, c.Delete(ctx, doc.BlobName()))

	_, err = c.Download(ctx, doc.BlobName())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestAzureDocumentConnector_Download_NotFound(t *testing.T) {
	c := newTestConnector(t)

	_, err := c.Download(context.Background(), uuid.NewString()+"/missing.pdf")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestAzureDocumentConnector_ExistingContainer(t *testing.T) {
	newTestConnector(t)
	newTestConnector(t)
}

func TestNewAzureDocumentConnector_InvalidSettings(t *testing.T) {
	_, err := NewAzureDocumentConnector(context.Background(), &config.DocumentConnectorSettings{}, testutil.SetupTestLogger(t))
	assert.Error(t, err)
}
