package connector

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/Tsilavina4274/odyssea/internal/domain/documents"
	"github.com/Tsilavina4274/odyssea/internal/domain/shared"
	"github.com/Tsilavina4274/odyssea/internal/pkg/config"
	"github.com/Tsilavina4274/odyssea/internal/pkg/logger"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
)

// AzureDocumentConnector stores document content in an Azure Blob Storage container
type AzureDocumentConnector struct {
	client        *azblob.Client
	containerName string
	logger        logger.Logger
}

// NewAzureDocumentConnector creates the connector and the container when it does not exist yet
func NewAzureDocumentConnector(ctx context.Context, settings *config.DocumentConnectorSettings, logger logger.Logger) (documents.DocumentConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	client, err := azblob.NewClientFromConnectionString(settings.ConnectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure Blob client: %w", err)
	}

	_, err = client.CreateContainer(ctx, settings.ContainerName, nil)
	if err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
		return nil, fmt.Errorf("failed to create container %s: %w", settings.ContainerName, err)
	}

	return &AzureDocumentConnector{
		client:        client,
		containerName: settings.ContainerName,
		logger:        logger,
	}, nil
}

// Upload writes data to blobName
func (c *AzureDocumentConnector) Upload(ctx context.Context, data []byte, blobName string) error {
	if _, err := c.client.UploadBuffer(ctx, c.containerName, blobName, data, nil); err != nil {
		return fmt.Errorf("failed to upload blob '%s': %w", blobName, err)
	}

	c.logger.Info("Uploaded blob ", blobName, " to container ", c.containerName)
	return nil
}

// Download reads the content of blobName
func (c *AzureDocumentConnector) Download(ctx context.Context, blobName string) ([]byte, error) {
	resp, err := c.client.DownloadStream(ctx, c.containerName, blobName, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return nil, shared.NotFound("blob", blobName)
		}
		return nil, fmt.Errorf("failed to download blob '%s': %w", blobName, err)
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, fmt.Errorf("failed to read blob '%s': %w", blobName, err)
	}

	c.logger.Info("Downloaded blob ", blobName)
	return buf.Bytes(), nil
}

// Delete removes blobName
func (c *AzureDocumentConnector) Delete(ctx context.Context, blobName string) error {
	if _, err := c.client.DeleteBlob(ctx, c.containerName, blobName, nil); err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return shared.NotFound("blob", blobName)
		}
		return fmt.Errorf("failed to delete blob '%s': %w", blobName, err)
	}

	c.logger.Info("Deleted blob ", blobName)
	return nil
}
