package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// InvoiceService writes invoice documents to the configured directory.
// The document body is a placeholder dump of the submitted data; real PDF
// rendering is out of scope.
type InvoiceService struct {
	dir string
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(dir string) *InvoiceService {
	return &InvoiceService{
		dir: dir,
	}
}

// Generate writes a placeholder invoice file and returns its path.
func (s *InvoiceService) Generate(invoiceData map[string]interface{}) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create invoice directory: %w", err)
	}

	body, err := json.MarshalIndent(invoiceData, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal invoice data: %w", err)
	}

	fileName := fmt.Sprintf("invoice_%s.pdf", uuid.New().String())
	filePath := filepath.Join(s.dir, fileName)
	if err := os.WriteFile(filePath, body, 0o644); err != nil {
		return "", fmt.Errorf("failed to write invoice %s: %w", fileName, err)
	}
	return filePath, nil
}
