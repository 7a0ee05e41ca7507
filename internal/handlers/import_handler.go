package handlers

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"

	"graph_service/internal/models"
	"graph_service/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ImportHandler struct {
	db *gorm.DB
}

func NewImportHandler(db *gorm.DB) *ImportHandler {
	return &ImportHandler{db: db}
}

// NodeImportResult represents the result of one imported CSV row
type NodeImportResult struct {
	Display string `json:"display"`
	Value   string `json:"value"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// ImportNodes handles bulk node creation from an uploaded CSV file with
// columns type, display, value, notes
func (h *ImportHandler) ImportNodes(c *gin.Context) {
	projectID, ok := parseIDParam(c, "projectId")
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		log.Printf("Error getting file from request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "No file was uploaded or invalid file field. Please use 'file' as the form field name.",
			"details": err.Error(),
		})
		return
	}
	defer file.Close()

	log.Printf("Received file: %s, size: %d bytes, content type: %s",
		header.Filename, header.Size, header.Header.Get("Content-Type"))

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".csv") &&
		header.Header.Get("Content-Type") != "text/csv" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Uploaded file must be a CSV file",
		})
		return
	}

	reader := csv.NewReader(bufio.NewReader(file))
	reader.TrimLeadingSpace = true

	csvHeaders, err := reader.Read()
	if err != nil {
		log.Printf("Error reading CSV header: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid CSV format: could not read header",
		})
		return
	}

	expectedHeaders := []string{"type", "display", "value", "notes"}
	if !validateHeaders(csvHeaders, expectedHeaders) {
		log.Printf("Invalid CSV headers: %v", csvHeaders)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid CSV format: header must contain type, display, value, notes",
			"found":   csvHeaders,
		})
		return
	}

	const maxWorkers = 5
	jobs := make(chan []string, 100)
	results := make(chan NodeImportResult, 100)
	var wg sync.WaitGroup

	for i := 0; i < maxWorkers; i++ {
		wg.Add(1)
		go h.worker(projectID, jobs, results, &wg)
	}

	// Producer: read CSV rows and send them to the workers
	rowCount := 0
	go func() {
		for {
			record, err := reader.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				log.Printf("Error reading CSV row %d: %v", rowCount+1, err)
				continue
			}
			rowCount++
			jobs <- record
		}
		log.Printf("Finished reading CSV file, found %d data rows", rowCount)
		close(jobs)
	}()

	var allResults []NodeImportResult
	var successCount, failCount int
	resultsDone := make(chan bool)

	go func() {
		for result := range results {
			allResults = append(allResults, result)
			if result.Success {
				successCount++
			} else {
				failCount++
			}
		}
		resultsDone <- true
	}()

	wg.Wait()
	close(results)
	<-resultsDone

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Imported %d nodes, %d succeeded, %d failed", len(allResults), successCount, failCount),
		"data": gin.H{
			"total":     len(allResults),
			"success":   successCount,
			"failed":    failCount,
			"results":   allResults,
			"totalRows": rowCount,
			"fileName":  header.Filename,
		},
	})
}

// worker processes node creation jobs
func (h *ImportHandler) worker(projectID uuid.UUID, jobs <-chan []string, results chan<- NodeImportResult, wg *sync.WaitGroup) {
	defer wg.Done()

	for record := range jobs {
		if len(record) < 3 {
			results <- NodeImportResult{
				Success: false,
				Error:   "Invalid record format: insufficient fields",
			}
			continue
		}

		nodeType := models.NodeType(strings.ToLower(strings.TrimSpace(record[0])))
		display := strings.TrimSpace(record[1])
		value := strings.TrimSpace(record[2])

		var notes *string
		if len(record) > 3 {
			if trimmed := strings.TrimSpace(record[3]); trimmed != "" {
				notes = &trimmed
			}
		}

		if nodeType == "" || display == "" {
			results <- NodeImportResult{
				Display: display,
				Value:   value,
				Success: false,
				Error:   "Missing required fields",
			}
			continue
		}

		node := models.Node{
			Type:      nodeType,
			ProjectID: projectID,
			Display:   display,
			Value:     value,
			Notes:     notes,
		}

		saved, err := store.CreateNode(h.db, &node)
		if err != nil {
			results <- NodeImportResult{
				Display: display,
				Value:   value,
				Success: false,
				Error:   err.Error(),
			}
			continue
		}

		results <- NodeImportResult{
			Display: display,
			Value:   value,
			Success: true,
		}

		log.Printf("Created node: %s (%s) with ID: %s", display, nodeType, saved.ID)
	}
}

// validateHeaders checks if all expected headers are present in the actual headers
func validateHeaders(actual []string, expected []string) bool {
	if len(actual) < len(expected) {
		log.Printf("Header count mismatch: expected %d, got %d", len(expected), len(actual))
		return false
	}

	lowerActual := make([]string, len(actual))
	for i, h := range actual {
		// Remove BOM (Byte Order Mark) if present
		h = strings.TrimPrefix(h, "\ufeff")
		lowerActual[i] = strings.ToLower(strings.TrimSpace(h))
	}

	for _, expectedHeader := range expected {
		expectedLower := strings.ToLower(expectedHeader)
		found := false
		for _, actualHeader := range lowerActual {
			if expectedLower == actualHeader {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
