package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"ngram-go/internal/config"
	"ngram-go/internal/model"
	"ngram-go/internal/service"
)

// GramController handles the n-gram generation HTTP endpoints
type GramController struct {
	gramService *service.GramService
	logger      *zap.Logger
}

// NewGramController creates a new gram controller
func NewGramController(gramService *service.GramService, logger *zap.Logger) *GramController {
	return &GramController{
		gramService: gramService,
		logger:      logger,
	}
}

// GenerateRequest is the request body for single-row generation. NRange and
// Delimiter override the configured defaults when present.
type GenerateRequest struct {
	Tokens    []string `json:"tokens"`
	NRange    []int    `json:"n_range"`
	Delimiter *string  `json:"delimiter"`
}

// GenerateResponse carries the grams for one row
type GenerateResponse struct {
	NGrams []string `json:"ngrams"`
	Count  int      `json:"count"`
}

// GenerateBatchRequest is the request body for batch generation. Rows are
// lists of arbitrary JSON scalars so that one malformed row degrades on its
// own instead of failing the whole bind.
type GenerateBatchRequest struct {
	Rows      [][]interface{} `json:"rows"`
	NRange    []int           `json:"n_range"`
	Delimiter *string         `json:"delimiter"`
}

// GenerateBatchResponse is row-aligned with the request: results[i] holds the
// grams for rows[i], an empty list when that row degraded.
type GenerateBatchResponse struct {
	RequestID string     `json:"request_id"`
	RowCount  int        `json:"row_count"`
	Schema    string     `json:"schema"`
	Results   [][]string `json:"results"`
}

// Generate handles POST /api/v1/generate
func (gc *GramController) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	nRange, delimiter, ok := gc.resolveParams(c, req.NRange, req.Delimiter)
	if !ok {
		return
	}

	grams := gc.gramService.GenerateRow(req.Tokens, nRange, delimiter)

	c.JSON(http.StatusOK, GenerateResponse{
		NGrams: grams,
		Count:  len(grams),
	})
}

// GenerateBatch handles POST /api/v1/generateBatch
func (gc *GramController) GenerateBatch(c *gin.Context) {
	var req GenerateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	nRange, delimiter, ok := gc.resolveParams(c, req.NRange, req.Delimiter)
	if !ok {
		return
	}

	requestID := uuid.NewString()
	gc.logger.Info("Processing batch",
		zap.String("request_id", requestID),
		zap.Int("rows", len(req.Rows)),
		zap.Ints("n_range", nRange))

	results := gc.gramService.ProcessBatch(c.Request.Context(), req.Rows, nRange, delimiter)

	c.JSON(http.StatusOK, GenerateBatchResponse{
		RequestID: requestID,
		RowCount:  len(results),
		Schema:    model.ListOfStringSchema,
		Results:   results,
	})
}

// resolveParams merges request overrides with configured defaults. A request
// that overrides n_range with invalid values is a caller error and fails the
// request up front, unlike data conditions which degrade per row.
func (gc *GramController) resolveParams(c *gin.Context, nRange []int, delimiter *string) ([]int, string, bool) {
	if len(nRange) > 0 {
		if err := config.ValidateNRange(nRange); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("invalid n_range: %v", err),
			})
			return nil, "", false
		}
	}
	resolved, delim := gc.gramService.Params(nRange, delimiter)
	return resolved, delim, true
}
