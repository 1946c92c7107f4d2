package mcp

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"ngram-go/internal/config"
	"ngram-go/internal/service"
)

// GramServer registers the n-gram generator as a callable MCP tool and serves
// it over streamable HTTP, so agent hosts can invoke generation like any other
// expression.
type GramServer struct {
	server      *mcp.Server
	gramService *service.GramService
	config      *config.Config
	logger      *zap.Logger
	handler     *mcp.StreamableHTTPHandler
}

type GenerateParams struct {
	Tokens    []string `json:"tokens" jsonschema:"the ordered word tokens to build n-grams from"`
	NRange    []int    `json:"n_range,omitempty" jsonschema:"window sizes to generate, defaults to the configured n_range"`
	Delimiter *string  `json:"delimiter,omitempty" jsonschema:"joins the words of a multi-word gram, defaults to a single space"`
}

func NewGramServer(gramService *service.GramService, cfg *config.Config, logger *zap.Logger) *GramServer {
	server := &GramServer{
		gramService: gramService,
		config:      cfg,
		logger:      logger,
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "NGramGenerator",
		Version: "1.0.0",
	}, nil)

	// Register the generateNGrams tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "generateNGrams",
		Description: "Generate n-grams from an ordered list of word tokens. Returns one gram per line: all grams of the first requested length in window order, then the next length, and so on",
	}, server.handleGenerate)

	server.handler = mcp.NewStreamableHTTPHandler(func(req *http.Request) *mcp.Server {
		return mcpServer
	}, nil)

	server.server = mcpServer
	return server
}

func (s *GramServer) handleGenerate(ctx context.Context, req *mcp.CallToolRequest, args GenerateParams) (*mcp.CallToolResult, any, error) {
	s.logger.Info("Handling generateNGrams request",
		zap.Int("tokens", len(args.Tokens)),
		zap.Ints("n_range", args.NRange))

	if len(args.NRange) > 0 {
		if err := config.ValidateNRange(args.NRange); err != nil {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("Invalid n_range: %v", err)}},
			}, nil, nil
		}
	}

	nRange, delimiter := s.gramService.Params(args.NRange, args.Delimiter)
	grams := s.gramService.GenerateRow(args.Tokens, nRange, delimiter)

	if len(grams) == 0 {
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: "No n-grams produced for this input."}},
		}, nil, nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: strings.Join(grams, "\n")}},
	}, nil, nil
}

func (s *GramServer) SetupHTTPRoutes(router *gin.Engine) {
	go func() {
		address := s.config.Mcp.GetAddress()
		log.Printf("MCP Server going to listen on %s", address)
		if err := http.ListenAndServe(address, s.handler); err != nil {
			log.Fatalf("MCP Server failed: %v", err)
		}
	}()
}
