// Package mcptools exposes the match analysis operations as Model Context
// Protocol tools over streamable HTTP.
package mcptools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/okian/futebol/internal/domain/model"
	"github.com/okian/futebol/internal/domain/timeline"
	"github.com/okian/futebol/internal/domain/types"
	"github.com/okian/futebol/pkg/logger"
)

const serverName = "futebol-mcp"

// Dependencies are the service operations offered as tools.
type Dependencies interface {
	Competitions(ctx context.Context) ([]model.Competition, error)
	PlayerProfile(ctx context.Context, matchID int, player string) (model.PlayerStatistics, error)
	ComparePlayers(ctx context.Context, matchID int, player1, player2 string) (model.PlayerComparison, error)
	MatchSummary(ctx context.Context, matchID int, style types.Style) (model.MatchSummary, error)
	Timeline(ctx context.Context, matchID int, eventTypes []string, from, to int) ([]model.TimelineEntry, error)
}

type CompetitionsArgs struct{}

type PlayerArgs struct {
	MatchID int    `json:"match_id" jsonschema:"StatsBomb match id (required)"`
	Player  string `json:"player" jsonschema:"Exact player name as in the event data (required)"`
}

type CompareArgs struct {
	MatchID int    `json:"match_id" jsonschema:"StatsBomb match id (required)"`
	Player1 string `json:"player1" jsonschema:"First player name (required)"`
	Player2 string `json:"player2" jsonschema:"Second player name (required)"`
}

type SummaryArgs struct {
	MatchID int    `json:"match_id" jsonschema:"StatsBomb match id (required)"`
	Style   string `json:"style,omitempty" jsonschema:"Narration style: Formal|Humorístico|Técnico"`
}

type TimelineArgs struct {
	MatchID    int      `json:"match_id" jsonschema:"StatsBomb match id (required)"`
	Types      []string `json:"types,omitempty" jsonschema:"Event types to keep, e.g. Shot, Pass (default all)"`
	FromMinute *int     `json:"from_minute,omitempty" jsonschema:"Window start minute (default 0)"`
	ToMinute   *int     `json:"to_minute,omitempty" jsonschema:"Window end minute (default 90)"`
}

// Tools binds the tool handlers to the service.
type Tools struct {
	deps   Dependencies
	logger logger.Logger
}

// NewServer builds an MCP server with every tool registered.
func NewServer(deps Dependencies, version string) *mcp.Server {
	t := &Tools{deps: deps, logger: logger.Get().Named("mcp")}
	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: version}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "listar_competicoes",
		Description: "Lista todas as competições e temporadas disponíveis",
	}, t.competitions)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "perfil_jogador",
		Description: "Estatísticas de um jogador em uma partida",
	}, t.playerProfile)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "comparar_jogadores",
		Description: "Compara as estatísticas de dois jogadores em uma partida",
	}, t.comparePlayers)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resumo_partida",
		Description: "Placar, gols e cartões de uma partida com narração gerada",
	}, t.matchSummary)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "linha_tempo",
		Description: "Eventos de uma partida filtrados por tipo e intervalo de minutos",
	}, t.timeline)
	return server
}

// Register mounts the streamable HTTP endpoint for server at path.
func Register(ctx context.Context, mux *http.ServeMux, path string, server *mcp.Server) {
	if mux == nil {
		panic("mux is nil")
	}
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})
	mux.Handle(path, handler)
	logger.Get().Named("mcp").Info(ctx, "mcp endpoint mounted", logger.String("path", path))
}

func (t *Tools) competitions(ctx context.Context, _ *mcp.CallToolRequest, _ CompetitionsArgs) (*mcp.CallToolResult, any, error) {
	comps, err := t.deps.Competitions(ctx)
	return t.result(ctx, "listar_competicoes", comps, err)
}

func (t *Tools) playerProfile(ctx context.Context, _ *mcp.CallToolRequest, args PlayerArgs) (*mcp.CallToolResult, any, error) {
	if args.Player == "" {
		return toolError(fmt.Errorf("%w: player is required", types.ErrValidation)), nil, nil
	}
	p, err := t.deps.PlayerProfile(ctx, args.MatchID, args.Player)
	return t.result(ctx, "perfil_jogador", p, err)
}

func (t *Tools) comparePlayers(ctx context.Context, _ *mcp.CallToolRequest, args CompareArgs) (*mcp.CallToolResult, any, error) {
	if args.Player1 == "" || args.Player2 == "" {
		return toolError(fmt.Errorf("%w: player1 and player2 are required", types.ErrValidation)), nil, nil
	}
	c, err := t.deps.ComparePlayers(ctx, args.MatchID, args.Player1, args.Player2)
	return t.result(ctx, "comparar_jogadores", c, err)
}

func (t *Tools) matchSummary(ctx context.Context, _ *mcp.CallToolRequest, args SummaryArgs) (*mcp.CallToolResult, any, error) {
	var style types.Style
	if args.Style != "" {
		s, err := types.ParseStyle(args.Style)
		if err != nil {
			return toolError(err), nil, nil
		}
		style = s
	}
	s, err := t.deps.MatchSummary(ctx, args.MatchID, style)
	return t.result(ctx, "resumo_partida", s, err)
}

func (t *Tools) timeline(ctx context.Context, _ *mcp.CallToolRequest, args TimelineArgs) (*mcp.CallToolResult, any, error) {
	from, to := timeline.FullMatch.From, timeline.FullMatch.To
	if args.FromMinute != nil {
		from = *args.FromMinute
	}
	if args.ToMinute != nil {
		to = *args.ToMinute
	}
	entries, err := t.deps.Timeline(ctx, args.MatchID, args.Types, from, to)
	return t.result(ctx, "linha_tempo", entries, err)
}

// result renders v as JSON text content; domain errors become tool errors
// so the calling agent can read them.
func (t *Tools) result(ctx context.Context, tool string, v any, err error) (*mcp.CallToolResult, any, error) {
	if err != nil {
		t.logger.Warn(ctx, "tool call failed", logger.String("tool", tool), logger.Error(err))
		return toolError(err), nil, nil
	}
	res, err := json.Marshal(v)
	if err != nil {
		return toolError(err), nil, nil
	}
	return toolJSON(res), nil, nil
}

func toolJSON(res []byte) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(res)},
		},
	}
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}
