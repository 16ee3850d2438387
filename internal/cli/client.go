package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/quizhost/quizhost/internal/api/apierr"
	"github.com/quizhost/quizhost/internal/api/request"
	"github.com/quizhost/quizhost/internal/api/response"
)

// Client is an HTTP client for the quizhost API
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates an API client
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var errResp apierr.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
			return fmt.Errorf("server returned %s", resp.Status)
		}
		return fmt.Errorf("%s: %s", errResp.Error.Code, errResp.Error.Message)
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// Health checks the server health endpoint
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

// Register creates a host account
func (c *Client) Register(ctx context.Context, req request.RegisterRequest) (*response.AuthResponse, error) {
	var out response.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/hosts/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates a host
func (c *Client) Login(ctx context.Context, req request.LoginRequest) (*response.AuthResponse, error) {
	var out response.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/hosts/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me returns the authenticated host
func (c *Client) Me(ctx context.Context) (*response.Host, error) {
	var out response.Host
	if err := c.do(ctx, http.MethodGet, "/api/v1/hosts/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func guildPath(guildID, suffix string) string {
	return "/api/v1/guilds/" + url.PathEscape(guildID) + suffix
}

// CreateGame creates a game for a guild
func (c *Client) CreateGame(ctx context.Context, guildID string, req request.CreateGameRequest) (*response.GameState, error) {
	var out response.GameState
	if err := c.do(ctx, http.MethodPost, guildPath(guildID, "/game"), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetGame fetches the guild's active game
func (c *Client) GetGame(ctx context.Context, guildID string) (*response.GameState, error) {
	var out response.GameState
	if err := c.do(ctx, http.MethodGet, guildPath(guildID, "/game"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Announce opens the game for enrollment
func (c *Client) Announce(ctx context.Context, guildID string) error {
	return c.do(ctx, http.MethodPost, guildPath(guildID, "/game/announce"), nil, nil)
}

// Enroll adds a member to the game
func (c *Client) Enroll(ctx context.Context, guildID, memberID string) error {
	return c.do(ctx, http.MethodPost, guildPath(guildID, "/game/enroll"),
		request.MemberRequest{MemberID: memberID}, nil)
}

// Withdraw removes a member from the game
func (c *Client) Withdraw(ctx context.Context, guildID, memberID string) error {
	return c.do(ctx, http.MethodPost, guildPath(guildID, "/game/withdraw"),
		request.MemberRequest{MemberID: memberID}, nil)
}

// Start starts the game
func (c *Client) Start(ctx context.Context, guildID string) (*response.GameState, error) {
	var out response.GameState
	if err := c.do(ctx, http.MethodPost, guildPath(guildID, "/game/start"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Rebalance redistributes players across teams
func (c *Client) Rebalance(ctx context.Context, guildID string) (*response.GameState, error) {
	var out response.GameState
	if err := c.do(ctx, http.MethodPost, guildPath(guildID, "/game/rebalance"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Board fetches the category grid
func (c *Client) Board(ctx context.Context, guildID string) (*response.Board, error) {
	var out response.Board
	if err := c.do(ctx, http.MethodGet, guildPath(guildID, "/game/board"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Standings fetches the leaderboard
func (c *Client) Standings(ctx context.Context, guildID string) (*response.Standings, error) {
	var out response.Standings
	if err := c.do(ctx, http.MethodGet, guildPath(guildID, "/game/standings"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ShowQuestion displays a question
func (c *Client) ShowQuestion(ctx context.Context, guildID, questionID string) (*response.Question, error) {
	var out response.Question
	path := guildPath(guildID, "/game/questions/"+url.PathEscape(questionID)+"/show")
	if err := c.do(ctx, http.MethodPost, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BuzzIn records a team's buzz
func (c *Client) BuzzIn(ctx context.Context, guildID, questionID, team string) error {
	path := guildPath(guildID, "/game/questions/"+url.PathEscape(questionID)+"/buzz")
	return c.do(ctx, http.MethodPost, path, request.BuzzRequest{Team: team}, nil)
}

// AnswerQuestion marks a question answered and reveals the answer
func (c *Client) AnswerQuestion(ctx context.Context, guildID, questionID string) (*response.Question, error) {
	var out response.Question
	path := guildPath(guildID, "/game/questions/"+url.PathEscape(questionID)+"/answer")
	if err := c.do(ctx, http.MethodPost, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AttachRole binds a role to a team
func (c *Client) AttachRole(ctx context.Context, guildID, team, roleID string) error {
	path := guildPath(guildID, "/game/teams/"+url.PathEscape(team)+"/role")
	return c.do(ctx, http.MethodPut, path, request.RoleRequest{RoleID: roleID}, nil)
}

// AwardPoints changes a team's score
func (c *Client) AwardPoints(ctx context.Context, guildID, team string, points int) (*response.Team, error) {
	var out response.Team
	path := guildPath(guildID, "/game/teams/"+url.PathEscape(team)+"/points")
	if err := c.do(ctx, http.MethodPost, path, request.PointsRequest{Points: points}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EndGame ends the guild's game and returns the summary
func (c *Client) EndGame(ctx context.Context, guildID string) (*response.GameSummary, error) {
	var out response.GameSummary
	if err := c.do(ctx, http.MethodPost, guildPath(guildID, "/game/end"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// History fetches the guild's finished games
func (c *Client) History(ctx context.Context, guildID string) ([]response.GameSummary, error) {
	var out []response.GameSummary
	if err := c.do(ctx, http.MethodGet, guildPath(guildID, "/history"), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListPacks fetches the stored pack names
func (c *Client) ListPacks(ctx context.Context) ([]string, error) {
	var out map[string][]string
	if err := c.do(ctx, http.MethodGet, "/api/v1/packs", nil, &out); err != nil {
		return nil, err
	}
	return out["packs"], nil
}

// GetPack fetches a pack summary
func (c *Client) GetPack(ctx context.Context, name string) (*response.Pack, error) {
	var out response.Pack
	if err := c.do(ctx, http.MethodGet, "/api/v1/packs/"+url.PathEscape(name), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PutPack uploads a pack's categories
func (c *Client) PutPack(ctx context.Context, name string, categories any) (*response.Pack, error) {
	var out response.Pack
	if err := c.do(ctx, http.MethodPut, "/api/v1/packs/"+url.PathEscape(name), categories, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePack removes a pack
func (c *Client) DeletePack(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/packs/"+url.PathEscape(name), nil, nil)
}
