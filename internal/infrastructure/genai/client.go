// Package genai Gemini 생성형 모델 클라이언트
package genai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// ErrEmptyResponse 후보 응답이 하나도 없을 때
var ErrEmptyResponse = errors.New("모델 응답이 비어 있습니다")

// Config Gemini 클라이언트 설정
type Config struct {
	APIKey      string
	Model       string
	Temperature float64
}

// Client Gemini 모델 클라이언트. LanguageModel 을 구현합니다.
type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
	name   string
	logger *zap.Logger
}

// NewClient Gemini 클라이언트 생성
func NewClient(ctx context.Context, cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("Gemini API 키가 비어 있습니다")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("Gemini 클라이언트 생성 실패: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	if cfg.Temperature > 0 {
		model.SetTemperature(float32(cfg.Temperature))
	}

	logger.Info("Gemini 클라이언트 초기화 완료", zap.String("model", cfg.Model))

	return &Client{
		client: client,
		model:  model,
		name:   cfg.Model,
		logger: logger,
	}, nil
}

// Generate 프롬프트 하나를 보내고 첫 후보의 텍스트 파트를 이어 붙여 반환합니다
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("콘텐츠 생성 실패(%s): %w", c.name, err)
	}
	return ResponseText(resp)
}

// ResponseText 응답의 첫 후보에서 텍스트 파트만 모읍니다. 텍스트 파트가 없으면 ErrEmptyResponse
func ResponseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrEmptyResponse
	}

	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	found := false
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
			found = true
		}
	}
	// 안전 필터 등으로 텍스트 없이 끝난 후보
	if !found {
		return "", fmt.Errorf("%w: finish_reason=%v", ErrEmptyResponse, candidate.FinishReason)
	}
	return sb.String(), nil
}

// Close 클라이언트 연결 종료
func (c *Client) Close() error {
	return c.client.Close()
}
