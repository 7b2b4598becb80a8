package modelclient

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"medrecord-service/internal/app/config"
	"medrecord-service/internal/app/contracts"
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/exceptions"
	"net/http"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	modelClientInstance contracts.ModelClient
	onceModelClient     sync.Once
)

// openAIModelClient talks to any OpenAI-compatible chat-completions endpoint
// (the deployment targets a local inference server; a hosted vision model
// works the same way).
type openAIModelClient struct {
	BaseUrl     string
	APIKey      string
	ChatModel   string
	VisionModel string
	Log         *zap.Logger
}

func NewOpenAIModelClient(modelConfig config.Model, logger *zap.Logger) contracts.ModelClient {
	onceModelClient.Do(func() {
		modelClientInstance = &openAIModelClient{
			BaseUrl:     modelConfig.BaseUrl,
			APIKey:      modelConfig.APIKey,
			ChatModel:   modelConfig.ChatModel,
			VisionModel: modelConfig.VisionModel,
			Log:         logger,
		}
	})
	return modelClientInstance
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"`
}

type contentPart struct {
	Type     string        `json:"type"`
	Text     string        `json:"text,omitempty"`
	ImageURL *imageURLPart `json:"image_url,omitempty"`
}

type imageURLPart struct {
	URL string `json:"url"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *openAIModelClient) Complete(ctx context.Context, messages []models.ChatMessage) (string, error) {
	payload := chatCompletionRequest{
		Model:    c.ChatModel,
		Messages: make([]chatMessage, 0, len(messages)),
	}
	for _, message := range messages {
		payload.Messages = append(payload.Messages, chatMessage{
			Role:    message.Role,
			Content: message.Content,
		})
	}
	return c.send(ctx, &payload)
}

func (c *openAIModelClient) CompleteWithImage(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	encoded := base64.StdEncoding.EncodeToString(image)
	payload := chatCompletionRequest{
		Model: c.VisionModel,
		Messages: []chatMessage{
			{
				Role: constvars.ChatRoleUser,
				Content: []contentPart{
					{Type: "text", Text: prompt},
					{Type: "image_url", ImageURL: &imageURLPart{
						URL: fmt.Sprintf("data:%s;base64,%s", mimeType, encoded),
					}},
				},
			},
		},
	}
	return c.send(ctx, &payload)
}

func (c *openAIModelClient) send(ctx context.Context, payload *chatCompletionRequest) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Debug("openAIModelClient.send called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("model", payload.Model),
	)

	requestJSON, err := json.Marshal(payload)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl+"/chat/completions", bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("openAIModelClient.send error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", exceptions.ErrServerDeadlineExceeded(err)
		}
		return "", exceptions.ErrModelUpstream(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		statusErr := fmt.Errorf("model endpoint answered %d: %s", resp.StatusCode, string(bodyBytes))
		c.Log.Error("openAIModelClient.send model returned non-200",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return "", exceptions.ErrModelBadStatus(statusErr, resp.StatusCode)
	}

	completion := new(chatCompletionResponse)
	if err := json.NewDecoder(resp.Body).Decode(completion); err != nil {
		return "", exceptions.ErrDecodeResponse(err, "chat completion")
	}
	if len(completion.Choices) == 0 {
		return "", exceptions.ErrModelEmptyChoices(nil)
	}

	return completion.Choices[0].Message.Content, nil
}
