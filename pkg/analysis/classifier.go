package analysis

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/internal/utils"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"time"
)

type (
	// Classifier turns an image into a label and a 0-100 confidence score.
	// The mapping from label to food attributes lives in AnalyzeFoodProperties,
	// so the vision backend can be swapped or stubbed without touching it.
	Classifier interface {
		Classify(ctx context.Context, image []byte) (label string, confidence int, err error)
	}

	huggingFaceClassifier struct {
		model      string
		token      string
		httpClient *http.Client
	}

	classificationScore struct {
		Label string  `json:"label"`
		Score float64 `json:"score"`
	}
)

func NewHuggingFaceClassifier() Classifier {
	return &huggingFaceClassifier{
		model:      utils.GetConfig("HF_MODEL"),
		token:      utils.GetConfig("HF_ACCESS_TOKEN"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *huggingFaceClassifier) Classify(ctx context.Context, image []byte) (string, int, error) {
	if c.token == "" {
		return "", 0, fmt.Errorf("HF_ACCESS_TOKEN not configured")
	}
	if c.model == "" {
		return "", 0, fmt.Errorf("HF_MODEL not configured")
	}

	url := fmt.Sprintf("https://api-inference.huggingface.co/models/%s", c.model)

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(image))
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("image classification request failed: %v", err)
		return "", 0, domain.ErrClassificationFailed
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, domain.ErrClassificationFailed
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("image classification returned status %d: %s", resp.StatusCode, string(body))
		return "", 0, domain.ErrClassificationFailed
	}

	var scores []classificationScore
	if err := json.Unmarshal(body, &scores); err != nil || len(scores) == 0 {
		log.Printf("unexpected classification response: %s", string(body))
		return "", 0, domain.ErrClassificationFailed
	}

	top := scores[0]
	confidence := int(math.Round(top.Score * 100))
	return top.Label, confidence, nil
}
