// services/vision_client.go
package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// VisionClient calls the external vision-model service that analyzes product
// photos. This service never talks to the model directly — it only consumes
// the classification signal shape below.
type VisionClient struct {
	BaseURL string
	Token   string
	Client  *http.Client
}

// ClassificationSignal is the vision service's analysis of one image.
type ClassificationSignal struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Brand       string   `json:"brand"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Confidence  float64  `json:"confidence"` // 0..100
	Keywords    []string `json:"keywords"`
}

func NewVisionClient(baseURL, token string) *VisionClient {
	return &VisionClient{
		BaseURL: baseURL,
		Token:   token,
		Client: &http.Client{
			Timeout: 60 * time.Second, // vision calls are slow
		},
	}
}

// ClassifyImage calls /classify on the vision service with an image URL.
func (c *VisionClient) ClassifyImage(imageURL string) (*ClassificationSignal, error) {
	url := fmt.Sprintf("%s/classify", c.BaseURL)

	reqBody := map[string]interface{}{
		"image_url": imageURL,
	}
	jsonData, _ := json.Marshal(reqBody)

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		log.Printf("VisionService /classify returned %d: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("vision classification failed: %d", resp.StatusCode)
	}

	var out ClassificationSignal
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
