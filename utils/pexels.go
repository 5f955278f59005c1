package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// PexelsPhoto một ảnh trả về từ Pexels
type PexelsPhoto struct {
	URL          string
	Photographer string
}

type pexelsSearchResponse struct {
	Photos []struct {
		Photographer string `json:"photographer"`
		Src          struct {
			Large string `json:"large"`
		} `json:"src"`
	} `json:"photos"`
}

// PexelsClient gọi API tìm ảnh của Pexels
type PexelsClient struct {
	APIKey  string
	BaseURL string
	HTTP    *http.Client
}

func NewPexelsClient(apiKey string) *PexelsClient {
	return &PexelsClient{
		APIKey:  apiKey,
		BaseURL: "https://api.pexels.com/v1",
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// SearchPhotos tìm ảnh landscape theo từ khóa điểm đến
func (p *PexelsClient) SearchPhotos(query string, perPage int) ([]PexelsPhoto, error) {
	params := url.Values{}
	params.Set("query", query+" travel tourism")
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("orientation", "landscape")

	req, err := http.NewRequest(http.MethodGet, p.BaseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", p.APIKey)

	resp, err := p.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pexels search returned status %d", resp.StatusCode)
	}

	var result pexelsSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	photos := []PexelsPhoto{}
	for _, photo := range result.Photos {
		photos = append(photos, PexelsPhoto{
			URL:          photo.Src.Large,
			Photographer: photo.Photographer,
		})
	}
	return photos, nil
}

// DownloadImage tải nội dung ảnh về
func (p *PexelsClient) DownloadImage(imageURL string) ([]byte, error) {
	resp, err := p.HTTP.Get(imageURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image download returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
