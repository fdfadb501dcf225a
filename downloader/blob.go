package downloader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// Blob fetches a plain HTTP resource to the given path,
// first letting the optional processor reshape it; the final
// bytes are fanned out to every given channel as well
func Blob(ctx context.Context, url, path string, processor Processor, channels ...chan []byte) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	response, err := http.DefaultClient.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("blob fetch: %s", response.Status)
	}

	data, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	if processor != nil {
		if data, err = processor.Do(data); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}

	for _, channel := range channels {
		channel <- data
	}
	return nil
}
