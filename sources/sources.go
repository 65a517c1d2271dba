package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/tm/logs"
	"github.com/reusee/tm/nets"
)

type Module struct {
	dscope.Module
	Nets nets.Module
}

// Fetch returns the text behind ref, a local path or an http(s) URL.
type Fetch func(ctx context.Context, ref string) (string, error)

const maxRemoteSize = 16 << 20

func (Module) Fetch(
	client nets.HTTPClient,
	logger logs.Logger,
) Fetch {
	return func(ctx context.Context, ref string) (string, error) {
		if !isRemote(ref) {
			content, err := os.ReadFile(ref)
			if err != nil {
				return "", err
			}
			return string(content), nil
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
		if err != nil {
			return "", err
		}
		resp, err := client.Do(req)
		if err != nil {
			return "", err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("fetch %s: %s", ref, resp.Status)
		}
		content, err := io.ReadAll(io.LimitReader(resp.Body, maxRemoteSize+1))
		if err != nil {
			return "", fmt.Errorf("fetch %s: %w", ref, err)
		}
		if len(content) > maxRemoteSize {
			return "", fmt.Errorf("fetch %s: larger than %d bytes", ref, maxRemoteSize)
		}
		logger.DebugContext(ctx, "fetched source",
			"url", ref,
			"bytes", len(content),
		)
		return string(content), nil
	}
}

func isRemote(ref string) bool {
	u, err := url.Parse(ref)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}
