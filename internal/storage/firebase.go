package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"memorylane/internal/logging"
	"memorylane/internal/memory"
	"memorylane/internal/services"
)

const defaultMaxConcurrency = 8

// FirebaseOptions configures a FirebaseSource.
type FirebaseOptions struct {
	Endpoint       string
	Bucket         string
	APIKey         string
	MaxConcurrency int
}

// FirebaseSource lists objects from a Firebase Storage bucket.
type FirebaseSource struct {
	endpoint string
	bucket   string
	apiKey   string
	limit    int
	client   HTTPDoer
	logger   *slog.Logger
}

type listResponse struct {
	Prefixes      []string     `json:"prefixes"`
	Items         []objectItem `json:"items"`
	NextPageToken string       `json:"nextPageToken"`
}

type objectItem struct {
	Name   string `json:"name"`
	Bucket string `json:"bucket"`
}

type objectMetadata struct {
	Name           string `json:"name"`
	ContentType    string `json:"contentType"`
	Size           string `json:"size"`
	TimeCreated    string `json:"timeCreated"`
	Updated        string `json:"updated"`
	DownloadTokens string `json:"downloadTokens"`
}

// NewFirebaseSource constructs a source. A nil client uses http.DefaultClient.
func NewFirebaseSource(opts FirebaseOptions, client HTTPDoer, logger *slog.Logger) *FirebaseSource {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	limit := opts.MaxConcurrency
	if limit <= 0 {
		limit = defaultMaxConcurrency
	}
	return &FirebaseSource{
		endpoint: strings.TrimRight(strings.TrimSpace(opts.Endpoint), "/"),
		bucket:   strings.TrimSpace(opts.Bucket),
		apiKey:   strings.TrimSpace(opts.APIKey),
		limit:    limit,
		client:   client,
		logger:   logging.NewComponentLogger(logger, "storage.firebase"),
	}
}

// FetchAll lists every object directly under folder, fetches its metadata and
// returns the assets ordered by creation time.
func (s *FirebaseSource) FetchAll(ctx context.Context, folder string) ([]memory.ImageAsset, error) {
	if s.bucket == "" {
		return nil, services.Wrap(services.ErrConfiguration, "storage.firebase", "list", "bucket is not configured", nil)
	}
	names, err := s.list(ctx, cleanFolder(folder))
	if err != nil {
		return nil, err
	}

	assets := make([]memory.ImageAsset, len(names))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.limit)
	for i, name := range names {
		group.Go(func() error {
			asset, err := s.metadata(groupCtx, name)
			if err != nil {
				return err
			}
			assets[i] = asset
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	sortByCreated(assets)
	s.logger.Debug("listed firebase objects",
		logging.String("bucket", s.bucket),
		logging.String("folder", folder),
		logging.Int("count", len(assets)),
	)
	return assets, nil
}

func (s *FirebaseSource) list(ctx context.Context, folder string) ([]string, error) {
	var names []string
	pageToken := ""
	prefix := ""
	if folder != "" {
		prefix = folder + "/"
	}
	for {
		query := url.Values{}
		query.Set("prefix", prefix)
		query.Set("delimiter", "/")
		if pageToken != "" {
			query.Set("pageToken", pageToken)
		}
		var page listResponse
		if err := s.getJSON(ctx, "list", s.objectsURL()+"?"+s.withKey(query).Encode(), &page); err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			if strings.HasSuffix(item.Name, "/") {
				continue
			}
			names = append(names, item.Name)
		}
		if page.NextPageToken == "" {
			return names, nil
		}
		pageToken = page.NextPageToken
	}
}

func (s *FirebaseSource) metadata(ctx context.Context, name string) (memory.ImageAsset, error) {
	objectURL := s.objectsURL() + "/" + url.PathEscape(name)
	var meta objectMetadata
	if err := s.getJSON(ctx, "metadata", objectURL+s.keySuffix("?"), &meta); err != nil {
		return memory.ImageAsset{}, err
	}

	download := url.Values{}
	download.Set("alt", "media")
	if token := firstToken(meta.DownloadTokens); token != "" {
		download.Set("token", token)
	}
	size, _ := strconv.ParseInt(meta.Size, 10, 64)
	created := parseTimestamp(meta.TimeCreated)
	updated := parseTimestamp(meta.Updated)
	if created.IsZero() {
		created = updated
	}
	return memory.ImageAsset{
		URL:         objectURL + "?" + download.Encode(),
		Name:        path.Base(name),
		FullPath:    name,
		CreatedAt:   created,
		Updated:     updated,
		Size:        size,
		ContentType: meta.ContentType,
	}, nil
}

func (s *FirebaseSource) getJSON(ctx context.Context, operation, target string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return services.Wrap(services.ErrConfiguration, "storage.firebase", operation, "build request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return services.Wrap(services.ErrTimeout, "storage.firebase", operation, "request cancelled", err)
		}
		return services.Wrap(services.ErrTransient, "storage.firebase", operation, "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		message := fmt.Sprintf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		return services.Wrap(statusMarker(resp.StatusCode), "storage.firebase", operation, message, nil)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return services.Wrap(services.ErrTransient, "storage.firebase", operation, "decode response", err)
	}
	return nil
}

func statusMarker(code int) error {
	switch code {
	case http.StatusNotFound:
		return services.ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return services.ErrConfiguration
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return services.ErrTimeout
	default:
		return services.ErrTransient
	}
}

func (s *FirebaseSource) objectsURL() string {
	return fmt.Sprintf("%s/v0/b/%s/o", s.endpoint, url.PathEscape(s.bucket))
}

func (s *FirebaseSource) withKey(query url.Values) url.Values {
	if s.apiKey != "" {
		query.Set("key", s.apiKey)
	}
	return query
}

func (s *FirebaseSource) keySuffix(sep string) string {
	if s.apiKey == "" {
		return ""
	}
	return sep + "key=" + url.QueryEscape(s.apiKey)
}

func firstToken(tokens string) string {
	first, _, _ := strings.Cut(tokens, ",")
	return strings.TrimSpace(first)
}

func parseTimestamp(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}
	}
	return parsed.UTC()
}
