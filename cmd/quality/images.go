package main

import (
	"bufio"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/yyyoichi/httpcache-go"
	"golang.org/x/image/draw"
)

// source is one test image before resizing.
type source struct {
	uri  string
	load func() (image.Image, error)
}

// rateLimitedClient wraps an HTTP client with rate limiting between requests
// Thread-safe for concurrent requests
type rateLimitedClient struct {
	client   *http.Client
	interval time.Duration
	lastCall time.Time
	mu       sync.Mutex
}

func newRateLimitedClient(interval time.Duration) *rateLimitedClient {
	return &rateLimitedClient{
		client:   http.DefaultClient,
		interval: interval,
	}
}

func (r *rateLimitedClient) Do(req *http.Request) (*http.Response, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	elapsed := time.Since(r.lastCall)
	if elapsed < r.interval {
		time.Sleep(r.interval - elapsed)
	}

	log.Debug().Str("url", req.URL.String()).Msg("fetch")
	resp, err := r.client.Do(req)
	r.lastCall = time.Now()
	return resp, err
}

func newCachedClient(cacheDir string) *httpcache.Client {
	return &httpcache.Client{
		Client:  newRateLimitedClient(250 * time.Millisecond),
		Cache:   httpcache.NewStorageCache(cacheDir),
		Handler: httpcache.NewDefaultHandler(),
	}
}

// urlSources reads one URL per line from path. Responses are cached in
// cacheDir so reruns do not hit the network.
func urlSources(path, cacheDir string) ([]source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	client := newCachedClient(cacheDir)
	var sources []source
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || !strings.HasPrefix(line, "http") {
			continue
		}
		sources = append(sources, source{
			uri: line,
			load: func() (image.Image, error) {
				resp, err := client.Get(line)
				if err != nil {
					return nil, fmt.Errorf("failed to fetch: %w", err)
				}
				defer resp.Body.Close()
				if resp.StatusCode != http.StatusOK {
					return nil, fmt.Errorf("bad status: %d", resp.StatusCode)
				}
				img, _, err := image.Decode(resp.Body)
				if err != nil {
					return nil, fmt.Errorf("failed to decode image: %w", err)
				}
				return img, nil
			},
		})
	}
	return sources, scanner.Err()
}

// fileSources expands a glob of local image files.
func fileSources(pattern string) ([]source, error) {
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}
	sources := make([]source, 0, len(paths))
	for _, p := range paths {
		sources = append(sources, source{
			uri: p,
			load: func() (image.Image, error) {
				f, err := os.Open(p)
				if err != nil {
					return nil, err
				}
				defer f.Close()
				img, _, err := image.Decode(f)
				if err != nil {
					return nil, fmt.Errorf("failed to decode %s: %w", p, err)
				}
				return img, nil
			},
		})
	}
	return sources, nil
}

// syntheticSources returns n deterministic textured images.
func syntheticSources(n int) []source {
	sources := make([]source, n)
	for i := range sources {
		seed := int64(i + 1)
		sources[i] = source{
			uri:  fmt.Sprintf("synthetic:%d", seed),
			load: func() (image.Image, error) { return synthetic(1024, 1024, seed), nil },
		}
	}
	return sources
}

func synthetic(w, h int, seed int64) image.Image {
	rd := rand.New(rand.NewSource(seed))
	fx, fy := 5+rd.Float64()*20, 5+rd.Float64()*20
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			v := 128 + 70*math.Sin(float64(x)/fx)*math.Cos(float64(y)/fy) + rd.NormFloat64()*12
			img.Pix[y*img.Stride+x] = uint8(min(max(v, 0), 255))
		}
	}
	return img
}

// fit crops src to the aspect ratio of width x height around its center and
// resizes it.
func fit(src image.Image, width, height int) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	srcRect := bounds
	srcRatio := float64(w) / float64(h)
	targetRatio := float64(width) / float64(height)

	if srcRatio > targetRatio {
		newWidth := int(float64(h) * targetRatio)
		x := bounds.Min.X + (w-newWidth)/2
		srcRect = image.Rect(x, bounds.Min.Y, x+newWidth, bounds.Max.Y)
	} else if srcRatio < targetRatio {
		newHeight := int(float64(w) / targetRatio)
		y := bounds.Min.Y + (h-newHeight)/2
		srcRect = image.Rect(bounds.Min.X, y, bounds.Max.X, y+newHeight)
	}

	dist := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dist, dist.Bounds(), src, srcRect, draw.Over, nil)
	return dist
}
