package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"github.com/phenrril/vendorsync/internal/domain"
)

type ProductImageScraper struct {
	client *http.Client
}

var _ domain.ImageFinder = (*ProductImageScraper)(nil)

func NewProductImageScraper() *ProductImageScraper {
	return &ProductImageScraper{
		client: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

// FetchImage busca la imagen principal en la página del producto (og:image
// o primer <img> del detalle) y la descarga en destPath.
func (s *ProductImageScraper) FetchImage(ctx context.Context, pageURL, destPath string) error {
	imgURL, err := s.findImageURL(ctx, pageURL)
	if err != nil {
		return err
	}
	if err := s.download(ctx, imgURL, destPath); err != nil {
		return err
	}
	log.Info().Str("url", imgURL).Str("dest", destPath).Msg("Imagen de producto descargada")
	return nil
}

func (s *ProductImageScraper) findImageURL(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", err
	}

	if og, ok := doc.Find(`meta[property="og:image"]`).Attr("content"); ok && og != "" {
		return resolveURL(pageURL, og)
	}

	var found string
	doc.Find("div.product-detail img, div.product img, main img").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if src, ok := sel.Attr("src"); ok && src != "" {
			found = src
			return false
		}
		return true
	})
	if found == "" {
		return "", fmt.Errorf("no se encontró imagen en %s", pageURL)
	}
	return resolveURL(pageURL, found)
}

func (s *ProductImageScraper) download(ctx context.Context, imgURL, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imgURL, nil)
	if err != nil {
		return err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status code: %d", resp.StatusCode)
	}

	f, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		os.Remove(destPath)
		return err
	}
	return nil
}

func resolveURL(base, ref string) (string, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref, nil
	}
	b, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	r, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	return b.ResolveReference(r).String(), nil
}
