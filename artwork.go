package main

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/EdlinOrg/prominentcolor"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/webp"
)

// fetchArtwork retrieves the raw artwork bytes behind an MPRIS art URL.
// Players hand out either file:// paths (local covers) or http(s) URLs
// (streaming services).
func fetchArtwork(artURL string) ([]byte, error) {
	switch {
	case strings.HasPrefix(artURL, "file://"):
		data, err := os.ReadFile(strings.TrimPrefix(artURL, "file://"))
		if err != nil {
			return nil, fmt.Errorf("reading artwork file: %w", err)
		}
		return data, nil

	case strings.HasPrefix(artURL, "http://"), strings.HasPrefix(artURL, "https://"):
		resp, err := http.Get(artURL)
		if err != nil {
			return nil, fmt.Errorf("downloading artwork: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("artwork download failed with status %d", resp.StatusCode)
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("reading artwork data: %w", err)
		}
		return data, nil
	}

	return nil, fmt.Errorf("unsupported artwork URL scheme: %s", artURL)
}

// decodeArtworkData decodes artwork bytes into an image. Some players emit
// base64-wrapped payloads, so that form is tried before raw bytes.
func decodeArtworkData(imgData []byte) (image.Image, error) {
	imageData := imgData
	if decoded, err := base64.StdEncoding.DecodeString(string(imgData)); err == nil {
		imageData = decoded
	}

	if len(imageData) == 0 {
		return nil, fmt.Errorf("empty image data")
	}

	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// extractDominantColor picks a status-bar-friendly accent color from cover
// art: saturated and mid-lightness so it reads against a dark bar. Falls
// back to K-means clustering when no pixel passes the filter (covers that
// are near-black, near-white, or grayscale).
func extractDominantColor(img image.Image, widthPixels int) (string, error) {
	if img == nil {
		return "", fmt.Errorf("nil image")
	}
	if widthPixels <= 0 {
		widthPixels = 300
	}

	// Downscale first so scoring touches a bounded number of pixels.
	small := resize.Resize(uint(widthPixels), 0, img, resize.Lanczos3)
	bounds := small.Bounds()

	counts := make(map[uint32]int)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := small.At(x, y).RGBA()
			if a < 32768 {
				continue
			}
			rgb := (r >> 8 << 16) | (g >> 8 << 8) | b>>8
			counts[rgb]++
		}
	}

	bestScore := -1.0
	var bestRGB uint32
	for rgb, count := range counts {
		lightness, saturation := colorLightSat(rgb)
		if lightness < 0.3 || lightness > 0.85 || saturation < 0.25 {
			continue
		}
		// Prefer vibrant colors; penalize the washed-out end.
		lightnessScore := lightness
		if lightness > 0.7 {
			lightnessScore = 0.7 - (lightness - 0.7)
		}
		score := saturation*2.5 + lightnessScore*1.5 + float64(count)/1000.0
		if score > bestScore {
			bestScore = score
			bestRGB = rgb
		}
	}

	if bestScore < 0 {
		colors, err := prominentcolor.Kmeans(small)
		if err != nil || len(colors) == 0 {
			return "", fmt.Errorf("no suitable colors found")
		}
		c := colors[0]
		return fmt.Sprintf("#%02x%02x%02x", c.Color.R, c.Color.G, c.Color.B), nil
	}

	return fmt.Sprintf("#%02x%02x%02x",
		uint8(bestRGB>>16), uint8(bestRGB>>8), uint8(bestRGB)), nil
}

// colorLightSat computes HSL lightness and saturation for a packed RGB.
func colorLightSat(rgb uint32) (lightness, saturation float64) {
	rf := float64(uint8(rgb>>16)) / 255.0
	gf := float64(uint8(rgb>>8)) / 255.0
	bf := float64(uint8(rgb)) / 255.0

	max, min := rf, rf
	for _, v := range []float64{gf, bf} {
		if v > max {
			max = v
		}
		if v < min {
			min = v
		}
	}

	lightness = (max + min) / 2.0
	if max != min {
		if lightness > 0.5 {
			saturation = (max - min) / (2.0 - max - min)
		} else {
			saturation = (max - min) / (max + min)
		}
	}
	return lightness, saturation
}

// renderArtColor resolves the store's mpris:artUrl to a dominant-color hex
// string for status-bar theming. A player that exposes no artwork fails the
// command the same way a missing title fails track.
func renderArtColor(store *Store, widthPixels int) (string, error) {
	artURL, err := store.Lookup(keyArtURL, TypeString)
	if err != nil {
		return "", fmt.Errorf("looking up %s: %w", keyArtURL, err)
	}

	data, err := fetchArtwork(artURL.Str())
	if err != nil {
		return "", err
	}
	img, err := decodeArtworkData(data)
	if err != nil {
		return "", err
	}
	return extractDominantColor(img, widthPixels)
}
