package mlb

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/jmo2498/MLB/internal/model"
)

const targetVideoSeconds = 90

// FetchContent reads the editorial recap and highlight videos for a game.
func (c *Client) FetchContent(ctx context.Context, gamePk int) (*model.ContentData, error) {
	var raw contentResponse
	if err := c.get(ctx, fmt.Sprintf("/api/v1/game/%d/content", gamePk), &raw); err != nil {
		slog.Error("error fetching game content", "game_pk", gamePk, "error", err)
		return nil, fmt.Errorf("content for game %d: %w", gamePk, ErrDataUnavailable)
	}

	content := parseContent(raw)
	return &content, nil
}

func parseContent(raw contentResponse) model.ContentData {
	content := model.ContentData{
		Headlines: []string{},
		SEOTitles: []string{},
	}

	if recap := raw.Editorial.Recap.MLB; recap != nil && recap.Headline != "" && recap.SEOTitle != "" {
		content.Headlines = append(content.Headlines, recap.Headline)
		content.SEOTitles = append(content.SEOTitles, recap.SEOTitle)
	}

	video := SelectClosestVideo(raw.Highlights.Highlights.Items)
	if video == nil {
		return content
	}

	for _, pb := range video.Playbacks {
		if strings.Contains(strings.ToLower(pb.Name), "mp4") {
			url, title, desc := pb.URL, video.Title, video.Description
			content.ClosestVideoURL = &url
			content.ClosestVideoTitle = &title
			content.ClosestVideoDescription = &desc
			break
		}
	}

	return content
}

// SelectClosestVideo picks the indexable video whose duration is nearest to 90
// seconds. The first of equally close videos wins.
func SelectClosestVideo(videos []Video) *Video {
	var closest *Video
	closestDiff := math.MaxInt

	for i := range videos {
		v := &videos[i]
		if v.NoIndex {
			continue
		}

		seconds, ok := durationSeconds(v.Duration)
		if !ok {
			slog.Warn("skipping video with unparseable duration", "title", v.Title, "duration", v.Duration)
			continue
		}

		diff := seconds - targetVideoSeconds
		if diff < 0 {
			diff = -diff
		}
		if diff < closestDiff {
			closestDiff = diff
			closest = v
		}
	}

	return closest
}

// durationSeconds reads the minutes and seconds of an HH:MM:SS duration.
func durationSeconds(d string) (int, bool) {
	if d == "" {
		d = "00:00:00"
	}

	parts := strings.Split(d, ":")
	if len(parts) < 2 {
		return 0, false
	}

	minutes, err := strconv.Atoi(parts[len(parts)-2])
	if err != nil {
		return 0, false
	}
	seconds, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return 0, false
	}

	return minutes*60 + seconds, true
}

type contentResponse struct {
	Editorial struct {
		Recap struct {
			MLB *recapArticle `json:"mlb"`
		} `json:"recap"`
	} `json:"editorial"`
	Highlights struct {
		Highlights struct {
			Items []Video `json:"items"`
		} `json:"highlights"`
	} `json:"highlights"`
}

type recapArticle struct {
	Headline string `json:"headline"`
	SEOTitle string `json:"seoTitle"`
}

type Video struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Duration    string     `json:"duration"`
	NoIndex     bool       `json:"noIndex"`
	Playbacks   []Playback `json:"playbacks"`
}

type Playback struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
