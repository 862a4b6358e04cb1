// Package advisor gives hints on how well a message will hide.
//
// TextAdvisor is the extension point for remote services. Heuristic is a
// local, deterministic implementation based on simple text rules.
package advisor

import (
	"context"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

type TextAdvisor interface {
	Analyze(ctx context.Context, message string) (Analysis, error)
}

type Analysis struct {
	// Score is a 0..95 estimate of how natural the message looks.
	Score           int
	Recommendations []string
	Vulnerabilities []string

	// Suggested is the message after Optimize.
	Suggested string
	// CompressionRatio is len(message)/len(Suggested), rounded to two decimals.
	CompressionRatio float64
}

var _ TextAdvisor = Heuristic{}

// Heuristic counts words as the pieces between single spaces, so "" is one
// word and every repeated space adds one.
type Heuristic struct{}

var (
	specialChars = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
	digits       = regexp.MustCompile(`\d`)
)

func (Heuristic) Analyze(ctx context.Context, message string) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}
	var (
		length     = utf8.RuneCountInString(message)
		words      = len(strings.Split(message, " "))
		hasSpecial = specialChars.MatchString(message)
		hasDigits  = digits.MatchString(message)
	)

	score := 60 + min(words*2, 20)
	if hasSpecial {
		score += 15
	}
	if hasDigits {
		score += 10
	}

	var a Analysis
	a.Score = min(95, score)
	if length < 20 {
		a.Recommendations = append(a.Recommendations, "Consider adding more content to make detection harder")
	}
	if words < 5 {
		a.Recommendations = append(a.Recommendations, "Use complete sentences for better disguise")
	}
	if !hasSpecial {
		a.Recommendations = append(a.Recommendations, "Add punctuation to make message more natural")
	}
	a.Recommendations = append(a.Recommendations, "Consider using common phrases to blend with normal text")

	if strings.Contains(strings.ToLower(message), "secret") {
		a.Vulnerabilities = append(a.Vulnerabilities, "Avoid using words like 'secret' or 'hidden'")
	}
	if length > 500 {
		a.Vulnerabilities = append(a.Vulnerabilities, "Very long messages may be more detectable")
	}

	a.Suggested = Optimize(message)
	ratio := float64(length) / float64(max(utf8.RuneCountInString(a.Suggested), 1))
	a.CompressionRatio = math.Round(ratio*100) / 100
	return a, nil
}

var (
	spaces   = regexp.MustCompile(`\s+`)
	fillers  = regexp.MustCompile(`(?i)\b(very|really|quite|rather)\s+`)
	relative = regexp.MustCompile(`(?i)\b(that|which)\s+`)
)

// Optimize shortens message by collapsing whitespace and dropping filler words.
func Optimize(message string) string {
	message = spaces.ReplaceAllString(message, " ")
	message = fillers.ReplaceAllString(message, "")
	message = relative.ReplaceAllString(message, "")
	return strings.TrimSpace(message)
}

type ImageAdvice struct {
	// Usage is the share of the image capacity the message occupies, in percent.
	Usage float64
	// Suitability is 0 when the message does not fit and approaches 100 as usage drops.
	Suitability     int
	Recommendations []string
}

// AdviseImage rates an image by how much of its capacity a message needs.
func AdviseImage(available, required int) ImageAdvice {
	var a ImageAdvice
	if available <= 0 {
		a.Usage = math.Inf(1)
	} else {
		a.Usage = float64(required) / float64(available) * 100
	}
	switch {
	case a.Usage > 100:
		a.Recommendations = append(a.Recommendations, "Use a larger image or a shorter message")
	case a.Usage > 50:
		a.Suitability = 100 - int(math.Ceil(a.Usage))
		a.Recommendations = append(a.Recommendations, "Higher resolution images provide more hiding space")
	default:
		a.Suitability = 100 - int(math.Ceil(a.Usage))
	}
	a.Recommendations = append(a.Recommendations,
		"Use images with rich textures for better hiding capacity",
		"Avoid images with large solid color areas",
		"Save the result as PNG; JPEG recompression destroys the message",
	)
	return a
}
