// Package quality scores article content and estimates reading time.
package quality

import "strings"

const wordsPerMinute = 200

// WordCount counts whitespace-separated words.
func WordCount(content string) int {
	return len(strings.Fields(content))
}

// ReadingTime estimates minutes to read, never below one.
func ReadingTime(wordCount int) int {
	minutes := wordCount / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

// ScoreArticle computes the aggregation-time quality score in [0,1].
// Base 0.5; bonuses for a real title, a word count in the optimal range,
// an author and a non-trivial summary.
func ScoreArticle(title, summary, author string, wordCount int) float64 {
	score := base(title, author, wordCount)
	if len(strings.TrimSpace(summary)) > 20 {
		score += 0.1
	}
	return clamp(score)
}

// ScoreSample computes the feed-test variant of the score: instead of the
// summary bonus it rewards content with more than three sentences.
func ScoreSample(title, content, author string, wordCount int) float64 {
	score := base(title, author, wordCount)
	if len(strings.Split(content, ".")) > 3 {
		score += 0.1
	}
	return clamp(score)
}

func base(title, author string, wordCount int) float64 {
	score := 0.5
	if len(strings.TrimSpace(title)) > 10 {
		score += 0.1
	}
	if wordCount >= 100 && wordCount <= 2000 {
		score += 0.2
	} else if wordCount > 2000 {
		score += 0.1
	}
	if strings.TrimSpace(author) != "" {
		score += 0.1
	}
	return score
}

func clamp(score float64) float64 {
	if score > 1.0 {
		return 1.0
	}
	if score < 0.0 {
		return 0.0
	}
	return score
}
